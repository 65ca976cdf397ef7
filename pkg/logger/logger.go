package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Init builds the process-wide logger. Development mode uses the console encoder
// with debug level, production mode uses JSON at info level.
func Init(isDev bool) error {
	var err error
	once.Do(func() {
		var cfg zap.Config
		if isDev {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
		}
		log, err = cfg.Build()
	})
	return err
}

// L returns the logger built by Init, or a no-op logger if Init was never called.
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
