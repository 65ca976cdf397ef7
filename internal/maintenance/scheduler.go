package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a recurring housekeeping task. Run returns the number of rows it touched.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context, now time.Time) (int64, error)
}

type Scheduler struct {
	c    *cron.Cron
	log  *zap.Logger
	jobs map[string]Job
	now  func() time.Time
}

func NewScheduler(log *zap.Logger, jobs ...Job) *Scheduler {
	// Standard 5-field syntax, no seconds.
	c := cron.New(
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
		cron.WithChain(cron.Recover(cronLogger{log.Sugar()})),
	)
	s := &Scheduler{c: c, log: log, jobs: make(map[string]Job, len(jobs)), now: time.Now}
	for _, j := range jobs {
		s.jobs[j.Name] = j
	}
	return s
}

// Start registers every job and stops the cron when ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, j := range s.jobs {
		j := j
		if _, err := s.c.AddFunc(j.Spec, func() { s.run(ctx, j) }); err != nil {
			return fmt.Errorf("schedule %s: %w", j.Name, err)
		}
	}
	s.c.Start()

	go func() {
		<-ctx.Done()
		stopped := s.c.Stop()
		<-stopped.Done()
	}()
	return nil
}

// RunNow executes the named job synchronously.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	j, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	return s.run(ctx, j)
}

func (s *Scheduler) run(ctx context.Context, j Job) error {
	n, err := j.Run(ctx, s.now())
	if err != nil {
		s.log.Error("Maintenance job failed", zap.String("job", j.Name), zap.Error(err))
		return err
	}
	if n > 0 {
		s.log.Info("Maintenance job finished", zap.String("job", j.Name), zap.Int64("count", n))
	}
	return nil
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
