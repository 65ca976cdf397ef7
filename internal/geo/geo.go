// Package geo resolves client IPs to ISO country codes using a MaxMind database.
package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

type Locator interface {
	Country(ip string) string
}

type MaxMind struct {
	db  *geoip2.Reader
	log *zap.Logger
}

// Open loads the GeoLite2/GeoIP2 country or city database at path.
func Open(path string, log *zap.Logger) (*MaxMind, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &MaxMind{db: db, log: log}, nil
}

// Country returns the ISO code for ip, or "" when ip is not an address or not in the database.
func (m *MaxMind) Country(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}
	rec, err := m.db.Country(parsed)
	if err != nil {
		m.log.Debug("geoip lookup failed", zap.String("ip", ip), zap.Error(err))
		return ""
	}
	return rec.Country.IsoCode
}

func (m *MaxMind) Close() error {
	return m.db.Close()
}

// Nop is used when no database is configured.
type Nop struct{}

func (Nop) Country(string) string { return "" }
