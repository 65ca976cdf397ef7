package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"linkhop/internal/device"
	"linkhop/internal/geo"
	"linkhop/internal/models"
	"linkhop/internal/repository"

	"go.uber.org/zap"
)

// RequestMeta carries the request headers a click event is built from.
type RequestMeta struct {
	UserAgent string
	Referrer  string
	IP        string
}

// RequestMetaFromHeaders reads User-Agent, Referer and the first X-Forwarded-For entry.
// A missing forwarded address becomes "unknown".
func RequestMetaFromHeaders(h http.Header) RequestMeta {
	ip := strings.TrimSpace(strings.Split(h.Get("X-Forwarded-For"), ",")[0])
	if ip == "" {
		ip = "unknown"
	}
	return RequestMeta{
		UserAgent: h.Get("User-Agent"),
		Referrer:  h.Get("Referer"),
		IP:        ip,
	}
}

type RedirectService struct {
	links *repository.LinkRepository
	geo   geo.Locator
	log   *zap.Logger
	now   func() time.Time
}

func NewRedirectService(links *repository.LinkRepository, locator geo.Locator, log *zap.Logger) *RedirectService {
	if locator == nil {
		locator = geo.Nop{}
	}
	return &RedirectService{
		links: links,
		geo:   locator,
		log:   log,
		now:   time.Now,
	}
}

// Resolve looks up (domain, slug), records one click and returns the destination.
// An empty domain matches direct links only. Any failure is reported as not found.
func (s *RedirectService) Resolve(ctx context.Context, slug, domain string, meta RequestMeta) (string, bool) {
	if slug == "" {
		return "", false
	}

	event := &models.ClickEvent{
		Timestamp: s.now(),
		Device:    device.Classify(meta.UserAgent),
		Referrer:  meta.Referrer,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		Country:   s.geo.Country(meta.IP),
	}
	if event.IP == "" {
		event.IP = "unknown"
	}

	link, err := s.links.RecordClick(ctx, domain, slug, event)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug("short link not found", zap.String("domain", domain), zap.String("slug", slug))
			return "", false
		}
		s.log.Error("failed to record click",
			zap.String("op", "redirect.resolve"),
			zap.String("domain", domain),
			zap.String("slug", slug),
			zap.Error(err),
		)
		return "", false
	}

	return link.OriginalURL, true
}
