package service

import (
	"context"
	"errors"
	"time"

	"linkhop/internal/models"
	"linkhop/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentClicksLimit = 20

type Count struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type RecentClick struct {
	Timestamp time.Time     `json:"timestamp"`
	Device    models.Device `json:"device"`
	Referrer  string        `json:"referrer"`
	Country   string        `json:"country"`
}

// LinkStats is the click breakdown of a single link.
type LinkStats struct {
	LinkID      uuid.UUID     `json:"link_id"`
	TotalClicks int64         `json:"total_clicks"`
	UniqueIPs   int64         `json:"unique_ips"`
	Countries   []Count       `json:"countries"`
	Referrers   []Count       `json:"referrers"`
	Devices     []Count       `json:"devices"`
	Recent      []RecentClick `json:"recent"`
}

type StatsService struct {
	links  *repository.LinkRepository
	clicks *repository.ClickRepository
	log    *zap.Logger
}

func NewStatsService(links *repository.LinkRepository, clicks *repository.ClickRepository, log *zap.Logger) *StatsService {
	return &StatsService{
		links:  links,
		clicks: clicks,
		log:    log,
	}
}

// Stats aggregates the click log of the owner's link.
func (s *StatsService) Stats(ctx context.Context, owner *models.User, id uuid.UUID) (*LinkStats, error) {
	if owner == nil {
		return nil, ErrUnauthenticated
	}
	link, err := s.links.GetByIDForUser(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, s.internal(err)
	}

	stats := &LinkStats{LinkID: link.ID}
	if stats.TotalClicks, err = s.clicks.Count(ctx, link.ID); err != nil {
		return nil, s.internal(err)
	}
	if stats.UniqueIPs, err = s.clicks.UniqueIPCount(ctx, link.ID); err != nil {
		return nil, s.internal(err)
	}
	if stats.Countries, err = s.countBy(ctx, link.ID, "country", "unknown"); err != nil {
		return nil, s.internal(err)
	}
	if stats.Referrers, err = s.countBy(ctx, link.ID, "referrer", "direct"); err != nil {
		return nil, s.internal(err)
	}
	if stats.Devices, err = s.countBy(ctx, link.ID, "device", string(models.DeviceDesktop)); err != nil {
		return nil, s.internal(err)
	}

	events, err := s.clicks.Recent(ctx, link.ID, recentClicksLimit)
	if err != nil {
		return nil, s.internal(err)
	}
	stats.Recent = make([]RecentClick, 0, len(events))
	for _, ev := range events {
		stats.Recent = append(stats.Recent, RecentClick{
			Timestamp: ev.Timestamp.UTC(),
			Device:    ev.Device,
			Referrer:  ev.Referrer,
			Country:   ev.Country,
		})
	}
	return stats, nil
}

// countBy labels empty groups with blank.
func (s *StatsService) countBy(ctx context.Context, linkID uuid.UUID, column, blank string) ([]Count, error) {
	groups, err := s.clicks.CountBy(ctx, linkID, column)
	if err != nil {
		return nil, err
	}
	out := make([]Count, 0, len(groups))
	for _, g := range groups {
		label := g.Label
		if label == "" {
			label = blank
		}
		out = append(out, Count{Label: label, Count: g.Total})
	}
	return out, nil
}

func (s *StatsService) internal(err error) error {
	s.log.Error("link operation failed", zap.String("op", "link.stats"), zap.Error(err))
	return ErrInternal
}
