package service

import (
	"context"
	"math"
	"sort"
	"time"

	"linkhop/internal/models"
	"linkhop/internal/repository"

	"go.uber.org/zap"
)

// MaxAnalyticsWindow bounds [from, to]. time.Time.Sub saturates, so wider windows still compare greater.
const MaxAnalyticsWindow = 366 * 24 * time.Hour

const (
	day         = 24 * time.Hour
	topLinksMax = 10
	directLabel = "direct"
)

type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Snapshot is computed per request and never stored.
type Snapshot struct {
	TotalClicks      int      `json:"total_clicks"`
	ClicksChange     int      `json:"clicks_change"`
	ActiveLinks      int      `json:"active_links"`
	LinksChange      int      `json:"links_change"`
	Domains          []string `json:"domains"`
	ConversionRate   int      `json:"conversion_rate"`
	ConversionChange int      `json:"conversion_change"`
	ClicksOverTime   []Point  `json:"clicks_over_time"`
	ClicksByDomain   []Point  `json:"clicks_by_domain"`
	TopLinks         []Point  `json:"top_links"`
	ClicksByDevice   []Point  `json:"clicks_by_device"`
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Domains:        []string{},
		ClicksOverTime: []Point{},
		ClicksByDomain: []Point{},
		TopLinks:       []Point{},
		ClicksByDevice: []Point{},
	}
}

type AnalyticsService struct {
	links *repository.LinkRepository
	log   *zap.Logger
}

func NewAnalyticsService(links *repository.LinkRepository, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		links: links,
		log:   log,
	}
}

// Analyze loads the user's links with their click logs and aggregates them over [from, to].
// A nil user, an inverted window or a storage failure yields an empty snapshot.
func (s *AnalyticsService) Analyze(ctx context.Context, user *models.User, from, to time.Time) Snapshot {
	if user == nil || to.Before(from) || to.Sub(from) > MaxAnalyticsWindow {
		return emptySnapshot()
	}

	links, err := s.links.ListByUserWithEvents(ctx, user.ID)
	if err != nil {
		s.log.Error("failed to load links for analytics",
			zap.String("op", "analytics.analyze"),
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return emptySnapshot()
	}

	return Aggregate(links, user.DomainNames(), from, to)
}

// Aggregate computes a Snapshot from links and their ClickEvents. The current window is
// [from, to] and the previous one is [from-(to-from), from).
func Aggregate(links []models.Link, domains []string, from, to time.Time) Snapshot {
	snap := emptySnapshot()
	if domains != nil {
		snap.Domains = domains
	}

	span := to.Sub(from)
	prevFrom := from.Add(-span)

	inCurrent := func(ts time.Time) bool { return !ts.Before(from) && !ts.After(to) }
	inPrevious := func(ts time.Time) bool { return !ts.Before(prevFrom) && ts.Before(from) }

	devices := map[models.Device]int{}
	domainIdx := map[string]int{}
	prevClicks, prevActive := 0, 0

	for _, link := range links {
		cur, prev := 0, 0
		for _, ev := range link.ClickEvents {
			switch {
			case inCurrent(ev.Timestamp):
				cur++
				devices[ev.Device]++
			case inPrevious(ev.Timestamp):
				prev++
			}
		}

		snap.TotalClicks += cur
		prevClicks += prev
		if cur > 0 {
			snap.ActiveLinks++
			snap.TopLinks = append(snap.TopLinks, Point{Label: link.Slug, Value: cur})
		}
		if prev > 0 {
			prevActive++
		}

		label := link.Domain
		if label == "" {
			label = directLabel
		}
		if i, ok := domainIdx[label]; ok {
			snap.ClicksByDomain[i].Value += cur
		} else {
			domainIdx[label] = len(snap.ClicksByDomain)
			snap.ClicksByDomain = append(snap.ClicksByDomain, Point{Label: label, Value: cur})
		}
	}

	snap.ClicksByDevice = []Point{
		{Label: "Desktop", Value: devices[models.DeviceDesktop]},
		{Label: "Mobile", Value: devices[models.DeviceMobile]},
		{Label: "Tablet", Value: devices[models.DeviceTablet]},
	}

	sort.SliceStable(snap.TopLinks, func(i, j int) bool {
		return snap.TopLinks[i].Value > snap.TopLinks[j].Value
	})
	if len(snap.TopLinks) > topLinksMax {
		snap.TopLinks = snap.TopLinks[:topLinksMax]
	}

	snap.ClicksChange = percentChange(snap.TotalClicks, prevClicks)
	snap.LinksChange = percentChange(snap.ActiveLinks, prevActive)

	prevRate := 0
	if len(links) > 0 {
		snap.ConversionRate = roundHalfUp(float64(snap.ActiveLinks) / float64(len(links)) * 100)
		prevRate = roundHalfUp(float64(prevActive) / float64(len(links)) * 100)
	}
	snap.ConversionChange = percentChange(snap.ConversionRate, prevRate)

	snap.ClicksOverTime = dailyBuckets(links, from, to)

	return snap
}

func dailyBuckets(links []models.Link, from, to time.Time) []Point {
	days := int(math.Ceil(float64(to.Sub(from)) / float64(day)))
	buckets := make([]Point, days)
	for i := range buckets {
		buckets[i].Label = from.AddDate(0, 0, i).Format("Jan 2")
	}
	if days == 0 {
		return buckets
	}

	for _, link := range links {
		for _, ev := range link.ClickEvents {
			if ev.Timestamp.Before(from) {
				continue
			}
			// AddDate keeps wall-clock days, so a bucket is not always exactly 24h.
			i := int(ev.Timestamp.Sub(from) / day)
			for i > 0 && ev.Timestamp.Before(from.AddDate(0, 0, i)) {
				i--
			}
			for i < days && !ev.Timestamp.Before(from.AddDate(0, 0, i+1)) {
				i++
			}
			if i < days {
				buckets[i].Value++
			}
		}
	}
	return buckets
}

// percentChange is the rounded relative change of cur against prev, or 100 when prev is 0.
func percentChange(cur, prev int) int {
	if prev == 0 {
		return 100
	}
	return roundHalfUp(float64(cur-prev) / float64(prev) * 100)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
