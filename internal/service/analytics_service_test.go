package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linkhop/internal/models"
	"linkhop/internal/repository"
	"linkhop/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan4 = time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
)

func linkWithClicks(slug, domain string, ts ...time.Time) models.Link {
	l := models.Link{Slug: slug, Domain: domain}
	for _, t := range ts {
		l.ClickEvents = append(l.ClickEvents, models.ClickEvent{Timestamp: t, Device: models.DeviceDesktop})
	}
	return l
}

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func TestAggregate_ZeroPreviousPeriod(t *testing.T) {
	t.Run("current empty", func(t *testing.T) {
		snap := Aggregate([]models.Link{linkWithClicks("a", "")}, nil, jan1, jan4)
		assert.Equal(t, 0, snap.TotalClicks)
		assert.Equal(t, 100, snap.ClicksChange)
		assert.Equal(t, 100, snap.LinksChange)
		assert.Equal(t, 100, snap.ConversionChange)
	})
	t.Run("current busy", func(t *testing.T) {
		snap := Aggregate([]models.Link{linkWithClicks("a", "", at(1, 1), at(2, 1), at(3, 1))}, nil, jan1, jan4)
		assert.Equal(t, 3, snap.TotalClicks)
		assert.Equal(t, 100, snap.ClicksChange)
		assert.Equal(t, 100, snap.LinksChange)
	})
}

func TestAggregate_DailyBuckets(t *testing.T) {
	links := []models.Link{linkWithClicks("a", "", at(1, 0), at(1, 23), at(3, 12), jan4)}

	snap := Aggregate(links, nil, jan1, jan4)

	require.Len(t, snap.ClicksOverTime, 3)
	assert.Equal(t, []Point{
		{Label: "Jan 1", Value: 2},
		{Label: "Jan 2", Value: 0},
		{Label: "Jan 3", Value: 1},
	}, snap.ClicksOverTime)
	// to is inclusive for totals even though no bucket covers it.
	assert.Equal(t, 4, snap.TotalClicks)
}

func TestAggregate_EmptyDaysAreZero(t *testing.T) {
	snap := Aggregate(nil, nil, jan1, jan4)
	require.Len(t, snap.ClicksOverTime, 3)
	for _, p := range snap.ClicksOverTime {
		assert.Zero(t, p.Value)
	}
	assert.Equal(t, 0, snap.ConversionRate)
}

func TestAggregate_PartialDayRoundsUp(t *testing.T) {
	snap := Aggregate(nil, nil, jan1, jan1.Add(36*time.Hour))
	assert.Len(t, snap.ClicksOverTime, 2)

	snap = Aggregate(nil, nil, jan1, jan1)
	assert.Empty(t, snap.ClicksOverTime)
	assert.NotNil(t, snap.ClicksOverTime)
}

func TestAggregate_PreviousPeriodDeltas(t *testing.T) {
	// window Jan 4..Jan 7, previous Jan 1..Jan 4 (exclusive)
	from, to := jan4, jan4.AddDate(0, 0, 3)
	links := []models.Link{
		linkWithClicks("a", "", at(1, 5), at(2, 5), at(5, 5), at(5, 6), at(6, 5)),
		linkWithClicks("b", "", at(2, 5)),
		linkWithClicks("c", "", at(6, 1)),
		linkWithClicks("d", ""),
	}

	snap := Aggregate(links, nil, from, to)

	assert.Equal(t, 4, snap.TotalClicks)
	assert.Equal(t, 33, snap.ClicksChange) // 4 vs 3
	assert.Equal(t, 2, snap.ActiveLinks)
	assert.Equal(t, 0, snap.LinksChange) // 2 vs 2
	assert.Equal(t, 50, snap.ConversionRate)
	assert.Equal(t, 0, snap.ConversionChange)
}

func TestAggregate_BoundaryEventCountedOnce(t *testing.T) {
	from, to := jan4, jan4.AddDate(0, 0, 3)
	snap := Aggregate([]models.Link{linkWithClicks("a", "", from)}, nil, from, to)

	assert.Equal(t, 1, snap.TotalClicks)
	assert.Equal(t, 100, snap.ClicksChange, "boundary click must not count as previous period")
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	// 1 of 8 links active: 12.5% -> 13
	links := []models.Link{linkWithClicks("a", "", at(2, 0))}
	for i := 0; i < 7; i++ {
		links = append(links, linkWithClicks(fmt.Sprintf("idle%d", i), ""))
	}
	snap := Aggregate(links, nil, jan1, jan4)
	assert.Equal(t, 13, snap.ConversionRate)

	assert.Equal(t, -50, percentChange(1, 2))
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, -2, roundHalfUp(-2.5))
}

func TestAggregate_TopLinksOrderAndCap(t *testing.T) {
	var links []models.Link
	for i := 1; i <= 12; i++ {
		var ts []time.Time
		for j := 0; j < i; j++ {
			ts = append(ts, at(2, j%24))
		}
		links = append(links, linkWithClicks(fmt.Sprintf("l%02d", i), "", ts...))
	}

	snap := Aggregate(links, nil, jan1, jan4)

	require.Len(t, snap.TopLinks, 10)
	assert.Equal(t, Point{Label: "l12", Value: 12}, snap.TopLinks[0])
	assert.Equal(t, Point{Label: "l03", Value: 3}, snap.TopLinks[9])
	for i := 1; i < len(snap.TopLinks); i++ {
		assert.Greater(t, snap.TopLinks[i-1].Value, snap.TopLinks[i].Value)
	}
}

func TestAggregate_ByDomainAndDevice(t *testing.T) {
	mobile := models.ClickEvent{Timestamp: at(2, 0), Device: models.DeviceMobile}
	tablet := models.ClickEvent{Timestamp: at(2, 1), Device: models.DeviceTablet}
	links := []models.Link{
		linkWithClicks("a", "acme", at(2, 3)),
		linkWithClicks("b", ""),
		{Slug: "c", Domain: "acme", ClickEvents: []models.ClickEvent{mobile, tablet}},
		linkWithClicks("d", "beta", at(1, 0).Add(-time.Hour)),
	}

	snap := Aggregate(links, []string{"acme", "beta"}, jan1, jan4)

	assert.Equal(t, []Point{
		{Label: "acme", Value: 3},
		{Label: "direct", Value: 0},
		{Label: "beta", Value: 0},
	}, snap.ClicksByDomain)
	assert.Equal(t, []Point{
		{Label: "Desktop", Value: 1},
		{Label: "Mobile", Value: 1},
		{Label: "Tablet", Value: 1},
	}, snap.ClicksByDevice)
	assert.Equal(t, []string{"acme", "beta"}, snap.Domains)
}

func TestAnalyticsService_Analyze(t *testing.T) {
	ctx := context.Background()
	db := storagetest.NewDB(t)
	links := repository.NewLinkRepository(db)
	svc := NewAnalyticsService(links, zap.NewNop())
	owner := createUser(t, db, models.PlanFree, "acme")
	other := createUser(t, db, models.PlanFree)

	require.NoError(t, links.Create(ctx, &models.Link{UserID: owner.ID, OriginalURL: "https://a.example", Slug: "a", Domain: "acme"}))
	require.NoError(t, links.Create(ctx, &models.Link{UserID: other.ID, OriginalURL: "https://b.example", Slug: "b"}))
	for _, slug := range []string{"a", "a"} {
		_, err := links.RecordClick(ctx, "acme", slug, &models.ClickEvent{Timestamp: at(2, 10), Device: models.DeviceMobile})
		require.NoError(t, err)
	}
	_, err := links.RecordClick(ctx, "", "b", &models.ClickEvent{Timestamp: at(2, 10)})
	require.NoError(t, err)

	snap := svc.Analyze(ctx, owner, jan1, jan4)
	assert.Equal(t, 2, snap.TotalClicks)
	assert.Equal(t, 1, snap.ActiveLinks)
	assert.Equal(t, 100, snap.ConversionRate)
	assert.Equal(t, []string{"acme"}, snap.Domains)
	assert.Equal(t, []Point{{Label: "a", Value: 2}}, snap.TopLinks)
}

func TestAnalyticsService_AnalyzeDegradesToEmpty(t *testing.T) {
	db := storagetest.NewDB(t)
	svc := NewAnalyticsService(repository.NewLinkRepository(db), zap.NewNop())

	snap := svc.Analyze(context.Background(), nil, jan1, jan4)
	assert.Equal(t, emptySnapshot(), snap)
	assert.NotNil(t, snap.TopLinks)

	user := createUser(t, db, models.PlanFree)
	assert.Equal(t, emptySnapshot(), svc.Analyze(context.Background(), user, jan4, jan1))
	assert.Equal(t, emptySnapshot(), svc.Analyze(context.Background(), user, jan1.Add(-MaxAnalyticsWindow-time.Second), jan1))
	assert.Equal(t, emptySnapshot(), svc.Analyze(context.Background(), user, time.Time{}, jan1))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Equal(t, emptySnapshot(), svc.Analyze(context.Background(), user, jan1, jan4))
}
