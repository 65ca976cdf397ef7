package service

import (
	"errors"
	"testing"

	"linkhop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanCreateLink(t *testing.T) {
	tests := []struct {
		plan    models.Plan
		count   int64
		allowed bool
	}{
		{models.PlanFree, 0, true},
		{models.PlanFree, 9, true},
		{models.PlanFree, 10, false},
		{models.PlanBasic, 49, true},
		{models.PlanBasic, 50, false},
		{models.PlanPremium, 1_000_000, true},
		{models.Plan("bogus"), 10, false},
	}
	for _, tt := range tests {
		err := CanCreateLink(tt.plan, tt.count)
		if tt.allowed {
			assert.NoError(t, err, "%s/%d", tt.plan, tt.count)
			continue
		}
		assert.ErrorIs(t, err, ErrLinkLimitReached, "%s/%d", tt.plan, tt.count)
	}
}

func TestLimitErrorMessageNamesPlan(t *testing.T) {
	err := CanCreateLink(models.PlanFree, 10)

	var limitErr *LimitError
	assert.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 10, limitErr.Limit)
	assert.Equal(t, "You've reached the maximum number of links for the free plan. Please upgrade to create more links.", err.Error())
}

func TestPlanLimitsIsACopy(t *testing.T) {
	got := PlanLimits()
	got[0].MaxLinks = 999
	assert.Equal(t, 10, PlanLimits()[0].MaxLinks)
}
