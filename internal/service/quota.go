package service

import "linkhop/internal/models"

// Unlimited marks a plan limit that is never enforced.
const Unlimited = -1

type PlanInfo struct {
	ID          models.Plan `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       string      `json:"price"`
	MaxLinks    int         `json:"max_links"`
	MaxDomains  int         `json:"max_domains"`
	Features    []string    `json:"features"`
}

var plans = []PlanInfo{
	{
		ID:          models.PlanFree,
		Name:        "Free",
		Description: "Basic features for personal use",
		Price:       "$0",
		MaxLinks:    10,
		MaxDomains:  1,
		Features:    []string{"Up to 10 active links", "1 custom domain", "Basic analytics", "Standard support"},
	},
	{
		ID:          models.PlanBasic,
		Name:        "Basic",
		Description: "Essential features for small businesses",
		Price:       "$9.99",
		MaxLinks:    50,
		MaxDomains:  5,
		Features:    []string{"Up to 50 active links", "5 custom domains", "Advanced analytics", "Priority support", "Custom slugs"},
	},
	{
		ID:          models.PlanPremium,
		Name:        "Premium",
		Description: "Advanced features for growing businesses",
		Price:       "$19.99",
		MaxLinks:    Unlimited,
		MaxDomains:  10,
		Features: []string{
			"Unlimited active links",
			"10 custom domains",
			"Advanced analytics with exports",
			"Priority support",
			"Custom slugs",
			"API access",
		},
	},
}

// PlanLimits returns the plan table in display order.
func PlanLimits() []PlanInfo {
	out := make([]PlanInfo, len(plans))
	copy(out, plans)
	return out
}

func planInfo(plan models.Plan) (PlanInfo, bool) {
	for _, p := range plans {
		if p.ID == plan {
			return p, true
		}
	}
	return PlanInfo{}, false
}

// CanCreateLink reports whether a user on plan who already owns count links may create
// one more. Unknown plans get the free tier limits.
func CanCreateLink(plan models.Plan, count int64) error {
	info, ok := planInfo(plan)
	if !ok {
		info, _ = planInfo(models.PlanFree)
		plan = models.PlanFree
	}
	if info.MaxLinks == Unlimited {
		return nil
	}
	if count >= int64(info.MaxLinks) {
		return &LimitError{Plan: plan, Limit: info.MaxLinks}
	}
	return nil
}
