package service

import "github.com/Qodor04/gula-cli/internal/model"

// Daily sugar ceilings. Kemenkes RI publishes a flat 50 g/day limit; the
// American Heart Association recommends category-specific ceilings.
const KemenkesDailyLimitG = 50

var ahaDailyLimitsG = map[string]float64{
	model.CategoryChild:       25,
	model.CategoryAdultMale:   36,
	model.CategoryAdultFemale: 25,
}

type Limits struct {
	GovernmentalG    float64 `json:"governmental_g"`
	AssociationG     float64 `json:"association_g,omitempty"`
	AssociationKnown bool    `json:"association_known"`
}

// ResolveLimits is a pure function of the profile. Without a profile only the
// flat governmental ceiling applies and the association limit is undetermined.
func ResolveLimits(profile *model.Profile) Limits {
	limits := Limits{GovernmentalG: KemenkesDailyLimitG}
	if profile == nil {
		return limits
	}
	if aha, ok := ahaDailyLimitsG[profile.Category]; ok {
		limits.AssociationG = aha
		limits.AssociationKnown = true
	}
	return limits
}
