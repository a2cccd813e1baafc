package service

import (
	"fmt"
	"strings"

	"github.com/Qodor04/gula-cli/internal/catalog"
)

// Generic household measures in gram equivalents. A food's own serving unit
// takes precedence over this table, so a boba cup resolves to the drink's
// catalog mass rather than the generic 240 g.
var unitGramTable = map[string]float64{
	"sendok teh":   5,
	"sendok makan": 15,
	"teaspoon":     5,
	"tablespoon":   15,
	"cup":          240,
	"gelas":        240,
	"kaleng":       330,
	"botol":        500,
}

var directUnits = map[string]bool{
	"gram":       true,
	"g":          true,
	"ml":         true,
	"milliliter": true,
}

func normalizeUnit(unit string) string {
	return strings.Join(strings.Fields(strings.ToLower(unit)), " ")
}

// ConvertToGrams resolves a reported (quantity, unit) pair to a mass in grams
// for the given food. Resolution order: direct gram/ml passthrough, the
// food's own serving unit, then the generic household table.
func ConvertToGrams(food catalog.Food, quantity float64, unit string) (float64, error) {
	if err := validatePositiveFloat("quantity", quantity); err != nil {
		return 0, err
	}
	u := normalizeUnit(unit)
	if u == "" {
		return 0, fmt.Errorf("unit is required")
	}

	var mass float64
	switch {
	case directUnits[u]:
		mass = quantity
	case food.ServingUnit != "" && u == normalizeUnit(food.ServingUnit):
		mass = quantity * food.ServingMassG
	default:
		grams, ok := unitGramTable[u]
		if !ok {
			return 0, fmt.Errorf("%w: %q for %s", ErrUnsupportedUnit, unit, food.DisplayName())
		}
		mass = quantity * grams
	}

	if mass <= 0 {
		return 0, fmt.Errorf("%w: %g %s of %s", ErrNonPositiveMass, quantity, unit, food.DisplayName())
	}
	return mass, nil
}

// SugarGrams computes the sugar content of a mass of food, rounded half away
// from zero to two decimals.
func SugarGrams(food catalog.Food, massG float64) float64 {
	return round2(food.SugarPer100G * massG / 100)
}
