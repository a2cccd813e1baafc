// Package catalog holds the static reference table of foods and drinks with
// their sugar density and typical serving size. The table is embedded at
// compile time and immutable for the life of the process.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed foods.yaml
var foodsYAML []byte

type Food struct {
	Key          string  `yaml:"key"`
	Category     string  `yaml:"category"`
	SugarPer100G float64 `yaml:"sugar_per_100g"`
	ServingUnit  string  `yaml:"serving_unit"`
	ServingMassG float64 `yaml:"serving_mass_g"`
}

// DisplayName renders the key for humans: "teh_manis" -> "Teh Manis".
func (f Food) DisplayName() string {
	parts := strings.Split(f.Key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

type catalogFile struct {
	Foods []Food `yaml:"foods"`
}

var (
	foodsByKey map[string]Food
	sortedKeys []string
)

func init() {
	var parsed catalogFile
	if err := yaml.Unmarshal(foodsYAML, &parsed); err != nil {
		panic(fmt.Sprintf("catalog: parse embedded foods.yaml: %v", err))
	}
	foodsByKey = make(map[string]Food, len(parsed.Foods))
	for _, f := range parsed.Foods {
		if f.Key == "" {
			panic("catalog: food entry with empty key")
		}
		if _, dup := foodsByKey[f.Key]; dup {
			panic(fmt.Sprintf("catalog: duplicate food key %q", f.Key))
		}
		if f.SugarPer100G < 0 {
			panic(fmt.Sprintf("catalog: food %q has negative sugar density", f.Key))
		}
		if f.ServingUnit != "" && f.ServingMassG <= 0 {
			panic(fmt.Sprintf("catalog: food %q has serving unit %q without a positive serving mass", f.Key, f.ServingUnit))
		}
		foodsByKey[f.Key] = f
		sortedKeys = append(sortedKeys, f.Key)
	}
	sort.Strings(sortedKeys)
}

// Normalize turns user input into a catalog key: lowercase, trimmed,
// spaces replaced with underscores.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func Lookup(name string) (Food, bool) {
	f, ok := foodsByKey[Normalize(name)]
	return f, ok
}

func All() []Food {
	out := make([]Food, 0, len(sortedKeys))
	for _, k := range sortedKeys {
		out = append(out, foodsByKey[k])
	}
	return out
}

func Search(term string) []Food {
	needle := Normalize(term)
	out := make([]Food, 0)
	for _, k := range sortedKeys {
		if strings.Contains(k, needle) {
			out = append(out, foodsByKey[k])
		}
	}
	return out
}

func Categories() []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, k := range sortedKeys {
		c := foodsByKey[k].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

func ByCategory(category string) []Food {
	needle := Normalize(category)
	out := make([]Food, 0)
	for _, k := range sortedKeys {
		if foodsByKey[k].Category == needle {
			out = append(out, foodsByKey[k])
		}
	}
	return out
}
