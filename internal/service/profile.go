package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Qodor04/gula-cli/internal/model"
)

type SaveProfileInput struct {
	Name     string
	Age      int
	Sex      string
	WeightKg float64
}

// SaveProfile replaces the stored profile wholesale and recomputes the derived
// age/sex category.
func SaveProfile(db *sql.DB, in SaveProfileInput) (*model.Profile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	if in.Age <= 0 {
		return nil, fmt.Errorf("age must be > 0")
	}
	sex := strings.ToLower(strings.TrimSpace(in.Sex))
	if sex != model.SexMale && sex != model.SexFemale {
		return nil, fmt.Errorf("sex must be %q or %q", model.SexMale, model.SexFemale)
	}
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return nil, err
	}

	category := DeriveCategory(in.Age, sex)
	_, err := db.Exec(`
INSERT INTO profile(id, name, age, sex, weight_kg, category, updated_at)
VALUES(1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  age=excluded.age,
  sex=excluded.sex,
  weight_kg=excluded.weight_kg,
  category=excluded.category,
  updated_at=excluded.updated_at
`, in.Name, in.Age, sex, in.WeightKg, category)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return CurrentProfile(db)
}

// CurrentProfile returns the stored profile, or nil when none has been saved.
func CurrentProfile(db *sql.DB) (*model.Profile, error) {
	var p model.Profile
	var updatedAtRaw string
	err := db.QueryRow(`
SELECT name, age, sex, weight_kg, category, updated_at FROM profile WHERE id = 1
`).Scan(&p.Name, &p.Age, &p.Sex, &p.WeightKg, &p.Category, &updatedAtRaw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if t, err := time.Parse("2006-01-02 15:04:05", updatedAtRaw); err == nil {
		p.UpdatedAt = t
	}
	return &p, nil
}

// DeriveCategory maps age and sex to the limit category: under 18 is a child,
// adults split by sex.
func DeriveCategory(age int, sex string) string {
	if age < 18 {
		return model.CategoryChild
	}
	if strings.ToLower(sex) == model.SexMale {
		return model.CategoryAdultMale
	}
	return model.CategoryAdultFemale
}
