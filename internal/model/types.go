package model

import "time"

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	CategoryChild       = "child"
	CategoryAdultMale   = "adult_male"
	CategoryAdultFemale = "adult_female"
)

type Profile struct {
	Name      string
	Age       int
	Sex       string
	WeightKg  float64
	Category  string
	UpdatedAt time.Time
}

type IntakeEvent struct {
	ID         int64
	FoodKey    string
	FoodName   string
	Quantity   float64
	Unit       string
	SugarG     float64
	ConsumedAt time.Time
}

type DailyRecord struct {
	Date               string
	TotalSugarG        float64
	GovernmentalLimitG float64
	AssociationLimitG  float64
	ArchivedAt         time.Time
}
