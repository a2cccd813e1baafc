package service

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// round2 rounds half away from zero at the second decimal, matching how
// sugar amounts are reported throughout.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format(dateLayout), nil
	}
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t.Format(dateLayout), nil
}

func dayBounds(date string) (string, string, error) {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t.Format(time.RFC3339), t.Add(24 * time.Hour).Format(time.RFC3339), nil
}
