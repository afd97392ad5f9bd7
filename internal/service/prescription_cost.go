package service

import (
	"regexp"
	"strconv"

	"clinic-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var firstNumberPattern = regexp.MustCompile(`\d+`)

// MedicineCost is one prescription line annotated with its parsed counts
// and computed total.
type MedicineCost struct {
	Line            entity.PrescriptionMedicine
	FrequencyPerDay int
	DurationDays    int
	TotalPrice      decimal.Decimal
}

// PrescriptionCost is the full derived cost breakdown of a prescription.
type PrescriptionCost struct {
	Medicines []MedicineCost
	TotalCost decimal.Decimal
}

// ParseCount extracts the first integer token from a free-text dosage
// field such as "2 times a day" or "5 days". Text without a digit counts
// as 1, never 0, so a data-entry gap cannot zero out a line total.
// Multi-number strings ("2-3 times") take the first match.
func ParseCount(text string) int {
	match := firstNumberPattern.FindString(text)
	if match == "" {
		return 1
	}
	n, err := strconv.Atoi(match)
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// DeriveCost computes unit price x frequency x duration for each line and
// sums the totals. It is pure and persists nothing; the database-side
// calculate_prescription_cost function applies the same rules.
func DeriveCost(lines []entity.PrescriptionMedicine) *PrescriptionCost {
	result := &PrescriptionCost{
		Medicines: make([]MedicineCost, 0, len(lines)),
		TotalCost: decimal.Zero,
	}

	for _, line := range lines {
		frequency := ParseCount(line.Frequency)
		duration := ParseCount(line.Duration)

		total := line.Medicine.Price.
			Mul(decimal.NewFromInt(int64(frequency))).
			Mul(decimal.NewFromInt(int64(duration)))

		result.Medicines = append(result.Medicines, MedicineCost{
			Line:            line,
			FrequencyPerDay: frequency,
			DurationDays:    duration,
			TotalPrice:      total,
		})
		result.TotalCost = result.TotalCost.Add(total)
	}

	return result
}
