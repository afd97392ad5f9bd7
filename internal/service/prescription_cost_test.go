package service

import (
	"testing"

	"clinic-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestParseCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"2 times a day", 2},
		{"twice a day", 1},
		{"5 days", 5},
		{"", 1},
		{"2-3 times daily", 2},
		{"take 10 drops every 3 hours", 10},
		{"once", 1},
		{"0 times", 1},
	}

	for _, tc := range cases {
		if got := ParseCount(tc.text); got != tc.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestDeriveCost(t *testing.T) {
	line := func(price string, frequency, duration string) entity.PrescriptionMedicine {
		return entity.PrescriptionMedicine{
			Frequency: frequency,
			Duration:  duration,
			Medicine:  entity.Medicine{Price: decimal.RequireFromString(price)},
		}
	}

	t.Run("SingleLine", func(t *testing.T) {
		cost := DeriveCost([]entity.PrescriptionMedicine{
			line("10.50", "2 times a day", "5 days"),
		})

		if len(cost.Medicines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(cost.Medicines))
		}
		if got := cost.Medicines[0].TotalPrice; !got.Equal(decimal.RequireFromString("105.00")) {
			t.Errorf("line total = %s, want 105.00", got)
		}
		if !cost.TotalCost.Equal(decimal.RequireFromString("105.00")) {
			t.Errorf("total = %s, want 105.00", cost.TotalCost)
		}
	})

	t.Run("MissingCountsDefaultToOne", func(t *testing.T) {
		cost := DeriveCost([]entity.PrescriptionMedicine{
			line("7.25", "as needed", ""),
		})

		if cost.Medicines[0].FrequencyPerDay != 1 || cost.Medicines[0].DurationDays != 1 {
			t.Errorf("counts = %d x %d, want 1 x 1",
				cost.Medicines[0].FrequencyPerDay, cost.Medicines[0].DurationDays)
		}
		if !cost.TotalCost.Equal(decimal.RequireFromString("7.25")) {
			t.Errorf("total = %s, want 7.25", cost.TotalCost)
		}
	})

	t.Run("SumAcrossLines", func(t *testing.T) {
		cost := DeriveCost([]entity.PrescriptionMedicine{
			line("10.00", "2 times a day", "3 days"),
			line("5.00", "once a day", "7 days"),
		})

		// 10*2*3 + 5*1*7 = 95
		if !cost.TotalCost.Equal(decimal.RequireFromString("95.00")) {
			t.Errorf("total = %s, want 95.00", cost.TotalCost)
		}
	})

	t.Run("EmptyPrescription", func(t *testing.T) {
		cost := DeriveCost(nil)
		if !cost.TotalCost.Equal(decimal.Zero) {
			t.Errorf("total = %s, want 0", cost.TotalCost)
		}
		if len(cost.Medicines) != 0 {
			t.Errorf("expected no lines, got %d", len(cost.Medicines))
		}
	})
}
