package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// TestEstimateStampDuty tests the state lookup, floor, and rounding rule
func TestEstimateStampDuty(t *testing.T) {
	estimator := NewStampDutyEstimator()

	tests := []struct {
		name         string
		monthlyRent  decimal.Decimal
		months       int
		stateCode    string
		expectedDuty decimal.Decimal
		description  string
	}{
		{
			name:         "Karnataka standard agreement",
			monthlyRent:  decimal.NewFromInt(25000),
			months:       11,
			stateCode:    "KA",
			expectedDuty: decimal.NewFromInt(2750), // 275000 * 1%
			description:  "1% of total rent in Karnataka",
		},
		{
			name:         "GST code lookup works too",
			monthlyRent:  decimal.NewFromInt(25000),
			months:       11,
			stateCode:    "29",
			expectedDuty: decimal.NewFromInt(2750),
			description:  "Numeric state code resolves the same record",
		},
		{
			name:         "Minimum floor applies",
			monthlyRent:  decimal.NewFromInt(1),
			months:       1,
			stateCode:    "KA",
			expectedDuty: decimal.NewFromInt(100),
			description:  "Tiny rents still pay the 100 floor",
		},
		{
			name:         "Rounded up to nearest ten",
			monthlyRent:  decimal.NewFromInt(9999),
			months:       11,
			stateCode:    "KA",
			expectedDuty: decimal.NewFromInt(1100), // 1099.89 rounds up
			description:  "Duty always lands on a multiple of ten",
		},
		{
			name:         "Unknown state uses the default rate",
			monthlyRent:  decimal.NewFromInt(10000),
			months:       11,
			stateCode:    "ZZ",
			expectedDuty: decimal.NewFromInt(2200), // 110000 * 2%
			description:  "Default 2% for states not in the table",
		},
		{
			name:         "Maharashtra fractional rate",
			monthlyRent:  decimal.NewFromInt(40000),
			months:       12,
			stateCode:    "MH",
			expectedDuty: decimal.NewFromInt(1200), // 480000 * 0.25%
			description:  "Quarter-percent states compute exactly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duty, err := estimator.EstimateStampDuty(tt.monthlyRent, tt.months, tt.stateCode)
			require.NoError(t, err)

			assert.True(t, duty.Equal(tt.expectedDuty),
				"%s: expected %s, got %s", tt.description,
				tt.expectedDuty.StringFixed(2), duty.StringFixed(2))
			assert.True(t, duty.Mod(decimal.NewFromInt(10)).IsZero(),
				"duty %s is not a multiple of ten", duty)
			assert.True(t, duty.GreaterThanOrEqual(decimal.NewFromInt(100)),
				"duty %s is below the floor", duty)
		})
	}
}

// TestComputeAgreementEndDate tests start + months - 1 day arithmetic
func TestComputeAgreementEndDate(t *testing.T) {
	estimator := NewStampDutyEstimator()

	tests := []struct {
		name        string
		start       time.Time
		months      int
		expectedEnd time.Time
	}{
		{
			name:        "Eleven months from the first",
			start:       date(2024, time.June, 1),
			months:      11,
			expectedEnd: date(2025, time.April, 30),
		},
		{
			name:        "Mid-month start",
			start:       date(2024, time.January, 15),
			months:      11,
			expectedEnd: date(2024, time.December, 14),
		},
		{
			name:        "Single month",
			start:       date(2024, time.March, 1),
			months:      1,
			expectedEnd: date(2024, time.March, 31),
		},
		{
			name:        "Across a leap February",
			start:       date(2024, time.February, 1),
			months:      1,
			expectedEnd: date(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := estimator.ComputeAgreementEndDate(tt.start, tt.months)
			require.NoError(t, err)
			assert.True(t, end.Equal(tt.expectedEnd),
				"expected %s, got %s", tt.expectedEnd.Format("2006-01-02"), end.Format("2006-01-02"))
		})
	}
}

// TestRentAgreementCalculations tests the full derived summary
func TestRentAgreementCalculations(t *testing.T) {
	estimator := NewStampDutyEstimator()

	result, err := estimator.Calculate(domain.RentAgreementTerms{
		MonthlyRent:        decimal.NewFromInt(25000),
		SecurityDeposit:    decimal.NewFromInt(100000),
		MaintenanceCharges: decimal.NewFromInt(2000),
		DurationMonths:     11,
		StartDate:          date(2024, time.June, 1),
		StateCode:          "KA",
	})
	require.NoError(t, err)

	assert.True(t, result.TotalSecurityDeposit.Equal(decimal.NewFromInt(100000)))
	assert.True(t, result.FirstMonthTotal.Equal(decimal.NewFromInt(27000)))
	assert.True(t, result.StampDutyEstimate.Equal(decimal.NewFromInt(2750)))
	assert.True(t, result.RegistrationFee.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.AgreementEndDate.Equal(date(2025, time.April, 30)))
}

// TestStampDutyInvalidInput tests explicit rejection of bad terms
func TestStampDutyInvalidInput(t *testing.T) {
	estimator := NewStampDutyEstimator()

	_, err := estimator.EstimateStampDuty(decimal.Zero, 11, "KA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rent must be positive")

	_, err = estimator.EstimateStampDuty(decimal.NewFromInt(10000), 0, "KA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration must be positive")

	_, err = estimator.ComputeAgreementEndDate(time.Time{}, 11)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start date is required")

	_, err = estimator.Calculate(domain.RentAgreementTerms{
		MonthlyRent:     decimal.NewFromInt(10000),
		SecurityDeposit: decimal.NewFromInt(-1),
		DurationMonths:  11,
		StartDate:       date(2024, time.June, 1),
		StateCode:       "KA",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "security deposit cannot be negative")
}
