package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestGSTLateFilingFee tests per-day fees, NIL rates, and category caps
func TestGSTLateFilingFee(t *testing.T) {
	calculator := NewGSTPenaltyCalculator()

	tests := []struct {
		name         string
		input        domain.GSTPenaltyInput
		expectedDays int
		expectedFee  decimal.Decimal
		capped       bool
		description  string
	}{
		{
			name: "GSTR-3B filed 26 days late",
			input: domain.GSTPenaltyInput{
				TaxAmount:  decimal.NewFromInt(50000),
				ReturnType: domain.GSTR3B,
				DueDate:    date(2024, time.December, 20),
				FilingDate: date(2025, time.January, 15),
			},
			expectedDays: 26,
			expectedFee:  decimal.NewFromInt(1300), // 50/day * 26
			description:  "Regular GSTR-3B at 50 per day",
		},
		{
			name: "NIL GSTR-3B reduced rate",
			input: domain.GSTPenaltyInput{
				ReturnType: domain.GSTR3B,
				NilReturn:  true,
				DueDate:    date(2024, time.December, 20),
				FilingDate: date(2025, time.January, 15),
			},
			expectedDays: 26,
			expectedFee:  decimal.NewFromInt(520), // 20/day * 26
			description:  "NIL return accrues at the reduced rate",
		},
		{
			name: "Filed on the due date",
			input: domain.GSTPenaltyInput{
				TaxAmount:  decimal.NewFromInt(10000),
				ReturnType: domain.GSTR1,
				DueDate:    date(2025, time.January, 11),
				FilingDate: date(2025, time.January, 11),
			},
			expectedDays: 0,
			expectedFee:  decimal.Zero,
			description:  "On-time filing accrues nothing",
		},
		{
			name: "GSTR-3B fee hits the cap",
			input: domain.GSTPenaltyInput{
				TaxAmount:  decimal.NewFromInt(100000),
				ReturnType: domain.GSTR3B,
				DueDate:    date(2024, time.April, 20),
				FilingDate: date(2024, time.October, 20), // 183 days; 50*183 = 9150
			},
			expectedDays: 183,
			expectedFee:  decimal.NewFromInt(5000),
			capped:       true,
			description:  "GSTR-3B fee capped at 5000",
		},
		{
			name: "GSTR-9 higher rate and cap",
			input: domain.GSTPenaltyInput{
				TaxAmount:  decimal.NewFromInt(100000),
				ReturnType: domain.GSTR9,
				DueDate:    date(2024, time.December, 31),
				FilingDate: date(2025, time.February, 19), // 50 days; 200*50 = 10000
			},
			expectedDays: 50,
			expectedFee:  decimal.NewFromInt(10000),
			description:  "Annual return accrues at 200 per day under its 25000 cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.Calculate(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedDays, result.LateDays, tt.description)
			assert.True(t, result.LateFee.Equal(tt.expectedFee),
				"%s: expected fee %s, got %s", tt.description,
				tt.expectedFee.StringFixed(2), result.LateFee.StringFixed(2))
			assert.Equal(t, tt.capped, result.FeeCapped, tt.description)
			assert.True(t, result.TotalPenalty.Equal(result.LateFee.Add(result.InterestAmount)),
				"total must equal fee plus interest")
		})
	}
}

// TestGSTFeeCapExtreme verifies the cap holds for absurd delays
func TestGSTFeeCapExtreme(t *testing.T) {
	calculator := NewGSTPenaltyCalculator()
	due := date(2020, time.January, 20)

	for returnType, cap := range map[domain.GSTReturnType]decimal.Decimal{
		domain.GSTR3B: decimal.NewFromInt(5000),
		domain.GSTR1:  decimal.NewFromInt(10000),
		domain.GSTR9:  decimal.NewFromInt(25000),
	} {
		result, err := calculator.Calculate(domain.GSTPenaltyInput{
			TaxAmount:  decimal.NewFromInt(1000000),
			ReturnType: returnType,
			DueDate:    due,
			FilingDate: due.AddDate(0, 0, 10000),
		})
		require.NoError(t, err)
		assert.Equal(t, 10000, result.LateDays)
		assert.True(t, result.LateFee.Equal(cap),
			"%s: fee %s exceeds cap %s", returnType, result.LateFee, cap)
		assert.True(t, result.FeeCapped)
	}
}

// TestGSTLatePaymentInterest tests the 18% p.a. daily-prorated interest
func TestGSTLatePaymentInterest(t *testing.T) {
	calculator := NewGSTPenaltyCalculator()

	result, err := calculator.Calculate(domain.GSTPenaltyInput{
		TaxAmount:   decimal.NewFromInt(100000),
		ReturnType:  domain.GSTR3B,
		DueDate:     date(2024, time.December, 20),
		FilingDate:  date(2025, time.January, 15),
		TaxPaidLate: true,
		PaymentDate: date(2025, time.January, 19), // 30 days after due
	})
	require.NoError(t, err)

	// 100000 * 18% * 30/365 = 1479.45
	assert.Equal(t, 30, result.InterestDays)
	assert.True(t, result.InterestAmount.Equal(decimal.NewFromFloat(1479.45)),
		"expected 1479.45, got %s", result.InterestAmount.StringFixed(2))
	assert.True(t, result.TotalPenalty.Equal(decimal.NewFromFloat(2779.45)),
		"expected fee 1300 plus interest, got %s", result.TotalPenalty.StringFixed(2))
}

// TestGSTPenaltyInvalidInput tests explicit rejection of bad inputs
func TestGSTPenaltyInvalidInput(t *testing.T) {
	calculator := NewGSTPenaltyCalculator()

	tests := []struct {
		name    string
		input   domain.GSTPenaltyInput
		wantErr string
	}{
		{
			name: "Filing before due date",
			input: domain.GSTPenaltyInput{
				ReturnType: domain.GSTR3B,
				DueDate:    date(2025, time.January, 20),
				FilingDate: date(2025, time.January, 10),
			},
			wantErr: "before due date",
		},
		{
			name: "Negative tax amount",
			input: domain.GSTPenaltyInput{
				TaxAmount:  decimal.NewFromInt(-500),
				ReturnType: domain.GSTR3B,
				DueDate:    date(2025, time.January, 20),
				FilingDate: date(2025, time.January, 25),
			},
			wantErr: "negative",
		},
		{
			name: "Late payment without payment date",
			input: domain.GSTPenaltyInput{
				TaxAmount:   decimal.NewFromInt(1000),
				ReturnType:  domain.GSTR3B,
				DueDate:     date(2025, time.January, 20),
				FilingDate:  date(2025, time.January, 25),
				TaxPaidLate: true,
			},
			wantErr: "payment date is required",
		},
		{
			name: "Payment before due date",
			input: domain.GSTPenaltyInput{
				TaxAmount:   decimal.NewFromInt(1000),
				ReturnType:  domain.GSTR3B,
				DueDate:     date(2025, time.January, 20),
				FilingDate:  date(2025, time.January, 25),
				TaxPaidLate: true,
				PaymentDate: date(2025, time.January, 15),
			},
			wantErr: "before due date",
		},
		{
			name: "Unknown return type",
			input: domain.GSTPenaltyInput{
				ReturnType: "GSTR-4",
				DueDate:    date(2025, time.January, 20),
				FilingDate: date(2025, time.January, 25),
			},
			wantErr: "unknown GST return type",
		},
		{
			name:    "Missing dates",
			input:   domain.GSTPenaltyInput{ReturnType: domain.GSTR3B},
			wantErr: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculator.Calculate(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
