package margin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseInput() Input {
	return Input{
		Price:          29.99,
		COGS:           8.00,
		Platform:       "amazon",
		WeightOz:       8,
		ShippingMethod: "calculated",
		AdSpend:        AdSpend{ConversionRate: 0.02, CPC: 1.50},
	}
}

func TestComputeDefaultScenario(t *testing.T) {
	result, err := Compute(baseInput())
	assert.NoError(t, err)

	assert.InDelta(t, 4.4985, result.Costs.PlatformFees, 1e-9)
	assert.InDelta(t, 1.1697, result.Costs.Processing, 1e-4)
	assert.InDelta(t, 5.50, result.Costs.Shipping, 1e-9)
	assert.InDelta(t, 75.00, result.Costs.AdSpend, 1e-9)
	assert.InDelta(t, 8.50, result.Costs.ProductCost, 1e-9) // cogs + 0.50 packaging default
	assert.InDelta(t, 0.675, result.Costs.Returns, 1e-9)    // 0.05 * (8.00 + 5.50)

	totalCosts := result.Costs.ProductCost + result.Costs.Shipping + result.Costs.PlatformFees +
		result.Costs.AdSpend + result.Costs.Returns + result.Costs.Processing
	assert.InDelta(t, 95.34, totalCosts, 0.01)
	assert.InDelta(t, totalCosts, result.BreakevenPrice, 1e-9)

	assert.InDelta(t, -217.9, result.Margins.Moderate, 0.1)
	assert.Equal(t, "NO-GO", result.Recommendation.Verdict)
	assert.Equal(t, float64(90), result.Recommendation.Confidence)
	assert.True(t, strings.HasPrefix(result.ID, "analysis-"))
}

func TestComputeTotalCostsIsSumOfComponents(t *testing.T) {
	input := baseInput()
	input.Price = 120
	input.COGS = 22.50
	input.AdSpend = AdSpend{ConversionRate: 0.04, CPC: 0.80}

	result, err := Compute(input)
	assert.NoError(t, err)

	sum := result.Costs.ProductCost + result.Costs.Shipping + result.Costs.PlatformFees +
		result.Costs.AdSpend + result.Costs.Returns + result.Costs.Processing
	assert.InDelta(t, sum, result.BreakevenPrice, 1e-9)

	expectedMargin := (input.Price - sum) / input.Price * 100
	assert.InDelta(t, expectedMargin, result.Margins.Moderate, 1e-9)
}

func TestComputeValidation(t *testing.T) {
	input := baseInput()
	input.Price = 0
	_, err := Compute(input)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	input = baseInput()
	input.AdSpend.ConversionRate = 0
	_, err = Compute(input)
	assert.ErrorIs(t, err, ErrInvalidConversionRate)

	input = baseInput()
	input.COGS = -1
	_, err = Compute(input)
	assert.ErrorIs(t, err, ErrInvalidCOGS)
}

// priceForMargin backs out the price that yields a desired margin on a
// shopify listing with no ads beyond a fixed spend, so verdict boundaries can
// be probed exactly.
func marginFor(t *testing.T, price float64, cogs float64) (*AnalysisResult, float64) {
	t.Helper()
	zero := 0.0
	input := Input{
		Price:          price,
		COGS:           cogs,
		Platform:       "shopify",
		WeightOz:       4,
		ShippingMethod: "flat",
		PackagingCost:  &zero,
		ReturnRate:     &zero,
		AdSpend:        AdSpend{ConversionRate: 1, CPC: 0.0001},
	}
	result, err := Compute(input)
	assert.NoError(t, err)
	return result, result.Margins.Moderate
}

func TestVerdictThresholds(t *testing.T) {
	cases := []struct {
		margin     float64
		verdict    string
		confidence float64
	}{
		{30.0, "GO", 85},
		{25.0, "GO", 85}, // boundary inclusive on the GO side
		{24.999, "CAUTION", 70},
		{15.0, "CAUTION", 70},
		{14.999, "CAUTION", 50},
		{5.0, "CAUTION", 50},
		{4.999, "NO-GO", 90},
		{-10.0, "NO-GO", 90},
	}
	for _, tc := range cases {
		rec := verdictFor(tc.margin)
		assert.Equal(t, tc.verdict, rec.Verdict, "margin %.3f", tc.margin)
		assert.Equal(t, tc.confidence, rec.Confidence, "margin %.3f", tc.margin)
	}
}

func TestVerdictMatchesComputedMargin(t *testing.T) {
	// A comfortably profitable listing lands on GO end to end.
	result, m := marginFor(t, 100, 40)
	assert.Greater(t, m, 25.0)
	assert.Equal(t, "GO", result.Recommendation.Verdict)
}

func TestShippingTiers(t *testing.T) {
	cases := []struct {
		weightOz float64
		cost     float64
	}{
		{4.0, 4.50},
		{4.01, 5.50},
		{8.0, 5.50},
		{16.0, 6.50},
		{16.01, 9.50},
	}
	for _, tc := range cases {
		input := baseInput()
		input.WeightOz = tc.weightOz
		result, err := Compute(input)
		assert.NoError(t, err)
		assert.Equal(t, tc.cost, result.Costs.Shipping, "weight %.2foz", tc.weightOz)
	}
}

func TestFlatShippingOverridesTiers(t *testing.T) {
	input := baseInput()
	input.ShippingMethod = "flat"
	input.FlatShippingCost = 3.25
	result, err := Compute(input)
	assert.NoError(t, err)
	assert.Equal(t, 3.25, result.Costs.Shipping)
}

func TestMarginSpread(t *testing.T) {
	input := baseInput()
	input.Price = 200
	input.COGS = 10
	input.AdSpend = AdSpend{ConversionRate: 0.05, CPC: 0.50}
	result, err := Compute(input)
	assert.NoError(t, err)

	m := result.Margins.Moderate
	assert.InDelta(t, m-5, result.Margins.Conservative, 1e-9)
	assert.InDelta(t, m+3, result.Margins.Aggressive, 1e-9)

	// Conservative never goes negative even when moderate margin is tiny
	result2, _ := marginFor(t, 100, 97)
	assert.GreaterOrEqual(t, result2.Margins.Conservative, 0.0)
}

func TestTargetCPCPolicy(t *testing.T) {
	input := baseInput()
	input.Price = 150
	input.COGS = 20
	input.AdSpend = AdSpend{ConversionRate: 0.03, CPC: 1.00}
	result, err := Compute(input)
	assert.NoError(t, err)

	profit := input.Price - result.BreakevenPrice
	assert.InDelta(t, 0.03*profit*0.3, result.TargetCPC, 1e-9)
	assert.InDelta(t, input.Price/result.Costs.AdSpend, result.ROAS, 1e-9)
}

func TestPlatformFeeFallbacks(t *testing.T) {
	// Platforms outside the flat table pick up the catalog referral rate,
	// so URL-driven analyses never understate marketplace fees. Entirely
	// unknown platforms get the flat 15% estimate.
	cases := []struct {
		platform string
		rate     float64
	}{
		{"walmart", 0.15},
		{"aliexpress", 0.08},
		{"generic", 0.10},
		{"ebay", 0.1325},
		{"craigslist", 0.15},
	}
	for _, tc := range cases {
		input := baseInput()
		input.Platform = tc.platform
		result, err := Compute(input)
		assert.NoError(t, err)
		assert.InDelta(t, input.Price*tc.rate, result.Costs.PlatformFees, 1e-9, tc.platform)
	}
}
