package margin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeversForAdHeavyListing(t *testing.T) {
	// Default scenario: ad spend dominates (75 of ~95) so the marketing
	// lever fires; product cost and shipping make the top three but sit
	// under their thresholds. The deeply negative margin adds the pricing
	// lever.
	result, err := Compute(baseInput())
	assert.NoError(t, err)

	assert.Len(t, result.Levers, 2)
	assert.Equal(t, "Marketing", result.Levers[0].Category)
	assert.Equal(t, "Pricing", result.Levers[1].Category)
}

func TestLeversQuietWhenHealthy(t *testing.T) {
	zero := 0.0
	input := Input{
		Price:            100,
		COGS:             4,
		Platform:         "shopify",
		WeightOz:         4,
		ShippingMethod:   "flat",
		FlatShippingCost: 6.00,
		PackagingCost:    &zero,
		ReturnRate:       &zero,
		AdSpend:          AdSpend{ConversionRate: 0.10, CPC: 0.20},
	}
	result, err := Compute(input)
	assert.NoError(t, err)

	// Margin well above 20%, product cost under 40% of total, ad spend under
	// 20%, light weight, no amazon fees, low returns: no levers at all.
	assert.Greater(t, result.Margins.Moderate, 20.0)
	assert.Empty(t, result.Levers)
}

func TestLeversAmazonChannelSuggestion(t *testing.T) {
	zero := 0.0
	input := Input{
		Price:            40,
		COGS:             2,
		Platform:         "amazon",
		WeightOz:         4,
		ShippingMethod:   "flat",
		FlatShippingCost: 1.00,
		PackagingCost:    &zero,
		ReturnRate:       &zero,
		AdSpend:          AdSpend{ConversionRate: 0.5, CPC: 0.25},
	}
	result, err := Compute(input)
	assert.NoError(t, err)

	// Platform fees (6.00) are the largest component; the channel lever fires.
	var channel *Lever
	for i := range result.Levers {
		if result.Levers[i].Category == "Channel" {
			channel = &result.Levers[i]
		}
	}
	assert.NotNil(t, channel)
	assert.InDelta(t, result.Costs.PlatformFees*0.47, channel.PotentialSavings, 1e-9)
}
