package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dandresen1/margin-mindset-43/catalog"
)

func TestFromCostWithCompetitors(t *testing.T) {
	cogs := 8.0
	prices := []float64{10, 20, 30, 40, 50}

	strategies := FromCost(cogs, prices, catalog.CategoryElectronics, 4.50)
	assert.Len(t, strategies, 3)

	conservative, market, aggressive := strategies[0], strategies[1], strategies[2]

	assert.Equal(t, "Conservative", conservative.Name)
	assert.Equal(t, 40.0, conservative.SellingPrice) // p75 beats cogs*2.5=20
	assert.Equal(t, 3.2, conservative.EstimatedROAS)
	assert.Equal(t, "Low", conservative.RiskLevel)

	assert.Equal(t, "Market", market.Name)
	assert.Equal(t, 30.0, market.SellingPrice) // p50 beats cogs*2=16
	assert.Equal(t, 2.1, market.EstimatedROAS)

	assert.Equal(t, "Aggressive", aggressive.Name)
	assert.Equal(t, 20.0, aggressive.SellingPrice) // p25 beats cogs*1.5=12
	assert.Equal(t, 1.6, aggressive.EstimatedROAS)
	assert.Equal(t, "High", aggressive.RiskLevel)
}

func TestFromCostFallsBackToCostMultiples(t *testing.T) {
	strategies := FromCost(10, nil, catalog.CategoryUnknown, 0)

	assert.Equal(t, 25.0, strategies[0].SellingPrice) // cogs * 2.5
	assert.Equal(t, 20.0, strategies[1].SellingPrice) // cogs * 2
	assert.Equal(t, 15.0, strategies[2].SellingPrice) // cogs * 1.5
}

func TestFromCostCostFloorsBeatLowPercentiles(t *testing.T) {
	// Competitor prices below cost multiples: the floor wins so no tier can
	// price below viability.
	strategies := FromCost(20, []float64{5, 6, 7}, catalog.CategoryHome, 0)

	assert.Equal(t, 50.0, strategies[0].SellingPrice)
	assert.Equal(t, 40.0, strategies[1].SellingPrice)
	assert.Equal(t, 30.0, strategies[2].SellingPrice)
}

func TestStrategyMetrics(t *testing.T) {
	strategies := FromCost(8, []float64{10, 20, 30, 40, 50}, catalog.CategoryElectronics, 4.50)
	market := strategies[1]

	// price 30: costs = 8 + 4.50 + (30*0.029 + 0.30) = 13.67
	assert.InDelta(t, 13.67, market.Metrics.BreakEven, 1e-9)
	profit := 30.0 - 13.67
	assert.InDelta(t, profit, market.Metrics.ProfitPerUnit, 1e-9)
	assert.InDelta(t, profit/2.1, market.Metrics.TargetCPC, 1e-9)
	assert.InDelta(t, profit/30.0*100, market.EstimatedMargin, 1e-9)
}

func TestStrategyMetricsFloors(t *testing.T) {
	// Razor-thin profit: target CPC floors at $0.10 and required conversion
	// at 0.5% rather than going to zero.
	strategies := FromCost(10, []float64{15.3, 15.4, 15.45}, catalog.CategoryUnknown, 4.50)
	aggressive := strategies[2]

	assert.Equal(t, 0.10, aggressive.Metrics.TargetCPC)
	assert.GreaterOrEqual(t, aggressive.Metrics.RequiredConversion, 0.5)
}
