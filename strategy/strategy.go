package strategy

import (
	"github.com/Dandresen1/margin-mindset-43/catalog"
	"github.com/Dandresen1/margin-mindset-43/utils"
)

// Metrics are the per-strategy unit economics at the strategy's price point.
type Metrics struct {
	BreakEven          float64 `json:"break_even"`
	TargetCPC          float64 `json:"target_cpc"`
	ProfitPerUnit      float64 `json:"profit_per_unit"`
	RequiredConversion float64 `json:"required_conversion"`
}

// PricingStrategy is one of the three tiers derived from competitor pricing.
type PricingStrategy struct {
	Name            string  `json:"name"` // Conservative, Market, Aggressive
	SellingPrice    float64 `json:"selling_price"`
	EstimatedMargin float64 `json:"estimated_margin"`
	EstimatedROAS   float64 `json:"estimated_roas"`
	RiskLevel       string  `json:"risk_level"`
	Description     string  `json:"description"`
	MonthlyVolume   string  `json:"monthly_volume"`
	Metrics         Metrics `json:"metrics"`
}

// Note on ROAS targets: the aggressive tier deliberately carries the LOWEST
// target (1.6 vs conservative's 3.2). That reflects willingness to spend more
// per conversion to chase volume, not higher ad efficiency. Do not reorder.
const (
	conservativeROAS = 3.2
	marketROAS       = 2.1
	aggressiveROAS   = 1.6
)

// FromCost derives three pricing tiers from competitor price percentiles,
// floored by cost multiples so sparse or empty competitor sets still yield
// workable prices. Strategies come back ordered Conservative, Market,
// Aggressive: decreasing price, increasing risk.
func FromCost(cogs float64, competitorPrices []float64, category catalog.ProductCategory, platformFees float64) []PricingStrategy {
	p25 := utils.Percentile(competitorPrices, 0.25)
	p50 := utils.Percentile(competitorPrices, 0.50)
	p75 := utils.Percentile(competitorPrices, 0.75)

	conservativePrice := maxf(p75, cogs*2.5)
	marketPrice := maxf(p50, cogs*2)
	aggressivePrice := maxf(p25, cogs*1.5)

	return []PricingStrategy{
		{
			Name:            "Conservative",
			SellingPrice:    conservativePrice,
			EstimatedROAS:   conservativeROAS,
			RiskLevel:       "Low",
			Description:     "Premium positioning with healthy margins and lower competition risk",
			MonthlyVolume:   "Lower volume (50-150 units), focus on profitability",
			EstimatedMargin: marginAt(conservativePrice, cogs, platformFees),
			Metrics:         metricsAt(conservativePrice, cogs, platformFees, conservativeROAS),
		},
		{
			Name:            "Market",
			SellingPrice:    marketPrice,
			EstimatedROAS:   marketROAS,
			RiskLevel:       "Medium",
			Description:     "Competitive pricing aligned with market standards",
			MonthlyVolume:   "Balanced volume (150-400 units), sustainable growth",
			EstimatedMargin: marginAt(marketPrice, cogs, platformFees),
			Metrics:         metricsAt(marketPrice, cogs, platformFees, marketROAS),
		},
		{
			Name:            "Aggressive",
			SellingPrice:    aggressivePrice,
			EstimatedROAS:   aggressiveROAS,
			RiskLevel:       "High",
			Description:     "Volume-focused strategy requiring excellent execution",
			MonthlyVolume:   "High volume (400+ units), requires scale efficiency",
			EstimatedMargin: marginAt(aggressivePrice, cogs, platformFees),
			Metrics:         metricsAt(aggressivePrice, cogs, platformFees, aggressiveROAS),
		},
	}
}

func totalCostsAt(price, cogs, platformFees float64) float64 {
	// Platform fees plus standard payment processing
	return cogs + platformFees + (price*0.029 + 0.30)
}

func marginAt(price, cogs, platformFees float64) float64 {
	profit := price - totalCostsAt(price, cogs, platformFees)
	return profit / price * 100
}

func metricsAt(price, cogs, platformFees, roas float64) Metrics {
	totalCosts := totalCostsAt(price, cogs, platformFees)
	profit := price - totalCosts
	targetCPC := profit / roas
	requiredConversion := targetCPC / profit * 100

	return Metrics{
		BreakEven:          totalCosts,
		TargetCPC:          maxf(0.10, targetCPC),
		ProfitPerUnit:      profit,
		RequiredConversion: maxf(0.5, requiredConversion),
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
