package advisor

import (
	"fmt"
	"sort"

	"github.com/Dandresen1/margin-mindset-43/competitors"
	"github.com/Dandresen1/margin-mindset-43/margin"
	"github.com/Dandresen1/margin-mindset-43/utils"
)

// Input is the full picture the advisory engine reasons over: computed
// margins and costs from the unit-economics engine plus market and
// competitor context.
type Input struct {
	Margins        margin.Margins       `json:"margins"`
	Costs          margin.Costs         `json:"costs"`
	Market         margin.Market        `json:"market"`
	Competitors    []competitors.Record `json:"competitors"`
	BreakevenPrice float64              `json:"breakeven_price"`
	ROAS           float64              `json:"roas"`
	TargetCPC      float64              `json:"target_cpc"`
	Product        ProductInfo          `json:"product"`
}

type ProductInfo struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	SupplierPrice float64 `json:"supplier_price"`
}

// PricingStrategy is the advisory-side strategy shape. It deliberately
// differs from the strategy package: this variant is derived from breakeven
// price, not COGS, because advisory runs after the cost stack is known.
type PricingStrategy struct {
	Strategy          string  `json:"strategy"` // conservative, market, aggressive
	Price             float64 `json:"price"`
	Margin            float64 `json:"margin"`
	ROASTarget        float64 `json:"roas_target"`
	VolumeExpectation string  `json:"volume_expectation"`
	RiskLevel         string  `json:"risk_level"`
	Rationale         string  `json:"rationale"`
}

type Risk struct {
	Category    string  `json:"category"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
	Mitigation  string  `json:"mitigation"`
	ImpactScore int     `json:"impact_score"`
}

type SuccessMetric struct {
	Metric     string `json:"metric"`
	Target     string `json:"target"`
	Checkpoint string `json:"checkpoint"`
	Frequency  string `json:"frequency"`
}

type OverallRecommendation struct {
	Verdict    string   `json:"verdict"`
	Reasoning  string   `json:"reasoning"`
	ActionPlan []string `json:"action_plan"`
}

type Output struct {
	ConfidenceScore   float64               `json:"confidence_score"`
	PricingStrategies []PricingStrategy     `json:"pricing_strategies"`
	TopRisks          []Risk                `json:"top_risks"`
	SuccessMetrics    []SuccessMetric       `json:"success_metrics"`
	Overall           OverallRecommendation `json:"overall_recommendation"`
}

// categoryROAS maps product categories to their standard return-on-ad-spend
// targets. Unmatched categories fall back to the general 2.4.
var categoryROAS = map[string]float64{
	"Electronics":   2.5,
	"Clothing":      2.0,
	"Beauty":        2.8,
	"Home & Garden": 2.2,
	"Sports":        2.3,
	"Books":         1.8,
	"Health":        2.6,
	"General":       2.4,
}

func CategoryStandardROAS(category string) float64 {
	if roas, ok := categoryROAS[category]; ok {
		return roas
	}
	return 2.4
}

// Generate combines margins, market health, ROAS and ad-spend ratios into a
// confidence score, ranked risks, success metrics and an overall verdict.
func Generate(input Input) Output {
	strategies := FromBreakeven(input)

	return Output{
		ConfidenceScore:   confidenceScore(input),
		PricingStrategies: strategies,
		TopRisks:          riskAssessment(input),
		SuccessMetrics:    successMetrics(input),
		Overall:           overallRecommendation(input),
	}
}

// FromBreakeven is the advisory-side three-tier strategy generator. It uses
// the same percentiles as the strategy package but falls back to breakeven
// multiples (x1.4/x1.25/x1.1) instead of COGS multiples, and keeps its own
// ROAS targets. The two generators evolved separately and are kept separate;
// unifying them would silently change behavior at their respective call
// sites.
func FromBreakeven(input Input) []PricingStrategy {
	prices := make([]float64, 0, len(input.Competitors))
	for _, c := range input.Competitors {
		if c.Price > 0 {
			prices = append(prices, c.Price)
		}
	}

	conservativePrice := utils.Percentile(prices, 0.75)
	if conservativePrice == 0 {
		conservativePrice = input.BreakevenPrice * 1.4
	}
	marketPrice := utils.Percentile(prices, 0.50)
	if marketPrice == 0 {
		marketPrice = input.BreakevenPrice * 1.25
	}
	aggressivePrice := utils.Percentile(prices, 0.25)
	if aggressivePrice == 0 {
		aggressivePrice = input.BreakevenPrice * 1.1
	}

	return []PricingStrategy{
		{
			Strategy:          "conservative",
			Price:             conservativePrice,
			Margin:            input.Margins.Conservative,
			ROASTarget:        3.0,
			VolumeExpectation: "Lower volume, higher margin per unit",
			RiskLevel:         "low",
			Rationale:         "Premium positioning reduces competition risk, ensures healthy margins",
		},
		{
			Strategy:          "market",
			Price:             marketPrice,
			Margin:            input.Margins.Moderate,
			ROASTarget:        CategoryStandardROAS(input.Product.Category),
			VolumeExpectation: "Balanced volume and margin approach",
			RiskLevel:         "medium",
			Rationale:         "Market-aligned pricing for competitive positioning",
		},
		{
			Strategy:          "aggressive",
			Price:             aggressivePrice,
			Margin:            input.Margins.Aggressive,
			ROASTarget:        1.5,
			VolumeExpectation: "High volume required to compensate for lower margins",
			RiskLevel:         "high",
			Rationale:         "Volume-focused strategy requiring excellent execution",
		},
	}
}

// confidenceScore weighs competitor count (40), market data (30) and
// financial completeness (30), capped at 100.
func confidenceScore(input Input) float64 {
	score := 0.0

	switch n := len(input.Competitors); {
	case n >= 10:
		score += 40
	case n >= 5:
		score += 30
	case n >= 3:
		score += 20
	default:
		score += 10
	}

	if input.Market.TrendScore > 0 {
		score += 15
	}
	if input.Market.Saturation > 0 {
		score += 15
	}

	if input.ROAS > 0 {
		score += 10
	}
	if input.BreakevenPrice > 0 {
		score += 10
	}
	if input.Costs.AdSpend > 0 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func avgMargin(m margin.Margins) float64 {
	return (m.Conservative + m.Moderate + m.Aggressive) / 3
}

// riskAssessment evaluates five independent risk conditions and returns the
// top three by impact score.
func riskAssessment(input Input) []Risk {
	var risks []Risk

	if input.Market.Saturation > 70 {
		risks = append(risks, Risk{
			Category:    "Market Competition",
			Severity:    "high",
			Description: fmt.Sprintf("High market saturation (%.0f%%) indicates intense competition", input.Market.Saturation),
			Mitigation:  "Focus on unique value propositions, superior customer service, or niche targeting",
			ImpactScore: 8,
		})
	}

	if avg := avgMargin(input.Margins); avg < 15 {
		risks = append(risks, Risk{
			Category:    "Profitability",
			Severity:    "high",
			Description: fmt.Sprintf("Low average margin (%.1f%%) leaves little room for error", avg),
			Mitigation:  "Negotiate better COGS, optimize shipping, or increase prices",
			ImpactScore: 9,
		})
	}

	baseCosts := input.Costs.ProductCost + input.Costs.Shipping + input.Costs.PlatformFees
	if baseCosts > 0 && input.Costs.AdSpend/baseCosts > 2 {
		risks = append(risks, Risk{
			Category:    "Customer Acquisition",
			Severity:    "high",
			Description: "High advertising costs relative to other expenses",
			Mitigation:  "Improve organic reach, optimize ad targeting, build brand awareness",
			ImpactScore: 7,
		})
	}

	if input.Market.TrendScore < 40 {
		risks = append(risks, Risk{
			Category:    "Market Demand",
			Severity:    "medium",
			Description: fmt.Sprintf("Declining market trend (%.0f%% score)", input.Market.TrendScore),
			Mitigation:  "Monitor demand closely, prepare exit strategy, diversify product line",
			ImpactScore: 6,
		})
	}

	if cheapest, ok := cheapestCompetitor(input.Competitors); ok && cheapest < input.BreakevenPrice*1.1 {
		risks = append(risks, Risk{
			Category:    "Price Competition",
			Severity:    "medium",
			Description: "Competitors pricing near your breakeven point",
			Mitigation:  "Differentiate through quality, service, or bundling strategies",
			ImpactScore: 5,
		})
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].ImpactScore > risks[j].ImpactScore
	})
	if len(risks) > 3 {
		risks = risks[:3]
	}
	return risks
}

func cheapestCompetitor(records []competitors.Record) (float64, bool) {
	found := false
	min := 0.0
	for _, r := range records {
		if r.Price <= 0 {
			continue
		}
		if !found || r.Price < min {
			min = r.Price
			found = true
		}
	}
	return min, found
}

func successMetrics(input Input) []SuccessMetric {
	return []SuccessMetric{
		{
			Metric:     "ROAS (Return on Ad Spend)",
			Target:     fmt.Sprintf(">= %.1fx", CategoryStandardROAS(input.Product.Category)),
			Checkpoint: "Review weekly, optimize monthly",
			Frequency:  "Weekly",
		},
		{
			Metric:     "Conversion Rate",
			Target:     ">= 2.0%",
			Checkpoint: "A/B test landing pages if below target",
			Frequency:  "Bi-weekly",
		},
		{
			Metric:     "Customer Acquisition Cost (CAC)",
			Target:     fmt.Sprintf("<= $%.2f", input.Costs.AdSpend*0.8),
			Checkpoint: "Optimize targeting and creative if exceeding",
			Frequency:  "Weekly",
		},
		{
			Metric:     "Gross Margin",
			Target:     ">= 25%",
			Checkpoint: "Renegotiate costs if margin deteriorates",
			Frequency:  "Monthly",
		},
	}
}

func overallRecommendation(input Input) OverallRecommendation {
	avg := avgMargin(input.Margins)
	marketHealth := input.Market.TrendScore + (100 - input.Market.Saturation)

	switch {
	case avg > 25 && marketHealth > 100 && input.ROAS > 2.0:
		return OverallRecommendation{
			Verdict:   "GO",
			Reasoning: "Strong margins, healthy market conditions, and positive ROAS indicate good opportunity",
			ActionPlan: []string{
				"Start with market pricing strategy",
				"Monitor competitor responses closely",
				"Scale ad spend gradually while maintaining ROAS targets",
				"Prepare inventory for volume growth",
			},
		}
	case avg > 10 && marketHealth > 80:
		return OverallRecommendation{
			Verdict:   "CAUTION",
			Reasoning: "Moderate opportunity with manageable risks - proceed with careful monitoring",
			ActionPlan: []string{
				"Begin with conservative pricing strategy",
				"Test market response with small inventory",
				"Optimize conversion rates before scaling",
				"Establish clear exit criteria",
			},
		}
	default:
		return OverallRecommendation{
			Verdict:   "NO-GO",
			Reasoning: "Low margins or challenging market conditions present high risk",
			ActionPlan: []string{
				"Improve unit economics before launch",
				"Find alternative suppliers to reduce COGS",
				"Consider different product variations",
				"Reassess market timing",
			},
		}
	}
}
