package margin

import (
	"fmt"
	"sort"
)

type leverInput struct {
	costs          Costs
	totalCosts     float64
	price          float64
	platform       string
	weightOz       float64
	returnRate     float64
	conversionRate float64
}

// improvementLevers ranks the six cost components by absolute amount and
// emits targeted suggestions for the largest contributors that cross their
// thresholds, always offering a pricing lever when the margin is thin.
// The returned slice is capped at three, kept in the order levers were
// considered rather than by saving size.
func improvementLevers(in leverInput) []Lever {
	type component struct {
		name   string
		amount float64
	}
	breakdown := []component{
		{"Product Cost", in.costs.ProductCost},
		{"Shipping", in.costs.Shipping},
		{"Platform Fees", in.costs.PlatformFees},
		{"Ad Spend", in.costs.AdSpend},
		{"Returns", in.costs.Returns},
		{"Processing", in.costs.Processing},
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].amount > breakdown[j].amount
	})

	var levers []Lever
	for _, c := range breakdown[:3] {
		pct := c.amount / in.totalCosts * 100
		switch c.name {
		case "Product Cost":
			if pct > 40 {
				levers = append(levers, Lever{
					Category:         "Sourcing",
					Impact:           "High",
					Suggestion:       "Negotiate with suppliers or find alternative sourcing to reduce COGS by 10-15%",
					PotentialSavings: in.costs.ProductCost * 0.125,
				})
			}
		case "Ad Spend":
			if pct > 20 {
				levers = append(levers, Lever{
					Category:         "Marketing",
					Impact:           "High",
					Suggestion:       fmt.Sprintf("Improve conversion rate from %.1f%% to reduce cost per acquisition", in.conversionRate*100),
					PotentialSavings: in.costs.AdSpend * 0.3,
				})
			}
		case "Shipping":
			if in.weightOz > 8 {
				levers = append(levers, Lever{
					Category:         "Logistics",
					Impact:           "Medium",
					Suggestion:       "Optimize packaging to reduce weight below 8oz and save on shipping costs",
					PotentialSavings: in.costs.Shipping * 0.2,
				})
			}
		case "Platform Fees":
			if in.platform == "amazon" {
				levers = append(levers, Lever{
					Category:         "Channel",
					Impact:           "Medium",
					Suggestion:       "Consider multi-channel approach - TikTok Shop has lower fees (8% vs 15%)",
					PotentialSavings: in.costs.PlatformFees * 0.47,
				})
			}
		case "Returns":
			if in.returnRate > 0.08 {
				levers = append(levers, Lever{
					Category:         "Quality",
					Impact:           "Medium",
					Suggestion:       "Improve product quality and descriptions to reduce return rate",
					PotentialSavings: in.costs.Returns * 0.5,
				})
			}
		}
	}

	currentMargin := (in.price - in.totalCosts) / in.price * 100
	if currentMargin < 20 {
		levers = append(levers, Lever{
			Category:         "Pricing",
			Impact:           "High",
			Suggestion:       fmt.Sprintf("Increase price by 10-15%% to improve margin from %.1f%% to 25%%+", currentMargin),
			PotentialSavings: in.price * 0.125,
		})
	}

	if len(levers) > 3 {
		levers = levers[:3]
	}
	return levers
}
