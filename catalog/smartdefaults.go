package catalog

import (
	"github.com/Dandresen1/margin-mindset-43/utils"
)

// ChannelCPC carries per-ad-channel cost-per-click benchmarks.
type ChannelCPC struct {
	Google   float64 `json:"google"`
	Facebook float64 `json:"facebook"`
	TikTok   float64 `json:"tiktok"`
}

// CompetitorRange is a rough min/median/max of observed competitor pricing
// for a category.
type CompetitorRange struct {
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// SmartDefaults are benchmark-derived starting values for a category, used
// to pre-fill an analysis when the caller only has a URL or product name.
type SmartDefaults struct {
	AvgCOGS         float64         `json:"avg_cogs"`
	AvgWeightOz     float64         `json:"avg_weight_oz"`
	TypicalPrice    float64         `json:"typical_price"`
	ConversionRate  float64         `json:"conversion_rate"`
	CPC             ChannelCPC      `json:"cpc"`
	ReturnRate      float64         `json:"return_rate"`
	CompetitorRange CompetitorRange `json:"competitor_range"`
}

var categorySmartDefaults = map[ProductCategory]SmartDefaults{
	CategoryElectronics: {
		AvgCOGS: 12.50, AvgWeightOz: 6, TypicalPrice: 39.99, ConversionRate: 1.8,
		CPC:        ChannelCPC{Google: 2.10, Facebook: 1.65, TikTok: 0.95},
		ReturnRate: 15.0,
		CompetitorRange: CompetitorRange{Min: 24.99, Median: 39.99, Max: 59.99},
	},
	CategoryClothing: {
		AvgCOGS: 8.00, AvgWeightOz: 8, TypicalPrice: 29.99, ConversionRate: 2.2,
		CPC:        ChannelCPC{Google: 1.50, Facebook: 1.20, TikTok: 0.85},
		ReturnRate: 30.0,
		CompetitorRange: CompetitorRange{Min: 19.99, Median: 29.99, Max: 49.99},
	},
	CategoryBeauty: {
		AvgCOGS: 6.50, AvgWeightOz: 4, TypicalPrice: 24.99, ConversionRate: 2.5,
		CPC:        ChannelCPC{Google: 1.80, Facebook: 1.40, TikTok: 1.10},
		ReturnRate: 12.0,
		CompetitorRange: CompetitorRange{Min: 14.99, Median: 24.99, Max: 39.99},
	},
	CategoryHome: {
		AvgCOGS: 15.00, AvgWeightOz: 12, TypicalPrice: 39.99, ConversionRate: 1.5,
		CPC:        ChannelCPC{Google: 1.30, Facebook: 1.00, TikTok: 0.75},
		ReturnRate: 8.0,
		CompetitorRange: CompetitorRange{Min: 29.99, Median: 39.99, Max: 59.99},
	},
	CategoryJewelry: {
		AvgCOGS: 4.00, AvgWeightOz: 2, TypicalPrice: 19.99, ConversionRate: 1.2,
		CPC:        ChannelCPC{Google: 2.50, Facebook: 2.00, TikTok: 1.50},
		ReturnRate: 20.0,
		CompetitorRange: CompetitorRange{Min: 12.99, Median: 19.99, Max: 34.99},
	},
}

// GetSmartDefaults returns benchmark defaults for a category. Categories
// without their own benchmark row borrow the electronics row with a low
// confidence badge.
func GetSmartDefaults(category ProductCategory) (SmartDefaults, ConfidenceBadge) {
	if d, ok := categorySmartDefaults[category]; ok {
		return d, ConfidenceBadge{
			Level:       ConfidenceHigh,
			Source:      SourceCategoryDefault,
			Description: "Industry benchmark for " + string(category),
		}
	}
	return categorySmartDefaults[CategoryElectronics], ConfidenceBadge{
		Level:       ConfidenceLow,
		Source:      SourceCategoryDefault,
		Description: "General estimate; no benchmark for " + string(category),
	}
}

// AutoFilled is a complete pre-filled input estimate for a product found at
// a provider URL.
type AutoFilled struct {
	EstimatedPrice float64         `json:"estimated_price"`
	EstimatedCOGS  float64         `json:"estimated_cogs"`
	WeightOz       float64         `json:"weight_oz"`
	ConversionRate float64         `json:"conversion_rate"`
	CPC            float64         `json:"cpc"`
	PlatformFees   float64         `json:"platform_fees"`
	Category       ProductCategory `json:"category"`
	Confidence     ConfidenceBadge `json:"confidence"`
}

// AutoFill builds input estimates for a product seen on a provider. The
// provider biases the price estimate: wholesale sources sit at the bottom of
// the competitor range, Etsy at the premium end, the big marketplaces at the
// median.
func AutoFill(provider string, category ProductCategory) AutoFilled {
	defaults, badge := GetSmartDefaults(category)

	price := defaults.TypicalPrice
	switch provider {
	case "aliexpress", "alibaba":
		price = defaults.CompetitorRange.Min
	case "amazon", "walmart":
		price = defaults.CompetitorRange.Median
	case "etsy":
		price = defaults.CompetitorRange.Max
	}

	d := Defaults(category)
	cogsPct := (d.COGSPercentage.Min + d.COGSPercentage.Max) / 2
	fees, _ := GetPlatformFees(provider, price)

	return AutoFilled{
		EstimatedPrice: price,
		EstimatedCOGS:  utils.RoundCents(price * cogsPct / 100),
		WeightOz:       defaults.AvgWeightOz,
		ConversionRate: defaults.ConversionRate,
		CPC:            defaults.CPC.Facebook,
		PlatformFees:   fees,
		Category:       category,
		Confidence:     badge,
	}
}
