package margin

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dandresen1/margin-mindset-43/catalog"
)

// Input holds everything needed to model the unit economics of selling one
// product at one price on one platform.
type Input struct {
	Price            float64  `json:"price"`
	COGS             float64  `json:"cogs"`
	Platform         string   `json:"platform"`
	WeightOz         float64  `json:"weight_oz"`
	ShippingMethod   string   `json:"shipping_method"` // "calculated" or "flat"
	FlatShippingCost float64  `json:"flat_shipping_cost,omitempty"`
	PackagingCost    *float64 `json:"packaging_cost,omitempty"`
	ReturnRate       *float64 `json:"return_rate,omitempty"`   // decimal, default 0.05
	RecoveryRate     *float64 `json:"recovery_rate,omitempty"` // decimal, default 0
	AdSpend          AdSpend  `json:"ad_spend"`
	ProductName      string   `json:"product_name,omitempty"`
	ProductURL       string   `json:"product_url,omitempty"`
	ImagePath        string   `json:"image_path,omitempty"`
}

type AdSpend struct {
	ConversionRate float64 `json:"conversion_rate"` // decimal, e.g. 0.02
	CPC            float64 `json:"cpc"`
}

// Validation errors. Callers must correct the input; the engine never
// silently produces NaN or Inf.
var (
	ErrInvalidPrice          = errors.New("price must be greater than zero")
	ErrInvalidConversionRate = errors.New("conversion rate must be greater than zero")
	ErrInvalidCOGS           = errors.New("cogs must not be negative")
)

const (
	defaultPackagingCost = 0.50
	defaultReturnRate    = 0.05
)

// Flat per-platform referral rates used by the engine's deterministic output.
// The catalog package carries the richer schedule for advisory layers; this
// table intentionally stays simple.
var platformFeeRates = map[string]float64{
	"amazon":  0.15,
	"tiktok":  0.08,
	"etsy":    0.065,
	"shopify": 0.0,
}

// referralRateFor resolves platforms outside the flat table through the
// catalog schedule, so URL-driven analyses (aliexpress, walmart, generic)
// don't get a free 0% marketplace fee. Only the referral component is taken:
// processing is modeled separately below.
func referralRateFor(platform string) float64 {
	if rate, ok := platformFeeRates[platform]; ok {
		return rate
	}
	if schedule, ok := catalog.GetFeeSchedule(platform); ok {
		return schedule.ReferralPct
	}
	return catalog.FallbackFeePct
}

type Product struct {
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	SupplierPrice float64 `json:"supplier_price"`
	Category      string  `json:"category"`
}

type Margins struct {
	Conservative float64 `json:"conservative"`
	Moderate     float64 `json:"moderate"`
	Aggressive   float64 `json:"aggressive"`
}

type Costs struct {
	ProductCost  float64 `json:"product_cost"`
	Shipping     float64 `json:"shipping"`
	PlatformFees float64 `json:"platform_fees"`
	AdSpend      float64 `json:"ad_spend"`
	Returns      float64 `json:"returns"`
	Processing   float64 `json:"processing"`
}

type Market struct {
	Saturation  float64 `json:"saturation"`
	TrendScore  float64 `json:"trend_score"`
	Seasonality string  `json:"seasonality"`
}

type Competitor struct {
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
}

type BundleHint struct {
	Products       []string `json:"products"`
	MarginIncrease float64  `json:"margin_increase"`
	Confidence     float64  `json:"confidence"`
}

type Recommendation struct {
	Verdict    string  `json:"verdict"` // GO, CAUTION, NO-GO
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}

type Lever struct {
	Category         string  `json:"category"`
	Impact           string  `json:"impact"`
	Suggestion       string  `json:"suggestion"`
	PotentialSavings float64 `json:"potential_savings"`
}

// AnalysisResult is the terminal artifact of one unit-economics computation.
// It is built fresh per call and carries no identity beyond a generated id.
type AnalysisResult struct {
	ID             string         `json:"id"`
	Product        Product        `json:"product"`
	Margins        Margins        `json:"margins"`
	Costs          Costs          `json:"costs"`
	Competitors    []Competitor   `json:"competitors"`
	Market         Market         `json:"market"`
	Bundles        []BundleHint   `json:"bundles"`
	Recommendation Recommendation `json:"recommendation"`
	Levers         []Lever        `json:"levers"`
	BreakevenPrice float64        `json:"breakeven_price"`
	ROAS           float64        `json:"roas"`
	TargetCPC      float64        `json:"target_cpc"`
}

// Compute models the full cost stack for one unit and derives profit,
// margin, breakeven, ROAS and improvement levers.
func Compute(input Input) (*AnalysisResult, error) {
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidPrice, input.Price)
	}
	if input.AdSpend.ConversionRate <= 0 {
		return nil, fmt.Errorf("%w: got %.4f", ErrInvalidConversionRate, input.AdSpend.ConversionRate)
	}
	if input.COGS < 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidCOGS, input.COGS)
	}

	packagingCost := defaultPackagingCost
	if input.PackagingCost != nil {
		packagingCost = *input.PackagingCost
	}
	returnRate := defaultReturnRate
	if input.ReturnRate != nil {
		returnRate = *input.ReturnRate
	}
	recoveryRate := 0.0
	if input.RecoveryRate != nil {
		recoveryRate = *input.RecoveryRate
	}

	platformFees := input.Price * referralRateFor(input.Platform)

	// Payment processing: 2.9% + $0.30
	processingFees := input.Price*0.029 + 0.30

	shippingCost := shippingFor(input)

	// Returns allowance: expected per-order loss from returned units
	returnsCost := returnRate * (input.COGS + shippingCost) * (1 - recoveryRate)

	adSpendPerOrder := input.AdSpend.CPC / input.AdSpend.ConversionRate

	totalProductCost := input.COGS + packagingCost
	totalCosts := totalProductCost + shippingCost + platformFees + processingFees + returnsCost + adSpendPerOrder

	profit := input.Price - totalCosts
	marginPercent := profit / input.Price * 100

	breakevenPrice := totalCosts
	roas := input.Price / adSpendPerOrder
	// Policy: spend at most 30% of per-order profit on acquisition
	targetCPC := input.AdSpend.ConversionRate * profit * 0.3

	costs := Costs{
		ProductCost:  totalProductCost,
		Shipping:     shippingCost,
		PlatformFees: platformFees,
		AdSpend:      adSpendPerOrder,
		Returns:      returnsCost,
		Processing:   processingFees,
	}

	levers := improvementLevers(leverInput{
		costs:          costs,
		totalCosts:     totalCosts,
		price:          input.Price,
		platform:       input.Platform,
		weightOz:       input.WeightOz,
		returnRate:     returnRate,
		conversionRate: input.AdSpend.ConversionRate,
	})

	name := input.ProductName
	if name == "" {
		name = "Product Analysis"
	}
	image := input.ImagePath
	if image == "" {
		image = "/placeholder.svg"
	}

	return &AnalysisResult{
		ID:      fmt.Sprintf("analysis-%d", time.Now().UnixMilli()),
		Product: Product{
			Name:          name,
			Image:         image,
			Description:   "Unit economics analysis",
			SupplierPrice: input.COGS,
			Category:      "General",
		},
		Margins: Margins{
			// Presentation spread around the computed value, not three
			// independent scenarios.
			Conservative: maxf(marginPercent-5, 0),
			Moderate:     marginPercent,
			Aggressive:   marginPercent + 3,
		},
		Costs:       costs,
		Competitors: []Competitor{},
		Market: Market{
			Saturation:  60,
			TrendScore:  75,
			Seasonality: "Stable",
		},
		Bundles:        []BundleHint{},
		Recommendation: verdictFor(marginPercent),
		Levers:         levers,
		BreakevenPrice: breakevenPrice,
		ROAS:           roas,
		TargetCPC:      targetCPC,
	}, nil
}

func shippingFor(input Input) float64 {
	if input.ShippingMethod == "flat" && input.FlatShippingCost > 0 {
		return input.FlatShippingCost
	}
	switch {
	case input.WeightOz <= 4:
		return 4.50
	case input.WeightOz <= 8:
		return 5.50
	case input.WeightOz <= 16:
		return 6.50
	default:
		return 9.50
	}
}

func verdictFor(marginPercent float64) Recommendation {
	switch {
	case marginPercent >= 25:
		return Recommendation{
			Verdict:    "GO",
			Reasoning:  fmt.Sprintf("Strong margin of %.1f%% provides good profitability and room for scaling.", marginPercent),
			Confidence: 85,
		}
	case marginPercent >= 15:
		return Recommendation{
			Verdict:    "CAUTION",
			Reasoning:  fmt.Sprintf("Moderate margin of %.1f%%. Consider optimizing costs before scaling.", marginPercent),
			Confidence: 70,
		}
	case marginPercent >= 5:
		return Recommendation{
			Verdict:    "CAUTION",
			Reasoning:  fmt.Sprintf("Thin margin of %.1f%%. High risk - optimize costs or increase price.", marginPercent),
			Confidence: 50,
		}
	default:
		return Recommendation{
			Verdict:    "NO-GO",
			Reasoning:  fmt.Sprintf("Negative or very low margin (%.1f%%). Not viable without significant changes.", marginPercent),
			Confidence: 90,
		}
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
