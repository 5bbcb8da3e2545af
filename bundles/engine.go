package bundles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Dandresen1/margin-mindset-43/catalog"
	"github.com/Dandresen1/margin-mindset-43/utils"
)

// Product is one bundle-able catalog item.
type Product struct {
	Name     string                  `json:"name"`
	Category catalog.ProductCategory `json:"category"`
	Price    float64                 `json:"price"`
	COGS     float64                 `json:"cogs"`
	Margin   float64                 `json:"margin"` // percent
}

// Recommendation is a proposed 2-3 item bundle with true profit-based margin
// lift, not just an average-order-value bump.
type Recommendation struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Products            []Product `json:"products"`
	BundlePrice         float64   `json:"bundle_price"`
	IndividualPrice     float64   `json:"individual_price"`
	DiscountPercentage  float64   `json:"discount_percentage"`
	MarginLift          float64   `json:"margin_lift"`
	FeasibilityScore    float64   `json:"feasibility_score"`
	InventoryComplexity float64   `json:"inventory_complexity"` // 1-5, one decimal
	Confidence          float64   `json:"confidence"`
	Reasoning           string    `json:"reasoning"`
	SuccessFactors      []string  `json:"success_factors"`
	Risks               []string  `json:"risks"`
}

// DefaultTargetMarginLift is the minimum % profit improvement a bundle must
// promise to be recommended.
const DefaultTargetMarginLift = 15.0

// Engine generates bundle recommendations. The id function is injected so
// tests can produce deterministic ids; production uses uuid.
type Engine struct {
	newID func() string
}

func NewEngine() *Engine {
	return &Engine{newID: uuid.NewString}
}

func NewEngineWithID(newID func() string) *Engine {
	return &Engine{newID: newID}
}

// Recommendations proposes the top 5 bundles for a primary product from a
// candidate set. Candidates need affinity > 0.3 with the primary category.
// Pairs are tried first; with at least two compatible candidates, 3-item
// combinations among the top 3 by affinity are tried as well.
func (e *Engine) Recommendations(primary Product, candidates []Product, targetMarginLift float64) []Recommendation {
	var recommendations []Recommendation

	compatible := make([]Product, 0, len(candidates))
	for _, c := range candidates {
		if c.Name == primary.Name {
			continue
		}
		if AffinityScore(primary.Category, c.Category) > 0.3 {
			compatible = append(compatible, c)
		}
	}

	for _, secondary := range compatible {
		if bundle := e.build([]Product{primary, secondary}, targetMarginLift); bundle != nil && bundle.MarginLift >= targetMarginLift {
			recommendations = append(recommendations, *bundle)
		}
	}

	if len(compatible) >= 2 {
		top := make([]Product, len(compatible))
		copy(top, compatible)
		sort.SliceStable(top, func(i, j int) bool {
			return AffinityScore(primary.Category, top[i].Category) > AffinityScore(primary.Category, top[j].Category)
		})
		if len(top) > 3 {
			top = top[:3]
		}
		for i := 0; i < len(top)-1; i++ {
			for j := i + 1; j < len(top); j++ {
				if bundle := e.build([]Product{primary, top[i], top[j]}, targetMarginLift); bundle != nil && bundle.MarginLift >= targetMarginLift {
					recommendations = append(recommendations, *bundle)
				}
			}
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].FeasibilityScore*recommendations[i].MarginLift >
			recommendations[j].FeasibilityScore*recommendations[j].MarginLift
	})
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

// build prices one bundle and scores it; returns nil when the margin lift is
// negative or feasibility falls below 30.
func (e *Engine) build(products []Product, targetMarginLift float64) *Recommendation {
	if len(products) < 2 {
		return nil
	}

	individualPrice := 0.0
	totalCOGS := 0.0
	categories := make([]catalog.ProductCategory, len(products))
	for i, p := range products {
		individualPrice += p.Price
		totalCOGS += p.COGS
		categories[i] = p.Category
	}

	avgAffinity := averageAffinity(categories)
	discount := clamp(avgAffinity*0.3, 0.05, 0.25)
	bundlePrice := individualPrice * (1 - discount)

	marginLift := profitLift(individualPrice, bundlePrice, totalCOGS)

	feasibility := feasibilityScore(products, avgAffinity)
	complexity := inventoryComplexity(products)

	if marginLift < 0 || feasibility < 30 {
		return nil
	}

	confidence := feasibility
	if marginLift >= targetMarginLift {
		confidence += 20
	}
	if confidence > 95 {
		confidence = 95
	}

	return &Recommendation{
		ID:                  e.newID(),
		Title:               title(products),
		Products:            products,
		BundlePrice:         utils.RoundCents(bundlePrice),
		IndividualPrice:     utils.RoundCents(individualPrice),
		DiscountPercentage:  utils.RoundTenth(discount * 100),
		MarginLift:          utils.RoundTenth(marginLift),
		FeasibilityScore:    float64(int(feasibility + 0.5)),
		InventoryComplexity: complexity,
		Confidence:          float64(int(confidence + 0.5)),
		Reasoning:           reasoning(products, marginLift, avgAffinity),
		SuccessFactors:      successFactors(products, avgAffinity),
		Risks:               bundleRisks(products, complexity),
	}
}

// profitLift is the percentage change in per-unit profit from selling the
// set at bundlePrice versus individually. Pricing at the full individual sum
// yields exactly zero; any discount with unchanged COGS yields a negative
// lift.
func profitLift(individualPrice, bundlePrice, totalCOGS float64) float64 {
	individualMargin := individualPrice - totalCOGS
	bundleMargin := bundlePrice - totalCOGS
	return (bundleMargin - individualMargin) / individualMargin * 100
}

// feasibilityScore starts from affinity and adjusts for price spread, margin
// spread and category mix, clamped to [0,100].
func feasibilityScore(products []Product, affinity float64) float64 {
	score := affinity * 100

	variability := priceVariability(products)
	if variability > 2 {
		score -= 20
	} else if variability < 0.5 {
		score += 10
	}

	minMargin, maxMargin := products[0].Margin, products[0].Margin
	for _, p := range products[1:] {
		if p.Margin < minMargin {
			minMargin = p.Margin
		}
		if p.Margin > maxMargin {
			maxMargin = p.Margin
		}
	}
	if maxMargin-minMargin > 30 {
		score -= 15
	}

	unique := uniqueCategories(products)
	if unique == 1 {
		score += 15
	} else if unique == len(products) && len(products) > 2 {
		score += 5
	}

	return clamp(score, 0, 100)
}

func inventoryComplexity(products []Product) float64 {
	complexity := 1.0
	complexity += float64(len(products)-2) * 0.5
	complexity += float64(uniqueCategories(products)-1) * 0.3
	if priceVariability(products) > 1 {
		complexity += 0.5
	}
	return clamp(utils.RoundTenth(complexity), 1, 5)
}

func priceVariability(products []Product) float64 {
	min, max, sum := products[0].Price, products[0].Price, 0.0
	for _, p := range products {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
		sum += p.Price
	}
	avg := sum / float64(len(products))
	return (max - min) / avg
}

func uniqueCategories(products []Product) int {
	set := map[catalog.ProductCategory]bool{}
	for _, p := range products {
		set[p.Category] = true
	}
	return len(set)
}

func title(products []Product) string {
	switch len(products) {
	case 2:
		return fmt.Sprintf("%s + %s Bundle", products[0].Name, products[1].Name)
	case 3:
		return fmt.Sprintf("%s Complete Set (3 items)", products[0].Name)
	default:
		return fmt.Sprintf("%s Bundle (%d items)", products[0].Name, len(products))
	}
}

func reasoning(products []Product, marginLift, affinity float64) string {
	var reasons []string

	if affinity > 0.7 {
		reasons = append(reasons, "High customer affinity between these product categories")
	} else if affinity > 0.4 {
		reasons = append(reasons, "Good compatibility for cross-selling opportunities")
	}

	if marginLift > 20 {
		reasons = append(reasons, fmt.Sprintf("Strong margin improvement of %.1f%%", marginLift))
	} else if marginLift > 10 {
		reasons = append(reasons, "Solid margin lift potential")
	}

	if uniqueCategories(products) == 1 {
		reasons = append(reasons, "Same category products naturally complement each other")
	}

	return strings.Join(reasons, ". ") + "."
}

func successFactors(products []Product, affinity float64) []string {
	factors := []string{
		"Market the bundle as a complete solution",
		"Highlight the savings compared to individual purchases",
	}
	if affinity > 0.6 {
		factors = append(factors, "Leverage natural customer buying patterns")
	}
	if len(products) <= 3 {
		factors = append(factors, "Simple bundle structure reduces customer decision fatigue")
	}

	avgMargin := 0.0
	for _, p := range products {
		avgMargin += p.Margin
	}
	avgMargin /= float64(len(products))
	if avgMargin > 25 {
		factors = append(factors, "Healthy margins provide pricing flexibility")
	}
	return factors
}

func bundleRisks(products []Product, complexity float64) []string {
	var risks []string

	if complexity >= 4 {
		risks = append(risks, "High inventory complexity may complicate fulfillment")
	} else if complexity >= 3 {
		risks = append(risks, "Moderate inventory management overhead")
	}

	if len(products) >= 4 {
		risks = append(risks, "Multiple products increase potential return complexity")
	}

	if priceVariability(products) > 1.5 {
		risks = append(risks, "Significant price differences may confuse value proposition")
	}

	if uniqueCategories(products) == len(products) && len(products) > 2 {
		risks = append(risks, "Diverse categories may dilute marketing focus")
	}

	if len(risks) == 0 {
		risks = append(risks, "Low risk - well-matched product combination")
	}
	return risks
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
