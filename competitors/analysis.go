package competitors

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/Dandresen1/margin-mindset-43/utils"
)

// Record is one observed competitor listing.
type Record struct {
	Platform    string     `json:"platform"`
	Price       float64    `json:"price"`
	Rating      float64    `json:"rating,omitempty"`  // [1,5] when present
	Reviews     int        `json:"reviews,omitempty"` // >= 0 when present
	URL         string     `json:"url,omitempty"`
	Title       string     `json:"title,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// SweetSpot is the middle 50% of market pricing, reported only with enough
// competitors behind it.
type SweetSpot struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Reasoning string  `json:"reasoning"`
}

type PriceDistribution struct {
	Min       float64    `json:"min"`
	Max       float64    `json:"max"`
	Median    float64    `json:"median"`
	Q1        float64    `json:"q1"`
	Q3        float64    `json:"q3"`
	IQR       float64    `json:"iqr"`
	Outliers  []float64  `json:"outliers"`
	SweetSpot *SweetSpot `json:"sweet_spot,omitempty"`
}

type Insight struct {
	Category   string  `json:"category"`
	Insight    string  `json:"insight"`
	Confidence float64 `json:"confidence"`
	Actionable bool    `json:"actionable"`
}

type Positioning struct {
	YourPrice            float64 `json:"your_price"`
	PercentileRank       float64 `json:"percentile_rank"`
	PositionType         string  `json:"position_type"` // budget, value, premium, luxury
	CompetitiveAdvantage string  `json:"competitive_advantage"`
}

type AnalysisResult struct {
	TotalCompetitors  int               `json:"total_competitors"`
	DataQualityScore  float64           `json:"data_quality_score"`
	PriceDistribution PriceDistribution `json:"price_distribution"`
	Insights          []Insight         `json:"competitive_insights"`
	MarketPositioning *Positioning      `json:"market_positioning,omitempty"`
	Recommendations   []string          `json:"recommendations"`
}

// Analyze summarizes a competitor price set. Invalid records are dropped
// silently: this is a data-quality function, not a strict parser. yourPrice
// <= 0 means no positioning analysis.
func Analyze(records []Record, yourPrice float64) AnalysisResult {
	valid := filterValid(records)

	quality := dataQuality(valid)
	distribution := priceDistribution(valid)
	insights := competitiveInsights(valid)

	var positioning *Positioning
	if yourPrice > 0 && len(valid) > 0 {
		positioning = marketPositioning(valid, yourPrice)
	}

	return AnalysisResult{
		TotalCompetitors:  len(valid),
		DataQualityScore:  quality,
		PriceDistribution: distribution,
		Insights:          insights,
		MarketPositioning: positioning,
		Recommendations:   recommendations(valid, distribution, positioning, quality),
	}
}

func filterValid(records []Record) []Record {
	valid := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Price <= 0 {
			continue
		}
		if r.Rating != 0 && (r.Rating < 1 || r.Rating > 5) {
			continue
		}
		if r.Reviews < 0 {
			continue
		}
		valid = append(valid, r)
	}
	return valid
}

// dataQuality scores 0-100: quantity 40, completeness 30, recency 20,
// platform diversity 10. Records without a timestamp count as recent.
func dataQuality(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	n := float64(len(records))

	score := minf(n/10*40, 40)

	complete := 0
	for _, r := range records {
		if r.Price > 0 && r.Rating > 0 && r.Reviews > 0 && r.Platform != "" {
			complete++
		}
	}
	score += float64(complete) / n * 30

	recent := 0
	for _, r := range records {
		if r.LastUpdated == nil || time.Since(*r.LastUpdated) <= 7*24*time.Hour {
			recent++
		}
	}
	score += float64(recent) / n * 20

	platforms := map[string]bool{}
	for _, r := range records {
		platforms[r.Platform] = true
	}
	score += minf(float64(len(platforms))/3*10, 10)

	return math.Round(score)
}

func prices(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Price
	}
	return out
}

func priceDistribution(records []Record) PriceDistribution {
	ps := prices(records)
	if len(ps) == 0 {
		return PriceDistribution{Outliers: []float64{}}
	}
	sort.Float64s(ps)

	q1 := utils.Percentile(ps, 0.25)
	median := utils.Percentile(ps, 0.50)
	q3 := utils.Percentile(ps, 0.75)
	iqr := q3 - q1

	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr
	outliers := []float64{}
	for _, p := range ps {
		if p < lower || p > upper {
			outliers = append(outliers, p)
		}
	}

	dist := PriceDistribution{
		Min:      ps[0],
		Max:      ps[len(ps)-1],
		Median:   median,
		Q1:       q1,
		Q3:       q3,
		IQR:      iqr,
		Outliers: outliers,
	}
	if len(records) >= 5 {
		dist.SweetSpot = &SweetSpot{
			Min: q1,
			Max: q3,
			Reasoning: fmt.Sprintf(
				"Based on interquartile range from %d competitors. This represents the middle 50%% of market pricing.",
				len(records)),
		}
	}
	return dist
}

func competitiveInsights(records []Record) []Insight {
	insights := []Insight{}

	if len(records) < 3 {
		insights = append(insights, Insight{
			Category:   "Data Limitation",
			Insight:    "Limited competitor data available - insights may be incomplete",
			Confidence: 30,
			Actionable: false,
		})
		return insights
	}

	if gap := largestPriceGap(records); gap != nil {
		insights = append(insights, Insight{
			Category:   "Pricing Opportunity",
			Insight:    fmt.Sprintf("Price gaps identified at $%.2f-$%.2f range", gap.start, gap.end),
			Confidence: 75,
			Actionable: true,
		})
	}

	if insight := ratingPriceCorrelation(records); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := platformConcentration(records); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := reviewPatterns(records); insight != nil {
		insights = append(insights, *insight)
	}

	return insights
}

type priceGap struct {
	start, end, size float64
}

// largestPriceGap reports the biggest gap between adjacent sorted prices
// exceeding 20% of the local average, or nil.
func largestPriceGap(records []Record) *priceGap {
	ps := prices(records)
	sort.Float64s(ps)

	var best *priceGap
	for i := 1; i < len(ps); i++ {
		gap := ps[i] - ps[i-1]
		localAvg := (ps[i] + ps[i-1]) / 2
		if gap > localAvg*0.2 {
			if best == nil || gap > best.size {
				best = &priceGap{start: ps[i-1], end: ps[i], size: gap}
			}
		}
	}
	return best
}

// ratingPriceCorrelation looks at the fraction of records that are both
// above-average priced and above-average rated. Needs at least 3 rated
// records.
func ratingPriceCorrelation(records []Record) *Insight {
	var rated []Record
	for _, r := range records {
		if r.Rating > 0 {
			rated = append(rated, r)
		}
	}
	if len(rated) < 3 {
		return nil
	}

	ps := make([]float64, len(rated))
	rs := make([]float64, len(rated))
	for i, r := range rated {
		ps[i] = r.Price
		rs[i] = r.Rating
	}
	avgPrice := stat.Mean(ps, nil)
	avgRating := stat.Mean(rs, nil)

	both := 0
	for _, r := range rated {
		if r.Price > avgPrice && r.Rating > avgRating {
			both++
		}
	}
	correlation := float64(both) / float64(len(rated))

	if correlation > 0.7 {
		return &Insight{
			Category:   "Quality Premium",
			Insight:    "Strong correlation between price and ratings suggests quality-conscious market",
			Confidence: 80,
			Actionable: true,
		}
	}
	if correlation < 0.3 {
		return &Insight{
			Category:   "Value Opportunity",
			Insight:    "Weak price-quality correlation suggests opportunity for value positioning",
			Confidence: 70,
			Actionable: true,
		}
	}
	return nil
}

func platformConcentration(records []Record) *Insight {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Platform]++
	}

	dominant := ""
	max := 0
	for platform, count := range counts {
		if count > max || (count == max && platform < dominant) {
			dominant = platform
			max = count
		}
	}

	concentration := float64(max) / float64(len(records))
	if concentration >= 0.6 {
		return &Insight{
			Category:   "Market Concentration",
			Insight:    fmt.Sprintf("%s dominates with %.0f%% of competitors", dominant, concentration*100),
			Confidence: 85,
			Actionable: true,
		}
	}
	return nil
}

func reviewPatterns(records []Record) *Insight {
	var reviewed []Record
	for _, r := range records {
		if r.Reviews > 0 {
			reviewed = append(reviewed, r)
		}
	}
	if len(reviewed) < 3 {
		return nil
	}

	counts := make([]float64, len(reviewed))
	for i, r := range reviewed {
		counts[i] = float64(r.Reviews)
	}
	avg := stat.Mean(counts, nil)

	high := 0
	for _, r := range reviewed {
		if float64(r.Reviews) > avg*2 {
			high++
		}
	}
	if float64(high) > float64(len(reviewed))*0.3 {
		return &Insight{
			Category:   "Market Maturity",
			Insight:    "Several established products with high review counts indicate mature market",
			Confidence: 75,
			Actionable: true,
		}
	}
	return nil
}

func marketPositioning(records []Record, yourPrice float64) *Positioning {
	cheaper := 0
	for _, r := range records {
		if r.Price < yourPrice {
			cheaper++
		}
	}
	rank := float64(cheaper) / float64(len(records)) * 100

	var positionType, advantage string
	switch {
	case rank <= 25:
		positionType = "budget"
		advantage = "Price leader - compete on affordability and value for money"
	case rank <= 50:
		positionType = "value"
		advantage = "Value positioning - balance of price and quality"
	case rank <= 80:
		positionType = "premium"
		advantage = "Premium positioning - compete on quality, service, or brand"
	default:
		positionType = "luxury"
		advantage = "Luxury positioning - emphasize exclusivity and superior experience"
	}

	return &Positioning{
		YourPrice:            yourPrice,
		PercentileRank:       rank,
		PositionType:         positionType,
		CompetitiveAdvantage: advantage,
	}
}

func recommendations(records []Record, dist PriceDistribution, positioning *Positioning, quality float64) []string {
	recs := []string{}

	if quality < 50 {
		recs = append(recs, "Gather more competitor data for better insights - aim for 10+ data points")
	}
	if len(records) >= 5 && dist.SweetSpot != nil {
		recs = append(recs, fmt.Sprintf("Consider pricing within sweet spot: $%.2f-$%.2f", dist.SweetSpot.Min, dist.SweetSpot.Max))
	}
	if positioning != nil {
		switch positioning.PositionType {
		case "budget":
			recs = append(recs, "Focus on cost optimization and volume sales strategies")
		case "value":
			recs = append(recs, "Emphasize quality-to-price ratio in marketing messages")
		case "premium":
			recs = append(recs, "Invest in quality differentiation and brand building")
		case "luxury":
			recs = append(recs, "Ensure product quality and service justify premium pricing")
		}
	}
	for _, outlier := range dist.Outliers {
		if outlier > dist.Q3 {
			recs = append(recs, "Some competitors using premium pricing - investigate their value proposition")
			break
		}
	}
	return recs
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
