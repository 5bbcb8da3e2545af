package competitors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fiveRecords() []Record {
	return []Record{
		{Platform: "amazon", Price: 10, Rating: 4.1, Reviews: 120},
		{Platform: "amazon", Price: 20, Rating: 4.3, Reviews: 85},
		{Platform: "etsy", Price: 30, Rating: 4.0, Reviews: 40},
		{Platform: "amazon", Price: 40, Rating: 4.6, Reviews: 210},
		{Platform: "walmart", Price: 50, Rating: 4.4, Reviews: 15},
	}
}

func TestMarketPositioningValueBand(t *testing.T) {
	result := Analyze(fiveRecords(), 25)

	assert.NotNil(t, result.MarketPositioning)
	// 2 of 5 strictly below 25
	assert.Equal(t, 40.0, result.MarketPositioning.PercentileRank)
	assert.Equal(t, "value", result.MarketPositioning.PositionType)
}

func TestMarketPositioningBands(t *testing.T) {
	cases := []struct {
		yourPrice float64
		position  string
	}{
		{5, "budget"},    // 0 cheaper -> rank 0
		{25, "value"},    // 2 cheaper -> rank 40
		{45, "premium"},  // 4 cheaper -> rank 80, inclusive
		{55, "luxury"},   // 5 cheaper -> rank 100
	}
	for _, tc := range cases {
		result := Analyze(fiveRecords(), tc.yourPrice)
		assert.Equal(t, tc.position, result.MarketPositioning.PositionType, "price %.0f", tc.yourPrice)
	}
}

func TestAnalyzeDropsInvalidRecords(t *testing.T) {
	records := append(fiveRecords(),
		Record{Platform: "amazon", Price: 0},
		Record{Platform: "amazon", Price: -3},
		Record{Platform: "etsy", Price: 12, Rating: 7},
	)
	result := Analyze(records, 25)
	assert.Equal(t, 5, result.TotalCompetitors)
}

func TestSweetSpotRequiresFiveCompetitors(t *testing.T) {
	result := Analyze(fiveRecords()[:4], 25)
	assert.Nil(t, result.PriceDistribution.SweetSpot)

	result = Analyze(fiveRecords(), 25)
	if assert.NotNil(t, result.PriceDistribution.SweetSpot) {
		assert.Equal(t, result.PriceDistribution.Q1, result.PriceDistribution.SweetSpot.Min)
		assert.Equal(t, result.PriceDistribution.Q3, result.PriceDistribution.SweetSpot.Max)
	}
}

func TestPriceDistributionQuartiles(t *testing.T) {
	result := Analyze(fiveRecords(), 0)
	dist := result.PriceDistribution

	assert.Equal(t, 10.0, dist.Min)
	assert.Equal(t, 50.0, dist.Max)
	assert.Equal(t, 20.0, dist.Q1)
	assert.Equal(t, 30.0, dist.Median)
	assert.Equal(t, 40.0, dist.Q3)
	assert.Equal(t, 20.0, dist.IQR)
	assert.Empty(t, dist.Outliers)

	// yourPrice 0 suppresses positioning
	assert.Nil(t, result.MarketPositioning)
}

func TestAnalyzeEmptySet(t *testing.T) {
	result := Analyze(nil, 25)

	assert.Equal(t, 0, result.TotalCompetitors)
	assert.Equal(t, 0.0, result.DataQualityScore)
	assert.Nil(t, result.MarketPositioning)
	assert.Len(t, result.Insights, 1)
	assert.Equal(t, "Data Limitation", result.Insights[0].Category)
}

func TestDataQualityFullMarks(t *testing.T) {
	now := time.Now()
	records := make([]Record, 0, 10)
	platforms := []string{"amazon", "etsy", "walmart"}
	for i := 0; i < 10; i++ {
		records = append(records, Record{
			Platform:    platforms[i%3],
			Price:       10 + float64(i),
			Rating:      4.0,
			Reviews:     25,
			LastUpdated: &now,
		})
	}
	result := Analyze(records, 0)
	assert.Equal(t, 100.0, result.DataQualityScore)
}

func TestDataQualityPenalizesSparseData(t *testing.T) {
	records := []Record{{Platform: "amazon", Price: 10}}
	result := Analyze(records, 0)

	// quantity 4, completeness 0, recency 20, diversity 3.33 -> 27
	assert.Equal(t, 27.0, result.DataQualityScore)
}

func TestPriceGapInsight(t *testing.T) {
	records := []Record{
		{Platform: "amazon", Price: 10},
		{Platform: "amazon", Price: 11},
		{Platform: "amazon", Price: 30},
	}
	result := Analyze(records, 0)

	var found bool
	for _, insight := range result.Insights {
		if insight.Category == "Pricing Opportunity" {
			found = true
			assert.True(t, insight.Actionable)
		}
	}
	assert.True(t, found)
}

func insightCategories(result AnalysisResult) map[string]bool {
	categories := map[string]bool{}
	for _, insight := range result.Insights {
		categories[insight.Category] = true
	}
	return categories
}

func TestRatingPriceCorrelationInsights(t *testing.T) {
	record := func(price, rating float64) Record {
		return Record{Platform: "amazon", Price: price, Rating: rating}
	}
	cases := []struct {
		name    string
		records []Record
		want    string // expected insight category, "" for neither
	}{
		{
			// 3 of 4 rated records above both averages: 0.75 > 0.7
			name: "premium listings rated best",
			records: []Record{
				record(10, 3.0), record(30, 4.4), record(30, 4.4), record(30, 4.4),
			},
			want: "Quality Premium",
		},
		{
			// expensive listings rated worst: 0 of 4 above both averages
			name: "price buys nothing",
			records: []Record{
				record(10, 4.8), record(10, 4.8), record(30, 3.0), record(30, 3.0),
			},
			want: "Value Opportunity",
		},
		{
			// 2 of 4 above both averages: 0.5 sits between the thresholds
			name: "mixed market",
			records: []Record{
				record(10, 3.0), record(10, 3.0), record(30, 4.8), record(30, 4.8),
			},
			want: "",
		},
	}
	for _, tc := range cases {
		// spread platforms so concentration never fires alongside
		tc.records[2].Platform = "etsy"
		tc.records[3].Platform = "etsy"

		categories := insightCategories(Analyze(tc.records, 0))
		assert.Equal(t, tc.want == "Quality Premium", categories["Quality Premium"], tc.name)
		assert.Equal(t, tc.want == "Value Opportunity", categories["Value Opportunity"], tc.name)
	}
}

func TestPlatformConcentrationInsight(t *testing.T) {
	cases := []struct {
		name      string
		platforms []string
		want      bool
	}{
		{"single platform at 60%", []string{"amazon", "amazon", "amazon", "etsy", "walmart"}, true},
		{"spread below threshold", []string{"amazon", "amazon", "etsy", "etsy", "walmart"}, false},
	}
	for _, tc := range cases {
		records := make([]Record, len(tc.platforms))
		for i, platform := range tc.platforms {
			records[i] = Record{Platform: platform, Price: 20 + float64(i)}
		}

		result := Analyze(records, 0)
		assert.Equal(t, tc.want, insightCategories(result)["Market Concentration"], tc.name)
		if tc.want {
			for _, insight := range result.Insights {
				if insight.Category == "Market Concentration" {
					assert.Contains(t, insight.Insight, "amazon")
					assert.Contains(t, insight.Insight, "60%")
				}
			}
		}
	}
}

func TestReviewMaturityInsight(t *testing.T) {
	cases := []struct {
		name    string
		reviews []int
		want    bool
	}{
		// avg 4.6, two records above 9.2: 40% of the set
		{"established products dominate", []int{1, 1, 1, 10, 10}, true},
		// avg 2.8, one record above 5.6: 20% of the set
		{"one outlier is not maturity", []int{1, 1, 1, 1, 10}, false},
	}
	platforms := []string{"amazon", "amazon", "etsy", "etsy", "walmart"}
	for _, tc := range cases {
		records := make([]Record, len(tc.reviews))
		for i, reviews := range tc.reviews {
			records[i] = Record{Platform: platforms[i], Price: 20 + float64(i), Reviews: reviews}
		}

		categories := insightCategories(Analyze(records, 0))
		assert.Equal(t, tc.want, categories["Market Maturity"], tc.name)
	}
}
