package bundles

import "github.com/Dandresen1/margin-mindset-43/catalog"

// affinityEntry captures co-purchase behavior between two categories.
type affinityEntry struct {
	affinity         float64 // 0-1, likelihood of co-purchase
	avgBundleSize    float64
	marginMultiplier float64
}

// categoryAffinity is an asymmetric lookup: missing reverse entries are
// covered at read time by taking the max of both directions.
var categoryAffinity = map[catalog.ProductCategory]map[catalog.ProductCategory]affinityEntry{
	catalog.CategoryElectronics: {
		catalog.CategoryElectronics: {affinity: 0.7, avgBundleSize: 2.3, marginMultiplier: 1.15},
		catalog.CategoryAutomotive:  {affinity: 0.4, avgBundleSize: 2.0, marginMultiplier: 1.10},
		catalog.CategoryHome:        {affinity: 0.3, avgBundleSize: 2.1, marginMultiplier: 1.05},
	},
	catalog.CategoryBeauty: {
		catalog.CategoryBeauty:   {affinity: 0.8, avgBundleSize: 3.2, marginMultiplier: 1.25},
		catalog.CategoryHealth:   {affinity: 0.6, avgBundleSize: 2.5, marginMultiplier: 1.20},
		catalog.CategoryClothing: {affinity: 0.4, avgBundleSize: 2.0, marginMultiplier: 1.08},
	},
	catalog.CategoryClothing: {
		catalog.CategoryClothing: {affinity: 0.9, avgBundleSize: 2.8, marginMultiplier: 1.30},
		catalog.CategoryJewelry:  {affinity: 0.7, avgBundleSize: 2.2, marginMultiplier: 1.18},
		catalog.CategoryBeauty:   {affinity: 0.4, avgBundleSize: 2.1, marginMultiplier: 1.10},
	},
	catalog.CategoryHome: {
		catalog.CategoryHome:        {affinity: 0.6, avgBundleSize: 2.5, marginMultiplier: 1.12},
		catalog.CategoryElectronics: {affinity: 0.3, avgBundleSize: 2.0, marginMultiplier: 1.05},
	},
	catalog.CategoryJewelry: {
		catalog.CategoryJewelry:  {affinity: 0.5, avgBundleSize: 2.0, marginMultiplier: 1.15},
		catalog.CategoryClothing: {affinity: 0.7, avgBundleSize: 2.3, marginMultiplier: 1.20},
		catalog.CategoryBeauty:   {affinity: 0.4, avgBundleSize: 2.0, marginMultiplier: 1.08},
	},
	catalog.CategorySports: {
		catalog.CategorySports:   {affinity: 0.8, avgBundleSize: 2.4, marginMultiplier: 1.18},
		catalog.CategoryHealth:   {affinity: 0.6, avgBundleSize: 2.2, marginMultiplier: 1.15},
		catalog.CategoryClothing: {affinity: 0.5, avgBundleSize: 2.1, marginMultiplier: 1.10},
	},
	catalog.CategoryHealth: {
		catalog.CategoryHealth: {affinity: 0.7, avgBundleSize: 2.6, marginMultiplier: 1.22},
		catalog.CategoryBeauty: {affinity: 0.6, avgBundleSize: 2.3, marginMultiplier: 1.18},
		catalog.CategorySports: {affinity: 0.5, avgBundleSize: 2.0, marginMultiplier: 1.12},
	},
	catalog.CategoryToys: {
		catalog.CategoryToys:  {affinity: 0.6, avgBundleSize: 2.4, marginMultiplier: 1.15},
		catalog.CategoryBooks: {affinity: 0.4, avgBundleSize: 2.0, marginMultiplier: 1.08},
	},
	catalog.CategoryBooks: {
		catalog.CategoryBooks: {affinity: 0.3, avgBundleSize: 1.8, marginMultiplier: 1.05},
	},
	catalog.CategoryAutomotive: {
		catalog.CategoryAutomotive:  {affinity: 0.7, avgBundleSize: 2.2, marginMultiplier: 1.16},
		catalog.CategoryElectronics: {affinity: 0.4, avgBundleSize: 2.0, marginMultiplier: 1.08},
	},
}

// AffinityScore returns the co-purchase affinity between two categories,
// taking the max of both lookup directions, 0 when neither exists.
func AffinityScore(a, b catalog.ProductCategory) float64 {
	forward := 0.0
	if row, ok := categoryAffinity[a]; ok {
		forward = row[b].affinity
	}
	reverse := 0.0
	if row, ok := categoryAffinity[b]; ok {
		reverse = row[a].affinity
	}
	if forward > reverse {
		return forward
	}
	return reverse
}

// averageAffinity is the mean pairwise affinity across all categories in a
// bundle.
func averageAffinity(categories []catalog.ProductCategory) float64 {
	total := 0.0
	pairs := 0
	for i := 0; i < len(categories)-1; i++ {
		for j := i + 1; j < len(categories); j++ {
			total += AffinityScore(categories[i], categories[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}
