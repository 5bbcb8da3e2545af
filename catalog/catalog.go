package catalog

import (
	"fmt"
	"strings"

	"github.com/Dandresen1/margin-mindset-43/utils"
)

// ProductCategory is an enumerated category tag. Categories are looked up,
// never mutated.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryBeauty      ProductCategory = "beauty"
	CategoryHome        ProductCategory = "home"
	CategoryJewelry     ProductCategory = "jewelry"
	CategoryBooks       ProductCategory = "books"
	CategorySports      ProductCategory = "sports"
	CategoryToys        ProductCategory = "toys"
	CategoryAutomotive  ProductCategory = "automotive"
	CategoryHealth      ProductCategory = "health"
	CategoryUnknown     ProductCategory = "unknown"
)

// Categories fixes the enumeration order used for detection tie-breaking.
var Categories = []ProductCategory{
	CategoryElectronics,
	CategoryClothing,
	CategoryBeauty,
	CategoryHome,
	CategoryJewelry,
	CategoryBooks,
	CategorySports,
	CategoryToys,
	CategoryAutomotive,
	CategoryHealth,
	CategoryUnknown,
}

// ConfidenceLevel is the data-quality tier of a derived value.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ConfidenceSource records where a derived value came from.
type ConfidenceSource string

const (
	SourceScraped         ConfidenceSource = "scraped"
	SourceCategoryDefault ConfidenceSource = "category_default"
	SourcePlatformAverage ConfidenceSource = "platform_average"
	SourceManual          ConfidenceSource = "manual"
)

// ConfidenceBadge tags a derived value with its provenance so the UI can show
// where a number came from.
type ConfidenceBadge struct {
	Level       ConfidenceLevel  `json:"level"`
	Source      ConfidenceSource `json:"source"`
	Description string           `json:"description"`
}

// Range is an inclusive [Min,Max] numeric range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CategoryDefaults holds the cost and behavior priors for one category.
type CategoryDefaults struct {
	COGSPercentage Range   `json:"cogs_percentage"` // % of selling price
	WeightOz       Range   `json:"weight_oz"`
	ConversionRate float64 `json:"conversion_rate"` // %
	CPC            float64 `json:"cpc"`             // $
	ReturnRate     float64 `json:"return_rate"`     // %
	Description    string  `json:"description"`
}

var categoryDefaults = map[ProductCategory]CategoryDefaults{
	CategoryElectronics: {
		COGSPercentage: Range{Min: 30, Max: 40},
		WeightOz:       Range{Min: 4, Max: 8},
		ConversionRate: 1.8,
		CPC:            1.20,
		ReturnRate:     12.0,
		Description:    "Electronic devices and accessories",
	},
	CategoryClothing: {
		COGSPercentage: Range{Min: 20, Max: 30},
		WeightOz:       Range{Min: 4, Max: 12},
		ConversionRate: 2.2,
		CPC:            0.80,
		ReturnRate:     25.0,
		Description:    "Apparel and fashion items",
	},
	CategoryBeauty: {
		COGSPercentage: Range{Min: 25, Max: 35},
		WeightOz:       Range{Min: 2, Max: 6},
		ConversionRate: 2.5,
		CPC:            1.50,
		ReturnRate:     8.0,
		Description:    "Cosmetics and personal care",
	},
	CategoryHome: {
		COGSPercentage: Range{Min: 35, Max: 45},
		WeightOz:       Range{Min: 8, Max: 16},
		ConversionRate: 1.5,
		CPC:            1.00,
		ReturnRate:     10.0,
		Description:    "Home goods and decor",
	},
	CategoryJewelry: {
		COGSPercentage: Range{Min: 15, Max: 25},
		WeightOz:       Range{Min: 1, Max: 4},
		ConversionRate: 1.2,
		CPC:            2.00,
		ReturnRate:     15.0,
		Description:    "Jewelry and accessories",
	},
	CategoryBooks: {
		COGSPercentage: Range{Min: 40, Max: 60},
		WeightOz:       Range{Min: 6, Max: 20},
		ConversionRate: 3.0,
		CPC:            0.50,
		ReturnRate:     6.0,
		Description:    "Books and publications",
	},
	CategorySports: {
		COGSPercentage: Range{Min: 30, Max: 40},
		WeightOz:       Range{Min: 8, Max: 24},
		ConversionRate: 2.0,
		CPC:            1.10,
		ReturnRate:     12.0,
		Description:    "Sports and fitness equipment",
	},
	CategoryToys: {
		COGSPercentage: Range{Min: 25, Max: 35},
		WeightOz:       Range{Min: 4, Max: 16},
		ConversionRate: 2.8,
		CPC:            0.90,
		ReturnRate:     11.0,
		Description:    "Toys and games",
	},
	CategoryAutomotive: {
		COGSPercentage: Range{Min: 35, Max: 50},
		WeightOz:       Range{Min: 2, Max: 32},
		ConversionRate: 1.5,
		CPC:            1.80,
		ReturnRate:     9.0,
		Description:    "Automotive parts and accessories",
	},
	CategoryHealth: {
		COGSPercentage: Range{Min: 20, Max: 30},
		WeightOz:       Range{Min: 2, Max: 8},
		ConversionRate: 2.2,
		CPC:            1.60,
		ReturnRate:     10.0,
		Description:    "Health and wellness products",
	},
	CategoryUnknown: {
		COGSPercentage: Range{Min: 25, Max: 40},
		WeightOz:       Range{Min: 6, Max: 12},
		ConversionRate: 2.0,
		CPC:            1.20,
		ReturnRate:     18.0,
		Description:    "General product",
	},
}

var categoryKeywords = map[ProductCategory][]string{
	CategoryElectronics: {
		"phone", "laptop", "tablet", "headphone", "speaker", "camera", "tv", "monitor",
		"mouse", "keyboard", "charger", "cable", "wireless", "bluetooth", "smart",
		"electronic", "digital", "tech", "gaming", "computer", "earbuds", "watch",
	},
	CategoryClothing: {
		"shirt", "dress", "pants", "jeans", "jacket", "coat", "shoes", "boots",
		"sneakers", "hat", "cap", "socks", "underwear", "bra", "top", "skirt",
		"shorts", "hoodie", "sweater", "clothing", "apparel", "fashion", "wear",
	},
	CategoryBeauty: {
		"makeup", "lipstick", "foundation", "mascara", "skincare", "cream", "serum",
		"shampoo", "conditioner", "perfume", "cologne", "nail", "beauty", "cosmetic",
		"moisturizer", "cleanser", "toner", "sunscreen", "lotion", "treatment",
	},
	CategoryHome: {
		"furniture", "chair", "table", "bed", "lamp", "pillow", "blanket", "curtain",
		"rug", "decor", "kitchen", "bathroom", "bedroom", "living", "home", "house",
		"storage", "organizer", "shelf", "frame", "candle", "plant", "vase",
	},
	CategoryJewelry: {
		"ring", "necklace", "bracelet", "earring", "chain", "pendant",
		"jewelry", "gold", "silver", "diamond", "pearl", "gem", "jewel",
	},
	CategoryBooks: {
		"book", "novel", "guide", "manual", "textbook", "cookbook", "journal",
		"diary", "notebook", "planner", "magazine", "publication", "reading",
	},
	CategorySports: {
		"fitness", "gym", "exercise", "workout", "sports", "athletic", "running",
		"yoga", "weights", "dumbbell", "treadmill", "bike", "ball", "equipment",
	},
	CategoryToys: {
		"toy", "game", "puzzle", "doll", "action", "figure", "lego", "board",
		"card", "kids", "children", "baby", "plush", "stuffed", "play",
	},
	CategoryAutomotive: {
		"car", "auto", "vehicle", "tire", "brake", "engine", "oil", "filter",
		"automotive", "motor", "driving", "racing",
	},
	CategoryHealth: {
		"vitamin", "supplement", "protein", "health", "wellness", "medical",
		"nutrition", "organic", "natural", "herbal", "diet",
	},
	CategoryUnknown: {
		"product", "item", "goods", "merchandise",
	},
}

// Defaults returns the priors for a category. Unrecognized categories fall
// back to the unknown row rather than erroring.
func Defaults(category ProductCategory) CategoryDefaults {
	if d, ok := categoryDefaults[category]; ok {
		return d
	}
	return categoryDefaults[CategoryUnknown]
}

// DetectCategory scores each category by the fraction of its keyword list
// found as case-insensitive substrings of text and returns the best match.
// Scores are normalized by keyword-list length so long lists don't win by
// volume alone. Ties break on enumeration order.
func DetectCategory(text string) (ProductCategory, ConfidenceBadge) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return CategoryUnknown, ConfidenceBadge{
			Level:       ConfidenceLow,
			Source:      SourceCategoryDefault,
			Description: "No product text to classify",
		}
	}

	best := CategoryUnknown
	bestScore := 0.0
	for _, category := range Categories {
		keywords := categoryKeywords[category]
		matches := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matches++
			}
		}
		score := float64(matches) / float64(len(keywords))
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	switch {
	case bestScore >= 0.2:
		return best, ConfidenceBadge{
			Level:       ConfidenceHigh,
			Source:      SourceCategoryDefault,
			Description: fmt.Sprintf("Strong keyword match for %s", best),
		}
	case bestScore >= 0.1:
		return best, ConfidenceBadge{
			Level:       ConfidenceMedium,
			Source:      SourceCategoryDefault,
			Description: fmt.Sprintf("Partial keyword match for %s", best),
		}
	default:
		return CategoryUnknown, ConfidenceBadge{
			Level:       ConfidenceLow,
			Source:      SourceCategoryDefault,
			Description: "No category keywords matched",
		}
	}
}

// COGSRange estimates the cost-of-goods band for a selling price using the
// category's COGS percentage priors, rounded to cents.
type COGSRange struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Percentage string  `json:"percentage"`
}

func GetCOGSRange(price float64, category ProductCategory) COGSRange {
	d := Defaults(category)
	return COGSRange{
		Min:        utils.RoundCents(price * d.COGSPercentage.Min / 100),
		Max:        utils.RoundCents(price * d.COGSPercentage.Max / 100),
		Percentage: fmt.Sprintf("%.0f-%.0f%%", d.COGSPercentage.Min, d.COGSPercentage.Max),
	}
}

// GetReturnRate returns the category's baseline return rate in percent.
// Unknown is itself a valid key carrying an industry-average default.
func GetReturnRate(category ProductCategory) (float64, ConfidenceBadge) {
	d, ok := categoryDefaults[category]
	if !ok || category == CategoryUnknown {
		return categoryDefaults[CategoryUnknown].ReturnRate, ConfidenceBadge{
			Level:       ConfidenceLow,
			Source:      SourceCategoryDefault,
			Description: "Industry-average return rate; category unknown",
		}
	}
	return d.ReturnRate, ConfidenceBadge{
		Level:       ConfidenceMedium,
		Source:      SourceCategoryDefault,
		Description: fmt.Sprintf("Typical return rate for %s", category),
	}
}
