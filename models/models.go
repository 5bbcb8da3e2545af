package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dandresen1/margin-mindset-43/advisor"
	"github.com/Dandresen1/margin-mindset-43/bundles"
	"github.com/Dandresen1/margin-mindset-43/competitors"
)

// --- Custom JSON Type for database/sql ---

// JSONB allows storing JSON data in a PostgreSQL jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, &j)
}

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// --- Request Shapes ---

// AnalyzeRequest is the JSON body for a viability analysis. Every field is
// optional; absent fields fall back to the documented defaults.
type AnalyzeRequest struct {
	Price            *float64        `json:"price"`
	COGS             *float64        `json:"cogs"`
	Platform         string          `json:"platform"`
	WeightOz         *float64        `json:"weight_oz"`
	ShippingMethod   string          `json:"shipping_method"`
	FlatShippingCost float64         `json:"flat_shipping_cost"`
	PackagingCost    *float64        `json:"packaging_cost"`
	ReturnRate       *float64        `json:"return_rate"`
	RecoveryRate     *float64        `json:"recovery_rate"`
	AdSpend          *AdSpendRequest `json:"ad_spend"`
	ProductName      string          `json:"product_name"`
	ProductURL       string          `json:"product_url"`
	ImagePath        string          `json:"image_path"`
}

type AdSpendRequest struct {
	ConversionRate *float64 `json:"conversion_rate"`
	CPC            *float64 `json:"cpc"`
}

// URLAnalyzeRequest asks for provider detection plus an auto-filled analysis.
type URLAnalyzeRequest struct {
	URL string `json:"url"`
}

// CompetitorAnalysisRequest carries the scraped or user-entered competitor
// set and the price being considered.
type CompetitorAnalysisRequest struct {
	YourPrice   float64              `json:"your_price"`
	Competitors []competitors.Record `json:"competitors"`
	CacheKey    string               `json:"cache_key,omitempty"`
}

// StrategiesRequest feeds the cost-based pricing strategy generator.
type StrategiesRequest struct {
	COGS             float64   `json:"cogs"`
	CompetitorPrices []float64 `json:"competitor_prices"`
	Category         string    `json:"category"`
	PlatformFees     float64   `json:"platform_fees"`
}

// AdvisoryRequest wraps the advisory engine's input.
type AdvisoryRequest struct {
	advisor.Input
}

// BundlesRequest asks for bundle recommendations around a primary product.
type BundlesRequest struct {
	Primary          bundles.Product   `json:"primary"`
	Candidates       []bundles.Product `json:"candidates"`
	TargetMarginLift *float64          `json:"target_margin_lift"`
}
