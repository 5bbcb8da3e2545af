package catalog

import (
	"fmt"
	"strings"

	"github.com/Dandresen1/margin-mindset-43/utils"
)

// FeeSchedule describes how a marketplace charges a seller per order.
// ReferralPct and ProcessingPct are decimals (0.15 = 15%); fixed fees are
// dollar amounts added per order.
type FeeSchedule struct {
	ReferralPct   float64 `json:"referral_pct"`
	FixedFee      float64 `json:"fixed_fee"`
	ProcessingPct float64 `json:"processing_pct"`
}

var platformFees = map[string]FeeSchedule{
	"amazon":     {ReferralPct: 0.15, FixedFee: 0, ProcessingPct: 0},
	"shopify":    {ReferralPct: 0, FixedFee: 0.30, ProcessingPct: 0.029},
	"etsy":       {ReferralPct: 0.065, FixedFee: 0.20, ProcessingPct: 0.03},
	"tiktok":     {ReferralPct: 0.08, FixedFee: 0, ProcessingPct: 0},
	"aliexpress": {ReferralPct: 0.08, FixedFee: 0, ProcessingPct: 0},
	"alibaba":    {ReferralPct: 0.05, FixedFee: 0, ProcessingPct: 0},
	"walmart":    {ReferralPct: 0.15, FixedFee: 0, ProcessingPct: 0},
	"ebay":       {ReferralPct: 0.1325, FixedFee: 0.30, ProcessingPct: 0},
	"generic":    {ReferralPct: 0.10, FixedFee: 0, ProcessingPct: 0.029},
}

// FallbackFeePct applies when the platform is not in the schedule at all.
const FallbackFeePct = 0.15

// GetFeeSchedule returns the fee schedule for a marketplace, or false when
// the platform is unrecognized.
func GetFeeSchedule(platform string) (FeeSchedule, bool) {
	s, ok := platformFees[strings.ToLower(strings.TrimSpace(platform))]
	return s, ok
}

// GetPlatformFees estimates the per-order marketplace fee for a selling
// price. Unknown platforms degrade to a flat 15% estimate with a low
// confidence badge instead of erroring.
func GetPlatformFees(platform string, price float64) (float64, ConfidenceBadge) {
	schedule, ok := GetFeeSchedule(platform)
	if !ok {
		return utils.RoundCents(price * FallbackFeePct), ConfidenceBadge{
			Level:       ConfidenceLow,
			Source:      SourcePlatformAverage,
			Description: fmt.Sprintf("Unknown platform %q; assuming 15%% marketplace fee", platform),
		}
	}

	fee := price*schedule.ReferralPct + schedule.FixedFee + price*schedule.ProcessingPct
	return utils.RoundCents(fee), ConfidenceBadge{
		Level:       ConfidenceHigh,
		Source:      SourcePlatformAverage,
		Description: fmt.Sprintf("Published fee schedule for %s", strings.ToLower(platform)),
	}
}
