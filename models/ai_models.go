package models

import "github.com/Dandresen1/margin-mindset-43/margin"

// AISummaryRequest asks for a plain-language narration of an analysis result.
type AISummaryRequest struct {
	Analysis margin.AnalysisResult `json:"analysis"`
	Question string                `json:"question,omitempty"`
}

