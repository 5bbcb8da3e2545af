package models

import "time"

// Report is a persisted analysis, stored verbatim as (input, output) JSONB
// pairs for an authenticated user.
type Report struct {
	ID           string    `json:"id"`
	ReportNumber string    `json:"report_number"`
	UserID       string    `json:"user_id"`
	ProductName  string    `json:"product_name"`
	Verdict      string    `json:"verdict"`
	Input        JSONB     `json:"input"`
	Output       JSONB     `json:"output"`
	CreatedAt    time.Time `json:"created_at"`
}

// PaginationInfo holds metadata for paginated responses.
type PaginationInfo struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}
