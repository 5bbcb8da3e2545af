package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GenerateReportNumber generates a unique report number in the format
// RPT-YYYY-NNNN where YYYY is the current year and NNNN is sequential.
func GenerateReportNumber(ctx context.Context, db interface{}) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("RPT-%d-", year)

	query := `
		SELECT report_number
		FROM reports
		WHERE report_number LIKE $1
		ORDER BY report_number DESC
		LIMIT 1
	`
	pattern := fmt.Sprintf("RPT-%d-%%", year)

	var lastReportNumber string
	var err error

	// Handle both pgxpool.Pool and pgx.Tx types
	switch v := db.(type) {
	case *pgxpool.Pool:
		err = v.QueryRow(ctx, query, pattern).Scan(&lastReportNumber)
	case pgx.Tx:
		err = v.QueryRow(ctx, query, pattern).Scan(&lastReportNumber)
	default:
		return "", fmt.Errorf("unsupported database type")
	}

	// If no report exists for this year, start at 0001
	if err != nil {
		if err.Error() == "no rows in result set" {
			return fmt.Sprintf("%s%04d", prefix, 1), nil
		}
		return "", fmt.Errorf("failed to query last report number: %w", err)
	}

	var lastSeq int
	_, err = fmt.Sscanf(lastReportNumber, prefix+"%d", &lastSeq)
	if err != nil {
		// If parsing fails, start fresh
		return fmt.Sprintf("%s%04d", prefix, 1), nil
	}

	newSeq := lastSeq + 1
	return fmt.Sprintf("%s%04d", prefix, newSeq), nil
}
