package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Dandresen1/margin-mindset-43/database"
	"github.com/Dandresen1/margin-mindset-43/middleware"
	"github.com/Dandresen1/margin-mindset-43/models"
	"github.com/Dandresen1/margin-mindset-43/utils"
)

// HandleListReports returns the caller's saved reports, newest first.
func HandleListReports(c *fiber.Ctx) error {
	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "Report storage is not configured"})
	}

	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)

	var totalItems int
	err = db.QueryRow(c.Context(), `SELECT COUNT(*) FROM reports WHERE user_id = $1`, claims.UserID).Scan(&totalItems)
	if err != nil {
		log.Printf("failed to count reports: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list reports"})
	}

	pagination := utils.CreatePagination(totalItems, page, pageSize)
	offset := (pagination.CurrentPage - 1) * pagination.PageSize

	rows, err := db.Query(c.Context(), `
        SELECT id, report_number, user_id, product_name, verdict, input, output, created_at
        FROM reports
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, claims.UserID, pagination.PageSize, offset)
	if err != nil {
		log.Printf("failed to query reports: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list reports"})
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var r models.Report
		if err := rows.Scan(&r.ID, &r.ReportNumber, &r.UserID, &r.ProductName, &r.Verdict, &r.Input, &r.Output, &r.CreatedAt); err != nil {
			log.Printf("failed to scan report row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to read report data"})
		}
		reports = append(reports, r)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reports,
		"pagination": models.PaginationInfo{
			TotalItems:  pagination.TotalItems,
			TotalPages:  pagination.TotalPages,
			CurrentPage: pagination.CurrentPage,
			PageSize:    pagination.PageSize,
		},
	})
}

// HandleGetReport returns one saved report owned by the caller.
func HandleGetReport(c *fiber.Ctx) error {
	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "Report storage is not configured"})
	}

	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	reportID := c.Params("reportId")

	var r models.Report
	err = db.QueryRow(c.Context(), `
        SELECT id, report_number, user_id, product_name, verdict, input, output, created_at
        FROM reports
        WHERE id = $1 AND user_id = $2
    `, reportID, claims.UserID).Scan(&r.ID, &r.ReportNumber, &r.UserID, &r.ProductName, &r.Verdict, &r.Input, &r.Output, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Report not found"})
		}
		log.Printf("failed to fetch report %s: %v", reportID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch report"})
	}

	return c.JSON(fiber.Map{"success": true, "data": r})
}
