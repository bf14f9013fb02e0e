package handlers

import (
	"net/http"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// GetOrderHistory returns history records newest first. Optional date filters
// (`date`, or `from`/`to`, ISO dates) operate on an in-memory copy; the
// stored sequence is never touched by a read.
func GetOrderHistory(c *gin.Context) {
	records := svc.OrderHistory()

	date := c.Query("date")
	from := c.Query("from")
	to := c.Query("to")
	if date != "" || from != "" || to != "" {
		filtered := make([]models.HistoryRecord, 0, len(records))
		for _, r := range records {
			if date != "" && r.OrderDate != date {
				continue
			}
			if from != "" && r.OrderDate < from {
				continue
			}
			if to != "" && r.OrderDate > to {
				continue
			}
			filtered = append(filtered, r)
		}
		records = filtered
	}

	c.JSON(http.StatusOK, gin.H{"count": len(records), "orders": records})
}

// GetReportSummary returns order count, revenue, and daily sales totals.
func GetReportSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": svc.Summary()})
}

// ClearOrderHistory empties the entire history sequence.
func ClearOrderHistory(c *gin.Context) {
	if err := svc.ClearOrderHistory(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order history cleared"})
}
