package handlers

import (
	"net/http"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// ListTables returns the table grid.
func ListTables(c *gin.Context) {
	tables := svc.Tables()
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// GetTable returns one table.
func GetTable(c *gin.Context) {
	table, err := svc.Table(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// AddTable creates a new available table with the next display number.
func AddTable(c *gin.Context) {
	table, err := svc.AddTable()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table added", "table": table})
}

type UpdateTableRequest struct {
	Number   int                `json:"number" binding:"required,min=1"`
	Seats    int                `json:"seats" binding:"required,min=1"`
	Status   models.TableStatus `json:"status" binding:"required"`
	Customer string             `json:"customer"`
}

// UpdateTable overwrites a table from the management form.
func UpdateTable(c *gin.Context) {
	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: available, occupied, or reserved"})
		return
	}

	table, err := svc.UpdateTable(models.Table{
		ID:       c.Param("id"),
		Number:   req.Number,
		Seats:    req.Seats,
		Status:   req.Status,
		Customer: req.Customer,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table updated", "table": table})
}

// DeleteTable removes a table permanently.
func DeleteTable(c *gin.Context) {
	if err := svc.DeleteTable(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted"})
}

type CustomerRequest struct {
	Customer string `json:"customer" binding:"required"`
}

// OccupyTable seats a named party at the table.
func OccupyTable(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	table, err := svc.Occupy(c.Param("id"), req.Customer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table occupied", "table": table})
}

// ReserveTable reserves the table for a named party.
func ReserveTable(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	table, err := svc.Reserve(c.Param("id"), req.Customer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table reserved", "table": table})
}

// FreeTable returns the table to available; refused while order items remain.
func FreeTable(c *gin.Context) {
	table, err := svc.Free(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table freed", "table": table})
}
