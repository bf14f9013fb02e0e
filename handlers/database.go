package handlers

import (
	"net/http"

	"restaurant-pos-api/pos"

	"github.com/gin-gonic/gin"
)

// ExportDatabase bundles every collection into one backup document.
func ExportDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, svc.Export())
}

// ImportDatabase replaces all collections with the posted bundle. The four
// core collections must be present or nothing is written.
func ImportDatabase(c *gin.Context) {
	var bundle pos.ExportBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := svc.Import(bundle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database imported"})
}
