package handlers

import (
	"net/http"

	"restaurant-pos-api/pos"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the restaurant configuration.
func GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": svc.Settings()})
}

// UpdateSettings merges the submitted fields into the stored settings.
func UpdateSettings(c *gin.Context) {
	var patch pos.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := svc.UpdateSettings(patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "settings": settings})
}
