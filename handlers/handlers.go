package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos-api/pos"

	"github.com/gin-gonic/gin"
)

// svc is the shared POS service, set once at startup. Tests swap it with
// SetService the same way they swap the database handle.
var svc *pos.Service

func Init(s *pos.Service) {
	svc = s
}

// SetService replaces the service and returns the previous one, for tests.
func SetService(s *pos.Service) *pos.Service {
	prev := svc
	svc = s
	return prev
}

// respondError maps service errors onto HTTP statuses. Anything that is not a
// lookup failure or bad input is a refused action: 422, no state change.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pos.ErrTableNotFound),
		errors.Is(err, pos.ErrMenuItemNotFound),
		errors.Is(err, pos.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pos.ErrCustomerRequired),
		errors.Is(err, pos.ErrInvalidBackup):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pos.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, pos.ErrInvalidCredentials),
		errors.Is(err, pos.ErrAccountInactive):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}
