package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUsers returns all accounts without password hashes.
func ListUsers(c *gin.Context) {
	users := svc.Users()
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":        u.ID,
			"name":      u.Name,
			"email":     u.Email,
			"roleId":    u.RoleID,
			"isActive":  u.IsActive,
			"createdAt": u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "users": out})
}

// ListRoles returns the role definitions and their permission sets.
func ListRoles(c *gin.Context) {
	roles := svc.Roles()
	c.JSON(http.StatusOK, gin.H{"count": len(roles), "roles": roles})
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
	RoleID   string `json:"role_id" binding:"required"`
}

// CreateUser adds an account with the given role.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := svc.CreateUser(req.Name, req.Email, req.Password, req.RoleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created",
		"user": gin.H{
			"id":     user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"roleId": user.RoleID,
		},
	})
}

// DeleteUser removes an account.
func DeleteUser(c *gin.Context) {
	if err := svc.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
