package handlers

import (
	"net/http"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns all menu items, optionally filtered by category.
func GetMenu(c *gin.Context) {
	items := svc.MenuItems()
	if category := c.Query("category"); category != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// AddMenuItem creates a menu item.
func AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := svc.AddMenuItem(models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem overwrites a menu item.
func UpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := svc.UpdateMenuItem(models.MenuItem{
		ID:          c.Param("itemId"),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item. Lines already on open orders keep their
// stored copy; history is untouched.
func DeleteMenuItem(c *gin.Context) {
	if err := svc.DeleteMenuItem(c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// ListCategories returns the category names.
func ListCategories(c *gin.Context) {
	categories := svc.Categories()
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddCategory inserts a category; duplicates are a silent no-op.
func AddCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := svc.AddCategory(req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "categories": svc.Categories()})
}

// DeleteCategory removes a category name.
func DeleteCategory(c *gin.Context) {
	if err := svc.DeleteCategory(c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
