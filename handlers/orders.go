package handlers

import (
	"net/http"

	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// StartOrder opens an ordering session on the table.
func StartOrder(c *gin.Context) {
	table, err := svc.StartOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordering session started", "table": table})
}

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
}

// AddOrderItem adds one unit of a menu item to the table's order.
func AddOrderItem(c *gin.Context) {
	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	table, err := svc.AddOrderItem(c.Param("id"), req.MenuItemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Item added",
		"order_items": table.OrderItems,
		"order_total": table.OrderTotal,
	})
}

// RemoveOrderItem removes one unit of a menu item from the table's order.
func RemoveOrderItem(c *gin.Context) {
	table, err := svc.RemoveOrderItem(c.Param("id"), c.Param("menuItemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Item removed",
		"order_items": table.OrderItems,
		"order_total": table.OrderTotal,
	})
}

// SaveOrder snapshots the ledger on the table and exits the ordering session,
// keeping the table occupied.
func SaveOrder(c *gin.Context) {
	table, bill, err := svc.SaveOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order saved",
		"table":   table,
		"bill":    bill,
	})
}

// CompleteOrder archives the order to history and frees the table.
func CompleteOrder(c *gin.Context) {
	record, err := svc.CompleteOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order completed",
		"record":  record,
	})
}

// CancelOrder discards the order without writing history.
func CancelOrder(c *gin.Context) {
	table, err := svc.CancelOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "table": table})
}

// GetTableBill returns the live bill breakdown for the order-view modal and
// receipt printing.
func GetTableBill(c *gin.Context) {
	bill, err := svc.Bill(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// GetStateMachineInfo returns the full table state machine for informational
// purposes.
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine": statemachine.GetAllTransitions(),
		"statuses":      []string{"available", "occupied", "reserved"},
		"description":   "Restaurant Table Lifecycle State Machine",
	})
}
