package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafaeldias/pos-backoffice/apperr"
	"github.com/rafaeldias/pos-backoffice/services"
	"github.com/rafaeldias/pos-backoffice/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// CreateOrder -> POST /orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableSessionID *uint `json:"table_session_id" binding:"required"`
		ProductID      *uint `json:"product_id" binding:"required"`
		Quantity       *int  `json:"quantity" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation("table_session_id, product_id and a positive quantity are required"))
		return
	}

	if err := oc.Service.Create(*req.TableSessionID, *req.ProductID, *req.Quantity); err != nil {
		c.Error(err)
		return
	}

	utils.InfoLogger.Printf("Order created: session=%d product=%d qty=%d",
		*req.TableSessionID, *req.ProductID, *req.Quantity)
	utils.RespondJSON(c, http.StatusCreated, "Order created", nil)
}

// ListOrders -> GET /orders/:table_session_id
func (oc *OrderController) ListOrders(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("table_session_id"), 10, 32)
	if err != nil {
		c.Error(apperr.Validation("invalid table_session_id"))
		return
	}

	orders, err := oc.Service.ListBySession(uint(sessionID))
	if err != nil {
		c.Error(err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// SummarizeOrders -> GET /orders/:table_session_id/total
func (oc *OrderController) SummarizeOrders(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("table_session_id"), 10, 32)
	if err != nil {
		c.Error(apperr.Validation("invalid table_session_id"))
		return
	}

	summary, err := oc.Service.Summarize(uint(sessionID))
	if err != nil {
		c.Error(err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session order summary", summary)
}
