package controllers

import (
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/resp"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders?status=&limit=
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	orders, err := h.Svc.List(c.Query("status"), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	o, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	total, err := h.Svc.Total(o.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"order": o, "total": total})
}

// PATCH /orders/:id/status
func (h *OrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := h.Svc.SetStatus(uint(id), body.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}
