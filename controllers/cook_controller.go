package controllers

import (
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/resp"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/services"

	"github.com/gin-gonic/gin"
)

type CookController struct{ Svc *services.CookService }

func NewCookController(s *services.CookService) *CookController {
	return &CookController{Svc: s}
}

// GET /cooks?username=
func (h *CookController) List(c *gin.Context) {
	cooks, err := h.Svc.List(c.Query("username"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cooks)
}

// GET /cooks/:id
func (h *CookController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cook, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cook": cook, "dishes": cook.Dishes})
}

// POST /cooks
func (h *CookController) Create(c *gin.Context) {
	var req services.CookIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cook, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cook)
}

// PATCH /cooks/:id
func (h *CookController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.CookIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cook, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cook)
}

// DELETE /cooks/:id
func (h *CookController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
