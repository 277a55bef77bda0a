package controllers

import (
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/resp"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/services"

	"github.com/gin-gonic/gin"
)

type DishTypeController struct{ Svc *services.CatalogService }

func NewDishTypeController(s *services.CatalogService) *DishTypeController {
	return &DishTypeController{Svc: s}
}

// GET /dish-types?name=
func (h *DishTypeController) List(c *gin.Context) {
	types, err := h.Svc.ListDishTypes(c.Query("name"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, types)
}

// POST /dish-types
func (h *DishTypeController) Create(c *gin.Context) {
	var req services.DishTypeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.CreateDishType(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, t)
}

// PATCH /dish-types/:id
func (h *DishTypeController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.DishTypeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.UpdateDishType(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /dish-types/:id
func (h *DishTypeController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteDishType(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
