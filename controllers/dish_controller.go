package controllers

import (
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/resp"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/services"

	"github.com/gin-gonic/gin"
)

type DishController struct{ Svc *services.CatalogService }

func NewDishController(s *services.CatalogService) *DishController {
	return &DishController{Svc: s}
}

// GET /dishes?name=
func (h *DishController) List(c *gin.Context) {
	dishes, err := h.Svc.ListDishes(c.Query("name"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /dishes/:id
func (h *DishController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := h.Svc.GetDish(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"dish": d, "cooks": d.Cooks, "dishType": d.DishType})
}

// POST /dishes
func (h *DishController) Create(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.CreateDish(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /dishes/:id
func (h *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.UpdateDish(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// DELETE /dishes/:id
func (h *DishController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteDish(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /dishes/:id/toggle-cook
func (h *DishController) ToggleCook(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		CookID uint `json:"cookId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	assigned, err := h.Svc.ToggleCook(uint(id), body.CookID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"assigned": assigned})
}
