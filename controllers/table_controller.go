package controllers

import (
	"net/http"
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/resp"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/services"

	"github.com/gin-gonic/gin"
)

type TableController struct{ Svc *services.TableService }

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Svc: s}
}

// GET /tables?number=
func (h *TableController) List(c *gin.Context) {
	var number *int
	if q := c.Query("number"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			number = &n
		}
	}
	tables, err := h.Svc.List(number)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /tables/:id
func (h *TableController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"table": t, "publicUrl": h.Svc.PublicURL(t)})
}

// POST /tables
func (h *TableController) Create(c *gin.Context) {
	var req services.TableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"table": t, "publicUrl": h.Svc.PublicURL(t)})
}

// PATCH /tables/:id
func (h *TableController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.TableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /tables/:id
func (h *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /tables/:id/qr — PNG bytes for print
func (h *TableController) QRCode(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	png, err := h.Svc.QRCode(t)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// DELETE /tables/:id/qr — drop the cached image so the next read regenerates
func (h *TableController) ClearQRCode(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.ClearQRCode(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
