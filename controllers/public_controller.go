package controllers

import (
	"strconv"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/pkg/resp"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/services"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// PublicController serves the customer-facing surface reached through a
// table's QR code. Every route is addressed by the table's public UUID;
// internal ids never appear in these URLs.
type PublicController struct {
	Tables  *services.TableService
	Catalog *services.CatalogService
	Carts   *services.CartService
	Orders  *services.OrderService
	Likes   *services.LikeService
}

func NewPublicController(
	tables *services.TableService,
	catalog *services.CatalogService,
	carts *services.CartService,
	orders *services.OrderService,
	likes *services.LikeService,
) *PublicController {
	return &PublicController{Tables: tables, Catalog: catalog, Carts: carts, Orders: orders, Likes: likes}
}

// GET /table/:uuid/menu
func (h *PublicController) Menu(c *gin.Context) {
	table, err := h.Tables.Resolve(c.Param("uuid"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	dishes, err := h.Catalog.ListDishes(c.Query("name"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	types, err := h.Catalog.ListDishTypes("")
	if err != nil {
		resp.Error(c, err)
		return
	}

	sess := sessions.Default(c)
	cart, err := h.Carts.Snapshot(session.GetCart(sess, table.UUID))
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, gin.H{
		"table":     table,
		"dishes":    dishes,
		"dishTypes": types,
		"cart":      cart,
	})
}

// POST /table/:uuid/cart/add
func (h *PublicController) CartAdd(c *gin.Context) {
	table, err := h.Tables.Resolve(c.Param("uuid"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	var body struct {
		DishID uint `json:"dishId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := sessions.Default(c)
	cart := session.GetCart(sess, table.UUID)
	if err := h.Carts.Add(cart, body.DishID); err != nil {
		resp.Error(c, err)
		return
	}
	session.PutCart(sess, table.UUID, cart)
	if err := sess.Save(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": cart.Count()})
}

// POST /table/:uuid/cart/remove
func (h *PublicController) CartRemove(c *gin.Context) {
	table, err := h.Tables.Resolve(c.Param("uuid"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	var body struct {
		DishID uint `json:"dishId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := sessions.Default(c)
	cart := session.GetCart(sess, table.UUID)
	h.Carts.Remove(cart, body.DishID)
	session.PutCart(sess, table.UUID, cart)
	if err := sess.Save(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": cart.Count()})
}

// POST /table/:uuid/cart/clear
func (h *PublicController) CartClear(c *gin.Context) {
	table, err := h.Tables.Resolve(c.Param("uuid"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	sess := sessions.Default(c)
	session.DropCart(sess, table.UUID)
	if err := sess.Save(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": 0})
}

// POST /table/:uuid/order/submit
func (h *PublicController) SubmitOrder(c *gin.Context) {
	table, err := h.Tables.Resolve(c.Param("uuid"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := sessions.Default(c)
	cart := session.GetCart(sess, table.UUID)

	order, err := h.Orders.SubmitFromCart(table, cart, body.Notes)
	if err != nil {
		resp.Error(c, err)
		return
	}

	// The order is durable at this point; only now does the cart go away.
	// A retry after a failed save re-submits an already emptied cart and
	// is stopped by the empty-cart validation, not duplicated.
	session.DropCart(sess, table.UUID)
	if err := sess.Save(); err != nil {
		resp.ServerError(c, err)
		return
	}

	total, err := h.Orders.Total(order.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order, "total": total})
}

// POST /table/:uuid/dish/:id/like
func (h *PublicController) LikeDish(c *gin.Context) {
	table, err := h.Tables.Resolve(c.Param("uuid"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	// A non-numeric id parses to 0, which no dish has; the like is then
	// silently ignored like any other vanished dish.
	dishID, _ := strconv.Atoi(c.Param("id"))

	sess := sessions.Default(c)
	liked := session.GetLiked(sess, table.UUID)
	counted, err := h.Likes.Like(liked, uint(dishID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if counted {
		session.PutLiked(sess, table.UUID, liked)
		if err := sess.Save(); err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	resp.OK(c, gin.H{"counted": counted})
}
