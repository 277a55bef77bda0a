package routes

import (
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/configs"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/controllers"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/repository"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	dishRepo := repository.NewDishRepository(db)
	typeRepo := repository.NewDishTypeRepository(db)
	cookRepo := repository.NewCookRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(db, dishRepo, typeRepo, cookRepo)
	cookSvc := services.NewCookService(db, cookRepo)
	tableSvc := services.NewTableService(db, tableRepo, cfg.SiteBaseURL)
	cartSvc := services.NewCartService(dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartSvc)
	likeSvc := services.NewLikeService(dishRepo)

	// Controllers
	dishTypeCtrl := controllers.NewDishTypeController(catalogSvc)
	dishCtrl := controllers.NewDishController(catalogSvc)
	cookCtrl := controllers.NewCookController(cookSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	publicCtrl := controllers.NewPublicController(tableSvc, catalogSvc, cartSvc, orderSvc, likeSvc)

	// Customer surface, addressed by the table UUID from the QR code
	table := r.Group("/table/:uuid")
	{
		table.GET("/menu", publicCtrl.Menu)
		table.POST("/cart/add", publicCtrl.CartAdd)
		table.POST("/cart/remove", publicCtrl.CartRemove)
		table.POST("/cart/clear", publicCtrl.CartClear)
		table.POST("/order/submit", publicCtrl.SubmitOrder)
		table.POST("/dish/:id/like", publicCtrl.LikeDish)
	}

	// Staff surface; authentication is handled upstream of this service
	dt := r.Group("/dish-types")
	{
		dt.GET("", dishTypeCtrl.List)
		dt.POST("", dishTypeCtrl.Create)
		dt.PATCH("/:id", dishTypeCtrl.Update)
		dt.DELETE("/:id", dishTypeCtrl.Delete)
	}

	d := r.Group("/dishes")
	{
		d.GET("", dishCtrl.List)
		d.GET("/:id", dishCtrl.Get)
		d.POST("", dishCtrl.Create)
		d.PATCH("/:id", dishCtrl.Update)
		d.DELETE("/:id", dishCtrl.Delete)
		d.POST("/:id/toggle-cook", dishCtrl.ToggleCook)
	}

	ck := r.Group("/cooks")
	{
		ck.GET("", cookCtrl.List)
		ck.GET("/:id", cookCtrl.Get)
		ck.POST("", cookCtrl.Create)
		ck.PATCH("/:id", cookCtrl.Update)
		ck.DELETE("/:id", cookCtrl.Delete)
	}

	tb := r.Group("/tables")
	{
		tb.GET("", tableCtrl.List)
		tb.GET("/:id", tableCtrl.Get)
		tb.POST("", tableCtrl.Create)
		tb.PATCH("/:id", tableCtrl.Update)
		tb.DELETE("/:id", tableCtrl.Delete)
		tb.GET("/:id/qr", tableCtrl.QRCode)
		tb.DELETE("/:id/qr", tableCtrl.ClearQRCode)
	}

	o := r.Group("/orders")
	{
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
		o.PATCH("/:id/status", orderCtrl.SetStatus)
	}
}
