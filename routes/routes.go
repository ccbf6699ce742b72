package routes

import (
	"pos-kasir/controllers"
	"pos-kasir/middleware"
	"pos-kasir/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Product  *controllers.ProductController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Report   *controllers.ReportController
}

func SetupRoutes(router *gin.Engine, ctrls Controllers, auth *services.AuthService) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", ctrls.Auth.Login)

	authed := router.Group("/")
	authed.Use(middleware.AuthMiddleware(auth))
	{
		authed.POST("/auth/logout", ctrls.Auth.Logout)
		authed.GET("/auth/session", ctrls.Auth.Session)

		authed.GET("/products", ctrls.Product.GetAllProducts)
		authed.GET("/products/categories", ctrls.Product.GetCategories)
		authed.GET("/products/:id", ctrls.Product.GetProductByID)
		authed.POST("/products", ctrls.Product.CreateProduct)
		authed.POST("/products/image", ctrls.Product.UploadProductImage)
		authed.PATCH("/products/:id", ctrls.Product.UpdateProduct)
		authed.DELETE("/products/:id", ctrls.Product.DeleteProduct)

		authed.GET("/cart", ctrls.Cart.GetCart)
		authed.DELETE("/cart", ctrls.Cart.ClearCart)
		authed.POST("/cart/items", ctrls.Cart.AddItem)
		authed.DELETE("/cart/items/:id", ctrls.Cart.RemoveItem)
		authed.DELETE("/cart/items/:id/all", ctrls.Cart.RemoveLine)
		authed.PATCH("/cart/items/:id", ctrls.Cart.UpdateQuantity)

		authed.POST("/checkout", ctrls.Checkout.Checkout)

		authed.GET("/dashboard", ctrls.Report.Dashboard)
		authed.GET("/transactions", ctrls.Report.Transactions)
		authed.GET("/reports/summary", ctrls.Report.Summary)
		authed.GET("/reports/weekly", ctrls.Report.Weekly)
		authed.GET("/reports/top-products", ctrls.Report.TopProducts)
		authed.POST("/reports/email", ctrls.Report.EmailReport)
	}
}
