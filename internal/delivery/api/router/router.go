// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cashmemo/internal/delivery/api/middleware"
	"cashmemo/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	ShopHandler          *handler.ShopHandler
	SubscriptionHandler  *handler.SubscriptionHandler
	CatalogHandler       *handler.CatalogHandler
	CustomerHandler      *handler.CustomerHandler
	OrderHandler         *handler.OrderHandler
	InvoiceHandler       *handler.InvoiceHandler
	PaymentMethodHandler *handler.PaymentMethodHandler
	NotificationHandler  *handler.NotificationHandler
	DeviceHandler        *handler.DeviceHandler
	UploadHandler        *handler.UploadHandler
	ReportHandler        *handler.ReportHandler
	AdHandler            *handler.AdHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.AuthHandler.Register)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
	}

	r.registerPublicRoutes(e.Group("/api/v1/public"))

	// Seller API
	apiV1 := e.Group("/api/v1", r.AuthMiddleware.UserGuard)
	r.registerSellerRoutes(apiV1)

	// Admin console
	e.POST("/admin/auth/login", r.AuthHandler.AdminLogin)
	e.POST("/admin/auth/logout", r.AuthHandler.AdminLogout)

	admin := e.Group("/admin", r.AuthMiddleware.AdminGuard)
	r.registerAdminRoutes(admin)
}

// registerPublicRoutes claims the /api/v1/public prefix outright; without the
// not-found routes an unknown public path falls through to the seller group
// and reports 401 instead of 404.
func (r *router) registerPublicRoutes(public *echo.Group) {
	public.RouteNotFound("", echo.NotFoundHandler)
	public.RouteNotFound("/*", echo.NotFoundHandler)

	public.GET("/plans", r.SubscriptionHandler.ListPlans)
	public.GET("/ads", r.AdHandler.ListActive)
	public.GET("/shops/:slug", r.ShopHandler.GetPublicShop)
	public.GET("/shops/:slug/products/:id", r.ShopHandler.GetPublicProduct)
	public.POST("/shops/:slug/orders", r.ShopHandler.PlaceStorefrontOrder)
	public.GET("/invoices/:token", r.InvoiceHandler.GetPublicInvoice)
}

func (r *router) registerSellerRoutes(api *echo.Group) {
	api.GET("/me", r.AuthHandler.GetMe)
	api.PUT("/me", r.AuthHandler.UpdateMe)

	api.GET("/shop", r.ShopHandler.GetMyShop)
	api.PUT("/shop", r.ShopHandler.UpdateMyShop)
	api.GET("/shop/qr", r.ShopHandler.GenerateShopQR)

	api.GET("/subscription", r.SubscriptionHandler.GetSubscription)
	api.POST("/subscription/requests", r.SubscriptionHandler.SubmitRequest)
	api.GET("/subscription/requests", r.SubscriptionHandler.ListMyRequests)
	api.GET("/payment-transactions", r.SubscriptionHandler.ListMyTransactions)

	categories := api.Group("/categories")
	{
		categories.GET("", r.CatalogHandler.ListCategories)
		categories.POST("", r.CatalogHandler.CreateCategory)
		categories.GET("/:id", r.CatalogHandler.GetCategory)
		categories.PUT("/:id", r.CatalogHandler.UpdateCategory)
		categories.DELETE("/:id", r.CatalogHandler.DeleteCategory)
	}

	products := api.Group("/products")
	{
		products.GET("", r.CatalogHandler.ListProducts)
		products.POST("", r.CatalogHandler.CreateProduct)
		products.GET("/:id", r.CatalogHandler.GetProduct)
		products.PUT("/:id", r.CatalogHandler.UpdateProduct)
		products.DELETE("/:id", r.CatalogHandler.DeleteProduct)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", r.CustomerHandler.ListCustomers)
		customers.POST("", r.CustomerHandler.CreateCustomer)
		customers.GET("/:id", r.CustomerHandler.GetCustomer)
		customers.PUT("/:id", r.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id", r.CustomerHandler.DeleteCustomer)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", r.OrderHandler.ListOrders)
		orders.POST("", r.OrderHandler.CreateOrder)
		orders.GET("/:id", r.OrderHandler.GetOrder)
		orders.PATCH("/:id/status", r.OrderHandler.UpdateOrderStatus)
		orders.DELETE("/:id", r.OrderHandler.DeleteOrder)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", r.InvoiceHandler.ListInvoices)
		invoices.POST("", r.InvoiceHandler.CreateInvoice)
		invoices.GET("/:id", r.InvoiceHandler.GetInvoice)
		invoices.PUT("/:id", r.InvoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", r.InvoiceHandler.DeleteInvoice)
		invoices.GET("/:id/qr", r.InvoiceHandler.GenerateInvoiceQR)
		invoices.GET("/:id/payments", r.InvoiceHandler.ListPayments)
		invoices.POST("/:id/payments", r.InvoiceHandler.CreatePayment)
		invoices.DELETE("/:id/payments/:paymentId", r.InvoiceHandler.DeletePayment)
	}

	paymentMethods := api.Group("/payment-methods")
	{
		paymentMethods.GET("", r.PaymentMethodHandler.ListPaymentMethods)
		paymentMethods.POST("", r.PaymentMethodHandler.CreatePaymentMethod)
		paymentMethods.PUT("/:id", r.PaymentMethodHandler.UpdatePaymentMethod)
		paymentMethods.DELETE("/:id", r.PaymentMethodHandler.DeletePaymentMethod)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", r.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", r.NotificationHandler.CountUnread)
		notifications.PATCH("/read-all", r.NotificationHandler.MarkAllRead)
		notifications.PATCH("/:id/read", r.NotificationHandler.MarkRead)
		notifications.DELETE("/:id", r.NotificationHandler.DeleteNotification)
	}

	devices := api.Group("/devices")
	{
		devices.GET("", r.DeviceHandler.ListDevices)
		devices.POST("", r.DeviceHandler.RegisterDevice)
		devices.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}

	api.POST("/uploads", r.UploadHandler.UploadImage)
	api.DELETE("/uploads/:publicId", r.UploadHandler.DeleteImage)

	reports := api.Group("/reports")
	{
		reports.GET("/summary", r.ReportHandler.Summary)
		reports.GET("/revenue", r.ReportHandler.Revenue)
		reports.GET("/top-products", r.ReportHandler.TopProducts)
	}
}

func (r *router) registerAdminRoutes(admin *echo.Group) {
	admin.GET("/transactions", r.SubscriptionHandler.ListTransactions)
	admin.POST("/transactions/:transactionId/verify", r.SubscriptionHandler.VerifyTransaction)
	admin.GET("/subscription-requests", r.SubscriptionHandler.ListSubscriptionRequests)

	admin.GET("/users", r.AuthHandler.ListUsers)
	admin.PATCH("/users/:id/active", r.AuthHandler.SetUserActive)

	admin.GET("/ads", r.AdHandler.ListAll)
	admin.POST("/ads", r.AdHandler.CreateAd)
	admin.DELETE("/ads/:id", r.AdHandler.DeleteAd)
}
