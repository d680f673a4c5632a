package routes

import (
	"time"

	"gromeuse/api/handler"
	"gromeuse/api/middleware"
	"gromeuse/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Users          *handler.UserHandler
	Products       *handler.ProductHandler
	Catalog        *handler.CatalogHandler
	Cart           *handler.CartHandler
	Orders         *handler.OrderHandler
	AuthMiddleware middleware.AuthMiddleware
	SignUpRate     *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	products *handler.ProductHandler,
	catalog *handler.CatalogHandler,
	cart *handler.CartHandler,
	orders *handler.OrderHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Users:          users,
		Products:       products,
		Catalog:        catalog,
		Cart:           cart,
		Orders:         orders,
		AuthMiddleware: authMiddleware,
		SignUpRate:     middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth
	requireAdmin := middleware.RequireRole(entity.RoleAdmin)
	requireSeller := middleware.RequireRole(entity.RoleSeller, entity.RoleAdmin)

	e.POST("/auth/sign-up", r.Auth.SignUp, r.SignUpRate.Middleware())
	e.GET("/auth/verify-token", r.Auth.VerifyToken, r.SignUpRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/check-email", r.Auth.CheckEmail, r.SignUpRate.Middleware())

	e.GET("/me", r.Auth.Me, requireAuth)

	e.GET("/products", r.Products.List)
	e.GET("/products/:slug", r.Products.GetBySlug)
	e.POST("/products", r.Products.Create, requireAuth, requireSeller)
	e.PUT("/products/:slug", r.Products.Update, requireAuth, requireSeller)
	e.DELETE("/products/:slug", r.Products.Delete, requireAuth, requireSeller)

	e.GET("/categories", r.Catalog.ListCategories)
	e.POST("/categories", r.Catalog.CreateCategory, requireAuth, requireSeller)
	e.GET("/brands", r.Catalog.ListBrands)
	e.POST("/brands", r.Catalog.CreateBrand, requireAuth, requireSeller)

	e.GET("/cart", r.Cart.Get, requireAuth)
	e.POST("/cart/items", r.Cart.AddItem, requireAuth)
	e.PATCH("/cart/items/:id", r.Cart.UpdateItem, requireAuth)
	e.DELETE("/cart/items/:id", r.Cart.RemoveItem, requireAuth)

	e.POST("/orders", r.Orders.Create, requireAuth)
	e.GET("/orders", r.Orders.ListMine, requireAuth)

	e.GET("/admin/orders", r.Orders.ListAll, requireAuth, requireAdmin)
	e.GET("/admin/users", r.Users.List, requireAuth, requireAdmin)
	e.GET("/admin/users/:email", r.Users.GetByEmail, requireAuth, requireAdmin)
	e.PATCH("/admin/users/:id", r.Users.Update, requireAuth, requireAdmin)
	e.DELETE("/admin/users/:id", r.Users.Delete, requireAuth, requireAdmin)
}
