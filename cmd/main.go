package main

import (
	"net/http"
	"os"
	"time"

	"gromeuse/api/handler"
	apiMiddleware "gromeuse/api/middleware"
	"gromeuse/api/routes"
	"gromeuse/config"
	"gromeuse/internal/dto"
	"gromeuse/internal/repository"
	"gromeuse/internal/service"
	"gromeuse/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	db := config.ConnectionDb()
	if err := config.Migrate(db); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	validate := validator.New()
	if err := dto.RegisterValidations(validate); err != nil {
		logger.WithError(err).Fatal("validator setup failed")
	}

	sessionSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(sessionSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}
	sessionManager := utils.JWTManager{
		Secret:          sessionSecret,
		Issuer:          os.Getenv("JWT_ISSUER"),
		SessionTokenTTL: 24 * time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewVerificationTokenRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	emailSender := service.NewResendEmailSender(
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("EMAIL_FROM"),
		os.Getenv("APP_BASE_URL"),
	)
	passwordHasher := service.BcryptPasswordHasher{}
	sessionMinter := service.JWTSessionMinter{Manager: &sessionManager}

	authService := service.NewAuthService(
		userRepo,
		tokenRepo,
		emailSender,
		passwordHasher,
		sessionMinter,
		service.RealClock{},
		service.AuthConfig{VerificationTokenTTL: time.Hour},
	)
	userService := service.NewUserService(userRepo, passwordHasher)
	productService := service.NewProductService(productRepo, categoryRepo, brandRepo)
	catalogService := service.NewCatalogService(categoryRepo, brandRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo)

	authHandler := handler.NewAuthHandler(authService, userService, validate)
	userHandler := handler.NewUserHandler(userService, validate)
	productHandler := handler.NewProductHandler(productService, userService, validate)
	catalogHandler := handler.NewCatalogHandler(catalogService, validate)
	cartHandler := handler.NewCartHandler(cartService, validate)
	orderHandler := handler.NewOrderHandler(orderService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &sessionManager}
	router := routes.NewRouter(
		app,
		authHandler,
		userHandler,
		productHandler,
		catalogHandler,
		cartHandler,
		orderHandler,
		authMiddleware,
	)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
