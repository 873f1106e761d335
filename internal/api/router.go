package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/batforeningen/marina-api/docs"
	"github.com/batforeningen/marina-api/internal/api/handler"
	"github.com/batforeningen/marina-api/internal/api/middleware"
	"github.com/batforeningen/marina-api/internal/core/service"
	mongodb "github.com/batforeningen/marina-api/internal/infrastructure/db/mongo"
	redisdb "github.com/batforeningen/marina-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. rdb may be nil, in which case the chat cache is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, health *mongodb.Health, development bool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, development)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOriginFunc:  middleware.AllowOrigin,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("boatclub"))
	e.Use(middleware.DatabaseReady(health, log))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	boatRepo := mongodb.NewBoatRepository(db)
	meetingRepo := mongodb.NewMeetingRepository(db)
	recordRepo := mongodb.NewRecordRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	var cache service.MessageCache
	if rdb != nil {
		cache = redisdb.NewMessageCache(rdb)
	}

	userService := service.NewUserService(userRepo, log)
	boatService := service.NewBoatService(boatRepo, log)
	meetingService := service.NewMeetingService(meetingRepo, log)
	recordService := service.NewRecordService(recordRepo, log)
	messageService := service.NewMessageService(messageRepo, cache, log)

	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(userService)
	boatHandler := handler.NewBoatHandler(boatService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	recordHandler := handler.NewRecordHandler(recordService)
	messageHandler := handler.NewMessageHandler(messageService)

	// --- Route groups ---
	user := e.Group("/user")
	user.POST("/create", userHandler.Create)
	user.POST("/multiple", userHandler.CreateMany)
	user.POST("/login", userHandler.Login)
	user.GET("/huddly", userHandler.Huddly)

	admin := e.Group("/admin")
	admin.GET("/seeUsers", adminHandler.ListUsers)
	admin.PUT("/updateUser/:id", adminHandler.ToggleAdmin)

	boats := e.Group("/registerBoat")
	boats.POST("/createBoat", boatHandler.Create)
	boats.GET("/seeBoats", boatHandler.List)

	meetings := e.Group("/meeting")
	meetings.POST("/create", meetingHandler.Create)
	meetings.GET("/fetch", meetingHandler.List)
	meetings.PUT("/update/:id", meetingHandler.Update)
	meetings.DELETE("/delete/:id", meetingHandler.Delete)

	records := e.Group("/record")
	records.POST("/make", recordHandler.Create)
	records.GET("/find", recordHandler.List)

	chat := e.Group("/get")
	chat.POST("/create", messageHandler.Create)
	chat.GET("/messages", messageHandler.List)

	// --- Probes & docs (exempt from the readiness gate) ---
	healthHandler := handler.NewHealthHandler(health)
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
