package main

import (
	"context"
	"net/http"
	"path/filepath"

	"turftrack/internal/routes"
	"turftrack/migrations"
	"turftrack/pkg/config"
	"turftrack/pkg/database/postgresql"
	apperrors "turftrack/pkg/errors"
	applogger "turftrack/pkg/logger"
	appmiddleware "turftrack/pkg/middleware"
	"turftrack/pkg/service"
	"turftrack/pkg/utils"
	"turftrack/pkg/validation"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))
	e.Use(appmiddleware.RequestLogger(logger))

	e.Validator = utils.NewValidator(validation.New())

	if cfg.Storage.Driver == "" || cfg.Storage.Driver == "local" {
		absPath, err := filepath.Abs(cfg.Storage.BasePath)
		if err != nil {
			logger.Fatal("failed to resolve uploads path", zap.Error(err))
		}
		e.Static("/uploads", absPath)
	}

	if err := postgresql.Migrate(cfg.Postgres.DSN, migrations.FS); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	if err := routes.InitRouter(e, dbConn, redisClient, jwtSvc, logger, cfg); err != nil {
		logger.Fatal("failed to initialize routes", zap.Error(err))
	}

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
