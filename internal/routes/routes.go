package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"turftrack/internal/controllers"
	"turftrack/internal/repositories"
	"turftrack/internal/services"
	"turftrack/pkg/config"
	"turftrack/pkg/filestorage"
	"turftrack/pkg/middleware"
	"turftrack/pkg/service"
)

// InitRouter wires every repository, service and controller and registers
// all routes. Register/login/refresh are public; everything else sits behind
// the auth middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) error {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.New(cfg.Storage, logger)
	if err != nil {
		return err
	}

	userRepo := repositories.NewUserRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	listingRepo := repositories.NewListingRepository(dbConn)
	messageRepo := repositories.NewMessageRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, maintenanceRepo, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, equipmentRepo, logger)
	marketplaceService := services.NewMarketplaceService(listingRepo, equipmentRepo, maintenanceRepo, userRepo, logger)
	messageService := services.NewMessageService(messageRepo, listingRepo, userRepo, cacheRepo, cfg.Cache.UnreadCountTTL, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)
	reportService := services.NewReportService(maintenanceRepo, equipmentRepo, logger)

	authCtrl := controllers.NewAuthController(authService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)
	marketplaceCtrl := controllers.NewMarketplaceController(marketplaceService, logger)
	messageCtrl := controllers.NewMessageController(messageService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	uploadCtrl := controllers.NewUploadController(fileStorage, logger)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, secure, authCtrl)
	runEquipmentRouter(secure, equipmentCtrl)
	runMaintenanceRouter(secure, maintenanceCtrl)
	runMarketplaceRouter(secure, marketplaceCtrl)
	runMessageRouter(secure, messageCtrl)
	runDashboardRouter(secure, dashboardCtrl, reportCtrl)
	runUploadRouter(secure, uploadCtrl)

	return nil
}
