package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/masjid-bouraoui/masjid-api/api/swagger"
	"github.com/masjid-bouraoui/masjid-api/internal/handler"
	"github.com/masjid-bouraoui/masjid-api/internal/middleware"
	"github.com/masjid-bouraoui/masjid-api/internal/repository"
	"github.com/masjid-bouraoui/masjid-api/internal/service"
	"github.com/masjid-bouraoui/masjid-api/pkg/cache"
	"github.com/masjid-bouraoui/masjid-api/pkg/config"
	"github.com/masjid-bouraoui/masjid-api/pkg/database"
	"github.com/masjid-bouraoui/masjid-api/pkg/logger"
	"github.com/masjid-bouraoui/masjid-api/pkg/mailer"
	corsmiddleware "github.com/masjid-bouraoui/masjid-api/pkg/middleware/cors"
	reqidmiddleware "github.com/masjid-bouraoui/masjid-api/pkg/middleware/requestid"
	"github.com/masjid-bouraoui/masjid-api/pkg/storage"
)

// @title Masjid Bouraoui API
// @version 1.0.0
// @description Backend for the mosque public site and admin dashboard
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient := cache.NewRedis(cfg.Redis)
	defer redisClient.Close()
	apiCache := cache.New(redisClient)

	metricsSvc := service.NewMetricsService()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	s3Store, err := storage.NewS3Store(ctx, cfg.Storage)
	cancel()
	if err != nil {
		logr.Fatal("failed to init object storage", zap.Error(err))
	}
	store := storage.Instrument(s3Store, metricsSvc.ObserveUpload)

	sender := mailer.NewResendSender(cfg.Mail)
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	khutbahRepo := repository.NewKhutbahRepository(db)
	recitationRepo := repository.NewRecitationRepository(db)
	bookRepo := repository.NewBookRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	contactRepo := repository.NewContactRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	libraryTimesRepo := repository.NewLibraryTimesRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userSvc := service.NewUserService(userRepo, validate, logr)
	khutbahSvc := service.NewKhutbahService(khutbahRepo, validate, logr)
	recitationSvc := service.NewRecitationService(recitationRepo, store, validate, logr)
	bookSvc := service.NewBookService(bookRepo, store, cfg.Storage.MaxBookImages, validate, logr)
	librarySvc := service.NewLibraryService(libraryRepo, store, sender, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	contactSvc := service.NewContactService(contactRepo, validate, logr)
	newsletterSvc := service.NewNewsletterService(newsletterRepo, validate, logr)
	libraryTimesSvc := service.NewLibraryTimesService(libraryTimesRepo, validate, logr)
	broadcastSvc := service.NewBroadcastService(sender, validate, logr, service.BroadcastConfig{
		Concurrency: cfg.Mail.Concurrency,
		HeaderTitle: cfg.Mail.FromName,
		FooterLine:  cfg.Mail.FromAddress,
	})
	prayerSvc := service.NewPrayerService(cfg.Prayer, apiCache, logr)
	quranSvc := service.NewQuranService(cfg.Quran, apiCache, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Users:        handler.NewUserHandler(userSvc),
		Khutbah:      handler.NewKhutbahHandler(khutbahSvc),
		Recitations:  handler.NewRecitationHandler(recitationSvc),
		Books:        handler.NewBookHandler(bookSvc),
		Library:      handler.NewLibraryHandler(librarySvc),
		Courses:      handler.NewCourseHandler(courseSvc),
		Contact:      handler.NewContactHandler(contactSvc),
		Newsletter:   handler.NewNewsletterHandler(newsletterSvc),
		Broadcast:    handler.NewBroadcastHandler(broadcastSvc, metricsSvc),
		LibraryTimes: handler.NewLibraryTimesHandler(libraryTimesSvc),
		Prayer:       handler.NewPrayerHandler(prayerSvc),
		Quran:        handler.NewQuranHandler(quranSvc),
	}, authSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
