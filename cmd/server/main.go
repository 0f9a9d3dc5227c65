package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-booking/internal/config" // Internal config loader
	"github.com/iliyamo/cinema-booking/internal/handler"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/queue"
	"github.com/iliyamo/cinema-booking/internal/router" // Internal router setup
	"github.com/iliyamo/cinema-booking/internal/service"
	"github.com/iliyamo/cinema-booking/internal/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadDotEnv()
	cfg := config.Load() // Load environment config
	log := logrus.StandardLogger()
	cfg.ConfigureLogger(log)

	ownerHash, err := utils.OwnerPasswordHash(cfg.OwnerPasswordHash, cfg.OwnerPassword, cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Fatal("owner password")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.NewRedisClient(config.LoadRedisConfig()) // nil when redis is down
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	var publisher service.Publisher = service.NopPublisher{}
	var wg sync.WaitGroup
	if cfg.EventsEnabled {
		publisher = service.NewAMQPPublisher(cfg.AMQPURL, log)
		consumer := queue.NewConsumer(cfg.AMQPURL, cfg.ReservationLogDir, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("reservation consumer stopped")
			}
		}()
	}

	svc := service.NewBookingService(service.WithPublisher(publisher), service.WithLogger(log))
	cacheCfg := config.LoadCacheConfig()

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	auth := handler.NewAuthHandler(cfg.JWTSecret, cfg.AccessTTLMin, ownerHash, svc)
	router.RegisterRoutes(e, rdb) // Register application routes
	router.RegisterAuth(e, auth)
	router.RegisterPublic(e, handler.NewPublicHandler(svc), middleware.NewRedisCache(cacheCfg, rdb))
	router.RegisterOwner(e, handler.NewOwnerHandler(svc), auth, cfg.JWTSecret, middleware.PurgeOnWrite(cacheCfg, rdb))
	router.RegisterCustomer(e, handler.NewCustomerHandler(svc), cfg.JWTSecret)

	addr := ":" + cfg.Port // Address string with port
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "events": cfg.EventsEnabled}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	wg.Wait()
}
