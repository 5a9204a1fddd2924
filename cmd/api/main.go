package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	httpadp "usermgmt-service/internal/adapter/http"
	idem "usermgmt-service/internal/adapter/middleware"
	repo "usermgmt-service/internal/adapter/repository/mysql"
	"usermgmt-service/internal/config"
	"usermgmt-service/internal/infrastructure/cache"
	"usermgmt-service/internal/infrastructure/db"
	"usermgmt-service/internal/infrastructure/events"
	"usermgmt-service/internal/infrastructure/storage"
	ucApproval "usermgmt-service/internal/usecase/approval"
	ucRole "usermgmt-service/internal/usecase/role"
	ucUser "usermgmt-service/internal/usecase/user"
	"usermgmt-service/pkg/id"
	"usermgmt-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	lg := logger.New(cfg.LogLevel, os.Stdout)
	if err := cfg.Validate(); err != nil {
		lg.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), logger.GormLevel(lg))
	if err != nil {
		lg.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("open database")
	}
	// mysql/postgres schemas are managed outside the service
	if cfg.DBDriver == db.DriverSQLite {
		if err := db.Migrate(gdb); err != nil {
			lg.Fatal().Err(err).Msg("migrate sqlite")
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		lg.Fatal().Err(err).Msg("open redis")
	}
	defer rdb.Close()

	var images ucUser.ImageStore
	if cfg.S3Bucket != "" {
		store, err := storage.NewS3ImageStoreFromEnv(context.Background(), cfg.S3Bucket)
		if err != nil {
			lg.Fatal().Err(err).Msg("init s3 image store")
		}
		images = store
	} else {
		lg.Warn().Msg("S3_BUCKET not set; image uploads disabled")
	}

	// repositories + unit of work
	users := repo.NewUserRepository(gdb)
	roles := repo.NewRoleRepository(gdb)
	approvals := repo.NewApprovalRepository(gdb)
	tx := repo.NewGormUoW(gdb)

	// usecases
	userUC := ucUser.NewUsecase(users, tx, ucUser.NewBcryptHasher(cfg.BcryptCost), cache.NewUserCache(rdb, cfg.CacheTTL()), images)
	roleUC := ucRole.NewUsecase(roles)
	approvalUC := ucApproval.NewUsecase(approvals, tx)
	if cfg.AMQPURL != "" {
		pub, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			lg.Fatal().Err(err).Msg("connect rabbitmq")
		}
		defer pub.Close()
		approvalUC.WithPublisher(pub)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogURI:       true,
			LogStatus:    true,
			LogMethod:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			HandleError:  true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				ev := lg.Info()
				if v.Error != nil || v.Status >= http.StatusInternalServerError {
					ev = lg.Error().Err(v.Error)
				}
				ev.Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Str("request_id", v.RequestID).
					Msg("request")
				return nil
			},
		}),
		middleware.Recover(),
	)

	health := httpadp.NewHandler(
		httpadp.Dependency{Name: "db", Ping: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}},
		httpadp.Dependency{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)
	httpadp.Routes{
		Health:    health,
		Users:     httpadp.NewUserHandler(userUC),
		Roles:     httpadp.NewRoleHandler(roleUC),
		Approvals: httpadp.NewApprovalHandler(approvalUC),
	}.Register(e, idem.IdempotencyMiddleware(rdb, cfg.IdempTTL()))

	addr := ":" + cfg.AppPort
	go func() {
		lg.Info().Str("addr", addr).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("shutdown")
	}
	lg.Info().Msg("bye")
}
