package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"Social_Feed/internal/config"
	"Social_Feed/internal/pkg"
	"Social_Feed/internal/repository/gormdb"
	"Social_Feed/internal/repository/redis"
	"Social_Feed/internal/router"
	"Social_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pkg.NewLogger(os.Stdout, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := gormdb.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer func() { _ = gormdb.Close(db) }()

	// 自动建表
	if err := gormdb.Migrate(db); err != nil {
		return err
	}
	if cfg.DB.Seed {
		if err := gormdb.Seed(ctx, db); err != nil {
			return err
		}
	}

	var opts []service.Option

	// 配置了 redis 时使用分布式锁
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		opts = append(opts, service.WithLocker(redis.NewDistLock(rdb, cfg.Redis.LockTTL)))
		slog.Info("using redis key locks", "addr", cfg.Redis.Addr)
	}

	// 配置了 kafka 时写 outbox 并启动投递
	relayDone := make(chan struct{})
	if cfg.Kafka.Enabled() {
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		defer func() { _ = producer.Close() }()
		opts = append(opts, service.WithEvents(service.OutboxRecorder{}))

		relayer := service.NewOutboxRelayer(db, cfg.Outbox, service.KafkaSender(producer))
		go func() {
			defer close(relayDone)
			relayer.Run(ctx)
		}()
		slog.Info("publishing activity events", "brokers", cfg.Kafka.Brokers, "topic", producer.Topic())
	} else {
		close(relayDone)
	}

	r := router.InitRouter(router.Services{
		DB:       db,
		Posts:    service.NewPostService(db, opts...),
		Comments: service.NewCommentService(db, opts...),
		Likes:    service.NewLikeService(db, opts...),
	}, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", cfg.HTTPAddr, "db_driver", cfg.DB.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			stop()
			<-relayDone
			return err
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-relayDone
	return nil
}
