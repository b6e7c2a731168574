package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Jerome-JJT/ft-transcendence/config"
	"github.com/Jerome-JJT/ft-transcendence/internal/channel/model"
	"github.com/Jerome-JJT/ft-transcendence/internal/channel/repository"
	"github.com/Jerome-JJT/ft-transcendence/internal/channel/usecase"
	"github.com/Jerome-JJT/ft-transcendence/pkg/logger"
	"github.com/Jerome-JJT/ft-transcendence/pkg/password"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*model.Channel)(nil),
		(*model.Membership)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	repo := repository.NewChannelRepository(db, *appLogger)
	guard := password.NewBcryptGuard()
	channelUC := usecase.NewChannelUsecase(repo, guard, *appLogger)

	chs, err := channelUC.ListChannels(ctx)
	if err != nil {
		log.Fatalf("failed to list channels: %v", err)
	}
	appLogger.Info("channel engine ready", "env", cfg.Server.Environment, "channels", len(chs))
	<-ctx.Done()
	appLogger.Info("shutting down")
}
