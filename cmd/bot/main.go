package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.etcd.io/bbolt"
	"golang.org/x/time/rate"

	"github.com/hanumanji/chalisa-bot/internal/catalog"
	"github.com/hanumanji/chalisa-bot/internal/config"
	"github.com/hanumanji/chalisa-bot/internal/dal"
	"github.com/hanumanji/chalisa-bot/internal/dal/migrations"
	"github.com/hanumanji/chalisa-bot/internal/schedule"
	"github.com/hanumanji/chalisa-bot/internal/service"
	"github.com/hanumanji/chalisa-bot/internal/telegram"
	"github.com/hanumanji/chalisa-bot/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	db, err := bbolt.Open(conf.DBPath, 0600, nil)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	if err = migrations.RunMigrations(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	store, err := dal.NewBoltDB(db, clock.New())
	if err != nil {
		log.Error("Failed to create store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	count, err := store.CountSubscribers()
	if err != nil {
		log.Error("Failed to count subscribers", "error", err)
		os.Exit(1)
	}
	log.Info("Opened subscriber store", "subscribers", count)

	verses, err := catalog.Load(conf.CatalogPath)
	if err != nil {
		log.Error("Failed to load verse catalog", "error", err)
		os.Exit(1)
	}
	log.Info("Loaded verse catalog", "days", verses.Size())

	bot, err := telegram.NewBot(conf.TelegramToken, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	// Telegram caps bots around 30 messages per second; all outbound
	// traffic shares one limiter.
	limiter := rate.NewLimiter(rate.Limit(conf.SendRate), 1)
	messenger := bot.Sender()

	locks := service.NewChatLocks()
	engine := service.NewEngine(store, verses, locks, log)
	subscribersSvc := service.NewSubscribers(store, locks, log)
	deliverySvc := service.NewDelivery(engine, store, messenger, limiter, log)
	broadcastSvc := service.NewBroadcast(store, messenger, limiter, conf.AdminID, log)

	handler := telegram.NewHandler(subscribersSvc, deliverySvc, broadcastSvc, log)

	daily, err := schedule.NewDaily(conf.DeliveryTime, conf.Timezone, func(ctx context.Context) {
		report, err := deliverySvc.RunDailyFanout(ctx)
		if err != nil {
			log.Error("Daily fan-out failed", "error", err)
			return
		}
		log.Info("Daily fan-out finished",
			"delivered", report.Delivered,
			"completed", report.Completed,
			"skipped", report.Skipped,
			"failures", len(report.Failures))
	}, log)
	if err != nil {
		log.Error("Failed to create daily schedule", "error", err)
		os.Exit(1)
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := daily.Start(ctx); err != nil {
			log.Error("Daily schedule stopped with error", "error", err)
		}
	}()

	log.Info("Starting bot")
	err = bot.Start(ctx, handler)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	log.Info("Stopped bot")
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
