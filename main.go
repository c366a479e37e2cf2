package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"swaypp-service/internal/api"
	"swaypp-service/internal/config"
	"swaypp-service/internal/db"
	"swaypp-service/internal/event"
	"swaypp-service/internal/kafka"
	"swaypp-service/internal/logging"
	"swaypp-service/internal/metrics"
	"swaypp-service/internal/payee"
	"swaypp-service/internal/profile"
	"swaypp-service/internal/qr"
	"swaypp-service/internal/render"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoadConfig(".")

	logger := logging.GetLogger(cfg.Logs)
	slog.SetDefault(logger)

	metrics.Setup(cfg.Metrics)

	connStr := db.GetConnStr(cfg.Database)
	db.RunMigrations(connStr, "migrations")

	pool, err := db.GetPool(connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	profileRepo := db.NewProfileRepository(pool)
	transactionRepo := db.NewTransactionRepository(pool)

	var lookup payee.Lookup = profile.NewStore(profileRepo)
	if cfg.Profile.BaseURL != "" {
		lookup = profile.NewClient(cfg.Profile)
	}

	fallback := payee.Profile{
		BeneficiaryName: cfg.QR.DefaultPayee.BeneficiaryName,
		Address:         cfg.QR.DefaultPayee.Address,
		PostalCode:      cfg.QR.DefaultPayee.PostalCode,
		City:            cfg.QR.DefaultPayee.City,
		Country:         cfg.QR.DefaultPayee.Country,
		IBAN:            cfg.QR.DefaultPayee.IBAN,
	}
	lookupTimeout := time.Duration(cfg.Profile.TimeoutMs) * time.Millisecond
	resolver := payee.NewResolver(lookup, fallback, lookupTimeout, logger)

	writer := kafka.NewWriter(cfg.Kafka.Broker.URL, cfg.Kafka.Topic.TransactionEvents, cfg.Kafka.Writer)
	defer writer.Close()
	publisher := kafka.NewTransactionEventPublisher(writer)

	renderer := render.NewRenderer(cfg.QR.ImageWidth)
	generator := qr.NewGenerator(resolver, renderer, publisher, cfg.QR, logger)

	processor := event.NewProcessor(transactionRepo, logger)
	reader := kafka.NewReader(cfg.Kafka.Broker.URL, cfg.Kafka.Topic.TransactionEvents, cfg.Kafka.Reader.GroupID)
	defer reader.Close()
	kafka.ReadTransactionEvents(reader, processor, logger)

	mux := http.NewServeMux()
	api.NewHandler(generator, logger).Register(mux)

	logger.Info("Starting http server", "port", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, mux))
}
