package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salesseed/internal/app"
)

type seedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if os.Getenv("LOCAL_RUN") == "true" {
		resp, err := handle(context.Background(), nil)
		if err != nil {
			zlog.Fatal().Err(err).Msg("seeding failed")
		}
		zlog.Info().Str("status", resp.Status).Msg(resp.Message)
		return
	}

	lambda.Start(handle)
}

func handle(ctx context.Context, _ json.RawMessage) (seedResponse, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return seedResponse{}, err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	log := zlog.With().Str("run_id", runID).Logger()
	log.Info().Msg("starting seeding process")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return seedResponse{}, fmt.Errorf("connect to document store: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	application := app.NewApp(client.Database(cfg.Database), cfg)
	results, err := application.Run(ctx)
	if err != nil {
		return seedResponse{}, err
	}

	orders := 0
	for _, r := range results {
		if r.Stage == "orders" {
			orders = r.Count
		}
	}
	log.Info().Int("orders", orders).Msg("seeding complete")
	return seedResponse{Status: "ok", Message: "Seeding complete"}, nil
}
