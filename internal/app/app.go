package app

import (
	"context"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"salesseed/internal/adapters/repo/mongodb"
	"salesseed/internal/randgen"
	"salesseed/internal/usecase"
)

// App wires the seed stages against a database handle.
type App struct {
	Reference  *usecase.ReferenceUC
	Population *usecase.PopulationUC
	Orders     *usecase.OrderUC
}

func NewApp(db *mongo.Database, cfg Config) *App {
	var src *randgen.Source
	if cfg.Seed != 0 {
		src = randgen.New(cfg.Seed)
	} else {
		src = randgen.NewFromClock()
	}

	customers := mongodb.NewCustomerRepo(db)
	vendors := mongodb.NewVendorRepo(db)
	products := mongodb.NewProductRepo(db)
	inventory := mongodb.NewInventoryRepo(db)
	orders := mongodb.NewOrderRepo(db)

	return &App{
		Reference: &usecase.ReferenceUC{
			Customers:   customers,
			Vendors:     vendors,
			Products:    products,
			Inventory:   inventory,
			Rand:        src,
			CatalogPath: cfg.CatalogPath,
		},
		Population: &usecase.PopulationUC{
			Customers:  customers,
			Rand:       src,
			ExtraCount: cfg.ExtraCustomers,
			ResetFirst: cfg.ResetSynthetic,
		},
		Orders: &usecase.OrderUC{
			Customers:       customers,
			Vendors:         vendors,
			Products:        products,
			Orders:          orders,
			Rand:            src,
			DaysBack:        cfg.DaysBack,
			WeekdayBase:     cfg.WeekdayBase,
			WeekendBase:     cfg.WeekendBase,
			MinOrdersPerDay: cfg.MinOrdersPerDay,
		},
	}
}

// StageResult reports what one pipeline stage committed.
type StageResult struct {
	Stage   string
	Count   int
	Elapsed time.Duration
}

type stage struct {
	name string
	run  func(ctx context.Context) (int, error)
}

// Run executes the stages in order: reference data, population expansion,
// order generation. Each stage depends on the previous stage's committed
// state; the first error aborts the rest of the run.
func (a *App) Run(ctx context.Context) ([]StageResult, error) {
	stages := []stage{
		{"reference", a.Reference.Run},
		{"population", a.Population.Run},
		{"orders", func(ctx context.Context) (int, error) {
			return a.Orders.Run(ctx, time.Now().UTC())
		}},
	}

	results := make([]StageResult, 0, len(stages))
	for _, st := range stages {
		started := time.Now()
		count, err := st.run(ctx)
		if err != nil {
			return results, fmt.Errorf("stage %s: %w", st.name, err)
		}
		res := StageResult{Stage: st.name, Count: count, Elapsed: time.Since(started)}
		results = append(results, res)
		zlog.Info().Str("stage", res.Stage).Int("count", res.Count).Dur("elapsed", res.Elapsed).Msg("stage complete")
	}
	return results, nil
}
