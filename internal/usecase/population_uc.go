package usecase

import (
	"context"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"

	"salesseed/internal/domain"
	"salesseed/internal/randgen"
)

// syntheticLastName marks customers created by the expander; ResetFirst
// keys its cleanup on it.
const syntheticLastName = "Demo"

var (
	syntheticCities = []string{"Chicago", "New York", "Los Angeles", "Dallas"}
	syntheticStates = []string{"IL", "NY", "CA", "TX"}
)

// PopulationUC bulk-inserts synthetic customers on top of the baseline set.
// Inserts are unconditional: rerunning duplicates unless ResetFirst is on.
// That asymmetry with the reference loader's upserts is deliberate and
// surfaced as a flag rather than silently unified.
type PopulationUC struct {
	Customers domain.CustomerRepo
	Rand      randgen.Rand

	ExtraCount int
	ResetFirst bool
}

func (uc *PopulationUC) Run(ctx context.Context) (int, error) {
	if uc.ExtraCount <= 0 {
		return 0, nil
	}

	if uc.ResetFirst {
		deleted, err := uc.Customers.DeleteByLastName(ctx, syntheticLastName)
		if err != nil {
			return 0, fmt.Errorf("reset synthetic customers: %w", err)
		}
		zlog.Info().Int64("deleted", deleted).Msg("previous synthetic customers removed")
	}

	base, err := uc.Customers.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}

	now := time.Now().UTC()
	customers := make([]domain.Customer, 0, uc.ExtraCount)
	for i := 0; i < uc.ExtraCount; i++ {
		n := int(base) + i + 1
		customers = append(customers, domain.Customer{
			CustomerID: fmt.Sprintf("C%d", 100000+n),
			FirstName:  fmt.Sprintf("Cust%d", n),
			LastName:   syntheticLastName,
			Email:      fmt.Sprintf("customer%d@example.com", n),
			Phone:      fmt.Sprintf("+1-555-000-%04d", n),
			Addresses: []domain.Address{{
				AddressID:  fmt.Sprintf("ADDR-%d", n),
				Type:       "shipping",
				Line1:      fmt.Sprintf("%d Demo St", 100+n%900),
				City:       randgen.Pick(uc.Rand, syntheticCities),
				State:      randgen.Pick(uc.Rand, syntheticStates),
				PostalCode: "60601",
				Country:    "US",
				IsDefault:  true,
			}},
			Status:         domain.StatusActive,
			LoyaltyLevel:   randgen.Pick(uc.Rand, domain.LoyaltyLevels),
			MarketingOptIn: uc.Rand.IntBetween(0, 100) < 60,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if err := uc.Customers.InsertMany(ctx, customers); err != nil {
		return 0, fmt.Errorf("insert synthetic customers: %w", err)
	}
	zlog.Info().Int("count", len(customers)).Int64("existing", base).Msg("synthetic customers inserted")
	return len(customers), nil
}
