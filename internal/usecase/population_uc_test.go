package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesseed/internal/domain"
	"salesseed/internal/randgen"
)

func TestPopulationContinuesNumbering(t *testing.T) {
	customers := &memCustomerRepo{docs: baseCustomers()}
	uc := &PopulationUC{Customers: customers, Rand: randgen.New(8), ExtraCount: 10}

	count, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, count)
	require.Len(t, customers.docs, 15)

	for i, c := range customers.docs[5:] {
		n := 6 + i
		assert.Equal(t, fmt.Sprintf("C%d", 100000+n), c.CustomerID)
		assert.Equal(t, fmt.Sprintf("Cust%d", n), c.FirstName)
		assert.Equal(t, "Demo", c.LastName)
		assert.Equal(t, fmt.Sprintf("customer%d@example.com", n), c.Email)
		assert.Equal(t, domain.StatusActive, c.Status)
		assert.Contains(t, domain.LoyaltyLevels, c.LoyaltyLevel)

		require.Len(t, c.Addresses, 1)
		addr := c.Addresses[0]
		assert.Contains(t, syntheticCities, addr.City)
		assert.Contains(t, syntheticStates, addr.State)
		assert.Equal(t, "60601", addr.PostalCode)
		assert.True(t, addr.IsDefault)
	}
}

func TestPopulationRerunDuplicates(t *testing.T) {
	// Unconditional inserts: a rerun extends the numbering instead of
	// upserting. This is the documented policy, not a defect.
	customers := &memCustomerRepo{docs: baseCustomers()}
	uc := &PopulationUC{Customers: customers, Rand: randgen.New(8), ExtraCount: 10}

	_, err := uc.Run(context.Background())
	require.NoError(t, err)
	_, err = uc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, customers.docs, 25)
	assert.Equal(t, "C100016", customers.docs[15].CustomerID)
}

func TestPopulationResetFirst(t *testing.T) {
	customers := &memCustomerRepo{docs: baseCustomers()}
	uc := &PopulationUC{Customers: customers, Rand: randgen.New(8), ExtraCount: 10}

	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	uc.ResetFirst = true
	_, err = uc.Run(context.Background())
	require.NoError(t, err)

	// 5 baseline + 10 fresh synthetic; the first synthetic batch is gone.
	assert.Len(t, customers.docs, 15)
}

func TestPopulationMarketingOptInBias(t *testing.T) {
	customers := &memCustomerRepo{}
	uc := &PopulationUC{Customers: customers, Rand: randgen.New(99), ExtraCount: 2000}

	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	optIn := 0
	for _, c := range customers.docs {
		if c.MarketingOptIn {
			optIn++
		}
	}
	assert.InDelta(t, 0.6, float64(optIn)/2000, 0.04)
}

func TestPopulationZeroCountIsNoop(t *testing.T) {
	customers := &memCustomerRepo{docs: baseCustomers()}
	uc := &PopulationUC{Customers: customers, Rand: randgen.New(8)}

	count, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Len(t, customers.docs, 5)
}
