package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/adapters"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/store"
)

var ErrInvalidPrice = errors.New("price per liter must be positive")

// Store is the document-store surface for fuel prices.
type Store interface {
	CurrentFuelPrice(ctx context.Context, grade string) (store.FuelPrice, error)
	FuelPriceHistory(ctx context.Context, grade string) ([]store.FuelPrice, error)
	AddFuelPrice(ctx context.Context, p store.FuelPrice) error
}

// Service is the admin price-management surface: set the pump price for a
// grade, read the current one, and browse the history.
type Service interface {
	SetPrice(ctx context.Context, grade string, pricePerLiter float64, setBy string) (domain.FuelPrice, error)
	Current(ctx context.Context, grade string) (domain.FuelPrice, error)
	History(ctx context.Context, grade string) ([]domain.FuelPrice, error)
}

type service struct {
	store Store
	now   func() time.Time
}

func NewService(s Store) Service {
	return &service{store: s, now: time.Now}
}

func (s *service) SetPrice(ctx context.Context, grade string, pricePerLiter float64, setBy string) (domain.FuelPrice, error) {
	if pricePerLiter <= 0 {
		return domain.FuelPrice{}, ErrInvalidPrice
	}

	price := domain.FuelPrice{
		ID:            uuid.NewString(),
		Grade:         grade,
		PricePerLiter: pricePerLiter,
		Currency:      format.Currency,
		EffectiveFrom: s.now(),
		SetBy:         setBy,
	}
	if err := s.store.AddFuelPrice(ctx, adapters.MapFuelPriceDomainToStore(price)); err != nil {
		return domain.FuelPrice{}, fmt.Errorf("failed to set fuel price: %w", err)
	}
	return price, nil
}

func (s *service) Current(ctx context.Context, grade string) (domain.FuelPrice, error) {
	price, err := s.store.CurrentFuelPrice(ctx, grade)
	if err != nil {
		return domain.FuelPrice{}, err
	}
	return adapters.MapFuelPriceStoreToDomain(price), nil
}

func (s *service) History(ctx context.Context, grade string) ([]domain.FuelPrice, error) {
	stored, err := s.store.FuelPriceHistory(ctx, grade)
	if err != nil {
		return nil, err
	}

	prices := make([]domain.FuelPrice, 0, len(stored))
	for _, p := range stored {
		prices = append(prices, adapters.MapFuelPriceStoreToDomain(p))
	}
	return prices, nil
}
