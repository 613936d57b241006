package pricing

import (
	"errors"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidUnits     = errors.New("unit count must be positive")
	ErrUnknownAddOn     = errors.New("selected add-on does not belong to the listing")
	ErrInvalidModel     = errors.New("invalid add-on pricing model")
	ErrNegativeFee      = errors.New("service fee cannot be negative")
	ErrCurrencyMismatch = money.ErrCurrencyMismatch
	ErrAmountOverflow   = money.ErrAmountOverflow
)

type Model string

const (
	PerNight Model = "per_night"
	PerStay  Model = "per_stay"
)

func (m Model) IsValid() bool {
	return m == PerNight || m == PerStay
}

type AddOn struct {
	ID    uuid.UUID
	Name  string
	Price money.Money
	Model Model
}

// Source tells which input supplied the effective unit price.
type Source string

const (
	SourceOverride   Source = "override"
	SourceNegotiated Source = "negotiated"
	SourceBase       Source = "base"
)

// EffectiveUnitPrice resolves override > negotiated > base.
func EffectiveUnitPrice(base money.Money, negotiated, override *money.Money) (money.Money, Source) {
	switch {
	case override != nil:
		return *override, SourceOverride
	case negotiated != nil:
		return *negotiated, SourceNegotiated
	default:
		return base, SourceBase
	}
}

// Units counts whole days between start and end, at least one. A nil end is
// a single selected day.
func Units(start daterange.Day, end *daterange.Day) int {
	if end == nil {
		return 1
	}
	return max(1, end.Sub(start))
}

type Input struct {
	UnitPrice money.Money
	Source    Source
	Units     int
	AddOns    []AddOn
	Selected  []uuid.UUID
}

type Quote struct {
	UnitPrice         money.Money
	Source            Source
	Units             int
	Base              money.Money
	AddOnsTotal       money.Money
	GrandTotal        money.Money
	ServiceFeeTotal   money.Money
	AmountDueNow      money.Money
	AmountDueInPerson money.Money
}

type Calculator interface {
	Calculate(in Input) (Quote, error)
}

type DefaultCalculator struct {
	ServiceFeePerUnit int64
}

func NewDefaultCalculator(serviceFeePerUnit int64) *DefaultCalculator {
	return &DefaultCalculator{ServiceFeePerUnit: serviceFeePerUnit}
}

func (c *DefaultCalculator) Calculate(in Input) (Quote, error) {
	if in.Units < 1 {
		return Quote{}, ErrInvalidUnits
	}
	if in.UnitPrice.Amount < 0 {
		return Quote{}, ErrNegativePrice
	}
	if c.ServiceFeePerUnit < 0 {
		return Quote{}, ErrNegativeFee
	}
	currency := in.UnitPrice.Currency
	units := int64(in.Units)

	base, err := in.UnitPrice.Multiply(units)
	if err != nil {
		return Quote{}, err
	}

	byID := make(map[uuid.UUID]AddOn, len(in.AddOns))
	for _, a := range in.AddOns {
		byID[a.ID] = a
	}
	addOnsTotal := money.Zero(currency)
	seen := make(map[uuid.UUID]struct{}, len(in.Selected))
	for _, id := range in.Selected {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		a, ok := byID[id]
		if !ok {
			return Quote{}, ErrUnknownAddOn
		}
		line, err := addOnLine(a, units)
		if err != nil {
			return Quote{}, err
		}
		if addOnsTotal, err = addOnsTotal.Add(line); err != nil {
			return Quote{}, err
		}
	}

	grand, err := base.Add(addOnsTotal)
	if err != nil {
		return Quote{}, err
	}
	fee, err := money.Money{Amount: c.ServiceFeePerUnit, Currency: currency}.Multiply(units)
	if err != nil {
		return Quote{}, err
	}
	inPerson, err := grand.Sub(fee)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		UnitPrice:         in.UnitPrice,
		Source:            in.Source,
		Units:             in.Units,
		Base:              base,
		AddOnsTotal:       addOnsTotal,
		GrandTotal:        grand,
		ServiceFeeTotal:   fee,
		AmountDueNow:      fee,
		AmountDueInPerson: inPerson.ClampZero(),
	}, nil
}

func addOnLine(a AddOn, units int64) (money.Money, error) {
	if a.Price.Amount < 0 {
		return money.Money{}, ErrNegativePrice
	}
	switch a.Model {
	case PerNight:
		return a.Price.Multiply(units)
	case PerStay:
		return a.Price, nil
	default:
		return money.Money{}, ErrInvalidModel
	}
}
