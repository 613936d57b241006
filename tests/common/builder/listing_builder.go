//go:build unit || e2e

package builder

import (
	"time"

	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/pricing"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Kind       listing.Kind
	Title      string
	BasePrice  int64
	Currency   string
	RentalUnit listing.RentalUnit
	AddOns     []pricing.AddOn
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Kind:       listing.KindLodging,
		Title:      "Seaside studio",
		BasePrice:  100,
		Currency:   "EUR",
		RentalUnit: listing.UnitDay,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithOwner(id uuid.UUID) *ListingBuilder {
	b.OwnerID = id
	return b
}

func (b *ListingBuilder) WithBasePrice(amount int64) *ListingBuilder {
	b.BasePrice = amount
	return b
}

func (b *ListingBuilder) WithKind(kind listing.Kind) *ListingBuilder {
	b.Kind = kind
	return b
}

func (b *ListingBuilder) WithAddOn(price int64, model pricing.Model) *ListingBuilder {
	b.AddOns = append(b.AddOns, pricing.AddOn{
		ID:    uuid.New(),
		Name:  "extra",
		Price: money.Must(price, b.Currency),
		Model: model,
	})
	return b
}

func (b *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.ReconstructListing(
		b.ID, b.OwnerID, b.Kind, b.Title,
		money.Must(b.BasePrice, b.Currency),
		b.RentalUnit, b.AddOns, time.Now().UTC(),
	)
}
