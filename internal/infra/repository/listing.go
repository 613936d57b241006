package repository

import (
	"context"

	"rental-market/internal/domain/listing"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository/converter"
	"rental-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingQueries interface {
	FindListingByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Listings, error)
	ListAddOnsByListing(ctx context.Context, db pgq.DBTX, listingID uuid.UUID) ([]pgq.ListingAddOns, error)
}

type ListingRepository struct {
	queries ListingQueries
	db      pgq.DBTX
}

func NewListingRepository(queries ListingQueries, db pgq.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.FindListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}

	addOns, err := r.queries.ListAddOnsByListing(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listing add-ons", err)
	}

	return converter.ListingFromInfra(row, addOns), nil
}
