package converter

import (
	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"
)

func ListingFromInfra(row pgq.Listings, addOnRows []pgq.ListingAddOns) *listing.Listing {
	addOns := make([]pricing.AddOn, len(addOnRows))
	for i, a := range addOnRows {
		addOns[i] = pricing.AddOn{
			ID:    a.ID,
			Name:  a.Name,
			Price: money.Money{Amount: a.Price, Currency: row.Currency},
			Model: pricing.Model(a.PricingModel),
		}
	}
	return listing.ReconstructListing(
		row.ID,
		row.OwnerID,
		listing.Kind(row.Kind),
		row.Title,
		money.Money{Amount: row.BasePrice, Currency: row.Currency},
		listing.RentalUnit(row.RentalUnit),
		addOns,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func BookingFromInfra(row pgq.ListBlockingBookingsRow) availability.Booking {
	return availability.Booking{
		Start: pgconv.DayFromPgtype(row.StartDate),
		End:   pgconv.DayFromPgtype(row.EndDate),
	}
}

// OverrideFromInfra prices the override in the listing's currency.
func OverrideFromInfra(row pgq.ListOverridesInWindowRow) availability.Override {
	o := availability.Override{
		Date:        pgconv.DayFromPgtype(row.Date),
		IsAvailable: row.IsAvailable,
	}
	if row.Price.Valid {
		o.Price = &money.Money{Amount: row.Price.Int64, Currency: row.Currency}
	}
	return o
}
