package listing

import (
	"errors"
	"time"

	"rental-market/internal/domain/money"
	"rental-market/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind       = errors.New("invalid listing kind")
	ErrInvalidRentalUnit = errors.New("invalid rental unit")
)

type Kind string

const (
	KindLodging Kind = "lodging"
	KindVehicle Kind = "vehicle"
)

func (k Kind) IsValid() bool {
	return k == KindLodging || k == KindVehicle
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// CodePrefix is the default reservation code prefix for the kind.
func (k Kind) CodePrefix() string {
	if k == KindVehicle {
		return "VHC"
	}
	return "LDG"
}

type RentalUnit string

const (
	UnitHour  RentalUnit = "hour"
	UnitDay   RentalUnit = "day"
	UnitWeek  RentalUnit = "week"
	UnitMonth RentalUnit = "month"
)

func (u RentalUnit) IsValid() bool {
	switch u {
	case UnitHour, UnitDay, UnitWeek, UnitMonth:
		return true
	default:
		return false
	}
}

// Listing is read-only to this service; owners edit listings elsewhere.
type Listing struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	kind       Kind
	title      string
	basePrice  money.Money
	rentalUnit RentalUnit
	addOns     []pricing.AddOn
	createdAt  time.Time
}

func ReconstructListing(
	id, ownerID uuid.UUID,
	kind Kind,
	title string,
	basePrice money.Money,
	rentalUnit RentalUnit,
	addOns []pricing.AddOn,
	createdAt time.Time,
) *Listing {
	return &Listing{
		id:         id,
		ownerID:    ownerID,
		kind:       kind,
		title:      title,
		basePrice:  basePrice,
		rentalUnit: rentalUnit,
		addOns:     addOns,
		createdAt:  createdAt,
	}
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func (l *Listing) ID() uuid.UUID           { return l.id }
func (l *Listing) OwnerID() uuid.UUID      { return l.ownerID }
func (l *Listing) Kind() Kind              { return l.kind }
func (l *Listing) Title() string           { return l.title }
func (l *Listing) BasePrice() money.Money  { return l.basePrice }
func (l *Listing) Currency() string        { return l.basePrice.Currency }
func (l *Listing) RentalUnit() RentalUnit  { return l.rentalUnit }
func (l *Listing) AddOns() []pricing.AddOn { return l.addOns }
func (l *Listing) CreatedAt() time.Time    { return l.createdAt }
