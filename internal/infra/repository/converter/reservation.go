package converter

import (
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) pgq.Reservations {
	return pgq.Reservations{
		ID:                   res.ID(),
		ListingID:            res.ListingID(),
		ListingKind:          string(res.ListingKind()),
		OwnerID:              res.OwnerID(),
		GuestID:              res.GuestID(),
		StartDate:            pgconv.DayToPgtype(res.StartDate()),
		EndDate:              pgconv.DayToPgtype(res.EndDate()),
		Currency:             res.TotalPrice().Currency,
		UnitPrice:            res.UnitPrice().Amount,
		TotalPrice:           res.TotalPrice().Amount,
		ServiceFee:           res.ServiceFee().Amount,
		PriceEspece:          res.PriceEspece().Amount,
		Status:               res.Status().String(),
		ArrivalConfirmation:  res.ArrivalConfirmed(),
		EspeceConfirmation:   res.CashConfirmed(),
		ConfirmedAt:          pgconv.TimePtrToPgtype(res.ConfirmedAt()),
		ReservationCode:      res.Code().String(),
		SourceOfferMessageID: pgconv.UUIDPtrToPgtype(res.SourceOfferMessageID()),
		CreatedAt:            pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationUpdateToInfra(res *reservation.Reservation) pgq.UpdateReservationParams {
	return pgq.UpdateReservationParams{
		ID:                  res.ID(),
		Status:              res.Status().String(),
		ArrivalConfirmation: res.ArrivalConfirmed(),
		EspeceConfirmation:  res.CashConfirmed(),
		ConfirmedAt:         pgconv.TimePtrToPgtype(res.ConfirmedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row pgq.Reservations) *reservation.Reservation {
	amount := func(v int64) money.Money {
		return money.Money{Amount: v, Currency: row.Currency}
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.ListingID,
		listing.Kind(row.ListingKind),
		row.OwnerID,
		row.GuestID,
		pgconv.DayFromPgtype(row.StartDate),
		pgconv.DayFromPgtype(row.EndDate),
		amount(row.UnitPrice),
		amount(row.TotalPrice),
		amount(row.ServiceFee),
		amount(row.PriceEspece),
		reservation.Status(row.Status),
		row.ArrivalConfirmation,
		row.EspeceConfirmation,
		pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		reservation.Code(row.ReservationCode),
		pgconv.UUIDPtrFromPgtype(row.SourceOfferMessageID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func TransactionToInfra(txn *reservation.Transaction) pgq.Transactions {
	return pgq.Transactions{
		ID:            txn.ID(),
		ReservationID: txn.ReservationID(),
		Amount:        txn.Amount().Amount,
		Currency:      txn.Amount().Currency,
		Status:        string(txn.Status()),
		PaymentMethod: string(txn.Method()),
		CreatedAt:     pgconv.TimeToPgtype(txn.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(txn.UpdatedAt()),
	}
}

func TransactionFromInfra(row pgq.Transactions) *reservation.Transaction {
	return reservation.ReconstructTransaction(
		row.ID,
		row.ReservationID,
		money.Money{Amount: row.Amount, Currency: row.Currency},
		reservation.TransactionStatus(row.Status),
		reservation.PaymentMethod(row.PaymentMethod),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func TransactionsFromInfra(rows []pgq.Transactions) []*reservation.Transaction {
	out := make([]*reservation.Transaction, len(rows))
	for i, row := range rows {
		out[i] = TransactionFromInfra(row)
	}
	return out
}
