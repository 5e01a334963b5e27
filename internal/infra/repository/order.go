package repository

import (
	"context"

	"restro-api/internal/domain/order"
	"restro-api/internal/infra"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts the order head and its lines using the caller's
// transaction; the order is never visible with a partial line set.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	totals := o.Totals()

	amounts, err := orderAmountsToNumeric(
		totals.Subtotal, totals.Discount, totals.GSTAmount,
		totals.DeliveryCharges, totals.ServiceCharges, totals.Total,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert order totals", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, fulfillment, status, offer_id, offer_code,
		                    subtotal, discount, gst_amount, delivery_charges, service_charges, total,
		                    placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID(), o.UserID(), string(o.Fulfillment()), string(o.Status()),
		pgconv.UUIDPtrToPgtype(o.OfferID()), pgconv.StringPtrToPgtype(o.OfferCode()),
		amounts[0], amounts[1], amounts[2], amounts[3], amounts[4], amounts[5],
		o.PlacedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for position, line := range o.Lines() {
		unitPrice, err := pgconv.DecimalToNumeric(line.UnitPrice())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to convert line price", err)
		}
		amount, err := pgconv.DecimalToNumeric(line.Amount())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to convert line amount", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO order_lines (order_id, position, name, quantity, unit_price, amount)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID(), position, line.Name(), line.Quantity(), unitPrice, amount,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order line", err)
		}
	}

	return o.ID(), nil
}

func orderAmountsToNumeric(amounts ...decimal.Decimal) ([]pgtype.Numeric, error) {
	converted := make([]pgtype.Numeric, 0, len(amounts))
	for _, a := range amounts {
		n, err := pgconv.DecimalToNumeric(a)
		if err != nil {
			return nil, err
		}
		converted = append(converted, n)
	}
	return converted, nil
}
