package readstore

import (
	"context"

	"restro-api/internal/infra"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/pgconv"
	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, fulfillment, status, offer_id, offer_code,
		       subtotal, discount, gst_amount, delivery_charges, service_charges, total,
		       placed_at, created_at, updated_at
		FROM orders WHERE id = $1`, id)

	var (
		view      queries.OrderView
		offerID   pgtype.UUID
		offerCode pgtype.Text
		amounts   [6]pgtype.Numeric
	)

	err := row.Scan(
		&view.ID,
		&view.UserID,
		&view.Fulfillment,
		&view.Status,
		&offerID,
		&offerCode,
		&amounts[0], &amounts[1], &amounts[2], &amounts[3], &amounts[4], &amounts[5],
		&view.PlacedAt,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	view.OfferID = pgconv.UUIDPtrFromPgtype(offerID)
	view.OfferCode = pgconv.StringPtrFromPgtype(offerCode)

	fields := []*decimal.Decimal{
		&view.Subtotal, &view.Discount, &view.GSTAmount,
		&view.DeliveryCharges, &view.ServiceCharges, &view.Total,
	}
	for i, n := range amounts {
		if *fields[i], err = pgconv.DecimalFromNumeric(n); err != nil {
			return nil, infra.WrapRepoErr("failed to convert order amount", err)
		}
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Lines = lines

	return &view, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, fulfillment, status, total, placed_at
		FROM orders WHERE user_id = $1
		ORDER BY placed_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var (
			item  queries.OrderListItem
			total pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &item.Fulfillment, &item.Status, &total, &item.PlacedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		if item.Total, err = pgconv.DecimalFromNumeric(total); err != nil {
			return nil, infra.WrapRepoErr("failed to convert order total", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}

	return items, nil
}

func (r *OrderReadStore) findLines(ctx context.Context, orderID uuid.UUID) ([]queries.OrderLineView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, quantity, unit_price, amount
		FROM order_lines WHERE order_id = $1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	var lines []queries.OrderLineView
	for rows.Next() {
		var (
			line      queries.OrderLineView
			unitPrice pgtype.Numeric
			amount    pgtype.Numeric
		)
		if err := rows.Scan(&line.Name, &line.Quantity, &unitPrice, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line row", err)
		}
		if line.UnitPrice, err = pgconv.DecimalFromNumeric(unitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to convert line price", err)
		}
		if line.Amount, err = pgconv.DecimalFromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("failed to convert line amount", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order line rows", err)
	}

	return lines, nil
}
