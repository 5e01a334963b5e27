package readstore

import (
	"context"

	"restro-api/internal/infra"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/pgconv"
	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(db db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: db}
}

const offerViewColumns = `id, code, discount_type, discount_value, valid_from, valid_to, is_active, created_at, updated_at`

func (r *OfferReadStore) FindAll(ctx context.Context) ([]*queries.OfferView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerViewColumns+` FROM offers ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var views []*queries.OfferView
	for rows.Next() {
		view, err := scanOfferView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}

	return views, nil
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerViewColumns+` FROM offers WHERE id = $1`, id)

	view, err := scanOfferView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}

	return view, nil
}

type pgRow interface {
	Scan(dest ...any) error
}

func scanOfferView(row pgRow) (*queries.OfferView, error) {
	var (
		view          queries.OfferView
		discountValue pgtype.Numeric
	)

	err := row.Scan(
		&view.ID,
		&view.Code,
		&view.DiscountType,
		&discountValue,
		&view.ValidFrom,
		&view.ValidTo,
		&view.IsActive,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.DiscountValue, err = pgconv.DecimalFromNumeric(discountValue)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
