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

type MenuReadStore struct {
	db db.DBTX
}

func NewMenuReadStore(db db.DBTX) *MenuReadStore {
	return &MenuReadStore{db: db}
}

const menuItemColumns = `id, name, description, category, base_price, offer_code, discounted_price, is_available, created_at, updated_at`

func (r *MenuReadStore) FindAll(ctx context.Context) ([]*queries.MenuItemView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+menuItemColumns+` FROM menu_items ORDER BY category, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var views []*queries.MenuItemView
	for rows.Next() {
		view, err := scanMenuItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu item rows", err)
	}

	return views, nil
}

func (r *MenuReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id)

	view, err := scanMenuItemView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}

	return view, nil
}

func scanMenuItemView(row pgRow) (*queries.MenuItemView, error) {
	var (
		view            queries.MenuItemView
		basePrice       pgtype.Numeric
		offerCode       pgtype.Text
		discountedPrice pgtype.Numeric
	)

	err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Description,
		&view.Category,
		&basePrice,
		&offerCode,
		&discountedPrice,
		&view.IsAvailable,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.BasePrice, err = pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, err
	}

	view.OfferCode = pgconv.StringPtrFromPgtype(offerCode)

	view.DiscountedPrice, err = pgconv.DecimalPtrFromNumeric(discountedPrice)
	if err != nil {
		return nil, err
	}

	view.EffectivePrice = view.BasePrice
	if view.DiscountedPrice != nil {
		view.EffectivePrice = *view.DiscountedPrice
	}

	return &view, nil
}
