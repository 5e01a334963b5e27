package repository

import (
	"context"

	"restro-api/internal/domain/menu"
	"restro-api/internal/infra"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/pgconv"
	"restro-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuItemRepository struct {
	db db.DBTX
}

func NewMenuItemRepository(db db.DBTX) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

func (r *MenuItemRepository) Create(ctx context.Context, item *menu.Item) (uuid.UUID, error) {
	basePrice, err := pgconv.DecimalToNumeric(item.BasePrice())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert base price", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, category, base_price, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID(), item.Name(), item.Description(), item.Category(), basePrice, item.IsAvailable(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create menu item", err)
	}

	return item.ID(), nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *menu.Item) error {
	basePrice, err := pgconv.DecimalToNumeric(item.BasePrice())
	if err != nil {
		return infra.WrapRepoErr("failed to convert base price", err)
	}

	discountedPrice, err := pgconv.DecimalPtrToNumeric(item.DiscountedPrice())
	if err != nil {
		return infra.WrapRepoErr("failed to convert discounted price", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, category = $4, base_price = $5,
		    offer_code = $6, discounted_price = $7, is_available = $8, updated_at = now()
		WHERE id = $1`,
		item.ID(), item.Name(), item.Description(), item.Category(), basePrice,
		pgconv.StringPtrToPgtype(item.OfferCode()), discountedPrice, item.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.MenuItemSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, category, base_price, offer_code, discounted_price,
		       is_available, created_at, updated_at
		FROM menu_items WHERE id = $1`, id)

	var (
		snapshot        commands.MenuItemSnapshot
		basePrice       pgtype.Numeric
		offerCode       pgtype.Text
		discountedPrice pgtype.Numeric
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Name,
		&snapshot.Description,
		&snapshot.Category,
		&basePrice,
		&offerCode,
		&discountedPrice,
		&snapshot.IsAvailable,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}

	snapshot.BasePrice, err = pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert base price", err)
	}

	snapshot.OfferCode = pgconv.StringPtrFromPgtype(offerCode)

	snapshot.DiscountedPrice, err = pgconv.DecimalPtrFromNumeric(discountedPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discounted price", err)
	}

	return &snapshot, nil
}
