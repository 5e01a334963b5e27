package repository

import (
	"context"

	"restro-api/internal/domain/offer"
	"restro-api/internal/infra"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/pgconv"
	"restro-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(db db.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `id, code, discount_type, discount_value, valid_from, valid_to, is_active`

func (r *OfferRepository) FindAll(ctx context.Context) ([]commands.OfferSnapshot, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var snapshots []commands.OfferSnapshot
	for rows.Next() {
		snapshot, err := scanOfferSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}

	return snapshots, nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.OfferSnapshot, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)

	snapshot, err := scanOfferSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}

	return &snapshot, nil
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) (uuid.UUID, error) {
	discountValue, err := pgconv.DecimalToNumeric(o.Discount().Value())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert discount value", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO offers (id, code, discount_type, discount_value, valid_from, valid_to, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID(), o.Code().String(), string(o.Discount().Type()), discountValue,
		o.ValidFrom(), o.ValidTo(), o.IsActive(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("offer code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}

	return o.ID(), nil
}

func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	discountValue, err := pgconv.DecimalToNumeric(o.Discount().Value())
	if err != nil {
		return infra.WrapRepoErr("failed to convert discount value", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE offers
		SET discount_type = $2, discount_value = $3, valid_from = $4, valid_to = $5,
		    is_active = $6, updated_at = now()
		WHERE id = $1`,
		o.ID(), string(o.Discount().Type()), discountValue,
		o.ValidFrom(), o.ValidTo(), o.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}

	return nil
}

type pgRow interface {
	Scan(dest ...any) error
}

func scanOfferSnapshot(row pgRow) (commands.OfferSnapshot, error) {
	var (
		snapshot      commands.OfferSnapshot
		discountValue pgtype.Numeric
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Code,
		&snapshot.DiscountType,
		&discountValue,
		&snapshot.ValidFrom,
		&snapshot.ValidTo,
		&snapshot.IsActive,
	)
	if err != nil {
		return commands.OfferSnapshot{}, err
	}

	snapshot.DiscountValue, err = pgconv.DecimalFromNumeric(discountValue)
	if err != nil {
		return commands.OfferSnapshot{}, err
	}

	return snapshot, nil
}
