package repository

import (
	"context"

	"restro-api/internal/infra"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/pgconv"
	"restro-api/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

// SettingsRepository reads and writes the single merchant settings row.
type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(db db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*commands.SettingsSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT gst_rate_percent, delivery_charge, service_charge
		FROM merchant_settings WHERE id = 1`)

	var gst, delivery, service pgtype.Numeric
	if err := row.Scan(&gst, &delivery, &service); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("merchant settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read merchant settings", err)
	}

	var snapshot commands.SettingsSnapshot
	var err error

	if snapshot.GSTRatePercent, err = pgconv.DecimalFromNumeric(gst); err != nil {
		return nil, infra.WrapRepoErr("failed to convert gst rate", err)
	}
	if snapshot.DeliveryCharge, err = pgconv.DecimalFromNumeric(delivery); err != nil {
		return nil, infra.WrapRepoErr("failed to convert delivery charge", err)
	}
	if snapshot.ServiceCharge, err = pgconv.DecimalFromNumeric(service); err != nil {
		return nil, infra.WrapRepoErr("failed to convert service charge", err)
	}

	return &snapshot, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s commands.SettingsSnapshot) error {
	gst, err := pgconv.DecimalToNumeric(s.GSTRatePercent)
	if err != nil {
		return infra.WrapRepoErr("failed to convert gst rate", err)
	}
	delivery, err := pgconv.DecimalToNumeric(s.DeliveryCharge)
	if err != nil {
		return infra.WrapRepoErr("failed to convert delivery charge", err)
	}
	service, err := pgconv.DecimalToNumeric(s.ServiceCharge)
	if err != nil {
		return infra.WrapRepoErr("failed to convert service charge", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO merchant_settings (id, gst_rate_percent, delivery_charge, service_charge)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET gst_rate_percent = EXCLUDED.gst_rate_percent,
		    delivery_charge = EXCLUDED.delivery_charge,
		    service_charge = EXCLUDED.service_charge,
		    updated_at = now()`,
		gst, delivery, service,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update merchant settings", err)
	}

	return nil
}
