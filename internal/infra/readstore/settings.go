package readstore

import (
	"context"

	"restro-api/internal/infra"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/pgconv"
	"restro-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(db db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

func (r *SettingsReadStore) Find(ctx context.Context) (*queries.SettingsView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT gst_rate_percent, delivery_charge, service_charge, updated_at
		FROM merchant_settings WHERE id = 1`)

	var (
		view                   queries.SettingsView
		gst, delivery, service pgtype.Numeric
	)

	if err := row.Scan(&gst, &delivery, &service, &view.UpdatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("merchant settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read merchant settings", err)
	}

	var err error
	if view.GSTRatePercent, err = pgconv.DecimalFromNumeric(gst); err != nil {
		return nil, infra.WrapRepoErr("failed to convert gst rate", err)
	}
	if view.DeliveryCharge, err = pgconv.DecimalFromNumeric(delivery); err != nil {
		return nil, infra.WrapRepoErr("failed to convert delivery charge", err)
	}
	if view.ServiceCharge, err = pgconv.DecimalFromNumeric(service); err != nil {
		return nil, infra.WrapRepoErr("failed to convert service charge", err)
	}

	return &view, nil
}
