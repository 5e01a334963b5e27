package commands

import (
	"context"

	reqdto "restro-api/internal/handler/dto/request"
	"restro-api/internal/pkg/errs"
	"restro-api/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var ErrSettingsValidation = errs.New("settings validation error")

type SettingsWriteRepository interface {
	Update(ctx context.Context, s SettingsSnapshot) error
}

type SettingsCommands interface {
	Update(ctx context.Context, req reqdto.UpdateSettingsRequest) (*queries.SettingsView, error)
}

type settingsCommandsImpl struct {
	repo            SettingsWriteRepository
	settingsQueries queries.SettingsQueries
}

func NewSettingsCommands(repo SettingsWriteRepository, settingsQueries queries.SettingsQueries) SettingsCommands {
	return &settingsCommandsImpl{
		repo:            repo,
		settingsQueries: settingsQueries,
	}
}

func (c *settingsCommandsImpl) Update(ctx context.Context, req reqdto.UpdateSettingsRequest) (*queries.SettingsView, error) {
	snapshot := SettingsSnapshot{
		GSTRatePercent: req.GSTRatePercent,
		DeliveryCharge: req.DeliveryCharge,
		ServiceCharge:  req.ServiceCharge,
	}

	if err := validateSettings(snapshot); err != nil {
		return nil, err
	}

	if err := c.repo.Update(ctx, snapshot); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.settingsQueries.Get(ctx)
}

func validateSettings(s SettingsSnapshot) error {
	if s.GSTRatePercent.IsNegative() || s.GSTRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrSettingsValidation
	}
	if s.DeliveryCharge.IsNegative() || s.ServiceCharge.IsNegative() {
		return ErrSettingsValidation
	}
	return nil
}
