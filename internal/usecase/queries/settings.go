package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SettingsView struct {
	GSTRatePercent decimal.Decimal `json:"gst_rate_percent"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	ServiceCharge  decimal.Decimal `json:"service_charge"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type SettingsViewRepo interface {
	Find(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	repo SettingsViewRepo
}

func NewSettingsQueries(repo SettingsViewRepo) SettingsQueries {
	return &settingsQueriesImpl{repo: repo}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	return q.repo.Find(ctx)
}
