package queries

import (
	"context"
	"time"

	"restro-api/internal/infra"
	"restro-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

// Read models (DTO for read side)
type MenuItemView struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	BasePrice       decimal.Decimal  `json:"base_price"`
	OfferCode       *string          `json:"offer_code,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
	EffectivePrice  decimal.Decimal  `json:"effective_price"`
	IsAvailable     bool             `json:"is_available"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type MenuQueries interface {
	ListMenu(ctx context.Context) ([]*MenuItemView, error)
	GetItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type MenuViewRepo interface {
	FindAll(ctx context.Context) ([]*MenuItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	repo MenuViewRepo
}

func NewMenuQueries(repo MenuViewRepo) MenuQueries {
	return &menuQueriesImpl{repo: repo}
}

func (q *menuQueriesImpl) ListMenu(ctx context.Context) ([]*MenuItemView, error) {
	return q.repo.FindAll(ctx)
}

func (q *menuQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	item, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}
