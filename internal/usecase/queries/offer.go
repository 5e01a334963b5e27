package queries

import (
	"context"
	"time"

	"restro-api/internal/infra"
	"restro-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOfferNotFound = errs.New("offer not found")

type OfferView struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	ValidFrom     time.Time       `json:"valid_from"`
	ValidTo       time.Time       `json:"valid_to"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OfferQueries interface {
	List(ctx context.Context) ([]*OfferView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type OfferViewRepo interface {
	FindAll(ctx context.Context) ([]*OfferView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type offerQueriesImpl struct {
	repo OfferViewRepo
}

func NewOfferQueries(repo OfferViewRepo) OfferQueries {
	return &offerQueriesImpl{repo: repo}
}

func (q *offerQueriesImpl) List(ctx context.Context) ([]*OfferView, error) {
	return q.repo.FindAll(ctx)
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return view, nil
}
