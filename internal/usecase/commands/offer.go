package commands

import (
	"context"

	"restro-api/internal/domain/offer"
	reqdto "restro-api/internal/handler/dto/request"
	"restro-api/internal/infra"
	"restro-api/internal/pkg/clock"
	"restro-api/internal/pkg/errs"
	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound      = errs.New("offer not found")
	ErrDuplicateOfferCode = errs.New("offer code already exists")
	ErrOfferValidation    = errs.New("offer validation error")
)

type OfferWriteRepository interface {
	Create(ctx context.Context, o *offer.Offer) (uuid.UUID, error)
	Update(ctx context.Context, o *offer.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
}

type OfferCommands interface {
	Create(ctx context.Context, req reqdto.CreateOfferRequest) (*queries.OfferView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateOfferRequest) (*queries.OfferView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Validate(ctx context.Context, req reqdto.ValidateOfferRequest) (*offer.Result, error)
}

type offerCommandsImpl struct {
	repo         OfferWriteRepository
	listRepo     OfferListRepository
	offerQueries queries.OfferQueries
	validator    *offer.Validator
	clock        clock.Clock
}

func NewOfferCommands(
	repo OfferWriteRepository,
	listRepo OfferListRepository,
	offerQueries queries.OfferQueries,
	validator *offer.Validator,
	clock clock.Clock,
) OfferCommands {
	return &offerCommandsImpl{
		repo:         repo,
		listRepo:     listRepo,
		offerQueries: offerQueries,
		validator:    validator,
		clock:        clock,
	}
}

func (c *offerCommandsImpl) Create(ctx context.Context, req reqdto.CreateOfferRequest) (*queries.OfferView, error) {
	entity, err := offer.NewOffer(uuid.New(), req.Code, req.DiscountType, req.DiscountValue, req.ValidFrom, req.ValidTo, req.IsActive)
	if err != nil {
		return nil, errs.Mark(err, ErrOfferValidation)
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateOfferCode
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.offerQueries.GetByID(ctx, id)
}

func (c *offerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateOfferRequest) (*queries.OfferView, error) {
	snapshot, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	applyOfferPatch(snapshot, req)

	entity, err := snapshot.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrOfferValidation)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.offerQueries.GetByID(ctx, id)
}

func (c *offerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOfferNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Validate runs the coupon check against the current offer list without
// touching a cart. The admin console uses it to sanity-check a code.
func (c *offerCommandsImpl) Validate(ctx context.Context, req reqdto.ValidateOfferRequest) (*offer.Result, error) {
	snapshots, err := c.listRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	offers, err := toDomainOffers(snapshots)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := c.validator.Validate(req.Code, req.ReferenceAmount, c.clock.Now(), offers)
	return &result, nil
}

// The code is immutable after creation; storefront carts may already
// reference it.
func applyOfferPatch(snapshot *OfferSnapshot, req reqdto.UpdateOfferRequest) {
	if req.DiscountType != nil {
		snapshot.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		snapshot.DiscountValue = *req.DiscountValue
	}
	if req.ValidFrom != nil {
		snapshot.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		snapshot.ValidTo = *req.ValidTo
	}
	if req.IsActive != nil {
		snapshot.IsActive = *req.IsActive
	}
}
