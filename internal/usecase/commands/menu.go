package commands

import (
	"context"

	"restro-api/internal/domain/menu"
	"restro-api/internal/domain/offer"
	"restro-api/internal/domain/pricing"
	reqdto "restro-api/internal/handler/dto/request"
	"restro-api/internal/infra"
	"restro-api/internal/pkg/clock"
	"restro-api/internal/pkg/errs"
	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrMenuItemNotFound   = errs.New("menu item not found")
	ErrMenuItemValidation = errs.New("menu item validation error")
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *menu.Item) (uuid.UUID, error)
	Update(ctx context.Context, item *menu.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
}

type MenuCommands interface {
	CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (*queries.MenuItemView, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) (*queries.MenuItemView, error)
	PreviewItemOffer(ctx context.Context, req reqdto.ItemOfferPreviewRequest) (*pricing.ItemOfferResolution, error)
}

type menuCommandsImpl struct {
	repo        MenuItemRepository
	offerRepo   OfferListRepository
	menuQueries queries.MenuQueries
	resolver    *pricing.ItemOfferResolver
	clock       clock.Clock
}

func NewMenuCommands(
	repo MenuItemRepository,
	offerRepo OfferListRepository,
	menuQueries queries.MenuQueries,
	resolver *pricing.ItemOfferResolver,
	clock clock.Clock,
) MenuCommands {
	return &menuCommandsImpl{
		repo:        repo,
		offerRepo:   offerRepo,
		menuQueries: menuQueries,
		resolver:    resolver,
		clock:       clock,
	}
}

func (c *menuCommandsImpl) CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (*queries.MenuItemView, error) {
	item, err := menu.NewItem(uuid.New(), req.Name, req.Description, req.Category, req.BasePrice)
	if err != nil {
		return nil, errs.Mark(err, ErrMenuItemValidation)
	}

	id, err := c.repo.Create(ctx, item)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.menuQueries.GetItem(ctx, id)
}

func (c *menuCommandsImpl) UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) (*queries.MenuItemView, error) {
	snapshot, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	applyMenuItemPatch(snapshot, req)

	item, err := menu.NewItem(snapshot.ID, snapshot.Name, snapshot.Description, snapshot.Category, snapshot.BasePrice)
	if err != nil {
		return nil, errs.Mark(err, ErrMenuItemValidation)
	}
	item.SetAvailability(snapshot.IsAvailable)

	if err := c.applyOfferChange(ctx, item, snapshot, req.OfferCode); err != nil {
		return nil, err
	}

	if err := c.repo.Update(ctx, item); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.menuQueries.GetItem(ctx, id)
}

func (c *menuCommandsImpl) PreviewItemOffer(ctx context.Context, req reqdto.ItemOfferPreviewRequest) (*pricing.ItemOfferResolution, error) {
	offers, err := c.loadOffers(ctx)
	if err != nil {
		return nil, err
	}

	resolution := c.resolver.Resolve(req.Code, req.BasePrice, offers, c.clock.Now())
	return &resolution, nil
}

// applyOfferChange re-resolves the stored promotional price. Even when
// only the base price changed, a previously stored code is resolved
// again so the stored discounted price tracks the current price.
func (c *menuCommandsImpl) applyOfferChange(ctx context.Context, item *menu.Item, snapshot *MenuItemSnapshot, offerCode *string) error {
	code := snapshot.OfferCode
	if offerCode != nil {
		if *offerCode == "" {
			item.ClearOffer()
			return nil
		}
		code = offerCode
	}

	if code == nil {
		return nil
	}

	offers, err := c.loadOffers(ctx)
	if err != nil {
		return err
	}

	resolution := c.resolver.Resolve(*code, item.BasePrice(), offers, c.clock.Now())
	if !resolution.IsValid {
		// An explicitly supplied code must resolve; a stale stored code
		// is dropped silently.
		if offerCode != nil {
			return ErrOfferNotApplicable
		}
		item.ClearOffer()
		return nil
	}

	item.ApplyOffer(*code, resolution.DiscountedPrice)
	return nil
}

func (c *menuCommandsImpl) loadOffers(ctx context.Context) ([]*offer.Offer, error) {
	snapshots, err := c.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	offers, err := toDomainOffers(snapshots)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return offers, nil
}

func applyMenuItemPatch(snapshot *MenuItemSnapshot, req reqdto.UpdateMenuItemRequest) {
	if req.Name != nil {
		snapshot.Name = *req.Name
	}
	if req.Description != nil {
		snapshot.Description = *req.Description
	}
	if req.Category != nil {
		snapshot.Category = *req.Category
	}
	if req.BasePrice != nil {
		snapshot.BasePrice = *req.BasePrice
	}
	if req.IsAvailable != nil {
		snapshot.IsAvailable = *req.IsAvailable
	}
}
