package commands

import (
	"context"
	"log/slog"

	"restro-api/internal/domain/offer"
	"restro-api/internal/domain/order"
	"restro-api/internal/domain/pricing"
	reqdto "restro-api/internal/handler/dto/request"
	"restro-api/internal/infra/db"
	"restro-api/internal/pkg/clock"
	"restro-api/internal/pkg/errs"
	"restro-api/internal/pkg/money"
	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCart             = errs.New("invalid cart")
	ErrOfferNotApplicable      = errs.New("offer not applicable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type OfferListRepository interface {
	FindAll(ctx context.Context) ([]OfferSnapshot, error)
}

type SettingsReadRepository interface {
	Get(ctx context.Context) (*SettingsSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
}

// QuoteResult carries the priced breakdown plus the coupon outcome. An
// invalid coupon is a normal negative outcome: totals are computed with
// a zero discount and the message tells the customer why.
type QuoteResult struct {
	Totals pricing.Totals
	Coupon *offer.Result
}

type PlaceOrderResult struct {
	Order *queries.OrderView
}

type CheckoutCommands interface {
	Quote(ctx context.Context, req reqdto.QuoteRequest) (*QuoteResult, error)
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, userID uuid.UUID) (*PlaceOrderResult, error)
}

type checkoutCommandsImpl struct {
	offerRepo    OfferListRepository
	settingsRepo SettingsReadRepository
	orderRepo    OrderRepository
	orderQueries queries.OrderQueries
	validator    *offer.Validator
	calculator   *pricing.Calculator
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewCheckoutCommands(
	offerRepo OfferListRepository,
	settingsRepo SettingsReadRepository,
	orderRepo OrderRepository,
	orderQueries queries.OrderQueries,
	validator *offer.Validator,
	calculator *pricing.Calculator,
	db *pgxpool.Pool,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		offerRepo:    offerRepo,
		settingsRepo: settingsRepo,
		orderRepo:    orderRepo,
		orderQueries: orderQueries,
		validator:    validator,
		calculator:   calculator,
		db:           db,
		clock:        clock,
	}
}

func (c *checkoutCommandsImpl) Quote(ctx context.Context, req reqdto.QuoteRequest) (*QuoteResult, error) {
	lines, fulfillment, err := c.parseCart(req.ToDomainLines, req.ToFulfillment)
	if err != nil {
		return nil, err
	}

	rates, err := c.loadRates(ctx)
	if err != nil {
		return nil, err
	}

	couponResult, err := c.validateCoupon(ctx, req.GetOfferCode(), lines)
	if err != nil {
		return nil, err
	}

	discount := decimalZeroIfNil(couponResult)
	totals := c.calculator.ComputeTotals(lines, fulfillment, discount, rates)

	return &QuoteResult{
		Totals: totals,
		Coupon: couponResult,
	}, nil
}

func (c *checkoutCommandsImpl) PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, userID uuid.UUID) (*PlaceOrderResult, error) {
	lines, fulfillment, err := c.parseCart(req.ToDomainLines, req.ToFulfillment)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrInvalidCart
	}

	rates, err := c.loadRates(ctx)
	if err != nil {
		return nil, err
	}

	// The offer list may have changed since the quote, so the applied
	// code is revalidated against current offers before anything is
	// persisted.
	couponResult, err := c.validateCoupon(ctx, req.GetOfferCode(), lines)
	if err != nil {
		return nil, err
	}
	if couponResult != nil && !couponResult.IsValid {
		return nil, ErrOfferNotApplicable
	}

	var offerID *uuid.UUID
	var offerCode *string
	discount := decimalZeroIfNil(couponResult)
	if couponResult != nil {
		offerID = couponResult.OfferID
		offerCode = &couponResult.Code
	}

	totals := c.calculator.ComputeTotals(lines, fulfillment, discount, rates)

	orderEntity, err := order.NewOrder(userID, fulfillment, lines, offerID, offerCode, totals, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCart)
	}

	orderID, err := c.executeOrderTransaction(ctx, orderEntity)
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the complete order view from the read store
	view, err := c.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &PlaceOrderResult{Order: view}, nil
}

func (c *checkoutCommandsImpl) executeOrderTransaction(ctx context.Context, orderEntity *order.Order) (uuid.UUID, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	orderID, err := c.orderRepo.Create(ctx, tx, orderEntity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return uuid.Nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return orderID, nil
}

func (c *checkoutCommandsImpl) parseCart(
	toLines func() ([]pricing.CartLine, error),
	toFulfillment func() (pricing.Fulfillment, error),
) ([]pricing.CartLine, pricing.Fulfillment, error) {
	lines, err := toLines()
	if err != nil {
		return nil, "", errs.Mark(err, ErrInvalidCart)
	}

	fulfillment, err := toFulfillment()
	if err != nil {
		return nil, "", errs.Mark(err, ErrInvalidCart)
	}

	return lines, fulfillment, nil
}

func (c *checkoutCommandsImpl) loadRates(ctx context.Context) (pricing.Rates, error) {
	settings, err := c.settingsRepo.Get(ctx)
	if err != nil {
		return pricing.Rates{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return settings.Rates(), nil
}

// validateCoupon returns nil when no code was supplied.
func (c *checkoutCommandsImpl) validateCoupon(ctx context.Context, code *string, lines []pricing.CartLine) (*offer.Result, error) {
	if code == nil {
		return nil, nil
	}

	snapshots, err := c.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	offers, err := toDomainOffers(snapshots)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	subtotal := preDiscountSubtotal(lines)
	result := c.validator.Revalidate(*code, subtotal, c.clock.Now(), offers)
	return &result, nil
}

// preDiscountSubtotal mirrors the calculator's subtotal so the
// validator sees the same reference amount the discount applies to.
func preDiscountSubtotal(lines []pricing.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount())
	}
	return money.Round2(sum)
}

func decimalZeroIfNil(result *offer.Result) decimal.Decimal {
	if result == nil || !result.IsValid {
		return decimal.Zero
	}
	return result.DiscountAmount
}
