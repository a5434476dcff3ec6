package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
	mock_interfaces "motofix/internal/usecase/interfaces/mocks"
	"motofix/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	quotes    *mock_interfaces.MockIQuoteRepository
	requests  *mock_interfaces.MockIRequestRepository
	orders    *mock_interfaces.MockIWorkOrderRepository
	workshops *mock_interfaces.MockIWorkshopRepository
	sink      *mock_interfaces.MockINotificationSink
}

func newQuoteUseCaseWithMocks(ctrl *gomock.Controller) (*QuoteUseCase, quoteMocks) {
	m := quoteMocks{
		quotes:    mock_interfaces.NewMockIQuoteRepository(ctrl),
		requests:  mock_interfaces.NewMockIRequestRepository(ctrl),
		orders:    mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		workshops: mock_interfaces.NewMockIWorkshopRepository(ctrl),
		sink:      mock_interfaces.NewMockINotificationSink(ctrl),
	}
	return NewQuoteUseCase(m.quotes, m.requests, m.orders, m.workshops, m.sink), m
}

func TestQuoteUseCase_Submit(t *testing.T) {
	validUntil := time.Now().UTC().Add(48 * time.Hour)
	parts := []entities.QuotePartItem{
		{Name: "brake pads", Source: entities.PartSourceOEM, UnitPrice: decimal.NewFromInt(80), Quantity: 2},
	}

	t.Run("missing workshop id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), SubmitQuoteInput{RequestID: "req-1", LaborCost: decimal.NewFromInt(50), ValidUntil: validUntil})
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation}) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("valid_until in the past", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), SubmitQuoteInput{
			WorkshopID: "ws-1", RequestID: "req-1",
			LaborCost:  decimal.NewFromInt(50),
			ValidUntil: time.Now().UTC().Add(-time.Hour),
		})
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "INVALID_VALID_UNTIL"}) {
			t.Fatalf("expected INVALID_VALID_UNTIL, got %v", err)
		}
	})

	t.Run("no parts and no labor", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), SubmitQuoteInput{WorkshopID: "ws-1", RequestID: "req-1", ValidUntil: validUntil})
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "EMPTY_QUOTE"}) {
			t.Fatalf("expected EMPTY_QUOTE, got %v", err)
		}
	})

	t.Run("part with unknown source", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), SubmitQuoteInput{
			WorkshopID: "ws-1", RequestID: "req-1", ValidUntil: validUntil,
			Parts: []entities.QuotePartItem{{Name: "chain", Source: "scrapyard", UnitPrice: decimal.NewFromInt(10), Quantity: 1}},
		})
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "INVALID_PART"}) {
			t.Fatalf("expected INVALID_PART, got %v", err)
		}
	})

	t.Run("unverified workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", Verified: false}, nil)

		_, err := uc.Submit(context.Background(), SubmitQuoteInput{WorkshopID: "ws-1", RequestID: "req-1", Parts: parts, ValidUntil: validUntil})
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindForbidden}) {
			t.Fatalf("expected forbidden error, got %v", err)
		}
	})

	t.Run("request not quotable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", Verified: true}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusSelected}, nil)

		_, err := uc.Submit(context.Background(), SubmitQuoteInput{WorkshopID: "ws-1", RequestID: "req-1", Parts: parts, ValidUntil: validUntil})
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindInvalidState}) {
			t.Fatalf("expected invalid_state error, got %v", err)
		}
	})

	t.Run("success derives total and moves request into quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1", Name: "Moto Shop", Verified: true}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{
			ID: "req-1", RiderID: "rider-1", CategorySlug: "brakes", Status: entities.RequestStatusPublished,
		}, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				// 2 x 80 parts + 120 labor
				if !q.Total.Equal(decimal.NewFromInt(280)) {
					t.Fatalf("unexpected total: %s", q.Total)
				}
				if q.ID == "" || q.RequestID != "req-1" || q.WorkshopID != "ws-1" || q.CategorySlug != "brakes" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Status != entities.QuoteStatusPending {
					t.Fatalf("expected pending status, got %s", q.Status)
				}
				return q, nil
			},
		)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusPublished, entities.RequestStatusInQuotation, "ws-1").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusInQuotation}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "rider-1", "req-1", "New quote received", gomock.Any(), gomock.Any()).Return(nil)

		q, err := uc.Submit(context.Background(), SubmitQuoteInput{
			WorkshopID: "ws-1", RequestID: "req-1",
			Parts:      parts,
			LaborCost:  decimal.NewFromInt(120),
			ValidUntil: validUntil,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuoteUseCase_Accept(t *testing.T) {
	validUntil := time.Now().UTC().Add(24 * time.Hour)
	pendingQuote := entities.Quote{
		ID: "q-1", RequestID: "req-1", WorkshopID: "ws-1",
		Total: decimal.NewFromInt(300), Status: entities.QuoteStatusPending, ValidUntil: validUntil,
	}
	openRequest := entities.ServiceRequest{ID: "req-1", RiderID: "rider-1", Status: entities.RequestStatusInQuotation}

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Accept(context.Background(), "rider-1", "q-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})

	t.Run("caller is not the request owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)

		_, err := uc.Accept(context.Background(), "someone-else", "q-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindForbidden}) {
			t.Fatalf("expected forbidden error, got %v", err)
		}
	})

	t.Run("quote already rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		rejected := pendingQuote
		rejected.Status = entities.QuoteStatusRejected
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(rejected, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)

		_, err := uc.Accept(context.Background(), "rider-1", "q-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindInvalidState}) {
			t.Fatalf("expected invalid_state error, got %v", err)
		}
	})

	t.Run("expired quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		expired := pendingQuote
		expired.ValidUntil = time.Now().UTC().Add(-time.Minute)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(expired, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)

		_, err := uc.Accept(context.Background(), "rider-1", "q-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "QUOTE_EXPIRED"}) {
			t.Fatalf("expected QUOTE_EXPIRED, got %v", err)
		}
	})

	t.Run("request already has an active work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		engaged := openRequest
		engaged.ActiveWorkOrderID = "wo-9"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(engaged, nil)

		_, err := uc.Accept(context.Background(), "rider-1", "q-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindConflict}) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("losing accept race surfaces the transaction conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quote{pendingQuote}, nil)
		m.orders.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(7), nil)
		m.quotes.EXPECT().AcceptTransaction(gomock.Any(), gomock.Any()).
			Return(pkg.NewConflictError("service request", "req-1", "request status changed concurrently"))

		_, err := uc.Accept(context.Background(), "rider-1", "q-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindConflict}) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("success rejects pending siblings and spawns the work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		siblingPending := entities.Quote{ID: "q-2", RequestID: "req-1", WorkshopID: "ws-2", Status: entities.QuoteStatusPending, ValidUntil: validUntil}
		siblingRejected := entities.Quote{ID: "q-3", RequestID: "req-1", WorkshopID: "ws-3", Status: entities.QuoteStatusRejected, ValidUntil: validUntil}

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "req-1").
			Return([]entities.Quote{pendingQuote, siblingPending, siblingRejected}, nil)
		m.orders.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(42), nil)
		m.quotes.EXPECT().AcceptTransaction(gomock.Any(), gomock.AssignableToTypeOf(interfaces.AcceptQuoteTransaction{})).DoAndReturn(
			func(_ context.Context, txn interfaces.AcceptQuoteTransaction) error {
				if len(txn.SiblingQuoteIDs) != 1 || txn.SiblingQuoteIDs[0] != "q-2" {
					t.Fatalf("unexpected siblings: %v", txn.SiblingQuoteIDs)
				}
				if txn.WorkOrder.OrderNumber != "WO-000042" {
					t.Fatalf("unexpected order number: %s", txn.WorkOrder.OrderNumber)
				}
				if !txn.WorkOrder.TotalAgreed.Equal(pendingQuote.Total) {
					t.Fatalf("total agreed must freeze the quote total, got %s", txn.WorkOrder.TotalAgreed)
				}
				if txn.WorkOrder.Status != entities.WorkOrderStatusPending {
					t.Fatalf("expected pending work order, got %s", txn.WorkOrder.Status)
				}
				if txn.History.FromStatus != entities.RequestStatusInQuotation || txn.History.ToStatus != entities.RequestStatusSelected {
					t.Fatalf("unexpected history transition: %+v", txn.History)
				}
				if txn.History.ActorID != "rider-1" {
					t.Fatalf("history actor must be the rider, got %s", txn.History.ActorID)
				}
				return nil
			},
		)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-1", "req-1", "Quote accepted", gomock.Any(), gomock.Any()).Return(nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-2").Return(entities.Workshop{ID: "ws-2", OwnerUserID: "owner-2"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-2", "req-1", "Quote not selected", gomock.Any(), gomock.Any()).Return(nil)

		order, err := uc.Accept(context.Background(), "rider-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID == "" || order.QuoteID != "q-1" || order.RiderID != "rider-1" {
			t.Fatalf("unexpected work order: %+v", order)
		}
	})

	t.Run("accept survives a notification outage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		siblingPending := entities.Quote{ID: "q-2", RequestID: "req-1", WorkshopID: "ws-2", Status: entities.QuoteStatusPending, ValidUntil: validUntil}

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "req-1").
			Return([]entities.Quote{pendingQuote, siblingPending}, nil)
		m.orders.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(43), nil)
		m.quotes.EXPECT().AcceptTransaction(gomock.Any(), gomock.Any()).Return(nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-1", "req-1", "Quote accepted", gomock.Any(), gomock.Any()).
			Return(errors.New("sink outage"))
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-2").Return(entities.Workshop{ID: "ws-2", OwnerUserID: "owner-2"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-2", "req-1", "Quote not selected", gomock.Any(), gomock.Any()).
			Return(errors.New("sink outage"))

		order, err := uc.Accept(context.Background(), "rider-1", "q-1")
		if err != nil {
			t.Fatalf("accept must not fail on notification errors, got %v", err)
		}
		if order.ID == "" || order.OrderNumber != "WO-000043" {
			t.Fatalf("unexpected work order: %+v", order)
		}
	})
}

func TestQuoteUseCase_Reject(t *testing.T) {
	pendingQuote := entities.Quote{ID: "q-1", RequestID: "req-1", WorkshopID: "ws-1", Status: entities.QuoteStatusPending}
	openRequest := entities.ServiceRequest{ID: "req-1", RiderID: "rider-1", Status: entities.RequestStatusInQuotation}

	t.Run("reason is required", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Reject(context.Background(), "rider-1", "q-1", "  ")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "INVALID_REASON"}) {
			t.Fatalf("expected INVALID_REASON, got %v", err)
		}
	})

	t.Run("concurrent status change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusRejected, "too expensive").
			Return(entities.Quote{}, nil)

		_, err := uc.Reject(context.Background(), "rider-1", "q-1", "too expensive")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindConflict}) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("success notifies the workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		rejected := pendingQuote
		rejected.Status = entities.QuoteStatusRejected
		rejected.RejectionReason = "too expensive"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusRejected, "too expensive").
			Return(rejected, nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-1", "req-1", "Quote rejected", gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Reject(context.Background(), "rider-1", "q-1", "too expensive")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusRejected || res.RejectionReason != "too expensive" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_CounterOffer(t *testing.T) {
	pendingQuote := entities.Quote{ID: "q-1", RequestID: "req-1", WorkshopID: "ws-1", Status: entities.QuoteStatusPending}
	openRequest := entities.ServiceRequest{ID: "req-1", RiderID: "rider-1", Status: entities.RequestStatusInQuotation}

	t.Run("amount must be positive", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CounterOffer(context.Background(), "rider-1", "q-1", "can you do less", decimal.Zero)
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "INVALID_AMOUNT"}) {
			t.Fatalf("expected INVALID_AMOUNT, got %v", err)
		}
	})

	t.Run("quote no longer pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		accepted := pendingQuote
		accepted.Status = entities.QuoteStatusAccepted
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)

		_, err := uc.CounterOffer(context.Background(), "rider-1", "q-1", "can you do less", decimal.NewFromInt(250))
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindInvalidState}) {
			t.Fatalf("expected invalid_state error, got %v", err)
		}
	})

	t.Run("success leaves the quote untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequest, nil)
		m.quotes.EXPECT().CreateCounterOffer(gomock.Any(), gomock.AssignableToTypeOf(entities.CounterOffer{})).DoAndReturn(
			func(_ context.Context, co entities.CounterOffer) (entities.CounterOffer, error) {
				if co.QuoteID != "q-1" || co.RiderID != "rider-1" || !co.SuggestedAmount.Equal(decimal.NewFromInt(250)) {
					t.Fatalf("unexpected counter-offer: %+v", co)
				}
				return co, nil
			},
		)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-1", "req-1", "Counter-offer received", gomock.Any(), gomock.Any()).Return(nil)

		co, err := uc.CounterOffer(context.Background(), "rider-1", "q-1", "can you do less", decimal.NewFromInt(250))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if co.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}
