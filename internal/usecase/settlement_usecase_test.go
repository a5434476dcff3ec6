package usecase

import (
	"context"
	"errors"
	"testing"

	"motofix/internal/domain/entities"
	mock_interfaces "motofix/internal/usecase/interfaces/mocks"
	"motofix/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type settlementMocks struct {
	receipts  *mock_interfaces.MockIReceiptRepository
	reviews   *mock_interfaces.MockIReviewRepository
	orders    *mock_interfaces.MockIWorkOrderRepository
	workshops *mock_interfaces.MockIWorkshopRepository
	sink      *mock_interfaces.MockINotificationSink
}

func newSettlementUseCaseWithMocks(ctrl *gomock.Controller) (*SettlementUseCase, settlementMocks) {
	m := settlementMocks{
		receipts:  mock_interfaces.NewMockIReceiptRepository(ctrl),
		reviews:   mock_interfaces.NewMockIReviewRepository(ctrl),
		orders:    mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		workshops: mock_interfaces.NewMockIWorkshopRepository(ctrl),
		sink:      mock_interfaces.NewMockINotificationSink(ctrl),
	}
	return NewSettlementUseCase(m.receipts, m.reviews, m.orders, m.workshops, m.sink), m
}

func closedOrder() entities.WorkOrder {
	return entities.WorkOrder{
		ID: "wo-1", OrderNumber: "WO-000042", RequestID: "req-1",
		WorkshopID: "ws-1", RiderID: "rider-1",
		Status:      entities.WorkOrderStatusClosed,
		TotalAgreed: decimal.NewFromInt(300), TotalFinal: decimal.NewFromInt(350),
	}
}

func TestSettlementUseCase_GetReceipt(t *testing.T) {
	receipt := entities.Receipt{ID: "rc-1", WorkOrderID: "wo-1", TotalFinal: decimal.NewFromInt(350)}

	t.Run("rider of the order can read it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(closedOrder(), nil)
		m.receipts.EXPECT().GetByWorkOrderID(gomock.Any(), "wo-1").Return(receipt, nil)

		res, err := uc.GetReceipt(context.Background(), "rider-1", "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "rc-1" {
			t.Fatalf("unexpected receipt: %+v", res)
		}
	})

	t.Run("workshop owner can read it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(closedOrder(), nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		m.receipts.EXPECT().GetByWorkOrderID(gomock.Any(), "wo-1").Return(receipt, nil)

		res, err := uc.GetReceipt(context.Background(), "owner-1", "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "rc-1" {
			t.Fatalf("unexpected receipt: %+v", res)
		}
	})

	t.Run("third parties are forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(closedOrder(), nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)

		_, err := uc.GetReceipt(context.Background(), "stranger", "wo-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindForbidden}) {
			t.Fatalf("expected forbidden error, got %v", err)
		}
	})

	t.Run("no receipt yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(closedOrder(), nil)
		m.receipts.EXPECT().GetByWorkOrderID(gomock.Any(), "wo-1").Return(entities.Receipt{}, nil)

		_, err := uc.GetReceipt(context.Background(), "rider-1", "wo-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})
}

func TestSettlementUseCase_CreateReview(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		uc := NewSettlementUseCase(nil, nil, nil, nil, nil)
		for _, rating := range []int{0, 6, -1} {
			_, err := uc.CreateReview(context.Background(), "rider-1", "wo-1", rating, "")
			if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "INVALID_RATING"}) {
				t.Fatalf("rating %d: expected INVALID_RATING, got %v", rating, err)
			}
		}
	})

	t.Run("order must be closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		completed := closedOrder()
		completed.Status = entities.WorkOrderStatusCompleted
		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(completed, nil)

		_, err := uc.CreateReview(context.Background(), "rider-1", "wo-1", 5, "great job")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindInvalidState}) {
			t.Fatalf("expected invalid_state error, got %v", err)
		}
	})

	t.Run("second review conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(closedOrder(), nil)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Review{}, nil)

		_, err := uc.CreateReview(context.Background(), "rider-1", "wo-1", 5, "great job")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindConflict}) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("success feeds the reputation counters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(closedOrder(), nil)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.WorkOrderID != "wo-1" || r.RiderID != "rider-1" || r.WorkshopID != "ws-1" || r.Rating != 4 {
					t.Fatalf("unexpected review: %+v", r)
				}
				return r, nil
			},
		)
		m.workshops.EXPECT().AddRating(gomock.Any(), "ws-1", 4).Return(nil)
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-1", "req-1", "New review", gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CreateReview(context.Background(), "rider-1", "wo-1", 4, "solid work ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("review survives a failed counter update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(closedOrder(), nil)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil },
		)
		m.workshops.EXPECT().AddRating(gomock.Any(), "ws-1", 5).Return(errors.New("throttled"))
		m.workshops.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)
		m.sink.EXPECT().Emit(gomock.Any(), "owner-1", "req-1", "New review", gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CreateReview(context.Background(), "rider-1", "wo-1", 5, "great job")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rating != 5 {
			t.Fatalf("unexpected review: %+v", res)
		}
	})
}

func TestSettlementUseCase_GetWorkshopByOwner(t *testing.T) {
	t.Run("blank owner id", func(t *testing.T) {
		uc := NewSettlementUseCase(nil, nil, nil, nil, nil)
		_, err := uc.GetWorkshopByOwner(context.Background(), "  ")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation}) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("owner without a workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.workshops.EXPECT().GetByOwnerUserID(gomock.Any(), "owner-1").Return(entities.Workshop{}, nil)

		_, err := uc.GetWorkshopByOwner(context.Background(), "owner-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSettlementUseCaseWithMocks(ctrl)

		m.workshops.EXPECT().GetByOwnerUserID(gomock.Any(), "owner-1").
			Return(entities.Workshop{ID: "ws-1", OwnerUserID: "owner-1"}, nil)

		ws, err := uc.GetWorkshopByOwner(context.Background(), " owner-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ws.ID != "ws-1" {
			t.Fatalf("unexpected workshop: %+v", ws)
		}
	})
}
