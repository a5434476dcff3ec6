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

type requestMocks struct {
	requests    *mock_interfaces.MockIRequestRepository
	quotes      *mock_interfaces.MockIQuoteRepository
	motorcycles *mock_interfaces.MockIMotorcycleRepository
	catalog     *mock_interfaces.MockICatalogRepository
}

func newRequestUseCaseWithMocks(ctrl *gomock.Controller) (*RequestUseCase, requestMocks) {
	m := requestMocks{
		requests:    mock_interfaces.NewMockIRequestRepository(ctrl),
		quotes:      mock_interfaces.NewMockIQuoteRepository(ctrl),
		motorcycles: mock_interfaces.NewMockIMotorcycleRepository(ctrl),
		catalog:     mock_interfaces.NewMockICatalogRepository(ctrl),
	}
	return NewRequestUseCase(m.requests, m.quotes, m.motorcycles, m.catalog), m
}

func validPublishInput() PublishRequestInput {
	return PublishRequestInput{
		RiderID:      "rider-1",
		MotorcycleID: "moto-1",
		CategoryID:   "cat-brakes",
		Description:  "front brake lever goes all the way to the grip",
		District:     "Centro",
		Urgency:      entities.RequestUrgencyHigh,
	}
}

func TestRequestUseCase_Publish(t *testing.T) {
	t.Run("short description", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		in := validPublishInput()
		in.Description = "brakes broken"
		_, err := uc.Publish(context.Background(), in)
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "DESCRIPTION_TOO_SHORT"}) {
			t.Fatalf("expected DESCRIPTION_TOO_SHORT, got %v", err)
		}
	})

	t.Run("invalid urgency", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		in := validPublishInput()
		in.Urgency = "yesterday"
		_, err := uc.Publish(context.Background(), in)
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "INVALID_URGENCY"}) {
			t.Fatalf("expected INVALID_URGENCY, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.catalog.EXPECT().GetByID(gomock.Any(), "cat-brakes").Return(entities.ServiceCategory{}, nil)

		_, err := uc.Publish(context.Background(), validPublishInput())
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})

	t.Run("motorcycle of another rider reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.catalog.EXPECT().GetByID(gomock.Any(), "cat-brakes").Return(entities.ServiceCategory{ID: "cat-brakes", Slug: "brakes"}, nil)
		m.motorcycles.EXPECT().GetByID(gomock.Any(), "moto-1").Return(entities.Motorcycle{ID: "moto-1", OwnerID: "other-rider"}, nil)

		_, err := uc.Publish(context.Background(), validPublishInput())
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})

	t.Run("success publishes with denormalized category slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.catalog.EXPECT().GetByID(gomock.Any(), "cat-brakes").Return(entities.ServiceCategory{ID: "cat-brakes", Slug: "brakes"}, nil)
		m.motorcycles.EXPECT().GetByID(gomock.Any(), "moto-1").Return(entities.Motorcycle{ID: "moto-1", OwnerID: "rider-1"}, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.ID == "" || r.CategorySlug != "brakes" || r.Status != entities.RequestStatusPublished {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.Publish(context.Background(), validPublishInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestRequestUseCase_Cancel(t *testing.T) {
	t.Run("only quotable requests can be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", RiderID: "rider-1", Status: entities.RequestStatusSelected}, nil)

		_, err := uc.Cancel(context.Background(), "rider-1", "req-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindInvalidState}) {
			t.Fatalf("expected invalid_state error, got %v", err)
		}
	})

	t.Run("only the owner can cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", RiderID: "rider-1", Status: entities.RequestStatusPublished}, nil)

		_, err := uc.Cancel(context.Background(), "someone-else", "req-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindForbidden}) {
			t.Fatalf("expected forbidden error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", RiderID: "rider-1", Status: entities.RequestStatusInQuotation}, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusInQuotation, entities.RequestStatusCancelled, "rider-1").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusCancelled}, nil)

		res, err := uc.Cancel(context.Background(), "rider-1", "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("concurrent cancel loses the condition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", RiderID: "rider-1", Status: entities.RequestStatusPublished}, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusPublished, entities.RequestStatusCancelled, "rider-1").
			Return(entities.ServiceRequest{}, nil)

		_, err := uc.Cancel(context.Background(), "rider-1", "req-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindConflict}) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})
}

func TestRequestUseCase_EstimateCost(t *testing.T) {
	t.Run("no history returns all zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.catalog.EXPECT().GetBySlug(gomock.Any(), "brakes").Return(entities.ServiceCategory{ID: "cat-brakes", Slug: "brakes"}, nil)
		m.quotes.EXPECT().ListByCategorySlug(gomock.Any(), "brakes").Return(nil, nil)

		stats, err := uc.EstimateCost(context.Background(), "brakes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Count != 0 || !stats.Min.IsZero() || !stats.Max.IsZero() || !stats.Avg.IsZero() {
			t.Fatalf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("rejected quotes are excluded from the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.catalog.EXPECT().GetBySlug(gomock.Any(), "brakes").Return(entities.ServiceCategory{ID: "cat-brakes", Slug: "brakes"}, nil)
		m.quotes.EXPECT().ListByCategorySlug(gomock.Any(), "brakes").Return([]entities.Quote{
			{ID: "q-1", Status: entities.QuoteStatusPending, Total: decimal.NewFromInt(100)},
			{ID: "q-2", Status: entities.QuoteStatusAccepted, Total: decimal.NewFromInt(301)},
			{ID: "q-3", Status: entities.QuoteStatusRejected, Total: decimal.NewFromInt(9999)},
		}, nil)

		stats, err := uc.EstimateCost(context.Background(), "brakes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Count != 2 {
			t.Fatalf("expected 2 samples, got %d", stats.Count)
		}
		if !stats.Min.Equal(decimal.NewFromInt(100)) || !stats.Max.Equal(decimal.NewFromInt(301)) {
			t.Fatalf("unexpected min/max: %+v", stats)
		}
		if !stats.Avg.Equal(decimal.NewFromFloat(200.5)) {
			t.Fatalf("unexpected avg: %s", stats.Avg)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.catalog.EXPECT().GetBySlug(gomock.Any(), "nope").Return(entities.ServiceCategory{}, nil)

		_, err := uc.EstimateCost(context.Background(), "nope")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})
}

func TestRequestUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation}) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "req-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})

	t.Run("success trims the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseWithMocks(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1"}, nil)

		res, err := uc.GetByID(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "req-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
