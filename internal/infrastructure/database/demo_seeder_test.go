package database

import (
	"context"
	"testing"

	"motofix/internal/domain/entities"
	mock_interfaces "motofix/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSeedDemoData(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workshops := mock_interfaces.NewMockIWorkshopRepository(ctrl)
		motorcycles := mock_interfaces.NewMockIMotorcycleRepository(ctrl)

		if err := SeedDemoData(context.Background(), workshops, motorcycles); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("creates missing rows", func(t *testing.T) {
		t.Setenv("SEED_DEMO_DATA", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workshops := mock_interfaces.NewMockIWorkshopRepository(ctrl)
		motorcycles := mock_interfaces.NewMockIMotorcycleRepository(ctrl)

		workshops.EXPECT().GetByID(gomock.Any(), "demo-workshop-1").Return(entities.Workshop{}, nil)
		workshops.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Workshop{})).DoAndReturn(
			func(_ context.Context, w entities.Workshop) (entities.Workshop, error) {
				if w.ID != "demo-workshop-1" || !w.Verified {
					t.Fatalf("unexpected workshop: %+v", w)
				}
				return w, nil
			},
		)
		motorcycles.EXPECT().GetByID(gomock.Any(), "demo-moto-1").Return(entities.Motorcycle{}, nil)
		motorcycles.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Motorcycle{})).DoAndReturn(
			func(_ context.Context, m entities.Motorcycle) (entities.Motorcycle, error) {
				if m.ID != "demo-moto-1" || m.OwnerID == "" {
					t.Fatalf("unexpected motorcycle: %+v", m)
				}
				return m, nil
			},
		)

		if err := SeedDemoData(context.Background(), workshops, motorcycles); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rerun leaves existing rows alone", func(t *testing.T) {
		t.Setenv("SEED_DEMO_DATA", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workshops := mock_interfaces.NewMockIWorkshopRepository(ctrl)
		motorcycles := mock_interfaces.NewMockIMotorcycleRepository(ctrl)

		workshops.EXPECT().GetByID(gomock.Any(), "demo-workshop-1").
			Return(entities.Workshop{ID: "demo-workshop-1"}, nil)
		motorcycles.EXPECT().GetByID(gomock.Any(), "demo-moto-1").
			Return(entities.Motorcycle{ID: "demo-moto-1"}, nil)

		if err := SeedDemoData(context.Background(), workshops, motorcycles); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
