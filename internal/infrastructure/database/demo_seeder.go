package database

import (
	"context"
	"log"
	"os"
	"time"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
)

// SeedDemoData provisions one verified workshop and one motorcycle so a local
// stack can run the quote flow end to end. Onboarding has no API surface
// here, so fresh tables would otherwise have nothing to quote against.
// Disabled unless SEED_DEMO_DATA=true; rows already present are left alone.
func SeedDemoData(ctx context.Context, workshops interfaces.IWorkshopRepository, motorcycles interfaces.IMotorcycleRepository) error {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return nil
	}

	ws := demoWorkshop()
	existing, err := workshops.GetByID(ctx, ws.ID)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		if _, err := workshops.Create(ctx, ws); err != nil {
			return err
		}
		log.Printf("[demo][seed] created workshop id=%s", ws.ID)
	}

	moto := demoMotorcycle()
	existingMoto, err := motorcycles.GetByID(ctx, moto.ID)
	if err != nil {
		return err
	}
	if existingMoto.ID == "" {
		if _, err := motorcycles.Create(ctx, moto); err != nil {
			return err
		}
		log.Printf("[demo][seed] created motorcycle id=%s", moto.ID)
	}

	return nil
}

func demoWorkshop() entities.Workshop {
	return entities.Workshop{
		ID:          "demo-workshop-1",
		OwnerUserID: "demo-mechanic-1",
		Name:        "Demo Moto Garage",
		District:    "Centro",
		Verified:    true,
		CreatedAt:   time.Now().UTC(),
	}
}

func demoMotorcycle() entities.Motorcycle {
	return entities.Motorcycle{
		ID:        "demo-moto-1",
		OwnerID:   "demo-rider-1",
		Brand:     "Honda",
		Model:     "CG 160",
		Year:      2022,
		Plate:     "DEM0A01",
		CreatedAt: time.Now().UTC(),
	}
}
