package database

import (
	"context"
	"log"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
)

// SeedCatalog loads the default service categories. Put is an unconditional
// overwrite, so rerunning at every startup is safe.
func SeedCatalog(ctx context.Context, repo interfaces.ICatalogRepository) error {
	for _, c := range defaultCategories() {
		if err := repo.Put(ctx, c); err != nil {
			log.Printf("[catalog][seed] put failed slug=%s err=%v", c.Slug, err)
			return err
		}
	}
	log.Printf("[catalog][seed] seeded %d categories", len(defaultCategories()))
	return nil
}

func defaultCategories() []entities.ServiceCategory {
	return []entities.ServiceCategory{
		{
			ID:   "cat-engine",
			Slug: "engine",
			Name: "Engine and Transmission",
			Questions: []entities.DiagnosticQuestion{
				{
					ID:      "q-engine-noise",
					Text:    "Does the engine make an unusual noise?",
					Options: []string{"knocking", "ticking", "grinding", "no noise"},
				},
				{
					ID:      "q-engine-start",
					Text:    "Does the engine start normally?",
					Options: []string{"starts fine", "hard to start", "does not start"},
				},
			},
		},
		{
			ID:   "cat-brakes",
			Slug: "brakes",
			Name: "Brakes",
			Questions: []entities.DiagnosticQuestion{
				{
					ID:      "q-brake-symptom",
					Text:    "What do you notice when braking?",
					Options: []string{"squealing", "vibration", "weak braking", "lever feels soft"},
				},
			},
		},
		{
			ID:   "cat-electrical",
			Slug: "electrical",
			Name: "Electrical System",
			Questions: []entities.DiagnosticQuestion{
				{
					ID:      "q-electrical-part",
					Text:    "Which part shows the problem?",
					Options: []string{"battery", "lights", "ignition", "dashboard"},
				},
			},
		},
		{
			ID:   "cat-tires",
			Slug: "tires",
			Name: "Tires and Wheels",
			Questions: []entities.DiagnosticQuestion{
				{
					ID:      "q-tire-issue",
					Text:    "What is wrong with the tire or wheel?",
					Options: []string{"flat", "worn", "wobble", "puncture"},
				},
			},
		},
		{
			ID:   "cat-suspension",
			Slug: "suspension",
			Name: "Suspension",
		},
		{
			ID:   "cat-maintenance",
			Slug: "maintenance",
			Name: "General Maintenance",
			Questions: []entities.DiagnosticQuestion{
				{
					ID:      "q-maintenance-km",
					Text:    "How many kilometers since the last service?",
					Options: []string{"under 3000", "3000 to 8000", "over 8000", "not sure"},
				},
			},
		},
	}
}
