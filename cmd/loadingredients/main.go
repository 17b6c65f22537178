// Command loadingredients imports the ingredient catalog from a JSON
// fixture, e.g.:
//
//	loadingredients data/ingredients.json
//
// The fixture is an array of {"name": ..., "measurement_unit": ...}
// records. Records colliding on (name, unit) with the catalog or with
// each other abort the import: the unique index is the data-quality
// gate.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: loadingredients <ingredients.json>")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal("failed to read fixture: ", err)
	}

	var records []ingredientRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatal("failed to parse fixture: ", err)
	}
	if len(records) == 0 {
		log.Fatal("fixture is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ingredients := make([]domain.Ingredient, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" || rec.MeasurementUnit == "" {
			log.Fatalf("invalid record %+v: name and measurement_unit are required", rec)
		}
		ingredients = append(ingredients, domain.Ingredient{
			Name:            rec.Name,
			MeasurementUnit: rec.MeasurementUnit,
		})
	}

	repo := repository.NewIngredientRepository(db, true)
	if err := repo.BulkCreate(context.Background(), ingredients); err != nil {
		log.Fatal("import failed: ", err)
	}

	log.Printf("imported %d ingredients", len(ingredients))
}
