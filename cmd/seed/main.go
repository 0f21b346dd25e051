package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"artcatalog/internal/config"
	"artcatalog/internal/database"
	"artcatalog/internal/domain/artwork"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&artwork.Artwork{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM artworks")

	today := time.Now().Format("2006-01-02")

	log.Println("Creating artworks...")
	samples := []artwork.Artwork{
		{
			UUID:       uuid.New().String(),
			ArtistName: "Hilma af Klint",
			Title:      "The Ten Largest, No. 7, Adulthood",
			DateAdded:  today,
			Value:      120000,
			Materials:  "Tempera on paper mounted on canvas",
			Dimensions: "315 x 235 cm",
			Provenance: "Estate of the artist",
		},
		{
			UUID:            uuid.New().String(),
			ArtistName:      "Hilma af Klint",
			Title:           "Svanen, No. 17",
			DateAdded:       today,
			CurrentLocation: "On loan",
			Value:           95000,
			Materials:       "Oil on canvas",
			Dimensions:      "150 x 150 cm",
		},
		{
			UUID:           uuid.New().String(),
			ArtistName:     "Yayoi Kusama",
			Title:          "Pumpkin Study",
			DateAdded:      today,
			Value:          45000,
			Materials:      "Screenprint",
			Dimensions:     "76 x 56 cm",
			ConditionNotes: "Minor foxing at lower margin",
		},
		{
			UUID:        uuid.New().String(),
			ArtistName:  "Unknown Artist",
			Title:       "Untitled",
			DateAdded:   today,
			Description: "Unattributed study, acquired at estate sale",
		},
	}

	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			log.Fatal("seed insert failed:", err)
		}
	}

	log.Printf("Seeded %d artworks into %s", len(samples), cfg.DatabaseDSN)
}
