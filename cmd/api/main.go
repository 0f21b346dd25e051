package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"artcatalog/internal/config"
	"artcatalog/internal/database"
	"artcatalog/internal/domain/artwork"
	"artcatalog/internal/domain/attachment"
	"artcatalog/internal/domain/export"
	"artcatalog/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&artwork.Artwork{}); err != nil {
		log.Fatal(err)
	}

	store, err := attachment.NewStore(cfg.UploadDir, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	artworkRepo := artwork.NewRepository(db)
	artworkService := artwork.NewService(artworkRepo, store)
	artworkHandler := artwork.NewHandler(artworkService)
	exportHandler := export.NewHandler(artworkService)
	attachmentHandler := attachment.NewHandler(store)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	attachment.RegisterRoutes(r, attachmentHandler)

	v1 := r.Group("/api/v1")
	{
		artwork.RegisterRoutes(v1, artworkHandler)
		export.RegisterRoutes(v1, exportHandler)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
