package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"cms_back_end/internal/config"
	"cms_back_end/internal/database"
	"cms_back_end/internal/handlers/product"
	"cms_back_end/internal/routes"
	"cms_back_end/internal/services"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	storage, err := services.ConnectMinio(ctx, cfg.Minio)
	if err != nil {
		log.Fatalf("❌ Échec initialisation MinIO: %v", err)
	}

	session, err := database.Connect(cfg.Scylla)
	if err != nil {
		log.Fatalf("❌ Échec initialisation ScyllaDB: %v", err)
	}
	defer session.Close()

	store := database.NewProductStore(session)
	products := product.NewHandler(storage, store)

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20
	routes.RegisterRoutes(r, products)

	log.Println("🚀 Serveur produits lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Serveur arrêté: %v", err)
	}
}
