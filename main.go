package main

import (
	"fmt"
	"log"
	"os"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/configs"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/payments"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/routes"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.NewDB(cfg)
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}
	defer configs.CloseDB(db)

	if err := configs.SeedCities(db); err != nil {
		log.Fatalf("seed cities failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir failed: %v", err)
	}

	gateway := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	chatSvc := services.NewChatService(repository.NewChatRepository(db), repository.NewOrderRepository(db))
	hub := ws.NewChatHub(chatSvc)
	go hub.Run()

	r := gin.Default()

	// Serve uploaded dish and profile photos
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, gateway, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
