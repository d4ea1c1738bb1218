package main

import (
	"log"
	"log/slog"
	"os"

	"macrobrief/internal/handler"
	"macrobrief/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	reportDir := os.Getenv("REPORT_DIR")
	if reportDir == "" {
		reportDir = "reports"
	}

	briefRepo := repository.NewBriefRepository(reportDir)
	briefHandler := handler.NewBriefHandler(briefRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/briefs", briefHandler.GetBriefs)
	r.GET("/briefs/:date", briefHandler.GetBrief)
	r.GET("/health", briefHandler.GetHealth)

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
