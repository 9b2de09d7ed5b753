package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/parthk02/zomato-recommender/internal/config"
	"github.com/parthk02/zomato-recommender/internal/dataset"
	"github.com/parthk02/zomato-recommender/internal/handler"
	"github.com/parthk02/zomato-recommender/internal/llm"
	middlewarepkg "github.com/parthk02/zomato-recommender/internal/middleware"
	"github.com/parthk02/zomato-recommender/internal/router"
	"github.com/parthk02/zomato-recommender/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := dataset.LoadFile(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	log.Printf("dataset loaded restaurants=%d cities=%d", store.Count(), len(store.Cities()))

	validator := service.NewValidator(store.Cities())
	normalizer := service.NewNormalizer(cfg.Price)

	// The generator is built per request so a missing GROQ_API_KEY answers
	// 503 instead of preventing startup.
	newGenerator := func() (llm.Generator, error) {
		return llm.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.LLMTimeout)
	}

	recommendService := service.NewRecommendService(store, validator, normalizer, newGenerator, cfg.MaxPromptCandidates)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	router.Register(e, cfg, router.Handlers{
		Meta:      handler.NewMetaHandler(store),
		Recommend: handler.NewRecommendHandler(recommendService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
