package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/parthk02/zomato-recommender/internal/config"
	"github.com/parthk02/zomato-recommender/internal/dataset"
	"github.com/parthk02/zomato-recommender/internal/dto"
	"github.com/parthk02/zomato-recommender/internal/llm"
	"github.com/parthk02/zomato-recommender/internal/presenter"
	"github.com/parthk02/zomato-recommender/internal/service"
)

// Usage: cli <city> [price_text]
// Without arguments the city and budget are collected interactively; a
// missing budget means "no price preference".
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	fmt.Println("Loading restaurant dataset...")
	store, err := dataset.LoadFile(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	fmt.Printf("Loaded %d restaurants.\n\n", store.Count())

	raw := rawQueryFromArgsOrPrompt(os.Args[1:])

	validator := service.NewValidator(store.Cities())
	normalizer := service.NewNormalizer(cfg.Price)
	newGenerator := func() (llm.Generator, error) {
		return llm.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.LLMTimeout)
	}
	svc := service.NewRecommendService(store, validator, normalizer, newGenerator, cfg.MaxPromptCandidates)

	prep := svc.Prepare(raw)
	if len(prep.Errors) > 0 {
		fmt.Println("\nThere were problems with your input:")
		for _, fieldErr := range prep.Errors {
			fmt.Printf("- %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		os.Exit(1)
	}

	if len(prep.Candidates) == 0 {
		fmt.Println("\nNo restaurants matched your criteria.")
		return
	}

	recommendations, err := svc.Recommend(context.Background(), prep.Query, prep.Candidates)
	if err != nil {
		var cfgErr *llm.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Println("\nGroq API key is not configured. Set the GROQ_API_KEY environment variable and try again.")
			fmt.Printf("Details: %v\n", cfgErr)
			os.Exit(1)
		}
		fmt.Printf("\nRecommendation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(presenter.FormatRecommendations(recommendations, presenter.DefaultMaxItems))
}

func rawQueryFromArgsOrPrompt(args []string) dto.RecommendationRequest {
	if len(args) >= 1 {
		raw := dto.RecommendationRequest{City: args[0]}
		if len(args) >= 2 {
			raw.PriceText = args[1]
		}
		return raw
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter city: ")
	city, _ := reader.ReadString('\n')

	fmt.Print("Enter your budget (number like 800, or range like 500-1200). Leave blank for no preference: ")
	priceText, _ := reader.ReadString('\n')

	return dto.RecommendationRequest{
		City:      strings.TrimSpace(city),
		PriceText: strings.TrimSpace(priceText),
	}
}
