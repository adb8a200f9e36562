package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/classifier"
	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/handler"
	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	completer, err := completerFromEnv()
	if err != nil {
		log.Fatalf("error configuring LLM provider: %v", err)
	}

	workers := 1
	if w := os.Getenv("WORKERS"); w != "" {
		if parsed, err := strconv.Atoi(w); err == nil && parsed > 0 {
			workers = parsed
		} else {
			slog.Warn("invalid WORKERS value, running sequentially", "value", w)
		}
	}

	clf := classifier.New(completer, classifier.Config{Workers: workers})
	classifyHandler := handler.NewClassifyHandler(clf, completer.ModelName())

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/classify", classifyHandler.Classify)
	r.GET("/health", classifyHandler.GetHealth)

	slog.Info("starting API", "model", completer.ModelName(), "workers", workers)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// completerFromEnv builds the configured provider client. Groq (or any
// OpenAI-compatible endpoint) is the default; LLM_PROVIDER=anthropic
// switches to the Anthropic messages API.
func completerFromEnv() (llm.Completer, error) {
	model := os.Getenv("MODEL")

	switch provider := os.Getenv("LLM_PROVIDER"); provider {
	case "", "groq":
		key := os.Getenv("GROQ_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is not set")
		}
		return llm.NewGroqClient(key, model, os.Getenv("GROQ_BASE_URL")), nil
	case "anthropic":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		return llm.NewAnthropicClient(key, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}
