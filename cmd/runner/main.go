package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/batch"
	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/classifier"
	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/pkg/llm"
)

// One-shot batch conversion: reads an input JSON file, classifies every
// article and writes the ordered result array. Provider failures degrade
// per-article; only a missing or malformed input file aborts the run.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <input.json> <output.json>\n", os.Args[0])
		os.Exit(1)
	}

	inPath, outPath := os.Args[1], os.Args[2]

	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("error reading input file: %v", err)
	}

	articles, err := batch.DecodeItems(data)
	if err != nil {
		log.Fatalf("invalid input file %s: %v", inPath, err)
	}

	completer, err := completerFromEnv()
	if err != nil {
		log.Fatalf("error configuring LLM provider: %v", err)
	}

	clf := classifier.New(completer, classifier.Config{})

	slog.Info("classifying batch", "items", len(articles), "model", completer.ModelName())

	results, err := clf.ClassifyBatch(context.Background(), articles)
	if err != nil {
		log.Fatalf("error classifying batch: %v", err)
	}

	out, err := batch.EncodeResults(results)
	if err != nil {
		log.Fatalf("error encoding results: %v", err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		log.Fatalf("error writing output file: %v", err)
	}

	slog.Info("batch complete", "items", len(results), "output", outPath)
}

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
