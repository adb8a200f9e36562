// Package classifier drives per-article summarization and classification
// through an LLM provider, degrading to a fallback result when the call or
// the reply parse fails.
package classifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go"

	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/model"
	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/pkg/llm"
	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/pkg/textclean"
)

const (
	defaultMaxAttempts = 2
	defaultRetryDelay  = 800 * time.Millisecond
)

type Config struct {
	// Workers > 1 classifies articles concurrently; results keep input order.
	Workers int
	// MaxAttempts bounds provider calls per article, retries included.
	MaxAttempts int
	RetryDelay  time.Duration
}

type Classifier struct {
	completer llm.Completer
	cfg       Config
}

func New(completer llm.Completer, cfg Config) *Classifier {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	return &Classifier{completer: completer, cfg: cfg}
}

// Classify summarizes and classifies one article. Provider errors and
// unparseable replies never escape: the article degrades to the fallback
// result with its ID preserved.
func (c *Classifier) Classify(ctx context.Context, article model.ArticleInput) model.ArticleResult {
	cleaned := textclean.Clean(article.Body)
	prompt := llm.BuildPrompt(article.Title, cleaned)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		slog.Error("provider call failed, using fallback", "article_id", article.ID, "error", err)
		return model.Fallback(article.ID)
	}

	reply, ok := llm.ParseReply(content)
	if !ok {
		slog.Warn("unparseable model reply, using fallback", "article_id", article.ID)
		return model.Fallback(article.ID)
	}

	category := reply.Category
	if category == "" {
		category = model.FallbackCategory
	}

	region := normalizeRegion(reply.Region)
	if region == "" {
		region = detectRegion(article.Title + "\n" + cleaned)
	}

	return model.ArticleResult{
		ID:       article.ID,
		Summary:  reply.Summary,
		Category: category,
		Region:   region,
	}
}

func (c *Classifier) complete(ctx context.Context, prompt string) (string, error) {
	var content string
	err := retry.Do(
		func() error {
			var err error
			content, err = c.completer.Complete(ctx, prompt)
			return err
		},
		retry.Attempts(uint(c.cfg.MaxAttempts)),
		retry.Delay(c.cfg.RetryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	return content, err
}

// ClassifyBatch classifies every article and returns results in input
// order; output[i].ID == input[i].ID. One article's failure does not stop
// the rest. It returns an error only when ctx is cancelled, in which case
// no partial results are surfaced.
func (c *Classifier) ClassifyBatch(ctx context.Context, articles []model.ArticleInput) ([]model.ArticleResult, error) {
	results := make([]model.ArticleResult, len(articles))

	if c.cfg.Workers <= 1 {
		for i, article := range articles {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = c.Classify(ctx, article)
		}
		return results, nil
	}

	sem := make(chan struct{}, c.cfg.Workers)
	var wg sync.WaitGroup
	for i, article := range articles {
		wg.Add(1)
		go func(i int, article model.ArticleInput) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = c.Classify(ctx, article)
		}(i, article)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
