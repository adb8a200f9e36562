// Package batch decodes incoming article batches and encodes ordered
// results. Decoding is tolerant about item key names because upstream
// backends disagree on them; the envelope itself is strict.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/model"
)

// ErrNoItems is returned when a JSON object carries no "items" array.
var ErrNoItems = errors.New(`missing "items" key`)

// Item key candidates seen from the backend, in precedence order.
var (
	idKeys    = []string{"newsIdentifyId", "NewsItemId", "newsId", "id"}
	titleKeys = []string{"title", "newsTitle", "headline", "name"}
	bodyKeys  = []string{"contents", "content", "body", "text", "description", "desc"}
)

type envelope struct {
	Items []json.RawMessage `json:"items"`
}

// DecodeItems parses a batch request body. Accepted shapes are
// {"items":[...]} and a bare top-level array of items; anything else is an
// input format error that aborts the whole batch.
func DecodeItems(data []byte) ([]model.ArticleInput, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("empty request body: %w", ErrNoItems)
	}

	var rawItems []json.RawMessage

	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &rawItems); err != nil {
			return nil, fmt.Errorf("invalid batch input: %w", err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("invalid batch input: %w", err)
		}
		if env.Items == nil {
			return nil, ErrNoItems
		}
		rawItems = env.Items
	}

	items := make([]model.ArticleInput, 0, len(rawItems))
	for i, raw := range rawItems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("invalid item at index %d: %w", i, err)
		}
		items = append(items, model.ArticleInput{
			ID:    firstString(fields, idKeys),
			Title: firstString(fields, titleKeys),
			Body:  firstString(fields, bodyKeys),
		})
	}
	return items, nil
}

// firstString returns the first non-empty candidate value, coercing JSON
// numbers to their literal text (some backends send numeric ids).
func firstString(fields map[string]json.RawMessage, keys []string) string {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil && n.String() != "" {
			return n.String()
		}
	}
	return ""
}

// EncodeResults renders the ordered result array for a file or HTTP body.
func EncodeResults(results []model.ArticleResult) ([]byte, error) {
	if results == nil {
		results = []model.ArticleResult{}
	}
	return json.MarshalIndent(results, "", "  ")
}
