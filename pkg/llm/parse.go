package llm

import (
	"encoding/json"
	"strings"
)

// Reply holds the fields extracted from one model response.
type Reply struct {
	Summary  string
	Category string
	Region   string
}

// ParseReply extracts summary, category and region from the model's raw
// response text. It first attempts a JSON decode after stripping fences and
// surrounding prose; when the content is not JSON at all it falls back to
// heuristic line splitting. The second return value is false when no
// summary could be recovered.
func ParseReply(content string) (Reply, bool) {
	cleaned := cleanJSONResponse(content)

	var parsed struct {
		Summary      string   `json:"summary"`
		SummaryLines []string `json:"summary_lines"`
		Category     string   `json:"category"`
		Region       string   `json:"region"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		// A reply that opens with a JSON object but won't decode (e.g.
		// mistyped field values) is shaped wrong; line splitting over
		// JSON text would only produce garbage summaries.
		if looksLikeJSON(content) {
			return Reply{}, false
		}
		return parseLinesReply(content)
	}

	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" && len(parsed.SummaryLines) > 0 {
		summary = joinSummaryLines(parsed.SummaryLines)
	}

	// Decoded as JSON but carries no summary: the reply is shaped wrong,
	// and line splitting over JSON text would only produce garbage.
	if summary == "" {
		return Reply{}, false
	}

	return Reply{
		Summary:  summary,
		Category: strings.TrimSpace(parsed.Category),
		Region:   strings.TrimSpace(parsed.Region),
	}, true
}

// parseLinesReply handles replies where the model ignored the JSON
// instruction: key-delimited lines win, otherwise the first three non-empty
// lines are taken positionally as summary, category, region.
func parseLinesReply(content string) (Reply, bool) {
	var lines []string
	for _, ln := range strings.Split(content, "\n") {
		ln = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(ln), "-*•"))
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return Reply{}, false
	}

	var r Reply
	var positional []string
	for _, ln := range lines {
		key, value, ok := splitKeyedLine(ln)
		if !ok {
			positional = append(positional, ln)
			continue
		}
		switch key {
		case "요약", "summary":
			if r.Summary == "" {
				r.Summary = value
			}
		case "분류", "카테고리", "category":
			if r.Category == "" {
				r.Category = value
			}
		case "지역", "region":
			if r.Region == "" {
				r.Region = value
			}
		default:
			positional = append(positional, ln)
		}
	}

	fields := []*string{&r.Summary, &r.Category, &r.Region}
	for _, ln := range positional {
		for _, f := range fields {
			if *f == "" {
				*f = ln
				break
			}
		}
	}

	if r.Summary == "" {
		return Reply{}, false
	}
	return r, true
}

func splitKeyedLine(line string) (key, value string, ok bool) {
	idx := strings.IndexAny(line, ":：")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	value = strings.TrimSpace(strings.TrimLeft(line[idx:], ":： "))
	if value == "" {
		return "", "", false
	}
	return key, value, true
}

func joinSummaryLines(lines []string) string {
	var kept []string
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			kept = append(kept, ln)
		}
		if len(kept) == 3 {
			break
		}
	}
	return strings.Join(kept, "\n")
}

// looksLikeJSON reports whether the reply, fences aside, starts with a
// JSON object. Braces embedded in free text do not count.
func looksLikeJSON(content string) bool {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	return strings.HasPrefix(strings.TrimSpace(content), "{")
}

// cleanJSONResponse strips markdown fences and surrounding prose so only
// the outermost JSON object remains.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
