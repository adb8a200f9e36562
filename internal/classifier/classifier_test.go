package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/model"
)

type fakeCompleter struct {
	reply string
	err   error
	calls atomic.Int32
	// replyFor overrides reply per prompt when set.
	replyFor func(prompt string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.replyFor != nil {
		return f.replyFor(prompt)
	}
	return f.reply, f.err
}

func (f *fakeCompleter) ModelName() string { return "fake-model" }

func testConfig() Config {
	return Config{MaxAttempts: 2, RetryDelay: time.Millisecond}
}

func TestClassifyParsedReply(t *testing.T) {
	completer := &fakeCompleter{
		reply: `{"summary":"정부가 지원책을 발표했다.","category":"정책/정부","region":"서울"}`,
	}
	clf := New(completer, testConfig())

	got := clf.Classify(context.Background(), model.ArticleInput{
		ID:    "148946998",
		Title: "테스트 제목",
		Body:  "<p>여기는 본문 내용입니다</p>",
	})

	if got.ID != "148946998" {
		t.Errorf("id = %q", got.ID)
	}
	if got.Summary != "정부가 지원책을 발표했다." {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.Category != "정책/정부" {
		t.Errorf("category = %q", got.Category)
	}
	if got.Region != "서울" {
		t.Errorf("region = %q", got.Region)
	}
}

func TestClassifyProviderErrorFallsBack(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection timed out")}
	clf := New(completer, testConfig())

	got := clf.Classify(context.Background(), model.ArticleInput{ID: "148946998", Title: "테스트 제목", Body: "여기는 본문 내용입니다"})

	want := model.Fallback("148946998")
	if got != want {
		t.Errorf("got %+v, want fallback %+v", got, want)
	}
	if completer.calls.Load() != 2 {
		t.Errorf("provider called %d times, want 2 attempts", completer.calls.Load())
	}
}

func TestClassifyUnparseableReplyFallsBack(t *testing.T) {
	completer := &fakeCompleter{reply: "{}"}
	clf := New(completer, testConfig())

	got := clf.Classify(context.Background(), model.ArticleInput{ID: "42", Body: "본문"})

	if got != model.Fallback("42") {
		t.Errorf("got %+v, want fallback", got)
	}
}

func TestClassifyRegionAliasNormalized(t *testing.T) {
	completer := &fakeCompleter{
		reply: `{"summary":"요약이다.","category":"사회","region":"충청북도"}`,
	}
	clf := New(completer, testConfig())

	got := clf.Classify(context.Background(), model.ArticleInput{ID: "1", Body: "본문"})

	if got.Region != "충북" {
		t.Errorf("region = %q, want 충북", got.Region)
	}
}

func TestClassifyMissingRegionDetectedFromText(t *testing.T) {
	completer := &fakeCompleter{
		reply: `{"summary":"요약이다.","category":"사회"}`,
	}
	clf := New(completer, testConfig())

	got := clf.Classify(context.Background(), model.ArticleInput{
		ID:    "1",
		Title: "부산 항만 확장",
		Body:  "부산에서 항만 확장 공사가 시작됐다.",
	})

	if got.Region != "부산" {
		t.Errorf("region = %q, want 부산", got.Region)
	}
}

func TestClassifyMissingRegionDefaultsNationwide(t *testing.T) {
	completer := &fakeCompleter{
		reply: `{"summary":"요약이다.","category":"사회"}`,
	}
	clf := New(completer, testConfig())

	got := clf.Classify(context.Background(), model.ArticleInput{ID: "1", Body: "특정 지역 언급 없음"})

	if got.Region != model.FallbackRegion {
		t.Errorf("region = %q, want %q", got.Region, model.FallbackRegion)
	}
}

func TestClassifyMissingCategoryFallsBack(t *testing.T) {
	completer := &fakeCompleter{
		reply: `{"summary":"요약이다.","region":"서울"}`,
	}
	clf := New(completer, testConfig())

	got := clf.Classify(context.Background(), model.ArticleInput{ID: "1", Body: "본문"})

	if got.Category != model.FallbackCategory {
		t.Errorf("category = %q, want %q", got.Category, model.FallbackCategory)
	}
	if got.Summary != "요약이다." {
		t.Errorf("summary = %q, parsed fields should be kept", got.Summary)
	}
}

func batchInput(n int) []model.ArticleInput {
	articles := make([]model.ArticleInput, n)
	for i := range articles {
		articles[i] = model.ArticleInput{
			ID:    fmt.Sprintf("id-%d", i),
			Title: fmt.Sprintf("제목 %d", i),
			Body:  fmt.Sprintf("본문 %d", i),
		}
	}
	return articles
}

func TestClassifyBatchPreservesOrderAndIDs(t *testing.T) {
	completer := &fakeCompleter{
		replyFor: func(prompt string) (string, error) {
			return `{"summary":"요약이다.","category":"사회","region":"전국"}`, nil
		},
	}
	clf := New(completer, testConfig())

	articles := batchInput(7)
	results, err := clf.ClassifyBatch(context.Background(), articles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(articles) {
		t.Fatalf("got %d results, want %d", len(results), len(articles))
	}
	for i := range articles {
		if results[i].ID != articles[i].ID {
			t.Errorf("results[%d].ID = %q, want %q", i, results[i].ID, articles[i].ID)
		}
	}
}

func TestClassifyBatchReorderLaw(t *testing.T) {
	completer := &fakeCompleter{
		replyFor: func(prompt string) (string, error) {
			// Echo a fragment of the prompt so each article gets a distinct summary.
			if strings.Contains(prompt, "본문 2") {
				return `{"summary":"둘째 요약.","category":"사회","region":"전국"}`, nil
			}
			return `{"summary":"기본 요약.","category":"사회","region":"전국"}`, nil
		},
	}
	clf := New(completer, testConfig())

	articles := batchInput(3)
	forward, err := clf.ClassifyBatch(context.Background(), articles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reversed := []model.ArticleInput{articles[2], articles[1], articles[0]}
	backward, err := clf.ClassifyBatch(context.Background(), reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range reversed {
		if backward[i] != forward[len(forward)-1-i] {
			t.Errorf("backward[%d] = %+v, want %+v", i, backward[i], forward[len(forward)-1-i])
		}
	}
}

func TestClassifyBatchOneFailureDoesNotAbort(t *testing.T) {
	completer := &fakeCompleter{
		replyFor: func(prompt string) (string, error) {
			if strings.Contains(prompt, "본문 1") {
				return "", errors.New("provider unavailable")
			}
			return `{"summary":"요약이다.","category":"사회","region":"전국"}`, nil
		},
	}
	clf := New(completer, Config{MaxAttempts: 1})

	articles := batchInput(3)
	results, err := clf.ClassifyBatch(context.Background(), articles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[1] != model.Fallback("id-1") {
		t.Errorf("results[1] = %+v, want fallback", results[1])
	}
	for _, i := range []int{0, 2} {
		if results[i].Category == model.FallbackCategory {
			t.Errorf("results[%d] degraded, want parsed result", i)
		}
	}
}

func TestClassifyBatchWorkerPoolKeepsOrder(t *testing.T) {
	completer := &fakeCompleter{
		replyFor: func(prompt string) (string, error) {
			return `{"summary":"요약이다.","category":"사회","region":"전국"}`, nil
		},
	}
	clf := New(completer, Config{Workers: 4, MaxAttempts: 1})

	articles := batchInput(20)
	results, err := clf.ClassifyBatch(context.Background(), articles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(articles) {
		t.Fatalf("got %d results, want %d", len(results), len(articles))
	}
	for i := range articles {
		if results[i].ID != articles[i].ID {
			t.Errorf("results[%d].ID = %q, want %q", i, results[i].ID, articles[i].ID)
		}
	}
}

func TestClassifyBatchCancelledReturnsNoPartialOutput(t *testing.T) {
	completer := &fakeCompleter{
		replyFor: func(prompt string) (string, error) {
			return `{"summary":"요약이다.","category":"사회","region":"전국"}`, nil
		},
	}
	clf := New(completer, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := clf.ClassifyBatch(ctx, batchInput(3))
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if results != nil {
		t.Errorf("got partial results %+v, want nil", results)
	}
}

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"서울특별시", "서울"},
		{"경기도", "경기"},
		{"수도권", "경기"},
		{" 제주도 ", "제주"},
		{"대전", "대전"},
		{"실리콘밸리", "실리콘밸리"}, // unknown tokens pass through
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeRegion(tt.input); got != tt.want {
			t.Errorf("normalizeRegion(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetectRegion(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"전라남도 여수시에서 행사가 열렸다", "전남"},
		{"인천 공항 확장", "인천"},
		{"수도권 교통 대책", "경기"},
		{"지역 언급이 전혀 없는 기사", model.FallbackRegion},
	}

	for _, tt := range tests {
		if got := detectRegion(tt.text); got != tt.want {
			t.Errorf("detectRegion(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectRegionMultipleAliasesDeterministic(t *testing.T) {
	// 서울시 is declared before 경기도 in the alias list, so it must win
	// on every run regardless of map iteration order.
	text := "서울시와 경기도가 공동으로 정책을 발표했다"

	for i := 0; i < 200; i++ {
		if got := detectRegion(text); got != "서울" {
			t.Fatalf("detectRegion(%q) = %q on call %d, want 서울", text, got, i)
		}
	}
}
