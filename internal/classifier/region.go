package classifier

import (
	"strings"

	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/model"
)

// First-level administrative regions, base form.
var regionNames = []string{
	"서울", "부산", "대구", "인천", "광주", "대전", "울산",
	"세종", "경기", "강원", "충북", "충남", "전북", "전남",
	"경북", "경남", "제주",
}

type regionAlias struct {
	alias string
	base  string
}

// Common spellings mapped to the base form. Kept as an ordered list so
// detectRegion resolves multi-region articles deterministically: the first
// declared alias present in the text wins.
var regionAliasList = []regionAlias{
	{"서울시", "서울"},
	{"서울특별시", "서울"},
	{"부산시", "부산"},
	{"대구시", "대구"},
	{"인천시", "인천"},
	{"광주시", "광주"},
	{"대전시", "대전"},
	{"울산시", "울산"},
	{"세종시", "세종"},
	{"경기도", "경기"},
	{"강원도", "강원"},
	{"충청북도", "충북"},
	{"충청남도", "충남"},
	{"전라북도", "전북"},
	{"전라남도", "전남"},
	{"경상북도", "경북"},
	{"경상남도", "경남"},
	{"제주도", "제주"},
	{"수도권", "경기"},
}

var regionAliases = func() map[string]string {
	m := make(map[string]string, len(regionAliasList))
	for _, a := range regionAliasList {
		m[a.alias] = a.base
	}
	return m
}()

// normalizeRegion maps a model-provided region token to its base form.
// Unknown but non-empty tokens are kept as-is.
func normalizeRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return ""
	}
	if base, ok := regionAliases[region]; ok {
		return base
	}
	return region
}

// detectRegion scans article text for region mentions, aliases first so
// "충청북도" wins over the bare "충북" keyword. Returns 전국 when nothing
// matches.
func detectRegion(text string) string {
	for _, a := range regionAliasList {
		if strings.Contains(text, a.alias) {
			return a.base
		}
	}
	for _, name := range regionNames {
		if strings.Contains(text, name) {
			return name
		}
	}
	return model.FallbackRegion
}
