package llm

import "fmt"

// maxBodyRunes bounds the article body embedded in the prompt so long
// articles stay within the model's context window.
const maxBodyRunes = 7000

const systemPrompt = `You are a precise JSON generator. Never include markdown fences.`

const instructionPrompt = `너는 한국어 뉴스 분석기다. 아래 기사를 요약하고 분류하라.
- summary: 완결된 문장으로 끝맺는 3문장 이내 요약. 숫자(날짜·비율), 기관·정책명, 조치/영향을 우선 포함.
- category: [정책/정부, 산업/기업, 기술/R&D, 규제/제도, 수출/글로벌, 투자/금융, 사회, 기타] 중 1개.
- region: 기사와 관련된 행정구역명(서울, 부산, 경기 등). 특정 지역이 없으면 "전국".
- 불필요한 인용부호·이모지·머리표 금지.
JSON만 출력: {"summary":"...","category":"...","region":"..."}`

// BuildPrompt assembles the instruction prompt for one article from its
// title and cleaned body.
func BuildPrompt(title, cleanedBody string) string {
	return fmt.Sprintf("%s\n제목: %s\n본문:\n%s", instructionPrompt, title, truncateRunes(cleanedBody, maxBodyRunes))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
