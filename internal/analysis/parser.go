// Package analysis drives one analysis cycle against the external service
// and turns its untrusted text response back into per-node results.
package analysis

import (
	"encoding/json"
	"regexp"
	"strings"

	"specmap/internal/domain"
)

// fallbackSummaryLimit bounds how much of an unparsable response is kept
// in the synthesized fallback result.
const fallbackSummaryLimit = 200

var codeFenceRe = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")

// analysisResponse is the structured shape the service is asked to return.
type analysisResponse struct {
	Entries []domain.AnalysisResult `json:"entries"`
}

// ParseResponse parses the raw service response. It strips an optional
// markdown code fence, then attempts strict JSON parsing. A response that
// cannot be parsed never fails the scan: it degrades to a single result
// with status unknown carrying the start of the raw text, so one bad model
// reply costs one unknown item instead of the whole run.
func ParseResponse(raw string) []domain.AnalysisResult {
	text := strings.TrimSpace(raw)
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		text = strings.TrimSpace(matches[1])
	}

	var resp analysisResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return []domain.AnalysisResult{{
			Status:  domain.StatusUnknown,
			Summary: truncate(raw, fallbackSummaryLimit),
		}}
	}

	for i := range resp.Entries {
		if !resp.Entries[i].Status.Valid() {
			resp.Entries[i].Status = domain.StatusUnknown
		}
	}
	return resp.Entries
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
