package heuristic

import (
	"regexp"
	"strings"
)

// Summary holds coarse fields extracted from selected text. Extraction is
// best-effort: any field that cannot be matched is left as the empty string.
// The summary is advisory output for display; it is never sent to the remote
// service in place of the raw text.
type Summary struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	TextLength   int    `json:"text_length"`
	KeywordCount int    `json:"keyword_count"`
}

var (
	titleRe    = regexp.MustCompile(`(?i)\b(?:job title|position|role)\s*:\s*([^\n]+)`)
	companyRe  = regexp.MustCompile(`(?i)\b(?:company|employer|organization)\s*:\s*([^\n]+)`)
	locationRe = regexp.MustCompile(`(?i)\b(?:location|based in|office)\s*:\s*([^\n]+)`)
	salaryRe   = regexp.MustCompile(`(?i)\$\d[\d,]*(?:\.\d+)?k?(?:\s*[-–]\s*\$?\d[\d,]*(?:\.\d+)?k?)?(?:\s*(?:thousand|per\s+year|annually))?`)
)

// ExtractKeyInfo extracts a Summary from selected text in a single pass.
// Title falls back to the first line when no labeled prefix is present.
func ExtractKeyInfo(text string) Summary {
	trimmed := strings.TrimSpace(text)

	summary := Summary{
		TextLength:   len(trimmed),
		KeywordCount: KeywordCount(trimmed),
	}
	if trimmed == "" {
		return summary
	}

	if m := titleRe.FindStringSubmatch(trimmed); m != nil {
		summary.Title = strings.TrimSpace(m[1])
	} else {
		firstLine, _, _ := strings.Cut(trimmed, "\n")
		summary.Title = strings.TrimSpace(firstLine)
	}

	if m := companyRe.FindStringSubmatch(trimmed); m != nil {
		summary.Company = strings.TrimSpace(m[1])
	}

	if m := locationRe.FindStringSubmatch(trimmed); m != nil {
		summary.Location = strings.TrimSpace(m[1])
	}

	if m := salaryRe.FindString(trimmed); m != "" {
		summary.Salary = strings.TrimSpace(m)
	}

	return summary
}
