// Package heuristic decides whether selected text looks like a job posting
// and extracts coarse advisory fields from it. Everything here is pure string
// matching; authoritative parsing happens server-side.
package heuristic

import "strings"

// MinTextLength is the minimum trimmed length for text to be considered a
// job posting.
const MinTextLength = 50

// MinKeywordHits is the number of distinct keyword matches required to
// accept text as a job posting.
const MinKeywordHits = 2

// jobKeywords is the fixed vocabulary that gates job-posting detection.
// It spans role nouns, employment-type terms, and section-header nouns
// commonly found in postings. Matching is case-insensitive substring
// matching; each keyword counts at most once.
var jobKeywords = []string{
	// Role nouns
	"engineer",
	"developer",
	"manager",
	"analyst",
	"designer",
	"consultant",
	"architect",
	"specialist",
	"coordinator",
	"administrator",

	// Employment type
	"full-time",
	"part-time",
	"contract",
	"internship",
	"remote",
	"hybrid",
	"on-site",
	"permanent",
	"temporary",

	// Section headers and posting vocabulary
	"requirements",
	"responsibilities",
	"qualifications",
	"benefits",
	"salary",
	"experience",
	"skills",
	"about the role",
	"what you'll do",
	"apply",
	"candidate",
}

// IsJobPosting reports whether text looks like a job posting.
// Text is rejected when its trimmed length is below MinTextLength or when
// fewer than MinKeywordHits distinct keywords are present.
func IsJobPosting(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < MinTextLength {
		return false
	}
	return KeywordCount(trimmed) >= MinKeywordHits
}

// KeywordCount returns the number of distinct job keywords present in text.
// It is shared by manual submission and page scanning so both paths gate on
// the same vocabulary.
func KeywordCount(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}
