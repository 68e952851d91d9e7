// Package score implements the deterministic quality heuristic used to rank
// candidate domains. Score is a pure function of (domain, prompt): no
// clock, randomness, or external state, so results are safe to cache
// indefinitely.
package score

import (
	"math"
	"strings"

	"github.com/domainforge/domainforge/internal/core"
)

// Fixed sub-score weights. They sum to 1.0.
const (
	weightLength       = 0.30
	weightMemorability = 0.25
	weightBrandability = 0.20
	weightExtension    = 0.15
	weightRelevance    = 0.10
)

// extensionScores ranks extensions by commercial desirability. Unknown
// extensions score 40.
var extensionScores = map[string]int{
	"com":  100,
	"net":  85,
	"org":  80,
	"io":   75,
	"co":   70,
	"dev":  65,
	"app":  60,
	"tech": 55,
	"biz":  50,
	"info": 45,
}

var (
	genericPrefixes = []string{"the", "get", "my"}
	genericSuffixes = []string{"app", "tech", "pro"}
)

// Score computes the quality score for a candidate domain against the
// originating prompt.
func Score(domain, prompt string) *core.QualityScore {
	stem, ext, err := core.SplitDomain(domain)
	if err != nil {
		stem = strings.ToLower(strings.TrimSpace(domain))
		ext = ""
	}
	// Multi-label stems are scored on their joined letters.
	stem = strings.ReplaceAll(stem, ".", "")

	breakdown := core.QualityBreakdown{
		Length:       lengthScore(stem),
		Memorability: memorabilityScore(stem),
		Brandability: brandabilityScore(stem),
		Extension:    extensionScore(ext),
		Relevance:    relevanceScore(stem, prompt),
	}

	overall := int(math.Round(
		float64(breakdown.Length)*weightLength +
			float64(breakdown.Memorability)*weightMemorability +
			float64(breakdown.Brandability)*weightBrandability +
			float64(breakdown.Extension)*weightExtension +
			float64(breakdown.Relevance)*weightRelevance))
	overall = clamp(overall)

	grade, label := GradeFor(overall)

	return &core.QualityScore{
		Overall:   overall,
		Breakdown: breakdown,
		Grade:     grade,
		Label:     label,
	}
}

// lengthScore peaks for 4-6 character stems and decays on both sides, with
// a floor of 15 for very long names.
func lengthScore(stem string) int {
	n := len(stem)
	switch {
	case n == 0:
		return 0
	case n < 3:
		return 20 * n
	case n == 3:
		return 75
	case n <= 6:
		return 100
	default:
		score := 100 - (n-6)*8
		if score < 15 {
			score = 15
		}
		return score
	}
}

func memorabilityScore(stem string) int {
	if stem == "" {
		return 0
	}
	score := 50

	if containsCommonWord(stem) {
		score += 15
	}

	vowels := 0
	for _, r := range stem {
		if isVowel(r) {
			vowels++
		}
	}
	ratio := float64(vowels) / float64(len(stem))
	if ratio >= 0.3 && ratio <= 0.5 {
		score += 15
	}

	if maxConsonantRun(stem) >= 3 {
		score -= 15
	}

	switch doubledLetterRuns(stem) {
	case 0:
	case 1:
		score += 10
	default:
		score -= 10
	}

	if len(stem) >= 4 && isAlternating(stem) {
		score += 10
	}

	return clamp(score)
}

func brandabilityScore(stem string) int {
	if stem == "" {
		return 0
	}
	score := 70

	if strings.ContainsAny(stem, "0123456789") {
		score -= 20
	}
	if strings.ContainsAny(stem, "-_") {
		score -= 15
	}

	unique := make(map[rune]struct{}, len(stem))
	for _, r := range stem {
		unique[r] = struct{}{}
	}
	uniqueRatio := float64(len(unique)) / float64(len(stem))
	if uniqueRatio > 0.7 {
		score += 10
	} else if uniqueRatio < 0.4 {
		score -= 15
	}

	if isPortmanteau(stem) {
		score += 15
	}

	for _, prefix := range genericPrefixes {
		if strings.HasPrefix(stem, prefix) && len(stem) > len(prefix) {
			score -= 10
			break
		}
	}
	for _, suffix := range genericSuffixes {
		if strings.HasSuffix(stem, suffix) && len(stem) > len(suffix) {
			score -= 10
			break
		}
	}

	return clamp(score)
}

func extensionScore(ext string) int {
	if value, ok := extensionScores[ext]; ok {
		return value
	}
	return 40
}

func relevanceScore(stem, prompt string) int {
	score := 30

	keywords := promptKeywords(prompt)
	for _, keyword := range keywords {
		if strings.Contains(stem, keyword) {
			contribution := 4 * len(keyword)
			if contribution > 20 {
				contribution = 20
			}
			score += contribution
			continue
		}
		// Partial credit for a 4-character prefix match.
		if len(keyword) >= 4 && strings.Contains(stem, keyword[:4]) {
			score += 5
		}
	}

	if cluster := clusterFor(keywords); cluster != "" && cluster == stemCluster(stem) {
		score += 15
	}

	return clamp(score)
}

// promptKeywords extracts lowercase keywords of at least three characters,
// preserving prompt order for determinism.
func promptKeywords(prompt string) []string {
	fields := strings.FieldsFunc(strings.ToLower(prompt), func(r rune) bool {
		return !isLetterOrDigit(r)
	})
	keywords := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if len(field) < 3 {
			continue
		}
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		keywords = append(keywords, field)
	}
	return keywords
}

// stemCluster returns the first topic cluster whose vocabulary appears
// inside the stem.
func stemCluster(stem string) string {
	for _, cluster := range topicClusters {
		for _, word := range cluster.words {
			if len(word) >= 3 && strings.Contains(stem, word) {
				return cluster.name
			}
		}
	}
	return ""
}

func containsCommonWord(stem string) bool {
	if isCommonWord(stem) {
		return true
	}
	for i := 0; i < len(stem); i++ {
		for j := i + 3; j <= len(stem); j++ {
			if isCommonWord(stem[i:j]) {
				return true
			}
		}
	}
	return false
}

// isPortmanteau reports whether the stem splits into two halves where
// either half is a known word.
func isPortmanteau(stem string) bool {
	for i := 3; i <= len(stem)-3; i++ {
		if isCommonWord(stem[:i]) || isCommonWord(stem[i:]) {
			return true
		}
	}
	return false
}

func maxConsonantRun(stem string) int {
	run, longest := 0, 0
	for _, r := range stem {
		if isLetter(r) && !isVowel(r) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

func doubledLetterRuns(stem string) int {
	runs := 0
	for i := 1; i < len(stem); i++ {
		if stem[i] == stem[i-1] {
			runs++
			// Skip the rest of this run so triples count once.
			for i+1 < len(stem) && stem[i+1] == stem[i] {
				i++
			}
		}
	}
	return runs
}

// isAlternating reports a strict vowel/consonant alternation over letters.
func isAlternating(stem string) bool {
	prev := rune(0)
	first := true
	for _, r := range stem {
		if !isLetter(r) {
			return false
		}
		if !first && isVowel(r) == isVowel(prev) {
			return false
		}
		prev = r
		first = false
	}
	return true
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isLetterOrDigit(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9')
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
