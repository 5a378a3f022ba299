package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"textlens-backend/internal/models"
)

// The parser turns a free-text model reply into an AnalysisResult. It is
// best-effort by design: malformed replies degrade into the documented
// fallback instead of surfacing an error. Parsing never returns nil.

var (
	scorePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)score:\s*(\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*\d+`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s+out\s+of\s+\d+`),
	}

	bulletPrefix = regexp.MustCompile(`^(?:[-•]|\d+\.)\s*`)

	correctedBlock = regexp.MustCompile("(?is)CORRECTED_CODE:\\s*```[\\w+#-]*\\r?\\n?(.*?)```")
	optimizedBlock = regexp.MustCompile("(?is)OPTIMIZED_CODE:\\s*```[\\w+#-]*\\r?\\n?(.*?)```")

	codeIssueLine = regexp.MustCompile(`(?i)TYPE:\s*(\w+)\s*\|\s*SEVERITY:\s*(\w+)\s*\|\s*LINE:\s*([^|]*)\|\s*DESCRIPTION:\s*([^|]*)\|\s*SUGGESTION:\s*(.+)`)

	anyNumber = regexp.MustCompile(`\d+`)
)

var sectionMarkers = []string{
	"score:", "category:", "feedback:", "strengths:", "improvements:",
	"corrected_code:", "optimized_code:", "code_issues:",
}

const (
	defaultStrength    = "Content was received and reviewed"
	defaultImprovement = "Resubmit for a more detailed breakdown"
	fallbackFeedback   = "The analysis completed but parsing encountered issues. The raw reply did not follow the expected format."
	fallbackScore      = 50
)

func parseTextAnalysisResponse(raw string, maxScore int) (result *models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = fallbackResult(raw, maxScore)
		}
	}()

	lines := responseLines(raw)

	result = &models.AnalysisResult{
		Score:        parseScore(lines, maxScore),
		Category:     parseCategory(lines),
		Feedback:     parseFeedback(lines),
		Strengths:    parseBulletSection(lines, "strengths:"),
		Improvements: parseBulletSection(lines, "improvements:"),
	}

	applySectionDefaults(result)
	return result
}

func parseCodeAnalysisResponse(raw string, maxScore int) (result *models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = fallbackResult(raw, maxScore)
		}
	}()

	lines := responseLines(raw)

	result = &models.AnalysisResult{
		Score:        parseScore(lines, maxScore),
		Category:     parseCategory(lines),
		Feedback:     parseFeedback(lines),
		Strengths:    parseBulletSection(lines, "strengths:"),
		Improvements: parseBulletSection(lines, "improvements:"),
		CodeIssues:   parseCodeIssues(lines),
	}

	if m := correctedBlock.FindStringSubmatch(raw); m != nil {
		result.CorrectedCode = strings.TrimSpace(m[1])
	}
	if m := optimizedBlock.FindStringSubmatch(raw); m != nil {
		result.OptimizedCode = strings.TrimSpace(m[1])
	}

	applySectionDefaults(result)
	return result
}

// responseLines splits the reply into trimmed, non-empty lines.
func responseLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func isSectionMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, m := range sectionMarkers {
		if strings.HasPrefix(lower, m) {
			return true
		}
	}
	return false
}

// parseScore scans lines in order and stops at the first nonzero score. An
// explicit "SCORE: 0" keeps the scan going, so a later nonzero token can
// overwrite it. When no pattern matches anywhere the score defaults to 50.
func parseScore(lines []string, maxScore int) int {
	score := 0
	found := false
	for _, line := range lines {
		for _, p := range scorePatterns {
			m := p.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			n, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			score = clampScore(n, maxScore)
			found = true
			break
		}
		if score != 0 {
			break
		}
	}
	if !found {
		return clampScore(fallbackScore, maxScore)
	}
	return score
}

func clampScore(n float64, maxScore int) int {
	s := int(math.Round(n))
	if s < 0 {
		return 0
	}
	if s > maxScore {
		return maxScore
	}
	return s
}

func parseCategory(lines []string) string {
	for _, line := range lines {
		if lower := strings.ToLower(line); strings.HasPrefix(lower, "category:") {
			return strings.TrimSpace(line[len("category:"):])
		}
	}
	return ""
}

// parseFeedback joins lines from the FEEDBACK: marker up to the next known
// section marker.
func parseFeedback(lines []string) string {
	var parts []string
	collecting := false

	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "feedback:") {
			collecting = true
			if rest := strings.TrimSpace(line[len("feedback:"):]); rest != "" {
				parts = append(parts, rest)
			}
			continue
		}
		if collecting {
			if isSectionMarker(line) {
				break
			}
			parts = append(parts, line)
		}
	}

	return strings.Join(parts, " ")
}

// parseBulletSection collects bullet-style lines ("- ", "• ", "1. ") after
// the given marker, stopping at the next section marker. Non-bullet lines in
// between are ignored.
func parseBulletSection(lines []string, marker string) []string {
	var items []string
	collecting := false

	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, marker) {
			collecting = true
			continue
		}
		if collecting {
			if isSectionMarker(line) {
				break
			}
			if !bulletPrefix.MatchString(line) {
				continue
			}
			if item := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, "")); item != "" {
				items = append(items, item)
			}
		}
	}

	return items
}

// parseCodeIssues reads bullet lines after CODE_ISSUES: against the fixed
// five-field pipe layout. Non-conforming bullets are dropped silently.
func parseCodeIssues(lines []string) []models.CodeIssue {
	var issues []models.CodeIssue
	collecting := false

	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "code_issues:") {
			collecting = true
			continue
		}
		if !collecting {
			continue
		}
		if isSectionMarker(line) {
			break
		}
		if !bulletPrefix.MatchString(line) {
			continue
		}

		m := codeIssueLine.FindStringSubmatch(bulletPrefix.ReplaceAllString(line, ""))
		if m == nil {
			continue
		}

		issue := models.CodeIssue{
			Type:        strings.ToLower(m[1]),
			Severity:    strings.ToLower(m[2]),
			Description: strings.TrimSpace(m[4]),
			Suggestion:  strings.TrimSpace(m[5]),
		}
		if n, err := strconv.Atoi(strings.TrimSpace(m[3])); err == nil {
			issue.Line = &n
		}
		issues = append(issues, issue)
	}

	return issues
}

// applySectionDefaults guarantees non-empty strengths/improvements lists.
func applySectionDefaults(result *models.AnalysisResult) {
	if len(result.Strengths) == 0 {
		result.Strengths = []string{defaultStrength}
	}
	if len(result.Improvements) == 0 {
		result.Improvements = []string{defaultImprovement}
	}
}

// fallbackResult is the last-resort shape when structured parsing blew up:
// a single regex scan for any number, defaulting to 50.
func fallbackResult(raw string, maxScore int) *models.AnalysisResult {
	score := clampScore(fallbackScore, maxScore)
	if m := anyNumber.FindString(raw); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			score = clampScore(float64(n), maxScore)
		}
	}

	return &models.AnalysisResult{
		Score:        score,
		Feedback:     fallbackFeedback,
		Strengths:    []string{defaultStrength},
		Improvements: []string{defaultImprovement},
	}
}
