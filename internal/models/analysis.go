package models

// AnalysisOptions configures a single analysis request. Zero values are
// filled in by the analysis service (maxScore=100, analysisType="all").
type AnalysisOptions struct {
	Criteria     string   `json:"criteria"`     // "writing" | "academic" | "business" | "creative" | "general" | "code"
	MaxScore     int      `json:"maxScore"`
	FocusAreas   []string `json:"focusAreas"`
	Language     string   `json:"language"`
	AnalysisType string   `json:"analysisType"` // "analyze" | "correct" | "optimize" | "all"
}

// AnalysisResult is the structured form of a free-text model reply.
// Score is always within [0, maxScore]; Strengths and Improvements are never
// empty.
type AnalysisResult struct {
	Score         int         `json:"score"`
	Feedback      string      `json:"feedback"`
	Strengths     []string    `json:"strengths"`
	Improvements  []string    `json:"improvements"`
	Category      string      `json:"category,omitempty"`
	CorrectedCode string      `json:"correctedCode,omitempty"`
	OptimizedCode string      `json:"optimizedCode,omitempty"`
	CodeIssues    []CodeIssue `json:"codeIssues,omitempty"`
}

type CodeIssue struct {
	Type        string `json:"type"` // "syntax" | "logic" | "performance" | "security" | "style"
	Line        *int   `json:"line,omitempty"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // "low" | "medium" | "high" | "critical"
	Suggestion  string `json:"suggestion"`
}

type AnalyzeRequest struct {
	Text    string           `json:"text"`
	Options *AnalysisOptions `json:"options"`
}
