package services

import (
	"fmt"
	"strings"

	"textlens-backend/internal/models"
)

// Prompt builders are pure: same inputs, same string. The reply layout is
// pinned so the parser can rely on the section markers.

var criteriaInstructions = map[string]string{
	"writing":  "Evaluate the writing quality: clarity, grammar, structure, flow, and word choice. Score strictly against professional writing standards.",
	"academic": "Evaluate as an academic reviewer: argument strength, evidence, citations, formality, and logical structure.",
	"business": "Evaluate as a business communication expert: conciseness, professionalism, persuasiveness, and audience awareness.",
	"creative": "Evaluate as a creative writing critic: voice, imagery, originality, pacing, and emotional impact.",
	"general":  "Evaluate the overall quality of the text: clarity, coherence, accuracy, and completeness.",
}

func buildTextAnalysisPrompt(text string, opts models.AnalysisOptions) string {
	var b strings.Builder

	instruction, ok := criteriaInstructions[opts.Criteria]
	if !ok {
		instruction = criteriaInstructions["general"]
	}

	b.WriteString("You are an expert reviewer providing structured, actionable feedback.\n\n")
	b.WriteString(instruction)
	b.WriteString("\n\n")

	if len(opts.FocusAreas) > 0 {
		b.WriteString(fmt.Sprintf("Pay particular attention to: %s.\n\n", strings.Join(opts.FocusAreas, ", ")))
	}

	b.WriteString(fmt.Sprintf("Respond in EXACTLY this format:\n\nSCORE: <number between 0 and %d>\nCATEGORY: <one or two word category for this text>\nFEEDBACK: <two to four sentences of overall feedback>\nSTRENGTHS:\n- <strength>\n- <strength>\nIMPROVEMENTS:\n- <improvement>\n- <improvement>\n", opts.MaxScore))

	b.WriteString("\n---TEXT START---\n")
	b.WriteString(text)
	b.WriteString("\n---TEXT END---\n")

	return b.String()
}

func buildCodeAnalysisPrompt(code string, opts models.AnalysisOptions, language string) string {
	var b strings.Builder

	b.WriteString("You are an expert code reviewer providing structured, actionable feedback.\n\n")

	switch opts.AnalysisType {
	case "correct":
		b.WriteString("Task: find defects and provide a corrected version of the code.\n")
	case "optimize":
		b.WriteString("Task: find inefficiencies and provide an optimized version of the code.\n")
	case "analyze":
		b.WriteString("Task: review the code and report issues. Do not rewrite it.\n")
	default: // "all"
		b.WriteString("Task: review the code, report issues, and provide both a corrected and an optimized version.\n")
	}

	if language != "" {
		b.WriteString(fmt.Sprintf("Language: %s\n", language))
	}
	if len(opts.FocusAreas) > 0 {
		b.WriteString(fmt.Sprintf("Pay particular attention to: %s.\n", strings.Join(opts.FocusAreas, ", ")))
	}

	b.WriteString(fmt.Sprintf("\nRespond in EXACTLY this format:\n\nSCORE: <number between 0 and %d>\nCATEGORY: <one or two word category, e.g. the detected language or code domain>\nFEEDBACK: <two to four sentences of overall feedback>\nSTRENGTHS:\n- <strength>\n- <strength>\nIMPROVEMENTS:\n- <improvement>\n- <improvement>\n", opts.MaxScore))

	fence := "```"
	if opts.AnalysisType == "correct" || opts.AnalysisType == "all" {
		b.WriteString(fmt.Sprintf("CORRECTED_CODE:\n%s%s\n<full corrected code>\n%s\n", fence, language, fence))
	}
	if opts.AnalysisType == "optimize" || opts.AnalysisType == "all" {
		b.WriteString(fmt.Sprintf("OPTIMIZED_CODE:\n%s%s\n<full optimized code>\n%s\n", fence, language, fence))
	}

	b.WriteString("CODE_ISSUES:\n- TYPE: <syntax|logic|performance|security|style> | SEVERITY: <low|medium|high|critical> | LINE: <line number> | DESCRIPTION: <what is wrong> | SUGGESTION: <how to fix it>\n")

	b.WriteString("\n---CODE START---\n")
	b.WriteString(code)
	b.WriteString("\n---CODE END---\n")

	return b.String()
}
