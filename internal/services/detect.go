package services

import "regexp"

// languageSignature pairs a language tag with a pattern that strongly
// suggests source code in that language. Order matters: the first match wins.
type languageSignature struct {
	language string
	pattern  *regexp.Regexp
}

var languageSignatures = []languageSignature{
	{"python", regexp.MustCompile(`(?m)^\s*(?:def\s+\w+\s*\(|import\s+\w+|from\s+\w+\s+import\b|class\s+\w+\s*[:(])`)},
	{"go", regexp.MustCompile(`(?m)^\s*(?:package\s+\w+$|func\s+\w+\s*\(|func\s+\(\w+\s+\*?\w+\)|import\s+\()`)},
	{"java", regexp.MustCompile(`(?m)(?:public\s+(?:class|interface|static)\b|System\.out\.print|private\s+\w+\s+\w+\s*;)`)},
	{"csharp", regexp.MustCompile(`(?m)(?:using\s+System\b|namespace\s+[\w.]+|Console\.Write)`)},
	{"cpp", regexp.MustCompile(`(?m)(?:#include\s*[<"]|std::\w+|cout\s*<<)`)},
	{"typescript", regexp.MustCompile(`(?m)(?:interface\s+\w+\s*\{|\w+\s*:\s*(?:string|number|boolean)\b|export\s+(?:default|const|function|class)\b)`)},
	{"javascript", regexp.MustCompile(`(?m)(?:function\s+\w+\s*\(|const\s+\w+\s*=|let\s+\w+\s*=|console\.log\s*\(|=>\s*[{(]?|module\.exports|require\s*\()`)},
	{"php", regexp.MustCompile(`(?m)(?:<\?php|\$\w+\s*=\s*.+;|echo\s+["$])`)},
	{"ruby", regexp.MustCompile(`(?m)^\s*(?:require\s+['"]|puts\s+|def\s+\w+$|class\s+\w+\s*<\s*\w+)`)},
	{"sql", regexp.MustCompile(`(?im)^\s*(?:SELECT\s+[\w*,\s]+\s+FROM\b|INSERT\s+INTO\b|UPDATE\s+\w+\s+SET\b|DELETE\s+FROM\b|CREATE\s+TABLE\b|ALTER\s+TABLE\b)`)},
	{"html", regexp.MustCompile(`(?i)<(?:!DOCTYPE|html|head|body|div|span|script|table)\b[^>]*>`)},
	{"css", regexp.MustCompile(`(?m)^\s*[.#]?[\w-]+(?:\s*[,>]\s*[.#]?[\w-]+)*\s*\{\s*$`)},
}

var (
	codePunctuation = regexp.MustCompile(`[{}();]`)
	codeKeywords    = regexp.MustCompile(`\b(?:function|class|const|def|public|private)\b`)
)

// DetectCode reports whether the input looks like source code and, if so, a
// best-guess language tag. It is a heuristic, not a classifier: ties go to
// "not code".
func DetectCode(input string) (bool, string) {
	for _, sig := range languageSignatures {
		if sig.pattern.MatchString(input) {
			return true, sig.language
		}
	}

	// No signature hit. Assume code only when punctuation and at least one
	// common keyword appear together; default to a generic scripting tag.
	if codePunctuation.MatchString(input) && codeKeywords.MatchString(input) {
		return true, "javascript"
	}

	return false, ""
}
