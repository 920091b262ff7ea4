package types

// SourceMethod identifies which extraction strategy produced a candidate
type SourceMethod string

// Extraction strategies
const (
	SourceHeuristic SourceMethod = "heuristic"
	SourceAI        SourceMethod = "ai"
)

// ParseMethod identifies how the final result was produced. Callers branch
// on these values, so they must not be renamed.
type ParseMethod string

// Parse methods reported in ReconciliationResult
const (
	MethodHeuristic  ParseMethod = "heuristic"
	MethodAIEnhanced ParseMethod = "ai-enhanced"
	MethodFallback   ParseMethod = "fallback"
)

// ExtractionCandidate wraps a StructuredResume with extraction provenance.
// Candidates exist transiently during reconciliation.
type ExtractionCandidate struct {
	Resume       *StructuredResume `json:"resume"`
	Confidence   float64           `json:"confidence"`
	SourceMethod SourceMethod      `json:"source_method"`
	Warnings     []string          `json:"warnings"`
}

// ReconciliationResult is the externally visible result of the whole
// pipeline. The JSON field names are a stable contract with callers.
type ReconciliationResult struct {
	Resume           *StructuredResume `json:"resume"`
	Confidence       float64           `json:"confidence"`
	Method           ParseMethod       `json:"method"`
	Improvements     []string          `json:"improvements"`
	Warnings         []string          `json:"warnings"`
	ValidationErrors []string          `json:"validationErrors"`
	ProcessingTimeMs int64             `json:"processingTimeMs"`
}
