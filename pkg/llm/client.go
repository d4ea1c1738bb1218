package llm

// Summary is the structured output of a grounded extraction: four short
// factual strings, or the literal "not stated" where the evidence is silent.
type Summary struct {
	What   string
	SoWhat string
	Who    string
	Watch  string
}

const insufficientFacts = "Insufficient facts"

// InsufficientSummary is the deterministic fallback used whenever extraction
// fails or the model returns too little to stand behind.
func InsufficientSummary() Summary {
	return Summary{
		What:   insufficientFacts,
		SoWhat: insufficientFacts,
		Who:    insufficientFacts,
		Watch:  insufficientFacts,
	}
}

func (s Summary) IsInsufficient() bool {
	return s == InsufficientSummary()
}

// Evidence is one article handed to the model. Only these four fields may
// appear in the extraction output.
type Evidence struct {
	Title  string
	Text   string
	Date   string
	Source string
}

// Extractor never returns an error: transport failures, unparseable output
// and mostly-empty summaries all collapse to InsufficientSummary.
type Extractor interface {
	Extract(topic string, evidence []Evidence) Summary
	ModelName() string
}
