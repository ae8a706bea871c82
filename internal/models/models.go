package models

// Readability holds the seven classical indices. Values are unclamped and may be negative or
// exceed 100 on degenerate input.
type Readability struct {
	Flesch       float64 `json:"flesch"`
	FKGrade      float64 `json:"fk_grade"`
	Gunning      float64 `json:"gunning"`
	SMOG         float64 `json:"smog"`
	LIX          float64 `json:"lix"`
	ARI          float64 `json:"ari"`
	ColemanLiau  float64 `json:"coleman"`
	ComplexWords int     `json:"complex_words"`
	Syllables    int     `json:"syllables"`
}

// Originality contains lexical diversity and reuse signals
type Originality struct {
	TTR         float64 `json:"ttr"`
	Hapax       float64 `json:"hapax"`
	Repetition  float64 `json:"repetition"`   // 0.0 to 1.0
	QuotesRatio float64 `json:"quotes_ratio"` // quote characters per character
	Links       int     `json:"links"`
	Unique      int     `json:"unique"`
}

// Style contains cadence, voice and entropy signals
type Style struct {
	Burstiness  float64 `json:"burstiness"`
	StopRatio   float64 `json:"stop_ratio"`
	PassiveHits int     `json:"passive_hits"`
	WeaselHits  int     `json:"weasel_hits"`
	Entropy     float64 `json:"entropy"` // bits per character
}

// Counts are the raw, unguarded size counts of a text
type Counts struct {
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
	Paragraphs int `json:"paragraphs"`
	Unique     int `json:"unique"`
}

// Signals bundles everything extracted from one text before scoring
type Signals struct {
	Readability Readability `json:"readability"`
	Originality Originality `json:"originality"`
	Style       Style       `json:"style"`
	Counts      Counts      `json:"counts"`
}

// Hints are the suggestion-derived scoring inputs. The zero value means no suggestions.
type Hints struct {
	GrammarPenalty float64 `json:"grammar_penalty"`
	ClarityPenalty float64 `json:"clarity_penalty"`
	EvidenceBonus  float64 `json:"evidence_bonus"`
}

// Breakdown holds the six quality dimensions, each within [0, 100]
type Breakdown struct {
	Originality float64 `json:"originality"`
	Clarity     float64 `json:"clarity"`
	Evidence    float64 `json:"evidence"`
	Structure   float64 `json:"structure"`
	Voice       float64 `json:"voice"`
	Mechanics   float64 `json:"mechanics"`
}

// Composite is the output of quality scoring
type Composite struct {
	Quality   float64   `json:"quality"`
	AIRisk    float64   `json:"ai_risk"`
	Breakdown Breakdown `json:"breakdown"`
}

// Confidence is advisory and only gates the short-sample quality cap
type Confidence struct {
	Quality  int  `json:"quality"`
	AI       int  `json:"ai"`
	TooShort bool `json:"too_short"`
}

// Features is the flat vector consumed by the AI-likelihood estimator
type Features struct {
	Entropy             float64 `json:"entropy"`
	Burstiness          float64 `json:"burstiness"`
	Repetition          float64 `json:"repetition"`
	PassiveHits         int     `json:"passive_hits"`
	TemplateTransitions int     `json:"template_transitions"`
	LinkCount           int     `json:"link_count"`
	StopRatio           float64 `json:"stop_ratio"`
	GenericOpeners      int     `json:"generic_openers"`
	Sentences           int     `json:"sentences"`
	Words               int     `json:"words"`

	// Human-evidence counters
	QuotesCount        int `json:"quotes_count"`
	FirstPersonCount   int `json:"first_person_count"`
	DigitsCount        int `json:"digits_count"`
	YearCount          int `json:"year_count"`
	PunctuationVariety int `json:"punctuation_variety"`
	ProperNounsApprox  int `json:"proper_nouns_approx"`
	ParentheticalCount int `json:"parenthetical_count"`
}

// Contribution explains one AI-evidence feature
type Contribution struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Weight       float64 `json:"weight"`
	Score        int     `json:"score"`        // 0 to 100
	Contribution int     `json:"contribution"` // round(100 * weight * normalized)
}

// HumanEvidence holds the normalized counterweight signals
type HumanEvidence struct {
	FirstDensity   float64 `json:"first_density"`
	DetailsDensity float64 `json:"details_density"`
	QuotesLinks    float64 `json:"quotes_links"`
	PunctVariety   float64 `json:"punct_variety"`
	ProperNouns    float64 `json:"proper_nouns"`
	Parentheticals float64 `json:"parentheticals"`
	Score          float64 `json:"score"` // 0.0 to 1.0
}

// Explanation is the explained AI-likelihood result
type Explanation struct {
	AIPercent     int            `json:"ai_percent"`
	Contributions []Contribution `json:"contributions"`
	EvidenceRaw   int            `json:"evidence_raw"` // sum of contributions before sensitivity
	AIRaw         float64        `json:"ai_raw"`       // after sensitivity and human counterweight
	Human         HumanEvidence  `json:"human"`
	Confidence    float64        `json:"confidence"`
	Verdict       string         `json:"verdict"` // HIGH, MEDIUM, LOW
}

// OverlapHit is one matched corpus document
type OverlapHit struct {
	Title   string  `json:"title"`
	Overlap float64 `json:"overlap"`
	Matches int     `json:"matches"`
	Sample  string  `json:"sample"`
}

// OverlapReport is the result of checking a text against the local corpus
type OverlapReport struct {
	Enabled bool         `json:"enabled"`
	Checked int          `json:"checked"`
	Matched int          `json:"matched"`
	Score   int          `json:"score"`
	Results []OverlapHit `json:"results"`
}

// Issue is a single suggestion item
type Issue struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Fix  string `json:"fix,omitempty"`
}

// Suggestions are grammar/clarity/evidence issues from the LLM or the heuristic fallback
type Suggestions struct {
	Grammar  []Issue `json:"grammar"`
	Clarity  []Issue `json:"clarity"`
	Evidence []Issue `json:"evidence"`
	Improved string  `json:"improved,omitempty"`
	Source   string  `json:"source"` // llm or heuristic
}

// Flags are raw counters shown next to the breakdown
type Flags struct {
	QuotesRatio float64 `json:"quotes_ratio"`
	Links       int     `json:"links"`
	PassiveHits int     `json:"passive_hits"`
	WeaselHits  int     `json:"weasel_hits"`
}

// Report is the merged response for one analyzed text
type Report struct {
	Quality         float64        `json:"quality"`
	AIRisk          float64        `json:"ai_risk"`
	AIPercent       int            `json:"ai_percent"`
	Verdict         string         `json:"verdict"`
	Explanation     Explanation    `json:"ai_explain"`
	Features        Features       `json:"features"`
	Breakdown       Breakdown      `json:"breakdown"`
	Readability     Readability    `json:"readability"`
	Counts          Counts         `json:"counts"`
	Flags           Flags          `json:"flags"`
	Overlap         *OverlapReport `json:"overlap,omitempty"`
	Suggestions     Suggestions    `json:"suggestions"`
	ImprovementPlan []string       `json:"improvement_plan"`
	Confidence      Confidence     `json:"confidence"`
	Notes           []string       `json:"notes"`
}
