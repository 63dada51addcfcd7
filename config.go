package respond

// Effort is a provider-side knob trading response latency for depth of
// internal deliberation before producing output.
type Effort string

const (
	EffortMinimal Effort = "minimal"
	EffortLow     Effort = "low"
	EffortMedium  Effort = "medium"
	EffortHigh    Effort = "high"
)

// SummaryMode selects whether and how the provider digests its internal
// deliberation into a reasoning summary.
type SummaryMode string

const (
	// SummaryNone disables the summary; the builder treats it the same
	// as leaving the mode unset.
	SummaryNone     SummaryMode = "none"
	SummaryAuto     SummaryMode = "auto"
	SummaryConcise  SummaryMode = "concise"
	SummaryDetailed SummaryMode = "detailed"
)

// Verbosity controls output length and detail independent of reasoning effort.
type Verbosity string

const (
	VerbosityLow    Verbosity = "low"
	VerbosityMedium Verbosity = "medium"
	VerbosityHigh   Verbosity = "high"
)

// SearchContextSize controls how much retrieved web content the model may
// consider while answering.
type SearchContextSize string

const (
	SearchContextLow    SearchContextSize = "low"
	SearchContextMedium SearchContextSize = "medium"
	SearchContextHigh   SearchContextSize = "high"
)

// SearchLocation approximates the user's location for web search. Only
// non-empty fields are sent.
type SearchLocation struct {
	Country  string `json:"country,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// WebSearchOptions configures the web search tool attached to a request.
type WebSearchOptions struct {
	Enabled bool `json:"enabled,omitempty"`

	// AllowedDomains restricts search to the listed domains. The provider
	// accepts at most [MaxAllowedDomains] entries; extras are truncated in
	// input order.
	AllowedDomains []string `json:"allowedDomains,omitempty"`

	ContextSize SearchContextSize `json:"contextSize,omitempty"`

	// IncludeSources asks the provider to surface the list of sources the
	// search consulted.
	IncludeSources bool `json:"includeSources,omitempty"`

	Location *SearchLocation `json:"location,omitempty"`
}

// Config is an immutable snapshot of a single invocation's settings,
// constructed fresh per input row and discarded after the request completes.
// Invalid enum values pass through unvalidated; validation belongs to the
// configuration surface that produced them.
type Config struct {
	Model  Model
	Prompt string

	// Files are attached to the prompt in order. See [Normalize] and
	// [ClassifyTokens] for how heterogeneous user input becomes refs.
	Files []FileRef

	// MaxOutputTokens bounds visible output plus reasoning tokens.
	// Zero or negative means unset.
	MaxOutputTokens int

	// Temperature in [0,2]. Ignored for reasoning-family models.
	Temperature *float64

	ReasoningEffort  Effort
	ReasoningSummary SummaryMode
	Verbosity        Verbosity

	WebSearch *WebSearchOptions

	// PreviousResponseID chains this request onto an earlier response for
	// multi-turn conversations.
	//
	// https://platform.openai.com/docs/guides/conversation-state?api-mode=responses
	PreviousResponseID string
}

// QuickMode returns a copy of cfg adjusted for low-latency execution: effort
// forced to low, search context to medium, and the model substituted for its
// designated faster sibling. It is a pure transform applied before [Build],
// never interleaved with it.
func QuickMode(cfg Config) Config {
	cfg.ReasoningEffort = EffortLow

	if cfg.WebSearch != nil {
		ws := *cfg.WebSearch
		ws.ContextSize = SearchContextMedium
		cfg.WebSearch = &ws
	}

	if fast, ok := quickSiblings[cfg.Model]; ok {
		cfg.Model = fast
	}

	return cfg
}
