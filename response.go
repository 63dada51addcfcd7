package respond

// Response is the raw JSON returned by the responses endpoint. The provider
// emits several shapes depending on model family and on whether tool calls
// such as web search occurred, so every field here is optional and decoding
// is lenient: unknown fields are ignored, missing ones stay zero.
//
// https://platform.openai.com/docs/api-reference/responses/object
type Response struct {
	ID     string `json:"id,omitempty"`
	Object string `json:"object,omitempty"`
	Model  string `json:"model,omitempty"`
	Status string `json:"status,omitempty"`

	// OutputText is the flattened convenience text some provider frontends
	// and gateways emit alongside (or instead of) the output list.
	OutputText string `json:"output_text,omitempty"`

	Output []OutputItem `json:"output,omitempty"`

	Reasoning *ResponseReasoning `json:"reasoning,omitempty"`

	// Summary is a top-level reasoning summary part list emitted by some
	// model families.
	Summary []SummaryPart `json:"summary,omitempty"`

	Usage *Usage `json:"usage,omitempty"`

	// Choices is the legacy single-choice completion shape, kept as a
	// fallback for gateways that translate responses into it.
	Choices []Choice `json:"choices,omitempty"`

	Error *ResponseError `json:"error,omitempty"`
}

// OutputItem is one entry of the response output list. Its Type decides
// which of the remaining fields are populated: "message" carries Role and
// Content, "web_search_call" carries Action, "reasoning" carries Summary.
type OutputItem struct {
	Type   string `json:"type,omitempty"`
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Role   string `json:"role,omitempty"`

	Content []OutputContent `json:"content,omitempty"`

	Action *SearchAction `json:"action,omitempty"`

	Summary []SummaryPart `json:"summary,omitempty"`
}

// OutputContent is one segment of a message output item.
type OutputContent struct {
	Type        string       `json:"type,omitempty"`
	Text        string       `json:"text,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Annotation marks a span of output text; type "url_citation" links it to a
// web source.
type Annotation struct {
	Type       string `json:"type,omitempty"`
	URL        string `json:"url,omitempty"`
	Title      string `json:"title,omitempty"`
	StartIndex int    `json:"start_index,omitempty"`
	EndIndex   int    `json:"end_index,omitempty"`
}

// SearchAction describes what a web_search_call output item did.
type SearchAction struct {
	Type    string         `json:"type,omitempty"`
	Query   string         `json:"query,omitempty"`
	Domains []string       `json:"domains,omitempty"`
	Sources []SearchSource `json:"sources,omitempty"`
}

// SearchSource is one consulted source, present when the request included
// web_search_call.action.sources.
type SearchSource struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ResponseReasoning echoes reasoning settings and, on some families, carries
// the summary text directly.
type ResponseReasoning struct {
	Effort  string `json:"effort,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// SummaryPart is one part of a reasoning summary; type "summary_text"
// carries the text.
type SummaryPart struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

// Usage counts tokens consumed by the request.
type Usage struct {
	InputTokens         int                  `json:"input_tokens"`
	OutputTokens        int                  `json:"output_tokens"`
	TotalTokens         int                  `json:"total_tokens"`
	OutputTokensDetails *OutputTokensDetails `json:"output_tokens_details,omitempty"`
}

// OutputTokensDetails breaks out tokens spent on internal reasoning.
type OutputTokensDetails struct {
	ReasoningTokens int `json:"reasoning_tokens"`
}

// Choice is the legacy completion choice shape.
type Choice struct {
	Message ChoiceMessage `json:"message"`
}

// ChoiceMessage is the legacy message payload of a [Choice].
type ChoiceMessage struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// ResponseError is the provider's embedded error object on failed responses.
type ResponseError struct {
	Code    string `json:"code,omitempty"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}
