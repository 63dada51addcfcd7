package respond

import (
	"encoding/json"
	"strings"
)

// Request is the wire-shaped payload for the responses endpoint. It is
// derived from a [Config] by [Build] and never reused.
//
// https://platform.openai.com/docs/api-reference/responses/create
type Request struct {
	Model string `json:"model"`

	// Text, image, or file inputs to the model: a scalar prompt string or
	// a list of role-tagged items.
	//
	// https://platform.openai.com/docs/api-reference/responses/create#responses-create-input
	Input Input `json:"input"`

	// An upper bound for the number of tokens that can be generated,
	// including visible output tokens and reasoning tokens.
	MaxOutputTokens int `json:"max_output_tokens,omitempty"`

	Temperature *float64 `json:"temperature,omitempty"`

	// Reasoning carries the nested reasoning parameters used by current
	// model families.
	Reasoning *Reasoning `json:"reasoning,omitempty"`

	// ReasoningEffort is the legacy flat placement of the effort knob used
	// by o-series families. The provider splits effort and summary across
	// two shapes for those models; both fields exist to mirror that.
	ReasoningEffort Effort `json:"reasoning_effort,omitempty"`

	Text *TextOptions `json:"text,omitempty"`

	Tools []Tool `json:"tools,omitempty"`

	// Include names extra response fields the provider should surface,
	// e.g. web search sources.
	Include []string `json:"include,omitempty"`

	PreviousResponseID string `json:"previous_response_id,omitempty"`
}

// Reasoning is the nested reasoning parameter object.
//
// https://platform.openai.com/docs/api-reference/responses/create#responses-create-reasoning
type Reasoning struct {
	Effort  Effort      `json:"effort,omitempty"`
	Summary SummaryMode `json:"summary,omitempty"`
}

// TextOptions configures text output shaping.
type TextOptions struct {
	Verbosity Verbosity `json:"verbosity,omitempty"`
}

// Input is the request input: either a scalar [Text] prompt or an [Items]
// list of role-tagged turns.
type Input interface {
	isInput()
}

// Text is the scalar prompt form of [Input].
type Text string

func (Text) isInput() {}

// Items is the list form of [Input].
type Items []Item

func (Items) isInput() {}

// Item is a single input item, currently always a [Message].
type Item interface {
	isItem()
}

// Role is the author of an input message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one role-tagged turn whose content is an ordered segment list.
type Message struct {
	Role    Role      `json:"role"`
	Content []Segment `json:"content"`
}

func (Message) isItem() {}

func (m Message) MarshalJSON() ([]byte, error) {
	type alias Message
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{
		Type:  "message",
		alias: (alias)(m),
	})
}

// Segment is one element of a message's content list.
type Segment interface {
	isSegment()
}

// InputText is a text segment.
type InputText struct {
	Text string `json:"text"`
}

func (InputText) isSegment() {}

func (it InputText) MarshalJSON() ([]byte, error) {
	type alias InputText
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{
		Type:  "input_text",
		alias: (alias)(it),
	})
}

// InputImage attaches an image by provider file identifier or by URL.
type InputImage struct {
	FileID   string `json:"file_id,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

func (InputImage) isSegment() {}

func (ii InputImage) MarshalJSON() ([]byte, error) {
	type alias InputImage
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{
		Type:  "input_image",
		alias: (alias)(ii),
	})
}

// InputFile attaches a document by provider file identifier or by URL.
type InputFile struct {
	FileID   string `json:"file_id,omitempty"`
	FileURL  string `json:"file_url,omitempty"`
	Filename string `json:"filename,omitempty"`
}

func (InputFile) isSegment() {}

func (f InputFile) MarshalJSON() ([]byte, error) {
	type alias InputFile
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{
		Type:  "input_file",
		alias: (alias)(f),
	})
}

// Tool is a tool descriptor the model may call while generating a response.
type Tool interface {
	isTool()
}

// WebSearchTool enables provider-side web search.
//
// https://platform.openai.com/docs/guides/tools-web-search
type WebSearchTool struct {
	SearchContextSize SearchContextSize    `json:"search_context_size,omitempty"`
	Filters           *WebSearchFilters    `json:"filters,omitempty"`
	UserLocation      *ApproximateLocation `json:"user_location,omitempty"`
}

func (WebSearchTool) isTool() {}

func (t WebSearchTool) MarshalJSON() ([]byte, error) {
	type alias WebSearchTool
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{
		Type:  "web_search",
		alias: (alias)(t),
	})
}

// WebSearchFilters restricts web search results.
type WebSearchFilters struct {
	AllowedDomains []string `json:"allowed_domains,omitempty"`
}

// ApproximateLocation refines search results toward the user's locale.
type ApproximateLocation struct {
	Type     string `json:"type"` // always "approximate"
	Country  string `json:"country,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// MaxAllowedDomains is the provider limit on web-search domain allow-lists.
const MaxAllowedDomains = 20

// includeWebSearchSources asks the provider to surface its search-source
// list on web_search_call output items.
const includeWebSearchSources = "web_search_call.action.sources"

// Build assembles the provider request from cfg. It is a pure function with
// no side effects and is total over its input domain: missing optional
// fields are absorbed by defaults and never cause a failure.
func Build(cfg Config) Request {
	req := Request{
		Model:              cfg.Model,
		Input:              buildInput(cfg),
		PreviousResponseID: cfg.PreviousResponseID,
	}

	if cfg.MaxOutputTokens > 0 {
		req.MaxOutputTokens = cfg.MaxOutputTokens
	}

	// Reasoning-family models reject classic sampling controls, so the
	// temperature is silently dropped for them rather than erroring.
	if cfg.Temperature != nil && !IsReasoningModel(cfg.Model) {
		req.Temperature = cfg.Temperature
	}

	effort := cfg.ReasoningEffort
	summary := cfg.ReasoningSummary
	if summary == SummaryNone {
		summary = ""
	}

	if effort != "" || summary != "" {
		if usesNestedReasoning(cfg.Model) {
			req.Reasoning = &Reasoning{Effort: effort, Summary: summary}
		} else {
			// Legacy families take effort flat but the summary still
			// nests under reasoning. Mirror the provider exactly.
			req.ReasoningEffort = effort
			if summary != "" {
				req.Reasoning = &Reasoning{Summary: summary}
			}
		}
	}

	if cfg.Verbosity != "" && supportsVerbosity(cfg.Model) {
		req.Text = &TextOptions{Verbosity: cfg.Verbosity}
	}

	if ws := cfg.WebSearch; ws != nil && ws.Enabled {
		tool := WebSearchTool{
			SearchContextSize: ws.ContextSize,
			UserLocation:      buildLocation(ws.Location),
		}

		if len(ws.AllowedDomains) > 0 {
			domains := ws.AllowedDomains
			if len(domains) > MaxAllowedDomains {
				domains = domains[:MaxAllowedDomains]
			}
			tool.Filters = &WebSearchFilters{AllowedDomains: domains}
		}

		req.Tools = append(req.Tools, tool)

		if ws.IncludeSources {
			req.Include = append(req.Include, includeWebSearchSources)
		}
	}

	return req
}

// buildInput produces the scalar prompt when no files are attached;
// otherwise a single user turn whose content starts with the prompt segment
// followed by one segment per file reference, in insertion order.
func buildInput(cfg Config) Input {
	if len(cfg.Files) == 0 {
		return Text(cfg.Prompt)
	}

	segments := make([]Segment, 0, len(cfg.Files)+1)
	segments = append(segments, InputText{Text: cfg.Prompt})

	for _, ref := range cfg.Files {
		segments = append(segments, fileSegment(ref))
	}

	return Items{Message{Role: RoleUser, Content: segments}}
}

// fileSegment selects an image segment for image-class references and a
// file segment for everything else (PDF-class documents).
func fileSegment(ref FileRef) Segment {
	if ref.URL != "" {
		if isImagePath(ref.URL) {
			return InputImage{ImageURL: ref.URL}
		}
		return InputFile{FileURL: ref.URL}
	}

	if strings.HasPrefix(ref.MIME, "image/") {
		return InputImage{FileID: ref.ID}
	}
	return InputFile{FileID: ref.ID}
}

// isImagePath checks the path suffix, ignoring any query string.
func isImagePath(url string) bool {
	path, _, _ := strings.Cut(url, "?")
	path = strings.ToLower(path)

	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// buildLocation returns nil unless at least one location field is set.
func buildLocation(loc *SearchLocation) *ApproximateLocation {
	if loc == nil {
		return nil
	}

	out := &ApproximateLocation{
		Type:     "approximate",
		Country:  loc.Country,
		City:     loc.City,
		Region:   loc.Region,
		Timezone: loc.Timezone,
	}

	if out.Country == "" && out.City == "" && out.Region == "" && out.Timezone == "" {
		return nil
	}
	return out
}
