package respond_test

import (
	"encoding/json"
	"testing"

	"github.com/flowkit-dev/respond"
	"github.com/shoenig/test/must"
)

// parseResponse decodes a provider body the way the client does, so
// extraction tests exercise the same lenient decoding path.
func parseResponse(t *testing.T, body string) *respond.Response {
	t.Helper()

	resp := &respond.Response{}
	must.NoError(t, json.Unmarshal([]byte(body), resp))
	return resp
}

func TestExtract_FlattenedOutputText(t *testing.T) {
	resp := parseResponse(t, `{
		"id": "resp_1",
		"model": "gpt-5",
		"output_text": "flattened wins",
		"output": [
			{"type": "message", "content": [{"type": "output_text", "text": "scanned"}]}
		]
	}`)

	result := respond.Extract(resp, "fallback")

	must.Eq(t, "flattened wins", result.Text)
	must.Eq(t, "gpt-5", result.Model)
}

func TestExtract_ScansOutputList(t *testing.T) {
	resp := parseResponse(t, `{
		"output": [
			{"type": "reasoning", "summary": [{"type": "summary_text", "text": "thought about it"}]},
			{"type": "message", "role": "assistant", "content": [
				{"type": "output_text", "text": "the answer", "annotations": [
					{"type": "url_citation", "url": "https://example.com", "title": "Example", "start_index": 4, "end_index": 10}
				]}
			]}
		]
	}`)

	result := respond.Extract(resp, "gpt-5")

	must.Eq(t, "the answer", result.Text)
	must.Eq(t, "thought about it", result.ReasoningSummary)
	must.Len(t, 1, result.Citations)
	must.Eq(t, respond.Citation{
		URL:        "https://example.com",
		Title:      "Example",
		StartIndex: 4,
		EndIndex:   10,
	}, result.Citations[0])
}

func TestExtract_WebSearchSideChannel(t *testing.T) {
	resp := parseResponse(t, `{
		"output": [
			{"type": "web_search_call", "id": "ws_1", "status": "completed", "action": {
				"type": "search",
				"query": "weather london",
				"sources": [
					{"type": "url", "url": "https://example.com/weather"},
					{"type": "url", "url": "https://example.org/forecast"}
				]
			}},
			{"type": "message", "content": [{"type": "output_text", "text": "rainy"}]},
			{"type": "web_search_call", "id": "ws_late", "action": {
				"sources": [{"type": "url", "url": "https://late.example.com"}]
			}}
		]
	}`)

	result := respond.Extract(resp, "gpt-5")

	must.Eq(t, "rainy", result.Text)

	// Only the search performed before the answer text is recorded.
	must.Len(t, 1, result.SearchCalls)
	must.Eq(t, "ws_1", result.SearchCalls[0].ID)
	must.Eq(t, "weather london", result.SearchCalls[0].Query)
	must.Eq(t, []string{"https://example.com/weather", "https://example.org/forecast"}, result.Sources)
}

func TestExtract_LegacyChoices(t *testing.T) {
	resp := parseResponse(t, `{"choices": [{"message": {"role": "assistant", "content": "hello"}}]}`)

	result := respond.Extract(resp, "gpt-4o")

	must.Eq(t, "hello", result.Text)
}

func TestExtract_ChoicesFallbackAfterEmptyScan(t *testing.T) {
	resp := parseResponse(t, `{
		"output": [{"type": "reasoning"}],
		"choices": [{"message": {"content": "from choices"}}]
	}`)

	result := respond.Extract(resp, "gpt-5")

	must.Eq(t, "from choices", result.Text)
}

func TestExtract_EmptyResponse(t *testing.T) {
	result := respond.Extract(parseResponse(t, `{}`), "gpt-5")

	must.Eq(t, "", result.Text)
	must.Eq(t, "gpt-5", result.Model)

	result = respond.Extract(nil, "gpt-5")
	must.Eq(t, "", result.Text)
	must.Eq(t, "gpt-5", result.Model)
}

func TestExtract_ReasoningSummaryPrecedence(t *testing.T) {
	resp := parseResponse(t, `{
		"reasoning": {"effort": "high", "summary": "top-level object"},
		"summary": [{"type": "summary_text", "text": "summary list"}]
	}`)
	must.Eq(t, "top-level object", respond.Extract(resp, "gpt-5").ReasoningSummary)

	resp = parseResponse(t, `{"summary": [{"type": "summary_text", "text": "summary list"}]}`)
	must.Eq(t, "summary list", respond.Extract(resp, "gpt-5").ReasoningSummary)

	resp = parseResponse(t, `{
		"output": [{"type": "reasoning", "summary": [
			{"type": "summary_text", "text": "part one. "},
			{"type": "summary_text", "text": "part two."}
		]}]
	}`)
	must.Eq(t, "part one. part two.", respond.Extract(resp, "gpt-5").ReasoningSummary)
}

func TestExtract_Usage(t *testing.T) {
	resp := parseResponse(t, `{
		"output_text": "hi",
		"usage": {
			"input_tokens": 10,
			"output_tokens": 42,
			"total_tokens": 52,
			"output_tokens_details": {"reasoning_tokens": 30}
		}
	}`)

	result := respond.Extract(resp, "gpt-5")

	must.NotNil(t, result.Usage)
	must.Eq(t, 10, result.Usage.Input)
	must.Eq(t, 42, result.Usage.Output)
	must.Eq(t, 52, result.Usage.Total)
	must.Eq(t, 30, result.Usage.ReasoningTokens)
}

func TestExtract_ModelFallback(t *testing.T) {
	result := respond.Extract(parseResponse(t, `{"output_text": "hi"}`), "gpt-5-mini")

	must.Eq(t, "gpt-5-mini", result.Model)
}
