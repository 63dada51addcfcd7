package respond

// Result is the flat, stable record handed to callers regardless of which
// response shape the provider produced.
type Result struct {
	Text  string `json:"text"`
	Model string `json:"model"`

	Usage *TokenUsage `json:"usage,omitempty"`

	ReasoningSummary string `json:"reasoningSummary,omitempty"`

	Citations []Citation `json:"citations,omitempty"`

	// Sources lists every web source the search consulted, in the order
	// the provider reported them.
	Sources []string `json:"sources,omitempty"`

	// SearchCalls is the web-search side channel: one record per
	// web_search_call output item seen before the answer text.
	SearchCalls []SearchCall `json:"searchCalls,omitempty"`

	// FileID is the provider-assigned identifier of the first file
	// uploaded for this invocation, when any was.
	FileID string `json:"fileId,omitempty"`
}

// TokenUsage is the usage accounting passed through from the provider.
type TokenUsage struct {
	Input           int `json:"input"`
	Output          int `json:"output"`
	Total           int `json:"total"`
	ReasoningTokens int `json:"reasoningTokens,omitempty"`
}

// Citation links a span of the answer text to a web source.
type Citation struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

// SearchCall summarizes one web search the model performed.
type SearchCall struct {
	ID      string   `json:"id,omitempty"`
	Status  string   `json:"status,omitempty"`
	Query   string   `json:"query,omitempty"`
	Domains []string `json:"domains,omitempty"`
	Sources []string `json:"sources,omitempty"`
}

// Extract flattens a raw provider response into a [Result]. It tolerates
// every response shape the provider family may emit and never fails: a
// recognized-but-empty shape yields an empty text, not an error.
//
// Text precedence, first non-empty wins: the flattened output_text field,
// then the first output-text segment found while scanning the output list,
// then the legacy single-choice content. Web-search side-channel data
// accumulates from output entries visited before the text was found.
func Extract(resp *Response, fallbackModel string) Result {
	out := Result{Model: fallbackModel}
	if resp == nil {
		return out
	}

	if resp.Model != "" {
		out.Model = resp.Model
	}

	if resp.Usage != nil {
		usage := &TokenUsage{
			Input:  resp.Usage.InputTokens,
			Output: resp.Usage.OutputTokens,
			Total:  resp.Usage.TotalTokens,
		}
		if details := resp.Usage.OutputTokensDetails; details != nil {
			usage.ReasoningTokens = details.ReasoningTokens
		}
		out.Usage = usage
	}

	out.ReasoningSummary = extractSummary(resp)

	switch {
	case resp.OutputText != "":
		out.Text = resp.OutputText

	case len(resp.Output) > 0:
		scanOutput(resp.Output, &out)
		if out.Text == "" && len(resp.Choices) > 0 {
			out.Text = resp.Choices[0].Message.Content
		}

	case len(resp.Choices) > 0:
		out.Text = resp.Choices[0].Message.Content
	}

	return out
}

// scanOutput walks the output list, collecting web-search records until an
// output-text segment supplies the answer text, then stops.
func scanOutput(items []OutputItem, out *Result) {
	for _, item := range items {
		switch item.Type {
		case "web_search_call":
			call := SearchCall{ID: item.ID, Status: item.Status}
			if item.Action != nil {
				call.Query = item.Action.Query
				call.Domains = item.Action.Domains
				for _, src := range item.Action.Sources {
					if src.URL == "" {
						continue
					}
					call.Sources = append(call.Sources, src.URL)
					out.Sources = append(out.Sources, src.URL)
				}
			}
			out.SearchCalls = append(out.SearchCalls, call)

		case "message":
			for _, content := range item.Content {
				if content.Type != "output_text" || content.Text == "" {
					continue
				}
				out.Text = content.Text
				for _, a := range content.Annotations {
					if a.Type != "url_citation" {
						continue
					}
					out.Citations = append(out.Citations, Citation{
						URL:        a.URL,
						Title:      a.Title,
						StartIndex: a.StartIndex,
						EndIndex:   a.EndIndex,
					})
				}
				break
			}
		}

		if out.Text != "" {
			return
		}
	}
}

// extractSummary pulls the reasoning summary, independent of text
// extraction. Absence is normal, not an error.
func extractSummary(resp *Response) string {
	if resp.Reasoning != nil && resp.Reasoning.Summary != "" {
		return resp.Reasoning.Summary
	}

	for _, part := range resp.Summary {
		if part.Type == "summary_text" && part.Text != "" {
			return part.Text
		}
	}

	// Some families report the summary as parts on a reasoning output item.
	for _, item := range resp.Output {
		if item.Type != "reasoning" {
			continue
		}
		var text string
		for _, part := range item.Summary {
			if part.Type == "summary_text" {
				text += part.Text
			}
		}
		if text != "" {
			return text
		}
	}

	return ""
}
