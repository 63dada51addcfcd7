package respond

import "strings"

// Model is a known OpenAI model identifier usable with the Responses API.
type Model = string

// https://platform.openai.com/docs/models
const (
	// ModelGPT5 is the flagship GPT-5 model. It is a reasoning-family
	// model: classic sampling controls such as temperature are ignored
	// in favor of effort and summary controls.
	//
	// https://platform.openai.com/docs/models/gpt-5
	ModelGPT5 Model = "gpt-5"

	// ModelGPT5Mini is a faster, cheaper GPT-5 sibling.
	ModelGPT5Mini Model = "gpt-5-mini"

	// ModelGPT5Nano is the fastest GPT-5 sibling, for latency-sensitive work.
	ModelGPT5Nano Model = "gpt-5-nano"

	// ModelO3 is a deliberate reasoning model using the legacy flat
	// reasoning_effort request field.
	//
	// https://platform.openai.com/docs/models/o3
	ModelO3 Model = "o3"

	// ModelO3Mini is a smaller, faster o3 sibling.
	ModelO3Mini Model = "o3-mini"

	// ModelO4Mini is a fast reasoning model tuned for tool use.
	ModelO4Mini Model = "o4-mini"

	// ModelGPT41 is a non-reasoning model; it accepts temperature.
	//
	// https://platform.openai.com/docs/models/gpt-4.1
	ModelGPT41 Model = "gpt-4.1"

	// ModelGPT41Mini is a faster GPT-4.1 sibling.
	ModelGPT41Mini Model = "gpt-4.1-mini"

	// ModelGPT4o is a non-reasoning multimodal model.
	//
	// https://platform.openai.com/docs/models/gpt-4o
	ModelGPT4o Model = "gpt-4o"

	// ModelGPT4oMini is a faster GPT-4o sibling.
	ModelGPT4oMini Model = "gpt-4o-mini"
)

// IsReasoningModel reports whether the model identifier belongs to a
// reasoning family, whose provider-side behavior disables classic sampling
// controls (temperature) in favor of effort/summary controls.
func IsReasoningModel(model Model) bool {
	return strings.HasPrefix(model, "gpt-5") ||
		strings.HasPrefix(model, "o1") ||
		strings.HasPrefix(model, "o3") ||
		strings.HasPrefix(model, "o4")
}

// usesNestedReasoning reports whether the model family takes its reasoning
// parameters nested under a single "reasoning" request key. Legacy families
// (o-series) place effort flat as "reasoning_effort" instead, while the
// summary still nests under "reasoning" — an inconsistency in the provider
// API that callers depend on.
func usesNestedReasoning(model Model) bool {
	return strings.HasPrefix(model, "gpt-5")
}

// supportsVerbosity reports whether the model family accepts the
// text.verbosity request field.
func supportsVerbosity(model Model) bool {
	return strings.HasPrefix(model, "gpt-5")
}

// quickSiblings maps each model to the designated faster sibling substituted
// by quick mode. Models without an entry are left unchanged.
var quickSiblings = map[Model]Model{
	ModelGPT5:     ModelGPT5Mini,
	ModelGPT5Mini: ModelGPT5Nano,
	ModelO3:       ModelO3Mini,
	ModelGPT41:    ModelGPT41Mini,
	ModelGPT4o:    ModelGPT4oMini,
}
