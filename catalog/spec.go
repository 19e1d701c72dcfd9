package catalog

// Mode identifies what kind of requests a model serves.
type Mode string

// Model modes as declared by the price table.
const (
	ModeChat               Mode = "chat"
	ModeCompletion         Mode = "completion"
	ModeEmbedding          Mode = "embedding"
	ModeImageGeneration    Mode = "image_generation"
	ModeAudioTranscription Mode = "audio_transcription"
	ModeAudioSpeech        Mode = "audio_speech"
	ModeModeration         Mode = "moderation"
	ModeRerank             Mode = "rerank"
)

// ModelSpec describes one model's static pricing and capability metadata
// as declared by the price table or discovered from a custom provider.
//
// Sparse fields are pointers: nil means the source did not declare the
// field, which is different from an explicit zero. In particular, a spec
// with no cost fields at all has unknown cost, never assumed free.
// Free status is established only by the ranking filter (see Rank).
type ModelSpec struct {
	// Provider is the canonical provider key after normalization.
	Provider string `json:"litellm_provider,omitempty"`

	// Mode declares what kind of requests the model serves.
	Mode Mode `json:"mode,omitempty"`

	// Per-unit costs in USD. Each field is independently optional.
	InputCostPerToken      *float64 `json:"input_cost_per_token,omitempty"`
	OutputCostPerToken     *float64 `json:"output_cost_per_token,omitempty"`
	InputCostPerCharacter  *float64 `json:"input_cost_per_character,omitempty"`
	OutputCostPerCharacter *float64 `json:"output_cost_per_character,omitempty"`
	InputCostPerSecond     *float64 `json:"input_cost_per_second,omitempty"`
	OutputCostPerSecond    *float64 `json:"output_cost_per_second,omitempty"`
	InputCostPerImage      *float64 `json:"input_cost_per_image,omitempty"`
	InputCostPerRequest    *float64 `json:"input_cost_per_request,omitempty"`
	InputCostPerQuery      *float64 `json:"input_cost_per_query,omitempty"`

	// Capacity limits. Each field is independently optional.
	MaxTokens           *float64 `json:"max_tokens,omitempty"`
	MaxInputTokens      *float64 `json:"max_input_tokens,omitempty"`
	MaxOutputTokens     *float64 `json:"max_output_tokens,omitempty"`
	MaxAudioLengthHours *float64 `json:"max_audio_length_hours,omitempty"`
	MaxImagesPerPrompt  *float64 `json:"max_images_per_prompt,omitempty"`

	// Capability flags. nil means unknown.
	SupportsVision                  *bool `json:"supports_vision,omitempty"`
	SupportsAudioInput              *bool `json:"supports_audio_input,omitempty"`
	SupportsAudioOutput             *bool `json:"supports_audio_output,omitempty"`
	SupportsFunctionCalling         *bool `json:"supports_function_calling,omitempty"`
	SupportsParallelFunctionCalling *bool `json:"supports_parallel_function_calling,omitempty"`
	SupportsPDFInput                *bool `json:"supports_pdf_input,omitempty"`
	SupportsPromptCaching           *bool `json:"supports_prompt_caching,omitempty"`
}

// Catalog maps a model identifier to its spec. Identifiers follow the
// price table's convention: a bare name for first-party models
// ("gpt-4o-mini") or a provider-prefixed path ("openrouter/meta-llama/...").
type Catalog map[string]ModelSpec

// ByMode returns the subset of the catalog whose declared mode matches.
func (c Catalog) ByMode(mode Mode) Catalog {
	out := make(Catalog)
	for id, spec := range c {
		if spec.Mode == mode {
			out[id] = spec
		}
	}
	return out
}

// Float returns a pointer to v, for building specs in code and tests.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for building specs in code and tests.
func Bool(v bool) *bool { return &v }
