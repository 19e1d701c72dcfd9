package catalog

// Sentinel values returned when a spec declares no cost or capacity
// information at all. Distinct from zero: a zero cost is a real (free)
// price, a negative result means "unknown".
const (
	CostUnknown     = -1.0
	CapacityUnknown = -1.0
)

// Conversion multipliers used to fold heterogeneous per-unit prices into
// one approximate per-token figure. A token is roughly four characters,
// and a second of audio is weighted at a tenth of a token's cost unit.
// Image, request, and query prices are taken as-is.
const (
	charactersPerToken = 4.0
	secondCostWeight   = 0.1
)

// Capacity multipliers: an hour of audio is counted as 36000 tokens and
// an image as 1000 tokens when folding capacity limits together.
const (
	tokensPerAudioHour = 36000.0
	tokensPerImage     = 1000.0
)

// CostPerToken folds all present, non-negative cost fields of the spec
// into a single approximate cost-per-token figure. Returns CostUnknown
// when the spec declares no cost field at all. A spec declaring only
// zeros returns 0, which is a real price (free), not the sentinel.
func CostPerToken(spec ModelSpec) float64 {
	var total float64
	present := false

	add := func(v *float64, scale float64) {
		if v == nil || *v < 0 {
			return
		}
		total += *v * scale
		present = true
	}

	add(spec.InputCostPerToken, 1)
	add(spec.OutputCostPerToken, 1)
	add(spec.InputCostPerCharacter, 1/charactersPerToken)
	add(spec.OutputCostPerCharacter, 1/charactersPerToken)
	add(spec.InputCostPerSecond, secondCostWeight)
	add(spec.OutputCostPerSecond, secondCostWeight)
	add(spec.InputCostPerImage, 1)
	add(spec.InputCostPerRequest, 1)
	add(spec.InputCostPerQuery, 1)

	if !present {
		return CostUnknown
	}
	return total
}

// MaxTokenCapacity folds all present capacity fields into one approximate
// token capacity. Returns CapacityUnknown when the spec declares no
// capacity field at all.
func MaxTokenCapacity(spec ModelSpec) float64 {
	var total float64
	present := false

	add := func(v *float64, scale float64) {
		if v == nil || *v < 0 {
			return
		}
		total += *v * scale
		present = true
	}

	add(spec.MaxTokens, 1)
	add(spec.MaxInputTokens, 1)
	add(spec.MaxOutputTokens, 1)
	add(spec.MaxAudioLengthHours, tokensPerAudioHour)
	add(spec.MaxImagesPerPrompt, tokensPerImage)

	if !present {
		return CapacityUnknown
	}
	return total
}
