package catalog

import "testing"

func TestCostPerToken(t *testing.T) {
	tests := []struct {
		name string
		spec ModelSpec
		want float64
	}{
		{
			name: "no cost fields returns sentinel",
			spec: ModelSpec{},
			want: CostUnknown,
		},
		{
			name: "single output cost field",
			spec: ModelSpec{OutputCostPerToken: Float(0.002)},
			want: 0.002,
		},
		{
			name: "explicit zeros are free, not unknown",
			spec: ModelSpec{InputCostPerToken: Float(0), OutputCostPerToken: Float(0)},
			want: 0,
		},
		{
			name: "token costs sum",
			spec: ModelSpec{InputCostPerToken: Float(0.001), OutputCostPerToken: Float(0.002)},
			want: 0.003,
		},
		{
			name: "character cost scales by a quarter",
			spec: ModelSpec{InputCostPerCharacter: Float(0.004)},
			want: 0.001,
		},
		{
			name: "second cost scales by a tenth",
			spec: ModelSpec{InputCostPerSecond: Float(0.01)},
			want: 0.001,
		},
		{
			name: "negative fields ignored",
			spec: ModelSpec{InputCostPerToken: Float(-1), OutputCostPerToken: Float(0.002)},
			want: 0.002,
		},
		{
			name: "only negative fields is unknown",
			spec: ModelSpec{InputCostPerToken: Float(-1)},
			want: CostUnknown,
		},
		{
			name: "image and request costs taken as-is",
			spec: ModelSpec{InputCostPerImage: Float(0.04), InputCostPerRequest: Float(0.01)},
			want: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CostPerToken(tt.spec); !nearlyEqual(got, tt.want) {
				t.Errorf("CostPerToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxTokenCapacity(t *testing.T) {
	tests := []struct {
		name string
		spec ModelSpec
		want float64
	}{
		{
			name: "no capacity fields returns sentinel",
			spec: ModelSpec{},
			want: CapacityUnknown,
		},
		{
			name: "token fields sum",
			spec: ModelSpec{MaxInputTokens: Float(128000), MaxOutputTokens: Float(16384)},
			want: 144384,
		},
		{
			name: "audio hours scale",
			spec: ModelSpec{MaxAudioLengthHours: Float(2)},
			want: 72000,
		},
		{
			name: "images scale",
			spec: ModelSpec{MaxImagesPerPrompt: Float(4)},
			want: 4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxTokenCapacity(tt.spec); !nearlyEqual(got, tt.want) {
				t.Errorf("MaxTokenCapacity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func nearlyEqual(a, b float64) bool {
	diff := a - b
	return diff < 1e-12 && diff > -1e-12
}
