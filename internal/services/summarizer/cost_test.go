package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	tests := []struct {
		name             string
		model            string
		promptTokens     int
		completionTokens int
		want             float64
	}{
		{"gpt-4-turbo reference point", "gpt-4-turbo", 1000, 500, 0.025},
		{"gpt-4", "gpt-4", 1000, 1000, 0.09},
		{"gpt-3.5-turbo", "gpt-3.5-turbo", 2000, 1000, 0.0025},
		{"zero tokens cost nothing", "gpt-4-turbo", 0, 0, 0},
		{"unknown model uses gpt-4-turbo rates", "some-future-model", 1000, 500, 0.025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCost(tt.model, tt.promptTokens, tt.completionTokens)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
