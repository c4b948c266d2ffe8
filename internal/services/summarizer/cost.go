package summarizer

// Per-1K-token pricing in USD. Unknown models fall back to the gpt-4-turbo
// rates so cost estimates stay conservative.
type modelRates struct {
	Prompt     float64
	Completion float64
}

var pricing = map[string]modelRates{
	"gpt-4-turbo":   {Prompt: 0.01, Completion: 0.03},
	"gpt-4":         {Prompt: 0.03, Completion: 0.06},
	"gpt-4o":        {Prompt: 0.005, Completion: 0.015},
	"gpt-4o-mini":   {Prompt: 0.00015, Completion: 0.0006},
	"gpt-3.5-turbo": {Prompt: 0.0005, Completion: 0.0015},
}

// CalculateCost estimates the USD cost of one completion call
func CalculateCost(model string, promptTokens, completionTokens int) float64 {
	rates, ok := pricing[model]
	if !ok {
		rates = pricing["gpt-4-turbo"]
	}

	return float64(promptTokens)/1000*rates.Prompt + float64(completionTokens)/1000*rates.Completion
}
