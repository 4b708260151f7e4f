package openai

import "fmt"

// Model identifies one of the chat models accepted by the completions
// endpoint. The zero value is GPT35Turbo.
type Model int

const (
	GPT35Turbo Model = iota
	GPT35Turbo16K
	GPT35TurboInstruct
	GPT35Turbo1106
	GPT41106Preview
	GPT4
	GPT432K
	GPT4Instruct
	GPT432K0613

	// modelCount must stay last. Tests iterate up to it, so a new
	// constant added without a String case fails the suite.
	modelCount
)

// String returns the wire identifier the API expects for the model,
// e.g. "gpt-3.5-turbo".
func (m Model) String() string {
	switch m {
	case GPT35Turbo:
		return "gpt-3.5-turbo"
	case GPT35Turbo16K:
		return "gpt-3.5-turbo-16k"
	case GPT35TurboInstruct:
		return "gpt-3.5-turbo-instruct"
	case GPT35Turbo1106:
		return "gpt-3.5-turbo-1106"
	case GPT41106Preview:
		return "gpt-4-1106-preview"
	case GPT4:
		return "gpt-4"
	case GPT432K:
		return "gpt-4-32k"
	case GPT4Instruct:
		return "gpt-4-instruct"
	case GPT432K0613:
		return "gpt-4-32k-0613"
	}
	return ""
}

// ParseModel returns the Model whose wire identifier equals s.
func ParseModel(s string) (Model, error) {
	for m := Model(0); m < modelCount; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown model: %s", s)
}

// Models returns every known model in declaration order.
func Models() []Model {
	models := make([]Model, 0, int(modelCount))
	for m := Model(0); m < modelCount; m++ {
		models = append(models, m)
	}
	return models
}
