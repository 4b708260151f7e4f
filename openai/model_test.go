package openai

import (
	"regexp"
	"testing"
)

func TestModelString(t *testing.T) {
	wire := map[Model]string{
		GPT35Turbo:         "gpt-3.5-turbo",
		GPT35Turbo16K:      "gpt-3.5-turbo-16k",
		GPT35TurboInstruct: "gpt-3.5-turbo-instruct",
		GPT35Turbo1106:     "gpt-3.5-turbo-1106",
		GPT41106Preview:    "gpt-4-1106-preview",
		GPT4:               "gpt-4",
		GPT432K:            "gpt-4-32k",
		GPT4Instruct:       "gpt-4-instruct",
		GPT432K0613:        "gpt-4-32k-0613",
	}
	if len(wire) != int(modelCount) {
		t.Fatalf("wire table covers %d models, want %d", len(wire), int(modelCount))
	}
	for model, want := range wire {
		if got := model.String(); got != want {
			t.Fatalf("model %d: got %q, want %q", int(model), got, want)
		}
	}
}

func TestModelStringTotal(t *testing.T) {
	pattern := regexp.MustCompile(`^gpt-[0-9.]+(-[a-z0-9]+)*$`)
	seen := make(map[string]Model, int(modelCount))
	for m := Model(0); m < modelCount; m++ {
		s := m.String()
		if s == "" {
			t.Fatalf("model %d has no wire identifier", int(m))
		}
		if !pattern.MatchString(s) {
			t.Fatalf("model %d: identifier %q does not match %v", int(m), s, pattern)
		}
		if prev, ok := seen[s]; ok {
			t.Fatalf("models %d and %d share identifier %q", int(prev), int(m), s)
		}
		seen[s] = m
		if again := m.String(); again != s {
			t.Fatalf("model %d: formatting not deterministic: %q then %q", int(m), s, again)
		}
	}
}

func TestParseModel(t *testing.T) {
	for m := Model(0); m < modelCount; m++ {
		parsed, err := ParseModel(m.String())
		if err != nil {
			t.Fatalf("parse %q: %v", m.String(), err)
		}
		if parsed != m {
			t.Fatalf("parse %q: got model %d, want %d", m.String(), int(parsed), int(m))
		}
	}
}

func TestParseModelUnknown(t *testing.T) {
	if _, err := ParseModel("gpt-9-imaginary"); err == nil {
		t.Fatalf("expected error for unknown model")
	}
	if _, err := ParseModel(""); err == nil {
		t.Fatalf("expected error for empty model")
	}
}

func TestModels(t *testing.T) {
	models := Models()
	if len(models) != int(modelCount) {
		t.Fatalf("got %d models, want %d", len(models), int(modelCount))
	}
	for i, m := range models {
		if m != Model(i) {
			t.Fatalf("index %d: got model %d", i, int(m))
		}
	}
}
