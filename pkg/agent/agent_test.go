package agent

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/whatsx/formkit/pkg/model"
)

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(context.Background(), model.AgentConfig{Enabled: true})
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello "), genai.Text("there")}}},
		},
	}
	if got := responseText(resp); got != "Hello there" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestResponseText_Empty(t *testing.T) {
	if responseText(nil) != "" {
		t.Fatal("nil response should yield empty text")
	}
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}, nil},
	}
	if responseText(resp) != "" {
		t.Fatal("candidates without content should yield empty text")
	}
}
