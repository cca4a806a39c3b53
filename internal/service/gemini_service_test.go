package service

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("MH12"), genai.Text("AB3456")},
				},
			},
		},
	}

	text, err := extractText(resp)
	if err != nil {
		t.Fatalf("extractText returned error: %v", err)
	}
	if text != "MH12AB3456" {
		t.Errorf("text = %q, expected %q", text, "MH12AB3456")
	}
}

func TestExtractText_EmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"no text parts", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := extractText(tt.resp); err == nil {
				t.Error("Expected error for response without text, got nil")
			}
		})
	}
}
