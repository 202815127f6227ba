package llm

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cognicore/recap/pkg/recap/persona"
	"github.com/cognicore/recap/pkg/recap/report"
	"github.com/cognicore/recap/pkg/recap/stats"
)

type roundTrip func(*http.Request) *http.Response

func (rt roundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req), nil
}

func testSummary() report.FeatureSummary {
	return report.FeatureSummary{
		GroupName:         "og squad",
		Year:              2024,
		TotalMessages:     500,
		TotalParticipants: 3,
		PeakHour:          22,
		Topics:            []string{"cricket", "exams"},
		TopWords:          []stats.NameCount{{Name: "macha", Count: 40}},
		TopChatters:       []stats.NameCount{{Name: "Arjun", Count: 300}, {Name: "Bala", Count: 200}},
		SignatureWords: map[string][]stats.SignatureWord{
			"Arjun": {{Word: "semma"}},
		},
		Tags: map[string][]persona.Tag{
			"Arjun": {{Name: "chatterbox"}},
		},
	}
}

func TestGenerateRoastsSuccess(t *testing.T) {
	client := &Client{
		BaseURL: "https://api.test/v1/chat/completions",
		Model:   "gpt-test",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				body, _ := io.ReadAll(req.Body)
				payload := string(body)
				for _, want := range []string{"og squad", "Arjun", "semma", "macha(40)", "chatterbox"} {
					if !strings.Contains(payload, want) {
						t.Errorf("prompt missing %q", want)
					}
				}
				return &http.Response{
					StatusCode: 200,
					Body: io.NopCloser(strings.NewReader(`{
						"choices":[{"message":{"role":"assistant","content":"{\"brainrot_score\":84,\"group_roast\":\"cooked\",\"individual_roasts\":{\"Arjun\":\"delulu\"}}"}}]
					}`)),
					Header: make(http.Header),
				}
			}),
		},
	}

	out, err := client.GenerateRoasts(context.Background(), testSummary())
	if err != nil {
		t.Fatalf("GenerateRoasts: %v", err)
	}
	if out.BrainrotScore != 84 || out.GroupRoast != "cooked" {
		t.Errorf("result = %+v", out)
	}
	if out.IndividualRoasts["Arjun"] != "delulu" {
		t.Errorf("individual roasts = %v", out.IndividualRoasts)
	}
}

func TestGenerateRoastsAPIError(t *testing.T) {
	client := &Client{
		BaseURL: "https://api.test/v1/chat/completions",
		Model:   "gpt-test",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				return &http.Response{
					StatusCode: 200,
					Body:       io.NopCloser(strings.NewReader(`{"error":{"message":"quota exceeded"}}`)),
					Header:     make(http.Header),
				}
			}),
		},
	}
	if _, err := client.GenerateRoasts(context.Background(), testSummary()); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateRoastsMissingConfig(t *testing.T) {
	client := &Client{}
	if _, err := client.GenerateRoasts(context.Background(), testSummary()); err == nil {
		t.Fatal("expected error for missing base URL and model")
	}
}

func TestParseRoastsCoercion(t *testing.T) {
	out, err := parseRoasts(`{
		"brainrot_score": "73",
		"group_roast": ["line one", "line two"],
		"individual_roasts": {"Arjun": ["a", "b"], "Bala": "plain"}
	}`)
	if err != nil {
		t.Fatalf("parseRoasts: %v", err)
	}
	if out.BrainrotScore != 73 {
		t.Errorf("score = %d, want 73", out.BrainrotScore)
	}
	if out.GroupRoast != "line one line two" {
		t.Errorf("group roast = %q", out.GroupRoast)
	}
	if out.IndividualRoasts["Arjun"] != "a b" || out.IndividualRoasts["Bala"] != "plain" {
		t.Errorf("individual roasts = %v", out.IndividualRoasts)
	}
}

func TestParseRoastsDefaults(t *testing.T) {
	out, err := parseRoasts(`{}`)
	if err != nil {
		t.Fatalf("parseRoasts: %v", err)
	}
	if out.BrainrotScore != 69 {
		t.Errorf("score = %d, want default 69", out.BrainrotScore)
	}
	if out.GroupRoast == "" {
		t.Error("expected default group roast")
	}
	if len(out.IndividualRoasts) != 0 {
		t.Errorf("individual roasts = %v, want empty", out.IndividualRoasts)
	}
}

func TestParseRoastsInvalidJSON(t *testing.T) {
	if _, err := parseRoasts("not json at all"); err == nil {
		t.Fatal("expected error for non-JSON payload")
	}
}
