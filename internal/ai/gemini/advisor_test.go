package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/ai"
	"github.com/spigell/fitpath/internal/profile"
	"github.com/spigell/fitpath/internal/recommender"
)

var _ ai.Advisor = (*Advisor)(nil)

type stubGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleInputs() (*profile.User, recommender.Recommendation) {
	user := &profile.User{
		ID:     "user1",
		Skills: profile.SkillProfile{Technical: []string{"python"}},
	}
	rec := recommender.Recommendation{
		OpportunityID:   "job1",
		Title:           "Senior Data Scientist",
		Company:         "Tech Corp",
		TotalScore:      0.678,
		WorkEnvironment: profile.Hybrid,
	}
	return user, rec
}

func TestAdvisorAdvise(t *testing.T) {
	stub := &stubGenerator{response: "```\nYou would thrive here.\n```"}
	advisor := NewAdvisor(stub, 0, zap.NewNop())
	user, rec := sampleInputs()

	advice, err := advisor.Advise(context.Background(), user, rec, []string{"Leading   Technical\nTeams"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Text != "You would thrive here." {
		t.Fatalf("unexpected advice text: %q", advice.Text)
	}
	if advice.Raw != stub.response {
		t.Fatalf("expected raw response to be kept")
	}
	if stub.lastSystem != systemInstruction {
		t.Fatalf("unexpected system instruction: %q", stub.lastSystem)
	}

	for _, want := range []string{`"id": "user1"`, `"opportunity_id": "job1"`, "- Leading Technical Teams"} {
		if !strings.Contains(stub.lastPrompt, want) {
			t.Fatalf("expected prompt to contain %q, got: %s", want, stub.lastPrompt)
		}
	}
}

func TestAdvisorEmptyLearningPath(t *testing.T) {
	stub := &stubGenerator{response: "Good match."}
	advisor := NewAdvisor(stub, 50, zap.NewNop())
	user, rec := sampleInputs()

	if _, err := advisor.Advise(context.Background(), user, rec, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stub.lastPrompt, "Learning path:\n- none") {
		t.Fatalf("expected empty learning path placeholder, got: %s", stub.lastPrompt)
	}
}

func TestAdvisorErrors(t *testing.T) {
	t.Parallel()

	user, rec := sampleInputs()
	genErr := errors.New("boom")

	tests := []struct {
		name      string
		generator contentGenerator
		user      *profile.User
	}{
		{name: "nil user", generator: &stubGenerator{response: "x"}},
		{name: "nil generator", user: user},
		{name: "generator failure", generator: &stubGenerator{err: genErr}, user: user},
		{name: "empty advice", generator: &stubGenerator{response: "```\n```"}, user: user},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			advisor := NewAdvisor(tc.generator, 0, nil)
			if _, err := advisor.Advise(context.Background(), tc.user, rec, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestTrimFences(t *testing.T) {
	cases := map[string]string{
		"plain":                     "plain",
		"```text\nhello\n```":       "hello",
		"  ```\nhello world\n```  ": "hello world",
	}
	for input, want := range cases {
		if got := trimFences(input); got != want {
			t.Fatalf("trimFences(%q) = %q, want %q", input, got, want)
		}
	}
}
