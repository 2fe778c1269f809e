package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spigell/fitpath/internal/ai"
	"github.com/spigell/fitpath/internal/catalog"
	"github.com/spigell/fitpath/internal/filtering"
	"github.com/spigell/fitpath/internal/metrics"
	"github.com/spigell/fitpath/internal/profile"
	"github.com/spigell/fitpath/internal/recommender"
)

func sampleSession(cfg *Config) *session {
	if cfg == nil {
		cfg = &Config{}
	}
	recorder := metrics.New()
	engine := catalog.Sample().Engine(zap.NewNop())
	engine.SetObserver(recorder)
	return &session{config: cfg, logger: zap.NewNop(), engine: engine, recorder: recorder}
}

func TestRecommendFiltered(t *testing.T) {
	s := sampleSession(&Config{Recommend: &RecommendConfig{
		Filter: &filtering.Config{ExcludeCompanies: []string{"Big Retail"}},
	}})

	recs, err := recommendFiltered(s, "user1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.Company == "Big Retail" {
			t.Fatalf("excluded company returned: %+v", rec)
		}
	}

	recs, err = recommendFiltered(s, "user1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected limit to apply after filtering, got %d", len(recs))
	}

	if _, err := recommendFiltered(s, "ghost", 5); !errors.Is(err, recommender.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResolveLimit(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().Int("limit", recommender.DefaultLimit, "")
		return c
	}

	if got := resolveLimit(newCmd(), &Config{}); got != recommender.DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}

	two, zero := 2, 0
	if got := resolveLimit(newCmd(), &Config{Recommend: &RecommendConfig{Limit: &two}}); got != 2 {
		t.Fatalf("expected config limit 2, got %d", got)
	}

	if got := resolveLimit(newCmd(), &Config{Recommend: &RecommendConfig{Limit: &zero}}); got != 0 {
		t.Fatalf("expected explicit zero limit to be kept, got %d", got)
	}

	c := newCmd()
	if err := c.Flags().Set("limit", "7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if got := resolveLimit(c, &Config{Recommend: &RecommendConfig{Limit: &two}}); got != 7 {
		t.Fatalf("expected flag limit 7, got %d", got)
	}
}

func TestConfigExplicitZeroLimit(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader("recommend:\n  limit: 0\n")); err != nil {
		t.Fatalf("reading config: %v", err)
	}

	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}

	newCmd := &cobra.Command{}
	newCmd.Flags().Int("limit", recommender.DefaultLimit, "")
	if got := resolveLimit(newCmd, config); got != 0 {
		t.Fatalf("expected limit 0 from config, got %d", got)
	}

	recs, err := recommendFiltered(sampleSession(config), "user1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", recs)
	}
}

func TestFailFlushesMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitpath.prom")
	s := sampleSession(&Config{MetricsFile: path})
	s.logger = zap.New(zapcore.NewNopCore(), zap.WithFatalHook(zapcore.WriteThenPanic))

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected fatal hook to panic")
			}
		}()
		s.fail("getting recommendations", recommender.ErrUserNotFound)
	}()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected metrics file to be written before exit: %v", err)
	}
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	printRecommendations(&buf, []recommender.Recommendation{{
		OpportunityID:       "job1",
		Title:               "Senior Data Scientist",
		Company:             "Tech Corp",
		TotalScore:          0.6783,
		GrowthOpportunities: []string{"management track", "research projects"},
		WorkEnvironment:     profile.Hybrid,
	}})

	out := buf.String()
	for _, want := range []string{
		"1. Senior Data Scientist (job1)",
		"Environment: Hybrid",
		"Total Match Score: 0.68",
		"Growth: management track, research projects",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	buf.Reset()
	printRecommendations(&buf, nil)
	if !strings.Contains(buf.String(), "No recommendations") {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestPrintLearningPath(t *testing.T) {
	var buf bytes.Buffer
	printLearningPath(&buf, []string{"Leading Technical Teams (course)"})
	if !strings.Contains(buf.String(), "  - Leading Technical Teams (course)") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

type stubAdvisor struct {
	path []string
	rec  recommender.Recommendation
}

func (s *stubAdvisor) Advise(_ context.Context, _ *profile.User, rec recommender.Recommendation, path []string) (*ai.Advice, error) {
	s.rec = rec
	s.path = path
	return &ai.Advice{Text: "go for it"}, nil
}

func TestAdvise(t *testing.T) {
	s := sampleSession(nil)
	stub := &stubAdvisor{}

	advice, err := advise(context.Background(), s, stub, "user1", "job1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice.Text != "go for it" {
		t.Fatalf("unexpected advice: %q", advice.Text)
	}
	if stub.rec.OpportunityID != "job1" {
		t.Fatalf("expected job1 recommendation, got %q", stub.rec.OpportunityID)
	}
	if len(stub.path) != 1 || stub.path[0] != "Leading Technical Teams (course)" {
		t.Fatalf("unexpected learning path: %v", stub.path)
	}

	if _, err := advise(context.Background(), s, stub, "user1", "ghost"); !errors.Is(err, recommender.ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
	if _, err := advise(context.Background(), s, stub, "ghost", "job1"); !errors.Is(err, recommender.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNewAdvisorRequiresConfig(t *testing.T) {
	t.Setenv(geminiAPIKeyEnv, "")

	tests := []struct {
		name string
		cfg  *AIConfig
	}{
		{name: "nil"},
		{name: "disabled", cfg: &AIConfig{Gemini: &GeminiConfig{APIKey: "key"}}},
		{name: "no gemini section", cfg: &AIConfig{Enabled: true}},
		{name: "no api key", cfg: &AIConfig{Enabled: true, Gemini: &GeminiConfig{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newAdvisor(context.Background(), tt.cfg, zap.NewNop()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "0.4", want: 0.4},
		{input: " 1 ", want: 1},
		{input: "1.2", wantErr: true},
		{input: "-0.1", wantErr: true},
		{input: "0.5abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := parseScore(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("parseScore(%q) = %v, %v", tt.input, got, err)
			}
			if validateScore(tt.input) != nil {
				t.Fatalf("expected %q to validate", tt.input)
			}
		})
	}
}
