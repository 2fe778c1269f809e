package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/ai"
	"github.com/spigell/fitpath/internal/logger"
	"github.com/spigell/fitpath/internal/profile"
	"github.com/spigell/fitpath/internal/recommender"
	"github.com/spigell/fitpath/internal/utils"
)

const (
	defaultMaxLogLength = 200
	systemInstruction   = "You are a supportive, concrete career coach. Answer in plain text."
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

// Advisor asks Gemini for a narrative explanation of a recommendation.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAdvisor(generator contentGenerator, maxLogLength int, log *zap.Logger) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Advisor{
		generator: generator,
		logger:    logger.OrNop(log),
		maxLogLen: maxLogLength,
	}
}

func (a *Advisor) Advise(ctx context.Context, user *profile.User, rec recommender.Recommendation, learningPath []string) (*ai.Advice, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required")
	}
	if a.generator == nil {
		return nil, fmt.Errorf("gemini generator is required")
	}

	profileJSON, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	recJSON, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal recommendation payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON), string(recJSON), learningPath)
	log := logger.ForMatch(a.logger, user.ID, rec.OpportunityID)

	log.Debug("gemini advice request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	log.Debug("gemini advice response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	text := trimFences(raw)
	if text == "" {
		return nil, fmt.Errorf("gemini returned empty advice")
	}

	return &ai.Advice{Text: text, Raw: raw}, nil
}

func buildPrompt(profileJSON, recommendationJSON string, learningPath []string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_JSON}}\n\nRecommendation:\n{{RECOMMENDATION_JSON}}\n\nLearning path:\n{{LEARNING_PATH}}"
	}

	path := "- none"
	if len(learningPath) > 0 {
		lines := make([]string, 0, len(learningPath))
		for _, item := range learningPath {
			lines = append(lines, "- "+strings.Join(strings.Fields(item), " "))
		}
		path = strings.Join(lines, "\n")
	}

	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON)
	prompt = strings.ReplaceAll(prompt, "{{RECOMMENDATION_JSON}}", recommendationJSON)
	prompt = strings.ReplaceAll(prompt, "{{LEARNING_PATH}}", path)
	return prompt
}

func trimFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
