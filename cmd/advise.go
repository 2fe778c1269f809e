package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/ai"
	"github.com/spigell/fitpath/internal/ai/gemini"
	"github.com/spigell/fitpath/internal/recommender"
	"github.com/spigell/fitpath/internal/secrets"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask Gemini to explain why an opportunity fits a user and how to close the gaps",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		s := newSession()
		defer s.close()

		userID, _ := cmd.Flags().GetString("user")
		opportunityID, _ := cmd.Flags().GetString("opportunity")

		advisor, err := newAdvisor(ctx, s.config.AI, s.logger)
		if err != nil {
			s.fatal("creating the advisor", zap.Error(err))
		}

		advice, err := advise(ctx, s, advisor, userID, opportunityID)
		if err != nil {
			s.fail("getting advice", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), advice.Text)
	},
}

func init() {
	rootCmd.AddCommand(adviseCmd)

	adviseCmd.Flags().StringP("user", "u", "", "user id")
	adviseCmd.Flags().StringP("opportunity", "o", "", "opportunity id")
	adviseCmd.MarkFlagRequired("user")
	adviseCmd.MarkFlagRequired("opportunity")
}

func newAdvisor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Advisor, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("ai is disabled; set ai.enabled to true")
	}
	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required under ai.gemini")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Env:   geminiAPIKeyEnv,
		Value: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or %s)", err, geminiAPIKeyEnv)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAdvisor(generator, cfg.Gemini.MaxLogLength, genLogger), nil
}

// advise scores the single opportunity for the user and asks the advisor to explain it.
func advise(ctx context.Context, s *session, advisor ai.Advisor, userID, opportunityID string) (*ai.Advice, error) {
	user, err := s.engine.User(userID)
	if err != nil {
		return nil, err
	}

	rec, err := findRecommendation(s.engine, userID, opportunityID)
	if err != nil {
		return nil, err
	}

	path, err := s.engine.SuggestLearningPath(userID, opportunityID)
	if err != nil {
		return nil, err
	}

	return advisor.Advise(ctx, user, rec, path)
}

func findRecommendation(engine *recommender.Engine, userID, opportunityID string) (recommender.Recommendation, error) {
	if _, err := engine.Opportunity(opportunityID); err != nil {
		return recommender.Recommendation{}, err
	}

	recs, err := engine.Recommend(userID, len(engine.Opportunities()))
	if err != nil {
		return recommender.Recommendation{}, err
	}

	for _, rec := range recs {
		if rec.OpportunityID == opportunityID {
			return rec, nil
		}
	}

	return recommender.Recommendation{}, fmt.Errorf("%w: %s", recommender.ErrOpportunityNotFound, opportunityID)
}
