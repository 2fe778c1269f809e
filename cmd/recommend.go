package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/filtering"
	"github.com/spigell/fitpath/internal/logger"
	"github.com/spigell/fitpath/internal/recommender"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank career opportunities for a user",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		defer s.close()

		userID, _ := cmd.Flags().GetString("user")
		limit := resolveLimit(cmd, s.config)

		recs, err := recommendFiltered(s, userID, limit)
		if err != nil {
			s.fail("getting recommendations", err)
		}

		printRecommendations(cmd.OutOrStdout(), recs)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("user", "u", "", "user id to recommend for")
	recommendCmd.Flags().IntP("limit", "l", recommender.DefaultLimit, "maximum number of recommendations")
	recommendCmd.MarkFlagRequired("user")
}

// resolveLimit prefers an explicit flag, then the config, then the default.
func resolveLimit(cmd *cobra.Command, config *Config) int {
	if flag := cmd.Flags().Lookup("limit"); flag != nil && flag.Changed {
		limit, _ := cmd.Flags().GetInt("limit")
		return limit
	}
	if config != nil && config.Recommend != nil && config.Recommend.Limit != nil {
		return *config.Recommend.Limit
	}
	return recommender.DefaultLimit
}

// recommendFiltered ranks opportunities and applies the configured filters.
func recommendFiltered(s *session, userID string, limit int) ([]recommender.Recommendation, error) {
	var filterCfg *filtering.Config
	if s.config.Recommend != nil {
		filterCfg = s.config.Recommend.Filter
	}

	filters, err := filtering.FromConfig(filterCfg, s.logger)
	if err != nil {
		return nil, err
	}

	// filters run over the full ranking so the limit applies to what survives
	recs, err := s.engine.Recommend(userID, len(s.engine.Opportunities()))
	if err != nil {
		return nil, err
	}

	recs = filters.Run(recs)
	limit = max(limit, 0)
	if limit < len(recs) {
		recs = recs[:limit]
	}

	s.logger.Info("recommendations ready", zap.String(logger.FieldUserID, userID), zap.Int("count", len(recs)))
	return recs, nil
}
