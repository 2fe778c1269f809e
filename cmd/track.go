package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/logger"
	"github.com/spigell/fitpath/internal/recommender"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record job satisfaction scores and re-evaluate when satisfaction stays low",
	Long: fmt.Sprintf(
		"Appends each --score to the user's satisfaction history in order. When the mean of the last %d scores drops below %.1f, fresh recommendations are printed.",
		recommender.ReevaluationWindow, recommender.ReevaluationThreshold,
	),
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		defer s.close()

		userID, _ := cmd.Flags().GetString("user")
		scores, _ := cmd.Flags().GetFloat64Slice("score")

		if _, err := s.engine.User(userID); err != nil {
			// the engine ignores unknown users; tell the CLI user anyway
			s.logger.Warn("unknown user, scores will be ignored", zap.String(logger.FieldUserID, userID))
		}

		out := cmd.OutOrStdout()
		for _, score := range scores {
			re, triggered := s.engine.RecordSatisfaction(userID, score)
			if !triggered {
				fmt.Fprintf(out, "Recorded %.2f.\n", score)
				continue
			}

			fmt.Fprintf(out, "Recorded %.2f. Recent satisfaction averages %.2f, consider these opportunities:\n", score, re.TrailingMean)
			printRecommendations(out, re.Recommendations)
		}

		if history, err := s.engine.SatisfactionHistory(userID); err == nil {
			s.logger.Info("satisfaction history", zap.String(logger.FieldUserID, userID), zap.Float64s("history", history))
		}
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringP("user", "u", "", "user id to record satisfaction for")
	trackCmd.Flags().Float64SliceP("score", "s", nil, "satisfaction score in [0,1]; repeat for several observations")
	trackCmd.MarkFlagRequired("user")
	trackCmd.MarkFlagRequired("score")
}
