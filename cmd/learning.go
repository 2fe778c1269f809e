package cmd

import (
	"github.com/spf13/cobra"
)

var learningPathCmd = &cobra.Command{
	Use:   "learning-path",
	Short: "Suggest learning resources for the skills a user lacks for an opportunity",
	Run: func(cmd *cobra.Command, _ []string) {
		s := newSession()
		defer s.close()

		userID, _ := cmd.Flags().GetString("user")
		opportunityID, _ := cmd.Flags().GetString("opportunity")

		path, err := s.engine.SuggestLearningPath(userID, opportunityID)
		if err != nil {
			s.fail("suggesting a learning path", err)
		}

		printLearningPath(cmd.OutOrStdout(), path)
	},
}

func init() {
	rootCmd.AddCommand(learningPathCmd)

	learningPathCmd.Flags().StringP("user", "u", "", "user id")
	learningPathCmd.Flags().StringP("opportunity", "o", "", "opportunity id")
	learningPathCmd.MarkFlagRequired("user")
	learningPathCmd.MarkFlagRequired("opportunity")
}
