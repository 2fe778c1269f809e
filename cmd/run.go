package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/ai"
	"github.com/spigell/fitpath/internal/recommender"
)

const (
	PromptLearningPath = "Show learning path"
	PromptAdvice       = "Ask for advice"
	PromptSatisfaction = "Record satisfaction"
	PromptBack         = "back"
	PromptExit         = "exit"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Browse recommendations for a user interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("user", "u", "", "user id; asked interactively when empty")
	runCmd.Flags().IntP("limit", "l", recommender.DefaultLimit, "maximum number of recommendations")
}

// run is the interactive command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()
	s := newSession()
	defer s.close()

	userID, _ := cmd.Flags().GetString("user")
	if userID == "" {
		userPrompt := promptui.Select{Label: "Choose a user", Items: s.engine.Users()}
		_, selected, err := userPrompt.Run()
		if err != nil {
			s.fatal("exiting", zap.Error(err))
		}
		userID = selected
	}

	// advice is optional in interactive mode
	advisor, err := newAdvisor(ctx, s.config.AI, s.logger)
	if err != nil {
		s.logger.Debug("advice disabled", zap.Error(err))
	}

	out := cmd.OutOrStdout()
	limit := resolveLimit(cmd, s.config)

	for {
		recs, err := recommendFiltered(s, userID, limit)
		if err != nil {
			s.fail("getting recommendations", err)
		}

		printRecommendations(out, recs)
		if len(recs) == 0 {
			return
		}

		rec, err := chooseRecommendation(recs)
		if err != nil {
			if errors.Is(err, errExit) {
				return
			}
			s.fatal("exiting", zap.Error(err))
		}

		if err := handleOpportunity(ctx, s, advisor, out, userID, rec); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			s.fatal("exiting", zap.Error(err))
		}
	}
}

func chooseRecommendation(recs []recommender.Recommendation) (recommender.Recommendation, error) {
	items := make([]string, 0, len(recs)+1)
	for _, rec := range recs {
		items = append(items, fmt.Sprintf("%s %s / %s / %.2f", rec.OpportunityID, rec.Title, rec.Company, rec.TotalScore))
	}

	prompt := promptui.Select{
		Label: "Choose an opportunity and press ENTER",
		Items: append(items, PromptExit),
	}

	idx, selected, err := prompt.Run()
	if err != nil {
		return recommender.Recommendation{}, err
	}
	if selected == PromptExit {
		return recommender.Recommendation{}, errExit
	}

	return recs[idx], nil
}

func handleOpportunity(ctx context.Context, s *session, advisor ai.Advisor, out io.Writer, userID string, rec recommender.Recommendation) error {
	actions := []string{PromptLearningPath, PromptSatisfaction}
	if advisor != nil {
		actions = append(actions, PromptAdvice)
	}

	for {
		prompt := promptui.Select{
			Label: fmt.Sprintf("%s at %s", rec.Title, rec.Company),
			Items: append(append([]string{}, actions...), PromptBack, PromptExit),
		}

		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptLearningPath:
			path, err := s.engine.SuggestLearningPath(userID, rec.OpportunityID)
			if err != nil {
				return err
			}
			printLearningPath(out, path)
		case PromptAdvice:
			advice, err := advise(ctx, s, advisor, userID, rec.OpportunityID)
			if err != nil {
				s.logger.Warn("advice failed", zap.Error(err))
				continue
			}
			fmt.Fprintln(out, advice.Text)
		case PromptSatisfaction:
			if err := promptSatisfaction(s, out, userID); err != nil {
				return err
			}
		case PromptBack:
			return nil
		case PromptExit:
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func promptSatisfaction(s *session, out io.Writer, userID string) error {
	prompt := promptui.Prompt{
		Label:    "Current job satisfaction (0-1)",
		Validate: validateScore,
	}

	raw, err := prompt.Run()
	if err != nil {
		return err
	}

	score, _ := parseScore(raw)
	re, triggered := s.engine.RecordSatisfaction(userID, score)
	if !triggered {
		fmt.Fprintf(out, "Recorded %.2f.\n", score)
		return nil
	}

	fmt.Fprintf(out, "Recent satisfaction averages %.2f, consider these opportunities:\n", re.TrailingMean)
	printRecommendations(out, re.Recommendations)
	return nil
}

func validateScore(raw string) error {
	_, err := parseScore(raw)
	return err
}

func parseScore(raw string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if score < 0 || score > 1 {
		return 0, fmt.Errorf("score must be between 0 and 1")
	}
	return score, nil
}
