package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/fitpath/internal/recommender"
)

func printRecommendations(w io.Writer, recs []recommender.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return
	}

	for i, rec := range recs {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, rec.Title, rec.OpportunityID)
		fmt.Fprintf(w, "   Company: %s\n", rec.Company)
		fmt.Fprintf(w, "   Environment: %s\n", rec.WorkEnvironment.Label())
		fmt.Fprintf(w, "   Total Match Score: %.2f\n", rec.TotalScore)
		fmt.Fprintf(w, "   Personality Match: %.2f\n", rec.PersonalityMatch)
		fmt.Fprintf(w, "   Emotional Fit: %.2f\n", rec.EmotionalFit)
		fmt.Fprintf(w, "   Skill Match: %.2f\n", rec.SkillMatch)
		if len(rec.GrowthOpportunities) > 0 {
			fmt.Fprintf(w, "   Growth: %s\n", strings.Join(rec.GrowthOpportunities, ", "))
		}
	}
}

func printLearningPath(w io.Writer, path []string) {
	if len(path) == 0 {
		fmt.Fprintln(w, "No learning resources needed or available.")
		return
	}

	fmt.Fprintln(w, "Learning path:")
	for _, item := range path {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
