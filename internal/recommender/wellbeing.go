package recommender

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/logger"
)

const (
	// ReevaluationWindow is the number of most recent satisfaction scores averaged.
	ReevaluationWindow = 3
	// ReevaluationThreshold triggers new recommendations when the trailing mean drops below it.
	ReevaluationThreshold = 0.6
	// ReevaluationLimit caps the recommendations returned by a re-evaluation.
	ReevaluationLimit = 3
)

// Reevaluation is the outcome of a triggered re-evaluation.
type Reevaluation struct {
	TrailingMean    float64
	Recommendations []Recommendation
}

// RecordSatisfaction appends score to the user's satisfaction history as-is.
// When the mean of the last ReevaluationWindow scores falls below
// ReevaluationThreshold, fresh recommendations are computed and returned with
// true. Otherwise the result is (Reevaluation{}, false), including for unknown
// users, which are ignored.
func (e *Engine) RecordSatisfaction(userID string, score float64) (Reevaluation, bool) {
	entry, ok := e.lookupUser(userID)

	e.mu.RLock()
	observer := e.observer
	e.mu.RUnlock()
	observer.SatisfactionRecorded(ok)

	if !ok {
		e.logger.Debug("ignoring satisfaction for unknown user", zap.String(logger.FieldUserID, userID))
		return Reevaluation{}, false
	}

	entry.mu.Lock()
	entry.user.Emotional.SatisfactionHistory = append(entry.user.Emotional.SatisfactionHistory, score)
	mean, full := trailingMean(entry.user.Emotional.SatisfactionHistory, ReevaluationWindow)
	entry.mu.Unlock()

	fields := []zap.Field{
		zap.String(logger.FieldUserID, userID),
		zap.Float64("score", score),
	}
	if !full || mean >= ReevaluationThreshold {
		e.logger.Debug("satisfaction recorded", fields...)
		return Reevaluation{}, false
	}

	e.logger.Info("low satisfaction, re-evaluating opportunities",
		append(fields, zap.Float64("trailing_mean", mean), zap.Float64("threshold", ReevaluationThreshold))...,
	)
	observer.Reevaluated(userID, mean)

	recs, err := e.Recommend(userID, ReevaluationLimit)
	if err != nil {
		// users are never removed, so this only happens on programmer error
		e.logger.Error("re-evaluation failed", append(fields, zap.Error(err))...)
		return Reevaluation{}, false
	}

	return Reevaluation{TrailingMean: mean, Recommendations: recs}, true
}

// SatisfactionHistory returns a copy of the user's satisfaction history.
func (e *Engine) SatisfactionHistory(userID string) ([]float64, error) {
	entry, ok := e.lookupUser(userID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return slices.Clone(entry.user.Emotional.SatisfactionHistory), nil
}

func trailingMean(history []float64, window int) (float64, bool) {
	if window <= 0 || len(history) < window {
		return 0, false
	}

	sum := 0.0
	for _, v := range history[len(history)-window:] {
		sum += v
	}
	return sum / float64(window), true
}
