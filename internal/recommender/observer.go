package recommender

// Observer receives engine events. Implementations must be safe for concurrent use.
type Observer interface {
	Recommended(userID string, totals []float64)
	SatisfactionRecorded(known bool)
	Reevaluated(userID string, trailingMean float64)
	LearningPathResolved(resolved, omitted int)
}

type nopObserver struct{}

func (nopObserver) Recommended(string, []float64) {}

func (nopObserver) SatisfactionRecorded(bool) {}

func (nopObserver) Reevaluated(string, float64) {}

func (nopObserver) LearningPathResolved(int, int) {}
