package work

import (
	"math"
	"time"

	"github.com/mt2web/mt2web/internal/domain"
)

// travelDuration is ceil(distance / speed) whole seconds, capped at maxTravel
func travelDuration(from, to domain.Position, speed float64, maxTravel time.Duration) time.Duration {
	if speed <= 0 {
		speed = DefaultTravelSpeed
	}
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	secs := math.Ceil(math.Hypot(dx, dy) / speed)

	d := time.Duration(secs) * time.Second
	if maxTravel > 0 && d > maxTravel {
		d = maxTravel
	}
	return d
}

// ceilSeconds converts a remaining duration into whole seconds, never negative
func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

// setCountdowns fills the live countdown fields. Only the head of the queue
// is running; later entries report their full static durations.
func setCountdowns(works []domain.Work, now time.Time) {
	for i := range works {
		w := &works[i]
		if i > 0 {
			w.TravelTime = ceilSeconds(w.TravelDuration)
			w.RemainingTime = ceilSeconds(w.JobDuration)
			continue
		}
		if w.IsInProgress {
			w.TravelTime = 0
			w.RemainingTime = ceilSeconds(w.JobEndTime.Sub(now))
			continue
		}
		w.TravelTime = ceilSeconds(w.TravelEndTime.Sub(now))
		w.RemainingTime = ceilSeconds(w.JobDuration)
	}
}
