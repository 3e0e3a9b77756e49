package normalize

import (
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
)

// ResolveRetroDate infers the calendar date a retro report with a blank
// date field actually describes, from the submission time and the
// reported retro hour alone.
//
// The rule encodes the author's operational assumption that retro times
// are reported within the same wakeful period unless the hour of day
// crosses the latest-sleep-hour boundary in a detectable direction. The
// eight branches below are a faithful policy choice; ambiguous same-side
// pairs far apart (3am reporting 11pm) are accepted misclassifications.
func ResolveRetroDate(live time.Time, retroHour int, asmp model.Assumptions) (time.Time, error) {
	date := midnight(live)
	delta := retroHour - live.Hour()

	// Future-leaning: the retro hour is at most the threshold ahead of
	// the submission hour, on either side of a midnight crossing.
	future := delta <= asmp.FutureRetroThresholdHours ||
		delta <= asmp.FutureRetroThresholdHours-24

	beforeLatestLive := live.Hour() < asmp.LatestSleepHour
	beforeLatestRetro := retroHour < asmp.LatestSleepHour

	if future {
		switch {
		case beforeLatestLive == beforeLatestRetro:
			return date, nil
		case !beforeLatestLive && beforeLatestRetro:
			// Reported late evening about the small hours ahead.
			return date.AddDate(0, 0, 1), nil
		default:
			// beforeLatestLive && !beforeLatestRetro cannot happen for a
			// future-leaning report under the assumption above.
			return time.Time{}, ErrUnclassifiedRetroCase
		}
	}

	// Ordinary past report.
	if beforeLatestLive && !beforeLatestRetro {
		// Reported in the small hours about the previous evening.
		return date.AddDate(0, 0, -1), nil
	}
	return date, nil
}

// midnight truncates t to the start of its calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
