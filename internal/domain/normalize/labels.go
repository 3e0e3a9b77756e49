package normalize

import (
	"strings"

	"github.com/okian/ohbehave/internal/domain/model"
)

// Labels is the immutable mapping from form event labels to kinds. It is
// built once at startup and injected into the normalizer; nothing
// mutates it afterwards.
type Labels struct {
	byLabel map[string]model.Kind
}

// NewLabels builds a lookup from label -> kind. Labels are matched with
// surrounding whitespace trimmed, since the form options carry stray
// trailing spaces.
func NewLabels(m map[string]model.Kind) Labels {
	byLabel := make(map[string]model.Kind, len(m))
	for label, kind := range m {
		byLabel[strings.TrimSpace(label)] = kind
	}
	return Labels{byLabel: byLabel}
}

// DefaultLabels returns the label set of the source form.
func DefaultLabels() Labels {
	return NewLabels(map[string]model.Kind{
		"ゲイム、友達と": model.KindGamesFriends,
		"ゲイム、自己":  model.KindGamesSolo,
		"飲み物":      model.KindDrink,
		"寝る":       model.KindSleep,
	})
}

// Kind resolves a raw label. The second return is false for labels the
// form does not recognize; such rows are inert, not errors.
func (l Labels) Kind(label string) (model.Kind, bool) {
	k, ok := l.byLabel[strings.TrimSpace(label)]
	return k, ok
}
