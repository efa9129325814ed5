package meetings

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// InvalidTimeError reports a start time that could not be normalized.
type InvalidTimeError struct {
	Input string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("Invalid time format: %s", e.Input)
}

// bare clock-time layouts, tried in order
var clockLayouts = []string{
	"03:04 PM",
	"3:04 PM",
	"03:04PM",
	"3:04PM",
	"15:04:05",
	"15:04",
}

// NormalizeStartTime converts a free-form time string into a canonical
// YYYY-MM-DDTHH:MM:SSZ UTC timestamp.
//
// Inputs containing both a "T" separator and a "Z" marker are passed through
// unchanged. This is a substring check, not structural validation, so a
// malformed string carrying both markers reaches the upstream API as-is.
// Short inputs with a colon are treated as a bare clock time on today's UTC
// date; everything else goes through flexible natural parsing.
func NormalizeStartTime(input string) (string, error) {
	if strings.Contains(input, "T") && strings.Contains(input, "Z") {
		return input, nil
	}

	if len(input) <= 10 && strings.Contains(input, ":") {
		for _, layout := range clockLayouts {
			t, err := time.Parse(layout, input)
			if err != nil {
				continue
			}
			now := time.Now().UTC()
			combined := time.Date(now.Year(), now.Month(), now.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
			return formatCanonical(combined), nil
		}
		return "", &InvalidTimeError{Input: input}
	}

	t, err := dateparse.ParseIn(input, time.UTC)
	if err != nil {
		return "", &InvalidTimeError{Input: input}
	}
	return formatCanonical(t), nil
}

func formatCanonical(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "Z"
}
