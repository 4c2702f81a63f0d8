package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var clockLayouts = []string{"3pm", "3:04pm", "15:04"}

// parseStartingTime consumes a leading starting-time token.
// "+H:MM" or "+1.5" give hours already elapsed; "9am", "9:30am" or "14:05" give the clock
// time the work began on now's day. Tokens without a starting time are returned unchanged.
func parseStartingTime(tokens []string, now time.Time) (startedAt *time.Time, hours float64, rest []string, err error) {
	if len(tokens) == 0 {
		return nil, 0, tokens, nil
	}

	token := tokens[0]
	if elapsed, ok := strings.CutPrefix(token, "+"); ok {
		hours, err := parseHours(elapsed)
		if err != nil {
			return nil, 0, tokens, fmt.Errorf("invalid starting time %q: %w", token, err)
		}
		return nil, hours, tokens[1:], nil
	}

	if t, ok := parseClock(token, now); ok {
		return &t, 0, tokens[1:], nil
	}

	return nil, 0, tokens, nil
}

// parseHours reads "H:MM" or decimal hours with an optional "h" suffix
func parseHours(s string) (float64, error) {
	if h, m, found := strings.Cut(s, ":"); found {
		hours, err := strconv.Atoi(h)
		if err != nil {
			return 0, err
		}
		minutes, err := strconv.Atoi(m)
		if err != nil {
			return 0, err
		}
		if minutes < 0 || minutes > 59 || hours < 0 {
			return 0, fmt.Errorf("out of range")
		}
		return float64(hours) + float64(minutes)/60, nil
	}

	hours, err := strconv.ParseFloat(strings.TrimSuffix(s, "h"), 64)
	if err != nil {
		return 0, err
	}
	if hours < 0 || math.IsInf(hours, 0) || math.IsNaN(hours) {
		return 0, fmt.Errorf("out of range")
	}
	return hours, nil
}

func parseClock(token string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(token)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, lower)
		if err != nil {
			continue
		}
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// parseDate reads a date expression such as "yesterday", "last friday" or "2024-01-15".
// No expression means now.
func parseDate(args []string, now time.Time) (time.Time, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return now, nil
	}

	if t, err := time.ParseInLocation("2006-01-02", text, now.Location()); err == nil {
		return t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(text, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", text, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", text)
	}
	return result.Time, nil
}

// clock renders t the way acknowledgement messages show it, e.g. "09:05 am"
func clock(t time.Time) string {
	return strings.ToLower(t.Format("03:04 PM"))
}
