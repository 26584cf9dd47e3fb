package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sakif/plant-care/internal/model"
)

// Display formats.
const (
	shortDateLayout = "02 Jan"     // reminder time_label beyond tomorrow
	feedDateLayout  = "02.01.2006" // post time_ago beyond yesterday
	fallbackInitial = "U"
)

// Initials is the upper-cased first letter of the first two whitespace
// separated tokens of name: "Ana Lee" → "AL", "cher" → "C", "" → "U".
func Initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return fallbackInitial
	}
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}

	var b strings.Builder
	for _, tok := range tokens {
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// TimeAgo describes how long before now created is, for the feed.
//
//	< 1 hour   → "N min ago" (never less than 1)
//	< 24 hours → "N h ago"
//	< 48 hours → "Yesterday"
//	otherwise  → "02.01.2006"
//
// A created time in the future (clock skew between app and store) counts as
// just now. A zero created time has no label.
func TimeAgo(created, now time.Time) string {
	if created.IsZero() {
		return ""
	}
	diff := now.Sub(created)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", max(1, int(diff.Minutes())))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d h ago", int(diff.Hours()))
	case diff < 48*time.Hour:
		return "Yesterday"
	default:
		return created.Format(feedDateLayout)
	}
}

// TimeLabel is the short label next to a reminder: "Today", "Tomorrow", a
// "02 Jan" date otherwise, and "" when there is no due date. Overdue
// reminders show their date.
func TimeLabel(due *model.Date, today model.Date) string {
	switch {
	case due == nil:
		return ""
	case due.Equal(today):
		return "Today"
	case due.Equal(today.AddDays(1)):
		return "Tomorrow"
	default:
		return due.Format(shortDateLayout)
	}
}

// Urgent reports whether a reminder is due today or overdue.
func Urgent(due *model.Date, today model.Date) bool {
	return due != nil && !due.After(today)
}
