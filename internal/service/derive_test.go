package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/plant-care/internal/model"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   string
	}{
		{"two tokens", "Ana Lee", "AL"},
		{"lower case", "ana lee", "AL"},
		{"single token", "Cher", "C"},
		{"only first two tokens", "Maria del Carmen", "MD"},
		{"extra whitespace", "  Ana   Lee  ", "AL"},
		{"empty", "", "U"},
		{"whitespace only", "   ", "U"},
		{"non-ascii", "élise ödegaard", "ÉÖ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.author))
		})
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 0, "1 min ago"},
		{"seconds ago", 30 * time.Second, "1 min ago"},
		{"minutes", 5 * time.Minute, "5 min ago"},
		{"just under an hour", 59*time.Minute + 59*time.Second, "59 min ago"},
		{"one hour", time.Hour, "1 h ago"},
		{"hours", 23*time.Hour + 59*time.Minute, "23 h ago"},
		{"one day", 24 * time.Hour, "Yesterday"},
		{"just under two days", 47 * time.Hour, "Yesterday"},
		{"two days", 48 * time.Hour, "13.06.2024"},
		{"long ago", 400 * 24 * time.Hour, "12.05.2023"},
		{"future timestamp", -10 * time.Minute, "1 min ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(now.Add(-tt.ago), now))
		})
	}

	t.Run("no timestamp", func(t *testing.T) {
		assert.Equal(t, "", TimeAgo(time.Time{}, now))
	})
}

func TestTimeLabelAndUrgent(t *testing.T) {
	today := model.NewDate(2024, time.June, 15)
	date := func(d model.Date) *model.Date { return &d }

	tests := []struct {
		name       string
		due        *model.Date
		wantLabel  string
		wantUrgent bool
	}{
		{"no due date", nil, "", false},
		{"overdue", date(today.AddDays(-3)), "12 Jun", true},
		{"today", date(today), "Today", true},
		{"tomorrow", date(today.AddDays(1)), "Tomorrow", false},
		{"later", date(today.AddDays(20)), "05 Jul", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLabel, TimeLabel(tt.due, today))
			assert.Equal(t, tt.wantUrgent, Urgent(tt.due, today))
		})
	}
}
