package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/ByPavel22/ByPavel22Bot/internal/model"
	"github.com/ByPavel22/ByPavel22Bot/internal/service"
)

func TestFormatStats(t *testing.T) {
	stats := service.Stats{
		TotalUsers:    3,
		TotalMessages: 7,
		Recent: []model.User{
			{FirstName: "Ann", Username: "ann", CreatedAt: time.Date(2026, 8, 22, 10, 0, 0, 0, time.UTC)},
			{FirstName: "Bob", CreatedAt: time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)},
		},
	}

	text := formatStats(stats)
	for _, want := range []string{"<b>3</b>", "<b>7</b>", "Ann", "(@ann)", "Bob", "2026-08-22"} {
		if !strings.Contains(text, want) {
			t.Fatalf("stats text misses %q:\n%s", want, text)
		}
	}
	// Bob has no username, his line must not render an empty @.
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "Bob") && strings.Contains(line, "@") {
			t.Fatalf("username must be omitted for Bob: %q", line)
		}
	}
}

func TestFormatStats_Empty(t *testing.T) {
	text := formatStats(service.Stats{})
	if !strings.Contains(text, "пока никого нет") {
		t.Fatalf("empty stats must say so:\n%s", text)
	}
}

func TestFeedbackLabel(t *testing.T) {
	if _, ok := feedbackLabel("complete:5"); ok {
		t.Fatal("foreign callback data must be ignored")
	}
	label, ok := feedbackLabel(cbFeedbackGood)
	if !ok || !strings.Contains(label, "Хорошо") {
		t.Fatalf("unexpected label %q", label)
	}
}
