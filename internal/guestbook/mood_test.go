package guestbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zachkp/portfolio/internal/model"
)

func moods(values ...float64) []model.Comment {
	out := make([]model.Comment, 0, len(values))
	for _, v := range values {
		out = append(out, model.Comment{Mood: v})
	}
	return out
}

func TestAverageMood(t *testing.T) {
	tests := []struct {
		name     string
		comments []model.Comment
		want     int
	}{
		{name: "empty", comments: nil, want: 0},
		{name: "single", comments: moods(90), want: 90},
		{name: "rounds down", comments: moods(10, 11, 11), want: 11},
		{name: "rounds half up", comments: moods(50, 51), want: 51},
		{name: "extremes", comments: moods(0, 100), want: 50},
		{name: "all max", comments: moods(100, 100, 100), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageMood(tt.comments)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestTierForBoundaries(t *testing.T) {
	tests := []struct {
		mood  float64
		tier  Tier
		color string
	}{
		{0, TierNegative, "red"},
		{65, TierNegative, "red"},
		{65.01, TierNeutral, "orange"},
		{87.49, TierNeutral, "orange"},
		{87.5, TierPositive, "green"},
		{100, TierPositive, "green"},
	}

	for _, tt := range tests {
		tier := TierFor(tt.mood)
		assert.Equal(t, tt.tier, tier, "mood %v", tt.mood)
		assert.Equal(t, tt.color, tier.Color(), "mood %v", tt.mood)
	}
}

func TestTierMessages(t *testing.T) {
	assert.Equal(t, "? Oh no! I hope everyone's okay.", TierNegative.Message())
	assert.Equal(t, ". Not great, always here for you guys.", TierNeutral.Message())
	assert.Equal(t, "! Woohoo!", TierPositive.Message())
}

func TestStats(t *testing.T) {
	stats := Stats(moods(10, 70, 90, 95))
	assert.EqualValues(t, 4, stats.TotalComments)
	assert.EqualValues(t, 1, stats.Negative)
	assert.EqualValues(t, 1, stats.Neutral)
	assert.EqualValues(t, 2, stats.Positive)
	assert.Equal(t, 66, stats.AverageMood)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "anon", DisplayName(model.Comment{}))
	assert.Equal(t, "anon", DisplayName(model.Comment{Name: "   "}))
	assert.Equal(t, "Ann", DisplayName(model.Comment{Name: "Ann"}))
}

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("all")
	assert.NoError(t, err)
	assert.True(t, sel.IsAll())
	assert.Equal(t, "all", sel.String())

	sel, err = ParseSelector(" 5 ")
	assert.NoError(t, err)
	assert.False(t, sel.IsAll())
	assert.Equal(t, 5, sel.Max())
	assert.Equal(t, "5", sel.String())

	for _, bad := range []string{"", "-1", "five", "1.5"} {
		_, err := ParseSelector(bad)
		assert.ErrorIs(t, err, ErrInvalidSelector, "input %q", bad)
	}

	assert.True(t, Limit(-3).IsAll())
}
