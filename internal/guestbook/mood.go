package guestbook

import (
	"math"

	"github.com/Zachkp/portfolio/internal/model"
)

// Mood thresholds shared by comment colouring and the gauge feedback.
const (
	NegativeCeiling = 65.0
	GreenFrom       = 87.5
	GaugeMax        = 100.0
)

// Tier buckets a mood value.
type Tier int

const (
	TierNegative Tier = iota
	TierNeutral
	TierPositive
)

// TierFor maps a mood to its tier: [0,65] negative, (65,87.5) neutral,
// [87.5,100] positive.
func TierFor(mood float64) Tier {
	switch {
	case mood <= NegativeCeiling:
		return TierNegative
	case mood < GreenFrom:
		return TierNeutral
	default:
		return TierPositive
	}
}

// Color is the display colour of the tier.
func (t Tier) Color() string {
	switch t {
	case TierNegative:
		return "red"
	case TierNeutral:
		return "orange"
	default:
		return "green"
	}
}

// Message is the feedback suffix written after the average mood.
func (t Tier) Message() string {
	switch t {
	case TierNegative:
		return "? Oh no! I hope everyone's okay."
	case TierNeutral:
		return ". Not great, always here for you guys."
	default:
		return "! Woohoo!"
	}
}

func (t Tier) String() string {
	switch t {
	case TierNegative:
		return "negative"
	case TierNeutral:
		return "neutral"
	default:
		return "positive"
	}
}

// AverageMood is round(mean(mood)), or 0 for no comments.
func AverageMood(comments []model.Comment) int {
	if len(comments) == 0 {
		return 0
	}
	var sum float64
	for _, c := range comments {
		sum += c.Mood
	}
	return int(math.Round(sum / float64(len(comments))))
}

// Stats counts comments per tier and computes the average mood.
func Stats(comments []model.Comment) model.CommentStats {
	stats := model.CommentStats{
		TotalComments: int64(len(comments)),
		AverageMood:   AverageMood(comments),
	}
	for _, c := range comments {
		switch TierFor(c.Mood) {
		case TierNegative:
			stats.Negative++
		case TierNeutral:
			stats.Neutral++
		default:
			stats.Positive++
		}
	}
	return stats
}

// DisplayName returns the commenter's name or "anon" when it is blank.
func DisplayName(c model.Comment) string {
	if isBlank(c.Name) {
		return AnonName
	}
	return c.Name
}

// AnonName replaces missing commenter names.
const AnonName = "anon"
