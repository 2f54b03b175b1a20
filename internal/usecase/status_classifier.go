package usecase

import (
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/pkg/utils"
)

// DefaultDelayThreshold is how late an estimate must be before a departure
// is shown as delayed
const DefaultDelayThreshold = 5 * time.Minute

var remarkLabelsByLanguage = map[entity.Language]entity.RemarkLabels{
	entity.LangJa: {
		entity.RemarkScheduled: "定刻",
		entity.RemarkActive:    "出発済み",
		entity.RemarkDelayed:   "遅延",
		entity.RemarkCancelled: "欠航",
	},
	entity.LangEn: {
		entity.RemarkScheduled: "On Schedule",
		entity.RemarkActive:    "Departed",
		entity.RemarkDelayed:   "Delayed",
		entity.RemarkCancelled: "Cancelled",
	},
	entity.LangZh: {
		entity.RemarkScheduled: "准点",
		entity.RemarkActive:    "已起飞",
		entity.RemarkDelayed:   "延误",
		entity.RemarkCancelled: "取消",
	},
}

// RemarkLabelsFor returns the remark labels for lang, defaulting to Japanese
func RemarkLabelsFor(lang entity.Language) entity.RemarkLabels {
	if labels, ok := remarkLabelsByLanguage[lang]; ok {
		return labels
	}
	return remarkLabelsByLanguage[entity.LangJa]
}

// Classification is the display status derived for one departure
type Classification struct {
	Category    entity.RemarkCategory
	Remark      string
	ChangedTime string
}

// StatusClassifier derives the remark of a departure from its status and
// estimated time
type StatusClassifier struct {
	labels    entity.RemarkLabels
	threshold time.Duration
	location  *time.Location
}

// NewStatusClassifier creates a classifier. A non-positive threshold uses
// DefaultDelayThreshold.
func NewStatusClassifier(labels entity.RemarkLabels, threshold time.Duration, location *time.Location) *StatusClassifier {
	if threshold <= 0 {
		threshold = DefaultDelayThreshold
	}
	if location == nil {
		location = time.UTC
	}
	return &StatusClassifier{
		labels:    labels,
		threshold: threshold,
		location:  location,
	}
}

// Classify applies the remark rules in order; the first match wins.
func (c *StatusClassifier) Classify(obs entity.FlightObservation) Classification {
	switch {
	case obs.Status == entity.StatusCancelled:
		return c.result(entity.RemarkCancelled, "")

	case c.isDelayed(obs):
		return c.result(entity.RemarkDelayed, utils.FormatClock(*obs.Estimated, c.location))

	case obs.Status == entity.StatusActive:
		return c.result(entity.RemarkActive, "")

	default:
		return c.result(entity.RemarkScheduled, "")
	}
}

// isDelayed ignores estimates once the aircraft is airborne or has landed
func (c *StatusClassifier) isDelayed(obs entity.FlightObservation) bool {
	if obs.Estimated == nil {
		return false
	}
	if obs.Status == entity.StatusActive || obs.Status == entity.StatusLanded {
		return false
	}
	return obs.Estimated.After(obs.Scheduled.Add(c.threshold))
}

func (c *StatusClassifier) result(category entity.RemarkCategory, changed string) Classification {
	return Classification{
		Category:    category,
		Remark:      c.labels.Label(category),
		ChangedTime: changed,
	}
}
