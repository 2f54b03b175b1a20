package entity

// RemarkCategory is the coarse display-status bucket driving row styling
type RemarkCategory string

const (
	RemarkScheduled RemarkCategory = "scheduled"
	RemarkActive    RemarkCategory = "active"
	RemarkDelayed   RemarkCategory = "delayed"
	RemarkCancelled RemarkCategory = "cancelled"
)

// RemarkLabels maps each category to its display label in one language
type RemarkLabels map[RemarkCategory]string

// Label returns the label for c, or the category name if none is configured
func (l RemarkLabels) Label(c RemarkCategory) string {
	if label, ok := l[c]; ok && label != "" {
		return label
	}
	return string(c)
}
