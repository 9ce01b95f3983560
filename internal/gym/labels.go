package gym

// Labels holds the localized display strings attached to search
// results. They are configuration, fixed at service construction.
type Labels struct {
	GymTypes map[string]string

	StatusOpen        string
	StatusClosed      string
	StatusClosedToday string
	StatusUnknown     string
}

// DefaultLabels returns the Chinese-market label set used by the
// production deployment.
func DefaultLabels() Labels {
	return Labels{
		GymTypes: map[string]string{
			TypeCrossfitCertified: "CrossFit认证场馆",
			TypeComprehensive:     "综合健身房",
			TypeSpecialty:         "专项工作室",
		},
		StatusOpen:        "营业中",
		StatusClosed:      "休息中",
		StatusClosedToday: "今日休息",
		StatusUnknown:     "营业时间未知",
	}
}

// GymTypeLabel maps a stored gym type to its display label. Unknown
// or empty types take the comprehensive label.
func (l Labels) GymTypeLabel(gymType string) string {
	if label, ok := l.GymTypes[gymType]; ok {
		return label
	}
	return l.GymTypes[TypeComprehensive]
}
