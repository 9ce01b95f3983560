package gym

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testLabels = DefaultLabels()

// 2025-06-02 is a Monday, 2025-06-01 a Sunday.
func monday(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func sunday(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestBusinessStatus_Open(t *testing.T) {
	hours := OpeningHours{"monday": "06:00-22:00"}

	status, today := BusinessStatus(hours, monday(8, 0), testLabels)

	assert.Equal(t, testLabels.StatusOpen, status)
	assert.Equal(t, "06:00-22:00", today)
}

func TestBusinessStatus_ClosedOutsideHours(t *testing.T) {
	hours := OpeningHours{"monday": "06:00-22:00"}

	status, today := BusinessStatus(hours, monday(23, 30), testLabels)

	assert.Equal(t, testLabels.StatusClosed, status)
	assert.Equal(t, "06:00-22:00", today)
}

func TestBusinessStatus_InclusiveBounds(t *testing.T) {
	hours := OpeningHours{"monday": "06:00-22:00"}

	status, _ := BusinessStatus(hours, monday(6, 0), testLabels)
	assert.Equal(t, testLabels.StatusOpen, status)

	status, _ = BusinessStatus(hours, monday(22, 0), testLabels)
	assert.Equal(t, testLabels.StatusOpen, status)

	status, _ = BusinessStatus(hours, monday(22, 1), testLabels)
	assert.Equal(t, testLabels.StatusClosed, status)
}

func TestBusinessStatus_MultipleRanges(t *testing.T) {
	hours := OpeningHours{"monday": "06:00-12:00,14:00-22:00"}

	status, today := BusinessStatus(hours, monday(13, 0), testLabels)
	assert.Equal(t, testLabels.StatusClosed, status)
	assert.Equal(t, "06:00-12:00,14:00-22:00", today)

	status, _ = BusinessStatus(hours, monday(15, 0), testLabels)
	assert.Equal(t, testLabels.StatusOpen, status)
}

func TestBusinessStatus_ClosedToday(t *testing.T) {
	hours := OpeningHours{"sunday": "closed", "monday": "06:00-22:00"}

	status, today := BusinessStatus(hours, sunday(10, 0), testLabels)

	assert.Equal(t, testLabels.StatusClosedToday, status)
	assert.Equal(t, testLabels.StatusClosedToday, today)
}

func TestBusinessStatus_DayAbsent(t *testing.T) {
	hours := OpeningHours{"monday": "06:00-22:00"}

	status, today := BusinessStatus(hours, sunday(10, 0), testLabels)

	assert.Equal(t, testLabels.StatusClosedToday, status)
	assert.Equal(t, testLabels.StatusClosedToday, today)
}

func TestBusinessStatus_NoHoursAtAll(t *testing.T) {
	status, today := BusinessStatus(nil, monday(10, 0), testLabels)

	assert.Equal(t, testLabels.StatusUnknown, status)
	assert.Equal(t, testLabels.StatusUnknown, today)
}

func TestBusinessStatus_MalformedRangesSkipped(t *testing.T) {
	// The broken entries must not abort evaluation of the valid one.
	hours := OpeningHours{"monday": "garbage,xx:yy-zz:ww,14:00-22:00"}

	status, today := BusinessStatus(hours, monday(15, 0), testLabels)
	assert.Equal(t, testLabels.StatusOpen, status)
	assert.Equal(t, "garbage,xx:yy-zz:ww,14:00-22:00", today)

	status, _ = BusinessStatus(hours, monday(10, 0), testLabels)
	assert.Equal(t, testLabels.StatusClosed, status)
}

func TestBusinessStatus_Deterministic(t *testing.T) {
	hours := OpeningHours{"monday": "06:00-22:00"}
	now := monday(8, 0)

	s1, t1 := BusinessStatus(hours, now, testLabels)
	s2, t2 := BusinessStatus(hours, now, testLabels)

	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
}

func TestGymTypeLabel(t *testing.T) {
	assert.Equal(t, "CrossFit认证场馆", testLabels.GymTypeLabel(TypeCrossfitCertified))
	assert.Equal(t, "专项工作室", testLabels.GymTypeLabel(TypeSpecialty))
	assert.Equal(t, "综合健身房", testLabels.GymTypeLabel(TypeComprehensive))
	assert.Equal(t, "综合健身房", testLabels.GymTypeLabel("yoga_studio"))
	assert.Equal(t, "综合健身房", testLabels.GymTypeLabel(""))
}
