package store

import (
	"github.com/alfieapp/quarterly/internal/model"
)

// Summary is the derived progress view for the selected quarter.
type Summary struct {
	MeetingCount    int
	MeetingGoal     int
	MeetingProgress float64

	MMRTotal    float64
	MMRGoal     float64
	MMRProgress float64
}

// Progress returns achieved/goal as a percentage. A zero or negative goal
// yields 0 rather than dividing by zero.
func Progress(achieved, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return achieved / goal * 100
}

// Summarize derives the progress numbers from the session's caches: meetings
// that are completed or still scheduled count toward the meeting goal, and
// every deal's value sums into the MMR total. Goals may be nil when the
// quarter has no targets yet.
func Summarize(goals *model.Goals, meetings []*model.Meeting, deals []*model.Deal) Summary {
	var sum Summary

	for _, m := range meetings {
		if m.CountsTowardGoal() {
			sum.MeetingCount++
		}
	}
	for _, d := range deals {
		sum.MMRTotal += d.Value
	}

	if goals != nil {
		sum.MeetingGoal = goals.MeetingGoal
		sum.MMRGoal = goals.MMRGoal
	}

	sum.MeetingProgress = Progress(float64(sum.MeetingCount), float64(sum.MeetingGoal))
	sum.MMRProgress = Progress(sum.MMRTotal, sum.MMRGoal)
	return sum
}

// Summarize builds the summary from the session's current caches.
func (s *Session) Summarize() Summary {
	return Summarize(s.Goals.Goals(), s.Meetings.Meetings(), s.Deals.Deals())
}
