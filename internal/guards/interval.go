package guards

import (
	"fmt"

	"github.com/yildizm/aoc2018/internal/input"
)

// MinutesPerHour is the length of every per-minute coverage and tally slice.
const MinutesPerHour = 60

// SleepInterval is a half-open range of minutes [Start, End) during which a guard slept
type SleepInterval struct {
	GuardID int `json:"guard_id"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

// Duration returns the number of minutes slept
func (s SleepInterval) Duration() int {
	return s.End - s.Start
}

// Coverage returns one flag per minute of the hour, set while the guard slept
func (s SleepInterval) Coverage() []bool {
	coverage := make([]bool, MinutesPerHour)
	for m := s.Start; m < s.End; m++ {
		coverage[m] = true
	}
	return coverage
}

type scanState int

const (
	stateIdle scanState = iota
	stateExpectSleepStart
	stateExpectSleepEnd
)

// Intervals pairs sleep and wake events of chronologically sorted events
// into sleep intervals. A shift start while a sleep start is expected opens
// a new guard block; any other break in the Guard / falls asleep / wakes up
// alternation is a protocol error.
func Intervals(events []Event) ([]SleepInterval, error) {
	var intervals []SleepInterval

	state := stateIdle
	guardID := 0
	var asleep Event

	for _, e := range events {
		switch state {
		case stateIdle:
			if !e.IsShiftStart() {
				return nil, input.NewProtocolError("expected a guard to begin shift", e.String())
			}
			id, err := e.GuardID()
			if err != nil {
				return nil, err
			}
			guardID = id
			state = stateExpectSleepStart

		case stateExpectSleepStart:
			if e.IsShiftStart() {
				id, err := e.GuardID()
				if err != nil {
					return nil, err
				}
				guardID = id
				continue
			}
			if e.Action != ActionSleep {
				return nil, input.NewProtocolError(
					fmt.Sprintf("expected guard #%d to fall asleep", guardID), e.String())
			}
			asleep = e
			state = stateExpectSleepEnd

		case stateExpectSleepEnd:
			if e.Action != ActionWake {
				return nil, input.NewProtocolError(
					fmt.Sprintf("expected guard #%d to wake up", guardID), e.String())
			}
			if !sameHour(asleep, e) {
				return nil, input.NewProtocolError(
					fmt.Sprintf("guard #%d wakes in a different hour than it fell asleep (%s)",
						guardID, asleep), e.String())
			}
			if e.Minute <= asleep.Minute {
				return nil, input.NewProtocolError(
					fmt.Sprintf("guard #%d wakes at minute %d before falling asleep at minute %d",
						guardID, e.Minute, asleep.Minute), e.String())
			}
			intervals = append(intervals, SleepInterval{GuardID: guardID, Start: asleep.Minute, End: e.Minute})
			state = stateExpectSleepStart
		}
	}

	if state == stateExpectSleepEnd {
		return nil, input.NewProtocolError(
			fmt.Sprintf("log ends while guard #%d is asleep", guardID), "")
	}

	return intervals, nil
}

// sameHour reports whether a and b fall on the same date and hour
func sameHour(a, b Event) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day && a.Hour == b.Hour
}
