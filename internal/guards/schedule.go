package guards

import (
	"errors"
	"slices"
)

// ErrNoSleep is returned by queries when no guard ever slept
var ErrNoSleep = errors.New("no sleep intervals recorded")

// Answer identifies a guard and a minute of the hour
type Answer struct {
	GuardID int `json:"guard_id"`
	Minute  int `json:"minute"`
	// Count is the number of nights the guard slept during Minute
	Count int `json:"count"`
}

// Product returns GuardID multiplied by Minute
func (a Answer) Product() int {
	return a.GuardID * a.Minute
}

// Schedule holds per-guard sleep totals and per-minute tallies
type Schedule struct {
	guards  []int
	totals  map[int]int
	minutes map[int][]int
}

// NewSchedule tallies intervals per guard
func NewSchedule(intervals []SleepInterval) *Schedule {
	s := &Schedule{
		totals:  make(map[int]int),
		minutes: make(map[int][]int),
	}

	for _, iv := range intervals {
		tally, ok := s.minutes[iv.GuardID]
		if !ok {
			tally = make([]int, MinutesPerHour)
			s.minutes[iv.GuardID] = tally
			s.guards = append(s.guards, iv.GuardID)
		}
		for m, asleep := range iv.Coverage() {
			if asleep {
				tally[m]++
			}
		}
		s.totals[iv.GuardID] += iv.Duration()
	}

	slices.Sort(s.guards)
	return s
}

// Analyze sorts events, pairs them into intervals and tallies them
func Analyze(events []Event) (*Schedule, error) {
	intervals, err := Intervals(Sorted(events))
	if err != nil {
		return nil, err
	}
	return NewSchedule(intervals), nil
}

// Guards returns the ids of guards that slept, ascending
func (s *Schedule) Guards() []int {
	return slices.Clone(s.guards)
}

// TotalAsleep returns the minutes guardID slept across all nights
func (s *Schedule) TotalAsleep(guardID int) int {
	return s.totals[guardID]
}

// Minutes returns guardID's per-minute tally, or nil for an unknown guard
func (s *Schedule) Minutes(guardID int) []int {
	return slices.Clone(s.minutes[guardID])
}

// BusiestGuard picks the guard with the most minutes asleep and the minute
// that guard slept most often. Ties go to the lower guard id and the earlier minute.
func (s *Schedule) BusiestGuard() (Answer, error) {
	if len(s.guards) == 0 {
		return Answer{}, ErrNoSleep
	}

	busiest := s.guards[0]
	for _, id := range s.guards[1:] {
		if s.totals[id] > s.totals[busiest] {
			busiest = id
		}
	}

	minute, count := peakMinute(s.minutes[busiest])
	return Answer{GuardID: busiest, Minute: minute, Count: count}, nil
}

// MostConsistentMinute picks the guard and minute with the highest tally of
// all. Ties go to the lower guard id and the earlier minute.
func (s *Schedule) MostConsistentMinute() (Answer, error) {
	if len(s.guards) == 0 {
		return Answer{}, ErrNoSleep
	}

	best := Answer{Count: -1}
	for _, id := range s.guards {
		minute, count := peakMinute(s.minutes[id])
		if count > best.Count {
			best = Answer{GuardID: id, Minute: minute, Count: count}
		}
	}
	return best, nil
}

// peakMinute returns the first minute holding the maximum tally
func peakMinute(tally []int) (int, int) {
	minute := 0
	for m, n := range tally {
		if n > tally[minute] {
			minute = m
		}
	}
	return minute, tally[minute]
}
