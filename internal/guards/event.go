// Package guards reconstructs guard sleep schedules from timestamped shift logs.
package guards

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/yildizm/aoc2018/internal/input"
	"github.com/yildizm/aoc2018/internal/parser"
)

const (
	// ActionSleep marks the start of a sleep interval
	ActionSleep = "falls asleep"

	// ActionWake marks the end of a sleep interval
	ActionWake = "wakes up"

	shiftPrefix = "Guard"
)

var (
	// eventPattern matches lines such as "[1518-03-05 00:55] Guard #10 begins shift".
	eventPattern = parser.MustCompile("log event",
		`^\[(?P<year>\d+)-(?P<month>\d+)-(?P<day>\d+)\s+(?P<hour>\d+):(?P<minute>\d+)\]\s+(?P<action>.*)$`,
		parser.U16("year"), parser.U8("month"), parser.U8("day"), parser.U8("hour"), parser.U8("minute"),
		parser.Str("action"),
	)

	// shiftPattern extracts the only number in a shift-start action.
	shiftPattern = parser.MustCompile("shift start",
		`^Guard\D*?(?P<guard>\d+)\D*$`,
		parser.U16("guard"),
	)
)

// Event is one log line. Timestamp is derived from the date fields in UTC and
// is used for ordering only.
type Event struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Day       int       `json:"day"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent builds an event, rejecting dates and times that do not exist
func NewEvent(year, month, day, hour, minute int, action string) (Event, error) {
	e := Event{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Action: action,
	}

	if err := e.validate(); err != nil {
		return Event{}, err
	}

	e.Timestamp = time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	return e, nil
}

func (e Event) validate() error {
	if e.Month < 1 || e.Month > 12 {
		return outOfRange("month", e.Month, e)
	}
	if e.Day < 1 || e.Day > daysIn(e.Year, e.Month) {
		return outOfRange("day", e.Day, e)
	}
	if e.Hour < 0 || e.Hour > 23 {
		return outOfRange("hour", e.Hour, e)
	}
	if e.Minute < 0 || e.Minute >= MinutesPerHour {
		return outOfRange("minute", e.Minute, e)
	}
	return nil
}

func outOfRange(field string, value int, e Event) error {
	return input.NewFieldParseError(field, e.String(), fmt.Errorf("value %d out of range", value))
}

func daysIn(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String renders the event in its log line form
func (e Event) String() string {
	return fmt.Sprintf("[%04d-%02d-%02d %02d:%02d] %s", e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Action)
}

// IsShiftStart reports whether the event opens a guard's shift
func (e Event) IsShiftStart() bool {
	return strings.HasPrefix(e.Action, shiftPrefix)
}

// GuardID returns the id of the guard beginning a shift
func (e Event) GuardID() (int, error) {
	rec, err := shiftPattern.Parse(e.Action)
	if err != nil {
		return 0, err
	}
	return rec.Int("guard"), nil
}

// ParseEvent converts one input line into an event
func ParseEvent(line string) (Event, error) {
	rec, err := eventPattern.Parse(line)
	if err != nil {
		return Event{}, err
	}
	return NewEvent(
		rec.Int("year"),
		rec.Int("month"),
		rec.Int("day"),
		rec.Int("hour"),
		rec.Int("minute"),
		rec.String("action"),
	)
}

// Load parses every event in the file at path, in file order
func Load(path string) ([]Event, error) {
	return input.ParseFile(path, ParseEvent)
}

// Sorted returns a chronologically ordered copy of events. Events with equal
// timestamps keep their input order.
func Sorted(events []Event) []Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}
