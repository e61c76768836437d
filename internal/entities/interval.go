package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedInterval = errors.New("malformed time interval")

// Minute это время суток в минутах от полуночи [0, 1440).
type Minute int

// TimeInterval полуинтервал времени суток вида "HH:MM-HH:MM".
// Инвариант Start < End, перенос через полночь не поддерживается.
type TimeInterval struct {
	Start Minute
	End   Minute
}

const minutesPerDay = 24 * 60

// ParseTimeInterval разбирает строку формата "HH:MM-HH:MM" (24 часа).
func ParseTimeInterval(s string) (TimeInterval, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeInterval{}, fmt.Errorf("%w: %q", ErrMalformedInterval, s)
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %q", ErrMalformedInterval, s)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %q", ErrMalformedInterval, s)
	}

	if end <= start {
		return TimeInterval{}, fmt.Errorf("%w: %q: end is not after start", ErrMalformedInterval, s)
	}

	return TimeInterval{Start: start, End: end}, nil
}

// ParseTimeIntervals разбирает список строк "HH:MM-HH:MM", сохраняя порядок.
func ParseTimeIntervals(ss []string) ([]TimeInterval, error) {
	intervals := make([]TimeInterval, 0, len(ss))
	for _, s := range ss {
		interval, err := ParseTimeInterval(s)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}

func parseClock(s string) (Minute, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrMalformedInterval
	}

	hours, ok := parseTwoDigits(s[0], s[1])
	if !ok || hours > 23 {
		return 0, ErrMalformedInterval
	}
	minutes, ok := parseTwoDigits(s[3], s[4])
	if !ok || minutes > 59 {
		return 0, ErrMalformedInterval
	}

	return Minute(hours*60 + minutes), nil
}

func parseTwoDigits(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}

// Intersects сообщает, пересекаются ли интервалы.
// Интервалы, соприкасающиеся концами, пересечением не считаются.
func (i TimeInterval) Intersects(other TimeInterval) bool {
	return !(i.End <= other.Start || i.Start >= other.End)
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", i.Start/60, i.Start%60, i.End/60, i.End%60)
}

// AnyIntersection проверяет пересечение хотя бы одной пары интервалов
// из двух списков (часы доставки заказа против рабочих часов курьера).
func AnyIntersection(a, b []TimeInterval) bool {
	for _, x := range a {
		for _, y := range b {
			if x.Intersects(y) {
				return true
			}
		}
	}
	return false
}

// IntervalStrings конвертирует список интервалов в строковое представление API.
func IntervalStrings(intervals []TimeInterval) []string {
	ss := make([]string, 0, len(intervals))
	for _, interval := range intervals {
		ss = append(ss, interval.String())
	}
	return ss
}
