package yearplanner

import (
	"fmt"
	"time"
)

// Year bounds accepted by the generator. Wide enough for any plausible
// planner while catching obviously corrupt configuration.
const (
	MinYear = 1583 // first full Gregorian year
	MaxYear = 9999
)

// WeekDescriptor describes one ISO-8601 week of the planner year.
// Values are derived once from the year and never mutated.
type WeekDescriptor struct {
	ISOYear int
	Week    int
	Start   time.Time // Monday
	End     time.Time // Sunday
	Days    [7]time.Time
}

// Months returns the distinct calendar months the week spans, in order.
// A week crossing a month boundary reports both months.
func (w WeekDescriptor) Months() []time.Month {
	months := []time.Month{w.Start.Month()}
	if m := w.End.Month(); m != months[0] {
		months = append(months, m)
	}
	return months
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ValidateYear checks that year is within the supported range.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return nil
}

// DaysInMonth returns the number of days in the given month.
// An internal contradiction (a month resolving to zero or negative days)
// is a calendar logic error and always aborts generation.
func DaysInMonth(year int, month time.Month) (int, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: month %d out of range", ErrCalendarLogic, month)
	}
	// Day 0 of the next month is the last day of this month.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if days < 28 || days > 31 {
		return 0, fmt.Errorf("%w: %s %d computed with %d days", ErrCalendarLogic, month, year, days)
	}
	return days, nil
}

// WeeksInYear returns 52 or 53, the number of ISO-8601 weeks in year.
// A year has 53 weeks iff January 1 falls on a Thursday, or it is a leap
// year and January 1 falls on a Wednesday.
func WeeksInYear(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if jan1 == time.Thursday || (IsLeapYear(year) && jan1 == time.Wednesday) {
		return 53
	}
	return 52
}

// ISOWeeks returns the ordered sequence of ISO-8601 weeks for year.
// Week 1 is the week containing the year's first Thursday (equivalently,
// the week containing January 4th); weeks start on Monday.
func ISOWeeks(year int) ([]WeekDescriptor, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}

	monday := mondayOf(time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC))
	count := WeeksInYear(year)

	weeks := make([]WeekDescriptor, 0, count)
	for w := 1; w <= count; w++ {
		wd := WeekDescriptor{
			ISOYear: year,
			Week:    w,
			Start:   monday,
			End:     monday.AddDate(0, 0, 6),
		}
		for d := 0; d < 7; d++ {
			wd.Days[d] = monday.AddDate(0, 0, d)
		}

		// Cross-check against the standard library's ISO calendar. A
		// mismatch means the derivation above is defective, which must
		// abort rather than silently default.
		isoYear, isoWeek := wd.Start.ISOWeek()
		if isoYear != year || isoWeek != w {
			return nil, fmt.Errorf("%w: week %d of %d derived as ISO %d-W%02d",
				ErrCalendarLogic, w, year, isoYear, isoWeek)
		}

		weeks = append(weeks, wd)
		monday = monday.AddDate(0, 0, 7)
	}

	return weeks, nil
}

// FirstWeeksOfMonths returns the ISO week numbers that contain the first
// day of each month of year. Used to highlight month boundaries in the
// week planner and its TOC rows.
func FirstWeeksOfMonths(year int) (map[int]bool, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}
	first := make(map[int]bool, 12)
	for month := time.January; month <= time.December; month++ {
		_, week := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).ISOWeek()
		first[week] = true
	}
	return first, nil
}

// mondayOf returns the Monday of the week containing t.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset)
}

// FormatDayLabel renders a date the way TOC rows and daily spreads show
// it, e.g. "Week 1, January 1st, Thursday".
func FormatDayLabel(day time.Time) string {
	_, week := day.ISOWeek()
	return fmt.Sprintf("Week %d, %s %d%s, %s",
		week, day.Month(), day.Day(), ordinalSuffix(day.Day()), day.Weekday())
}

// ordinalSuffix returns st, nd, rd, or th for n.
func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
