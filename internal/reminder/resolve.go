package reminder

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	datePattern = regexp.MustCompile(`^\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Validate checks the shape of req. The date is checked before the time.
func Validate(req Request) error {
	if !datePattern.MatchString(req.Date) {
		return &FormatError{Kind: ErrInvalidDate, Input: req.Date, Hint: DateLayoutHint}
	}
	if !timePattern.MatchString(req.Time) {
		return &FormatError{Kind: ErrInvalidTime, Input: req.Time, Hint: TimeLayoutHint}
	}
	if _, err := normalizeMeridiem(req.Meridiem); err != nil {
		return err
	}
	return nil
}

// Resolve turns req into an absolute instant in now's year and location.
// 12 AM is midnight and 12 PM is noon. As with Validate, an out-of-range date
// is reported before an out-of-range time.
func Resolve(req Request, now time.Time) (time.Time, error) {
	if err := Validate(req); err != nil {
		return time.Time{}, err
	}
	meridiem, _ := normalizeMeridiem(req.Meridiem)

	month, _ := strconv.Atoi(req.Date[:2])
	day, _ := strconv.Atoi(req.Date[3:])
	hour, _ := strconv.Atoi(req.Time[:2])
	minute, _ := strconv.Atoi(req.Time[3:])

	if !validDay(now.Year(), month, day) {
		return time.Time{}, &FormatError{Kind: ErrInvalidDate, Input: req.Date, Hint: DateLayoutHint}
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return time.Time{}, &FormatError{Kind: ErrInvalidTime, Input: req.Time, Hint: TimeLayoutHint}
	}

	hour %= 12
	if meridiem == PM {
		hour += 12
	}

	return time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, now.Location()), nil
}

// NeedsRollover reports whether at is not strictly after now.
func NeedsRollover(at, now time.Time) bool {
	return !at.After(now)
}

// Rollover moves at forward by one calendar day.
func Rollover(at time.Time) time.Time {
	return at.AddDate(0, 0, 1)
}

// NextOccurrence handles dates that already passed this year. When even a
// one-day rollover would leave at in the past, the same month, day and clock
// time of the following year is returned and shifted is true. Otherwise at is
// returned unchanged.
func NextOccurrence(at, now time.Time) (next time.Time, shifted bool) {
	if Rollover(at).After(now) {
		return at, false
	}
	next = time.Date(at.Year()+1, at.Month(), at.Day(), at.Hour(), at.Minute(), 0, 0, at.Location())
	if next.Day() != at.Day() {
		// Feb 29 has no counterpart next year; keep the original date.
		return at, false
	}
	return next, true
}

func normalizeMeridiem(s string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(s))
	if m != AM && m != PM {
		return "", &FormatError{Kind: ErrInvalidMeridiem, Input: s, Hint: "AM or PM"}
	}
	return m, nil
}

func validDay(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Month() == time.Month(month) && t.Day() == day
}
