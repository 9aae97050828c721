package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// daysPerMonth holds month lengths for a common year, January first.
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is an immutable Gregorian calendar date.
// The zero value is not a valid date; use NewDate or ParseDate.
type Date struct {
	day   int
	month int
	year  int
}

// NewDate returns the date for day/month/year or ErrInvalidDate.
func NewDate(day, month, year int) (Date, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > DaysInMonth(month, year) {
		return Date{}, fmt.Errorf("%w: %d/%d/%d", ErrInvalidDate, day, month, year)
	}
	return Date{day: day, month: month, year: year}, nil
}

// MustDate is like NewDate but panics on invalid input. Intended for tests and literals.
func MustDate(day, month, year int) Date {
	d, err := NewDate(day, month, year)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses DD/MM/YYYY. Single-digit day and month are accepted.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not DD/MM/YYYY", ErrInvalidDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q is not DD/MM/YYYY", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2])
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of month in year, or 0 for an out-of-range month.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Month returns the month, 1 through 12.
func (d Date) Month() int { return d.month }

// Year returns the year.
func (d Date) Year() int { return d.year }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// daysPer400Years is the length of one Gregorian cycle. Moving a date by a whole
// cycle keeps its day and month and shifts the year by 400.
const daysPer400Years = 146097

// AddDays returns the date n days after d. Negative n moves backwards.
func (d Date) AddDays(n int) (Date, error) {
	if n < 0 {
		return d.backward(magnitude(n))
	}
	return d.forward(uint64(n))
}

// SubtractDays returns the date n days before d. Negative n moves forwards.
func (d Date) SubtractDays(n int) (Date, error) {
	if n < 0 {
		return d.forward(magnitude(n))
	}
	return d.backward(uint64(n))
}

// magnitude returns |n| for negative n, including math.MinInt.
func magnitude(n int) uint64 {
	return uint64(-(n + 1)) + 1
}

func (d Date) forward(n uint64) (Date, error) {
	day, month, year := d.day, d.month, d.year
	year += int(n/daysPer400Years) * 400
	rest := int(n % daysPer400Years)
	for rest > 0 {
		length := DaysInMonth(month, year)
		if day+rest <= length {
			day += rest
			break
		}
		rest -= length - day + 1
		day = 1
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return NewDate(day, month, year)
}

func (d Date) backward(n uint64) (Date, error) {
	cycles := n / daysPer400Years
	if cycles >= uint64(d.year)/400+1 {
		return Date{}, fmt.Errorf("%w: %s minus %d days is before year 1", ErrInvalidDate, d, n)
	}
	day, month, year := d.day, d.month, d.year-int(cycles)*400
	rest := int(n % daysPer400Years)
	for rest > 0 {
		if day > rest {
			day -= rest
			break
		}
		rest -= day
		month--
		if month < 1 {
			month = 12
			year--
		}
		day = DaysInMonth(month, year)
	}
	return NewDate(day, month, year)
}

// Compare returns -1, 0 or 1 ordering d against other by year, month and day.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(d.month - other.month)
	default:
		return sign(d.day - other.day)
	}
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int {
	return other.ordinal() - d.ordinal()
}

// ordinal counts days since 31/12/0000 (proleptic Gregorian).
func (d Date) ordinal() int {
	y := d.year - 1
	n := y*365 + y/4 - y/100 + y/400
	for m := 1; m < d.month; m++ {
		n += DaysInMonth(m, d.year)
	}
	return n + d.day
}

// String formats d as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.day, d.month, d.year)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
