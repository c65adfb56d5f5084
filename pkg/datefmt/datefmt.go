// Package datefmt renders and parses timestamps with strftime-style patterns.
//
// Both directions are supported so a pattern can be validated before any file
// is touched, and so a name produced by Format can be recovered by Parse
// (numeric fields are fixed-width).
package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default is the pattern used when the caller supplies none,
// e.g. "2015-02-07 12.10.00".
const Default = "%Y-%m-%d %H.%M.%S"

// Format renders t according to pattern.
//
// Supported tokens: %Y %y %m %d %H %I %M %S %p %j and %% for a literal
// percent sign. Any other token is an error.
func Format(t time.Time, pattern string) (string, error) {
	var b strings.Builder

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("pattern %q: trailing %%", pattern)
		}

		switch pattern[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", t.Year())
		case 'y':
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case 'd':
			fmt.Fprintf(&b, "%02d", t.Day())
		case 'H':
			fmt.Fprintf(&b, "%02d", t.Hour())
		case 'I':
			fmt.Fprintf(&b, "%02d", hour12(t.Hour()))
		case 'M':
			fmt.Fprintf(&b, "%02d", t.Minute())
		case 'S':
			fmt.Fprintf(&b, "%02d", t.Second())
		case 'p':
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		case '%':
			b.WriteByte('%')
		default:
			return "", fmt.Errorf("pattern %q: unsupported token %%%c", pattern, pattern[i])
		}
	}

	return b.String(), nil
}

// Validate reports whether pattern only uses supported tokens.
func Validate(pattern string) error {
	_, err := Format(time.Time{}, pattern)
	return err
}

// Parse is the inverse of Format: it recovers a time from value, to the
// precision the pattern carries. Unset fields default to their zero values
// (month and day to 1). The result is in the local time zone, matching how
// EXIF timestamps are interpreted.
func Parse(pattern, value string) (time.Time, error) {
	year, month, day := 0, 1, 1
	hour, min, sec := 0, 0, 0
	pm, havePM := false, false
	hour12Val, haveHour12 := 0, false

	pos := 0
	take := func(width int) (string, error) {
		if pos+width > len(value) {
			return "", fmt.Errorf("parse %q with pattern %q: value too short", value, pattern)
		}
		s := value[pos : pos+width]
		pos += width
		return s, nil
	}
	takeInt := func(width int) (int, error) {
		s, err := take(width)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("parse %q with pattern %q: expected digits, got %q", value, pattern, s)
		}
		return n, nil
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			s, err := take(1)
			if err != nil {
				return time.Time{}, err
			}
			if s[0] != c {
				return time.Time{}, fmt.Errorf("parse %q with pattern %q: expected %q at offset %d", value, pattern, string(c), pos-1)
			}
			continue
		}

		i++
		if i >= len(pattern) {
			return time.Time{}, fmt.Errorf("pattern %q: trailing %%", pattern)
		}

		var err error
		switch pattern[i] {
		case 'Y':
			year, err = takeInt(4)
		case 'y':
			var y int
			y, err = takeInt(2)
			// Same pivot strftime implementations use: 69-99 are 1900s.
			if y >= 69 {
				year = 1900 + y
			} else {
				year = 2000 + y
			}
		case 'm':
			month, err = takeInt(2)
		case 'd':
			day, err = takeInt(2)
		case 'H':
			hour, err = takeInt(2)
		case 'I':
			hour12Val, err = takeInt(2)
			haveHour12 = true
		case 'M':
			min, err = takeInt(2)
		case 'S':
			sec, err = takeInt(2)
		case 'p':
			var s string
			s, err = take(2)
			if err == nil {
				switch s {
				case "AM":
					pm = false
				case "PM":
					pm = true
				default:
					return time.Time{}, fmt.Errorf("parse %q with pattern %q: expected AM or PM, got %q", value, pattern, s)
				}
				havePM = true
			}
		case 'j':
			// Consumed for symmetry; month and day carry the same information.
			_, err = takeInt(3)
		case '%':
			var s string
			s, err = take(1)
			if err == nil && s != "%" {
				return time.Time{}, fmt.Errorf("parse %q with pattern %q: expected %%", value, pattern)
			}
		default:
			return time.Time{}, fmt.Errorf("pattern %q: unsupported token %%%c", pattern, pattern[i])
		}
		if err != nil {
			return time.Time{}, err
		}
	}

	if pos != len(value) {
		return time.Time{}, fmt.Errorf("parse %q with pattern %q: trailing input %q", value, pattern, value[pos:])
	}

	if haveHour12 {
		hour = hour12Val % 12
		if havePM && pm {
			hour += 12
		}
	}

	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.Local), nil
}

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}
