package extraction

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/tidwall/gjson"
)

var (
	nonNumericChars = regexp.MustCompile(`[^0-9.\-]`)
	numericPrefix   = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
	clockTime       = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([ap])?\.?\s*m?\b`)
	bareHour        = regexp.MustCompile(`(?i)\b(\d{1,2})\s*([ap])\.?\s*m\b`)
)

// ParseNumeric turns a loosely formatted value into a number. Strings have
// every character other than digits, '.' and '-' removed and the longest
// leading number is taken, so "$1,200.50" yields 1200.5. Unparseable input,
// NaN and infinities yield nil.
func ParseNumeric(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case gjson.Result:
		switch v.Type {
		case gjson.Number:
			return finite(v.Num)
		case gjson.String:
			return parseNumericString(v.Str)
		}
		return nil
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return finite(float64(v))
	case int64:
		return finite(float64(v))
	case json.Number:
		return parseNumericString(v.String())
	case string:
		return parseNumericString(v)
	case *string:
		if v == nil {
			return nil
		}
		return parseNumericString(*v)
	}
	return nil
}

func parseNumericString(s string) *float64 {
	cleaned := nonNumericChars.ReplaceAllString(s, "")
	m := numericPrefix.FindString(cleaned)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseTime extracts the first clock time from free text and returns it as
// "HH:MM:SS" on a 24-hour clock. "2:30 PM" yields "14:30:00" and "12 AM"
// yields "00:00:00". Out-of-range components yield nil.
func ParseTime(value any) *string {
	s, ok := text(value)
	if !ok {
		return nil
	}

	var hour, minute, second int
	var meridiem string
	if m := clockTime.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			second, _ = strconv.Atoi(m[3])
		}
		meridiem = strings.ToLower(m[4])
	} else if m := bareHour.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		meridiem = strings.ToLower(m[2])
	} else {
		return nil
	}

	if minute > 59 || second > 59 {
		return nil
	}
	switch meridiem {
	case "p", "a":
		if hour < 1 || hour > 12 {
			return nil
		}
		if meridiem == "p" && hour < 12 {
			hour += 12
		}
		if meridiem == "a" && hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return nil
		}
	}

	out := fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
	return &out
}

// ParseDate normalizes a date string to "YYYY-MM-DD". Ambiguous numeric
// forms are read month first, so "03/04/2025" is March 4.
func ParseDate(value any) *string {
	s, ok := text(value)
	if !ok {
		return nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return nil
	}
	out := t.Format("2006-01-02")
	return &out
}

func text(value any) (string, bool) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return "", false
		}
		s = *v
	case gjson.Result:
		if v.Type != gjson.String {
			return "", false
		}
		s = v.Str
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
