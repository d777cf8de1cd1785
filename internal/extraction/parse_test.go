package extraction

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{"nil", nil, nil},
		{"float", 12.5, ptr(12.5)},
		{"int", 42, ptr(42)},
		{"currency string", "$1,200.50", ptr(1200.5)},
		{"weight with unit", "38,000 lbs", ptr(38000)},
		{"negative", "-15.25", ptr(-15.25)},
		{"leading dot", ".75", ptr(0.75)},
		{"prefix only", "12.5.3", ptr(12.5)},
		{"json number", json.Number("99.9"), ptr(99.9)},
		{"gjson number", gjson.Parse(`3000`), ptr(3000)},
		{"gjson string", gjson.Parse(`"USD 250"`), ptr(250)},
		{"gjson null", gjson.Parse(`null`), nil},
		{"empty string", "", nil},
		{"letters only", "N/A", nil},
		{"lone minus", "-", nil},
		{"bool", true, nil},
		{"nan", math.NaN(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumeric(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2:30 PM", "14:30:00"},
		{"2:30pm", "14:30:00"},
		{"2:30 p.m.", "14:30:00"},
		{"12:15 AM", "00:15:00"},
		{"12:00 PM", "12:00:00"},
		{"14:30", "14:30:00"},
		{"07:05:09", "07:05:09"},
		{"Appt 0800-1600, arrive by 8:00 am", "08:00:00"},
		{"14:30 at dock 4", "14:30:00"},
		{"2 PM", "14:00:00"},
		{"12 AM", "00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseTime(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseTime_Invalid(t *testing.T) {
	for _, input := range []any{"", "FCFS", "25:00", "10:75", "13:00 PM", "0:30 AM", "114:30", nil, 1430} {
		t.Run(fmt.Sprint(input), func(t *testing.T) {
			assert.Nil(t, ParseTime(input))
		})
	}
}

func TestParseTime_OutputShape(t *testing.T) {
	shape := regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 7, 30, 59} {
			for _, in := range []string{
				fmt.Sprintf("%d:%02d", h, m),
				fmt.Sprintf("%d:%02d %s", twelveHour(h), m, meridiem(h)),
			} {
				got := ParseTime(in)
				require.NotNil(t, got, in)
				assert.Regexp(t, shape, *got)
				assert.Equal(t, fmt.Sprintf("%02d:%02d:00", h, m), *got, in)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-03-04", "2025-03-04"},
		{"03/04/2025", "2025-03-04"},
		{"3/4/2025", "2025-03-04"},
		{"March 4, 2025", "2025-03-04"},
		{"2025-03-04T15:00:00Z", "2025-03-04"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseDate(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not a date"))
	assert.Nil(t, ParseDate(nil))
	assert.Nil(t, ParseDate(gjson.Parse(`null`)))
}

func ptr(f float64) *float64 { return &f }

func twelveHour(h int) int {
	switch {
	case h == 0:
		return 12
	case h > 12:
		return h - 12
	}
	return h
}

func meridiem(h int) string {
	if h < 12 {
		return "AM"
	}
	return "PM"
}
