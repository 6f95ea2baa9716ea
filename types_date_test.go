package brokerage

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()
	currentYear := today.Year()
	currentMonth := today.Month()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO format, permissive on digits.
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative duration format.
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(currentYear, currentMonth+1, today.Day()), false},
		{"-3q", NewDate(currentYear, currentMonth-9, today.Day()), false},
		{"+1y", NewDate(currentYear+1, currentMonth, today.Day()), false},
		{"-1y", NewDate(currentYear-1, currentMonth, today.Day()), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_StartEndOf(t *testing.T) {
	d := NewDate(2025, time.August, 20) // a Wednesday

	tests := []struct {
		period    Period
		wantStart Date
		wantEnd   Date
	}{
		{Daily, d, d},
		{Weekly, NewDate(2025, time.August, 18), NewDate(2025, time.August, 24)},
		{Monthly, NewDate(2025, time.August, 1), NewDate(2025, time.August, 31)},
		{Quarterly, NewDate(2025, time.July, 1), NewDate(2025, time.September, 30)},
		{Yearly, NewDate(2025, time.January, 1), NewDate(2025, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			if got := d.StartOf(tt.period); got != tt.wantStart {
				t.Errorf("StartOf(%v) = %v, want %v", tt.period, got, tt.wantStart)
			}
			if got := d.EndOf(tt.period); got != tt.wantEnd {
				t.Errorf("EndOf(%v) = %v, want %v", tt.period, got, tt.wantEnd)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		date    Date
		wantErr bool
	}{
		{name: "zero date", json: `""`, date: Date{}},
		{name: "regular date", json: `"2024-05-21"`, date: NewDate(2024, 5, 21)},
		{name: "invalid date", json: `"not-a-date"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if d != tt.date {
				t.Errorf("json.Unmarshal() got = %v, want %v", d, tt.date)
			}
			back, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatal(err)
			}
			if string(back) != tt.json {
				t.Errorf("json.Marshal() = %s, want %s", back, tt.json)
			}
		})
	}
}
