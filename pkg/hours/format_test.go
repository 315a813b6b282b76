package hours

import "testing"

func TestToDisplay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"01:05", "1:05 AM"},
		{"09:00", "9:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"13:05", "1:05 PM"},
		{"17:00", "5:00 PM"},
		{"23:59", "11:59 PM"},
		{"9:00", "9:00 AM"}, // unpadded hour still parses
	}

	for _, test := range tests {
		if got := ToDisplay(test.input); got != test.expected {
			t.Errorf("ToDisplay(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestToDisplayMalformedPassThrough(t *testing.T) {
	inputs := []string{"", "25:00", "12:60", "9am", "noon", "12.30", "Closed"}

	for _, input := range inputs {
		if got := ToDisplay(input); got != input {
			t.Errorf("ToDisplay(%q) = %q, expected pass-through", input, got)
		}
	}
}
