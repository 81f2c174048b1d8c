package utils

import "testing"

func TestNormalizeSessionTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10:00:00", "10:00"},
		{"10:00:30", "10:00"},
		{"18:30", "18:30"},
		{"9:05", "09:05"},
		{"00:00", "00:00"},
	}
	for _, tc := range cases {
		got, err := NormalizeSessionTime(tc.in)
		if err != nil {
			t.Errorf("NormalizeSessionTime(%q) errored: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeSessionTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSessionTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "ten o'clock", "25:00", "10:61", "2024-05-01"} {
		if _, err := NormalizeSessionTime(in); err == nil {
			t.Errorf("NormalizeSessionTime(%q) should fail", in)
		}
	}
}

func TestValidSessionDate(t *testing.T) {
	if !ValidSessionDate("2024-05-01") {
		t.Error("2024-05-01 should be valid")
	}
	for _, in := range []string{"", "01-05-2024", "2024/05/01", "2024-13-01", "tomorrow"} {
		if ValidSessionDate(in) {
			t.Errorf("%q should be invalid", in)
		}
	}
}
