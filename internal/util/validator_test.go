package util

import (
	"testing"
	"time"
)

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(12.34); err != nil {
		t.Errorf("valid amount rejected: %v", err)
	}
	if err := ValidateAmount(0); err == nil {
		t.Error("zero amount should be rejected")
	}
	if err := ValidateAmount(-5); err == nil {
		t.Error("negative amount should be rejected")
	}
	if err := ValidateAmount(10000000); err == nil {
		t.Error("amount above the cap should be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("valid email %q rejected: %v", e, err)
		}
	}

	invalid := []string{"", "plain", "a@b", "@example.com", "a b@c.de"}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("invalid email %q accepted", e)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []string{
		"2025-12-03",
		"2025-12-03T00:00:00",
		"2025-12-03T00:00:00+07:00",
	}
	for _, s := range cases {
		got, err := ParseDate(s)
		if err != nil {
			t.Errorf("parse %q: %v", s, err)
			continue
		}
		if got.Year() != 2025 || got.Month() != time.December || got.Day() != 3 {
			t.Errorf("parse %q: got %v", s, got)
		}
	}

	if _, err := ParseDate(""); err == nil {
		t.Error("empty date should be rejected")
	}
	if _, err := ParseDate("03/12/2025"); err == nil {
		t.Error("unknown layout should be rejected")
	}
}
