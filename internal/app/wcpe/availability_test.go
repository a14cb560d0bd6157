package wcpe

import (
	"errors"
	"testing"
	"time"
)

func TestValidateAvailability(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	window := 7 * 24 * time.Hour
	now := time.Date(2026, 8, 20, 15, 0, 0, 0, eastern)
	eod := EndOfDay(now, eastern)

	tests := []struct {
		name    string
		t       time.Time
		wantErr bool
	}{
		{"now", now, false},
		{"station end of day", eod, false},
		{"just after end of day", eod.Add(time.Nanosecond), true},
		{"tomorrow", now.AddDate(0, 0, 1), true},
		{"yesterday", now.AddDate(0, 0, -1), false},
		{"window opening is exclusive", eod.Add(-window), true},
		{"just inside the window", eod.Add(-window).Add(time.Nanosecond), false},
		{"a month ago", now.AddDate(0, -1, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAvailability(tt.t, now, eastern, window)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAvailability(%s) error = %v, wantErr %v", tt.t, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnavailable) {
				t.Errorf("ValidateAvailability(%s) error = %v, want ErrUnavailable", tt.t, err)
			}
		})
	}
}

func TestValidateAvailabilityCallerTimezoneIndependent(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	tokyo := mustLoadLocation(t, "Asia/Tokyo")
	window := 7 * 24 * time.Hour
	now := time.Date(2026, 8, 20, 15, 0, 0, 0, eastern)

	// The same instant expressed in another timezone validates identically.
	inside := EndOfDay(now, eastern).In(tokyo)
	if err := ValidateAvailability(inside, now, eastern, window); err != nil {
		t.Errorf("ValidateAvailability(%s) = %v, want nil", inside, err)
	}
	outside := EndOfDay(now, eastern).Add(time.Nanosecond).In(tokyo)
	if err := ValidateAvailability(outside, now, eastern, window); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ValidateAvailability(%s) = %v, want ErrUnavailable", outside, err)
	}
}
