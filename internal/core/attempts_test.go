package core

import (
	"context"
	"testing"
	"time"
)

func TestParseAttempts(t *testing.T) {
	tests := []struct {
		input   string
		want    Attempts
		wantErr bool
	}{
		{"none", AttemptsNone, false},
		{"one", AttemptsOne, false},
		{"ALL", AttemptsAll, false},
		{" One ", AttemptsOne, false},
		{"two", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAttempts(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAttempts(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAttempts(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAttemptsCount(t *testing.T) {
	tests := []struct {
		a         Attempts
		available int
		want      int
	}{
		{AttemptsNone, 5, 0},
		{AttemptsOne, 5, 1},
		{AttemptsOne, 0, 0},
		{AttemptsAll, 5, 5},
		{AttemptsAll, 0, 0},
	}

	for _, tt := range tests {
		if got := tt.a.Count(tt.available); got != tt.want {
			t.Errorf("%s.Count(%d) = %d, want %d", tt.a, tt.available, got, tt.want)
		}
	}
}

func TestAttemptsSet(t *testing.T) {
	a := AttemptsNone
	if err := a.Set("all"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if a != AttemptsAll {
		t.Errorf("Set(all) = %q", a)
	}
	if err := a.Set("bogus"); err == nil {
		t.Error("Set(bogus) should fail")
	}
	if a != AttemptsAll {
		t.Errorf("failed Set() changed value to %q", a)
	}
}

func TestSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if err := Sleep(ctx, time.Hour); err == nil {
		t.Error("Sleep() on a cancelled context should fail")
	}
	if time.Since(start) > time.Second {
		t.Error("Sleep() did not return promptly")
	}
}

func TestSleepZero(t *testing.T) {
	if err := Sleep(context.Background(), 0); err != nil {
		t.Errorf("Sleep(0) = %v", err)
	}
}
