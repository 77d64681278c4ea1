package status_test

import (
	"errors"
	"testing"
	"time"

	"github.com/robloxstatus/robloxstatus/internal/status"
)

func TestLoadTimezone_AllowList(t *testing.T) {
	for _, tz := range status.AllowedTimezones() {
		if _, err := status.LoadTimezone(tz); err != nil {
			t.Errorf("expected %q to load, got %v", tz, err)
		}
	}
}

func TestLoadTimezone_Rejected(t *testing.T) {
	for _, tz := range []string{"Mars/Phobos", "Europe/Amsterdam", "asia/bangkok", ""} {
		_, err := status.LoadTimezone(tz)
		if !errors.Is(err, status.ErrInvalidTimezone) {
			t.Errorf("expected ErrInvalidTimezone for %q, got %v", tz, err)
		}
	}
}

func TestNewTimestamp_Bangkok(t *testing.T) {
	loc, err := status.LoadTimezone("Asia/Bangkok")
	if err != nil {
		t.Fatal(err)
	}

	// 07:30 UTC is 14:30 in Bangkok (UTC+7, no DST).
	now := time.Date(2026, 1, 24, 7, 30, 0, 0, time.UTC)
	ts := status.NewTimestamp(now, "Asia/Bangkok", loc)

	if ts.Time != "14:30" {
		t.Errorf("expected time 14:30, got %q", ts.Time)
	}
	if ts.Full != "2026-01-24 14:30:00" {
		t.Errorf("unexpected full datetime %q", ts.Full)
	}
	if ts.ISO != "2026-01-24T07:30:00.000Z" {
		t.Errorf("unexpected iso %q", ts.ISO)
	}
	if ts.Unix != now.Unix() {
		t.Errorf("expected unix %d, got %d", now.Unix(), ts.Unix)
	}
	if ts.Timezone != "TH" {
		t.Errorf("expected label TH for Asia/Bangkok, got %q", ts.Timezone)
	}
}

func TestNewTimestamp_UTCLabel(t *testing.T) {
	loc, err := status.LoadTimezone("UTC")
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 1, 24, 7, 30, 0, 0, time.UTC)
	ts := status.NewTimestamp(now, "UTC", loc)

	if ts.Timezone != "UTC" {
		t.Errorf("expected label UTC, got %q", ts.Timezone)
	}
	if ts.Time != "07:30" {
		t.Errorf("expected 07:30, got %q", ts.Time)
	}
}
