package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-10", NewDate(2024, time.January, 10), false},
		{"  2024-01-10 ", NewDate(2024, time.January, 10), false},
		{"2024-01-10T15:04:05.000Z", NewDate(2024, time.January, 10), false},
		{"2024-01-10 15:04", NewDate(2024, time.January, 10), false},
		{"2024-01-10garbage", Date{}, true},
		{"2024-01-100", Date{}, true},
		{"2024-13-01", Date{}, true},
		{"10/01/2024", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v (%s)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !got.Equal(tt.want.Time) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDateUnmarshalRejectsTrailingText(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-02-29"`), &d); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", d)
	}

	if err := json.Unmarshal([]byte(`"2024-02-29junk"`), &d); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	var empty Date
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil || !empty.IsZero() {
		t.Fatalf("expected zero date for empty string, got %s %v", empty, err)
	}
}
