package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestParseOptionsClampsDialTimeout(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want time.Duration
	}{
		{"unset", "redis://localhost:6379", MaxDialTimeout},
		{"shorter kept", "redis://localhost:6379?dial_timeout=2s", 2 * time.Second},
		{"longer capped", "redis://localhost:6379?dial_timeout=30s", MaxDialTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseOptions(tt.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.DialTimeout != tt.want {
				t.Fatalf("expected dial timeout %v, got %v", tt.want, opts.DialTimeout)
			}
		})
	}
}

func TestParseOptionsKeepsDatabase(t *testing.T) {
	opts, err := parseOptions("redis://:secret@localhost:6380/3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6380" || opts.DB != 3 || opts.Password != "secret" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestNewClientPingsServer(t *testing.T) {
	s := miniredis.RunT(t)

	ctx := context.Background()
	client, err := NewClient(ctx, "redis://"+s.Addr())
	if err != nil {
		t.Fatalf("expected client, got error: %v", err)
	}
	defer client.Close()

	if err := client.Set(ctx, "rozana_paisa_theme_v3", `"dark"`, 0).Err(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got, _ := s.Get("rozana_paisa_theme_v3"); got != `"dark"` {
		t.Fatalf("expected value on server, got %q", got)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := NewClient(context.Background(), "://bad-url"); err == nil {
		t.Fatalf("expected error for invalid URL")
	}
}

func TestNewClientServerDown(t *testing.T) {
	s := miniredis.RunT(t)
	url := "redis://" + s.Addr()
	s.Close()

	if _, err := NewClient(context.Background(), url); err == nil {
		t.Fatalf("expected ping error when server is down")
	}
}
