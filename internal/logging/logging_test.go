package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warning", LevelWarn},
		{" error ", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerFiltersAndFormats(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)
	l.now = func() time.Time { return time.Date(2024, 1, 1, 13, 4, 5, 6_000_000, time.UTC) }

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)

	got := buf.String()
	want := "13:04:05.006 [WARN] shown 2\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug)
	l.SetOutput(&buf)

	l.With("journey").With("gen").Debug("hello")
	if !strings.Contains(buf.String(), "[DEBUG] journey.gen: hello") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing %s", "here") // must not panic
}

func TestChildrenFollowRoot(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelInfo)
	root.SetOutput(&buf)
	child := root.With("journey")

	child.Debug("before")
	root.SetLevel(LevelDebug)
	child.Debug("after")

	var other bytes.Buffer
	root.SetOutput(&other)
	child.Info("moved")

	if got := buf.String(); strings.Contains(got, "before") || !strings.Contains(got, "journey: after") {
		t.Errorf("first output = %q, want only the line logged after SetLevel", got)
	}
	if !strings.Contains(other.String(), "journey: moved") {
		t.Errorf("second output = %q, want the child line after SetOutput", other.String())
	}
}
