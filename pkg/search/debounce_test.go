package search

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/goleak"
)

func collector() (chan string, func(string)) {
	ch := make(chan string, 10)
	return ch, func(v string) { ch <- v }
}

func expectValue(t *testing.T, ch chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("Expected %q, got %q", want, got)
		}
	case <-time.After(time.Second):
		t.Fatalf("Expected %q to be emitted", want)
	}
}

func expectNothing(t *testing.T, ch chan string) {
	t.Helper()
	select {
	case got := <-ch:
		t.Fatalf("Expected no emission, got %q", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncerEmitsLatestValueOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := clock.NewMock()
	ch, emit := collector()
	d := NewDebouncer(300*time.Millisecond, clk, emit)

	d.Push("a")
	clk.Add(100 * time.Millisecond)
	d.Push("ai")
	clk.Add(100 * time.Millisecond)
	d.Push("ai ")
	expectNothing(t, ch)

	clk.Add(300 * time.Millisecond)
	expectValue(t, ch, "ai ")

	clk.Add(time.Second)
	expectNothing(t, ch)
}

func TestDebouncerWaitsForFullQuietPeriod(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := clock.NewMock()
	ch, emit := collector()
	d := NewDebouncer(300*time.Millisecond, clk, emit)

	d.Push("seo")
	clk.Add(299 * time.Millisecond)
	expectNothing(t, ch)
	clk.Add(time.Millisecond)
	expectValue(t, ch, "seo")
}

func TestDebouncerSeparateBursts(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := clock.NewMock()
	ch, emit := collector()
	d := NewDebouncer(300*time.Millisecond, clk, emit)

	d.Push("copy")
	clk.Add(400 * time.Millisecond)
	expectValue(t, ch, "copy")

	d.Push("copywriting")
	clk.Add(400 * time.Millisecond)
	expectValue(t, ch, "copywriting")
}

func TestDebouncerFlush(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := clock.NewMock()
	ch, emit := collector()
	d := NewDebouncer(300*time.Millisecond, clk, emit)

	d.Push("analytics")
	if v, ok := d.Pending(); !ok || v != "analytics" {
		t.Fatalf("Expected pending analytics, got %q %v", v, ok)
	}
	d.Flush()
	expectValue(t, ch, "analytics")

	clk.Add(time.Second)
	expectNothing(t, ch)
	d.Flush()
	expectNothing(t, ch)
}

func TestDebouncerStop(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := clock.NewMock()
	ch, emit := collector()
	d := NewDebouncer(300*time.Millisecond, clk, emit)

	d.Push("attribution")
	d.Stop()
	clk.Add(time.Second)
	expectNothing(t, ch)

	d.Push("ignored")
	clk.Add(time.Second)
	expectNothing(t, ch)
	if _, ok := d.Pending(); ok {
		t.Errorf("Expected nothing pending after stop")
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("  AI Video ") != "ai video" {
		t.Errorf("Unexpected normalization %q", Normalize("  AI Video "))
	}
}
