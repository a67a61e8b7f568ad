package dublincore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/esnalabu/opencast/pkg/dublincore"
)

func TestDecodeDatePrecisions(t *testing.T) {
	cases := map[string]time.Time{
		"2014-06-05T09:15:56.000Z": time.Date(2014, 6, 5, 9, 15, 56, 0, time.UTC),
		"2014-06-05T09:15:56Z":     time.Date(2014, 6, 5, 9, 15, 56, 0, time.UTC),
		"2014-06-05":               time.Date(2014, 6, 5, 0, 0, 0, 0, time.UTC),
		"2014-06":                  time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC),
		"2014":                     time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for value, want := range cases {
		got, err := dublincore.DecodeDate(value)
		if err != nil {
			t.Fatalf("DecodeDate(%q): %v", value, err)
		}
		if !got.Equal(want) {
			t.Fatalf("DecodeDate(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestDecodeDatePeriodAware(t *testing.T) {
	got, err := dublincore.DecodeDate("start=2014-06-05T09:15:56Z; end=2014-06-05T09:16:56Z; scheme=W3C-DTF;")
	if err != nil {
		t.Fatalf("DecodeDate period: %v", err)
	}
	want := time.Date(2014, 6, 5, 9, 15, 56, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("period start = %v, want %v", got, want)
	}
}

func TestDecodeDateInvalid(t *testing.T) {
	if _, err := dublincore.DecodeDate("not-a-date"); !errors.Is(err, dublincore.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := dublincore.DecodeDate("   "); !errors.Is(err, dublincore.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for blank input, got %v", err)
	}
}

func TestDecodePeriod(t *testing.T) {
	period, ok := dublincore.DecodePeriod("start=2014-06-05T09:15:56Z; end=2014-06-05T09:16:56Z; scheme=W3C-DTF;")
	if !ok {
		t.Fatal("expected period to decode")
	}
	if !period.HasStart() || !period.HasEnd() {
		t.Fatalf("expected both bounds, got start=%v end=%v", period.HasStart(), period.HasEnd())
	}
	if got := period.End().Sub(period.Start()); got != time.Minute {
		t.Fatalf("period length = %v, want 1m", got)
	}
}

func TestDecodePeriodOpenEnded(t *testing.T) {
	period, ok := dublincore.DecodePeriod("start=2014-06-05T09:15:56Z; scheme=W3C-DTF;")
	if !ok {
		t.Fatal("expected open-ended period to decode")
	}
	if !period.HasStart() || period.HasEnd() {
		t.Fatal("expected start-only period")
	}
}

func TestDecodePeriodRejectsNonPeriods(t *testing.T) {
	for _, value := range []string{"5000", "01:02:03", "", "bogus=1;"} {
		if _, ok := dublincore.DecodePeriod(value); ok {
			t.Fatalf("DecodePeriod(%q) unexpectedly succeeded", value)
		}
	}
}

func TestPeriodEncodeRoundTrip(t *testing.T) {
	start := time.Date(2014, 6, 5, 9, 15, 56, 0, time.UTC)
	end := start.Add(time.Second)
	encoded := dublincore.NewPeriod(start, end).Encode()
	period, ok := dublincore.DecodePeriod(encoded)
	if !ok {
		t.Fatalf("round trip failed for %q", encoded)
	}
	if !period.Start().Equal(start) || !period.End().Equal(end) {
		t.Fatalf("round trip mismatch: %q -> %v..%v", encoded, period.Start(), period.End())
	}
}
