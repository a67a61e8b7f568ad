// Package dublincore decodes the Dublin Core date and period encodings used
// by catalog metadata values. Dates follow W3C-DTF (ISO-8601 with reduced
// precision); periods use the key=value microformat with explicit start and
// end timestamps.
package dublincore

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Period is a time interval with an optional start and end. A period decoded
// from a value string may omit either bound.
type Period struct {
	start time.Time
	end   time.Time

	hasStart bool
	hasEnd   bool
}

// NewPeriod builds a period from explicit bounds.
func NewPeriod(start, end time.Time) Period {
	return Period{start: start, end: end, hasStart: true, hasEnd: true}
}

// Start returns the period start; valid only when HasStart reports true.
func (p Period) Start() time.Time { return p.start }

// End returns the period end; valid only when HasEnd reports true.
func (p Period) End() time.Time { return p.end }

// HasStart reports whether the period has an explicit start.
func (p Period) HasStart() bool { return p.hasStart }

// HasEnd reports whether the period has an explicit end.
func (p Period) HasEnd() bool { return p.hasEnd }

// Encode serialises the period into its W3C-DTF microformat form.
func (p Period) Encode() string {
	var b strings.Builder
	if p.hasStart {
		fmt.Fprintf(&b, "start=%s; ", p.start.UTC().Format(layoutDateTimeMillisZ))
	}
	if p.hasEnd {
		fmt.Fprintf(&b, "end=%s; ", p.end.UTC().Format(layoutDateTimeMillisZ))
	}
	b.WriteString("scheme=W3C-DTF;")
	return b.String()
}

const (
	layoutDateTimeMillisZ = "2006-01-02T15:04:05.000Z"
	layoutDateTimeZ       = "2006-01-02T15:04:05Z"
	layoutDateTimeMinZ    = "2006-01-02T15:04Z"
	layoutDate            = "2006-01-02"
	layoutYearMonth       = "2006-01"
	layoutYear            = "2006"
)

// dateLayouts are tried in order of decreasing precision. Reduced-precision
// forms are part of W3C-DTF and appear in hand-edited catalogs.
var dateLayouts = []string{
	time.RFC3339Nano,
	layoutDateTimeMillisZ,
	layoutDateTimeZ,
	layoutDateTimeMinZ,
	layoutDate,
	layoutYearMonth,
	layoutYear,
}

// ErrInvalidDate is returned by DecodeDate when the value matches none of the
// accepted encodings.
var ErrInvalidDate = errors.New("dublincore: invalid date encoding")

// DecodeDate parses a Dublin Core date value. Plain W3C-DTF timestamps of any
// supported precision decode directly; a period value decodes to its start.
func DecodeDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	if period, ok := DecodePeriod(value); ok && period.HasStart() {
		return period.Start(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// DecodePeriod parses the period microformat, e.g.
//
//	start=2014-06-05T09:15:56Z; end=2014-06-05T09:16:56Z; scheme=W3C-DTF;
//
// Unrecognised keys (name, scheme) are ignored. The second return value is
// false when the string is not a period at all or carries no parsable bound.
func DecodePeriod(value string) (Period, bool) {
	var p Period
	found := false
	for _, token := range strings.Split(value, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key, raw, ok := strings.Cut(token, "=")
		if !ok {
			return Period{}, false
		}
		switch strings.TrimSpace(key) {
		case "start":
			t, err := decodeBound(raw)
			if err != nil {
				return Period{}, false
			}
			p.start, p.hasStart = t, true
			found = true
		case "end":
			t, err := decodeBound(raw)
			if err != nil {
				return Period{}, false
			}
			p.end, p.hasEnd = t, true
			found = true
		case "scheme", "name":
			// carried for information only
		default:
			return Period{}, false
		}
	}
	if !found {
		return Period{}, false
	}
	return p, true
}

func decodeBound(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
