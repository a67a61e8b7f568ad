package metadata

import (
	"strconv"
	"strings"

	"github.com/esnalabu/opencast/pkg/dublincore"
)

// parseDurationMillis resolves a raw duration value into milliseconds. Three
// encodings are accepted, tried strictly in this order:
//
//  1. H:M:S — exactly three colon-separated integers.
//  2. A period with explicit start and end; the duration is end minus start.
//  3. A plain base-10 integer millisecond count.
//
// A value with exactly three colon-separated parts never falls through to
// the later strategies, even when a part is not an integer. The boolean is
// false when no strategy applies; callers additionally require a positive
// result before assigning it.
func parseDurationMillis(value string) (int64, bool) {
	if parts := strings.Split(value, ":"); len(parts) == 3 {
		hours, errH := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		minutes, errM := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		seconds, errS := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
		if errH != nil || errM != nil || errS != nil {
			return 0, false
		}
		return ((hours*60+minutes)*60 + seconds) * 1000, true
	}

	if period, ok := dublincore.DecodePeriod(value); ok && period.HasStart() && period.HasEnd() {
		return period.End().Sub(period.Start()).Milliseconds(), true
	}

	millis, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, false
	}
	return millis, true
}
