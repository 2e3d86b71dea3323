package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTCISOIn_BareLocalString(t *testing.T) {
	plusTwo := time.FixedZone("UTC+2", 2*60*60)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minutes precision", "2025-06-01T14:30", "2025-06-01T12:30:00Z"},
		{"seconds precision", "2025-06-01T14:30:45", "2025-06-01T12:30:45Z"},
		{"space separator", "2025-06-01 14:30", "2025-06-01T12:30:00Z"},
		{"space with seconds", "2025-06-01 14:30:45", "2025-06-01T12:30:45Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToUTCISOIn(tc.in, plusTwo)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToUTCISOIn_ExplicitZoneParsedAsGiven(t *testing.T) {
	// an explicit marker wins over the supplied location
	plusTwo := time.FixedZone("UTC+2", 2*60*60)

	got, ok := ToUTCISOIn("2025-06-01T12:30:00Z", plusTwo)
	require.True(t, ok)
	assert.Equal(t, "2025-06-01T12:30:00Z", got)

	got, ok = ToUTCISOIn("2025-06-01T14:30:00+05:00", plusTwo)
	require.True(t, ok)
	assert.Equal(t, "2025-06-01T09:30:00Z", got)
}

func TestToUTCISOIn_MillisecondsDropped(t *testing.T) {
	got, ok := ToUTCISOIn("2025-06-01T12:30:00.750Z", time.UTC)
	require.True(t, ok)
	assert.Equal(t, "2025-06-01T12:30:00Z", got)
}

func TestToUTCISOIn_RoundTrip(t *testing.T) {
	// normalizing then re-parsing as UTC equals interpreting the original
	// string in the source zone
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	raw := "2025-06-01T14:30"

	iso, ok := ToUTCISOIn(raw, plusTwo)
	require.True(t, ok)

	parsed, err := time.Parse(time.RFC3339, iso)
	require.NoError(t, err)

	wall, err := time.ParseInLocation("2006-01-02T15:04", raw, plusTwo)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(wall))
}

func TestToUTCISOIn_Unparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "next tuesday", "2025-13-45T99:99"} {
		got, ok := ToUTCISOIn(in, time.UTC)
		assert.False(t, ok, "input %q", in)
		assert.Empty(t, got)
	}
}

func TestNormalizeOrRaw_FallsBackToRaw(t *testing.T) {
	assert.Equal(t, "not-a-date", NormalizeOrRaw("not-a-date", time.UTC))
	assert.Equal(t, "2025-06-01T12:30:00Z", NormalizeOrRaw("2025-06-01T12:30", time.UTC))
}

func TestFormatUTC(t *testing.T) {
	in := time.Date(2025, 6, 1, 14, 30, 45, 987654321, time.FixedZone("UTC+2", 2*60*60))
	assert.Equal(t, "2025-06-01T12:30:45Z", FormatUTC(in))
}

func TestParseUTCISO_DeadlineComparison(t *testing.T) {
	deadline, ok := ParseUTCISO("2025-05-30T10:00", time.UTC)
	require.True(t, ok)
	event, ok := ParseUTCISO("2025-06-01T20:00:00Z", time.UTC)
	require.True(t, ok)
	assert.True(t, deadline.Before(event))
}
