package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotRange_Success(t *testing.T) {
	names, err := parseSlotRange("1-3")

	require.NoError(t, err)
	assert.Equal(t, []string{"Slot 1", "Slot 2", "Slot 3"}, names)
}

func TestParseSlotRange_SingleSlot(t *testing.T) {
	names, err := parseSlotRange("7-7")

	require.NoError(t, err)
	assert.Equal(t, []string{"Slot 7"}, names)
}

func TestParseSlotRange_Invalid(t *testing.T) {
	for _, input := range []string{"abc", "1", "5-2", "0-3", "-", "a-b"} {
		_, err := parseSlotRange(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestParseSlotNumber_Success(t *testing.T) {
	name, err := parseSlotNumber(" 7 ")

	require.NoError(t, err)
	assert.Equal(t, "Slot 7", name)
}

func TestParseSlotNumber_NonNumeric(t *testing.T) {
	for _, input := range []string{"abc", "", "-1", "0", "Slot 7"} {
		_, err := parseSlotNumber(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("green")
	require.NoError(t, err)
	assert.Equal(t, 0x2ECC71, c)

	c, err = parseColor("#FF5A20")
	require.NoError(t, err)
	assert.Equal(t, 0xFF5A20, c)

	c, err = parseColor("ff5a20")
	require.NoError(t, err)
	assert.Equal(t, 0xFF5A20, c)

	_, err = parseColor("notacolor")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExtractEventID(t *testing.T) {
	id, err := extractEventID("https://truckersmp.com/events/12345")
	require.NoError(t, err)
	assert.Equal(t, 12345, id)

	id, err = extractEventID("12345")
	require.NoError(t, err)
	assert.Equal(t, 12345, id)

	_, err = extractEventID("https://truckersmp.com/vtc/99")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExtractVTCID(t *testing.T) {
	id, err := extractVTCID("https://truckersmp.com/vtc/678")
	require.NoError(t, err)
	assert.Equal(t, 678, id)

	id, err = extractVTCID("678")
	require.NoError(t, err)
	assert.Equal(t, 678, id)

	_, err = extractVTCID("not a link")
	require.Error(t, err)
}

func TestParseEventDate(t *testing.T) {
	day, err := parseEventDate("25/12/25")
	require.NoError(t, err)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.December, day.Month())
	assert.Equal(t, 25, day.Day())

	_, err = parseEventDate("2025-12-25")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseAPITime(t *testing.T) {
	for _, input := range []string{
		"2025-12-13T20:00:00Z",
		"2025-12-13T20:00:00",
		"2025-12-13 20:00:00",
	} {
		ts, ok := parseAPITime(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, 20, ts.Hour())
	}

	_, ok := parseAPITime("")
	assert.False(t, ok)

	_, ok = parseAPITime("soon")
	assert.False(t, ok)
}

func TestFormatEventTime(t *testing.T) {
	assert.Equal(t, "20:00 UTC | 01:45 NPT", formatEventTime("2025-12-13T20:00:00Z"))
	assert.Equal(t, "Unknown", formatEventTime(""))
}

func TestCheckImageURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/image.png" {
			w.Header().Set("Content-Type", "image/png")
		} else {
			w.Header().Set("Content-Type", "text/html")
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	assert.True(t, checkImageURL(ctx, srv.URL+"/image.png"))
	assert.False(t, checkImageURL(ctx, srv.URL+"/page.html"))
	assert.False(t, checkImageURL(ctx, "not-a-url"))
}

func TestSplitRoute(t *testing.T) {
	start, finish, ok := splitRoute("Kathmandu | Calais")
	assert.True(t, ok)
	assert.Equal(t, "Kathmandu", start)
	assert.Equal(t, "Calais", finish)

	_, _, ok = splitRoute("")
	assert.False(t, ok)

	_, _, ok = splitRoute("Kathmandu")
	assert.False(t, ok)

	_, _, ok = splitRoute("| Calais")
	assert.False(t, ok)
}
