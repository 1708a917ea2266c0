package discord

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/neppath/convoybot/internal/domain"
)

var (
	eventLinkRe = regexp.MustCompile(`/events/(\d+)`)
	vtcLinkRe   = regexp.MustCompile(`/vtc/(\d+)`)
)

var namedColors = map[string]int{
	"blue":   0x3498DB,
	"red":    0xE74C3C,
	"green":  0x2ECC71,
	"yellow": 0xF1C40F,
	"purple": 0x9B59B6,
	"orange": 0xE67E22,
	"cyan":   0x00FFFF,
	"white":  0xFFFFFF,
	"black":  0x000000,
}

// parseSlotRange expands "1-10" into ["Slot 1" .. "Slot 10"].
func parseSlotRange(s string) ([]string, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: slot range must look like 1-10", domain.ErrValidation)
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: slot range must look like 1-10", domain.ErrValidation)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: slot range must look like 1-10", domain.ErrValidation)
	}
	if start < 1 || end < start {
		return nil, fmt.Errorf("%w: slot range bounds out of order", domain.ErrValidation)
	}

	names := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		names = append(names, fmt.Sprintf("Slot %d", i))
	}
	return names, nil
}

// parseSlotNumber turns a modal's free-text slot field into a slot name.
func parseSlotNumber(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return "", fmt.Errorf("%w: slot number must be a number only, like 1", domain.ErrValidation)
	}
	return fmt.Sprintf("Slot %d", n), nil
}

// parseColor accepts a named color or "#RRGGBB"/"RRGGBB" hex.
func parseColor(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("%w: color is required", domain.ErrValidation)
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: color must be a known name or #RRGGBB", domain.ErrValidation)
	}
	c, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color must be a known name or #RRGGBB", domain.ErrValidation)
	}
	return int(c), nil
}

// extractEventID pulls the numeric event ID from a TruckersMP link or a
// bare number.
func extractEventID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if m := eventLinkRe.FindStringSubmatch(s); m != nil {
		return strconv.Atoi(m[1])
	}
	if id, err := strconv.Atoi(s); err == nil && id > 0 {
		return id, nil
	}
	return 0, fmt.Errorf("%w: could not find an event ID in that link", domain.ErrValidation)
}

// extractVTCID pulls the numeric VTC ID from a TruckersMP link or a
// bare number.
func extractVTCID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if m := vtcLinkRe.FindStringSubmatch(s); m != nil {
		return strconv.Atoi(m[1])
	}
	if id, err := strconv.Atoi(s); err == nil && id > 0 {
		return id, nil
	}
	return 0, fmt.Errorf("%w: could not find a VTC ID in that link", domain.ErrValidation)
}

// parseEventDate parses the dd/mm/yy filter used by /events.
func parseEventDate(s string) (time.Time, error) {
	t, err := time.Parse("02/01/06", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, use dd/mm/yy", domain.ErrValidation)
	}
	return t, nil
}

// parseAPITime handles the timestamp shapes the TruckersMP API emits.
func parseAPITime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, strings.TrimSuffix(s, "Z")); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// nptOffset converts UTC to Nepal time for the community's footer lines.
const nptOffset = 5*time.Hour + 45*time.Minute

func formatEventTime(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "Unknown"
	}
	return fmt.Sprintf("%s UTC | %s NPT", t.Format("15:04"), t.Add(nptOffset).Format("15:04"))
}

func formatEventDate(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "Unknown"
	}
	return t.Format("Monday, 02 January 2006")
}

// checkImageURL confirms the URL serves an image content type via a
// HEAD request.
func checkImageURL(ctx context.Context, url string) bool {
	if !strings.HasPrefix(url, "http") {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "image")
}
