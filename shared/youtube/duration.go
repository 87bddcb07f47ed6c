package youtube

import (
	"regexp"
	"strings"
)

// ISO 8601 duration as YouTube encodes it, e.g. "PT1H2M3S" with all parts optional.
var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration converts an ISO 8601 duration string into a short
// human-readable form ("PT4M13S" -> "4m 13s"). An empty input yields
// "Unknown"; anything that does not match the expected shape is returned
// unchanged.
func FormatDuration(iso string) string {
	if iso == "" {
		return "Unknown"
	}

	m := durationPattern.FindStringSubmatch(iso)
	if m == nil {
		return iso
	}

	var parts []string
	if m[1] != "" {
		parts = append(parts, m[1]+"h")
	}
	if m[2] != "" {
		parts = append(parts, m[2]+"m")
	}
	if m[3] != "" {
		parts = append(parts, m[3]+"s")
	}
	if len(parts) == 0 {
		return iso
	}

	return strings.Join(parts, " ")
}
