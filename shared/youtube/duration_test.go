package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"minutes and seconds", "PT4M13S", "4m 13s"},
		{"hours and minutes", "PT1H2M", "1h 2m"},
		{"all components", "PT1H2M3S", "1h 2m 3s"},
		{"seconds only", "PT45S", "45s"},
		{"hours only", "PT2H", "2h"},
		{"absent duration", "", "Unknown"},
		{"unexpected shape returned unchanged", "4 minutes", "4 minutes"},
		{"partial prefix returned unchanged", "P1DT2H", "P1DT2H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.iso))
		})
	}
}

func TestFormatDurationIdempotentOnUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", FormatDuration(""))
	assert.Equal(t, "Unknown", FormatDuration(""))
}
