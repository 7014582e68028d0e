package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDurationStrict parses Go duration syntax ("15m", "720h") and the
// day suffix used by token settings ("7d", "30d").
func ParseDurationStrict(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid day duration %q", value)
		}
		return time.Duration(n * float64(24*time.Hour)), nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", value)
	}
	return d, nil
}

// ParseDuration parses a duration string, returning defaultValue when the
// input is empty or malformed.
func ParseDuration(value string, defaultValue time.Duration) time.Duration {
	d, err := ParseDurationStrict(value)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", value).Dur("defaultDuration", defaultValue).Msg("Failed to parse duration string, using default")
		return defaultValue
	}
	return d
}
