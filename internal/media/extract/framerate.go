package extract

import (
	"strconv"
	"strings"
)

// zeroRate is the canonical result for undetermined or malformed frame rates.
const zeroRate = "0.00"

// ParseFrameRate normalizes an ffprobe frame-rate representation to a decimal
// string with exactly two places. The input may be a ratio like "30000/1001"
// or a bare decimal like "30". A zero denominator or anything that does not
// parse yields "0.00".
func ParseFrameRate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zeroRate
	}

	if num, den, ok := strings.Cut(raw, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return zeroRate
		}
		return formatRate(n / d)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return zeroRate
	}
	return formatRate(value)
}

func formatRate(value float64) string {
	if value < 0 {
		return zeroRate
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}
