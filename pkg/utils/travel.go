package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeAirportCode trims and uppercases a user-supplied IATA code.
// The empty string stays empty (the code is optional at this layer).
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidAirportCode reports whether code is exactly three uppercase letters.
func ValidAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

const dateLayout = "2006-01-02"

// Nights returns the stay length in nights for a checkin/checkout pair,
// rounding partial days up the way the rates provider does.
func Nights(checkin, checkout string) (int, error) {
	in, err := time.Parse(dateLayout, checkin)
	if err != nil {
		return 0, fmt.Errorf("invalid checkin date %q: %w", checkin, err)
	}
	out, err := time.Parse(dateLayout, checkout)
	if err != nil {
		return 0, fmt.Errorf("invalid checkout date %q: %w", checkout, err)
	}
	return int(math.Ceil(out.Sub(in).Hours() / 24)), nil
}
