package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// apiLevelCodenames maps Android release codenames to their API levels.
var apiLevelCodenames = map[string]int{
	"G":               9,
	"I":               14,
	"J":               16,
	"J-MR1":           17,
	"J-MR2":           18,
	"K":               19,
	"L":               21,
	"L-MR1":           22,
	"M":               23,
	"N":               24,
	"N-MR1":           25,
	"O":               26,
	"O-MR1":           27,
	"P":               28,
	"Q":               29,
	"R":               30,
	"S":               31,
	"S-V2":            32,
	"TIRAMISU":        33,
	"UPSIDEDOWNCAKE":  34,
	"VANILLAICECREAM": 35,
	"BAKLAVA":         36,
}

// ParseAPILevel converts an SDK version value into an API level.
// It accepts decimal numbers ("34") and release codenames ("O", "Tiramisu").
func ParseAPILevel(value string) (int, error) {
	v := strings.TrimSpace(value)
	if n, err := strconv.Atoi(v); err == nil {
		if n < 1 {
			return 0, zerr.With(zerr.Wrap(ErrInvalidAPILevel, "api level must be positive"), "value", value)
		}
		return n, nil
	}

	if n, ok := apiLevelCodenames[strings.ToUpper(v)]; ok {
		return n, nil
	}

	return 0, zerr.With(zerr.Wrap(ErrInvalidAPILevel, "expected a number or release codename"), "value", value)
}
