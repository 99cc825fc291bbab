package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/pageview/internal/colors"
)

// Validator checks a raw value and returns its normalized form. Invalid
// values are reported and replaced by defaultValue.
type Validator func(key, value, defaultValue string) (normalized string, err error)

var (
	validators   = make(map[string]Validator)
	validatorsMu sync.RWMutex
)

// RegisterValidator attaches a validator to key. Registering a key twice panics.
func RegisterValidator(key string, v Validator) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	if _, dup := validators[key]; dup {
		panic(fmt.Sprintf("config: duplicate validator for %q", key))
	}
	validators[key] = v
}

func validatorFor(key string) Validator {
	validatorsMu.RLock()
	defer validatorsMu.RUnlock()
	return validators[key]
}

// reject warns about value and falls back to the default.
func reject(key, value, want, defaultValue string) (string, error) {
	colors.Warning(fmt.Sprintf("config %s=%q is not %s; using %s", key, value, want, defaultValue))
	return defaultValue, nil
}

// PositiveIntValidator accepts integers of at least 1.
func PositiveIntValidator() Validator {
	return IntRangeValidator(1, 0)
}

// IntRangeValidator accepts integers in [lo, hi]. A hi of 0 means no upper bound.
func IntRangeValidator(lo, hi int) Validator {
	want := fmt.Sprintf("an integer >= %d", lo)
	if hi > 0 {
		want = fmt.Sprintf("an integer in %d..%d", lo, hi)
	}
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < lo || (hi > 0 && n > hi) {
			return reject(key, value, want, defaultValue)
		}
		return strconv.Itoa(n), nil
	}
}

// EnumValidator accepts one of allowed, case-insensitively.
func EnumValidator(allowed ...string) Validator {
	want := "one of " + strings.Join(allowed, ", ")
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		v := strings.ToLower(strings.TrimSpace(value))
		if !slices.Contains(allowed, v) {
			return reject(key, value, want, defaultValue)
		}
		return v, nil
	}
}

// BoolValidator accepts the spellings understood by parseBool.
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		b, ok := parseBool(value)
		if !ok {
			return reject(key, value, "a boolean (true/false, yes/no, on/off, 1/0)", defaultValue)
		}
		return strconv.FormatBool(b), nil
	}
}

var boolWords = map[string]bool{
	"1": true, "true": true, "yes": true, "on": true,
	"0": false, "false": false, "no": false, "off": false,
}

func parseBool(s string) (value, ok bool) {
	value, ok = boolWords[strings.ToLower(strings.TrimSpace(s))]
	return value, ok
}

func initValidators() {
	for key, v := range map[string]Validator{
		"page_width":        IntRangeValidator(10, 1000),
		"page_height":       IntRangeValidator(3, 1000),
		"frame_interval_ms": IntRangeValidator(1, 1000),
		"swipe_threshold":   PositiveIntValidator(),
		"evict_distant":     BoolValidator(),
		"debug":             BoolValidator(),
		"logging_enabled":   BoolValidator(),
		"logging_level":     EnumValidator("debug", "info", "warn", "error"),
		"logging_max_files": PositiveIntValidator(),
	} {
		RegisterValidator(key, v)
	}
}
