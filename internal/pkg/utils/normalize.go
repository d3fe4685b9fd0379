package utils

import (
	"strconv"
	"strings"
)

// NormalizeNumber converts a loosely-typed feed value (string, number or null)
// into a float64. Strings are trimmed, trailing commas are stripped (a known
// feed artifact, e.g. "13.5,,") and parsed by their leading numeric prefix,
// so "12.3abc" yields 12.3. Returns nil when no usable number is present.
func NormalizeNumber(v interface{}) *float64 {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		f := val
		return &f
	case float32:
		f := float64(val)
		return &f
	case int:
		f := float64(val)
		return &f
	case int64:
		f := float64(val)
		return &f
	case string:
		s := strings.TrimSpace(val)
		s = strings.TrimRight(s, ",")
		prefix := numericPrefix(s)
		if prefix == "" {
			return nil
		}
		f, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// NormalizeString converts a loosely-typed feed value into a string. The feed
// mixes numbers and strings for category fields like class.
func NormalizeString(v interface{}) *string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		s := val
		return &s
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

// numericPrefix returns the longest leading substring of s that forms a valid
// floating-point literal, or "" if s does not start with one.
func numericPrefix(s string) string {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := false
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < n && s[i] == '.' {
		j := i + 1
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			digits = true
		}
		if j > i+1 || digits {
			i = j
		}
	}
	if !digits {
		return ""
	}

	// Optional exponent, consumed only when complete.
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := false
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits = true
		}
		if expDigits {
			i = j
		}
	}

	return s[:i]
}
