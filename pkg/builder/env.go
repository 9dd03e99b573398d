package builder

import "github.com/joeydtaylor/acoustofield/pkg/internal/utils"

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	return utils.EnvOr(key, def)
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	return utils.EnvIntOr(key, def)
}

// EnvFloatOr returns the parsed float env value or def on empty/parse failure.
func EnvFloatOr(key string, def float64) float64 {
	return utils.EnvFloatOr(key, def)
}
