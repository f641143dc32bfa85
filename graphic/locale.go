package graphic

import (
	"os"
	"strings"
)

// UnicodeSupported reports whether the locale asks for UTF-8 output. The
// first non-empty of LC_ALL, LC_CTYPE and LANG wins, as in setlocale(3).
func UnicodeSupported() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			v = strings.ToLower(v)
			return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
		}
	}

	return false
}
