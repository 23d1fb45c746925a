package links

import (
	"strings"
)

var (
	blockedSchemes  = []string{"javascript:", "data:"}
	allowedSchemes  = []string{"http://", "https://", "mailto:"}
	allowedRelative = []string{"/", "./", "../", "#"}
)

// IsSafeURL allow list check for link targets. Unknown schemes are rejected,
// anything without a colon is treated as a relative reference.
func IsSafeURL(url string) bool {
	if url == "" {
		return false
	}

	lower := strings.ToLower(url)
	if hasAnyPrefix(lower, blockedSchemes) {
		return false
	}
	if hasAnyPrefix(lower, allowedSchemes) || hasAnyPrefix(url, allowedRelative) {
		return true
	}

	return !strings.Contains(url, ":")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
