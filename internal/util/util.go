package util

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases s and joins its ASCII letters and digits with single hyphens.
// Accents are stripped first, so "Café Ghor" becomes "cafe-ghor".
func Slugify(s string) string {
	var slug strings.Builder
	slug.Grow(len(s))

	pendingHyphen := false
	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && slug.Len() > 0 {
				slug.WriteByte('-')
			}
			pendingHyphen = false
			slug.WriteRune(unicode.ToLower(r))
		default:
			pendingHyphen = true
		}
	}

	return slug.String()
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// MaskToken keeps the first n characters of a secret for logging.
func MaskToken(token string, n int) string {
	if len(token) <= n {
		return token
	}

	return token[:n] + "..."
}
