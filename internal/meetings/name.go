package meetings

import "strings"

// defaultFirstName is used when a display name is empty or whitespace-only.
const defaultFirstName = "User"

// SplitName splits a display name into first and last parts.
// The first whitespace-run token is the first name; the remaining tokens,
// joined by single spaces, form the last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return defaultFirstName, ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
