package patch

import "strings"

// Coalesce returns *ptr for a field present in a partial update, otherwise current.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// Text is Coalesce for free-text fields. A supplied value is trimmed, an absent one is kept verbatim.
func Text(ptr *string, current string) string {
	if ptr == nil {
		return current
	}
	return strings.TrimSpace(*ptr)
}
