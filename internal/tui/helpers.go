package tui

import "strings"

// truncate shortens a string to max runes with ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// repeat creates a string by repeating s n times
func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// cycle returns the element after (or before, when step is -1) cur in list
func cycle[T comparable](list []T, cur T, step int) T {
	idx := 0
	for i, v := range list {
		if v == cur {
			idx = i
			break
		}
	}
	idx = (idx + step + len(list)) % len(list)
	return list[idx]
}
