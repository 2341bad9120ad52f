package heuristics

import "strings"

func normalizeHint(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
