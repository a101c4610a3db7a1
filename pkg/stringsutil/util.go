package stringsutil

import "strings"

// Reserved syntax characters of the search query grammar. The backslash must
// stay first so already-inserted escapes are not escaped again.
var reservedQueryChars = []string{
	`\`, "+", "-", "&", "|", "!", "(", ")", "{", "}",
	"[", "]", "^", `"`, "~", "*", "?", ":", "/",
}

// EscapeQuery prefixes every reserved search-syntax character in a free-text
// query with a backslash, making it safe to embed in a structured query.
func EscapeQuery(query string) string {
	for _, c := range reservedQueryChars {
		query = strings.ReplaceAll(query, c, `\`+c)
	}
	return query
}

// Chunk splits items into groups of n, padding the final incomplete group
// with fill. Callers that need exact-length groups must truncate the padding
// themselves. Returns nil when n is not positive.
func Chunk[T any](items []T, n int, fill T) [][]T {
	if n <= 0 {
		return nil
	}

	var groups [][]T
	for start := 0; start < len(items); start += n {
		group := make([]T, n)
		copied := copy(group, items[start:min(start+n, len(items))])
		for i := copied; i < n; i++ {
			group[i] = fill
		}
		groups = append(groups, group)
	}
	return groups
}

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}
