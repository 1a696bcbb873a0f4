package match

import "strings"

// nearMint lists the condition labels treated as Near Mint.
var nearMint = map[string]struct{}{
	"near mint": {},
	"nm":        {},
}

// IsNearMint reports whether a raw upstream condition label denotes
// Near Mint. The comparison ignores case and surrounding whitespace.
func IsNearMint(condition string) bool {
	_, ok := nearMint[strings.ToLower(strings.TrimSpace(condition))]
	return ok
}
