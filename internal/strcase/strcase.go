// Package strcase converts Parsec identifiers between naming styles.
package strcase

import (
	"strings"
	"unicode"
)

// ToSnakeCase turns "ListClients" into "list_clients". Acronym runs stay
// together: "PsaMacCompute" -> "psa_mac_compute", "UserID" -> "user_id".
func ToSnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
