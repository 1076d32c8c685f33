package helper

import (
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// EnsureUniqueSlug menambah suffix -2, -3, ... bila slug sudah dipakai di tabel.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	base = GenerateSlug(base)
	if base == "" {
		base = "item"
	}
	if len(base) > DefaultSlugMaxLen {
		base = strings.Trim(base[:DefaultSlugMaxLen], "-")
	}

	slug := base
	for i := 2; ; i++ {
		var exists bool
		err := db.Raw(
			fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)`, table, column),
			slug,
		).Scan(&exists).Error
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
