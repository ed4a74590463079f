package database

import (
	"strings"

	"gorm.io/gorm"
)

// published restricts a posts or pages query to rows visible to readers
func published(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".is_published = ?", true)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with wildcards in s taken literally
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
