package persistence

import (
	"fmt"
	"strings"

	"github.com/delivery/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyFilter adds one WHERE clause per condition. Column names come from the
// domain filter specs, never from the request, so they are safe to inline.
func applyFilter(query *gorm.DB, table string, filter shared.Filter) *gorm.DB {
	for _, c := range filter.Conditions {
		column := table + "." + c.Column
		switch c.Mode {
		case shared.MatchContains:
			pattern := "%" + likeEscaper.Replace(fmt.Sprint(c.Value)) + "%"
			query = query.Where(fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, column), pattern)
		case shared.MatchAtLeast:
			query = query.Where(column+" >= ?", c.Value)
		case shared.MatchAtMost:
			query = query.Where(column+" <= ?", c.Value)
		default:
			query = query.Where(column+" = ?", c.Value)
		}
	}
	return query.Order(table + ".id ASC")
}
