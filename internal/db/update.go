package db

import (
	"fmt"
	"strings"
)

// Assignments collects "column = $n" pairs for a partial UPDATE.
type Assignments struct {
	cols []string
	args []any
}

func (a *Assignments) Set(column string, value any) {
	a.args = append(a.args, value)
	a.cols = append(a.cols, fmt.Sprintf("%s = $%d", column, len(a.args)))
}

func (a *Assignments) Empty() bool {
	return len(a.cols) == 0
}

// Update renders UPDATE table SET ... WHERE id = $n RETURNING returning.
// updated_at is always bumped.
func (a *Assignments) Update(table, id, returning string) (string, []any) {
	args := append(append([]any{}, a.args...), id)
	set := append(append([]string{}, a.cols...), "updated_at = now()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(set, ", "), len(args), returning)
	return query, args
}
