package sqlexec

import (
	"fmt"
	"strings"
)

type (
	// Placeholder renders the bind parameter for the nth (1-based) argument.
	Placeholder func(n int) string

	// Filter accumulates WHERE conditions along with their bind arguments.
	Filter struct {
		placeholder Placeholder
		conds       []string
		args        []any
	}
)

// QuestionPlaceholder renders "?" for every argument.
func QuestionPlaceholder(int) string { return "?" }

// AtPlaceholder renders positional named parameters: @p1, @p2, ...
func AtPlaceholder(n int) string { return fmt.Sprintf("@p%d", n) }

// NewFilter creates an empty filter. A nil placeholder uses QuestionPlaceholder.
func NewFilter(p Placeholder) *Filter {
	if p == nil {
		p = QuestionPlaceholder
	}

	return &Filter{placeholder: p}
}

// Add appends a condition. Each %s in format is replaced by the placeholder of
// the corresponding argument.
func (f *Filter) Add(format string, args ...any) *Filter {
	marks := make([]any, len(args))
	for i, arg := range args {
		f.args = append(f.args, arg)
		marks[i] = f.placeholder(len(f.args))
	}

	f.conds = append(f.conds, fmt.Sprintf(format, marks...))
	return f
}

// Raw appends a condition without arguments.
func (f *Filter) Raw(cond string) *Filter {
	f.conds = append(f.conds, cond)
	return f
}

// In appends "column IN (...)" over values. It does nothing when values is
// empty.
func (f *Filter) In(column string, values []string) *Filter {
	if len(values) == 0 {
		return f
	}

	marks := make([]string, len(values))
	for i := range values {
		marks[i] = "%s"
	}

	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	return f.Add(column+" IN ("+strings.Join(marks, ", ")+")", args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `_`, `\_`, `%`, `\%`)

// EscapeLike escapes the LIKE wildcards in s so the pattern only matches s
// itself. The backslash is the escape character.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Where renders the accumulated conditions joined by AND, including the WHERE
// keyword, or "" when there are none.
func (f *Filter) Where() string {
	if len(f.conds) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(f.conds, " AND ")
}

// Args returns the bind arguments in placeholder order.
func (f *Filter) Args() []any {
	return f.args
}
