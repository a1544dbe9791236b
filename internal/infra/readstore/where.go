package readstore

import (
	"fmt"
	"strings"

	"phantom-mask/internal/usecase/queries"
)

// whereBuilder numbers placeholders as conditions are added.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition whose format contains one %d for the placeholder index.
func (w *whereBuilder) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(format, len(w.args)))
}

// arg registers a value and returns its placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) addPrice(column string, f queries.PriceFilter) {
	if f.Exact != nil {
		w.add(column+" = $%d", *f.Exact)
	}
	if f.Gt != nil {
		w.add(column+" > $%d", *f.Gt)
	}
	if f.Gte != nil {
		w.add(column+" >= $%d", *f.Gte)
	}
	if f.Lt != nil {
		w.add(column+" < $%d", *f.Lt)
	}
	if f.Lte != nil {
		w.add(column+" <= $%d", *f.Lte)
	}
}

func (w *whereBuilder) clause(keyword string) string {
	if len(w.conds) == 0 {
		return ""
	}
	return " " + keyword + " " + strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) where() string {
	return w.clause("WHERE")
}
