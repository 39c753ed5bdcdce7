// Package query translates the generic list request shared by every list
// endpoint into gorm clauses.
package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"portfolio-cms-backend/internal/types"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	// NoLimit disables pagination for a list request.
	NoLimit = -1
)

// Condition is one case-insensitive filter predicate.
type Condition struct {
	Expr string
	Arg  any
}

// Options is the backend-ready form of a ListQuery. It is a pure transform of
// the request: building it performs no I/O.
type Options struct {
	Page  int
	Limit int

	orders []string
	conds  []Condition
}

// Build normalizes a ListQuery against the entity's filterable columns.
// The columns map translates request keys to column names; keys outside the
// map are ignored, which also keeps request-supplied identifiers out of SQL.
func Build(q types.ListQuery, columns map[string]string) Options {
	opts := Options{
		Page:  q.Page,
		Limit: q.Limit,
	}
	if opts.Page < 1 {
		opts.Page = defaultPage
	}
	if opts.Limit == 0 {
		opts.Limit = defaultLimit
	}

	for _, f := range q.Filters {
		col, ok := columns[f.Key]
		if !ok {
			continue
		}
		value := strings.ToLower(fmt.Sprint(f.Value))
		switch f.Operator {
		case "equals":
			opts.conds = append(opts.conds, Condition{
				Expr: "LOWER(" + col + ") = ?",
				Arg:  value,
			})
		case "startsWith":
			opts.conds = append(opts.conds, Condition{
				Expr: "LOWER(" + col + ") LIKE ?",
				Arg:  value + "%",
			})
		case "endsWith":
			opts.conds = append(opts.conds, Condition{
				Expr: "LOWER(" + col + ") LIKE ?",
				Arg:  "%" + value,
			})
		default: // contains
			opts.conds = append(opts.conds, Condition{
				Expr: "LOWER(" + col + ") LIKE ?",
				Arg:  "%" + value + "%",
			})
		}
	}

	for _, s := range q.Sorts {
		col, ok := columns[s.Key]
		if !ok {
			continue
		}
		dir := "ASC"
		if strings.EqualFold(s.Order, "desc") {
			dir = "DESC"
		}
		opts.orders = append(opts.orders, col+" "+dir)
	}

	return opts
}

// Filtered applies only the filter predicates; used for the count query.
func (o Options) Filtered(db *gorm.DB) *gorm.DB {
	for _, c := range o.conds {
		db = db.Where(c.Expr, c.Arg)
	}
	return db
}

// Listed applies filters, ordering and pagination; used for the list query.
func (o Options) Listed(db *gorm.DB) *gorm.DB {
	db = o.Filtered(db)
	for _, order := range o.orders {
		db = db.Order(order)
	}
	if o.Limit != NoLimit {
		db = db.Offset((o.Page - 1) * o.Limit).Limit(o.Limit)
	}
	return db
}
