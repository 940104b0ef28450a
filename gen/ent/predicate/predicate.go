// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Filing is the predicate function for filing builders.
type Filing func(*sql.Selector)

// RunHistory is the predicate function for runhistory builders.
type RunHistory func(*sql.Selector)
