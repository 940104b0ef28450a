// Code generated by ent, DO NOT EDIT.

package runhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the runhistory type in the database.
	Label = "run_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTotalFilingsFound holds the string denoting the total_filings_found field in the database.
	FieldTotalFilingsFound = "total_filings_found"
	// FieldNewFilings holds the string denoting the new_filings field in the database.
	FieldNewFilings = "new_filings"
	// FieldProcessedOk holds the string denoting the processed_ok field in the database.
	FieldProcessedOk = "processed_ok"
	// FieldProcessedFailed holds the string denoting the processed_failed field in the database.
	FieldProcessedFailed = "processed_failed"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// Table holds the table name of the runhistory in the database.
	Table = "run_history"
)

// Columns holds all SQL columns for runhistory fields.
var Columns = []string{
	FieldID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldTotalFilingsFound,
	FieldNewFilings,
	FieldProcessedOk,
	FieldProcessedFailed,
	FieldDurationSeconds,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultTotalFilingsFound holds the default value on creation for the "total_filings_found" field.
	DefaultTotalFilingsFound int
	// DefaultNewFilings holds the default value on creation for the "new_filings" field.
	DefaultNewFilings int
	// DefaultProcessedOk holds the default value on creation for the "processed_ok" field.
	DefaultProcessedOk int
	// DefaultProcessedFailed holds the default value on creation for the "processed_failed" field.
	DefaultProcessedFailed int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RunHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTotalFilingsFound orders the results by the total_filings_found field.
func ByTotalFilingsFound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFilingsFound, opts...).ToFunc()
}

// ByNewFilings orders the results by the new_filings field.
func ByNewFilings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewFilings, opts...).ToFunc()
}

// ByProcessedOk orders the results by the processed_ok field.
func ByProcessedOk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedOk, opts...).ToFunc()
}

// ByProcessedFailed orders the results by the processed_failed field.
func ByProcessedFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedFailed, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}
