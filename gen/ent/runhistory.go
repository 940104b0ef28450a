// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filingwatch/regdocs-monitor/gen/ent/runhistory"
	"github.com/google/uuid"
)

// RunHistory is the model entity for the RunHistory schema.
type RunHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// TotalFilingsFound holds the value of the "total_filings_found" field.
	TotalFilingsFound int `json:"total_filings_found,omitempty"`
	// NewFilings holds the value of the "new_filings" field.
	NewFilings int `json:"new_filings,omitempty"`
	// ProcessedOk holds the value of the "processed_ok" field.
	ProcessedOk int `json:"processed_ok,omitempty"`
	// ProcessedFailed holds the value of the "processed_failed" field.
	ProcessedFailed int `json:"processed_failed,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runhistory.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case runhistory.FieldTotalFilingsFound, runhistory.FieldNewFilings, runhistory.FieldProcessedOk, runhistory.FieldProcessedFailed:
			values[i] = new(sql.NullInt64)
		case runhistory.FieldStartedAt, runhistory.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case runhistory.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunHistory fields.
func (_m *RunHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case runhistory.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case runhistory.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case runhistory.FieldTotalFilingsFound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_filings_found", values[i])
			} else if value.Valid {
				_m.TotalFilingsFound = int(value.Int64)
			}
		case runhistory.FieldNewFilings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_filings", values[i])
			} else if value.Valid {
				_m.NewFilings = int(value.Int64)
			}
		case runhistory.FieldProcessedOk:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_ok", values[i])
			} else if value.Valid {
				_m.ProcessedOk = int(value.Int64)
			}
		case runhistory.FieldProcessedFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_failed", values[i])
			} else if value.Valid {
				_m.ProcessedFailed = int(value.Int64)
			}
		case runhistory.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunHistory.
// This includes values selected through modifiers, order, etc.
func (_m *RunHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RunHistory.
// Note that you need to call RunHistory.Unwrap() before calling this method if this RunHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunHistory) Update() *RunHistoryUpdateOne {
	return NewRunHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunHistory) Unwrap() *RunHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunHistory) String() string {
	var builder strings.Builder
	builder.WriteString("RunHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_filings_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFilingsFound))
	builder.WriteString(", ")
	builder.WriteString("new_filings=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewFilings))
	builder.WriteString(", ")
	builder.WriteString("processed_ok=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedOk))
	builder.WriteString(", ")
	builder.WriteString("processed_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedFailed))
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteByte(')')
	return builder.String()
}

// RunHistories is a parsable slice of RunHistory.
type RunHistories []*RunHistory
