// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/google/uuid"
)

// Filing is the model entity for the Filing schema.
type Filing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// Date holds the value of the "date" field.
	Date *time.Time `json:"date,omitempty"`
	// Applicant holds the value of the "applicant" field.
	Applicant *string `json:"applicant,omitempty"`
	// FilingType holds the value of the "filing_type" field.
	FilingType *string `json:"filing_type,omitempty"`
	// ProceedingNumber holds the value of the "proceeding_number" field.
	ProceedingNumber *string `json:"proceeding_number,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// URL holds the value of the "url" field.
	URL *string `json:"url,omitempty"`
	// StatusScraped holds the value of the "status_scraped" field.
	StatusScraped string `json:"status_scraped,omitempty"`
	// StatusDownloaded holds the value of the "status_downloaded" field.
	StatusDownloaded string `json:"status_downloaded,omitempty"`
	// StatusExtracted holds the value of the "status_extracted" field.
	StatusExtracted string `json:"status_extracted,omitempty"`
	// StatusAnalyzed holds the value of the "status_analyzed" field.
	StatusAnalyzed string `json:"status_analyzed,omitempty"`
	// StatusNotified holds the value of the "status_notified" field.
	StatusNotified string `json:"status_notified,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// AnalysisJSON holds the value of the "analysis_json" field.
	AnalysisJSON json.RawMessage `json:"analysis_json,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FilingQuery when eager-loading is set.
	Edges        FilingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FilingEdges holds the relations/edges for other nodes in the graph.
type FilingEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e FilingEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Filing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filing.FieldAnalysisJSON:
			values[i] = new([]byte)
		case filing.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case filing.FieldExternalID, filing.FieldApplicant, filing.FieldFilingType, filing.FieldProceedingNumber, filing.FieldTitle, filing.FieldURL, filing.FieldStatusScraped, filing.FieldStatusDownloaded, filing.FieldStatusExtracted, filing.FieldStatusAnalyzed, filing.FieldStatusNotified, filing.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case filing.FieldDate, filing.FieldCreatedAt, filing.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case filing.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Filing fields.
func (_m *Filing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filing.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case filing.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case filing.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = new(time.Time)
				*_m.Date = value.Time
			}
		case filing.FieldApplicant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field applicant", values[i])
			} else if value.Valid {
				_m.Applicant = new(string)
				*_m.Applicant = value.String
			}
		case filing.FieldFilingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filing_type", values[i])
			} else if value.Valid {
				_m.FilingType = new(string)
				*_m.FilingType = value.String
			}
		case filing.FieldProceedingNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proceeding_number", values[i])
			} else if value.Valid {
				_m.ProceedingNumber = new(string)
				*_m.ProceedingNumber = value.String
			}
		case filing.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case filing.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case filing.FieldStatusScraped:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_scraped", values[i])
			} else if value.Valid {
				_m.StatusScraped = value.String
			}
		case filing.FieldStatusDownloaded:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_downloaded", values[i])
			} else if value.Valid {
				_m.StatusDownloaded = value.String
			}
		case filing.FieldStatusExtracted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_extracted", values[i])
			} else if value.Valid {
				_m.StatusExtracted = value.String
			}
		case filing.FieldStatusAnalyzed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_analyzed", values[i])
			} else if value.Valid {
				_m.StatusAnalyzed = value.String
			}
		case filing.FieldStatusNotified:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_notified", values[i])
			} else if value.Valid {
				_m.StatusNotified = value.String
			}
		case filing.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case filing.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case filing.FieldAnalysisJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnalysisJSON); err != nil {
					return fmt.Errorf("unmarshal field analysis_json: %w", err)
				}
			}
		case filing.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case filing.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Filing.
// This includes values selected through modifiers, order, etc.
func (_m *Filing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Filing entity.
func (_m *Filing) QueryDocuments() *DocumentQuery {
	return NewFilingClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this Filing.
// Note that you need to call Filing.Unwrap() before calling this method if this Filing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Filing) Update() *FilingUpdateOne {
	return NewFilingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Filing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Filing) Unwrap() *Filing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Filing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Filing) String() string {
	var builder strings.Builder
	builder.WriteString("Filing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	if v := _m.Date; v != nil {
		builder.WriteString("date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Applicant; v != nil {
		builder.WriteString("applicant=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilingType; v != nil {
		builder.WriteString("filing_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProceedingNumber; v != nil {
		builder.WriteString("proceeding_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status_scraped=")
	builder.WriteString(_m.StatusScraped)
	builder.WriteString(", ")
	builder.WriteString("status_downloaded=")
	builder.WriteString(_m.StatusDownloaded)
	builder.WriteString(", ")
	builder.WriteString("status_extracted=")
	builder.WriteString(_m.StatusExtracted)
	builder.WriteString(", ")
	builder.WriteString("status_analyzed=")
	builder.WriteString(_m.StatusAnalyzed)
	builder.WriteString(", ")
	builder.WriteString("status_notified=")
	builder.WriteString(_m.StatusNotified)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("analysis_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisJSON))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Filings is a parsable slice of Filing.
type Filings []*Filing
