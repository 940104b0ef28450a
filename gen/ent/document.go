// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/google/uuid"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FilingID holds the value of the "filing_id" field.
	FilingID uuid.UUID `json:"filing_id,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// DocumentURL holds the value of the "document_url" field.
	DocumentURL string `json:"document_url,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename *string `json:"filename,omitempty"`
	// LocalPath holds the value of the "local_path" field.
	LocalPath *string `json:"local_path,omitempty"`
	// DownloadStatus holds the value of the "download_status" field.
	DownloadStatus string `json:"download_status,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes int64 `json:"file_size_bytes,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType *string `json:"content_type,omitempty"`
	// ExtractionStatus holds the value of the "extraction_status" field.
	ExtractionStatus string `json:"extraction_status,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod *string `json:"extraction_method,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// CharCount holds the value of the "char_count" field.
	CharCount int `json:"char_count,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// ExtractionError holds the value of the "extraction_error" field.
	ExtractionError *string `json:"extraction_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Filing holds the value of the filing edge.
	Filing *Filing `json:"filing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FilingOrErr returns the Filing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) FilingOrErr() (*Filing, error) {
	if e.Filing != nil {
		return e.Filing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: filing.Label}
	}
	return nil, &NotLoadedError{edge: "filing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldSeq, document.FieldFileSizeBytes, document.FieldCharCount, document.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case document.FieldDocumentURL, document.FieldFilename, document.FieldLocalPath, document.FieldDownloadStatus, document.FieldContentType, document.FieldExtractionStatus, document.FieldExtractionMethod, document.FieldExtractedText, document.FieldExtractionError:
			values[i] = new(sql.NullString)
		case document.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID, document.FieldFilingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldFilingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field filing_id", values[i])
			} else if value != nil {
				_m.FilingID = *value
			}
		case document.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case document.FieldDocumentURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_url", values[i])
			} else if value.Valid {
				_m.DocumentURL = value.String
			}
		case document.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = new(string)
				*_m.Filename = value.String
			}
		case document.FieldLocalPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field local_path", values[i])
			} else if value.Valid {
				_m.LocalPath = new(string)
				*_m.LocalPath = value.String
			}
		case document.FieldDownloadStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field download_status", values[i])
			} else if value.Valid {
				_m.DownloadStatus = value.String
			}
		case document.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				_m.FileSizeBytes = value.Int64
			}
		case document.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = new(string)
				*_m.ContentType = value.String
			}
		case document.FieldExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_status", values[i])
			} else if value.Valid {
				_m.ExtractionStatus = value.String
			}
		case document.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = new(string)
				*_m.ExtractionMethod = value.String
			}
		case document.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case document.FieldCharCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field char_count", values[i])
			} else if value.Valid {
				_m.CharCount = int(value.Int64)
			}
		case document.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case document.FieldExtractionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_error", values[i])
			} else if value.Valid {
				_m.ExtractionError = new(string)
				*_m.ExtractionError = value.String
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFiling queries the "filing" edge of the Document entity.
func (_m *Document) QueryFiling() *FilingQuery {
	return NewDocumentClient(_m.config).QueryFiling(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilingID))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("document_url=")
	builder.WriteString(_m.DocumentURL)
	builder.WriteString(", ")
	if v := _m.Filename; v != nil {
		builder.WriteString("filename=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LocalPath; v != nil {
		builder.WriteString("local_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("download_status=")
	builder.WriteString(_m.DownloadStatus)
	builder.WriteString(", ")
	builder.WriteString("file_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSizeBytes))
	builder.WriteString(", ")
	if v := _m.ContentType; v != nil {
		builder.WriteString("content_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_status=")
	builder.WriteString(_m.ExtractionStatus)
	builder.WriteString(", ")
	if v := _m.ExtractionMethod; v != nil {
		builder.WriteString("extraction_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("char_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CharCount))
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	if v := _m.ExtractionError; v != nil {
		builder.WriteString("extraction_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
