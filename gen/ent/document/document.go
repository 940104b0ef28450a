// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilingID holds the string denoting the filing_id field in the database.
	FieldFilingID = "filing_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldDocumentURL holds the string denoting the document_url field in the database.
	FieldDocumentURL = "document_url"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldLocalPath holds the string denoting the local_path field in the database.
	FieldLocalPath = "local_path"
	// FieldDownloadStatus holds the string denoting the download_status field in the database.
	FieldDownloadStatus = "download_status"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldCharCount holds the string denoting the char_count field in the database.
	FieldCharCount = "char_count"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldExtractionError holds the string denoting the extraction_error field in the database.
	FieldExtractionError = "extraction_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFiling holds the string denoting the filing edge name in mutations.
	EdgeFiling = "filing"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// FilingTable is the table that holds the filing relation/edge.
	FilingTable = "documents"
	// FilingInverseTable is the table name for the Filing entity.
	// It exists in this package in order to avoid circular dependency with the "filing" package.
	FilingInverseTable = "filings"
	// FilingColumn is the table column denoting the filing relation/edge.
	FilingColumn = "filing_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldFilingID,
	FieldSeq,
	FieldDocumentURL,
	FieldFilename,
	FieldLocalPath,
	FieldDownloadStatus,
	FieldFileSizeBytes,
	FieldContentType,
	FieldExtractionStatus,
	FieldExtractionMethod,
	FieldExtractedText,
	FieldCharCount,
	FieldPageCount,
	FieldExtractionError,
	FieldCreatedAt,
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
	// SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	SeqValidator func(int) error
	// DocumentURLValidator is a validator for the "document_url" field. It is called by the builders before save.
	DocumentURLValidator func(string) error
	// DefaultDownloadStatus holds the default value on creation for the "download_status" field.
	DefaultDownloadStatus string
	// DownloadStatusValidator is a validator for the "download_status" field. It is called by the builders before save.
	DownloadStatusValidator func(string) error
	// DefaultExtractionStatus holds the default value on creation for the "extraction_status" field.
	DefaultExtractionStatus string
	// ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	ExtractionStatusValidator func(string) error
	// ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	ExtractionMethodValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilingID orders the results by the filing_id field.
func ByFilingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByDocumentURL orders the results by the document_url field.
func ByDocumentURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentURL, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByLocalPath orders the results by the local_path field.
func ByLocalPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalPath, opts...).ToFunc()
}

// ByDownloadStatus orders the results by the download_status field.
func ByDownloadStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloadStatus, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByCharCount orders the results by the char_count field.
func ByCharCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharCount, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByExtractionError orders the results by the extraction_error field.
func ByExtractionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFilingField orders the results by filing field.
func ByFilingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilingStep(), sql.OrderByField(field, opts...))
	}
}
func newFilingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FilingTable, FilingColumn),
	)
}
