// Code generated by ent, DO NOT EDIT.

package filing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the filing type in the database.
	Label = "filing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldApplicant holds the string denoting the applicant field in the database.
	FieldApplicant = "applicant"
	// FieldFilingType holds the string denoting the filing_type field in the database.
	FieldFilingType = "filing_type"
	// FieldProceedingNumber holds the string denoting the proceeding_number field in the database.
	FieldProceedingNumber = "proceeding_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldStatusScraped holds the string denoting the status_scraped field in the database.
	FieldStatusScraped = "status_scraped"
	// FieldStatusDownloaded holds the string denoting the status_downloaded field in the database.
	FieldStatusDownloaded = "status_downloaded"
	// FieldStatusExtracted holds the string denoting the status_extracted field in the database.
	FieldStatusExtracted = "status_extracted"
	// FieldStatusAnalyzed holds the string denoting the status_analyzed field in the database.
	FieldStatusAnalyzed = "status_analyzed"
	// FieldStatusNotified holds the string denoting the status_notified field in the database.
	FieldStatusNotified = "status_notified"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldAnalysisJSON holds the string denoting the analysis_json field in the database.
	FieldAnalysisJSON = "analysis_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// Table holds the table name of the filing in the database.
	Table = "filings"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "filing_id"
)

// Columns holds all SQL columns for filing fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldDate,
	FieldApplicant,
	FieldFilingType,
	FieldProceedingNumber,
	FieldTitle,
	FieldURL,
	FieldStatusScraped,
	FieldStatusDownloaded,
	FieldStatusExtracted,
	FieldStatusAnalyzed,
	FieldStatusNotified,
	FieldErrorMessage,
	FieldRetryCount,
	FieldAnalysisJSON,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	ExternalIDValidator func(string) error
	// DefaultStatusScraped holds the default value on creation for the "status_scraped" field.
	DefaultStatusScraped string
	// StatusScrapedValidator is a validator for the "status_scraped" field. It is called by the builders before save.
	StatusScrapedValidator func(string) error
	// DefaultStatusDownloaded holds the default value on creation for the "status_downloaded" field.
	DefaultStatusDownloaded string
	// StatusDownloadedValidator is a validator for the "status_downloaded" field. It is called by the builders before save.
	StatusDownloadedValidator func(string) error
	// DefaultStatusExtracted holds the default value on creation for the "status_extracted" field.
	DefaultStatusExtracted string
	// StatusExtractedValidator is a validator for the "status_extracted" field. It is called by the builders before save.
	StatusExtractedValidator func(string) error
	// DefaultStatusAnalyzed holds the default value on creation for the "status_analyzed" field.
	DefaultStatusAnalyzed string
	// StatusAnalyzedValidator is a validator for the "status_analyzed" field. It is called by the builders before save.
	StatusAnalyzedValidator func(string) error
	// DefaultStatusNotified holds the default value on creation for the "status_notified" field.
	DefaultStatusNotified string
	// StatusNotifiedValidator is a validator for the "status_notified" field. It is called by the builders before save.
	StatusNotifiedValidator func(string) error
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Filing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByApplicant orders the results by the applicant field.
func ByApplicant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicant, opts...).ToFunc()
}

// ByFilingType orders the results by the filing_type field.
func ByFilingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingType, opts...).ToFunc()
}

// ByProceedingNumber orders the results by the proceeding_number field.
func ByProceedingNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProceedingNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByStatusScraped orders the results by the status_scraped field.
func ByStatusScraped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusScraped, opts...).ToFunc()
}

// ByStatusDownloaded orders the results by the status_downloaded field.
func ByStatusDownloaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusDownloaded, opts...).ToFunc()
}

// ByStatusExtracted orders the results by the status_extracted field.
func ByStatusExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusExtracted, opts...).ToFunc()
}

// ByStatusAnalyzed orders the results by the status_analyzed field.
func ByStatusAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusAnalyzed, opts...).ToFunc()
}

// ByStatusNotified orders the results by the status_notified field.
func ByStatusNotified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusNotified, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
