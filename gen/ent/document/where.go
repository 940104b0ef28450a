// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// FilingID applies equality check predicate on the "filing_id" field. It's identical to FilingIDEQ.
func FilingID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilingID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSeq, v))
}

// DocumentURL applies equality check predicate on the "document_url" field. It's identical to DocumentURLEQ.
func DocumentURL(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentURL, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// LocalPath applies equality check predicate on the "local_path" field. It's identical to LocalPathEQ.
func LocalPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLocalPath, v))
}

// DownloadStatus applies equality check predicate on the "download_status" field. It's identical to DownloadStatusEQ.
func DownloadStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDownloadStatus, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSizeBytes, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentType, v))
}

// ExtractionStatus applies equality check predicate on the "extraction_status" field. It's identical to ExtractionStatusEQ.
func ExtractionStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedText, v))
}

// CharCount applies equality check predicate on the "char_count" field. It's identical to CharCountEQ.
func CharCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCharCount, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// ExtractionError applies equality check predicate on the "extraction_error" field. It's identical to ExtractionErrorEQ.
func ExtractionError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractionError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// FilingIDEQ applies the EQ predicate on the "filing_id" field.
func FilingIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilingID, v))
}

// FilingIDNEQ applies the NEQ predicate on the "filing_id" field.
func FilingIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilingID, v))
}

// FilingIDIn applies the In predicate on the "filing_id" field.
func FilingIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilingID, vs...))
}

// FilingIDNotIn applies the NotIn predicate on the "filing_id" field.
func FilingIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilingID, vs...))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSeq, v))
}

// DocumentURLEQ applies the EQ predicate on the "document_url" field.
func DocumentURLEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentURL, v))
}

// DocumentURLNEQ applies the NEQ predicate on the "document_url" field.
func DocumentURLNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocumentURL, v))
}

// DocumentURLIn applies the In predicate on the "document_url" field.
func DocumentURLIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocumentURL, vs...))
}

// DocumentURLNotIn applies the NotIn predicate on the "document_url" field.
func DocumentURLNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocumentURL, vs...))
}

// DocumentURLGT applies the GT predicate on the "document_url" field.
func DocumentURLGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocumentURL, v))
}

// DocumentURLGTE applies the GTE predicate on the "document_url" field.
func DocumentURLGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocumentURL, v))
}

// DocumentURLLT applies the LT predicate on the "document_url" field.
func DocumentURLLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocumentURL, v))
}

// DocumentURLLTE applies the LTE predicate on the "document_url" field.
func DocumentURLLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocumentURL, v))
}

// DocumentURLContains applies the Contains predicate on the "document_url" field.
func DocumentURLContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocumentURL, v))
}

// DocumentURLHasPrefix applies the HasPrefix predicate on the "document_url" field.
func DocumentURLHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocumentURL, v))
}

// DocumentURLHasSuffix applies the HasSuffix predicate on the "document_url" field.
func DocumentURLHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocumentURL, v))
}

// DocumentURLEqualFold applies the EqualFold predicate on the "document_url" field.
func DocumentURLEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocumentURL, v))
}

// DocumentURLContainsFold applies the ContainsFold predicate on the "document_url" field.
func DocumentURLContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocumentURL, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameIsNil applies the IsNil predicate on the "filename" field.
func FilenameIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFilename))
}

// FilenameNotNil applies the NotNil predicate on the "filename" field.
func FilenameNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFilename))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// LocalPathEQ applies the EQ predicate on the "local_path" field.
func LocalPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLocalPath, v))
}

// LocalPathNEQ applies the NEQ predicate on the "local_path" field.
func LocalPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLocalPath, v))
}

// LocalPathIn applies the In predicate on the "local_path" field.
func LocalPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLocalPath, vs...))
}

// LocalPathNotIn applies the NotIn predicate on the "local_path" field.
func LocalPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLocalPath, vs...))
}

// LocalPathGT applies the GT predicate on the "local_path" field.
func LocalPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLocalPath, v))
}

// LocalPathGTE applies the GTE predicate on the "local_path" field.
func LocalPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLocalPath, v))
}

// LocalPathLT applies the LT predicate on the "local_path" field.
func LocalPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLocalPath, v))
}

// LocalPathLTE applies the LTE predicate on the "local_path" field.
func LocalPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLocalPath, v))
}

// LocalPathContains applies the Contains predicate on the "local_path" field.
func LocalPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLocalPath, v))
}

// LocalPathHasPrefix applies the HasPrefix predicate on the "local_path" field.
func LocalPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLocalPath, v))
}

// LocalPathHasSuffix applies the HasSuffix predicate on the "local_path" field.
func LocalPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLocalPath, v))
}

// LocalPathIsNil applies the IsNil predicate on the "local_path" field.
func LocalPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLocalPath))
}

// LocalPathNotNil applies the NotNil predicate on the "local_path" field.
func LocalPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLocalPath))
}

// LocalPathEqualFold applies the EqualFold predicate on the "local_path" field.
func LocalPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLocalPath, v))
}

// LocalPathContainsFold applies the ContainsFold predicate on the "local_path" field.
func LocalPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLocalPath, v))
}

// DownloadStatusEQ applies the EQ predicate on the "download_status" field.
func DownloadStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDownloadStatus, v))
}

// DownloadStatusNEQ applies the NEQ predicate on the "download_status" field.
func DownloadStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDownloadStatus, v))
}

// DownloadStatusIn applies the In predicate on the "download_status" field.
func DownloadStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDownloadStatus, vs...))
}

// DownloadStatusNotIn applies the NotIn predicate on the "download_status" field.
func DownloadStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDownloadStatus, vs...))
}

// DownloadStatusGT applies the GT predicate on the "download_status" field.
func DownloadStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDownloadStatus, v))
}

// DownloadStatusGTE applies the GTE predicate on the "download_status" field.
func DownloadStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDownloadStatus, v))
}

// DownloadStatusLT applies the LT predicate on the "download_status" field.
func DownloadStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDownloadStatus, v))
}

// DownloadStatusLTE applies the LTE predicate on the "download_status" field.
func DownloadStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDownloadStatus, v))
}

// DownloadStatusContains applies the Contains predicate on the "download_status" field.
func DownloadStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDownloadStatus, v))
}

// DownloadStatusHasPrefix applies the HasPrefix predicate on the "download_status" field.
func DownloadStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDownloadStatus, v))
}

// DownloadStatusHasSuffix applies the HasSuffix predicate on the "download_status" field.
func DownloadStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDownloadStatus, v))
}

// DownloadStatusEqualFold applies the EqualFold predicate on the "download_status" field.
func DownloadStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDownloadStatus, v))
}

// DownloadStatusContainsFold applies the ContainsFold predicate on the "download_status" field.
func DownloadStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDownloadStatus, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSizeBytes, v))
}

// FileSizeBytesIsNil applies the IsNil predicate on the "file_size_bytes" field.
func FileSizeBytesIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFileSizeBytes))
}

// FileSizeBytesNotNil applies the NotNil predicate on the "file_size_bytes" field.
func FileSizeBytesNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFileSizeBytes))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeIsNil applies the IsNil predicate on the "content_type" field.
func ContentTypeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldContentType))
}

// ContentTypeNotNil applies the NotNil predicate on the "content_type" field.
func ContentTypeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldContentType))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentType, v))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusGT applies the GT predicate on the "extraction_status" field.
func ExtractionStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractionStatus, v))
}

// ExtractionStatusGTE applies the GTE predicate on the "extraction_status" field.
func ExtractionStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractionStatus, v))
}

// ExtractionStatusLT applies the LT predicate on the "extraction_status" field.
func ExtractionStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractionStatus, v))
}

// ExtractionStatusLTE applies the LTE predicate on the "extraction_status" field.
func ExtractionStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractionStatus, v))
}

// ExtractionStatusContains applies the Contains predicate on the "extraction_status" field.
func ExtractionStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractionStatus, v))
}

// ExtractionStatusHasPrefix applies the HasPrefix predicate on the "extraction_status" field.
func ExtractionStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractionStatus, v))
}

// ExtractionStatusHasSuffix applies the HasSuffix predicate on the "extraction_status" field.
func ExtractionStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractionStatus, v))
}

// ExtractionStatusEqualFold applies the EqualFold predicate on the "extraction_status" field.
func ExtractionStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractionStatus, v))
}

// ExtractionStatusContainsFold applies the ContainsFold predicate on the "extraction_status" field.
func ExtractionStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractionStatus, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodIsNil applies the IsNil predicate on the "extraction_method" field.
func ExtractionMethodIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractionMethod))
}

// ExtractionMethodNotNil applies the NotNil predicate on the "extraction_method" field.
func ExtractionMethodNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractionMethod))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextIsNil applies the IsNil predicate on the "extracted_text" field.
func ExtractedTextIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedText))
}

// ExtractedTextNotNil applies the NotNil predicate on the "extracted_text" field.
func ExtractedTextNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedText))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedText, v))
}

// CharCountEQ applies the EQ predicate on the "char_count" field.
func CharCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCharCount, v))
}

// CharCountNEQ applies the NEQ predicate on the "char_count" field.
func CharCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCharCount, v))
}

// CharCountIn applies the In predicate on the "char_count" field.
func CharCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCharCount, vs...))
}

// CharCountNotIn applies the NotIn predicate on the "char_count" field.
func CharCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCharCount, vs...))
}

// CharCountGT applies the GT predicate on the "char_count" field.
func CharCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCharCount, v))
}

// CharCountGTE applies the GTE predicate on the "char_count" field.
func CharCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCharCount, v))
}

// CharCountLT applies the LT predicate on the "char_count" field.
func CharCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCharCount, v))
}

// CharCountLTE applies the LTE predicate on the "char_count" field.
func CharCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCharCount, v))
}

// CharCountIsNil applies the IsNil predicate on the "char_count" field.
func CharCountIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCharCount))
}

// CharCountNotNil applies the NotNil predicate on the "char_count" field.
func CharCountNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCharCount))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPageCount, v))
}

// PageCountIsNil applies the IsNil predicate on the "page_count" field.
func PageCountIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPageCount))
}

// PageCountNotNil applies the NotNil predicate on the "page_count" field.
func PageCountNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPageCount))
}

// ExtractionErrorEQ applies the EQ predicate on the "extraction_error" field.
func ExtractionErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionErrorNEQ applies the NEQ predicate on the "extraction_error" field.
func ExtractionErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractionError, v))
}

// ExtractionErrorIn applies the In predicate on the "extraction_error" field.
func ExtractionErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractionError, vs...))
}

// ExtractionErrorNotIn applies the NotIn predicate on the "extraction_error" field.
func ExtractionErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractionError, vs...))
}

// ExtractionErrorGT applies the GT predicate on the "extraction_error" field.
func ExtractionErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractionError, v))
}

// ExtractionErrorGTE applies the GTE predicate on the "extraction_error" field.
func ExtractionErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractionError, v))
}

// ExtractionErrorLT applies the LT predicate on the "extraction_error" field.
func ExtractionErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractionError, v))
}

// ExtractionErrorLTE applies the LTE predicate on the "extraction_error" field.
func ExtractionErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractionError, v))
}

// ExtractionErrorContains applies the Contains predicate on the "extraction_error" field.
func ExtractionErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractionError, v))
}

// ExtractionErrorHasPrefix applies the HasPrefix predicate on the "extraction_error" field.
func ExtractionErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractionError, v))
}

// ExtractionErrorHasSuffix applies the HasSuffix predicate on the "extraction_error" field.
func ExtractionErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractionError, v))
}

// ExtractionErrorIsNil applies the IsNil predicate on the "extraction_error" field.
func ExtractionErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractionError))
}

// ExtractionErrorNotNil applies the NotNil predicate on the "extraction_error" field.
func ExtractionErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractionError))
}

// ExtractionErrorEqualFold applies the EqualFold predicate on the "extraction_error" field.
func ExtractionErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractionError, v))
}

// ExtractionErrorContainsFold applies the ContainsFold predicate on the "extraction_error" field.
func ExtractionErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractionError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFiling applies the HasEdge predicate on the "filing" edge.
func HasFiling() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FilingTable, FilingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilingWith applies the HasEdge predicate on the "filing" edge with a given conditions (other predicates).
func HasFilingWith(preds ...predicate.Filing) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newFilingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
