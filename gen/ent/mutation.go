// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/filingwatch/regdocs-monitor/gen/ent/runhistory"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument   = "Document"
	TypeFiling     = "Filing"
	TypeRunHistory = "RunHistory"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	seq                *int
	addseq             *int
	document_url       *string
	filename           *string
	local_path         *string
	download_status    *string
	file_size_bytes    *int64
	addfile_size_bytes *int64
	content_type       *string
	extraction_status  *string
	extraction_method  *string
	extracted_text     *string
	char_count         *int
	addchar_count      *int
	page_count         *int
	addpage_count      *int
	extraction_error   *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	filing             *uuid.UUID
	clearedfiling      bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilingID sets the "filing_id" field.
func (m *DocumentMutation) SetFilingID(u uuid.UUID) {
	m.filing = &u
}

// FilingID returns the value of the "filing_id" field in the mutation.
func (m *DocumentMutation) FilingID() (r uuid.UUID, exists bool) {
	v := m.filing
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingID returns the old "filing_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingID: %w", err)
	}
	return oldValue.FilingID, nil
}

// ResetFilingID resets all changes to the "filing_id" field.
func (m *DocumentMutation) ResetFilingID() {
	m.filing = nil
}

// SetSeq sets the "seq" field.
func (m *DocumentMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *DocumentMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *DocumentMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *DocumentMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *DocumentMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetDocumentURL sets the "document_url" field.
func (m *DocumentMutation) SetDocumentURL(s string) {
	m.document_url = &s
}

// DocumentURL returns the value of the "document_url" field in the mutation.
func (m *DocumentMutation) DocumentURL() (r string, exists bool) {
	v := m.document_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentURL returns the old "document_url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentURL: %w", err)
	}
	return oldValue.DocumentURL, nil
}

// ResetDocumentURL resets all changes to the "document_url" field.
func (m *DocumentMutation) ResetDocumentURL() {
	m.document_url = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ClearFilename clears the value of the "filename" field.
func (m *DocumentMutation) ClearFilename() {
	m.filename = nil
	m.clearedFields[document.FieldFilename] = struct{}{}
}

// FilenameCleared returns if the "filename" field was cleared in this mutation.
func (m *DocumentMutation) FilenameCleared() bool {
	_, ok := m.clearedFields[document.FieldFilename]
	return ok
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
	delete(m.clearedFields, document.FieldFilename)
}

// SetLocalPath sets the "local_path" field.
func (m *DocumentMutation) SetLocalPath(s string) {
	m.local_path = &s
}

// LocalPath returns the value of the "local_path" field in the mutation.
func (m *DocumentMutation) LocalPath() (r string, exists bool) {
	v := m.local_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPath returns the old "local_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLocalPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPath: %w", err)
	}
	return oldValue.LocalPath, nil
}

// ClearLocalPath clears the value of the "local_path" field.
func (m *DocumentMutation) ClearLocalPath() {
	m.local_path = nil
	m.clearedFields[document.FieldLocalPath] = struct{}{}
}

// LocalPathCleared returns if the "local_path" field was cleared in this mutation.
func (m *DocumentMutation) LocalPathCleared() bool {
	_, ok := m.clearedFields[document.FieldLocalPath]
	return ok
}

// ResetLocalPath resets all changes to the "local_path" field.
func (m *DocumentMutation) ResetLocalPath() {
	m.local_path = nil
	delete(m.clearedFields, document.FieldLocalPath)
}

// SetDownloadStatus sets the "download_status" field.
func (m *DocumentMutation) SetDownloadStatus(s string) {
	m.download_status = &s
}

// DownloadStatus returns the value of the "download_status" field in the mutation.
func (m *DocumentMutation) DownloadStatus() (r string, exists bool) {
	v := m.download_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloadStatus returns the old "download_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDownloadStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloadStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloadStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloadStatus: %w", err)
	}
	return oldValue.DownloadStatus, nil
}

// ResetDownloadStatus resets all changes to the "download_status" field.
func (m *DocumentMutation) ResetDownloadStatus() {
	m.download_status = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *DocumentMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *DocumentMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *DocumentMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *DocumentMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (m *DocumentMutation) ClearFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	m.clearedFields[document.FieldFileSizeBytes] = struct{}{}
}

// FileSizeBytesCleared returns if the "file_size_bytes" field was cleared in this mutation.
func (m *DocumentMutation) FileSizeBytesCleared() bool {
	_, ok := m.clearedFields[document.FieldFileSizeBytes]
	return ok
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *DocumentMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	delete(m.clearedFields, document.FieldFileSizeBytes)
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *DocumentMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[document.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *DocumentMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, document.FieldContentType)
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *DocumentMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *DocumentMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *DocumentMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *DocumentMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *DocumentMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (m *DocumentMutation) ClearExtractionMethod() {
	m.extraction_method = nil
	m.clearedFields[document.FieldExtractionMethod] = struct{}{}
}

// ExtractionMethodCleared returns if the "extraction_method" field was cleared in this mutation.
func (m *DocumentMutation) ExtractionMethodCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractionMethod]
	return ok
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *DocumentMutation) ResetExtractionMethod() {
	m.extraction_method = nil
	delete(m.clearedFields, document.FieldExtractionMethod)
}

// SetExtractedText sets the "extracted_text" field.
func (m *DocumentMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *DocumentMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *DocumentMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[document.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *DocumentMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, document.FieldExtractedText)
}

// SetCharCount sets the "char_count" field.
func (m *DocumentMutation) SetCharCount(i int) {
	m.char_count = &i
	m.addchar_count = nil
}

// CharCount returns the value of the "char_count" field in the mutation.
func (m *DocumentMutation) CharCount() (r int, exists bool) {
	v := m.char_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCharCount returns the old "char_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCharCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharCount: %w", err)
	}
	return oldValue.CharCount, nil
}

// AddCharCount adds i to the "char_count" field.
func (m *DocumentMutation) AddCharCount(i int) {
	if m.addchar_count != nil {
		*m.addchar_count += i
	} else {
		m.addchar_count = &i
	}
}

// AddedCharCount returns the value that was added to the "char_count" field in this mutation.
func (m *DocumentMutation) AddedCharCount() (r int, exists bool) {
	v := m.addchar_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearCharCount clears the value of the "char_count" field.
func (m *DocumentMutation) ClearCharCount() {
	m.char_count = nil
	m.addchar_count = nil
	m.clearedFields[document.FieldCharCount] = struct{}{}
}

// CharCountCleared returns if the "char_count" field was cleared in this mutation.
func (m *DocumentMutation) CharCountCleared() bool {
	_, ok := m.clearedFields[document.FieldCharCount]
	return ok
}

// ResetCharCount resets all changes to the "char_count" field.
func (m *DocumentMutation) ResetCharCount() {
	m.char_count = nil
	m.addchar_count = nil
	delete(m.clearedFields, document.FieldCharCount)
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageCount clears the value of the "page_count" field.
func (m *DocumentMutation) ClearPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	m.clearedFields[document.FieldPageCount] = struct{}{}
}

// PageCountCleared returns if the "page_count" field was cleared in this mutation.
func (m *DocumentMutation) PageCountCleared() bool {
	_, ok := m.clearedFields[document.FieldPageCount]
	return ok
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	delete(m.clearedFields, document.FieldPageCount)
}

// SetExtractionError sets the "extraction_error" field.
func (m *DocumentMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *DocumentMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionError: %w", err)
	}
	return oldValue.ExtractionError, nil
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (m *DocumentMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[document.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *DocumentMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *DocumentMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, document.FieldExtractionError)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFiling clears the "filing" edge to the Filing entity.
func (m *DocumentMutation) ClearFiling() {
	m.clearedfiling = true
	m.clearedFields[document.FieldFilingID] = struct{}{}
}

// FilingCleared reports if the "filing" edge to the Filing entity was cleared.
func (m *DocumentMutation) FilingCleared() bool {
	return m.clearedfiling
}

// FilingIDs returns the "filing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FilingID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) FilingIDs() (ids []uuid.UUID) {
	if id := m.filing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFiling resets all changes to the "filing" edge.
func (m *DocumentMutation) ResetFiling() {
	m.filing = nil
	m.clearedfiling = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.filing != nil {
		fields = append(fields, document.FieldFilingID)
	}
	if m.seq != nil {
		fields = append(fields, document.FieldSeq)
	}
	if m.document_url != nil {
		fields = append(fields, document.FieldDocumentURL)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.local_path != nil {
		fields = append(fields, document.FieldLocalPath)
	}
	if m.download_status != nil {
		fields = append(fields, document.FieldDownloadStatus)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, document.FieldFileSizeBytes)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	if m.extraction_status != nil {
		fields = append(fields, document.FieldExtractionStatus)
	}
	if m.extraction_method != nil {
		fields = append(fields, document.FieldExtractionMethod)
	}
	if m.extracted_text != nil {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.char_count != nil {
		fields = append(fields, document.FieldCharCount)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.extraction_error != nil {
		fields = append(fields, document.FieldExtractionError)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilingID:
		return m.FilingID()
	case document.FieldSeq:
		return m.Seq()
	case document.FieldDocumentURL:
		return m.DocumentURL()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldLocalPath:
		return m.LocalPath()
	case document.FieldDownloadStatus:
		return m.DownloadStatus()
	case document.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case document.FieldContentType:
		return m.ContentType()
	case document.FieldExtractionStatus:
		return m.ExtractionStatus()
	case document.FieldExtractionMethod:
		return m.ExtractionMethod()
	case document.FieldExtractedText:
		return m.ExtractedText()
	case document.FieldCharCount:
		return m.CharCount()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldExtractionError:
		return m.ExtractionError()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilingID:
		return m.OldFilingID(ctx)
	case document.FieldSeq:
		return m.OldSeq(ctx)
	case document.FieldDocumentURL:
		return m.OldDocumentURL(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldLocalPath:
		return m.OldLocalPath(ctx)
	case document.FieldDownloadStatus:
		return m.OldDownloadStatus(ctx)
	case document.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	case document.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case document.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case document.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case document.FieldCharCount:
		return m.OldCharCount(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingID(v)
		return nil
	case document.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case document.FieldDocumentURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentURL(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldLocalPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPath(v)
		return nil
	case document.FieldDownloadStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloadStatus(v)
		return nil
	case document.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case document.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case document.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case document.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case document.FieldCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharCount(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, document.FieldSeq)
	}
	if m.addfile_size_bytes != nil {
		fields = append(fields, document.FieldFileSizeBytes)
	}
	if m.addchar_count != nil {
		fields = append(fields, document.FieldCharCount)
	}
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSeq:
		return m.AddedSeq()
	case document.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	case document.FieldCharCount:
		return m.AddedCharCount()
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case document.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	case document.FieldCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharCount(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldFilename) {
		fields = append(fields, document.FieldFilename)
	}
	if m.FieldCleared(document.FieldLocalPath) {
		fields = append(fields, document.FieldLocalPath)
	}
	if m.FieldCleared(document.FieldFileSizeBytes) {
		fields = append(fields, document.FieldFileSizeBytes)
	}
	if m.FieldCleared(document.FieldContentType) {
		fields = append(fields, document.FieldContentType)
	}
	if m.FieldCleared(document.FieldExtractionMethod) {
		fields = append(fields, document.FieldExtractionMethod)
	}
	if m.FieldCleared(document.FieldExtractedText) {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.FieldCleared(document.FieldCharCount) {
		fields = append(fields, document.FieldCharCount)
	}
	if m.FieldCleared(document.FieldPageCount) {
		fields = append(fields, document.FieldPageCount)
	}
	if m.FieldCleared(document.FieldExtractionError) {
		fields = append(fields, document.FieldExtractionError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ClearFilename()
		return nil
	case document.FieldLocalPath:
		m.ClearLocalPath()
		return nil
	case document.FieldFileSizeBytes:
		m.ClearFileSizeBytes()
		return nil
	case document.FieldContentType:
		m.ClearContentType()
		return nil
	case document.FieldExtractionMethod:
		m.ClearExtractionMethod()
		return nil
	case document.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case document.FieldCharCount:
		m.ClearCharCount()
		return nil
	case document.FieldPageCount:
		m.ClearPageCount()
		return nil
	case document.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilingID:
		m.ResetFilingID()
		return nil
	case document.FieldSeq:
		m.ResetSeq()
		return nil
	case document.FieldDocumentURL:
		m.ResetDocumentURL()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldLocalPath:
		m.ResetLocalPath()
		return nil
	case document.FieldDownloadStatus:
		m.ResetDownloadStatus()
		return nil
	case document.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	case document.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case document.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case document.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case document.FieldCharCount:
		m.ResetCharCount()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.filing != nil {
		edges = append(edges, document.EdgeFiling)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFiling:
		if id := m.filing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfiling {
		edges = append(edges, document.EdgeFiling)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeFiling:
		return m.clearedfiling
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeFiling:
		m.ClearFiling()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeFiling:
		m.ResetFiling()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// FilingMutation represents an operation that mutates the Filing nodes in the graph.
type FilingMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	external_id         *string
	date                *time.Time
	applicant           *string
	filing_type         *string
	proceeding_number   *string
	title               *string
	url                 *string
	status_scraped      *string
	status_downloaded   *string
	status_extracted    *string
	status_analyzed     *string
	status_notified     *string
	error_message       *string
	retry_count         *int
	addretry_count      *int
	analysis_json       *json.RawMessage
	appendanalysis_json json.RawMessage
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	documents           map[uuid.UUID]struct{}
	removeddocuments    map[uuid.UUID]struct{}
	cleareddocuments    bool
	done                bool
	oldValue            func(context.Context) (*Filing, error)
	predicates          []predicate.Filing
}

var _ ent.Mutation = (*FilingMutation)(nil)

// filingOption allows management of the mutation configuration using functional options.
type filingOption func(*FilingMutation)

// newFilingMutation creates new mutation for the Filing entity.
func newFilingMutation(c config, op Op, opts ...filingOption) *FilingMutation {
	m := &FilingMutation{
		config:        c,
		op:            op,
		typ:           TypeFiling,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFilingID sets the ID field of the mutation.
func withFilingID(id uuid.UUID) filingOption {
	return func(m *FilingMutation) {
		var (
			err   error
			once  sync.Once
			value *Filing
		)
		m.oldValue = func(ctx context.Context) (*Filing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Filing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFiling sets the old Filing of the mutation.
func withFiling(node *Filing) filingOption {
	return func(m *FilingMutation) {
		m.oldValue = func(context.Context) (*Filing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FilingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FilingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Filing entities.
func (m *FilingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FilingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FilingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Filing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *FilingMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *FilingMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *FilingMutation) ResetExternalID() {
	m.external_id = nil
}

// SetDate sets the "date" field.
func (m *FilingMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *FilingMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ClearDate clears the value of the "date" field.
func (m *FilingMutation) ClearDate() {
	m.date = nil
	m.clearedFields[filing.FieldDate] = struct{}{}
}

// DateCleared returns if the "date" field was cleared in this mutation.
func (m *FilingMutation) DateCleared() bool {
	_, ok := m.clearedFields[filing.FieldDate]
	return ok
}

// ResetDate resets all changes to the "date" field.
func (m *FilingMutation) ResetDate() {
	m.date = nil
	delete(m.clearedFields, filing.FieldDate)
}

// SetApplicant sets the "applicant" field.
func (m *FilingMutation) SetApplicant(s string) {
	m.applicant = &s
}

// Applicant returns the value of the "applicant" field in the mutation.
func (m *FilingMutation) Applicant() (r string, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicant returns the old "applicant" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldApplicant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicant: %w", err)
	}
	return oldValue.Applicant, nil
}

// ClearApplicant clears the value of the "applicant" field.
func (m *FilingMutation) ClearApplicant() {
	m.applicant = nil
	m.clearedFields[filing.FieldApplicant] = struct{}{}
}

// ApplicantCleared returns if the "applicant" field was cleared in this mutation.
func (m *FilingMutation) ApplicantCleared() bool {
	_, ok := m.clearedFields[filing.FieldApplicant]
	return ok
}

// ResetApplicant resets all changes to the "applicant" field.
func (m *FilingMutation) ResetApplicant() {
	m.applicant = nil
	delete(m.clearedFields, filing.FieldApplicant)
}

// SetFilingType sets the "filing_type" field.
func (m *FilingMutation) SetFilingType(s string) {
	m.filing_type = &s
}

// FilingType returns the value of the "filing_type" field in the mutation.
func (m *FilingMutation) FilingType() (r string, exists bool) {
	v := m.filing_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingType returns the old "filing_type" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldFilingType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingType: %w", err)
	}
	return oldValue.FilingType, nil
}

// ClearFilingType clears the value of the "filing_type" field.
func (m *FilingMutation) ClearFilingType() {
	m.filing_type = nil
	m.clearedFields[filing.FieldFilingType] = struct{}{}
}

// FilingTypeCleared returns if the "filing_type" field was cleared in this mutation.
func (m *FilingMutation) FilingTypeCleared() bool {
	_, ok := m.clearedFields[filing.FieldFilingType]
	return ok
}

// ResetFilingType resets all changes to the "filing_type" field.
func (m *FilingMutation) ResetFilingType() {
	m.filing_type = nil
	delete(m.clearedFields, filing.FieldFilingType)
}

// SetProceedingNumber sets the "proceeding_number" field.
func (m *FilingMutation) SetProceedingNumber(s string) {
	m.proceeding_number = &s
}

// ProceedingNumber returns the value of the "proceeding_number" field in the mutation.
func (m *FilingMutation) ProceedingNumber() (r string, exists bool) {
	v := m.proceeding_number
	if v == nil {
		return
	}
	return *v, true
}

// OldProceedingNumber returns the old "proceeding_number" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldProceedingNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProceedingNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProceedingNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProceedingNumber: %w", err)
	}
	return oldValue.ProceedingNumber, nil
}

// ClearProceedingNumber clears the value of the "proceeding_number" field.
func (m *FilingMutation) ClearProceedingNumber() {
	m.proceeding_number = nil
	m.clearedFields[filing.FieldProceedingNumber] = struct{}{}
}

// ProceedingNumberCleared returns if the "proceeding_number" field was cleared in this mutation.
func (m *FilingMutation) ProceedingNumberCleared() bool {
	_, ok := m.clearedFields[filing.FieldProceedingNumber]
	return ok
}

// ResetProceedingNumber resets all changes to the "proceeding_number" field.
func (m *FilingMutation) ResetProceedingNumber() {
	m.proceeding_number = nil
	delete(m.clearedFields, filing.FieldProceedingNumber)
}

// SetTitle sets the "title" field.
func (m *FilingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FilingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *FilingMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[filing.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *FilingMutation) TitleCleared() bool {
	_, ok := m.clearedFields[filing.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *FilingMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, filing.FieldTitle)
}

// SetURL sets the "url" field.
func (m *FilingMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *FilingMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *FilingMutation) ClearURL() {
	m.url = nil
	m.clearedFields[filing.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *FilingMutation) URLCleared() bool {
	_, ok := m.clearedFields[filing.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *FilingMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, filing.FieldURL)
}

// SetStatusScraped sets the "status_scraped" field.
func (m *FilingMutation) SetStatusScraped(s string) {
	m.status_scraped = &s
}

// StatusScraped returns the value of the "status_scraped" field in the mutation.
func (m *FilingMutation) StatusScraped() (r string, exists bool) {
	v := m.status_scraped
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusScraped returns the old "status_scraped" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldStatusScraped(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusScraped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusScraped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusScraped: %w", err)
	}
	return oldValue.StatusScraped, nil
}

// ResetStatusScraped resets all changes to the "status_scraped" field.
func (m *FilingMutation) ResetStatusScraped() {
	m.status_scraped = nil
}

// SetStatusDownloaded sets the "status_downloaded" field.
func (m *FilingMutation) SetStatusDownloaded(s string) {
	m.status_downloaded = &s
}

// StatusDownloaded returns the value of the "status_downloaded" field in the mutation.
func (m *FilingMutation) StatusDownloaded() (r string, exists bool) {
	v := m.status_downloaded
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusDownloaded returns the old "status_downloaded" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldStatusDownloaded(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusDownloaded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusDownloaded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusDownloaded: %w", err)
	}
	return oldValue.StatusDownloaded, nil
}

// ResetStatusDownloaded resets all changes to the "status_downloaded" field.
func (m *FilingMutation) ResetStatusDownloaded() {
	m.status_downloaded = nil
}

// SetStatusExtracted sets the "status_extracted" field.
func (m *FilingMutation) SetStatusExtracted(s string) {
	m.status_extracted = &s
}

// StatusExtracted returns the value of the "status_extracted" field in the mutation.
func (m *FilingMutation) StatusExtracted() (r string, exists bool) {
	v := m.status_extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusExtracted returns the old "status_extracted" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldStatusExtracted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusExtracted: %w", err)
	}
	return oldValue.StatusExtracted, nil
}

// ResetStatusExtracted resets all changes to the "status_extracted" field.
func (m *FilingMutation) ResetStatusExtracted() {
	m.status_extracted = nil
}

// SetStatusAnalyzed sets the "status_analyzed" field.
func (m *FilingMutation) SetStatusAnalyzed(s string) {
	m.status_analyzed = &s
}

// StatusAnalyzed returns the value of the "status_analyzed" field in the mutation.
func (m *FilingMutation) StatusAnalyzed() (r string, exists bool) {
	v := m.status_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusAnalyzed returns the old "status_analyzed" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldStatusAnalyzed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusAnalyzed: %w", err)
	}
	return oldValue.StatusAnalyzed, nil
}

// ResetStatusAnalyzed resets all changes to the "status_analyzed" field.
func (m *FilingMutation) ResetStatusAnalyzed() {
	m.status_analyzed = nil
}

// SetStatusNotified sets the "status_notified" field.
func (m *FilingMutation) SetStatusNotified(s string) {
	m.status_notified = &s
}

// StatusNotified returns the value of the "status_notified" field in the mutation.
func (m *FilingMutation) StatusNotified() (r string, exists bool) {
	v := m.status_notified
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusNotified returns the old "status_notified" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldStatusNotified(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusNotified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusNotified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusNotified: %w", err)
	}
	return oldValue.StatusNotified, nil
}

// ResetStatusNotified resets all changes to the "status_notified" field.
func (m *FilingMutation) ResetStatusNotified() {
	m.status_notified = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *FilingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FilingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FilingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[filing.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FilingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[filing.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FilingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, filing.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *FilingMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *FilingMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *FilingMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *FilingMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *FilingMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetAnalysisJSON sets the "analysis_json" field.
func (m *FilingMutation) SetAnalysisJSON(jm json.RawMessage) {
	m.analysis_json = &jm
	m.appendanalysis_json = nil
}

// AnalysisJSON returns the value of the "analysis_json" field in the mutation.
func (m *FilingMutation) AnalysisJSON() (r json.RawMessage, exists bool) {
	v := m.analysis_json
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisJSON returns the old "analysis_json" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldAnalysisJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisJSON: %w", err)
	}
	return oldValue.AnalysisJSON, nil
}

// AppendAnalysisJSON adds jm to the "analysis_json" field.
func (m *FilingMutation) AppendAnalysisJSON(jm json.RawMessage) {
	m.appendanalysis_json = append(m.appendanalysis_json, jm...)
}

// AppendedAnalysisJSON returns the list of values that were appended to the "analysis_json" field in this mutation.
func (m *FilingMutation) AppendedAnalysisJSON() (json.RawMessage, bool) {
	if len(m.appendanalysis_json) == 0 {
		return nil, false
	}
	return m.appendanalysis_json, true
}

// ClearAnalysisJSON clears the value of the "analysis_json" field.
func (m *FilingMutation) ClearAnalysisJSON() {
	m.analysis_json = nil
	m.appendanalysis_json = nil
	m.clearedFields[filing.FieldAnalysisJSON] = struct{}{}
}

// AnalysisJSONCleared returns if the "analysis_json" field was cleared in this mutation.
func (m *FilingMutation) AnalysisJSONCleared() bool {
	_, ok := m.clearedFields[filing.FieldAnalysisJSON]
	return ok
}

// ResetAnalysisJSON resets all changes to the "analysis_json" field.
func (m *FilingMutation) ResetAnalysisJSON() {
	m.analysis_json = nil
	m.appendanalysis_json = nil
	delete(m.clearedFields, filing.FieldAnalysisJSON)
}

// SetCreatedAt sets the "created_at" field.
func (m *FilingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FilingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FilingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FilingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FilingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FilingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *FilingMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *FilingMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *FilingMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *FilingMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *FilingMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *FilingMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *FilingMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the FilingMutation builder.
func (m *FilingMutation) Where(ps ...predicate.Filing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FilingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FilingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Filing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FilingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FilingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Filing).
func (m *FilingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FilingMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.external_id != nil {
		fields = append(fields, filing.FieldExternalID)
	}
	if m.date != nil {
		fields = append(fields, filing.FieldDate)
	}
	if m.applicant != nil {
		fields = append(fields, filing.FieldApplicant)
	}
	if m.filing_type != nil {
		fields = append(fields, filing.FieldFilingType)
	}
	if m.proceeding_number != nil {
		fields = append(fields, filing.FieldProceedingNumber)
	}
	if m.title != nil {
		fields = append(fields, filing.FieldTitle)
	}
	if m.url != nil {
		fields = append(fields, filing.FieldURL)
	}
	if m.status_scraped != nil {
		fields = append(fields, filing.FieldStatusScraped)
	}
	if m.status_downloaded != nil {
		fields = append(fields, filing.FieldStatusDownloaded)
	}
	if m.status_extracted != nil {
		fields = append(fields, filing.FieldStatusExtracted)
	}
	if m.status_analyzed != nil {
		fields = append(fields, filing.FieldStatusAnalyzed)
	}
	if m.status_notified != nil {
		fields = append(fields, filing.FieldStatusNotified)
	}
	if m.error_message != nil {
		fields = append(fields, filing.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, filing.FieldRetryCount)
	}
	if m.analysis_json != nil {
		fields = append(fields, filing.FieldAnalysisJSON)
	}
	if m.created_at != nil {
		fields = append(fields, filing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, filing.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FilingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filing.FieldExternalID:
		return m.ExternalID()
	case filing.FieldDate:
		return m.Date()
	case filing.FieldApplicant:
		return m.Applicant()
	case filing.FieldFilingType:
		return m.FilingType()
	case filing.FieldProceedingNumber:
		return m.ProceedingNumber()
	case filing.FieldTitle:
		return m.Title()
	case filing.FieldURL:
		return m.URL()
	case filing.FieldStatusScraped:
		return m.StatusScraped()
	case filing.FieldStatusDownloaded:
		return m.StatusDownloaded()
	case filing.FieldStatusExtracted:
		return m.StatusExtracted()
	case filing.FieldStatusAnalyzed:
		return m.StatusAnalyzed()
	case filing.FieldStatusNotified:
		return m.StatusNotified()
	case filing.FieldErrorMessage:
		return m.ErrorMessage()
	case filing.FieldRetryCount:
		return m.RetryCount()
	case filing.FieldAnalysisJSON:
		return m.AnalysisJSON()
	case filing.FieldCreatedAt:
		return m.CreatedAt()
	case filing.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FilingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filing.FieldExternalID:
		return m.OldExternalID(ctx)
	case filing.FieldDate:
		return m.OldDate(ctx)
	case filing.FieldApplicant:
		return m.OldApplicant(ctx)
	case filing.FieldFilingType:
		return m.OldFilingType(ctx)
	case filing.FieldProceedingNumber:
		return m.OldProceedingNumber(ctx)
	case filing.FieldTitle:
		return m.OldTitle(ctx)
	case filing.FieldURL:
		return m.OldURL(ctx)
	case filing.FieldStatusScraped:
		return m.OldStatusScraped(ctx)
	case filing.FieldStatusDownloaded:
		return m.OldStatusDownloaded(ctx)
	case filing.FieldStatusExtracted:
		return m.OldStatusExtracted(ctx)
	case filing.FieldStatusAnalyzed:
		return m.OldStatusAnalyzed(ctx)
	case filing.FieldStatusNotified:
		return m.OldStatusNotified(ctx)
	case filing.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case filing.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case filing.FieldAnalysisJSON:
		return m.OldAnalysisJSON(ctx)
	case filing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case filing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Filing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filing.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case filing.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case filing.FieldApplicant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicant(v)
		return nil
	case filing.FieldFilingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingType(v)
		return nil
	case filing.FieldProceedingNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProceedingNumber(v)
		return nil
	case filing.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case filing.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case filing.FieldStatusScraped:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusScraped(v)
		return nil
	case filing.FieldStatusDownloaded:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusDownloaded(v)
		return nil
	case filing.FieldStatusExtracted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusExtracted(v)
		return nil
	case filing.FieldStatusAnalyzed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusAnalyzed(v)
		return nil
	case filing.FieldStatusNotified:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusNotified(v)
		return nil
	case filing.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case filing.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case filing.FieldAnalysisJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisJSON(v)
		return nil
	case filing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case filing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Filing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FilingMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, filing.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FilingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case filing.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case filing.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Filing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FilingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filing.FieldDate) {
		fields = append(fields, filing.FieldDate)
	}
	if m.FieldCleared(filing.FieldApplicant) {
		fields = append(fields, filing.FieldApplicant)
	}
	if m.FieldCleared(filing.FieldFilingType) {
		fields = append(fields, filing.FieldFilingType)
	}
	if m.FieldCleared(filing.FieldProceedingNumber) {
		fields = append(fields, filing.FieldProceedingNumber)
	}
	if m.FieldCleared(filing.FieldTitle) {
		fields = append(fields, filing.FieldTitle)
	}
	if m.FieldCleared(filing.FieldURL) {
		fields = append(fields, filing.FieldURL)
	}
	if m.FieldCleared(filing.FieldErrorMessage) {
		fields = append(fields, filing.FieldErrorMessage)
	}
	if m.FieldCleared(filing.FieldAnalysisJSON) {
		fields = append(fields, filing.FieldAnalysisJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FilingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FilingMutation) ClearField(name string) error {
	switch name {
	case filing.FieldDate:
		m.ClearDate()
		return nil
	case filing.FieldApplicant:
		m.ClearApplicant()
		return nil
	case filing.FieldFilingType:
		m.ClearFilingType()
		return nil
	case filing.FieldProceedingNumber:
		m.ClearProceedingNumber()
		return nil
	case filing.FieldTitle:
		m.ClearTitle()
		return nil
	case filing.FieldURL:
		m.ClearURL()
		return nil
	case filing.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case filing.FieldAnalysisJSON:
		m.ClearAnalysisJSON()
		return nil
	}
	return fmt.Errorf("unknown Filing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FilingMutation) ResetField(name string) error {
	switch name {
	case filing.FieldExternalID:
		m.ResetExternalID()
		return nil
	case filing.FieldDate:
		m.ResetDate()
		return nil
	case filing.FieldApplicant:
		m.ResetApplicant()
		return nil
	case filing.FieldFilingType:
		m.ResetFilingType()
		return nil
	case filing.FieldProceedingNumber:
		m.ResetProceedingNumber()
		return nil
	case filing.FieldTitle:
		m.ResetTitle()
		return nil
	case filing.FieldURL:
		m.ResetURL()
		return nil
	case filing.FieldStatusScraped:
		m.ResetStatusScraped()
		return nil
	case filing.FieldStatusDownloaded:
		m.ResetStatusDownloaded()
		return nil
	case filing.FieldStatusExtracted:
		m.ResetStatusExtracted()
		return nil
	case filing.FieldStatusAnalyzed:
		m.ResetStatusAnalyzed()
		return nil
	case filing.FieldStatusNotified:
		m.ResetStatusNotified()
		return nil
	case filing.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case filing.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case filing.FieldAnalysisJSON:
		m.ResetAnalysisJSON()
		return nil
	case filing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case filing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Filing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FilingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documents != nil {
		edges = append(edges, filing.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FilingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filing.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FilingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddocuments != nil {
		edges = append(edges, filing.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FilingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case filing.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FilingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocuments {
		edges = append(edges, filing.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FilingMutation) EdgeCleared(name string) bool {
	switch name {
	case filing.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FilingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Filing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FilingMutation) ResetEdge(name string) error {
	switch name {
	case filing.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Filing edge %s", name)
}

// RunHistoryMutation represents an operation that mutates the RunHistory nodes in the graph.
type RunHistoryMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	started_at             *time.Time
	completed_at           *time.Time
	total_filings_found    *int
	addtotal_filings_found *int
	new_filings            *int
	addnew_filings         *int
	processed_ok           *int
	addprocessed_ok        *int
	processed_failed       *int
	addprocessed_failed    *int
	duration_seconds       *float64
	addduration_seconds    *float64
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*RunHistory, error)
	predicates             []predicate.RunHistory
}

var _ ent.Mutation = (*RunHistoryMutation)(nil)

// runhistoryOption allows management of the mutation configuration using functional options.
type runhistoryOption func(*RunHistoryMutation)

// newRunHistoryMutation creates new mutation for the RunHistory entity.
func newRunHistoryMutation(c config, op Op, opts ...runhistoryOption) *RunHistoryMutation {
	m := &RunHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeRunHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunHistoryID sets the ID field of the mutation.
func withRunHistoryID(id uuid.UUID) runhistoryOption {
	return func(m *RunHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *RunHistory
		)
		m.oldValue = func(ctx context.Context) (*RunHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunHistory sets the old RunHistory of the mutation.
func withRunHistory(node *RunHistory) runhistoryOption {
	return func(m *RunHistoryMutation) {
		m.oldValue = func(context.Context) (*RunHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunHistory entities.
func (m *RunHistoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunHistoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunHistoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStartedAt sets the "started_at" field.
func (m *RunHistoryMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunHistoryMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RunHistory entity.
// If the RunHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunHistoryMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunHistoryMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunHistoryMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunHistoryMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RunHistory entity.
// If the RunHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunHistoryMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunHistoryMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[runhistory.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunHistoryMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[runhistory.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunHistoryMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, runhistory.FieldCompletedAt)
}

// SetTotalFilingsFound sets the "total_filings_found" field.
func (m *RunHistoryMutation) SetTotalFilingsFound(i int) {
	m.total_filings_found = &i
	m.addtotal_filings_found = nil
}

// TotalFilingsFound returns the value of the "total_filings_found" field in the mutation.
func (m *RunHistoryMutation) TotalFilingsFound() (r int, exists bool) {
	v := m.total_filings_found
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFilingsFound returns the old "total_filings_found" field's value of the RunHistory entity.
// If the RunHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunHistoryMutation) OldTotalFilingsFound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFilingsFound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFilingsFound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFilingsFound: %w", err)
	}
	return oldValue.TotalFilingsFound, nil
}

// AddTotalFilingsFound adds i to the "total_filings_found" field.
func (m *RunHistoryMutation) AddTotalFilingsFound(i int) {
	if m.addtotal_filings_found != nil {
		*m.addtotal_filings_found += i
	} else {
		m.addtotal_filings_found = &i
	}
}

// AddedTotalFilingsFound returns the value that was added to the "total_filings_found" field in this mutation.
func (m *RunHistoryMutation) AddedTotalFilingsFound() (r int, exists bool) {
	v := m.addtotal_filings_found
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFilingsFound resets all changes to the "total_filings_found" field.
func (m *RunHistoryMutation) ResetTotalFilingsFound() {
	m.total_filings_found = nil
	m.addtotal_filings_found = nil
}

// SetNewFilings sets the "new_filings" field.
func (m *RunHistoryMutation) SetNewFilings(i int) {
	m.new_filings = &i
	m.addnew_filings = nil
}

// NewFilings returns the value of the "new_filings" field in the mutation.
func (m *RunHistoryMutation) NewFilings() (r int, exists bool) {
	v := m.new_filings
	if v == nil {
		return
	}
	return *v, true
}

// OldNewFilings returns the old "new_filings" field's value of the RunHistory entity.
// If the RunHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunHistoryMutation) OldNewFilings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewFilings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewFilings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewFilings: %w", err)
	}
	return oldValue.NewFilings, nil
}

// AddNewFilings adds i to the "new_filings" field.
func (m *RunHistoryMutation) AddNewFilings(i int) {
	if m.addnew_filings != nil {
		*m.addnew_filings += i
	} else {
		m.addnew_filings = &i
	}
}

// AddedNewFilings returns the value that was added to the "new_filings" field in this mutation.
func (m *RunHistoryMutation) AddedNewFilings() (r int, exists bool) {
	v := m.addnew_filings
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewFilings resets all changes to the "new_filings" field.
func (m *RunHistoryMutation) ResetNewFilings() {
	m.new_filings = nil
	m.addnew_filings = nil
}

// SetProcessedOk sets the "processed_ok" field.
func (m *RunHistoryMutation) SetProcessedOk(i int) {
	m.processed_ok = &i
	m.addprocessed_ok = nil
}

// ProcessedOk returns the value of the "processed_ok" field in the mutation.
func (m *RunHistoryMutation) ProcessedOk() (r int, exists bool) {
	v := m.processed_ok
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedOk returns the old "processed_ok" field's value of the RunHistory entity.
// If the RunHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunHistoryMutation) OldProcessedOk(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedOk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedOk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedOk: %w", err)
	}
	return oldValue.ProcessedOk, nil
}

// AddProcessedOk adds i to the "processed_ok" field.
func (m *RunHistoryMutation) AddProcessedOk(i int) {
	if m.addprocessed_ok != nil {
		*m.addprocessed_ok += i
	} else {
		m.addprocessed_ok = &i
	}
}

// AddedProcessedOk returns the value that was added to the "processed_ok" field in this mutation.
func (m *RunHistoryMutation) AddedProcessedOk() (r int, exists bool) {
	v := m.addprocessed_ok
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedOk resets all changes to the "processed_ok" field.
func (m *RunHistoryMutation) ResetProcessedOk() {
	m.processed_ok = nil
	m.addprocessed_ok = nil
}

// SetProcessedFailed sets the "processed_failed" field.
func (m *RunHistoryMutation) SetProcessedFailed(i int) {
	m.processed_failed = &i
	m.addprocessed_failed = nil
}

// ProcessedFailed returns the value of the "processed_failed" field in the mutation.
func (m *RunHistoryMutation) ProcessedFailed() (r int, exists bool) {
	v := m.processed_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedFailed returns the old "processed_failed" field's value of the RunHistory entity.
// If the RunHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunHistoryMutation) OldProcessedFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedFailed: %w", err)
	}
	return oldValue.ProcessedFailed, nil
}

// AddProcessedFailed adds i to the "processed_failed" field.
func (m *RunHistoryMutation) AddProcessedFailed(i int) {
	if m.addprocessed_failed != nil {
		*m.addprocessed_failed += i
	} else {
		m.addprocessed_failed = &i
	}
}

// AddedProcessedFailed returns the value that was added to the "processed_failed" field in this mutation.
func (m *RunHistoryMutation) AddedProcessedFailed() (r int, exists bool) {
	v := m.addprocessed_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedFailed resets all changes to the "processed_failed" field.
func (m *RunHistoryMutation) ResetProcessedFailed() {
	m.processed_failed = nil
	m.addprocessed_failed = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *RunHistoryMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *RunHistoryMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the RunHistory entity.
// If the RunHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunHistoryMutation) OldDurationSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *RunHistoryMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *RunHistoryMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *RunHistoryMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[runhistory.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *RunHistoryMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[runhistory.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *RunHistoryMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, runhistory.FieldDurationSeconds)
}

// Where appends a list predicates to the RunHistoryMutation builder.
func (m *RunHistoryMutation) Where(ps ...predicate.RunHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunHistory).
func (m *RunHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunHistoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.started_at != nil {
		fields = append(fields, runhistory.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, runhistory.FieldCompletedAt)
	}
	if m.total_filings_found != nil {
		fields = append(fields, runhistory.FieldTotalFilingsFound)
	}
	if m.new_filings != nil {
		fields = append(fields, runhistory.FieldNewFilings)
	}
	if m.processed_ok != nil {
		fields = append(fields, runhistory.FieldProcessedOk)
	}
	if m.processed_failed != nil {
		fields = append(fields, runhistory.FieldProcessedFailed)
	}
	if m.duration_seconds != nil {
		fields = append(fields, runhistory.FieldDurationSeconds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runhistory.FieldStartedAt:
		return m.StartedAt()
	case runhistory.FieldCompletedAt:
		return m.CompletedAt()
	case runhistory.FieldTotalFilingsFound:
		return m.TotalFilingsFound()
	case runhistory.FieldNewFilings:
		return m.NewFilings()
	case runhistory.FieldProcessedOk:
		return m.ProcessedOk()
	case runhistory.FieldProcessedFailed:
		return m.ProcessedFailed()
	case runhistory.FieldDurationSeconds:
		return m.DurationSeconds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runhistory.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case runhistory.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case runhistory.FieldTotalFilingsFound:
		return m.OldTotalFilingsFound(ctx)
	case runhistory.FieldNewFilings:
		return m.OldNewFilings(ctx)
	case runhistory.FieldProcessedOk:
		return m.OldProcessedOk(ctx)
	case runhistory.FieldProcessedFailed:
		return m.OldProcessedFailed(ctx)
	case runhistory.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	}
	return nil, fmt.Errorf("unknown RunHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runhistory.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case runhistory.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case runhistory.FieldTotalFilingsFound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFilingsFound(v)
		return nil
	case runhistory.FieldNewFilings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewFilings(v)
		return nil
	case runhistory.FieldProcessedOk:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedOk(v)
		return nil
	case runhistory.FieldProcessedFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedFailed(v)
		return nil
	case runhistory.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown RunHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_filings_found != nil {
		fields = append(fields, runhistory.FieldTotalFilingsFound)
	}
	if m.addnew_filings != nil {
		fields = append(fields, runhistory.FieldNewFilings)
	}
	if m.addprocessed_ok != nil {
		fields = append(fields, runhistory.FieldProcessedOk)
	}
	if m.addprocessed_failed != nil {
		fields = append(fields, runhistory.FieldProcessedFailed)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, runhistory.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runhistory.FieldTotalFilingsFound:
		return m.AddedTotalFilingsFound()
	case runhistory.FieldNewFilings:
		return m.AddedNewFilings()
	case runhistory.FieldProcessedOk:
		return m.AddedProcessedOk()
	case runhistory.FieldProcessedFailed:
		return m.AddedProcessedFailed()
	case runhistory.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runhistory.FieldTotalFilingsFound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFilingsFound(v)
		return nil
	case runhistory.FieldNewFilings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewFilings(v)
		return nil
	case runhistory.FieldProcessedOk:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedOk(v)
		return nil
	case runhistory.FieldProcessedFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedFailed(v)
		return nil
	case runhistory.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown RunHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runhistory.FieldCompletedAt) {
		fields = append(fields, runhistory.FieldCompletedAt)
	}
	if m.FieldCleared(runhistory.FieldDurationSeconds) {
		fields = append(fields, runhistory.FieldDurationSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunHistoryMutation) ClearField(name string) error {
	switch name {
	case runhistory.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case runhistory.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown RunHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunHistoryMutation) ResetField(name string) error {
	switch name {
	case runhistory.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case runhistory.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case runhistory.FieldTotalFilingsFound:
		m.ResetTotalFilingsFound()
		return nil
	case runhistory.FieldNewFilings:
		m.ResetNewFilings()
		return nil
	case runhistory.FieldProcessedOk:
		m.ResetProcessedOk()
		return nil
	case runhistory.FieldProcessedFailed:
		m.ResetProcessedFailed()
		return nil
	case runhistory.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown RunHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RunHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RunHistory edge %s", name)
}
