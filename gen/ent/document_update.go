// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilingID sets the "filing_id" field.
func (_u *DocumentUpdate) SetFilingID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetFilingID(v)
	return _u
}

// SetNillableFilingID sets the "filing_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilingID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetFilingID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *DocumentUpdate) SetSeq(v int) *DocumentUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSeq(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *DocumentUpdate) AddSeq(v int) *DocumentUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetDocumentURL sets the "document_url" field.
func (_u *DocumentUpdate) SetDocumentURL(v string) *DocumentUpdate {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentURL(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *DocumentUpdate) ClearFilename() *DocumentUpdate {
	_u.mutation.ClearFilename()
	return _u
}

// SetLocalPath sets the "local_path" field.
func (_u *DocumentUpdate) SetLocalPath(v string) *DocumentUpdate {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLocalPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// ClearLocalPath clears the value of the "local_path" field.
func (_u *DocumentUpdate) ClearLocalPath() *DocumentUpdate {
	_u.mutation.ClearLocalPath()
	return _u
}

// SetDownloadStatus sets the "download_status" field.
func (_u *DocumentUpdate) SetDownloadStatus(v string) *DocumentUpdate {
	_u.mutation.SetDownloadStatus(v)
	return _u
}

// SetNillableDownloadStatus sets the "download_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDownloadStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDownloadStatus(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *DocumentUpdate) SetFileSizeBytes(v int64) *DocumentUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSizeBytes(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *DocumentUpdate) AddFileSizeBytes(v int64) *DocumentUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *DocumentUpdate) ClearFileSizeBytes() *DocumentUpdate {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdate) SetContentType(v string) *DocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdate) ClearContentType() *DocumentUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *DocumentUpdate) SetExtractionStatus(v string) *DocumentUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractionStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *DocumentUpdate) SetExtractionMethod(v string) *DocumentUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractionMethod(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *DocumentUpdate) ClearExtractionMethod() *DocumentUpdate {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdate) SetExtractedText(v string) *DocumentUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentUpdate) ClearExtractedText() *DocumentUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *DocumentUpdate) SetCharCount(v int) *DocumentUpdate {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCharCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *DocumentUpdate) AddCharCount(v int) *DocumentUpdate {
	_u.mutation.AddCharCount(v)
	return _u
}

// ClearCharCount clears the value of the "char_count" field.
func (_u *DocumentUpdate) ClearCharCount() *DocumentUpdate {
	_u.mutation.ClearCharCount()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdate) ClearPageCount() *DocumentUpdate {
	_u.mutation.ClearPageCount()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *DocumentUpdate) SetExtractionError(v string) *DocumentUpdate {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractionError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *DocumentUpdate) ClearExtractionError() *DocumentUpdate {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetFiling sets the "filing" edge to the Filing entity.
func (_u *DocumentUpdate) SetFiling(v *Filing) *DocumentUpdate {
	return _u.SetFilingID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearFiling clears the "filing" edge to the Filing entity.
func (_u *DocumentUpdate) ClearFiling() *DocumentUpdate {
	_u.mutation.ClearFiling()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := document.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Document.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentURL(); ok {
		if err := document.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "Document.document_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DownloadStatus(); ok {
		if err := document.DownloadStatusValidator(v); err != nil {
			return &ValidationError{Name: "download_status", err: fmt.Errorf(`ent: validator failed for field "Document.download_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := document.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := document.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.FilingCleared() && len(_u.mutation.FilingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.filing"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(document.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(document.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(document.FieldDocumentURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(document.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(document.FieldLocalPath, field.TypeString, value)
	}
	if _u.mutation.LocalPathCleared() {
		_spec.ClearField(document.FieldLocalPath, field.TypeString)
	}
	if value, ok := _u.mutation.DownloadStatus(); ok {
		_spec.SetField(document.FieldDownloadStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(document.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(document.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(document.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(document.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(document.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(document.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(document.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(document.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(document.FieldCharCount, field.TypeInt, value)
	}
	if _u.mutation.CharCountCleared() {
		_spec.ClearField(document.FieldCharCount, field.TypeInt)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(document.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(document.FieldExtractionError, field.TypeString)
	}
	if _u.mutation.FilingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FilingTable,
			Columns: []string{document.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FilingTable,
			Columns: []string{document.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFilingID sets the "filing_id" field.
func (_u *DocumentUpdateOne) SetFilingID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetFilingID(v)
	return _u
}

// SetNillableFilingID sets the "filing_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilingID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilingID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *DocumentUpdateOne) SetSeq(v int) *DocumentUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSeq(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *DocumentUpdateOne) AddSeq(v int) *DocumentUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetDocumentURL sets the "document_url" field.
func (_u *DocumentUpdateOne) SetDocumentURL(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentURL(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *DocumentUpdateOne) ClearFilename() *DocumentUpdateOne {
	_u.mutation.ClearFilename()
	return _u
}

// SetLocalPath sets the "local_path" field.
func (_u *DocumentUpdateOne) SetLocalPath(v string) *DocumentUpdateOne {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLocalPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// ClearLocalPath clears the value of the "local_path" field.
func (_u *DocumentUpdateOne) ClearLocalPath() *DocumentUpdateOne {
	_u.mutation.ClearLocalPath()
	return _u
}

// SetDownloadStatus sets the "download_status" field.
func (_u *DocumentUpdateOne) SetDownloadStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetDownloadStatus(v)
	return _u
}

// SetNillableDownloadStatus sets the "download_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDownloadStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDownloadStatus(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *DocumentUpdateOne) SetFileSizeBytes(v int64) *DocumentUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSizeBytes(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *DocumentUpdateOne) AddFileSizeBytes(v int64) *DocumentUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *DocumentUpdateOne) ClearFileSizeBytes() *DocumentUpdateOne {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdateOne) SetContentType(v string) *DocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdateOne) ClearContentType() *DocumentUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *DocumentUpdateOne) SetExtractionStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractionStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *DocumentUpdateOne) SetExtractionMethod(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractionMethod(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *DocumentUpdateOne) ClearExtractionMethod() *DocumentUpdateOne {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdateOne) SetExtractedText(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentUpdateOne) ClearExtractedText() *DocumentUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *DocumentUpdateOne) SetCharCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCharCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *DocumentUpdateOne) AddCharCount(v int) *DocumentUpdateOne {
	_u.mutation.AddCharCount(v)
	return _u
}

// ClearCharCount clears the value of the "char_count" field.
func (_u *DocumentUpdateOne) ClearCharCount() *DocumentUpdateOne {
	_u.mutation.ClearCharCount()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdateOne) ClearPageCount() *DocumentUpdateOne {
	_u.mutation.ClearPageCount()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *DocumentUpdateOne) SetExtractionError(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractionError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *DocumentUpdateOne) ClearExtractionError() *DocumentUpdateOne {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetFiling sets the "filing" edge to the Filing entity.
func (_u *DocumentUpdateOne) SetFiling(v *Filing) *DocumentUpdateOne {
	return _u.SetFilingID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearFiling clears the "filing" edge to the Filing entity.
func (_u *DocumentUpdateOne) ClearFiling() *DocumentUpdateOne {
	_u.mutation.ClearFiling()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := document.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Document.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentURL(); ok {
		if err := document.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "Document.document_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DownloadStatus(); ok {
		if err := document.DownloadStatusValidator(v); err != nil {
			return &ValidationError{Name: "download_status", err: fmt.Errorf(`ent: validator failed for field "Document.download_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := document.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := document.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.FilingCleared() && len(_u.mutation.FilingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.filing"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(document.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(document.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(document.FieldDocumentURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(document.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(document.FieldLocalPath, field.TypeString, value)
	}
	if _u.mutation.LocalPathCleared() {
		_spec.ClearField(document.FieldLocalPath, field.TypeString)
	}
	if value, ok := _u.mutation.DownloadStatus(); ok {
		_spec.SetField(document.FieldDownloadStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(document.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(document.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(document.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(document.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(document.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(document.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(document.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(document.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(document.FieldCharCount, field.TypeInt, value)
	}
	if _u.mutation.CharCountCleared() {
		_spec.ClearField(document.FieldCharCount, field.TypeInt)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(document.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(document.FieldExtractionError, field.TypeString)
	}
	if _u.mutation.FilingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FilingTable,
			Columns: []string{document.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FilingTable,
			Columns: []string{document.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
