// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetFilingID sets the "filing_id" field.
func (_c *DocumentCreate) SetFilingID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetFilingID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *DocumentCreate) SetSeq(v int) *DocumentCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetDocumentURL sets the "document_url" field.
func (_c *DocumentCreate) SetDocumentURL(v string) *DocumentCreate {
	_c.mutation.SetDocumentURL(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFilename(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFilename(*v)
	}
	return _c
}

// SetLocalPath sets the "local_path" field.
func (_c *DocumentCreate) SetLocalPath(v string) *DocumentCreate {
	_c.mutation.SetLocalPath(v)
	return _c
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLocalPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLocalPath(*v)
	}
	return _c
}

// SetDownloadStatus sets the "download_status" field.
func (_c *DocumentCreate) SetDownloadStatus(v string) *DocumentCreate {
	_c.mutation.SetDownloadStatus(v)
	return _c
}

// SetNillableDownloadStatus sets the "download_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDownloadStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDownloadStatus(*v)
	}
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *DocumentCreate) SetFileSizeBytes(v int64) *DocumentCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFileSizeBytes(v *int64) *DocumentCreate {
	if v != nil {
		_c.SetFileSizeBytes(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *DocumentCreate) SetContentType(v string) *DocumentCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableContentType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *DocumentCreate) SetExtractionStatus(v string) *DocumentCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractionStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *DocumentCreate) SetExtractionMethod(v string) *DocumentCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractionMethod(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractionMethod(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *DocumentCreate) SetExtractedText(v string) *DocumentCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedText(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetCharCount sets the "char_count" field.
func (_c *DocumentCreate) SetCharCount(v int) *DocumentCreate {
	_c.mutation.SetCharCount(v)
	return _c
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCharCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetCharCount(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentCreate) SetPageCount(v int) *DocumentCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetExtractionError sets the "extraction_error" field.
func (_c *DocumentCreate) SetExtractionError(v string) *DocumentCreate {
	_c.mutation.SetExtractionError(v)
	return _c
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractionError(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractionError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFiling sets the "filing" edge to the Filing entity.
func (_c *DocumentCreate) SetFiling(v *Filing) *DocumentCreate {
	return _c.SetFilingID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.DownloadStatus(); !ok {
		v := document.DefaultDownloadStatus
		_c.mutation.SetDownloadStatus(v)
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		v := document.DefaultExtractionStatus
		_c.mutation.SetExtractionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.FilingID(); !ok {
		return &ValidationError{Name: "filing_id", err: errors.New(`ent: missing required field "Document.filing_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Document.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := document.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Document.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentURL(); !ok {
		return &ValidationError{Name: "document_url", err: errors.New(`ent: missing required field "Document.document_url"`)}
	}
	if v, ok := _c.mutation.DocumentURL(); ok {
		if err := document.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "Document.document_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DownloadStatus(); !ok {
		return &ValidationError{Name: "download_status", err: errors.New(`ent: missing required field "Document.download_status"`)}
	}
	if v, ok := _c.mutation.DownloadStatus(); ok {
		if err := document.DownloadStatusValidator(v); err != nil {
			return &ValidationError{Name: "download_status", err: fmt.Errorf(`ent: validator failed for field "Document.download_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "Document.extraction_status"`)}
	}
	if v, ok := _c.mutation.ExtractionStatus(); ok {
		if err := document.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExtractionMethod(); ok {
		if err := document.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if len(_c.mutation.FilingIDs()) == 0 {
		return &ValidationError{Name: "filing", err: errors.New(`ent: missing required edge "Document.filing"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(document.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.DocumentURL(); ok {
		_spec.SetField(document.FieldDocumentURL, field.TypeString, value)
		_node.DocumentURL = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = &value
	}
	if value, ok := _c.mutation.LocalPath(); ok {
		_spec.SetField(document.FieldLocalPath, field.TypeString, value)
		_node.LocalPath = &value
	}
	if value, ok := _c.mutation.DownloadStatus(); ok {
		_spec.SetField(document.FieldDownloadStatus, field.TypeString, value)
		_node.DownloadStatus = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(document.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
		_node.ContentType = &value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(document.FieldExtractionStatus, field.TypeString, value)
		_node.ExtractionStatus = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(document.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = &value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.CharCount(); ok {
		_spec.SetField(document.FieldCharCount, field.TypeInt, value)
		_node.CharCount = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.ExtractionError(); ok {
		_spec.SetField(document.FieldExtractionError, field.TypeString, value)
		_node.ExtractionError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FilingIDs(); len(nodes) > 0 {
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
		_node.FilingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
