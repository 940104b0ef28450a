// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/google/uuid"
)

// FilingCreate is the builder for creating a Filing entity.
type FilingCreate struct {
	config
	mutation *FilingMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (_c *FilingCreate) SetExternalID(v string) *FilingCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *FilingCreate) SetDate(v time.Time) *FilingCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *FilingCreate) SetNillableDate(v *time.Time) *FilingCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetApplicant sets the "applicant" field.
func (_c *FilingCreate) SetApplicant(v string) *FilingCreate {
	_c.mutation.SetApplicant(v)
	return _c
}

// SetNillableApplicant sets the "applicant" field if the given value is not nil.
func (_c *FilingCreate) SetNillableApplicant(v *string) *FilingCreate {
	if v != nil {
		_c.SetApplicant(*v)
	}
	return _c
}

// SetFilingType sets the "filing_type" field.
func (_c *FilingCreate) SetFilingType(v string) *FilingCreate {
	_c.mutation.SetFilingType(v)
	return _c
}

// SetNillableFilingType sets the "filing_type" field if the given value is not nil.
func (_c *FilingCreate) SetNillableFilingType(v *string) *FilingCreate {
	if v != nil {
		_c.SetFilingType(*v)
	}
	return _c
}

// SetProceedingNumber sets the "proceeding_number" field.
func (_c *FilingCreate) SetProceedingNumber(v string) *FilingCreate {
	_c.mutation.SetProceedingNumber(v)
	return _c
}

// SetNillableProceedingNumber sets the "proceeding_number" field if the given value is not nil.
func (_c *FilingCreate) SetNillableProceedingNumber(v *string) *FilingCreate {
	if v != nil {
		_c.SetProceedingNumber(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *FilingCreate) SetTitle(v string) *FilingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *FilingCreate) SetNillableTitle(v *string) *FilingCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *FilingCreate) SetURL(v string) *FilingCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *FilingCreate) SetNillableURL(v *string) *FilingCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetStatusScraped sets the "status_scraped" field.
func (_c *FilingCreate) SetStatusScraped(v string) *FilingCreate {
	_c.mutation.SetStatusScraped(v)
	return _c
}

// SetNillableStatusScraped sets the "status_scraped" field if the given value is not nil.
func (_c *FilingCreate) SetNillableStatusScraped(v *string) *FilingCreate {
	if v != nil {
		_c.SetStatusScraped(*v)
	}
	return _c
}

// SetStatusDownloaded sets the "status_downloaded" field.
func (_c *FilingCreate) SetStatusDownloaded(v string) *FilingCreate {
	_c.mutation.SetStatusDownloaded(v)
	return _c
}

// SetNillableStatusDownloaded sets the "status_downloaded" field if the given value is not nil.
func (_c *FilingCreate) SetNillableStatusDownloaded(v *string) *FilingCreate {
	if v != nil {
		_c.SetStatusDownloaded(*v)
	}
	return _c
}

// SetStatusExtracted sets the "status_extracted" field.
func (_c *FilingCreate) SetStatusExtracted(v string) *FilingCreate {
	_c.mutation.SetStatusExtracted(v)
	return _c
}

// SetNillableStatusExtracted sets the "status_extracted" field if the given value is not nil.
func (_c *FilingCreate) SetNillableStatusExtracted(v *string) *FilingCreate {
	if v != nil {
		_c.SetStatusExtracted(*v)
	}
	return _c
}

// SetStatusAnalyzed sets the "status_analyzed" field.
func (_c *FilingCreate) SetStatusAnalyzed(v string) *FilingCreate {
	_c.mutation.SetStatusAnalyzed(v)
	return _c
}

// SetNillableStatusAnalyzed sets the "status_analyzed" field if the given value is not nil.
func (_c *FilingCreate) SetNillableStatusAnalyzed(v *string) *FilingCreate {
	if v != nil {
		_c.SetStatusAnalyzed(*v)
	}
	return _c
}

// SetStatusNotified sets the "status_notified" field.
func (_c *FilingCreate) SetStatusNotified(v string) *FilingCreate {
	_c.mutation.SetStatusNotified(v)
	return _c
}

// SetNillableStatusNotified sets the "status_notified" field if the given value is not nil.
func (_c *FilingCreate) SetNillableStatusNotified(v *string) *FilingCreate {
	if v != nil {
		_c.SetStatusNotified(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FilingCreate) SetErrorMessage(v string) *FilingCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FilingCreate) SetNillableErrorMessage(v *string) *FilingCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *FilingCreate) SetRetryCount(v int) *FilingCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *FilingCreate) SetNillableRetryCount(v *int) *FilingCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetAnalysisJSON sets the "analysis_json" field.
func (_c *FilingCreate) SetAnalysisJSON(v json.RawMessage) *FilingCreate {
	_c.mutation.SetAnalysisJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FilingCreate) SetCreatedAt(v time.Time) *FilingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FilingCreate) SetNillableCreatedAt(v *time.Time) *FilingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FilingCreate) SetUpdatedAt(v time.Time) *FilingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FilingCreate) SetNillableUpdatedAt(v *time.Time) *FilingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FilingCreate) SetID(v uuid.UUID) *FilingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FilingCreate) SetNillableID(v *uuid.UUID) *FilingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *FilingCreate) AddDocumentIDs(ids ...uuid.UUID) *FilingCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *FilingCreate) AddDocuments(v ...*Document) *FilingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the FilingMutation object of the builder.
func (_c *FilingCreate) Mutation() *FilingMutation {
	return _c.mutation
}

// Save creates the Filing in the database.
func (_c *FilingCreate) Save(ctx context.Context) (*Filing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FilingCreate) SaveX(ctx context.Context) *Filing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FilingCreate) defaults() {
	if _, ok := _c.mutation.StatusScraped(); !ok {
		v := filing.DefaultStatusScraped
		_c.mutation.SetStatusScraped(v)
	}
	if _, ok := _c.mutation.StatusDownloaded(); !ok {
		v := filing.DefaultStatusDownloaded
		_c.mutation.SetStatusDownloaded(v)
	}
	if _, ok := _c.mutation.StatusExtracted(); !ok {
		v := filing.DefaultStatusExtracted
		_c.mutation.SetStatusExtracted(v)
	}
	if _, ok := _c.mutation.StatusAnalyzed(); !ok {
		v := filing.DefaultStatusAnalyzed
		_c.mutation.SetStatusAnalyzed(v)
	}
	if _, ok := _c.mutation.StatusNotified(); !ok {
		v := filing.DefaultStatusNotified
		_c.mutation.SetStatusNotified(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := filing.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := filing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := filing.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := filing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FilingCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Filing.external_id"`)}
	}
	if v, ok := _c.mutation.ExternalID(); ok {
		if err := filing.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "Filing.external_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusScraped(); !ok {
		return &ValidationError{Name: "status_scraped", err: errors.New(`ent: missing required field "Filing.status_scraped"`)}
	}
	if v, ok := _c.mutation.StatusScraped(); ok {
		if err := filing.StatusScrapedValidator(v); err != nil {
			return &ValidationError{Name: "status_scraped", err: fmt.Errorf(`ent: validator failed for field "Filing.status_scraped": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusDownloaded(); !ok {
		return &ValidationError{Name: "status_downloaded", err: errors.New(`ent: missing required field "Filing.status_downloaded"`)}
	}
	if v, ok := _c.mutation.StatusDownloaded(); ok {
		if err := filing.StatusDownloadedValidator(v); err != nil {
			return &ValidationError{Name: "status_downloaded", err: fmt.Errorf(`ent: validator failed for field "Filing.status_downloaded": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusExtracted(); !ok {
		return &ValidationError{Name: "status_extracted", err: errors.New(`ent: missing required field "Filing.status_extracted"`)}
	}
	if v, ok := _c.mutation.StatusExtracted(); ok {
		if err := filing.StatusExtractedValidator(v); err != nil {
			return &ValidationError{Name: "status_extracted", err: fmt.Errorf(`ent: validator failed for field "Filing.status_extracted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusAnalyzed(); !ok {
		return &ValidationError{Name: "status_analyzed", err: errors.New(`ent: missing required field "Filing.status_analyzed"`)}
	}
	if v, ok := _c.mutation.StatusAnalyzed(); ok {
		if err := filing.StatusAnalyzedValidator(v); err != nil {
			return &ValidationError{Name: "status_analyzed", err: fmt.Errorf(`ent: validator failed for field "Filing.status_analyzed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusNotified(); !ok {
		return &ValidationError{Name: "status_notified", err: errors.New(`ent: missing required field "Filing.status_notified"`)}
	}
	if v, ok := _c.mutation.StatusNotified(); ok {
		if err := filing.StatusNotifiedValidator(v); err != nil {
			return &ValidationError{Name: "status_notified", err: fmt.Errorf(`ent: validator failed for field "Filing.status_notified": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Filing.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := filing.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Filing.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Filing.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Filing.updated_at"`)}
	}
	return nil
}

func (_c *FilingCreate) sqlSave(ctx context.Context) (*Filing, error) {
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

func (_c *FilingCreate) createSpec() (*Filing, *sqlgraph.CreateSpec) {
	var (
		_node = &Filing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filing.Table, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(filing.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(filing.FieldDate, field.TypeTime, value)
		_node.Date = &value
	}
	if value, ok := _c.mutation.Applicant(); ok {
		_spec.SetField(filing.FieldApplicant, field.TypeString, value)
		_node.Applicant = &value
	}
	if value, ok := _c.mutation.FilingType(); ok {
		_spec.SetField(filing.FieldFilingType, field.TypeString, value)
		_node.FilingType = &value
	}
	if value, ok := _c.mutation.ProceedingNumber(); ok {
		_spec.SetField(filing.FieldProceedingNumber, field.TypeString, value)
		_node.ProceedingNumber = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(filing.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(filing.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.StatusScraped(); ok {
		_spec.SetField(filing.FieldStatusScraped, field.TypeString, value)
		_node.StatusScraped = value
	}
	if value, ok := _c.mutation.StatusDownloaded(); ok {
		_spec.SetField(filing.FieldStatusDownloaded, field.TypeString, value)
		_node.StatusDownloaded = value
	}
	if value, ok := _c.mutation.StatusExtracted(); ok {
		_spec.SetField(filing.FieldStatusExtracted, field.TypeString, value)
		_node.StatusExtracted = value
	}
	if value, ok := _c.mutation.StatusAnalyzed(); ok {
		_spec.SetField(filing.FieldStatusAnalyzed, field.TypeString, value)
		_node.StatusAnalyzed = value
	}
	if value, ok := _c.mutation.StatusNotified(); ok {
		_spec.SetField(filing.FieldStatusNotified, field.TypeString, value)
		_node.StatusNotified = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(filing.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(filing.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.AnalysisJSON(); ok {
		_spec.SetField(filing.FieldAnalysisJSON, field.TypeJSON, value)
		_node.AnalysisJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(filing.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   filing.DocumentsTable,
			Columns: []string{filing.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FilingCreateBulk is the builder for creating many Filing entities in bulk.
type FilingCreateBulk struct {
	config
	err      error
	builders []*FilingCreate
}

// Save creates the Filing entities in the database.
func (_c *FilingCreateBulk) Save(ctx context.Context) ([]*Filing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Filing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FilingMutation)
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
func (_c *FilingCreateBulk) SaveX(ctx context.Context) []*Filing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
