// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/google/uuid"
)

// FilingUpdate is the builder for updating Filing entities.
type FilingUpdate struct {
	config
	hooks    []Hook
	mutation *FilingMutation
}

// Where appends a list predicates to the FilingUpdate builder.
func (_u *FilingUpdate) Where(ps ...predicate.Filing) *FilingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *FilingUpdate) SetExternalID(v string) *FilingUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableExternalID(v *string) *FilingUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *FilingUpdate) SetDate(v time.Time) *FilingUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableDate(v *time.Time) *FilingUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *FilingUpdate) ClearDate() *FilingUpdate {
	_u.mutation.ClearDate()
	return _u
}

// SetApplicant sets the "applicant" field.
func (_u *FilingUpdate) SetApplicant(v string) *FilingUpdate {
	_u.mutation.SetApplicant(v)
	return _u
}

// SetNillableApplicant sets the "applicant" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableApplicant(v *string) *FilingUpdate {
	if v != nil {
		_u.SetApplicant(*v)
	}
	return _u
}

// ClearApplicant clears the value of the "applicant" field.
func (_u *FilingUpdate) ClearApplicant() *FilingUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// SetFilingType sets the "filing_type" field.
func (_u *FilingUpdate) SetFilingType(v string) *FilingUpdate {
	_u.mutation.SetFilingType(v)
	return _u
}

// SetNillableFilingType sets the "filing_type" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableFilingType(v *string) *FilingUpdate {
	if v != nil {
		_u.SetFilingType(*v)
	}
	return _u
}

// ClearFilingType clears the value of the "filing_type" field.
func (_u *FilingUpdate) ClearFilingType() *FilingUpdate {
	_u.mutation.ClearFilingType()
	return _u
}

// SetProceedingNumber sets the "proceeding_number" field.
func (_u *FilingUpdate) SetProceedingNumber(v string) *FilingUpdate {
	_u.mutation.SetProceedingNumber(v)
	return _u
}

// SetNillableProceedingNumber sets the "proceeding_number" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableProceedingNumber(v *string) *FilingUpdate {
	if v != nil {
		_u.SetProceedingNumber(*v)
	}
	return _u
}

// ClearProceedingNumber clears the value of the "proceeding_number" field.
func (_u *FilingUpdate) ClearProceedingNumber() *FilingUpdate {
	_u.mutation.ClearProceedingNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FilingUpdate) SetTitle(v string) *FilingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableTitle(v *string) *FilingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FilingUpdate) ClearTitle() *FilingUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetURL sets the "url" field.
func (_u *FilingUpdate) SetURL(v string) *FilingUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableURL(v *string) *FilingUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *FilingUpdate) ClearURL() *FilingUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetStatusScraped sets the "status_scraped" field.
func (_u *FilingUpdate) SetStatusScraped(v string) *FilingUpdate {
	_u.mutation.SetStatusScraped(v)
	return _u
}

// SetNillableStatusScraped sets the "status_scraped" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableStatusScraped(v *string) *FilingUpdate {
	if v != nil {
		_u.SetStatusScraped(*v)
	}
	return _u
}

// SetStatusDownloaded sets the "status_downloaded" field.
func (_u *FilingUpdate) SetStatusDownloaded(v string) *FilingUpdate {
	_u.mutation.SetStatusDownloaded(v)
	return _u
}

// SetNillableStatusDownloaded sets the "status_downloaded" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableStatusDownloaded(v *string) *FilingUpdate {
	if v != nil {
		_u.SetStatusDownloaded(*v)
	}
	return _u
}

// SetStatusExtracted sets the "status_extracted" field.
func (_u *FilingUpdate) SetStatusExtracted(v string) *FilingUpdate {
	_u.mutation.SetStatusExtracted(v)
	return _u
}

// SetNillableStatusExtracted sets the "status_extracted" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableStatusExtracted(v *string) *FilingUpdate {
	if v != nil {
		_u.SetStatusExtracted(*v)
	}
	return _u
}

// SetStatusAnalyzed sets the "status_analyzed" field.
func (_u *FilingUpdate) SetStatusAnalyzed(v string) *FilingUpdate {
	_u.mutation.SetStatusAnalyzed(v)
	return _u
}

// SetNillableStatusAnalyzed sets the "status_analyzed" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableStatusAnalyzed(v *string) *FilingUpdate {
	if v != nil {
		_u.SetStatusAnalyzed(*v)
	}
	return _u
}

// SetStatusNotified sets the "status_notified" field.
func (_u *FilingUpdate) SetStatusNotified(v string) *FilingUpdate {
	_u.mutation.SetStatusNotified(v)
	return _u
}

// SetNillableStatusNotified sets the "status_notified" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableStatusNotified(v *string) *FilingUpdate {
	if v != nil {
		_u.SetStatusNotified(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FilingUpdate) SetErrorMessage(v string) *FilingUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableErrorMessage(v *string) *FilingUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FilingUpdate) ClearErrorMessage() *FilingUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FilingUpdate) SetRetryCount(v int) *FilingUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableRetryCount(v *int) *FilingUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FilingUpdate) AddRetryCount(v int) *FilingUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetAnalysisJSON sets the "analysis_json" field.
func (_u *FilingUpdate) SetAnalysisJSON(v json.RawMessage) *FilingUpdate {
	_u.mutation.SetAnalysisJSON(v)
	return _u
}

// AppendAnalysisJSON appends value to the "analysis_json" field.
func (_u *FilingUpdate) AppendAnalysisJSON(v json.RawMessage) *FilingUpdate {
	_u.mutation.AppendAnalysisJSON(v)
	return _u
}

// ClearAnalysisJSON clears the value of the "analysis_json" field.
func (_u *FilingUpdate) ClearAnalysisJSON() *FilingUpdate {
	_u.mutation.ClearAnalysisJSON()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FilingUpdate) SetUpdatedAt(v time.Time) *FilingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *FilingUpdate) AddDocumentIDs(ids ...uuid.UUID) *FilingUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *FilingUpdate) AddDocuments(v ...*Document) *FilingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the FilingMutation object of the builder.
func (_u *FilingUpdate) Mutation() *FilingMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *FilingUpdate) ClearDocuments() *FilingUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *FilingUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *FilingUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *FilingUpdate) RemoveDocuments(v ...*Document) *FilingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FilingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FilingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FilingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingUpdate) check() error {
	if v, ok := _u.mutation.ExternalID(); ok {
		if err := filing.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "Filing.external_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusScraped(); ok {
		if err := filing.StatusScrapedValidator(v); err != nil {
			return &ValidationError{Name: "status_scraped", err: fmt.Errorf(`ent: validator failed for field "Filing.status_scraped": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusDownloaded(); ok {
		if err := filing.StatusDownloadedValidator(v); err != nil {
			return &ValidationError{Name: "status_downloaded", err: fmt.Errorf(`ent: validator failed for field "Filing.status_downloaded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusExtracted(); ok {
		if err := filing.StatusExtractedValidator(v); err != nil {
			return &ValidationError{Name: "status_extracted", err: fmt.Errorf(`ent: validator failed for field "Filing.status_extracted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusAnalyzed(); ok {
		if err := filing.StatusAnalyzedValidator(v); err != nil {
			return &ValidationError{Name: "status_analyzed", err: fmt.Errorf(`ent: validator failed for field "Filing.status_analyzed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusNotified(); ok {
		if err := filing.StatusNotifiedValidator(v); err != nil {
			return &ValidationError{Name: "status_notified", err: fmt.Errorf(`ent: validator failed for field "Filing.status_notified": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := filing.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Filing.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filing.Table, filing.Columns, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(filing.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(filing.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(filing.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Applicant(); ok {
		_spec.SetField(filing.FieldApplicant, field.TypeString, value)
	}
	if _u.mutation.ApplicantCleared() {
		_spec.ClearField(filing.FieldApplicant, field.TypeString)
	}
	if value, ok := _u.mutation.FilingType(); ok {
		_spec.SetField(filing.FieldFilingType, field.TypeString, value)
	}
	if _u.mutation.FilingTypeCleared() {
		_spec.ClearField(filing.FieldFilingType, field.TypeString)
	}
	if value, ok := _u.mutation.ProceedingNumber(); ok {
		_spec.SetField(filing.FieldProceedingNumber, field.TypeString, value)
	}
	if _u.mutation.ProceedingNumberCleared() {
		_spec.ClearField(filing.FieldProceedingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(filing.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(filing.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(filing.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(filing.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.StatusScraped(); ok {
		_spec.SetField(filing.FieldStatusScraped, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusDownloaded(); ok {
		_spec.SetField(filing.FieldStatusDownloaded, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusExtracted(); ok {
		_spec.SetField(filing.FieldStatusExtracted, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusAnalyzed(); ok {
		_spec.SetField(filing.FieldStatusAnalyzed, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusNotified(); ok {
		_spec.SetField(filing.FieldStatusNotified, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(filing.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(filing.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(filing.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(filing.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalysisJSON(); ok {
		_spec.SetField(filing.FieldAnalysisJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysisJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filing.FieldAnalysisJSON, value)
		})
	}
	if _u.mutation.AnalysisJSONCleared() {
		_spec.ClearField(filing.FieldAnalysisJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(filing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FilingUpdateOne is the builder for updating a single Filing entity.
type FilingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FilingMutation
}

// SetExternalID sets the "external_id" field.
func (_u *FilingUpdateOne) SetExternalID(v string) *FilingUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableExternalID(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *FilingUpdateOne) SetDate(v time.Time) *FilingUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableDate(v *time.Time) *FilingUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *FilingUpdateOne) ClearDate() *FilingUpdateOne {
	_u.mutation.ClearDate()
	return _u
}

// SetApplicant sets the "applicant" field.
func (_u *FilingUpdateOne) SetApplicant(v string) *FilingUpdateOne {
	_u.mutation.SetApplicant(v)
	return _u
}

// SetNillableApplicant sets the "applicant" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableApplicant(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetApplicant(*v)
	}
	return _u
}

// ClearApplicant clears the value of the "applicant" field.
func (_u *FilingUpdateOne) ClearApplicant() *FilingUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// SetFilingType sets the "filing_type" field.
func (_u *FilingUpdateOne) SetFilingType(v string) *FilingUpdateOne {
	_u.mutation.SetFilingType(v)
	return _u
}

// SetNillableFilingType sets the "filing_type" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableFilingType(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetFilingType(*v)
	}
	return _u
}

// ClearFilingType clears the value of the "filing_type" field.
func (_u *FilingUpdateOne) ClearFilingType() *FilingUpdateOne {
	_u.mutation.ClearFilingType()
	return _u
}

// SetProceedingNumber sets the "proceeding_number" field.
func (_u *FilingUpdateOne) SetProceedingNumber(v string) *FilingUpdateOne {
	_u.mutation.SetProceedingNumber(v)
	return _u
}

// SetNillableProceedingNumber sets the "proceeding_number" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableProceedingNumber(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetProceedingNumber(*v)
	}
	return _u
}

// ClearProceedingNumber clears the value of the "proceeding_number" field.
func (_u *FilingUpdateOne) ClearProceedingNumber() *FilingUpdateOne {
	_u.mutation.ClearProceedingNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FilingUpdateOne) SetTitle(v string) *FilingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableTitle(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FilingUpdateOne) ClearTitle() *FilingUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetURL sets the "url" field.
func (_u *FilingUpdateOne) SetURL(v string) *FilingUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableURL(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *FilingUpdateOne) ClearURL() *FilingUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetStatusScraped sets the "status_scraped" field.
func (_u *FilingUpdateOne) SetStatusScraped(v string) *FilingUpdateOne {
	_u.mutation.SetStatusScraped(v)
	return _u
}

// SetNillableStatusScraped sets the "status_scraped" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableStatusScraped(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetStatusScraped(*v)
	}
	return _u
}

// SetStatusDownloaded sets the "status_downloaded" field.
func (_u *FilingUpdateOne) SetStatusDownloaded(v string) *FilingUpdateOne {
	_u.mutation.SetStatusDownloaded(v)
	return _u
}

// SetNillableStatusDownloaded sets the "status_downloaded" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableStatusDownloaded(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetStatusDownloaded(*v)
	}
	return _u
}

// SetStatusExtracted sets the "status_extracted" field.
func (_u *FilingUpdateOne) SetStatusExtracted(v string) *FilingUpdateOne {
	_u.mutation.SetStatusExtracted(v)
	return _u
}

// SetNillableStatusExtracted sets the "status_extracted" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableStatusExtracted(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetStatusExtracted(*v)
	}
	return _u
}

// SetStatusAnalyzed sets the "status_analyzed" field.
func (_u *FilingUpdateOne) SetStatusAnalyzed(v string) *FilingUpdateOne {
	_u.mutation.SetStatusAnalyzed(v)
	return _u
}

// SetNillableStatusAnalyzed sets the "status_analyzed" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableStatusAnalyzed(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetStatusAnalyzed(*v)
	}
	return _u
}

// SetStatusNotified sets the "status_notified" field.
func (_u *FilingUpdateOne) SetStatusNotified(v string) *FilingUpdateOne {
	_u.mutation.SetStatusNotified(v)
	return _u
}

// SetNillableStatusNotified sets the "status_notified" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableStatusNotified(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetStatusNotified(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FilingUpdateOne) SetErrorMessage(v string) *FilingUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableErrorMessage(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FilingUpdateOne) ClearErrorMessage() *FilingUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FilingUpdateOne) SetRetryCount(v int) *FilingUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableRetryCount(v *int) *FilingUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FilingUpdateOne) AddRetryCount(v int) *FilingUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetAnalysisJSON sets the "analysis_json" field.
func (_u *FilingUpdateOne) SetAnalysisJSON(v json.RawMessage) *FilingUpdateOne {
	_u.mutation.SetAnalysisJSON(v)
	return _u
}

// AppendAnalysisJSON appends value to the "analysis_json" field.
func (_u *FilingUpdateOne) AppendAnalysisJSON(v json.RawMessage) *FilingUpdateOne {
	_u.mutation.AppendAnalysisJSON(v)
	return _u
}

// ClearAnalysisJSON clears the value of the "analysis_json" field.
func (_u *FilingUpdateOne) ClearAnalysisJSON() *FilingUpdateOne {
	_u.mutation.ClearAnalysisJSON()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FilingUpdateOne) SetUpdatedAt(v time.Time) *FilingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *FilingUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *FilingUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *FilingUpdateOne) AddDocuments(v ...*Document) *FilingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the FilingMutation object of the builder.
func (_u *FilingUpdateOne) Mutation() *FilingMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *FilingUpdateOne) ClearDocuments() *FilingUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *FilingUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *FilingUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *FilingUpdateOne) RemoveDocuments(v ...*Document) *FilingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the FilingUpdate builder.
func (_u *FilingUpdateOne) Where(ps ...predicate.Filing) *FilingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FilingUpdateOne) Select(field string, fields ...string) *FilingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Filing entity.
func (_u *FilingUpdateOne) Save(ctx context.Context) (*Filing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingUpdateOne) SaveX(ctx context.Context) *Filing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FilingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FilingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingUpdateOne) check() error {
	if v, ok := _u.mutation.ExternalID(); ok {
		if err := filing.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "Filing.external_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusScraped(); ok {
		if err := filing.StatusScrapedValidator(v); err != nil {
			return &ValidationError{Name: "status_scraped", err: fmt.Errorf(`ent: validator failed for field "Filing.status_scraped": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusDownloaded(); ok {
		if err := filing.StatusDownloadedValidator(v); err != nil {
			return &ValidationError{Name: "status_downloaded", err: fmt.Errorf(`ent: validator failed for field "Filing.status_downloaded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusExtracted(); ok {
		if err := filing.StatusExtractedValidator(v); err != nil {
			return &ValidationError{Name: "status_extracted", err: fmt.Errorf(`ent: validator failed for field "Filing.status_extracted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusAnalyzed(); ok {
		if err := filing.StatusAnalyzedValidator(v); err != nil {
			return &ValidationError{Name: "status_analyzed", err: fmt.Errorf(`ent: validator failed for field "Filing.status_analyzed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusNotified(); ok {
		if err := filing.StatusNotifiedValidator(v); err != nil {
			return &ValidationError{Name: "status_notified", err: fmt.Errorf(`ent: validator failed for field "Filing.status_notified": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := filing.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Filing.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingUpdateOne) sqlSave(ctx context.Context) (_node *Filing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filing.Table, filing.Columns, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Filing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filing.FieldID)
		for _, f := range fields {
			if !filing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filing.FieldID {
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
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(filing.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(filing.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(filing.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Applicant(); ok {
		_spec.SetField(filing.FieldApplicant, field.TypeString, value)
	}
	if _u.mutation.ApplicantCleared() {
		_spec.ClearField(filing.FieldApplicant, field.TypeString)
	}
	if value, ok := _u.mutation.FilingType(); ok {
		_spec.SetField(filing.FieldFilingType, field.TypeString, value)
	}
	if _u.mutation.FilingTypeCleared() {
		_spec.ClearField(filing.FieldFilingType, field.TypeString)
	}
	if value, ok := _u.mutation.ProceedingNumber(); ok {
		_spec.SetField(filing.FieldProceedingNumber, field.TypeString, value)
	}
	if _u.mutation.ProceedingNumberCleared() {
		_spec.ClearField(filing.FieldProceedingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(filing.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(filing.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(filing.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(filing.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.StatusScraped(); ok {
		_spec.SetField(filing.FieldStatusScraped, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusDownloaded(); ok {
		_spec.SetField(filing.FieldStatusDownloaded, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusExtracted(); ok {
		_spec.SetField(filing.FieldStatusExtracted, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusAnalyzed(); ok {
		_spec.SetField(filing.FieldStatusAnalyzed, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusNotified(); ok {
		_spec.SetField(filing.FieldStatusNotified, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(filing.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(filing.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(filing.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(filing.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalysisJSON(); ok {
		_spec.SetField(filing.FieldAnalysisJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysisJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filing.FieldAnalysisJSON, value)
		})
	}
	if _u.mutation.AnalysisJSONCleared() {
		_spec.ClearField(filing.FieldAnalysisJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(filing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Filing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
