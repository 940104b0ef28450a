// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/filingwatch/regdocs-monitor/gen/ent/runhistory"
)

// RunHistoryUpdate is the builder for updating RunHistory entities.
type RunHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *RunHistoryMutation
}

// Where appends a list predicates to the RunHistoryUpdate builder.
func (_u *RunHistoryUpdate) Where(ps ...predicate.RunHistory) *RunHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunHistoryUpdate) SetCompletedAt(v time.Time) *RunHistoryUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunHistoryUpdate) SetNillableCompletedAt(v *time.Time) *RunHistoryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunHistoryUpdate) ClearCompletedAt() *RunHistoryUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalFilingsFound sets the "total_filings_found" field.
func (_u *RunHistoryUpdate) SetTotalFilingsFound(v int) *RunHistoryUpdate {
	_u.mutation.ResetTotalFilingsFound()
	_u.mutation.SetTotalFilingsFound(v)
	return _u
}

// SetNillableTotalFilingsFound sets the "total_filings_found" field if the given value is not nil.
func (_u *RunHistoryUpdate) SetNillableTotalFilingsFound(v *int) *RunHistoryUpdate {
	if v != nil {
		_u.SetTotalFilingsFound(*v)
	}
	return _u
}

// AddTotalFilingsFound adds value to the "total_filings_found" field.
func (_u *RunHistoryUpdate) AddTotalFilingsFound(v int) *RunHistoryUpdate {
	_u.mutation.AddTotalFilingsFound(v)
	return _u
}

// SetNewFilings sets the "new_filings" field.
func (_u *RunHistoryUpdate) SetNewFilings(v int) *RunHistoryUpdate {
	_u.mutation.ResetNewFilings()
	_u.mutation.SetNewFilings(v)
	return _u
}

// SetNillableNewFilings sets the "new_filings" field if the given value is not nil.
func (_u *RunHistoryUpdate) SetNillableNewFilings(v *int) *RunHistoryUpdate {
	if v != nil {
		_u.SetNewFilings(*v)
	}
	return _u
}

// AddNewFilings adds value to the "new_filings" field.
func (_u *RunHistoryUpdate) AddNewFilings(v int) *RunHistoryUpdate {
	_u.mutation.AddNewFilings(v)
	return _u
}

// SetProcessedOk sets the "processed_ok" field.
func (_u *RunHistoryUpdate) SetProcessedOk(v int) *RunHistoryUpdate {
	_u.mutation.ResetProcessedOk()
	_u.mutation.SetProcessedOk(v)
	return _u
}

// SetNillableProcessedOk sets the "processed_ok" field if the given value is not nil.
func (_u *RunHistoryUpdate) SetNillableProcessedOk(v *int) *RunHistoryUpdate {
	if v != nil {
		_u.SetProcessedOk(*v)
	}
	return _u
}

// AddProcessedOk adds value to the "processed_ok" field.
func (_u *RunHistoryUpdate) AddProcessedOk(v int) *RunHistoryUpdate {
	_u.mutation.AddProcessedOk(v)
	return _u
}

// SetProcessedFailed sets the "processed_failed" field.
func (_u *RunHistoryUpdate) SetProcessedFailed(v int) *RunHistoryUpdate {
	_u.mutation.ResetProcessedFailed()
	_u.mutation.SetProcessedFailed(v)
	return _u
}

// SetNillableProcessedFailed sets the "processed_failed" field if the given value is not nil.
func (_u *RunHistoryUpdate) SetNillableProcessedFailed(v *int) *RunHistoryUpdate {
	if v != nil {
		_u.SetProcessedFailed(*v)
	}
	return _u
}

// AddProcessedFailed adds value to the "processed_failed" field.
func (_u *RunHistoryUpdate) AddProcessedFailed(v int) *RunHistoryUpdate {
	_u.mutation.AddProcessedFailed(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *RunHistoryUpdate) SetDurationSeconds(v float64) *RunHistoryUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *RunHistoryUpdate) SetNillableDurationSeconds(v *float64) *RunHistoryUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *RunHistoryUpdate) AddDurationSeconds(v float64) *RunHistoryUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *RunHistoryUpdate) ClearDurationSeconds() *RunHistoryUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// Mutation returns the RunHistoryMutation object of the builder.
func (_u *RunHistoryUpdate) Mutation() *RunHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(runhistory.Table, runhistory.Columns, sqlgraph.NewFieldSpec(runhistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runhistory.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runhistory.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalFilingsFound(); ok {
		_spec.SetField(runhistory.FieldTotalFilingsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFilingsFound(); ok {
		_spec.AddField(runhistory.FieldTotalFilingsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewFilings(); ok {
		_spec.SetField(runhistory.FieldNewFilings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewFilings(); ok {
		_spec.AddField(runhistory.FieldNewFilings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedOk(); ok {
		_spec.SetField(runhistory.FieldProcessedOk, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedOk(); ok {
		_spec.AddField(runhistory.FieldProcessedOk, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedFailed(); ok {
		_spec.SetField(runhistory.FieldProcessedFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedFailed(); ok {
		_spec.AddField(runhistory.FieldProcessedFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(runhistory.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(runhistory.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(runhistory.FieldDurationSeconds, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunHistoryUpdateOne is the builder for updating a single RunHistory entity.
type RunHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunHistoryMutation
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunHistoryUpdateOne) SetCompletedAt(v time.Time) *RunHistoryUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunHistoryUpdateOne) SetNillableCompletedAt(v *time.Time) *RunHistoryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunHistoryUpdateOne) ClearCompletedAt() *RunHistoryUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalFilingsFound sets the "total_filings_found" field.
func (_u *RunHistoryUpdateOne) SetTotalFilingsFound(v int) *RunHistoryUpdateOne {
	_u.mutation.ResetTotalFilingsFound()
	_u.mutation.SetTotalFilingsFound(v)
	return _u
}

// SetNillableTotalFilingsFound sets the "total_filings_found" field if the given value is not nil.
func (_u *RunHistoryUpdateOne) SetNillableTotalFilingsFound(v *int) *RunHistoryUpdateOne {
	if v != nil {
		_u.SetTotalFilingsFound(*v)
	}
	return _u
}

// AddTotalFilingsFound adds value to the "total_filings_found" field.
func (_u *RunHistoryUpdateOne) AddTotalFilingsFound(v int) *RunHistoryUpdateOne {
	_u.mutation.AddTotalFilingsFound(v)
	return _u
}

// SetNewFilings sets the "new_filings" field.
func (_u *RunHistoryUpdateOne) SetNewFilings(v int) *RunHistoryUpdateOne {
	_u.mutation.ResetNewFilings()
	_u.mutation.SetNewFilings(v)
	return _u
}

// SetNillableNewFilings sets the "new_filings" field if the given value is not nil.
func (_u *RunHistoryUpdateOne) SetNillableNewFilings(v *int) *RunHistoryUpdateOne {
	if v != nil {
		_u.SetNewFilings(*v)
	}
	return _u
}

// AddNewFilings adds value to the "new_filings" field.
func (_u *RunHistoryUpdateOne) AddNewFilings(v int) *RunHistoryUpdateOne {
	_u.mutation.AddNewFilings(v)
	return _u
}

// SetProcessedOk sets the "processed_ok" field.
func (_u *RunHistoryUpdateOne) SetProcessedOk(v int) *RunHistoryUpdateOne {
	_u.mutation.ResetProcessedOk()
	_u.mutation.SetProcessedOk(v)
	return _u
}

// SetNillableProcessedOk sets the "processed_ok" field if the given value is not nil.
func (_u *RunHistoryUpdateOne) SetNillableProcessedOk(v *int) *RunHistoryUpdateOne {
	if v != nil {
		_u.SetProcessedOk(*v)
	}
	return _u
}

// AddProcessedOk adds value to the "processed_ok" field.
func (_u *RunHistoryUpdateOne) AddProcessedOk(v int) *RunHistoryUpdateOne {
	_u.mutation.AddProcessedOk(v)
	return _u
}

// SetProcessedFailed sets the "processed_failed" field.
func (_u *RunHistoryUpdateOne) SetProcessedFailed(v int) *RunHistoryUpdateOne {
	_u.mutation.ResetProcessedFailed()
	_u.mutation.SetProcessedFailed(v)
	return _u
}

// SetNillableProcessedFailed sets the "processed_failed" field if the given value is not nil.
func (_u *RunHistoryUpdateOne) SetNillableProcessedFailed(v *int) *RunHistoryUpdateOne {
	if v != nil {
		_u.SetProcessedFailed(*v)
	}
	return _u
}

// AddProcessedFailed adds value to the "processed_failed" field.
func (_u *RunHistoryUpdateOne) AddProcessedFailed(v int) *RunHistoryUpdateOne {
	_u.mutation.AddProcessedFailed(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *RunHistoryUpdateOne) SetDurationSeconds(v float64) *RunHistoryUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *RunHistoryUpdateOne) SetNillableDurationSeconds(v *float64) *RunHistoryUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *RunHistoryUpdateOne) AddDurationSeconds(v float64) *RunHistoryUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *RunHistoryUpdateOne) ClearDurationSeconds() *RunHistoryUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// Mutation returns the RunHistoryMutation object of the builder.
func (_u *RunHistoryUpdateOne) Mutation() *RunHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunHistoryUpdate builder.
func (_u *RunHistoryUpdateOne) Where(ps ...predicate.RunHistory) *RunHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunHistoryUpdateOne) Select(field string, fields ...string) *RunHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunHistory entity.
func (_u *RunHistoryUpdateOne) Save(ctx context.Context) (*RunHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunHistoryUpdateOne) SaveX(ctx context.Context) *RunHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunHistoryUpdateOne) sqlSave(ctx context.Context) (_node *RunHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(runhistory.Table, runhistory.Columns, sqlgraph.NewFieldSpec(runhistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runhistory.FieldID)
		for _, f := range fields {
			if !runhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runhistory.FieldID {
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
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runhistory.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runhistory.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalFilingsFound(); ok {
		_spec.SetField(runhistory.FieldTotalFilingsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFilingsFound(); ok {
		_spec.AddField(runhistory.FieldTotalFilingsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewFilings(); ok {
		_spec.SetField(runhistory.FieldNewFilings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewFilings(); ok {
		_spec.AddField(runhistory.FieldNewFilings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedOk(); ok {
		_spec.SetField(runhistory.FieldProcessedOk, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedOk(); ok {
		_spec.AddField(runhistory.FieldProcessedOk, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedFailed(); ok {
		_spec.SetField(runhistory.FieldProcessedFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedFailed(); ok {
		_spec.AddField(runhistory.FieldProcessedFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(runhistory.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(runhistory.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(runhistory.FieldDurationSeconds, field.TypeFloat64)
	}
	_node = &RunHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
