// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filingwatch/regdocs-monitor/gen/ent/runhistory"
	"github.com/google/uuid"
)

// RunHistoryCreate is the builder for creating a RunHistory entity.
type RunHistoryCreate struct {
	config
	mutation *RunHistoryMutation
	hooks    []Hook
}

// SetStartedAt sets the "started_at" field.
func (_c *RunHistoryCreate) SetStartedAt(v time.Time) *RunHistoryCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableStartedAt(v *time.Time) *RunHistoryCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunHistoryCreate) SetCompletedAt(v time.Time) *RunHistoryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableCompletedAt(v *time.Time) *RunHistoryCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetTotalFilingsFound sets the "total_filings_found" field.
func (_c *RunHistoryCreate) SetTotalFilingsFound(v int) *RunHistoryCreate {
	_c.mutation.SetTotalFilingsFound(v)
	return _c
}

// SetNillableTotalFilingsFound sets the "total_filings_found" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableTotalFilingsFound(v *int) *RunHistoryCreate {
	if v != nil {
		_c.SetTotalFilingsFound(*v)
	}
	return _c
}

// SetNewFilings sets the "new_filings" field.
func (_c *RunHistoryCreate) SetNewFilings(v int) *RunHistoryCreate {
	_c.mutation.SetNewFilings(v)
	return _c
}

// SetNillableNewFilings sets the "new_filings" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableNewFilings(v *int) *RunHistoryCreate {
	if v != nil {
		_c.SetNewFilings(*v)
	}
	return _c
}

// SetProcessedOk sets the "processed_ok" field.
func (_c *RunHistoryCreate) SetProcessedOk(v int) *RunHistoryCreate {
	_c.mutation.SetProcessedOk(v)
	return _c
}

// SetNillableProcessedOk sets the "processed_ok" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableProcessedOk(v *int) *RunHistoryCreate {
	if v != nil {
		_c.SetProcessedOk(*v)
	}
	return _c
}

// SetProcessedFailed sets the "processed_failed" field.
func (_c *RunHistoryCreate) SetProcessedFailed(v int) *RunHistoryCreate {
	_c.mutation.SetProcessedFailed(v)
	return _c
}

// SetNillableProcessedFailed sets the "processed_failed" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableProcessedFailed(v *int) *RunHistoryCreate {
	if v != nil {
		_c.SetProcessedFailed(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *RunHistoryCreate) SetDurationSeconds(v float64) *RunHistoryCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableDurationSeconds(v *float64) *RunHistoryCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunHistoryCreate) SetID(v uuid.UUID) *RunHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RunHistoryCreate) SetNillableID(v *uuid.UUID) *RunHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RunHistoryMutation object of the builder.
func (_c *RunHistoryCreate) Mutation() *RunHistoryMutation {
	return _c.mutation
}

// Save creates the RunHistory in the database.
func (_c *RunHistoryCreate) Save(ctx context.Context) (*RunHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunHistoryCreate) SaveX(ctx context.Context) *RunHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunHistoryCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := runhistory.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.TotalFilingsFound(); !ok {
		v := runhistory.DefaultTotalFilingsFound
		_c.mutation.SetTotalFilingsFound(v)
	}
	if _, ok := _c.mutation.NewFilings(); !ok {
		v := runhistory.DefaultNewFilings
		_c.mutation.SetNewFilings(v)
	}
	if _, ok := _c.mutation.ProcessedOk(); !ok {
		v := runhistory.DefaultProcessedOk
		_c.mutation.SetProcessedOk(v)
	}
	if _, ok := _c.mutation.ProcessedFailed(); !ok {
		v := runhistory.DefaultProcessedFailed
		_c.mutation.SetProcessedFailed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := runhistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunHistoryCreate) check() error {
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "RunHistory.started_at"`)}
	}
	if _, ok := _c.mutation.TotalFilingsFound(); !ok {
		return &ValidationError{Name: "total_filings_found", err: errors.New(`ent: missing required field "RunHistory.total_filings_found"`)}
	}
	if _, ok := _c.mutation.NewFilings(); !ok {
		return &ValidationError{Name: "new_filings", err: errors.New(`ent: missing required field "RunHistory.new_filings"`)}
	}
	if _, ok := _c.mutation.ProcessedOk(); !ok {
		return &ValidationError{Name: "processed_ok", err: errors.New(`ent: missing required field "RunHistory.processed_ok"`)}
	}
	if _, ok := _c.mutation.ProcessedFailed(); !ok {
		return &ValidationError{Name: "processed_failed", err: errors.New(`ent: missing required field "RunHistory.processed_failed"`)}
	}
	return nil
}

func (_c *RunHistoryCreate) sqlSave(ctx context.Context) (*RunHistory, error) {
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

func (_c *RunHistoryCreate) createSpec() (*RunHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &RunHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runhistory.Table, sqlgraph.NewFieldSpec(runhistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(runhistory.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(runhistory.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.TotalFilingsFound(); ok {
		_spec.SetField(runhistory.FieldTotalFilingsFound, field.TypeInt, value)
		_node.TotalFilingsFound = value
	}
	if value, ok := _c.mutation.NewFilings(); ok {
		_spec.SetField(runhistory.FieldNewFilings, field.TypeInt, value)
		_node.NewFilings = value
	}
	if value, ok := _c.mutation.ProcessedOk(); ok {
		_spec.SetField(runhistory.FieldProcessedOk, field.TypeInt, value)
		_node.ProcessedOk = value
	}
	if value, ok := _c.mutation.ProcessedFailed(); ok {
		_spec.SetField(runhistory.FieldProcessedFailed, field.TypeInt, value)
		_node.ProcessedFailed = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(runhistory.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = value
	}
	return _node, _spec
}

// RunHistoryCreateBulk is the builder for creating many RunHistory entities in bulk.
type RunHistoryCreateBulk struct {
	config
	err      error
	builders []*RunHistoryCreate
}

// Save creates the RunHistory entities in the database.
func (_c *RunHistoryCreateBulk) Save(ctx context.Context) ([]*RunHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunHistoryMutation)
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
func (_c *RunHistoryCreateBulk) SaveX(ctx context.Context) []*RunHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
