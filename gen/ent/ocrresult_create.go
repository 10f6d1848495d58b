// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/werb210/ocr-reconciler/gen/ent/document"
	"github.com/werb210/ocr-reconciler/gen/ent/ocrresult"
)

// OCRResultCreate is the builder for creating a OCRResult entity.
type OCRResultCreate struct {
	config
	mutation *OCRResultMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *OCRResultCreate) SetDocumentID(v uuid.UUID) *OCRResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *OCRResultCreate) SetApplicationID(v string) *OCRResultCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetFieldKey sets the "field_key" field.
func (_c *OCRResultCreate) SetFieldKey(v string) *OCRResultCreate {
	_c.mutation.SetFieldKey(v)
	return _c
}

// SetExtractedValue sets the "extracted_value" field.
func (_c *OCRResultCreate) SetExtractedValue(v string) *OCRResultCreate {
	_c.mutation.SetExtractedValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *OCRResultCreate) SetConfidence(v float32) *OCRResultCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSourcePage sets the "source_page" field.
func (_c *OCRResultCreate) SetSourcePage(v int) *OCRResultCreate {
	_c.mutation.SetSourcePage(v)
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *OCRResultCreate) SetExtractedAt(v time.Time) *OCRResultCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableExtractedAt(v *time.Time) *OCRResultCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *OCRResultCreate) SetRunID(v string) *OCRResultCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *OCRResultCreate) SetVersion(v int) *OCRResultCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OCRResultCreate) SetID(v uuid.UUID) *OCRResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableID(v *uuid.UUID) *OCRResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *OCRResultCreate) SetDocument(v *Document) *OCRResultCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the OCRResultMutation object of the builder.
func (_c *OCRResultCreate) Mutation() *OCRResultMutation {
	return _c.mutation
}

// Save creates the OCRResult in the database.
func (_c *OCRResultCreate) Save(ctx context.Context) (*OCRResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OCRResultCreate) SaveX(ctx context.Context) *OCRResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OCRResultCreate) defaults() {
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := ocrresult.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OCRResultCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "OCRResult.document_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "OCRResult.application_id"`)}
	}
	if v, ok := _c.mutation.ApplicationID(); ok {
		if err := ocrresult.ApplicationIDValidator(v); err != nil {
			return &ValidationError{Name: "application_id", err: fmt.Errorf(`ent: validator failed for field "OCRResult.application_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldKey(); !ok {
		return &ValidationError{Name: "field_key", err: errors.New(`ent: missing required field "OCRResult.field_key"`)}
	}
	if v, ok := _c.mutation.FieldKey(); ok {
		if err := ocrresult.FieldKeyValidator(v); err != nil {
			return &ValidationError{Name: "field_key", err: fmt.Errorf(`ent: validator failed for field "OCRResult.field_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedValue(); !ok {
		return &ValidationError{Name: "extracted_value", err: errors.New(`ent: missing required field "OCRResult.extracted_value"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "OCRResult.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := ocrresult.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "OCRResult.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePage(); !ok {
		return &ValidationError{Name: "source_page", err: errors.New(`ent: missing required field "OCRResult.source_page"`)}
	}
	if v, ok := _c.mutation.SourcePage(); ok {
		if err := ocrresult.SourcePageValidator(v); err != nil {
			return &ValidationError{Name: "source_page", err: fmt.Errorf(`ent: validator failed for field "OCRResult.source_page": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "OCRResult.extracted_at"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "OCRResult.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := ocrresult.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "OCRResult.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "OCRResult.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := ocrresult.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "OCRResult.version": %w`, err)}
		}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "OCRResult.document"`)}
	}
	return nil
}

func (_c *OCRResultCreate) sqlSave(ctx context.Context) (*OCRResult, error) {
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

func (_c *OCRResultCreate) createSpec() (*OCRResult, *sqlgraph.CreateSpec) {
	var (
		_node = &OCRResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrresult.Table, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(ocrresult.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.FieldKey(); ok {
		_spec.SetField(ocrresult.FieldFieldKey, field.TypeString, value)
		_node.FieldKey = value
	}
	if value, ok := _c.mutation.ExtractedValue(); ok {
		_spec.SetField(ocrresult.FieldExtractedValue, field.TypeString, value)
		_node.ExtractedValue = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(ocrresult.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourcePage(); ok {
		_spec.SetField(ocrresult.FieldSourcePage, field.TypeInt, value)
		_node.SourcePage = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(ocrresult.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(ocrresult.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(ocrresult.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrresult.DocumentTable,
			Columns: []string{ocrresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OCRResultCreateBulk is the builder for creating many OCRResult entities in bulk.
type OCRResultCreateBulk struct {
	config
	err      error
	builders []*OCRResultCreate
}

// Save creates the OCRResult entities in the database.
func (_c *OCRResultCreateBulk) Save(ctx context.Context) ([]*OCRResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OCRResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OCRResultMutation)
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
func (_c *OCRResultCreateBulk) SaveX(ctx context.Context) []*OCRResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
