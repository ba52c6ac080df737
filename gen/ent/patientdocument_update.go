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
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
	"github.com/renalbridge/docpipeline/gen/ent/predicate"
	"github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
)

// PatientDocumentUpdate is the builder for updating PatientDocument entities.
type PatientDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdate) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdate) SetPatientID(v string) *PatientDocumentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillablePatientID(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *PatientDocumentUpdate) SetDocumentType(v string) *PatientDocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableDocumentType(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStorageBucket sets the "storage_bucket" field.
func (_u *PatientDocumentUpdate) SetStorageBucket(v string) *PatientDocumentUpdate {
	_u.mutation.SetStorageBucket(v)
	return _u
}

// SetNillableStorageBucket sets the "storage_bucket" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableStorageBucket(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetStorageBucket(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *PatientDocumentUpdate) SetStorageKey(v string) *PatientDocumentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableStorageKey(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *PatientDocumentUpdate) SetFilename(v string) *PatientDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableFilename(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *PatientDocumentUpdate) SetContentType(v string) *PatientDocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableContentType(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *PatientDocumentUpdate) SetFileSize(v int64) *PatientDocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableFileSize(v *int64) *PatientDocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *PatientDocumentUpdate) AddFileSize(v int64) *PatientDocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PatientDocumentUpdate) SetContentHash(v []byte) *PatientDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *PatientDocumentUpdate) ClearContentHash() *PatientDocumentUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *PatientDocumentUpdate) SetUploadedAt(v time.Time) *PatientDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableUploadedAt(v *time.Time) *PatientDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddStagingRecordIDs adds the "staging_records" edge to the StagingRecord entity by IDs.
func (_u *PatientDocumentUpdate) AddStagingRecordIDs(ids ...uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.AddStagingRecordIDs(ids...)
	return _u
}

// AddStagingRecords adds the "staging_records" edges to the StagingRecord entity.
func (_u *PatientDocumentUpdate) AddStagingRecords(v ...*StagingRecord) *PatientDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStagingRecordIDs(ids...)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdate) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearStagingRecords clears all "staging_records" edges to the StagingRecord entity.
func (_u *PatientDocumentUpdate) ClearStagingRecords() *PatientDocumentUpdate {
	_u.mutation.ClearStagingRecords()
	return _u
}

// RemoveStagingRecordIDs removes the "staging_records" edge to StagingRecord entities by IDs.
func (_u *PatientDocumentUpdate) RemoveStagingRecordIDs(ids ...uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.RemoveStagingRecordIDs(ids...)
	return _u
}

// RemoveStagingRecords removes "staging_records" edges to StagingRecord entities.
func (_u *PatientDocumentUpdate) RemoveStagingRecords(v ...*StagingRecord) *PatientDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStagingRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdate) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := patientdocument.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := patientdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageBucket(); ok {
		if err := patientdocument.StorageBucketValidator(v); err != nil {
			return &ValidationError{Name: "storage_bucket", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.storage_bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := patientdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := patientdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := patientdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := patientdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(patientdocument.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(patientdocument.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageBucket(); ok {
		_spec.SetField(patientdocument.FieldStorageBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(patientdocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(patientdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(patientdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(patientdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(patientdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(patientdocument.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(patientdocument.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(patientdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.StagingRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientdocument.StagingRecordsTable,
			Columns: []string{patientdocument.StagingRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagingRecordsIDs(); len(nodes) > 0 && !_u.mutation.StagingRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientdocument.StagingRecordsTable,
			Columns: []string{patientdocument.StagingRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagingRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientdocument.StagingRecordsTable,
			Columns: []string{patientdocument.StagingRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientDocumentUpdateOne is the builder for updating a single PatientDocument entity.
type PatientDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdateOne) SetPatientID(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillablePatientID(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *PatientDocumentUpdateOne) SetDocumentType(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableDocumentType(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStorageBucket sets the "storage_bucket" field.
func (_u *PatientDocumentUpdateOne) SetStorageBucket(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetStorageBucket(v)
	return _u
}

// SetNillableStorageBucket sets the "storage_bucket" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableStorageBucket(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetStorageBucket(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *PatientDocumentUpdateOne) SetStorageKey(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableStorageKey(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *PatientDocumentUpdateOne) SetFilename(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableFilename(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *PatientDocumentUpdateOne) SetContentType(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableContentType(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *PatientDocumentUpdateOne) SetFileSize(v int64) *PatientDocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableFileSize(v *int64) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *PatientDocumentUpdateOne) AddFileSize(v int64) *PatientDocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PatientDocumentUpdateOne) SetContentHash(v []byte) *PatientDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *PatientDocumentUpdateOne) ClearContentHash() *PatientDocumentUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *PatientDocumentUpdateOne) SetUploadedAt(v time.Time) *PatientDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddStagingRecordIDs adds the "staging_records" edge to the StagingRecord entity by IDs.
func (_u *PatientDocumentUpdateOne) AddStagingRecordIDs(ids ...uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.AddStagingRecordIDs(ids...)
	return _u
}

// AddStagingRecords adds the "staging_records" edges to the StagingRecord entity.
func (_u *PatientDocumentUpdateOne) AddStagingRecords(v ...*StagingRecord) *PatientDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStagingRecordIDs(ids...)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdateOne) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearStagingRecords clears all "staging_records" edges to the StagingRecord entity.
func (_u *PatientDocumentUpdateOne) ClearStagingRecords() *PatientDocumentUpdateOne {
	_u.mutation.ClearStagingRecords()
	return _u
}

// RemoveStagingRecordIDs removes the "staging_records" edge to StagingRecord entities by IDs.
func (_u *PatientDocumentUpdateOne) RemoveStagingRecordIDs(ids ...uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.RemoveStagingRecordIDs(ids...)
	return _u
}

// RemoveStagingRecords removes "staging_records" edges to StagingRecord entities.
func (_u *PatientDocumentUpdateOne) RemoveStagingRecords(v ...*StagingRecord) *PatientDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStagingRecordIDs(ids...)
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdateOne) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientDocumentUpdateOne) Select(field string, fields ...string) *PatientDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientDocument entity.
func (_u *PatientDocumentUpdateOne) Save(ctx context.Context) (*PatientDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) SaveX(ctx context.Context) *PatientDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := patientdocument.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := patientdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageBucket(); ok {
		if err := patientdocument.StorageBucketValidator(v); err != nil {
			return &ValidationError{Name: "storage_bucket", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.storage_bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := patientdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := patientdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := patientdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := patientdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientDocumentUpdateOne) sqlSave(ctx context.Context) (_node *PatientDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatientDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientdocument.FieldID)
		for _, f := range fields {
			if !patientdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patientdocument.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(patientdocument.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(patientdocument.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageBucket(); ok {
		_spec.SetField(patientdocument.FieldStorageBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(patientdocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(patientdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(patientdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(patientdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(patientdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(patientdocument.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(patientdocument.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(patientdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.StagingRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientdocument.StagingRecordsTable,
			Columns: []string{patientdocument.StagingRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagingRecordsIDs(); len(nodes) > 0 && !_u.mutation.StagingRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientdocument.StagingRecordsTable,
			Columns: []string{patientdocument.StagingRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagingRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientdocument.StagingRecordsTable,
			Columns: []string{patientdocument.StagingRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
