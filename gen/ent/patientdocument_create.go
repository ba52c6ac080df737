// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
	"github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
)

// PatientDocumentCreate is the builder for creating a PatientDocument entity.
type PatientDocumentCreate struct {
	config
	mutation *PatientDocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientDocumentCreate) SetPatientID(v string) *PatientDocumentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *PatientDocumentCreate) SetDocumentType(v string) *PatientDocumentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetStorageBucket sets the "storage_bucket" field.
func (_c *PatientDocumentCreate) SetStorageBucket(v string) *PatientDocumentCreate {
	_c.mutation.SetStorageBucket(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *PatientDocumentCreate) SetStorageKey(v string) *PatientDocumentCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *PatientDocumentCreate) SetFilename(v string) *PatientDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *PatientDocumentCreate) SetContentType(v string) *PatientDocumentCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *PatientDocumentCreate) SetFileSize(v int64) *PatientDocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *PatientDocumentCreate) SetContentHash(v []byte) *PatientDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *PatientDocumentCreate) SetUploadedAt(v time.Time) *PatientDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableUploadedAt(v *time.Time) *PatientDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientDocumentCreate) SetID(v uuid.UUID) *PatientDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableID(v *uuid.UUID) *PatientDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddStagingRecordIDs adds the "staging_records" edge to the StagingRecord entity by IDs.
func (_c *PatientDocumentCreate) AddStagingRecordIDs(ids ...uuid.UUID) *PatientDocumentCreate {
	_c.mutation.AddStagingRecordIDs(ids...)
	return _c
}

// AddStagingRecords adds the "staging_records" edges to the StagingRecord entity.
func (_c *PatientDocumentCreate) AddStagingRecords(v ...*StagingRecord) *PatientDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStagingRecordIDs(ids...)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_c *PatientDocumentCreate) Mutation() *PatientDocumentMutation {
	return _c.mutation
}

// Save creates the PatientDocument in the database.
func (_c *PatientDocumentCreate) Save(ctx context.Context) (*PatientDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientDocumentCreate) SaveX(ctx context.Context) *PatientDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientDocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := patientdocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientDocumentCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "PatientDocument.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := patientdocument.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.patient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "PatientDocument.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := patientdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageBucket(); !ok {
		return &ValidationError{Name: "storage_bucket", err: errors.New(`ent: missing required field "PatientDocument.storage_bucket"`)}
	}
	if v, ok := _c.mutation.StorageBucket(); ok {
		if err := patientdocument.StorageBucketValidator(v); err != nil {
			return &ValidationError{Name: "storage_bucket", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.storage_bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "PatientDocument.storage_key"`)}
	}
	if v, ok := _c.mutation.StorageKey(); ok {
		if err := patientdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.storage_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "PatientDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := patientdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "PatientDocument.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := patientdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "PatientDocument.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := patientdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "PatientDocument.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "PatientDocument.uploaded_at"`)}
	}
	return nil
}

func (_c *PatientDocumentCreate) sqlSave(ctx context.Context) (*PatientDocument, error) {
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

func (_c *PatientDocumentCreate) createSpec() (*PatientDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientdocument.Table, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(patientdocument.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(patientdocument.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.StorageBucket(); ok {
		_spec.SetField(patientdocument.FieldStorageBucket, field.TypeString, value)
		_node.StorageBucket = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(patientdocument.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(patientdocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(patientdocument.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(patientdocument.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(patientdocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(patientdocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.StagingRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientDocument.Create().
//		SetPatientID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientDocumentUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientDocumentCreate) OnConflict(opts ...sql.ConflictOption) *PatientDocumentUpsertOne {
	_c.conflict = opts
	return &PatientDocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientDocumentCreate) OnConflictColumns(columns ...string) *PatientDocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientDocumentUpsertOne{
		create: _c,
	}
}

type (
	// PatientDocumentUpsertOne is the builder for "upsert"-ing
	//  one PatientDocument node.
	PatientDocumentUpsertOne struct {
		create *PatientDocumentCreate
	}

	// PatientDocumentUpsert is the "OnConflict" setter.
	PatientDocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *PatientDocumentUpsert) SetPatientID(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdatePatientID() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldPatientID)
	return u
}

// SetDocumentType sets the "document_type" field.
func (u *PatientDocumentUpsert) SetDocumentType(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldDocumentType, v)
	return u
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateDocumentType() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldDocumentType)
	return u
}

// SetStorageBucket sets the "storage_bucket" field.
func (u *PatientDocumentUpsert) SetStorageBucket(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldStorageBucket, v)
	return u
}

// UpdateStorageBucket sets the "storage_bucket" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateStorageBucket() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldStorageBucket)
	return u
}

// SetStorageKey sets the "storage_key" field.
func (u *PatientDocumentUpsert) SetStorageKey(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldStorageKey, v)
	return u
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateStorageKey() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldStorageKey)
	return u
}

// SetFilename sets the "filename" field.
func (u *PatientDocumentUpsert) SetFilename(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateFilename() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldFilename)
	return u
}

// SetContentType sets the "content_type" field.
func (u *PatientDocumentUpsert) SetContentType(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateContentType() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldContentType)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *PatientDocumentUpsert) SetFileSize(v int64) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateFileSize() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *PatientDocumentUpsert) AddFileSize(v int64) *PatientDocumentUpsert {
	u.Add(patientdocument.FieldFileSize, v)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *PatientDocumentUpsert) SetContentHash(v []byte) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateContentHash() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldContentHash)
	return u
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *PatientDocumentUpsert) ClearContentHash() *PatientDocumentUpsert {
	u.SetNull(patientdocument.FieldContentHash)
	return u
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *PatientDocumentUpsert) SetUploadedAt(v time.Time) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldUploadedAt, v)
	return u
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateUploadedAt() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldUploadedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientDocumentUpsertOne) UpdateNewValues() *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientdocument.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientDocumentUpsertOne) Ignore() *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientDocumentUpsertOne) DoNothing() *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientDocumentCreate.OnConflict
// documentation for more info.
func (u *PatientDocumentUpsertOne) Update(set func(*PatientDocumentUpsert)) *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientDocumentUpsertOne) SetPatientID(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdatePatientID() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdatePatientID()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *PatientDocumentUpsertOne) SetDocumentType(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateDocumentType() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateDocumentType()
	})
}

// SetStorageBucket sets the "storage_bucket" field.
func (u *PatientDocumentUpsertOne) SetStorageBucket(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetStorageBucket(v)
	})
}

// UpdateStorageBucket sets the "storage_bucket" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateStorageBucket() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateStorageBucket()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *PatientDocumentUpsertOne) SetStorageKey(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateStorageKey() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateStorageKey()
	})
}

// SetFilename sets the "filename" field.
func (u *PatientDocumentUpsertOne) SetFilename(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateFilename() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetContentType sets the "content_type" field.
func (u *PatientDocumentUpsertOne) SetContentType(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateContentType() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateContentType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *PatientDocumentUpsertOne) SetFileSize(v int64) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *PatientDocumentUpsertOne) AddFileSize(v int64) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateFileSize() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateFileSize()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *PatientDocumentUpsertOne) SetContentHash(v []byte) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateContentHash() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *PatientDocumentUpsertOne) ClearContentHash() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *PatientDocumentUpsertOne) SetUploadedAt(v time.Time) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateUploadedAt() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *PatientDocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientDocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientDocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientDocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PatientDocumentUpsertOne.ID is not supported by MySQL driver. Use PatientDocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientDocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientDocumentCreateBulk is the builder for creating many PatientDocument entities in bulk.
type PatientDocumentCreateBulk struct {
	config
	err      error
	builders []*PatientDocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientDocument entities in the database.
func (_c *PatientDocumentCreateBulk) Save(ctx context.Context) ([]*PatientDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientDocumentMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *PatientDocumentCreateBulk) SaveX(ctx context.Context) []*PatientDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientDocument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientDocumentUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientDocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientDocumentUpsertBulk {
	_c.conflict = opts
	return &PatientDocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientDocumentCreateBulk) OnConflictColumns(columns ...string) *PatientDocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientDocumentUpsertBulk{
		create: _c,
	}
}

// PatientDocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientDocument nodes.
type PatientDocumentUpsertBulk struct {
	create *PatientDocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientDocumentUpsertBulk) UpdateNewValues() *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientdocument.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientDocumentUpsertBulk) Ignore() *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientDocumentUpsertBulk) DoNothing() *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientDocumentCreateBulk.OnConflict
// documentation for more info.
func (u *PatientDocumentUpsertBulk) Update(set func(*PatientDocumentUpsert)) *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientDocumentUpsertBulk) SetPatientID(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdatePatientID() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdatePatientID()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *PatientDocumentUpsertBulk) SetDocumentType(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateDocumentType() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateDocumentType()
	})
}

// SetStorageBucket sets the "storage_bucket" field.
func (u *PatientDocumentUpsertBulk) SetStorageBucket(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetStorageBucket(v)
	})
}

// UpdateStorageBucket sets the "storage_bucket" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateStorageBucket() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateStorageBucket()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *PatientDocumentUpsertBulk) SetStorageKey(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateStorageKey() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateStorageKey()
	})
}

// SetFilename sets the "filename" field.
func (u *PatientDocumentUpsertBulk) SetFilename(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateFilename() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetContentType sets the "content_type" field.
func (u *PatientDocumentUpsertBulk) SetContentType(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateContentType() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateContentType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *PatientDocumentUpsertBulk) SetFileSize(v int64) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *PatientDocumentUpsertBulk) AddFileSize(v int64) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateFileSize() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateFileSize()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *PatientDocumentUpsertBulk) SetContentHash(v []byte) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateContentHash() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *PatientDocumentUpsertBulk) ClearContentHash() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearContentHash()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *PatientDocumentUpsertBulk) SetUploadedAt(v time.Time) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateUploadedAt() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *PatientDocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PatientDocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientDocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientDocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
