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
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
	"github.com/renalbridge/docpipeline/gen/ent/predicate"
	"github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePatientDocument = "PatientDocument"
	TypeStagingRecord   = "StagingRecord"
)

// PatientDocumentMutation represents an operation that mutates the PatientDocument nodes in the graph.
type PatientDocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	patient_id             *string
	document_type          *string
	storage_bucket         *string
	storage_key            *string
	filename               *string
	content_type           *string
	file_size              *int64
	addfile_size           *int64
	content_hash           *[]byte
	uploaded_at            *time.Time
	clearedFields          map[string]struct{}
	staging_records        map[uuid.UUID]struct{}
	removedstaging_records map[uuid.UUID]struct{}
	clearedstaging_records bool
	done                   bool
	oldValue               func(context.Context) (*PatientDocument, error)
	predicates             []predicate.PatientDocument
}

var _ ent.Mutation = (*PatientDocumentMutation)(nil)

// patientdocumentOption allows management of the mutation configuration using functional options.
type patientdocumentOption func(*PatientDocumentMutation)

// newPatientDocumentMutation creates new mutation for the PatientDocument entity.
func newPatientDocumentMutation(c config, op Op, opts ...patientdocumentOption) *PatientDocumentMutation {
	m := &PatientDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypePatientDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientDocumentID sets the ID field of the mutation.
func withPatientDocumentID(id uuid.UUID) patientdocumentOption {
	return func(m *PatientDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientDocument
		)
		m.oldValue = func(ctx context.Context) (*PatientDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientDocument sets the old PatientDocument of the mutation.
func withPatientDocument(node *PatientDocument) patientdocumentOption {
	return func(m *PatientDocumentMutation) {
		m.oldValue = func(context.Context) (*PatientDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientDocument entities.
func (m *PatientDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *PatientDocumentMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PatientDocumentMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PatientDocumentMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetDocumentType sets the "document_type" field.
func (m *PatientDocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *PatientDocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *PatientDocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetStorageBucket sets the "storage_bucket" field.
func (m *PatientDocumentMutation) SetStorageBucket(s string) {
	m.storage_bucket = &s
}

// StorageBucket returns the value of the "storage_bucket" field in the mutation.
func (m *PatientDocumentMutation) StorageBucket() (r string, exists bool) {
	v := m.storage_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageBucket returns the old "storage_bucket" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldStorageBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageBucket: %w", err)
	}
	return oldValue.StorageBucket, nil
}

// ResetStorageBucket resets all changes to the "storage_bucket" field.
func (m *PatientDocumentMutation) ResetStorageBucket() {
	m.storage_bucket = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *PatientDocumentMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *PatientDocumentMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *PatientDocumentMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetFilename sets the "filename" field.
func (m *PatientDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *PatientDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
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

// ResetFilename resets all changes to the "filename" field.
func (m *PatientDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *PatientDocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *PatientDocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
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

// ResetContentType resets all changes to the "content_type" field.
func (m *PatientDocumentMutation) ResetContentType() {
	m.content_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *PatientDocumentMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *PatientDocumentMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *PatientDocumentMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *PatientDocumentMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *PatientDocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PatientDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PatientDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *PatientDocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[patientdocument.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *PatientDocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[patientdocument.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PatientDocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, patientdocument.FieldContentHash)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *PatientDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *PatientDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *PatientDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddStagingRecordIDs adds the "staging_records" edge to the StagingRecord entity by ids.
func (m *PatientDocumentMutation) AddStagingRecordIDs(ids ...uuid.UUID) {
	if m.staging_records == nil {
		m.staging_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.staging_records[ids[i]] = struct{}{}
	}
}

// ClearStagingRecords clears the "staging_records" edge to the StagingRecord entity.
func (m *PatientDocumentMutation) ClearStagingRecords() {
	m.clearedstaging_records = true
}

// StagingRecordsCleared reports if the "staging_records" edge to the StagingRecord entity was cleared.
func (m *PatientDocumentMutation) StagingRecordsCleared() bool {
	return m.clearedstaging_records
}

// RemoveStagingRecordIDs removes the "staging_records" edge to the StagingRecord entity by IDs.
func (m *PatientDocumentMutation) RemoveStagingRecordIDs(ids ...uuid.UUID) {
	if m.removedstaging_records == nil {
		m.removedstaging_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.staging_records, ids[i])
		m.removedstaging_records[ids[i]] = struct{}{}
	}
}

// RemovedStagingRecords returns the removed IDs of the "staging_records" edge to the StagingRecord entity.
func (m *PatientDocumentMutation) RemovedStagingRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedstaging_records {
		ids = append(ids, id)
	}
	return
}

// StagingRecordsIDs returns the "staging_records" edge IDs in the mutation.
func (m *PatientDocumentMutation) StagingRecordsIDs() (ids []uuid.UUID) {
	for id := range m.staging_records {
		ids = append(ids, id)
	}
	return
}

// ResetStagingRecords resets all changes to the "staging_records" edge.
func (m *PatientDocumentMutation) ResetStagingRecords() {
	m.staging_records = nil
	m.clearedstaging_records = false
	m.removedstaging_records = nil
}

// Where appends a list predicates to the PatientDocumentMutation builder.
func (m *PatientDocumentMutation) Where(ps ...predicate.PatientDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientDocument).
func (m *PatientDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientDocumentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.patient_id != nil {
		fields = append(fields, patientdocument.FieldPatientID)
	}
	if m.document_type != nil {
		fields = append(fields, patientdocument.FieldDocumentType)
	}
	if m.storage_bucket != nil {
		fields = append(fields, patientdocument.FieldStorageBucket)
	}
	if m.storage_key != nil {
		fields = append(fields, patientdocument.FieldStorageKey)
	}
	if m.filename != nil {
		fields = append(fields, patientdocument.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, patientdocument.FieldContentType)
	}
	if m.file_size != nil {
		fields = append(fields, patientdocument.FieldFileSize)
	}
	if m.content_hash != nil {
		fields = append(fields, patientdocument.FieldContentHash)
	}
	if m.uploaded_at != nil {
		fields = append(fields, patientdocument.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientdocument.FieldPatientID:
		return m.PatientID()
	case patientdocument.FieldDocumentType:
		return m.DocumentType()
	case patientdocument.FieldStorageBucket:
		return m.StorageBucket()
	case patientdocument.FieldStorageKey:
		return m.StorageKey()
	case patientdocument.FieldFilename:
		return m.Filename()
	case patientdocument.FieldContentType:
		return m.ContentType()
	case patientdocument.FieldFileSize:
		return m.FileSize()
	case patientdocument.FieldContentHash:
		return m.ContentHash()
	case patientdocument.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientdocument.FieldPatientID:
		return m.OldPatientID(ctx)
	case patientdocument.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case patientdocument.FieldStorageBucket:
		return m.OldStorageBucket(ctx)
	case patientdocument.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case patientdocument.FieldFilename:
		return m.OldFilename(ctx)
	case patientdocument.FieldContentType:
		return m.OldContentType(ctx)
	case patientdocument.FieldFileSize:
		return m.OldFileSize(ctx)
	case patientdocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case patientdocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatientDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientdocument.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case patientdocument.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case patientdocument.FieldStorageBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageBucket(v)
		return nil
	case patientdocument.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case patientdocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case patientdocument.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case patientdocument.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case patientdocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case patientdocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatientDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, patientdocument.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patientdocument.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patientdocument.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown PatientDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientdocument.FieldContentHash) {
		fields = append(fields, patientdocument.FieldContentHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientDocumentMutation) ClearField(name string) error {
	switch name {
	case patientdocument.FieldContentHash:
		m.ClearContentHash()
		return nil
	}
	return fmt.Errorf("unknown PatientDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientDocumentMutation) ResetField(name string) error {
	switch name {
	case patientdocument.FieldPatientID:
		m.ResetPatientID()
		return nil
	case patientdocument.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case patientdocument.FieldStorageBucket:
		m.ResetStorageBucket()
		return nil
	case patientdocument.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case patientdocument.FieldFilename:
		m.ResetFilename()
		return nil
	case patientdocument.FieldContentType:
		m.ResetContentType()
		return nil
	case patientdocument.FieldFileSize:
		m.ResetFileSize()
		return nil
	case patientdocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case patientdocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown PatientDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.staging_records != nil {
		edges = append(edges, patientdocument.EdgeStagingRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patientdocument.EdgeStagingRecords:
		ids := make([]ent.Value, 0, len(m.staging_records))
		for id := range m.staging_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstaging_records != nil {
		edges = append(edges, patientdocument.EdgeStagingRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patientdocument.EdgeStagingRecords:
		ids := make([]ent.Value, 0, len(m.removedstaging_records))
		for id := range m.removedstaging_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstaging_records {
		edges = append(edges, patientdocument.EdgeStagingRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case patientdocument.EdgeStagingRecords:
		return m.clearedstaging_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientDocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PatientDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientDocumentMutation) ResetEdge(name string) error {
	switch name {
	case patientdocument.EdgeStagingRecords:
		m.ResetStagingRecords()
		return nil
	}
	return fmt.Errorf("unknown PatientDocument edge %s", name)
}

// StagingRecordMutation represents an operation that mutates the StagingRecord nodes in the graph.
type StagingRecordMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	patient_id             *string
	document_type          *string
	final_document_type    *string
	storage_bucket         *string
	storage_key            *string
	extracted_fields       *json.RawMessage
	appendextracted_fields json.RawMessage
	lab_date               *time.Time
	extraction_error       *string
	status                 *string
	reviewed_by            *string
	reviewed_at            *time.Time
	admin_notes            *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	source_document        *uuid.UUID
	clearedsource_document bool
	done                   bool
	oldValue               func(context.Context) (*StagingRecord, error)
	predicates             []predicate.StagingRecord
}

var _ ent.Mutation = (*StagingRecordMutation)(nil)

// stagingrecordOption allows management of the mutation configuration using functional options.
type stagingrecordOption func(*StagingRecordMutation)

// newStagingRecordMutation creates new mutation for the StagingRecord entity.
func newStagingRecordMutation(c config, op Op, opts ...stagingrecordOption) *StagingRecordMutation {
	m := &StagingRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeStagingRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStagingRecordID sets the ID field of the mutation.
func withStagingRecordID(id uuid.UUID) stagingrecordOption {
	return func(m *StagingRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *StagingRecord
		)
		m.oldValue = func(ctx context.Context) (*StagingRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StagingRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStagingRecord sets the old StagingRecord of the mutation.
func withStagingRecord(node *StagingRecord) stagingrecordOption {
	return func(m *StagingRecordMutation) {
		m.oldValue = func(context.Context) (*StagingRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StagingRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StagingRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StagingRecord entities.
func (m *StagingRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StagingRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StagingRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StagingRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *StagingRecordMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *StagingRecordMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *StagingRecordMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetSourceDocumentID sets the "source_document_id" field.
func (m *StagingRecordMutation) SetSourceDocumentID(u uuid.UUID) {
	m.source_document = &u
}

// SourceDocumentID returns the value of the "source_document_id" field in the mutation.
func (m *StagingRecordMutation) SourceDocumentID() (r uuid.UUID, exists bool) {
	v := m.source_document
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocumentID returns the old "source_document_id" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldSourceDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocumentID: %w", err)
	}
	return oldValue.SourceDocumentID, nil
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (m *StagingRecordMutation) ClearSourceDocumentID() {
	m.source_document = nil
	m.clearedFields[stagingrecord.FieldSourceDocumentID] = struct{}{}
}

// SourceDocumentIDCleared returns if the "source_document_id" field was cleared in this mutation.
func (m *StagingRecordMutation) SourceDocumentIDCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldSourceDocumentID]
	return ok
}

// ResetSourceDocumentID resets all changes to the "source_document_id" field.
func (m *StagingRecordMutation) ResetSourceDocumentID() {
	m.source_document = nil
	delete(m.clearedFields, stagingrecord.FieldSourceDocumentID)
}

// SetDocumentType sets the "document_type" field.
func (m *StagingRecordMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *StagingRecordMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *StagingRecordMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetFinalDocumentType sets the "final_document_type" field.
func (m *StagingRecordMutation) SetFinalDocumentType(s string) {
	m.final_document_type = &s
}

// FinalDocumentType returns the value of the "final_document_type" field in the mutation.
func (m *StagingRecordMutation) FinalDocumentType() (r string, exists bool) {
	v := m.final_document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalDocumentType returns the old "final_document_type" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldFinalDocumentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalDocumentType: %w", err)
	}
	return oldValue.FinalDocumentType, nil
}

// ClearFinalDocumentType clears the value of the "final_document_type" field.
func (m *StagingRecordMutation) ClearFinalDocumentType() {
	m.final_document_type = nil
	m.clearedFields[stagingrecord.FieldFinalDocumentType] = struct{}{}
}

// FinalDocumentTypeCleared returns if the "final_document_type" field was cleared in this mutation.
func (m *StagingRecordMutation) FinalDocumentTypeCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldFinalDocumentType]
	return ok
}

// ResetFinalDocumentType resets all changes to the "final_document_type" field.
func (m *StagingRecordMutation) ResetFinalDocumentType() {
	m.final_document_type = nil
	delete(m.clearedFields, stagingrecord.FieldFinalDocumentType)
}

// SetStorageBucket sets the "storage_bucket" field.
func (m *StagingRecordMutation) SetStorageBucket(s string) {
	m.storage_bucket = &s
}

// StorageBucket returns the value of the "storage_bucket" field in the mutation.
func (m *StagingRecordMutation) StorageBucket() (r string, exists bool) {
	v := m.storage_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageBucket returns the old "storage_bucket" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldStorageBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageBucket: %w", err)
	}
	return oldValue.StorageBucket, nil
}

// ResetStorageBucket resets all changes to the "storage_bucket" field.
func (m *StagingRecordMutation) ResetStorageBucket() {
	m.storage_bucket = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *StagingRecordMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *StagingRecordMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *StagingRecordMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *StagingRecordMutation) SetExtractedFields(jm json.RawMessage) {
	m.extracted_fields = &jm
	m.appendextracted_fields = nil
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *StagingRecordMutation) ExtractedFields() (r json.RawMessage, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldExtractedFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// AppendExtractedFields adds jm to the "extracted_fields" field.
func (m *StagingRecordMutation) AppendExtractedFields(jm json.RawMessage) {
	m.appendextracted_fields = append(m.appendextracted_fields, jm...)
}

// AppendedExtractedFields returns the list of values that were appended to the "extracted_fields" field in this mutation.
func (m *StagingRecordMutation) AppendedExtractedFields() (json.RawMessage, bool) {
	if len(m.appendextracted_fields) == 0 {
		return nil, false
	}
	return m.appendextracted_fields, true
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *StagingRecordMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	m.clearedFields[stagingrecord.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *StagingRecordMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *StagingRecordMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	delete(m.clearedFields, stagingrecord.FieldExtractedFields)
}

// SetLabDate sets the "lab_date" field.
func (m *StagingRecordMutation) SetLabDate(t time.Time) {
	m.lab_date = &t
}

// LabDate returns the value of the "lab_date" field in the mutation.
func (m *StagingRecordMutation) LabDate() (r time.Time, exists bool) {
	v := m.lab_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLabDate returns the old "lab_date" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldLabDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabDate: %w", err)
	}
	return oldValue.LabDate, nil
}

// ClearLabDate clears the value of the "lab_date" field.
func (m *StagingRecordMutation) ClearLabDate() {
	m.lab_date = nil
	m.clearedFields[stagingrecord.FieldLabDate] = struct{}{}
}

// LabDateCleared returns if the "lab_date" field was cleared in this mutation.
func (m *StagingRecordMutation) LabDateCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldLabDate]
	return ok
}

// ResetLabDate resets all changes to the "lab_date" field.
func (m *StagingRecordMutation) ResetLabDate() {
	m.lab_date = nil
	delete(m.clearedFields, stagingrecord.FieldLabDate)
}

// SetExtractionError sets the "extraction_error" field.
func (m *StagingRecordMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *StagingRecordMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldExtractionError(ctx context.Context) (v *string, err error) {
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
func (m *StagingRecordMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[stagingrecord.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *StagingRecordMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *StagingRecordMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, stagingrecord.FieldExtractionError)
}

// SetStatus sets the "status" field.
func (m *StagingRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StagingRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StagingRecordMutation) ResetStatus() {
	m.status = nil
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *StagingRecordMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *StagingRecordMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *StagingRecordMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[stagingrecord.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *StagingRecordMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *StagingRecordMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, stagingrecord.FieldReviewedBy)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *StagingRecordMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *StagingRecordMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *StagingRecordMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[stagingrecord.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *StagingRecordMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *StagingRecordMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, stagingrecord.FieldReviewedAt)
}

// SetAdminNotes sets the "admin_notes" field.
func (m *StagingRecordMutation) SetAdminNotes(s string) {
	m.admin_notes = &s
}

// AdminNotes returns the value of the "admin_notes" field in the mutation.
func (m *StagingRecordMutation) AdminNotes() (r string, exists bool) {
	v := m.admin_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminNotes returns the old "admin_notes" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldAdminNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminNotes: %w", err)
	}
	return oldValue.AdminNotes, nil
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (m *StagingRecordMutation) ClearAdminNotes() {
	m.admin_notes = nil
	m.clearedFields[stagingrecord.FieldAdminNotes] = struct{}{}
}

// AdminNotesCleared returns if the "admin_notes" field was cleared in this mutation.
func (m *StagingRecordMutation) AdminNotesCleared() bool {
	_, ok := m.clearedFields[stagingrecord.FieldAdminNotes]
	return ok
}

// ResetAdminNotes resets all changes to the "admin_notes" field.
func (m *StagingRecordMutation) ResetAdminNotes() {
	m.admin_notes = nil
	delete(m.clearedFields, stagingrecord.FieldAdminNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *StagingRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StagingRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StagingRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StagingRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StagingRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StagingRecord entity.
// If the StagingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StagingRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StagingRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSourceDocument clears the "source_document" edge to the PatientDocument entity.
func (m *StagingRecordMutation) ClearSourceDocument() {
	m.clearedsource_document = true
	m.clearedFields[stagingrecord.FieldSourceDocumentID] = struct{}{}
}

// SourceDocumentCleared reports if the "source_document" edge to the PatientDocument entity was cleared.
func (m *StagingRecordMutation) SourceDocumentCleared() bool {
	return m.SourceDocumentIDCleared() || m.clearedsource_document
}

// SourceDocumentIDs returns the "source_document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceDocumentID instead. It exists only for internal usage by the builders.
func (m *StagingRecordMutation) SourceDocumentIDs() (ids []uuid.UUID) {
	if id := m.source_document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSourceDocument resets all changes to the "source_document" edge.
func (m *StagingRecordMutation) ResetSourceDocument() {
	m.source_document = nil
	m.clearedsource_document = false
}

// Where appends a list predicates to the StagingRecordMutation builder.
func (m *StagingRecordMutation) Where(ps ...predicate.StagingRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StagingRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StagingRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StagingRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StagingRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StagingRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StagingRecord).
func (m *StagingRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StagingRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.patient_id != nil {
		fields = append(fields, stagingrecord.FieldPatientID)
	}
	if m.source_document != nil {
		fields = append(fields, stagingrecord.FieldSourceDocumentID)
	}
	if m.document_type != nil {
		fields = append(fields, stagingrecord.FieldDocumentType)
	}
	if m.final_document_type != nil {
		fields = append(fields, stagingrecord.FieldFinalDocumentType)
	}
	if m.storage_bucket != nil {
		fields = append(fields, stagingrecord.FieldStorageBucket)
	}
	if m.storage_key != nil {
		fields = append(fields, stagingrecord.FieldStorageKey)
	}
	if m.extracted_fields != nil {
		fields = append(fields, stagingrecord.FieldExtractedFields)
	}
	if m.lab_date != nil {
		fields = append(fields, stagingrecord.FieldLabDate)
	}
	if m.extraction_error != nil {
		fields = append(fields, stagingrecord.FieldExtractionError)
	}
	if m.status != nil {
		fields = append(fields, stagingrecord.FieldStatus)
	}
	if m.reviewed_by != nil {
		fields = append(fields, stagingrecord.FieldReviewedBy)
	}
	if m.reviewed_at != nil {
		fields = append(fields, stagingrecord.FieldReviewedAt)
	}
	if m.admin_notes != nil {
		fields = append(fields, stagingrecord.FieldAdminNotes)
	}
	if m.created_at != nil {
		fields = append(fields, stagingrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagingrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StagingRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagingrecord.FieldPatientID:
		return m.PatientID()
	case stagingrecord.FieldSourceDocumentID:
		return m.SourceDocumentID()
	case stagingrecord.FieldDocumentType:
		return m.DocumentType()
	case stagingrecord.FieldFinalDocumentType:
		return m.FinalDocumentType()
	case stagingrecord.FieldStorageBucket:
		return m.StorageBucket()
	case stagingrecord.FieldStorageKey:
		return m.StorageKey()
	case stagingrecord.FieldExtractedFields:
		return m.ExtractedFields()
	case stagingrecord.FieldLabDate:
		return m.LabDate()
	case stagingrecord.FieldExtractionError:
		return m.ExtractionError()
	case stagingrecord.FieldStatus:
		return m.Status()
	case stagingrecord.FieldReviewedBy:
		return m.ReviewedBy()
	case stagingrecord.FieldReviewedAt:
		return m.ReviewedAt()
	case stagingrecord.FieldAdminNotes:
		return m.AdminNotes()
	case stagingrecord.FieldCreatedAt:
		return m.CreatedAt()
	case stagingrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StagingRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagingrecord.FieldPatientID:
		return m.OldPatientID(ctx)
	case stagingrecord.FieldSourceDocumentID:
		return m.OldSourceDocumentID(ctx)
	case stagingrecord.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case stagingrecord.FieldFinalDocumentType:
		return m.OldFinalDocumentType(ctx)
	case stagingrecord.FieldStorageBucket:
		return m.OldStorageBucket(ctx)
	case stagingrecord.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case stagingrecord.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case stagingrecord.FieldLabDate:
		return m.OldLabDate(ctx)
	case stagingrecord.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case stagingrecord.FieldStatus:
		return m.OldStatus(ctx)
	case stagingrecord.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case stagingrecord.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case stagingrecord.FieldAdminNotes:
		return m.OldAdminNotes(ctx)
	case stagingrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagingrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StagingRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagingrecord.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case stagingrecord.FieldSourceDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocumentID(v)
		return nil
	case stagingrecord.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case stagingrecord.FieldFinalDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalDocumentType(v)
		return nil
	case stagingrecord.FieldStorageBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageBucket(v)
		return nil
	case stagingrecord.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case stagingrecord.FieldExtractedFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case stagingrecord.FieldLabDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabDate(v)
		return nil
	case stagingrecord.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case stagingrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stagingrecord.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case stagingrecord.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case stagingrecord.FieldAdminNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminNotes(v)
		return nil
	case stagingrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagingrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StagingRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StagingRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StagingRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StagingRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StagingRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StagingRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagingrecord.FieldSourceDocumentID) {
		fields = append(fields, stagingrecord.FieldSourceDocumentID)
	}
	if m.FieldCleared(stagingrecord.FieldFinalDocumentType) {
		fields = append(fields, stagingrecord.FieldFinalDocumentType)
	}
	if m.FieldCleared(stagingrecord.FieldExtractedFields) {
		fields = append(fields, stagingrecord.FieldExtractedFields)
	}
	if m.FieldCleared(stagingrecord.FieldLabDate) {
		fields = append(fields, stagingrecord.FieldLabDate)
	}
	if m.FieldCleared(stagingrecord.FieldExtractionError) {
		fields = append(fields, stagingrecord.FieldExtractionError)
	}
	if m.FieldCleared(stagingrecord.FieldReviewedBy) {
		fields = append(fields, stagingrecord.FieldReviewedBy)
	}
	if m.FieldCleared(stagingrecord.FieldReviewedAt) {
		fields = append(fields, stagingrecord.FieldReviewedAt)
	}
	if m.FieldCleared(stagingrecord.FieldAdminNotes) {
		fields = append(fields, stagingrecord.FieldAdminNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StagingRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StagingRecordMutation) ClearField(name string) error {
	switch name {
	case stagingrecord.FieldSourceDocumentID:
		m.ClearSourceDocumentID()
		return nil
	case stagingrecord.FieldFinalDocumentType:
		m.ClearFinalDocumentType()
		return nil
	case stagingrecord.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case stagingrecord.FieldLabDate:
		m.ClearLabDate()
		return nil
	case stagingrecord.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	case stagingrecord.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case stagingrecord.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case stagingrecord.FieldAdminNotes:
		m.ClearAdminNotes()
		return nil
	}
	return fmt.Errorf("unknown StagingRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StagingRecordMutation) ResetField(name string) error {
	switch name {
	case stagingrecord.FieldPatientID:
		m.ResetPatientID()
		return nil
	case stagingrecord.FieldSourceDocumentID:
		m.ResetSourceDocumentID()
		return nil
	case stagingrecord.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case stagingrecord.FieldFinalDocumentType:
		m.ResetFinalDocumentType()
		return nil
	case stagingrecord.FieldStorageBucket:
		m.ResetStorageBucket()
		return nil
	case stagingrecord.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case stagingrecord.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case stagingrecord.FieldLabDate:
		m.ResetLabDate()
		return nil
	case stagingrecord.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case stagingrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case stagingrecord.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case stagingrecord.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case stagingrecord.FieldAdminNotes:
		m.ResetAdminNotes()
		return nil
	case stagingrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagingrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StagingRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StagingRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.source_document != nil {
		edges = append(edges, stagingrecord.EdgeSourceDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StagingRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stagingrecord.EdgeSourceDocument:
		if id := m.source_document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StagingRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StagingRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StagingRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsource_document {
		edges = append(edges, stagingrecord.EdgeSourceDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StagingRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case stagingrecord.EdgeSourceDocument:
		return m.clearedsource_document
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StagingRecordMutation) ClearEdge(name string) error {
	switch name {
	case stagingrecord.EdgeSourceDocument:
		m.ClearSourceDocument()
		return nil
	}
	return fmt.Errorf("unknown StagingRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StagingRecordMutation) ResetEdge(name string) error {
	switch name {
	case stagingrecord.EdgeSourceDocument:
		m.ResetSourceDocument()
		return nil
	}
	return fmt.Errorf("unknown StagingRecord edge %s", name)
}
