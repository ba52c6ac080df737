// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// StagingRecordCreate is the builder for creating a StagingRecord entity.
type StagingRecordCreate struct {
	config
	mutation *StagingRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatientID sets the "patient_id" field.
func (_c *StagingRecordCreate) SetPatientID(v string) *StagingRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_c *StagingRecordCreate) SetSourceDocumentID(v uuid.UUID) *StagingRecordCreate {
	_c.mutation.SetSourceDocumentID(v)
	return _c
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableSourceDocumentID(v *uuid.UUID) *StagingRecordCreate {
	if v != nil {
		_c.SetSourceDocumentID(*v)
	}
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *StagingRecordCreate) SetDocumentType(v string) *StagingRecordCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetFinalDocumentType sets the "final_document_type" field.
func (_c *StagingRecordCreate) SetFinalDocumentType(v string) *StagingRecordCreate {
	_c.mutation.SetFinalDocumentType(v)
	return _c
}

// SetNillableFinalDocumentType sets the "final_document_type" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableFinalDocumentType(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetFinalDocumentType(*v)
	}
	return _c
}

// SetStorageBucket sets the "storage_bucket" field.
func (_c *StagingRecordCreate) SetStorageBucket(v string) *StagingRecordCreate {
	_c.mutation.SetStorageBucket(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *StagingRecordCreate) SetStorageKey(v string) *StagingRecordCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *StagingRecordCreate) SetExtractedFields(v json.RawMessage) *StagingRecordCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetLabDate sets the "lab_date" field.
func (_c *StagingRecordCreate) SetLabDate(v time.Time) *StagingRecordCreate {
	_c.mutation.SetLabDate(v)
	return _c
}

// SetNillableLabDate sets the "lab_date" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableLabDate(v *time.Time) *StagingRecordCreate {
	if v != nil {
		_c.SetLabDate(*v)
	}
	return _c
}

// SetExtractionError sets the "extraction_error" field.
func (_c *StagingRecordCreate) SetExtractionError(v string) *StagingRecordCreate {
	_c.mutation.SetExtractionError(v)
	return _c
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableExtractionError(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetExtractionError(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StagingRecordCreate) SetStatus(v string) *StagingRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableStatus(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *StagingRecordCreate) SetReviewedBy(v string) *StagingRecordCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableReviewedBy(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *StagingRecordCreate) SetReviewedAt(v time.Time) *StagingRecordCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableReviewedAt(v *time.Time) *StagingRecordCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetAdminNotes sets the "admin_notes" field.
func (_c *StagingRecordCreate) SetAdminNotes(v string) *StagingRecordCreate {
	_c.mutation.SetAdminNotes(v)
	return _c
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableAdminNotes(v *string) *StagingRecordCreate {
	if v != nil {
		_c.SetAdminNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingRecordCreate) SetCreatedAt(v time.Time) *StagingRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableCreatedAt(v *time.Time) *StagingRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingRecordCreate) SetUpdatedAt(v time.Time) *StagingRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableUpdatedAt(v *time.Time) *StagingRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StagingRecordCreate) SetID(v uuid.UUID) *StagingRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StagingRecordCreate) SetNillableID(v *uuid.UUID) *StagingRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSourceDocument sets the "source_document" edge to the PatientDocument entity.
func (_c *StagingRecordCreate) SetSourceDocument(v *PatientDocument) *StagingRecordCreate {
	return _c.SetSourceDocumentID(v.ID)
}

// Mutation returns the StagingRecordMutation object of the builder.
func (_c *StagingRecordCreate) Mutation() *StagingRecordMutation {
	return _c.mutation
}

// Save creates the StagingRecord in the database.
func (_c *StagingRecordCreate) Save(ctx context.Context) (*StagingRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingRecordCreate) SaveX(ctx context.Context) *StagingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stagingrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stagingrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingRecordCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "StagingRecord.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := stagingrecord.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.patient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "StagingRecord.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := stagingrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageBucket(); !ok {
		return &ValidationError{Name: "storage_bucket", err: errors.New(`ent: missing required field "StagingRecord.storage_bucket"`)}
	}
	if v, ok := _c.mutation.StorageBucket(); ok {
		if err := stagingrecord.StorageBucketValidator(v); err != nil {
			return &ValidationError{Name: "storage_bucket", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.storage_bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "StagingRecord.storage_key"`)}
	}
	if v, ok := _c.mutation.StorageKey(); ok {
		if err := stagingrecord.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.storage_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StagingRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stagingrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingRecord.updated_at"`)}
	}
	return nil
}

func (_c *StagingRecordCreate) sqlSave(ctx context.Context) (*StagingRecord, error) {
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

func (_c *StagingRecordCreate) createSpec() (*StagingRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingrecord.Table, sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(stagingrecord.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(stagingrecord.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.FinalDocumentType(); ok {
		_spec.SetField(stagingrecord.FieldFinalDocumentType, field.TypeString, value)
		_node.FinalDocumentType = &value
	}
	if value, ok := _c.mutation.StorageBucket(); ok {
		_spec.SetField(stagingrecord.FieldStorageBucket, field.TypeString, value)
		_node.StorageBucket = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(stagingrecord.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(stagingrecord.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.LabDate(); ok {
		_spec.SetField(stagingrecord.FieldLabDate, field.TypeTime, value)
		_node.LabDate = &value
	}
	if value, ok := _c.mutation.ExtractionError(); ok {
		_spec.SetField(stagingrecord.FieldExtractionError, field.TypeString, value)
		_node.ExtractionError = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stagingrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(stagingrecord.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(stagingrecord.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.AdminNotes(); ok {
		_spec.SetField(stagingrecord.FieldAdminNotes, field.TypeString, value)
		_node.AdminNotes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SourceDocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagingrecord.SourceDocumentTable,
			Columns: []string{stagingrecord.SourceDocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceDocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingRecord.Create().
//		SetPatientID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingRecordUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingRecordCreate) OnConflict(opts ...sql.ConflictOption) *StagingRecordUpsertOne {
	_c.conflict = opts
	return &StagingRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingRecordCreate) OnConflictColumns(columns ...string) *StagingRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingRecordUpsertOne{
		create: _c,
	}
}

type (
	// StagingRecordUpsertOne is the builder for "upsert"-ing
	//  one StagingRecord node.
	StagingRecordUpsertOne struct {
		create *StagingRecordCreate
	}

	// StagingRecordUpsert is the "OnConflict" setter.
	StagingRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *StagingRecordUpsert) SetPatientID(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdatePatientID() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldPatientID)
	return u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (u *StagingRecordUpsert) SetSourceDocumentID(v uuid.UUID) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldSourceDocumentID, v)
	return u
}

// UpdateSourceDocumentID sets the "source_document_id" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateSourceDocumentID() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldSourceDocumentID)
	return u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (u *StagingRecordUpsert) ClearSourceDocumentID() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldSourceDocumentID)
	return u
}

// SetDocumentType sets the "document_type" field.
func (u *StagingRecordUpsert) SetDocumentType(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldDocumentType, v)
	return u
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateDocumentType() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldDocumentType)
	return u
}

// SetFinalDocumentType sets the "final_document_type" field.
func (u *StagingRecordUpsert) SetFinalDocumentType(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldFinalDocumentType, v)
	return u
}

// UpdateFinalDocumentType sets the "final_document_type" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateFinalDocumentType() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldFinalDocumentType)
	return u
}

// ClearFinalDocumentType clears the value of the "final_document_type" field.
func (u *StagingRecordUpsert) ClearFinalDocumentType() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldFinalDocumentType)
	return u
}

// SetStorageBucket sets the "storage_bucket" field.
func (u *StagingRecordUpsert) SetStorageBucket(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldStorageBucket, v)
	return u
}

// UpdateStorageBucket sets the "storage_bucket" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateStorageBucket() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldStorageBucket)
	return u
}

// SetStorageKey sets the "storage_key" field.
func (u *StagingRecordUpsert) SetStorageKey(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldStorageKey, v)
	return u
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateStorageKey() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldStorageKey)
	return u
}

// SetExtractedFields sets the "extracted_fields" field.
func (u *StagingRecordUpsert) SetExtractedFields(v json.RawMessage) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldExtractedFields, v)
	return u
}

// UpdateExtractedFields sets the "extracted_fields" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateExtractedFields() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldExtractedFields)
	return u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (u *StagingRecordUpsert) ClearExtractedFields() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldExtractedFields)
	return u
}

// SetLabDate sets the "lab_date" field.
func (u *StagingRecordUpsert) SetLabDate(v time.Time) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldLabDate, v)
	return u
}

// UpdateLabDate sets the "lab_date" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateLabDate() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldLabDate)
	return u
}

// ClearLabDate clears the value of the "lab_date" field.
func (u *StagingRecordUpsert) ClearLabDate() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldLabDate)
	return u
}

// SetExtractionError sets the "extraction_error" field.
func (u *StagingRecordUpsert) SetExtractionError(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldExtractionError, v)
	return u
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateExtractionError() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldExtractionError)
	return u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *StagingRecordUpsert) ClearExtractionError() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldExtractionError)
	return u
}

// SetStatus sets the "status" field.
func (u *StagingRecordUpsert) SetStatus(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateStatus() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldStatus)
	return u
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *StagingRecordUpsert) SetReviewedBy(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldReviewedBy, v)
	return u
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateReviewedBy() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldReviewedBy)
	return u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *StagingRecordUpsert) ClearReviewedBy() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldReviewedBy)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *StagingRecordUpsert) SetReviewedAt(v time.Time) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateReviewedAt() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *StagingRecordUpsert) ClearReviewedAt() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldReviewedAt)
	return u
}

// SetAdminNotes sets the "admin_notes" field.
func (u *StagingRecordUpsert) SetAdminNotes(v string) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldAdminNotes, v)
	return u
}

// UpdateAdminNotes sets the "admin_notes" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateAdminNotes() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldAdminNotes)
	return u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (u *StagingRecordUpsert) ClearAdminNotes() *StagingRecordUpsert {
	u.SetNull(stagingrecord.FieldAdminNotes)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *StagingRecordUpsert) SetCreatedAt(v time.Time) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateCreatedAt() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingRecordUpsert) SetUpdatedAt(v time.Time) *StagingRecordUpsert {
	u.Set(stagingrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingRecordUpsert) UpdateUpdatedAt() *StagingRecordUpsert {
	u.SetExcluded(stagingrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingRecordUpsertOne) UpdateNewValues() *StagingRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingrecord.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingRecordUpsertOne) Ignore() *StagingRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingRecordUpsertOne) DoNothing() *StagingRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingRecordCreate.OnConflict
// documentation for more info.
func (u *StagingRecordUpsertOne) Update(set func(*StagingRecordUpsert)) *StagingRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *StagingRecordUpsertOne) SetPatientID(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdatePatientID() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetSourceDocumentID sets the "source_document_id" field.
func (u *StagingRecordUpsertOne) SetSourceDocumentID(v uuid.UUID) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetSourceDocumentID(v)
	})
}

// UpdateSourceDocumentID sets the "source_document_id" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateSourceDocumentID() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateSourceDocumentID()
	})
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (u *StagingRecordUpsertOne) ClearSourceDocumentID() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearSourceDocumentID()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *StagingRecordUpsertOne) SetDocumentType(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateDocumentType() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateDocumentType()
	})
}

// SetFinalDocumentType sets the "final_document_type" field.
func (u *StagingRecordUpsertOne) SetFinalDocumentType(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetFinalDocumentType(v)
	})
}

// UpdateFinalDocumentType sets the "final_document_type" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateFinalDocumentType() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateFinalDocumentType()
	})
}

// ClearFinalDocumentType clears the value of the "final_document_type" field.
func (u *StagingRecordUpsertOne) ClearFinalDocumentType() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearFinalDocumentType()
	})
}

// SetStorageBucket sets the "storage_bucket" field.
func (u *StagingRecordUpsertOne) SetStorageBucket(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetStorageBucket(v)
	})
}

// UpdateStorageBucket sets the "storage_bucket" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateStorageBucket() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateStorageBucket()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *StagingRecordUpsertOne) SetStorageKey(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateStorageKey() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateStorageKey()
	})
}

// SetExtractedFields sets the "extracted_fields" field.
func (u *StagingRecordUpsertOne) SetExtractedFields(v json.RawMessage) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetExtractedFields(v)
	})
}

// UpdateExtractedFields sets the "extracted_fields" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateExtractedFields() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateExtractedFields()
	})
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (u *StagingRecordUpsertOne) ClearExtractedFields() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearExtractedFields()
	})
}

// SetLabDate sets the "lab_date" field.
func (u *StagingRecordUpsertOne) SetLabDate(v time.Time) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetLabDate(v)
	})
}

// UpdateLabDate sets the "lab_date" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateLabDate() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateLabDate()
	})
}

// ClearLabDate clears the value of the "lab_date" field.
func (u *StagingRecordUpsertOne) ClearLabDate() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearLabDate()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *StagingRecordUpsertOne) SetExtractionError(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateExtractionError() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *StagingRecordUpsertOne) ClearExtractionError() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearExtractionError()
	})
}

// SetStatus sets the "status" field.
func (u *StagingRecordUpsertOne) SetStatus(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateStatus() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *StagingRecordUpsertOne) SetReviewedBy(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateReviewedBy() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *StagingRecordUpsertOne) ClearReviewedBy() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *StagingRecordUpsertOne) SetReviewedAt(v time.Time) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateReviewedAt() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *StagingRecordUpsertOne) ClearReviewedAt() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearReviewedAt()
	})
}

// SetAdminNotes sets the "admin_notes" field.
func (u *StagingRecordUpsertOne) SetAdminNotes(v string) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetAdminNotes(v)
	})
}

// UpdateAdminNotes sets the "admin_notes" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateAdminNotes() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateAdminNotes()
	})
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (u *StagingRecordUpsertOne) ClearAdminNotes() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearAdminNotes()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StagingRecordUpsertOne) SetCreatedAt(v time.Time) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateCreatedAt() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingRecordUpsertOne) SetUpdatedAt(v time.Time) *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingRecordUpsertOne) UpdateUpdatedAt() *StagingRecordUpsertOne {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StagingRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingRecordUpsertOne.ID is not supported by MySQL driver. Use StagingRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingRecordCreateBulk is the builder for creating many StagingRecord entities in bulk.
type StagingRecordCreateBulk struct {
	config
	err      error
	builders []*StagingRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingRecord entities in the database.
func (_c *StagingRecordCreateBulk) Save(ctx context.Context) ([]*StagingRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingRecordMutation)
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
func (_c *StagingRecordCreateBulk) SaveX(ctx context.Context) []*StagingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingRecordUpsert) {
//			SetPatientID(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingRecordUpsertBulk {
	_c.conflict = opts
	return &StagingRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingRecordCreateBulk) OnConflictColumns(columns ...string) *StagingRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingRecordUpsertBulk{
		create: _c,
	}
}

// StagingRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingRecord nodes.
type StagingRecordUpsertBulk struct {
	create *StagingRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingRecordUpsertBulk) UpdateNewValues() *StagingRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingrecord.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingRecordUpsertBulk) Ignore() *StagingRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingRecordUpsertBulk) DoNothing() *StagingRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingRecordCreateBulk.OnConflict
// documentation for more info.
func (u *StagingRecordUpsertBulk) Update(set func(*StagingRecordUpsert)) *StagingRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *StagingRecordUpsertBulk) SetPatientID(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdatePatientID() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetSourceDocumentID sets the "source_document_id" field.
func (u *StagingRecordUpsertBulk) SetSourceDocumentID(v uuid.UUID) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetSourceDocumentID(v)
	})
}

// UpdateSourceDocumentID sets the "source_document_id" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateSourceDocumentID() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateSourceDocumentID()
	})
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (u *StagingRecordUpsertBulk) ClearSourceDocumentID() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearSourceDocumentID()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *StagingRecordUpsertBulk) SetDocumentType(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateDocumentType() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateDocumentType()
	})
}

// SetFinalDocumentType sets the "final_document_type" field.
func (u *StagingRecordUpsertBulk) SetFinalDocumentType(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetFinalDocumentType(v)
	})
}

// UpdateFinalDocumentType sets the "final_document_type" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateFinalDocumentType() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateFinalDocumentType()
	})
}

// ClearFinalDocumentType clears the value of the "final_document_type" field.
func (u *StagingRecordUpsertBulk) ClearFinalDocumentType() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearFinalDocumentType()
	})
}

// SetStorageBucket sets the "storage_bucket" field.
func (u *StagingRecordUpsertBulk) SetStorageBucket(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetStorageBucket(v)
	})
}

// UpdateStorageBucket sets the "storage_bucket" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateStorageBucket() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateStorageBucket()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *StagingRecordUpsertBulk) SetStorageKey(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateStorageKey() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateStorageKey()
	})
}

// SetExtractedFields sets the "extracted_fields" field.
func (u *StagingRecordUpsertBulk) SetExtractedFields(v json.RawMessage) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetExtractedFields(v)
	})
}

// UpdateExtractedFields sets the "extracted_fields" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateExtractedFields() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateExtractedFields()
	})
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (u *StagingRecordUpsertBulk) ClearExtractedFields() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearExtractedFields()
	})
}

// SetLabDate sets the "lab_date" field.
func (u *StagingRecordUpsertBulk) SetLabDate(v time.Time) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetLabDate(v)
	})
}

// UpdateLabDate sets the "lab_date" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateLabDate() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateLabDate()
	})
}

// ClearLabDate clears the value of the "lab_date" field.
func (u *StagingRecordUpsertBulk) ClearLabDate() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearLabDate()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *StagingRecordUpsertBulk) SetExtractionError(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateExtractionError() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *StagingRecordUpsertBulk) ClearExtractionError() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearExtractionError()
	})
}

// SetStatus sets the "status" field.
func (u *StagingRecordUpsertBulk) SetStatus(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateStatus() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *StagingRecordUpsertBulk) SetReviewedBy(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateReviewedBy() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *StagingRecordUpsertBulk) ClearReviewedBy() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *StagingRecordUpsertBulk) SetReviewedAt(v time.Time) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateReviewedAt() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *StagingRecordUpsertBulk) ClearReviewedAt() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearReviewedAt()
	})
}

// SetAdminNotes sets the "admin_notes" field.
func (u *StagingRecordUpsertBulk) SetAdminNotes(v string) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetAdminNotes(v)
	})
}

// UpdateAdminNotes sets the "admin_notes" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateAdminNotes() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateAdminNotes()
	})
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (u *StagingRecordUpsertBulk) ClearAdminNotes() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.ClearAdminNotes()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StagingRecordUpsertBulk) SetCreatedAt(v time.Time) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateCreatedAt() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingRecordUpsertBulk) SetUpdatedAt(v time.Time) *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingRecordUpsertBulk) UpdateUpdatedAt() *StagingRecordUpsertBulk {
	return u.Update(func(s *StagingRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StagingRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
