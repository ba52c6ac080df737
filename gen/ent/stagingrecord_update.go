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
	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
	"github.com/renalbridge/docpipeline/gen/ent/predicate"
	"github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
)

// StagingRecordUpdate is the builder for updating StagingRecord entities.
type StagingRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StagingRecordMutation
}

// Where appends a list predicates to the StagingRecordUpdate builder.
func (_u *StagingRecordUpdate) Where(ps ...predicate.StagingRecord) *StagingRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *StagingRecordUpdate) SetPatientID(v string) *StagingRecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillablePatientID(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *StagingRecordUpdate) SetSourceDocumentID(v uuid.UUID) *StagingRecordUpdate {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableSourceDocumentID(v *uuid.UUID) *StagingRecordUpdate {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *StagingRecordUpdate) ClearSourceDocumentID() *StagingRecordUpdate {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *StagingRecordUpdate) SetDocumentType(v string) *StagingRecordUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableDocumentType(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetFinalDocumentType sets the "final_document_type" field.
func (_u *StagingRecordUpdate) SetFinalDocumentType(v string) *StagingRecordUpdate {
	_u.mutation.SetFinalDocumentType(v)
	return _u
}

// SetNillableFinalDocumentType sets the "final_document_type" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableFinalDocumentType(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetFinalDocumentType(*v)
	}
	return _u
}

// ClearFinalDocumentType clears the value of the "final_document_type" field.
func (_u *StagingRecordUpdate) ClearFinalDocumentType() *StagingRecordUpdate {
	_u.mutation.ClearFinalDocumentType()
	return _u
}

// SetStorageBucket sets the "storage_bucket" field.
func (_u *StagingRecordUpdate) SetStorageBucket(v string) *StagingRecordUpdate {
	_u.mutation.SetStorageBucket(v)
	return _u
}

// SetNillableStorageBucket sets the "storage_bucket" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableStorageBucket(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetStorageBucket(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *StagingRecordUpdate) SetStorageKey(v string) *StagingRecordUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableStorageKey(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *StagingRecordUpdate) SetExtractedFields(v json.RawMessage) *StagingRecordUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *StagingRecordUpdate) AppendExtractedFields(v json.RawMessage) *StagingRecordUpdate {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *StagingRecordUpdate) ClearExtractedFields() *StagingRecordUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetLabDate sets the "lab_date" field.
func (_u *StagingRecordUpdate) SetLabDate(v time.Time) *StagingRecordUpdate {
	_u.mutation.SetLabDate(v)
	return _u
}

// SetNillableLabDate sets the "lab_date" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableLabDate(v *time.Time) *StagingRecordUpdate {
	if v != nil {
		_u.SetLabDate(*v)
	}
	return _u
}

// ClearLabDate clears the value of the "lab_date" field.
func (_u *StagingRecordUpdate) ClearLabDate() *StagingRecordUpdate {
	_u.mutation.ClearLabDate()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *StagingRecordUpdate) SetExtractionError(v string) *StagingRecordUpdate {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableExtractionError(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *StagingRecordUpdate) ClearExtractionError() *StagingRecordUpdate {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StagingRecordUpdate) SetStatus(v string) *StagingRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableStatus(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *StagingRecordUpdate) SetReviewedBy(v string) *StagingRecordUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableReviewedBy(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *StagingRecordUpdate) ClearReviewedBy() *StagingRecordUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *StagingRecordUpdate) SetReviewedAt(v time.Time) *StagingRecordUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableReviewedAt(v *time.Time) *StagingRecordUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *StagingRecordUpdate) ClearReviewedAt() *StagingRecordUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *StagingRecordUpdate) SetAdminNotes(v string) *StagingRecordUpdate {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableAdminNotes(v *string) *StagingRecordUpdate {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *StagingRecordUpdate) ClearAdminNotes() *StagingRecordUpdate {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StagingRecordUpdate) SetCreatedAt(v time.Time) *StagingRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StagingRecordUpdate) SetNillableCreatedAt(v *time.Time) *StagingRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingRecordUpdate) SetUpdatedAt(v time.Time) *StagingRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceDocument sets the "source_document" edge to the PatientDocument entity.
func (_u *StagingRecordUpdate) SetSourceDocument(v *PatientDocument) *StagingRecordUpdate {
	return _u.SetSourceDocumentID(v.ID)
}

// Mutation returns the StagingRecordMutation object of the builder.
func (_u *StagingRecordUpdate) Mutation() *StagingRecordMutation {
	return _u.mutation
}

// ClearSourceDocument clears the "source_document" edge to the PatientDocument entity.
func (_u *StagingRecordUpdate) ClearSourceDocument() *StagingRecordUpdate {
	_u.mutation.ClearSourceDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingRecordUpdate) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := stagingrecord.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := stagingrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageBucket(); ok {
		if err := stagingrecord.StorageBucketValidator(v); err != nil {
			return &ValidationError{Name: "storage_bucket", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.storage_bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := stagingrecord.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := stagingrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingrecord.Table, stagingrecord.Columns, sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(stagingrecord.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(stagingrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalDocumentType(); ok {
		_spec.SetField(stagingrecord.FieldFinalDocumentType, field.TypeString, value)
	}
	if _u.mutation.FinalDocumentTypeCleared() {
		_spec.ClearField(stagingrecord.FieldFinalDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.StorageBucket(); ok {
		_spec.SetField(stagingrecord.FieldStorageBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(stagingrecord.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(stagingrecord.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingrecord.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(stagingrecord.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.LabDate(); ok {
		_spec.SetField(stagingrecord.FieldLabDate, field.TypeTime, value)
	}
	if _u.mutation.LabDateCleared() {
		_spec.ClearField(stagingrecord.FieldLabDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(stagingrecord.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(stagingrecord.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stagingrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(stagingrecord.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(stagingrecord.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(stagingrecord.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(stagingrecord.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(stagingrecord.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(stagingrecord.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagingrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourceDocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceDocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingRecordUpdateOne is the builder for updating a single StagingRecord entity.
type StagingRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingRecordMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *StagingRecordUpdateOne) SetPatientID(v string) *StagingRecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillablePatientID(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *StagingRecordUpdateOne) SetSourceDocumentID(v uuid.UUID) *StagingRecordUpdateOne {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableSourceDocumentID(v *uuid.UUID) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *StagingRecordUpdateOne) ClearSourceDocumentID() *StagingRecordUpdateOne {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *StagingRecordUpdateOne) SetDocumentType(v string) *StagingRecordUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableDocumentType(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetFinalDocumentType sets the "final_document_type" field.
func (_u *StagingRecordUpdateOne) SetFinalDocumentType(v string) *StagingRecordUpdateOne {
	_u.mutation.SetFinalDocumentType(v)
	return _u
}

// SetNillableFinalDocumentType sets the "final_document_type" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableFinalDocumentType(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetFinalDocumentType(*v)
	}
	return _u
}

// ClearFinalDocumentType clears the value of the "final_document_type" field.
func (_u *StagingRecordUpdateOne) ClearFinalDocumentType() *StagingRecordUpdateOne {
	_u.mutation.ClearFinalDocumentType()
	return _u
}

// SetStorageBucket sets the "storage_bucket" field.
func (_u *StagingRecordUpdateOne) SetStorageBucket(v string) *StagingRecordUpdateOne {
	_u.mutation.SetStorageBucket(v)
	return _u
}

// SetNillableStorageBucket sets the "storage_bucket" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableStorageBucket(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetStorageBucket(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *StagingRecordUpdateOne) SetStorageKey(v string) *StagingRecordUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableStorageKey(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *StagingRecordUpdateOne) SetExtractedFields(v json.RawMessage) *StagingRecordUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *StagingRecordUpdateOne) AppendExtractedFields(v json.RawMessage) *StagingRecordUpdateOne {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *StagingRecordUpdateOne) ClearExtractedFields() *StagingRecordUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetLabDate sets the "lab_date" field.
func (_u *StagingRecordUpdateOne) SetLabDate(v time.Time) *StagingRecordUpdateOne {
	_u.mutation.SetLabDate(v)
	return _u
}

// SetNillableLabDate sets the "lab_date" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableLabDate(v *time.Time) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetLabDate(*v)
	}
	return _u
}

// ClearLabDate clears the value of the "lab_date" field.
func (_u *StagingRecordUpdateOne) ClearLabDate() *StagingRecordUpdateOne {
	_u.mutation.ClearLabDate()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *StagingRecordUpdateOne) SetExtractionError(v string) *StagingRecordUpdateOne {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableExtractionError(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *StagingRecordUpdateOne) ClearExtractionError() *StagingRecordUpdateOne {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StagingRecordUpdateOne) SetStatus(v string) *StagingRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableStatus(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *StagingRecordUpdateOne) SetReviewedBy(v string) *StagingRecordUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableReviewedBy(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *StagingRecordUpdateOne) ClearReviewedBy() *StagingRecordUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *StagingRecordUpdateOne) SetReviewedAt(v time.Time) *StagingRecordUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableReviewedAt(v *time.Time) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *StagingRecordUpdateOne) ClearReviewedAt() *StagingRecordUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *StagingRecordUpdateOne) SetAdminNotes(v string) *StagingRecordUpdateOne {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableAdminNotes(v *string) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *StagingRecordUpdateOne) ClearAdminNotes() *StagingRecordUpdateOne {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StagingRecordUpdateOne) SetCreatedAt(v time.Time) *StagingRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StagingRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *StagingRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingRecordUpdateOne) SetUpdatedAt(v time.Time) *StagingRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceDocument sets the "source_document" edge to the PatientDocument entity.
func (_u *StagingRecordUpdateOne) SetSourceDocument(v *PatientDocument) *StagingRecordUpdateOne {
	return _u.SetSourceDocumentID(v.ID)
}

// Mutation returns the StagingRecordMutation object of the builder.
func (_u *StagingRecordUpdateOne) Mutation() *StagingRecordMutation {
	return _u.mutation
}

// ClearSourceDocument clears the "source_document" edge to the PatientDocument entity.
func (_u *StagingRecordUpdateOne) ClearSourceDocument() *StagingRecordUpdateOne {
	_u.mutation.ClearSourceDocument()
	return _u
}

// Where appends a list predicates to the StagingRecordUpdate builder.
func (_u *StagingRecordUpdateOne) Where(ps ...predicate.StagingRecord) *StagingRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingRecordUpdateOne) Select(field string, fields ...string) *StagingRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingRecord entity.
func (_u *StagingRecordUpdateOne) Save(ctx context.Context) (*StagingRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingRecordUpdateOne) SaveX(ctx context.Context) *StagingRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingRecordUpdateOne) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := stagingrecord.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := stagingrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageBucket(); ok {
		if err := stagingrecord.StorageBucketValidator(v); err != nil {
			return &ValidationError{Name: "storage_bucket", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.storage_bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := stagingrecord.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := stagingrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StagingRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingRecordUpdateOne) sqlSave(ctx context.Context) (_node *StagingRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingrecord.Table, stagingrecord.Columns, sqlgraph.NewFieldSpec(stagingrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingrecord.FieldID)
		for _, f := range fields {
			if !stagingrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingrecord.FieldID {
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
		_spec.SetField(stagingrecord.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(stagingrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalDocumentType(); ok {
		_spec.SetField(stagingrecord.FieldFinalDocumentType, field.TypeString, value)
	}
	if _u.mutation.FinalDocumentTypeCleared() {
		_spec.ClearField(stagingrecord.FieldFinalDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.StorageBucket(); ok {
		_spec.SetField(stagingrecord.FieldStorageBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(stagingrecord.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(stagingrecord.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingrecord.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(stagingrecord.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.LabDate(); ok {
		_spec.SetField(stagingrecord.FieldLabDate, field.TypeTime, value)
	}
	if _u.mutation.LabDateCleared() {
		_spec.ClearField(stagingrecord.FieldLabDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(stagingrecord.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(stagingrecord.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stagingrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(stagingrecord.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(stagingrecord.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(stagingrecord.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(stagingrecord.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(stagingrecord.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(stagingrecord.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagingrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourceDocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceDocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StagingRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
