// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docstaging/v1/docstaging.proto

package docstagingv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type StagingRecord struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PatientId string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	// Empty when the upload record behind this object is unknown.
	SourceDocumentId  string `protobuf:"bytes,3,opt,name=source_document_id,json=sourceDocumentId,proto3" json:"source_document_id,omitempty"`
	DocumentType      string `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	FinalDocumentType string `protobuf:"bytes,5,opt,name=final_document_type,json=finalDocumentType,proto3" json:"final_document_type,omitempty"`
	StorageBucket     string `protobuf:"bytes,6,opt,name=storage_bucket,json=storageBucket,proto3" json:"storage_bucket,omitempty"`
	StorageKey        string `protobuf:"bytes,7,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	// JSON object keyed by field alias; empty when extraction was not
	// attempted or failed.
	ExtractedFieldsJson string `protobuf:"bytes,8,opt,name=extracted_fields_json,json=extractedFieldsJson,proto3" json:"extracted_fields_json,omitempty"`
	// YYYY-MM-DD, empty when no report date was extracted.
	LabDate         string `protobuf:"bytes,9,opt,name=lab_date,json=labDate,proto3" json:"lab_date,omitempty"`
	ExtractionError string `protobuf:"bytes,10,opt,name=extraction_error,json=extractionError,proto3" json:"extraction_error,omitempty"`
	Status          string `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	ReviewedBy      string `protobuf:"bytes,12,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	// RFC3339, empty until reviewed.
	ReviewedAt string `protobuf:"bytes,13,opt,name=reviewed_at,json=reviewedAt,proto3" json:"reviewed_at,omitempty"`
	AdminNotes string `protobuf:"bytes,14,opt,name=admin_notes,json=adminNotes,proto3" json:"admin_notes,omitempty"`
	CreatedAt  string `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt  string `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	// Field aliases whose extraction confidence sits below the advisory
	// threshold; hints for the reviewer, never a gate.
	LowConfidenceFields []string `protobuf:"bytes,17,rep,name=low_confidence_fields,json=lowConfidenceFields,proto3" json:"low_confidence_fields,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *StagingRecord) Reset() {
	*x = StagingRecord{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StagingRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StagingRecord) ProtoMessage() {}

func (x *StagingRecord) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StagingRecord.ProtoReflect.Descriptor instead.
func (*StagingRecord) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{0}
}

func (x *StagingRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StagingRecord) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *StagingRecord) GetSourceDocumentId() string {
	if x != nil {
		return x.SourceDocumentId
	}
	return ""
}

func (x *StagingRecord) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *StagingRecord) GetFinalDocumentType() string {
	if x != nil {
		return x.FinalDocumentType
	}
	return ""
}

func (x *StagingRecord) GetStorageBucket() string {
	if x != nil {
		return x.StorageBucket
	}
	return ""
}

func (x *StagingRecord) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

func (x *StagingRecord) GetExtractedFieldsJson() string {
	if x != nil {
		return x.ExtractedFieldsJson
	}
	return ""
}

func (x *StagingRecord) GetLabDate() string {
	if x != nil {
		return x.LabDate
	}
	return ""
}

func (x *StagingRecord) GetExtractionError() string {
	if x != nil {
		return x.ExtractionError
	}
	return ""
}

func (x *StagingRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StagingRecord) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

func (x *StagingRecord) GetReviewedAt() string {
	if x != nil {
		return x.ReviewedAt
	}
	return ""
}

func (x *StagingRecord) GetAdminNotes() string {
	if x != nil {
		return x.AdminNotes
	}
	return ""
}

func (x *StagingRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *StagingRecord) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *StagingRecord) GetLowConfidenceFields() []string {
	if x != nil {
		return x.LowConfidenceFields
	}
	return nil
}

type ListStagingRecordsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional PENDING_REVIEW | APPROVED | REJECTED | NEEDS_CORRECTION filter.
	Status     string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	PatientId  string `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	PageSize   int32  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageOffset int32  `protobuf:"varint,4,opt,name=page_offset,json=pageOffset,proto3" json:"page_offset,omitempty"`
	// Optional YYYY-MM-DD bounds on the staging time, both inclusive.
	FromDate      string `protobuf:"bytes,5,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,6,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStagingRecordsRequest) Reset() {
	*x = ListStagingRecordsRequest{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStagingRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStagingRecordsRequest) ProtoMessage() {}

func (x *ListStagingRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStagingRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListStagingRecordsRequest) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{1}
}

func (x *ListStagingRecordsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListStagingRecordsRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ListStagingRecordsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListStagingRecordsRequest) GetPageOffset() int32 {
	if x != nil {
		return x.PageOffset
	}
	return 0
}

func (x *ListStagingRecordsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListStagingRecordsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListStagingRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*StagingRecord       `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStagingRecordsResponse) Reset() {
	*x = ListStagingRecordsResponse{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStagingRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStagingRecordsResponse) ProtoMessage() {}

func (x *ListStagingRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStagingRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListStagingRecordsResponse) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{2}
}

func (x *ListStagingRecordsResponse) GetRecords() []*StagingRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *ListStagingRecordsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type PatientDocument struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PatientId     string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	DocumentType  string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	StorageBucket string                 `protobuf:"bytes,4,opt,name=storage_bucket,json=storageBucket,proto3" json:"storage_bucket,omitempty"`
	StorageKey    string                 `protobuf:"bytes,5,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	Filename      string                 `protobuf:"bytes,6,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,7,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileSize      int64                  `protobuf:"varint,8,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,9,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PatientDocument) Reset() {
	*x = PatientDocument{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PatientDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PatientDocument) ProtoMessage() {}

func (x *PatientDocument) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PatientDocument.ProtoReflect.Descriptor instead.
func (*PatientDocument) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{3}
}

func (x *PatientDocument) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PatientDocument) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *PatientDocument) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *PatientDocument) GetStorageBucket() string {
	if x != nil {
		return x.StorageBucket
	}
	return ""
}

func (x *PatientDocument) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

func (x *PatientDocument) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *PatientDocument) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *PatientDocument) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *PatientDocument) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type GetStagingRecordRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStagingRecordRequest) Reset() {
	*x = GetStagingRecordRequest{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStagingRecordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStagingRecordRequest) ProtoMessage() {}

func (x *GetStagingRecordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStagingRecordRequest.ProtoReflect.Descriptor instead.
func (*GetStagingRecordRequest) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{4}
}

func (x *GetStagingRecordRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetStagingRecordResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Record *StagingRecord         `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	// The upload record behind the staged object, when known.
	SourceDocument *PatientDocument `protobuf:"bytes,2,opt,name=source_document,json=sourceDocument,proto3" json:"source_document,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetStagingRecordResponse) Reset() {
	*x = GetStagingRecordResponse{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStagingRecordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStagingRecordResponse) ProtoMessage() {}

func (x *GetStagingRecordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStagingRecordResponse.ProtoReflect.Descriptor instead.
func (*GetStagingRecordResponse) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{5}
}

func (x *GetStagingRecordResponse) GetRecord() *StagingRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

func (x *GetStagingRecordResponse) GetSourceDocument() *PatientDocument {
	if x != nil {
		return x.SourceDocument
	}
	return nil
}

type SubmitReviewRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// APPROVED | REJECTED | NEEDS_CORRECTION
	Status     string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ReviewedBy string `protobuf:"bytes,3,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	// Optional corrected document type recorded on approval.
	FinalDocumentType string `protobuf:"bytes,4,opt,name=final_document_type,json=finalDocumentType,proto3" json:"final_document_type,omitempty"`
	AdminNotes        string `protobuf:"bytes,5,opt,name=admin_notes,json=adminNotes,proto3" json:"admin_notes,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SubmitReviewRequest) Reset() {
	*x = SubmitReviewRequest{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitReviewRequest) ProtoMessage() {}

func (x *SubmitReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitReviewRequest.ProtoReflect.Descriptor instead.
func (*SubmitReviewRequest) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitReviewRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SubmitReviewRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SubmitReviewRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

func (x *SubmitReviewRequest) GetFinalDocumentType() string {
	if x != nil {
		return x.FinalDocumentType
	}
	return ""
}

func (x *SubmitReviewRequest) GetAdminNotes() string {
	if x != nil {
		return x.AdminNotes
	}
	return ""
}

type SubmitReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *StagingRecord         `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitReviewResponse) Reset() {
	*x = SubmitReviewResponse{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitReviewResponse) ProtoMessage() {}

func (x *SubmitReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitReviewResponse.ProtoReflect.Descriptor instead.
func (*SubmitReviewResponse) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitReviewResponse) GetRecord() *StagingRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type GetReviewQueueStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReviewQueueStatsRequest) Reset() {
	*x = GetReviewQueueStatsRequest{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReviewQueueStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReviewQueueStatsRequest) ProtoMessage() {}

func (x *GetReviewQueueStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReviewQueueStatsRequest.ProtoReflect.Descriptor instead.
func (*GetReviewQueueStatsRequest) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{8}
}

type GetReviewQueueStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StatusCounts  map[string]int32       `protobuf:"bytes,1,rep,name=status_counts,json=statusCounts,proto3" json:"status_counts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReviewQueueStatsResponse) Reset() {
	*x = GetReviewQueueStatsResponse{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReviewQueueStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReviewQueueStatsResponse) ProtoMessage() {}

func (x *GetReviewQueueStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReviewQueueStatsResponse.ProtoReflect.Descriptor instead.
func (*GetReviewQueueStatsResponse) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{9}
}

func (x *GetReviewQueueStatsResponse) GetStatusCounts() map[string]int32 {
	if x != nil {
		return x.StatusCounts
	}
	return nil
}

type ExportStagingRecordsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Status    string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	PatientId string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	// Optional YYYY-MM-DD bounds on the staging time. A from_date without a
	// to_date exports through today.
	FromDate      string `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStagingRecordsRequest) Reset() {
	*x = ExportStagingRecordsRequest{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStagingRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStagingRecordsRequest) ProtoMessage() {}

func (x *ExportStagingRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStagingRecordsRequest.ProtoReflect.Descriptor instead.
func (*ExportStagingRecordsRequest) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{10}
}

func (x *ExportStagingRecordsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportStagingRecordsRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ExportStagingRecordsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportStagingRecordsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportStagingRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStagingRecordsResponse) Reset() {
	*x = ExportStagingRecordsResponse{}
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStagingRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStagingRecordsResponse) ProtoMessage() {}

func (x *ExportStagingRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstaging_v1_docstaging_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStagingRecordsResponse.ProtoReflect.Descriptor instead.
func (*ExportStagingRecordsResponse) Descriptor() ([]byte, []int) {
	return file_docstaging_v1_docstaging_proto_rawDescGZIP(), []int{11}
}

func (x *ExportStagingRecordsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docstaging_v1_docstaging_proto protoreflect.FileDescriptor

const file_docstaging_v1_docstaging_proto_rawDesc = "" +
	"\n" +
	"\x1edocstaging/v1/docstaging.proto\x12\rdocstaging.v1\"\xf0\x04\n" +
	"\rStagingRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12,\n" +
	"\x12source_document_id\x18\x03 \x01(\tR\x10sourceDocumentId\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\x12.\n" +
	"\x13final_document_type\x18\x05 \x01(\tR\x11finalDocumentType\x12%\n" +
	"\x0estorage_bucket\x18\x06 \x01(\tR\rstorageBucket\x12\x1f\n" +
	"\vstorage_key\x18\a \x01(\tR\n" +
	"storageKey\x122\n" +
	"\x15extracted_fields_json\x18\b \x01(\tR\x13extractedFieldsJson\x12\x19\n" +
	"\blab_date\x18\t \x01(\tR\alabDate\x12)\n" +
	"\x10extraction_error\x18\n" +
	" \x01(\tR\x0fextractionError\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12\x1f\n" +
	"\vreviewed_by\x18\f \x01(\tR\n" +
	"reviewedBy\x12\x1f\n" +
	"\vreviewed_at\x18\r \x01(\tR\n" +
	"reviewedAt\x12\x1f\n" +
	"\vadmin_notes\x18\x0e \x01(\tR\n" +
	"adminNotes\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\x122\n" +
	"\x15low_confidence_fields\x18\x11 \x03(\tR\x13lowConfidenceFields\"\xc6\x01\n" +
	"\x19ListStagingRecordsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x1f\n" +
	"\vpage_offset\x18\x04 \x01(\x05R\n" +
	"pageOffset\x12\x1b\n" +
	"\tfrom_date\x18\x05 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x06 \x01(\tR\x06toDate\"u\n" +
	"\x1aListStagingRecordsResponse\x126\n" +
	"\arecords\x18\x01 \x03(\v2\x1c.docstaging.v1.StagingRecordR\arecords\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"\xaa\x02\n" +
	"\x0fPatientDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12%\n" +
	"\x0estorage_bucket\x18\x04 \x01(\tR\rstorageBucket\x12\x1f\n" +
	"\vstorage_key\x18\x05 \x01(\tR\n" +
	"storageKey\x12\x1a\n" +
	"\bfilename\x18\x06 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\a \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_size\x18\b \x01(\x03R\bfileSize\x12\x1f\n" +
	"\vuploaded_at\x18\t \x01(\tR\n" +
	"uploadedAt\")\n" +
	"\x17GetStagingRecordRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x99\x01\n" +
	"\x18GetStagingRecordResponse\x124\n" +
	"\x06record\x18\x01 \x01(\v2\x1c.docstaging.v1.StagingRecordR\x06record\x12G\n" +
	"\x0fsource_document\x18\x02 \x01(\v2\x1e.docstaging.v1.PatientDocumentR\x0esourceDocument\"\xaf\x01\n" +
	"\x13SubmitReviewRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1f\n" +
	"\vreviewed_by\x18\x03 \x01(\tR\n" +
	"reviewedBy\x12.\n" +
	"\x13final_document_type\x18\x04 \x01(\tR\x11finalDocumentType\x12\x1f\n" +
	"\vadmin_notes\x18\x05 \x01(\tR\n" +
	"adminNotes\"L\n" +
	"\x14SubmitReviewResponse\x124\n" +
	"\x06record\x18\x01 \x01(\v2\x1c.docstaging.v1.StagingRecordR\x06record\"\x1c\n" +
	"\x1aGetReviewQueueStatsRequest\"\xc1\x01\n" +
	"\x1bGetReviewQueueStatsResponse\x12a\n" +
	"\rstatus_counts\x18\x01 \x03(\v2<.docstaging.v1.GetReviewQueueStatsResponse.StatusCountsEntryR\fstatusCounts\x1a?\n" +
	"\x11StatusCountsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\x8a\x01\n" +
	"\x1bExportStagingRecordsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"2\n" +
	"\x1cExportStagingRecordsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xa6\x03\n" +
	"\rReviewService\x12i\n" +
	"\x12ListStagingRecords\x12(.docstaging.v1.ListStagingRecordsRequest\x1a).docstaging.v1.ListStagingRecordsResponse\x12c\n" +
	"\x10GetStagingRecord\x12&.docstaging.v1.GetStagingRecordRequest\x1a'.docstaging.v1.GetStagingRecordResponse\x12W\n" +
	"\fSubmitReview\x12\".docstaging.v1.SubmitReviewRequest\x1a#.docstaging.v1.SubmitReviewResponse\x12l\n" +
	"\x13GetReviewQueueStats\x12).docstaging.v1.GetReviewQueueStatsRequest\x1a*.docstaging.v1.GetReviewQueueStatsResponse2\x80\x01\n" +
	"\rExportService\x12o\n" +
	"\x14ExportStagingRecords\x12*.docstaging.v1.ExportStagingRecordsRequest\x1a+.docstaging.v1.ExportStagingRecordsResponseBIZGgithub.com/renalbridge/docpipeline/gen/proto/docstaging/v1;docstagingv1b\x06proto3"

var (
	file_docstaging_v1_docstaging_proto_rawDescOnce sync.Once
	file_docstaging_v1_docstaging_proto_rawDescData []byte
)

func file_docstaging_v1_docstaging_proto_rawDescGZIP() []byte {
	file_docstaging_v1_docstaging_proto_rawDescOnce.Do(func() {
		file_docstaging_v1_docstaging_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docstaging_v1_docstaging_proto_rawDesc), len(file_docstaging_v1_docstaging_proto_rawDesc)))
	})
	return file_docstaging_v1_docstaging_proto_rawDescData
}

var file_docstaging_v1_docstaging_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_docstaging_v1_docstaging_proto_goTypes = []any{
	(*StagingRecord)(nil),                // 0: docstaging.v1.StagingRecord
	(*ListStagingRecordsRequest)(nil),    // 1: docstaging.v1.ListStagingRecordsRequest
	(*ListStagingRecordsResponse)(nil),   // 2: docstaging.v1.ListStagingRecordsResponse
	(*PatientDocument)(nil),              // 3: docstaging.v1.PatientDocument
	(*GetStagingRecordRequest)(nil),      // 4: docstaging.v1.GetStagingRecordRequest
	(*GetStagingRecordResponse)(nil),     // 5: docstaging.v1.GetStagingRecordResponse
	(*SubmitReviewRequest)(nil),          // 6: docstaging.v1.SubmitReviewRequest
	(*SubmitReviewResponse)(nil),         // 7: docstaging.v1.SubmitReviewResponse
	(*GetReviewQueueStatsRequest)(nil),   // 8: docstaging.v1.GetReviewQueueStatsRequest
	(*GetReviewQueueStatsResponse)(nil),  // 9: docstaging.v1.GetReviewQueueStatsResponse
	(*ExportStagingRecordsRequest)(nil),  // 10: docstaging.v1.ExportStagingRecordsRequest
	(*ExportStagingRecordsResponse)(nil), // 11: docstaging.v1.ExportStagingRecordsResponse
	nil,                                  // 12: docstaging.v1.GetReviewQueueStatsResponse.StatusCountsEntry
}
var file_docstaging_v1_docstaging_proto_depIdxs = []int32{
	0,  // 0: docstaging.v1.ListStagingRecordsResponse.records:type_name -> docstaging.v1.StagingRecord
	0,  // 1: docstaging.v1.GetStagingRecordResponse.record:type_name -> docstaging.v1.StagingRecord
	3,  // 2: docstaging.v1.GetStagingRecordResponse.source_document:type_name -> docstaging.v1.PatientDocument
	0,  // 3: docstaging.v1.SubmitReviewResponse.record:type_name -> docstaging.v1.StagingRecord
	12, // 4: docstaging.v1.GetReviewQueueStatsResponse.status_counts:type_name -> docstaging.v1.GetReviewQueueStatsResponse.StatusCountsEntry
	1,  // 5: docstaging.v1.ReviewService.ListStagingRecords:input_type -> docstaging.v1.ListStagingRecordsRequest
	4,  // 6: docstaging.v1.ReviewService.GetStagingRecord:input_type -> docstaging.v1.GetStagingRecordRequest
	6,  // 7: docstaging.v1.ReviewService.SubmitReview:input_type -> docstaging.v1.SubmitReviewRequest
	8,  // 8: docstaging.v1.ReviewService.GetReviewQueueStats:input_type -> docstaging.v1.GetReviewQueueStatsRequest
	10, // 9: docstaging.v1.ExportService.ExportStagingRecords:input_type -> docstaging.v1.ExportStagingRecordsRequest
	2,  // 10: docstaging.v1.ReviewService.ListStagingRecords:output_type -> docstaging.v1.ListStagingRecordsResponse
	5,  // 11: docstaging.v1.ReviewService.GetStagingRecord:output_type -> docstaging.v1.GetStagingRecordResponse
	7,  // 12: docstaging.v1.ReviewService.SubmitReview:output_type -> docstaging.v1.SubmitReviewResponse
	9,  // 13: docstaging.v1.ReviewService.GetReviewQueueStats:output_type -> docstaging.v1.GetReviewQueueStatsResponse
	11, // 14: docstaging.v1.ExportService.ExportStagingRecords:output_type -> docstaging.v1.ExportStagingRecordsResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_docstaging_v1_docstaging_proto_init() }
func file_docstaging_v1_docstaging_proto_init() {
	if File_docstaging_v1_docstaging_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docstaging_v1_docstaging_proto_rawDesc), len(file_docstaging_v1_docstaging_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_docstaging_v1_docstaging_proto_goTypes,
		DependencyIndexes: file_docstaging_v1_docstaging_proto_depIdxs,
		MessageInfos:      file_docstaging_v1_docstaging_proto_msgTypes,
	}.Build()
	File_docstaging_v1_docstaging_proto = out.File
	file_docstaging_v1_docstaging_proto_goTypes = nil
	file_docstaging_v1_docstaging_proto_depIdxs = nil
}
