// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ocr/v1/ocr_insights.proto

package ocrv1

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

type OcrResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId  string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FieldKey       string                 `protobuf:"bytes,3,opt,name=field_key,json=fieldKey,proto3" json:"field_key,omitempty"`
	ExtractedValue string                 `protobuf:"bytes,4,opt,name=extracted_value,json=extractedValue,proto3" json:"extracted_value,omitempty"`
	Confidence     float32                `protobuf:"fixed32,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	SourcePage     int32                  `protobuf:"varint,6,opt,name=source_page,json=sourcePage,proto3" json:"source_page,omitempty"`
	ExtractedAt    string                 `protobuf:"bytes,7,opt,name=extracted_at,json=extractedAt,proto3" json:"extracted_at,omitempty"` // RFC3339
	RunId          string                 `protobuf:"bytes,8,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Version        int32                  `protobuf:"varint,9,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *OcrResult) Reset() {
	*x = OcrResult{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OcrResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OcrResult) ProtoMessage() {}

func (x *OcrResult) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OcrResult.ProtoReflect.Descriptor instead.
func (*OcrResult) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{0}
}

func (x *OcrResult) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *OcrResult) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *OcrResult) GetFieldKey() string {
	if x != nil {
		return x.FieldKey
	}
	return ""
}

func (x *OcrResult) GetExtractedValue() string {
	if x != nil {
		return x.ExtractedValue
	}
	return ""
}

func (x *OcrResult) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *OcrResult) GetSourcePage() int32 {
	if x != nil {
		return x.SourcePage
	}
	return 0
}

func (x *OcrResult) GetExtractedAt() string {
	if x != nil {
		return x.ExtractedAt
	}
	return ""
}

func (x *OcrResult) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *OcrResult) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

type ValueRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValueRef) Reset() {
	*x = ValueRef{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValueRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValueRef) ProtoMessage() {}

func (x *ValueRef) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValueRef.ProtoReflect.Descriptor instead.
func (*ValueRef) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{1}
}

func (x *ValueRef) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ValueRef) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type MismatchFlag struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FieldKey      string                 `protobuf:"bytes,1,opt,name=field_key,json=fieldKey,proto3" json:"field_key,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	ConflictsWith []*ValueRef            `protobuf:"bytes,4,rep,name=conflicts_with,json=conflictsWith,proto3" json:"conflicts_with,omitempty"`
	Severity      string                 `protobuf:"bytes,5,opt,name=severity,proto3" json:"severity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MismatchFlag) Reset() {
	*x = MismatchFlag{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MismatchFlag) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MismatchFlag) ProtoMessage() {}

func (x *MismatchFlag) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MismatchFlag.ProtoReflect.Descriptor instead.
func (*MismatchFlag) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{2}
}

func (x *MismatchFlag) GetFieldKey() string {
	if x != nil {
		return x.FieldKey
	}
	return ""
}

func (x *MismatchFlag) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *MismatchFlag) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *MismatchFlag) GetConflictsWith() []*ValueRef {
	if x != nil {
		return x.ConflictsWith
	}
	return nil
}

func (x *MismatchFlag) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

type InsightRow struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	FieldKey         string                 `protobuf:"bytes,1,opt,name=field_key,json=fieldKey,proto3" json:"field_key,omitempty"`
	Label            string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	DocumentId       string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	DocumentName     string                 `protobuf:"bytes,4,opt,name=document_name,json=documentName,proto3" json:"document_name,omitempty"`
	DocumentCategory string                 `protobuf:"bytes,5,opt,name=document_category,json=documentCategory,proto3" json:"document_category,omitempty"`
	Value            string                 `protobuf:"bytes,6,opt,name=value,proto3" json:"value,omitempty"`
	Conflict         bool                   `protobuf:"varint,7,opt,name=conflict,proto3" json:"conflict,omitempty"`
	ComparisonValues []string               `protobuf:"bytes,8,rep,name=comparison_values,json=comparisonValues,proto3" json:"comparison_values,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *InsightRow) Reset() {
	*x = InsightRow{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InsightRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InsightRow) ProtoMessage() {}

func (x *InsightRow) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InsightRow.ProtoReflect.Descriptor instead.
func (*InsightRow) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{3}
}

func (x *InsightRow) GetFieldKey() string {
	if x != nil {
		return x.FieldKey
	}
	return ""
}

func (x *InsightRow) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *InsightRow) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *InsightRow) GetDocumentName() string {
	if x != nil {
		return x.DocumentName
	}
	return ""
}

func (x *InsightRow) GetDocumentCategory() string {
	if x != nil {
		return x.DocumentCategory
	}
	return ""
}

func (x *InsightRow) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *InsightRow) GetConflict() bool {
	if x != nil {
		return x.Conflict
	}
	return false
}

func (x *InsightRow) GetComparisonValues() []string {
	if x != nil {
		return x.ComparisonValues
	}
	return nil
}

type CategoryGroup struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Rows          []*InsightRow          `protobuf:"bytes,2,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryGroup) Reset() {
	*x = CategoryGroup{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryGroup) ProtoMessage() {}

func (x *CategoryGroup) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryGroup.ProtoReflect.Descriptor instead.
func (*CategoryGroup) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{4}
}

func (x *CategoryGroup) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryGroup) GetRows() []*InsightRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

type GetOcrInsightsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOcrInsightsRequest) Reset() {
	*x = GetOcrInsightsRequest{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOcrInsightsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOcrInsightsRequest) ProtoMessage() {}

func (x *GetOcrInsightsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOcrInsightsRequest.ProtoReflect.Descriptor instead.
func (*GetOcrInsightsRequest) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{5}
}

func (x *GetOcrInsightsRequest) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

type GetOcrInsightsResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId         string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	Results               []*OcrResult           `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	MismatchFlags         []*MismatchFlag        `protobuf:"bytes,3,rep,name=mismatch_flags,json=mismatchFlags,proto3" json:"mismatch_flags,omitempty"`
	MissingRequiredFields []string               `protobuf:"bytes,4,rep,name=missing_required_fields,json=missingRequiredFields,proto3" json:"missing_required_fields,omitempty"`
	SkippedFields         []string               `protobuf:"bytes,5,rep,name=skipped_fields,json=skippedFields,proto3" json:"skipped_fields,omitempty"`
	Categories            []*CategoryGroup       `protobuf:"bytes,6,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *GetOcrInsightsResponse) Reset() {
	*x = GetOcrInsightsResponse{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOcrInsightsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOcrInsightsResponse) ProtoMessage() {}

func (x *GetOcrInsightsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOcrInsightsResponse.ProtoReflect.Descriptor instead.
func (*GetOcrInsightsResponse) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{6}
}

func (x *GetOcrInsightsResponse) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *GetOcrInsightsResponse) GetResults() []*OcrResult {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *GetOcrInsightsResponse) GetMismatchFlags() []*MismatchFlag {
	if x != nil {
		return x.MismatchFlags
	}
	return nil
}

func (x *GetOcrInsightsResponse) GetMissingRequiredFields() []string {
	if x != nil {
		return x.MissingRequiredFields
	}
	return nil
}

func (x *GetOcrInsightsResponse) GetSkippedFields() []string {
	if x != nil {
		return x.SkippedFields
	}
	return nil
}

func (x *GetOcrInsightsResponse) GetCategories() []*CategoryGroup {
	if x != nil {
		return x.Categories
	}
	return nil
}

type ListResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsRequest) Reset() {
	*x = ListResultsRequest{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsRequest) ProtoMessage() {}

func (x *ListResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsRequest.ProtoReflect.Descriptor instead.
func (*ListResultsRequest) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{7}
}

func (x *ListResultsRequest) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

type ListResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*OcrResult           `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsResponse) Reset() {
	*x = ListResultsResponse{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsResponse) ProtoMessage() {}

func (x *ListResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsResponse.ProtoReflect.Descriptor instead.
func (*ListResultsResponse) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{8}
}

func (x *ListResultsResponse) GetResults() []*OcrResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type IngestRecord struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId  string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FieldKey       string                 `protobuf:"bytes,3,opt,name=field_key,json=fieldKey,proto3" json:"field_key,omitempty"`
	ExtractedValue string                 `protobuf:"bytes,4,opt,name=extracted_value,json=extractedValue,proto3" json:"extracted_value,omitempty"`
	Confidence     float32                `protobuf:"fixed32,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	SourcePage     int32                  `protobuf:"varint,6,opt,name=source_page,json=sourcePage,proto3" json:"source_page,omitempty"`
	ExtractedAt    string                 `protobuf:"bytes,7,opt,name=extracted_at,json=extractedAt,proto3" json:"extracted_at,omitempty"` // RFC3339
	RunId          string                 `protobuf:"bytes,8,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestRecord) Reset() {
	*x = IngestRecord{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestRecord) ProtoMessage() {}

func (x *IngestRecord) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestRecord.ProtoReflect.Descriptor instead.
func (*IngestRecord) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{9}
}

func (x *IngestRecord) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *IngestRecord) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestRecord) GetFieldKey() string {
	if x != nil {
		return x.FieldKey
	}
	return ""
}

func (x *IngestRecord) GetExtractedValue() string {
	if x != nil {
		return x.ExtractedValue
	}
	return ""
}

func (x *IngestRecord) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *IngestRecord) GetSourcePage() int32 {
	if x != nil {
		return x.SourcePage
	}
	return 0
}

func (x *IngestRecord) GetExtractedAt() string {
	if x != nil {
		return x.ExtractedAt
	}
	return ""
}

func (x *IngestRecord) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type IngestResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*IngestRecord        `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestResultsRequest) Reset() {
	*x = IngestResultsRequest{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResultsRequest) ProtoMessage() {}

func (x *IngestResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResultsRequest.ProtoReflect.Descriptor instead.
func (*IngestResultsRequest) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{10}
}

func (x *IngestResultsRequest) GetRecords() []*IngestRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type IngestResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stored        int32                  `protobuf:"varint,1,opt,name=stored,proto3" json:"stored,omitempty"`
	Skipped       int32                  `protobuf:"varint,2,opt,name=skipped,proto3" json:"skipped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestResultsResponse) Reset() {
	*x = IngestResultsResponse{}
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResultsResponse) ProtoMessage() {}

func (x *IngestResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ocr_v1_ocr_insights_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResultsResponse.ProtoReflect.Descriptor instead.
func (*IngestResultsResponse) Descriptor() ([]byte, []int) {
	return file_ocr_v1_ocr_insights_proto_rawDescGZIP(), []int{11}
}

func (x *IngestResultsResponse) GetStored() int32 {
	if x != nil {
		return x.Stored
	}
	return 0
}

func (x *IngestResultsResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

var File_ocr_v1_ocr_insights_proto protoreflect.FileDescriptor

const file_ocr_v1_ocr_insights_proto_rawDesc = "" +
	"\n" +
	"\x19ocr/v1/ocr_insights.proto\x12\x06ocr.v1\"\xae\x02\n" +
	"\tOcrResult\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tfield_key\x18\x03 \x01(\tR\bfieldKey\x12'\n" +
	"\x0fextracted_value\x18\x04 \x01(\tR\x0eextractedValue\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02R\n" +
	"confidence\x12\x1f\n" +
	"\vsource_page\x18\x06 \x01(\x05R\n" +
	"sourcePage\x12!\n" +
	"\fextracted_at\x18\a \x01(\tR\vextractedAt\x12\x15\n" +
	"\x06run_id\x18\b \x01(\tR\x05runId\x12\x18\n" +
	"\aversion\x18\t \x01(\x05R\aversion\"A\n" +
	"\bValueRef\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"\xb7\x01\n" +
	"\fMismatchFlag\x12\x1b\n" +
	"\tfield_key\x18\x01 \x01(\tR\bfieldKey\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\x127\n" +
	"\x0econflicts_with\x18\x04 \x03(\v2\x10.ocr.v1.ValueRefR\rconflictsWith\x12\x1a\n" +
	"\bseverity\x18\x05 \x01(\tR\bseverity\"\x91\x02\n" +
	"\n" +
	"InsightRow\x12\x1b\n" +
	"\tfield_key\x18\x01 \x01(\tR\bfieldKey\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rdocument_name\x18\x04 \x01(\tR\fdocumentName\x12+\n" +
	"\x11document_category\x18\x05 \x01(\tR\x10documentCategory\x12\x14\n" +
	"\x05value\x18\x06 \x01(\tR\x05value\x12\x1a\n" +
	"\bconflict\x18\a \x01(\bR\bconflict\x12+\n" +
	"\x11comparison_values\x18\b \x03(\tR\x10comparisonValues\"S\n" +
	"\rCategoryGroup\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12&\n" +
	"\x04rows\x18\x02 \x03(\v2\x12.ocr.v1.InsightRowR\x04rows\">\n" +
	"\x15GetOcrInsightsRequest\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\"\xbf\x02\n" +
	"\x16GetOcrInsightsResponse\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\x12+\n" +
	"\aresults\x18\x02 \x03(\v2\x11.ocr.v1.OcrResultR\aresults\x12;\n" +
	"\x0emismatch_flags\x18\x03 \x03(\v2\x14.ocr.v1.MismatchFlagR\rmismatchFlags\x126\n" +
	"\x17missing_required_fields\x18\x04 \x03(\tR\x15missingRequiredFields\x12%\n" +
	"\x0eskipped_fields\x18\x05 \x03(\tR\rskippedFields\x125\n" +
	"\n" +
	"categories\x18\x06 \x03(\v2\x15.ocr.v1.CategoryGroupR\n" +
	"categories\";\n" +
	"\x12ListResultsRequest\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\"B\n" +
	"\x13ListResultsResponse\x12+\n" +
	"\aresults\x18\x01 \x03(\v2\x11.ocr.v1.OcrResultR\aresults\"\x97\x02\n" +
	"\fIngestRecord\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tfield_key\x18\x03 \x01(\tR\bfieldKey\x12'\n" +
	"\x0fextracted_value\x18\x04 \x01(\tR\x0eextractedValue\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02R\n" +
	"confidence\x12\x1f\n" +
	"\vsource_page\x18\x06 \x01(\x05R\n" +
	"sourcePage\x12!\n" +
	"\fextracted_at\x18\a \x01(\tR\vextractedAt\x12\x15\n" +
	"\x06run_id\x18\b \x01(\tR\x05runId\"F\n" +
	"\x14IngestResultsRequest\x12.\n" +
	"\arecords\x18\x01 \x03(\v2\x14.ocr.v1.IngestRecordR\arecords\"I\n" +
	"\x15IngestResultsResponse\x12\x16\n" +
	"\x06stored\x18\x01 \x01(\x05R\x06stored\x12\x18\n" +
	"\askipped\x18\x02 \x01(\x05R\askipped2\xfb\x01\n" +
	"\x12OcrInsightsService\x12O\n" +
	"\x0eGetOcrInsights\x12\x1d.ocr.v1.GetOcrInsightsRequest\x1a\x1e.ocr.v1.GetOcrInsightsResponse\x12F\n" +
	"\vListResults\x12\x1a.ocr.v1.ListResultsRequest\x1a\x1b.ocr.v1.ListResultsResponse\x12L\n" +
	"\rIngestResults\x12\x1c.ocr.v1.IngestResultsRequest\x1a\x1d.ocr.v1.IngestResultsResponseB:Z8github.com/werb210/ocr-reconciler/gen/proto/ocr/v1;ocrv1b\x06proto3"

var (
	file_ocr_v1_ocr_insights_proto_rawDescOnce sync.Once
	file_ocr_v1_ocr_insights_proto_rawDescData []byte
)

func file_ocr_v1_ocr_insights_proto_rawDescGZIP() []byte {
	file_ocr_v1_ocr_insights_proto_rawDescOnce.Do(func() {
		file_ocr_v1_ocr_insights_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ocr_v1_ocr_insights_proto_rawDesc), len(file_ocr_v1_ocr_insights_proto_rawDesc)))
	})
	return file_ocr_v1_ocr_insights_proto_rawDescData
}

var file_ocr_v1_ocr_insights_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_ocr_v1_ocr_insights_proto_goTypes = []any{
	(*OcrResult)(nil),              // 0: ocr.v1.OcrResult
	(*ValueRef)(nil),               // 1: ocr.v1.ValueRef
	(*MismatchFlag)(nil),           // 2: ocr.v1.MismatchFlag
	(*InsightRow)(nil),             // 3: ocr.v1.InsightRow
	(*CategoryGroup)(nil),          // 4: ocr.v1.CategoryGroup
	(*GetOcrInsightsRequest)(nil),  // 5: ocr.v1.GetOcrInsightsRequest
	(*GetOcrInsightsResponse)(nil), // 6: ocr.v1.GetOcrInsightsResponse
	(*ListResultsRequest)(nil),     // 7: ocr.v1.ListResultsRequest
	(*ListResultsResponse)(nil),    // 8: ocr.v1.ListResultsResponse
	(*IngestRecord)(nil),           // 9: ocr.v1.IngestRecord
	(*IngestResultsRequest)(nil),   // 10: ocr.v1.IngestResultsRequest
	(*IngestResultsResponse)(nil),  // 11: ocr.v1.IngestResultsResponse
}
var file_ocr_v1_ocr_insights_proto_depIdxs = []int32{
	1,  // 0: ocr.v1.MismatchFlag.conflicts_with:type_name -> ocr.v1.ValueRef
	3,  // 1: ocr.v1.CategoryGroup.rows:type_name -> ocr.v1.InsightRow
	0,  // 2: ocr.v1.GetOcrInsightsResponse.results:type_name -> ocr.v1.OcrResult
	2,  // 3: ocr.v1.GetOcrInsightsResponse.mismatch_flags:type_name -> ocr.v1.MismatchFlag
	4,  // 4: ocr.v1.GetOcrInsightsResponse.categories:type_name -> ocr.v1.CategoryGroup
	0,  // 5: ocr.v1.ListResultsResponse.results:type_name -> ocr.v1.OcrResult
	9,  // 6: ocr.v1.IngestResultsRequest.records:type_name -> ocr.v1.IngestRecord
	5,  // 7: ocr.v1.OcrInsightsService.GetOcrInsights:input_type -> ocr.v1.GetOcrInsightsRequest
	7,  // 8: ocr.v1.OcrInsightsService.ListResults:input_type -> ocr.v1.ListResultsRequest
	10, // 9: ocr.v1.OcrInsightsService.IngestResults:input_type -> ocr.v1.IngestResultsRequest
	6,  // 10: ocr.v1.OcrInsightsService.GetOcrInsights:output_type -> ocr.v1.GetOcrInsightsResponse
	8,  // 11: ocr.v1.OcrInsightsService.ListResults:output_type -> ocr.v1.ListResultsResponse
	11, // 12: ocr.v1.OcrInsightsService.IngestResults:output_type -> ocr.v1.IngestResultsResponse
	10, // [10:13] is the sub-list for method output_type
	7,  // [7:10] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_ocr_v1_ocr_insights_proto_init() }
func file_ocr_v1_ocr_insights_proto_init() {
	if File_ocr_v1_ocr_insights_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ocr_v1_ocr_insights_proto_rawDesc), len(file_ocr_v1_ocr_insights_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ocr_v1_ocr_insights_proto_goTypes,
		DependencyIndexes: file_ocr_v1_ocr_insights_proto_depIdxs,
		MessageInfos:      file_ocr_v1_ocr_insights_proto_msgTypes,
	}.Build()
	File_ocr_v1_ocr_insights_proto = out.File
	file_ocr_v1_ocr_insights_proto_goTypes = nil
	file_ocr_v1_ocr_insights_proto_depIdxs = nil
}
