// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: bloodreport/v1/bloodreport.proto

package bloodreportv1

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

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{0}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Report struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Summary       string                 `protobuf:"bytes,5,opt,name=summary,proto3" json:"summary,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Report) Reset() {
	*x = Report{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Report) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Report) ProtoMessage() {}

func (x *Report) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Report.ProtoReflect.Descriptor instead.
func (*Report) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{1}
}

func (x *Report) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Report) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Report) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Report) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Report) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Report) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Metric struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value         float64                `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
	Unit          string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	ReferenceMin  float64                `protobuf:"fixed64,4,opt,name=reference_min,json=referenceMin,proto3" json:"reference_min,omitempty"`
	ReferenceMax  float64                `protobuf:"fixed64,5,opt,name=reference_max,json=referenceMax,proto3" json:"reference_max,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Metric) Reset() {
	*x = Metric{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Metric) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Metric) ProtoMessage() {}

func (x *Metric) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Metric.ProtoReflect.Descriptor instead.
func (*Metric) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{2}
}

func (x *Metric) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Metric) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Metric) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *Metric) GetReferenceMin() float64 {
	if x != nil {
		return x.ReferenceMin
	}
	return 0
}

func (x *Metric) GetReferenceMax() float64 {
	if x != nil {
		return x.ReferenceMax
	}
	return 0
}

func (x *Metric) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type AnalyzeReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeReportRequest) Reset() {
	*x = AnalyzeReportRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeReportRequest) ProtoMessage() {}

func (x *AnalyzeReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeReportRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeReportRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{3}
}

func (x *AnalyzeReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeReportRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *AnalyzeReportRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type AnalyzeReportResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Report          *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	Metrics         []*Metric              `protobuf:"bytes,2,rep,name=metrics,proto3" json:"metrics,omitempty"`
	Recommendations []string               `protobuf:"bytes,3,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	Pages           int32                  `protobuf:"varint,4,opt,name=pages,proto3" json:"pages,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AnalyzeReportResponse) Reset() {
	*x = AnalyzeReportResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeReportResponse) ProtoMessage() {}

func (x *AnalyzeReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeReportResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeReportResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{4}
}

func (x *AnalyzeReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

func (x *AnalyzeReportResponse) GetMetrics() []*Metric {
	if x != nil {
		return x.Metrics
	}
	return nil
}

func (x *AnalyzeReportResponse) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

func (x *AnalyzeReportResponse) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

type AnalyzeDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDirectoryRequest) Reset() {
	*x = AnalyzeDirectoryRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDirectoryRequest) ProtoMessage() {}

func (x *AnalyzeDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDirectoryRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{5}
}

func (x *AnalyzeDirectoryRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

type AnalyzeDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        int32                  `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	Skipped       int32                  `protobuf:"varint,2,opt,name=skipped,proto3" json:"skipped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDirectoryResponse) Reset() {
	*x = AnalyzeDirectoryResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDirectoryResponse) ProtoMessage() {}

func (x *AnalyzeDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDirectoryResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{6}
}

func (x *AnalyzeDirectoryResponse) GetQueued() int32 {
	if x != nil {
		return x.Queued
	}
	return 0
}

func (x *AnalyzeDirectoryResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

type GetReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportRequest) Reset() {
	*x = GetReportRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportRequest) ProtoMessage() {}

func (x *GetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportRequest.ProtoReflect.Descriptor instead.
func (*GetReportRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{7}
}

func (x *GetReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *GetReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetReportResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Report          *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	Metrics         []*Metric              `protobuf:"bytes,2,rep,name=metrics,proto3" json:"metrics,omitempty"`
	Recommendations []string               `protobuf:"bytes,3,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	ExtractedText   string                 `protobuf:"bytes,4,opt,name=extracted_text,json=extractedText,proto3" json:"extracted_text,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetReportResponse) Reset() {
	*x = GetReportResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportResponse) ProtoMessage() {}

func (x *GetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportResponse.ProtoReflect.Descriptor instead.
func (*GetReportResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{8}
}

func (x *GetReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

func (x *GetReportResponse) GetMetrics() []*Metric {
	if x != nil {
		return x.Metrics
	}
	return nil
}

func (x *GetReportResponse) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

func (x *GetReportResponse) GetExtractedText() string {
	if x != nil {
		return x.ExtractedText
	}
	return ""
}

type ListReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsRequest) Reset() {
	*x = ListReportsRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsRequest) ProtoMessage() {}

func (x *ListReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsRequest.ProtoReflect.Descriptor instead.
func (*ListReportsRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{9}
}

func (x *ListReportsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*Report              `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsResponse) Reset() {
	*x = ListReportsResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsResponse) ProtoMessage() {}

func (x *ListReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsResponse.ProtoReflect.Descriptor instead.
func (*ListReportsResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{10}
}

func (x *ListReportsResponse) GetReports() []*Report {
	if x != nil {
		return x.Reports
	}
	return nil
}

type DeleteReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReportRequest) Reset() {
	*x = DeleteReportRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReportRequest) ProtoMessage() {}

func (x *DeleteReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReportRequest.ProtoReflect.Descriptor instead.
func (*DeleteReportRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *DeleteReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type DeleteReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReportResponse) Reset() {
	*x = DeleteReportResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReportResponse) ProtoMessage() {}

func (x *DeleteReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReportResponse.ProtoReflect.Descriptor instead.
func (*DeleteReportResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteReportResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ExportReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportsRequest) Reset() {
	*x = ExportReportsRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsRequest) ProtoMessage() {}

func (x *ExportReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsRequest.ProtoReflect.Descriptor instead.
func (*ExportReportsRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{13}
}

func (x *ExportReportsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ExportReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportsResponse) Reset() {
	*x = ExportReportsResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsResponse) ProtoMessage() {}

func (x *ExportReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsResponse.ProtoReflect.Descriptor instead.
func (*ExportReportsResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{14}
}

func (x *ExportReportsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type CreateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{15}
}

func (x *CreateUserRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *CreateUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{16}
}

func (x *CreateUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type ListUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersRequest) Reset() {
	*x = ListUsersRequest{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersRequest) ProtoMessage() {}

func (x *ListUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersRequest.ProtoReflect.Descriptor instead.
func (*ListUsersRequest) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{17}
}

type ListUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersResponse) Reset() {
	*x = ListUsersResponse{}
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersResponse) ProtoMessage() {}

func (x *ListUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bloodreport_v1_bloodreport_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersResponse.ProtoReflect.Descriptor instead.
func (*ListUsersResponse) Descriptor() ([]byte, []int) {
	return file_bloodreport_v1_bloodreport_proto_rawDescGZIP(), []int{18}
}

func (x *ListUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

var File_bloodreport_v1_bloodreport_proto protoreflect.FileDescriptor

const file_bloodreport_v1_bloodreport_proto_rawDesc = "" +
	"\n" +
	" bloodreport/v1/bloodreport.proto\x12\x0ebloodreport.v1\"g\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"\x9e\x01\n" +
	"\x06Report\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x18\n" +
	"\asummary\x18\x05 \x01(\tR\asummary\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"\xa8\x01\n" +
	"\x06Metric\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12#\n" +
	"\rreference_min\x18\x04 \x01(\x01R\freferenceMin\x12#\n" +
	"\rreference_max\x18\x05 \x01(\x01R\freferenceMax\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\"e\n" +
	"\x14AnalyzeReportRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"\xb9\x01\n" +
	"\x15AnalyzeReportResponse\x12.\n" +
	"\x06report\x18\x01 \x01(\v2\x16.bloodreport.v1.ReportR\x06report\x120\n" +
	"\ametrics\x18\x02 \x03(\v2\x16.bloodreport.v1.MetricR\ametrics\x12(\n" +
	"\x0frecommendations\x18\x03 \x03(\tR\x0frecommendations\x12\x14\n" +
	"\x05pages\x18\x04 \x01(\x05R\x05pages\"O\n" +
	"\x17AnalyzeDirectoryRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\"L\n" +
	"\x18AnalyzeDirectoryResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\x05R\x06queued\x12\x18\n" +
	"\askipped\x18\x02 \x01(\x05R\askipped\"H\n" +
	"\x10GetReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"\xc6\x01\n" +
	"\x11GetReportResponse\x12.\n" +
	"\x06report\x18\x01 \x01(\v2\x16.bloodreport.v1.ReportR\x06report\x120\n" +
	"\ametrics\x18\x02 \x03(\v2\x16.bloodreport.v1.MetricR\ametrics\x12(\n" +
	"\x0frecommendations\x18\x03 \x03(\tR\x0frecommendations\x12%\n" +
	"\x0eextracted_text\x18\x04 \x01(\tR\rextractedText\"-\n" +
	"\x12ListReportsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"G\n" +
	"\x13ListReportsResponse\x120\n" +
	"\areports\x18\x01 \x03(\v2\x16.bloodreport.v1.ReportR\areports\"K\n" +
	"\x13DeleteReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"0\n" +
	"\x14DeleteReportResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"/\n" +
	"\x14ExportReportsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"+\n" +
	"\x15ExportReportsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"E\n" +
	"\x11CreateUserRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\">\n" +
	"\x12CreateUserResponse\x12(\n" +
	"\x04user\x18\x01 \x01(\v2\x14.bloodreport.v1.UserR\x04user\"\x12\n" +
	"\x10ListUsersRequest\"?\n" +
	"\x11ListUsersResponse\x12*\n" +
	"\x05users\x18\x01 \x03(\v2\x14.bloodreport.v1.UserR\x05users2\xb8\x04\n" +
	"\x0eReportsService\x12\\\n" +
	"\rAnalyzeReport\x12$.bloodreport.v1.AnalyzeReportRequest\x1a%.bloodreport.v1.AnalyzeReportResponse\x12e\n" +
	"\x10AnalyzeDirectory\x12'.bloodreport.v1.AnalyzeDirectoryRequest\x1a(.bloodreport.v1.AnalyzeDirectoryResponse\x12P\n" +
	"\tGetReport\x12 .bloodreport.v1.GetReportRequest\x1a!.bloodreport.v1.GetReportResponse\x12V\n" +
	"\vListReports\x12\".bloodreport.v1.ListReportsRequest\x1a#.bloodreport.v1.ListReportsResponse\x12Y\n" +
	"\fDeleteReport\x12#.bloodreport.v1.DeleteReportRequest\x1a$.bloodreport.v1.DeleteReportResponse\x12\\\n" +
	"\rExportReports\x12$.bloodreport.v1.ExportReportsRequest\x1a%.bloodreport.v1.ExportReportsResponse2\xb5\x01\n" +
	"\fUsersService\x12S\n" +
	"\n" +
	"CreateUser\x12!.bloodreport.v1.CreateUserRequest\x1a\".bloodreport.v1.CreateUserResponse\x12P\n" +
	"\tListUsers\x12 .bloodreport.v1.ListUsersRequest\x1a!.bloodreport.v1.ListUsersResponseBSZQgithub.com/medalizer/blood-report-analyzer/gen/proto/bloodreport/v1;bloodreportv1b\x06proto3"

var (
	file_bloodreport_v1_bloodreport_proto_rawDescOnce sync.Once
	file_bloodreport_v1_bloodreport_proto_rawDescData []byte
)

func file_bloodreport_v1_bloodreport_proto_rawDescGZIP() []byte {
	file_bloodreport_v1_bloodreport_proto_rawDescOnce.Do(func() {
		file_bloodreport_v1_bloodreport_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_bloodreport_v1_bloodreport_proto_rawDesc), len(file_bloodreport_v1_bloodreport_proto_rawDesc)))
	})
	return file_bloodreport_v1_bloodreport_proto_rawDescData
}

var file_bloodreport_v1_bloodreport_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_bloodreport_v1_bloodreport_proto_goTypes = []any{
	(*User)(nil),                     // 0: bloodreport.v1.User
	(*Report)(nil),                   // 1: bloodreport.v1.Report
	(*Metric)(nil),                   // 2: bloodreport.v1.Metric
	(*AnalyzeReportRequest)(nil),     // 3: bloodreport.v1.AnalyzeReportRequest
	(*AnalyzeReportResponse)(nil),    // 4: bloodreport.v1.AnalyzeReportResponse
	(*AnalyzeDirectoryRequest)(nil),  // 5: bloodreport.v1.AnalyzeDirectoryRequest
	(*AnalyzeDirectoryResponse)(nil), // 6: bloodreport.v1.AnalyzeDirectoryResponse
	(*GetReportRequest)(nil),         // 7: bloodreport.v1.GetReportRequest
	(*GetReportResponse)(nil),        // 8: bloodreport.v1.GetReportResponse
	(*ListReportsRequest)(nil),       // 9: bloodreport.v1.ListReportsRequest
	(*ListReportsResponse)(nil),      // 10: bloodreport.v1.ListReportsResponse
	(*DeleteReportRequest)(nil),      // 11: bloodreport.v1.DeleteReportRequest
	(*DeleteReportResponse)(nil),     // 12: bloodreport.v1.DeleteReportResponse
	(*ExportReportsRequest)(nil),     // 13: bloodreport.v1.ExportReportsRequest
	(*ExportReportsResponse)(nil),    // 14: bloodreport.v1.ExportReportsResponse
	(*CreateUserRequest)(nil),        // 15: bloodreport.v1.CreateUserRequest
	(*CreateUserResponse)(nil),       // 16: bloodreport.v1.CreateUserResponse
	(*ListUsersRequest)(nil),         // 17: bloodreport.v1.ListUsersRequest
	(*ListUsersResponse)(nil),        // 18: bloodreport.v1.ListUsersResponse
}
var file_bloodreport_v1_bloodreport_proto_depIdxs = []int32{
	1,  // 0: bloodreport.v1.AnalyzeReportResponse.report:type_name -> bloodreport.v1.Report
	2,  // 1: bloodreport.v1.AnalyzeReportResponse.metrics:type_name -> bloodreport.v1.Metric
	1,  // 2: bloodreport.v1.GetReportResponse.report:type_name -> bloodreport.v1.Report
	2,  // 3: bloodreport.v1.GetReportResponse.metrics:type_name -> bloodreport.v1.Metric
	1,  // 4: bloodreport.v1.ListReportsResponse.reports:type_name -> bloodreport.v1.Report
	0,  // 5: bloodreport.v1.CreateUserResponse.user:type_name -> bloodreport.v1.User
	0,  // 6: bloodreport.v1.ListUsersResponse.users:type_name -> bloodreport.v1.User
	3,  // 7: bloodreport.v1.ReportsService.AnalyzeReport:input_type -> bloodreport.v1.AnalyzeReportRequest
	5,  // 8: bloodreport.v1.ReportsService.AnalyzeDirectory:input_type -> bloodreport.v1.AnalyzeDirectoryRequest
	7,  // 9: bloodreport.v1.ReportsService.GetReport:input_type -> bloodreport.v1.GetReportRequest
	9,  // 10: bloodreport.v1.ReportsService.ListReports:input_type -> bloodreport.v1.ListReportsRequest
	11, // 11: bloodreport.v1.ReportsService.DeleteReport:input_type -> bloodreport.v1.DeleteReportRequest
	13, // 12: bloodreport.v1.ReportsService.ExportReports:input_type -> bloodreport.v1.ExportReportsRequest
	15, // 13: bloodreport.v1.UsersService.CreateUser:input_type -> bloodreport.v1.CreateUserRequest
	17, // 14: bloodreport.v1.UsersService.ListUsers:input_type -> bloodreport.v1.ListUsersRequest
	4,  // 15: bloodreport.v1.ReportsService.AnalyzeReport:output_type -> bloodreport.v1.AnalyzeReportResponse
	6,  // 16: bloodreport.v1.ReportsService.AnalyzeDirectory:output_type -> bloodreport.v1.AnalyzeDirectoryResponse
	8,  // 17: bloodreport.v1.ReportsService.GetReport:output_type -> bloodreport.v1.GetReportResponse
	10, // 18: bloodreport.v1.ReportsService.ListReports:output_type -> bloodreport.v1.ListReportsResponse
	12, // 19: bloodreport.v1.ReportsService.DeleteReport:output_type -> bloodreport.v1.DeleteReportResponse
	14, // 20: bloodreport.v1.ReportsService.ExportReports:output_type -> bloodreport.v1.ExportReportsResponse
	16, // 21: bloodreport.v1.UsersService.CreateUser:output_type -> bloodreport.v1.CreateUserResponse
	18, // 22: bloodreport.v1.UsersService.ListUsers:output_type -> bloodreport.v1.ListUsersResponse
	15, // [15:23] is the sub-list for method output_type
	7,  // [7:15] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_bloodreport_v1_bloodreport_proto_init() }
func file_bloodreport_v1_bloodreport_proto_init() {
	if File_bloodreport_v1_bloodreport_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_bloodreport_v1_bloodreport_proto_rawDesc), len(file_bloodreport_v1_bloodreport_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_bloodreport_v1_bloodreport_proto_goTypes,
		DependencyIndexes: file_bloodreport_v1_bloodreport_proto_depIdxs,
		MessageInfos:      file_bloodreport_v1_bloodreport_proto_msgTypes,
	}.Build()
	File_bloodreport_v1_bloodreport_proto = out.File
	file_bloodreport_v1_bloodreport_proto_goTypes = nil
	file_bloodreport_v1_bloodreport_proto_depIdxs = nil
}
