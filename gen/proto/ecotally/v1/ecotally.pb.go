// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ecotally/v1/ecotally.proto

package ecotallyv1

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

type ReceiptItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Price         string                 `protobuf:"bytes,3,opt,name=price,proto3" json:"price,omitempty"` // decimal string, e.g. "3.50"
	Quantity      int32                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	Confidence    float64                `protobuf:"fixed64,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptItem) Reset() {
	*x = ReceiptItem{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptItem) ProtoMessage() {}

func (x *ReceiptItem) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptItem.ProtoReflect.Descriptor instead.
func (*ReceiptItem) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{0}
}

func (x *ReceiptItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReceiptItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ReceiptItem) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *ReceiptItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ReceiptItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ReceiptItem) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type Receipt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StoreName     string                 `protobuf:"bytes,2,opt,name=store_name,json=storeName,proto3" json:"store_name,omitempty"`
	PurchaseDate  string                 `protobuf:"bytes,3,opt,name=purchase_date,json=purchaseDate,proto3" json:"purchase_date,omitempty"` // YYYY-MM-DD
	Total         string                 `protobuf:"bytes,4,opt,name=total,proto3" json:"total,omitempty"`                                   // decimal string
	CurrencyCode  string                 `protobuf:"bytes,5,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Category      string                 `protobuf:"bytes,6,opt,name=category,proto3" json:"category,omitempty"`
	EcoScore      int32                  `protobuf:"varint,7,opt,name=eco_score,json=ecoScore,proto3" json:"eco_score,omitempty"`
	EcoGrade      string                 `protobuf:"bytes,8,opt,name=eco_grade,json=ecoGrade,proto3" json:"eco_grade,omitempty"`
	Items         []*ReceiptItem         `protobuf:"bytes,9,rep,name=items,proto3" json:"items,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{1}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetStoreName() string {
	if x != nil {
		return x.StoreName
	}
	return ""
}

func (x *Receipt) GetPurchaseDate() string {
	if x != nil {
		return x.PurchaseDate
	}
	return ""
}

func (x *Receipt) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *Receipt) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Receipt) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Receipt) GetEcoScore() int32 {
	if x != nil {
		return x.EcoScore
	}
	return 0
}

func (x *Receipt) GetEcoGrade() string {
	if x != nil {
		return x.EcoGrade
	}
	return ""
}

func (x *Receipt) GetItems() []*ReceiptItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Receipt) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Vertex struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             int32                  `protobuf:"varint,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             int32                  `protobuf:"varint,2,opt,name=y,proto3" json:"y,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vertex) Reset() {
	*x = Vertex{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vertex) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vertex) ProtoMessage() {}

func (x *Vertex) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vertex.ProtoReflect.Descriptor instead.
func (*Vertex) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{2}
}

func (x *Vertex) GetX() int32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Vertex) GetY() int32 {
	if x != nil {
		return x.Y
	}
	return 0
}

type BoundingBox struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// four corners, clockwise from top-left
	Vertices      []*Vertex `protobuf:"bytes,1,rep,name=vertices,proto3" json:"vertices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoundingBox) Reset() {
	*x = BoundingBox{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoundingBox) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoundingBox) ProtoMessage() {}

func (x *BoundingBox) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoundingBox.ProtoReflect.Descriptor instead.
func (*BoundingBox) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{3}
}

func (x *BoundingBox) GetVertices() []*Vertex {
	if x != nil {
		return x.Vertices
	}
	return nil
}

type WordAnnotation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	BoundingBox   *BoundingBox           `protobuf:"bytes,2,opt,name=bounding_box,json=boundingBox,proto3" json:"bounding_box,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WordAnnotation) Reset() {
	*x = WordAnnotation{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WordAnnotation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WordAnnotation) ProtoMessage() {}

func (x *WordAnnotation) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WordAnnotation.ProtoReflect.Descriptor instead.
func (*WordAnnotation) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{4}
}

func (x *WordAnnotation) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *WordAnnotation) GetBoundingBox() *BoundingBox {
	if x != nil {
		return x.BoundingBox
	}
	return nil
}

type ParseReceiptRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	RawText string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	// optional word-level geometry; enables spatial item extraction
	Words         []*WordAnnotation `protobuf:"bytes,2,rep,name=words,proto3" json:"words,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseReceiptRequest) Reset() {
	*x = ParseReceiptRequest{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptRequest) ProtoMessage() {}

func (x *ParseReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptRequest.ProtoReflect.Descriptor instead.
func (*ParseReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{5}
}

func (x *ParseReceiptRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ParseReceiptRequest) GetWords() []*WordAnnotation {
	if x != nil {
		return x.Words
	}
	return nil
}

type ParseReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseReceiptResponse) Reset() {
	*x = ParseReceiptResponse{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptResponse) ProtoMessage() {}

func (x *ParseReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptResponse.ProtoReflect.Descriptor instead.
func (*ParseReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{6}
}

func (x *ParseReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{7}
}

func (x *GetReceiptRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{8}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{9}
}

func (x *ListReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{10}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ExportReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{11}
}

func (x *ExportReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ecotally_v1_ecotally_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_ecotally_v1_ecotally_proto_rawDescGZIP(), []int{12}
}

func (x *ExportReceiptsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_ecotally_v1_ecotally_proto protoreflect.FileDescriptor

const file_ecotally_v1_ecotally_proto_rawDesc = "" +
	"\n" +
	"\x1aecotally/v1/ecotally.proto\x12\vecotally.v1\"\x9f\x01\n" +
	"\vReceiptItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x03 \x01(\tR\x05price\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x05R\bquantity\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x01R\n" +
	"confidence\"\xdc\x02\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"store_name\x18\x02 \x01(\tR\tstoreName\x12#\n" +
	"\rpurchase_date\x18\x03 \x01(\tR\fpurchaseDate\x12\x14\n" +
	"\x05total\x18\x04 \x01(\tR\x05total\x12#\n" +
	"\rcurrency_code\x18\x05 \x01(\tR\fcurrencyCode\x12\x1a\n" +
	"\bcategory\x18\x06 \x01(\tR\bcategory\x12\x1b\n" +
	"\teco_score\x18\a \x01(\x05R\becoScore\x12\x1b\n" +
	"\teco_grade\x18\b \x01(\tR\becoGrade\x12.\n" +
	"\x05items\x18\t \x03(\v2\x18.ecotally.v1.ReceiptItemR\x05items\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"$\n" +
	"\x06Vertex\x12\f\n" +
	"\x01x\x18\x01 \x01(\x05R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x05R\x01y\">\n" +
	"\vBoundingBox\x12/\n" +
	"\bvertices\x18\x01 \x03(\v2\x13.ecotally.v1.VertexR\bvertices\"a\n" +
	"\x0eWordAnnotation\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12;\n" +
	"\fbounding_box\x18\x02 \x01(\v2\x18.ecotally.v1.BoundingBoxR\vboundingBox\"c\n" +
	"\x13ParseReceiptRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x121\n" +
	"\x05words\x18\x02 \x03(\v2\x1b.ecotally.v1.WordAnnotationR\x05words\"F\n" +
	"\x14ParseReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.ecotally.v1.ReceiptR\areceipt\"#\n" +
	"\x11GetReceiptRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"D\n" +
	"\x12GetReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.ecotally.v1.ReceiptR\areceipt\"K\n" +
	"\x13ListReceiptsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"H\n" +
	"\x14ListReceiptsResponse\x120\n" +
	"\breceipts\x18\x01 \x03(\v2\x14.ecotally.v1.ReceiptR\breceipts\"M\n" +
	"\x15ExportReceiptsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\",\n" +
	"\x16ExportReceiptsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x8a\x02\n" +
	"\x0fReceiptsService\x12S\n" +
	"\fParseReceipt\x12 .ecotally.v1.ParseReceiptRequest\x1a!.ecotally.v1.ParseReceiptResponse\x12M\n" +
	"\n" +
	"GetReceipt\x12\x1e.ecotally.v1.GetReceiptRequest\x1a\x1f.ecotally.v1.GetReceiptResponse\x12S\n" +
	"\fListReceipts\x12 .ecotally.v1.ListReceiptsRequest\x1a!.ecotally.v1.ListReceiptsResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportReceipts\x12\".ecotally.v1.ExportReceiptsRequest\x1a#.ecotally.v1.ExportReceiptsResponseB?Z=github.com/ecotally/ecotally/gen/proto/ecotally/v1;ecotallyv1b\x06proto3"

var (
	file_ecotally_v1_ecotally_proto_rawDescOnce sync.Once
	file_ecotally_v1_ecotally_proto_rawDescData []byte
)

func file_ecotally_v1_ecotally_proto_rawDescGZIP() []byte {
	file_ecotally_v1_ecotally_proto_rawDescOnce.Do(func() {
		file_ecotally_v1_ecotally_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ecotally_v1_ecotally_proto_rawDesc), len(file_ecotally_v1_ecotally_proto_rawDesc)))
	})
	return file_ecotally_v1_ecotally_proto_rawDescData
}

var file_ecotally_v1_ecotally_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_ecotally_v1_ecotally_proto_goTypes = []any{
	(*ReceiptItem)(nil),            // 0: ecotally.v1.ReceiptItem
	(*Receipt)(nil),                // 1: ecotally.v1.Receipt
	(*Vertex)(nil),                 // 2: ecotally.v1.Vertex
	(*BoundingBox)(nil),            // 3: ecotally.v1.BoundingBox
	(*WordAnnotation)(nil),         // 4: ecotally.v1.WordAnnotation
	(*ParseReceiptRequest)(nil),    // 5: ecotally.v1.ParseReceiptRequest
	(*ParseReceiptResponse)(nil),   // 6: ecotally.v1.ParseReceiptResponse
	(*GetReceiptRequest)(nil),      // 7: ecotally.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),     // 8: ecotally.v1.GetReceiptResponse
	(*ListReceiptsRequest)(nil),    // 9: ecotally.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),   // 10: ecotally.v1.ListReceiptsResponse
	(*ExportReceiptsRequest)(nil),  // 11: ecotally.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil), // 12: ecotally.v1.ExportReceiptsResponse
}
var file_ecotally_v1_ecotally_proto_depIdxs = []int32{
	0,  // 0: ecotally.v1.Receipt.items:type_name -> ecotally.v1.ReceiptItem
	2,  // 1: ecotally.v1.BoundingBox.vertices:type_name -> ecotally.v1.Vertex
	3,  // 2: ecotally.v1.WordAnnotation.bounding_box:type_name -> ecotally.v1.BoundingBox
	4,  // 3: ecotally.v1.ParseReceiptRequest.words:type_name -> ecotally.v1.WordAnnotation
	1,  // 4: ecotally.v1.ParseReceiptResponse.receipt:type_name -> ecotally.v1.Receipt
	1,  // 5: ecotally.v1.GetReceiptResponse.receipt:type_name -> ecotally.v1.Receipt
	1,  // 6: ecotally.v1.ListReceiptsResponse.receipts:type_name -> ecotally.v1.Receipt
	5,  // 7: ecotally.v1.ReceiptsService.ParseReceipt:input_type -> ecotally.v1.ParseReceiptRequest
	7,  // 8: ecotally.v1.ReceiptsService.GetReceipt:input_type -> ecotally.v1.GetReceiptRequest
	9,  // 9: ecotally.v1.ReceiptsService.ListReceipts:input_type -> ecotally.v1.ListReceiptsRequest
	11, // 10: ecotally.v1.ExportService.ExportReceipts:input_type -> ecotally.v1.ExportReceiptsRequest
	6,  // 11: ecotally.v1.ReceiptsService.ParseReceipt:output_type -> ecotally.v1.ParseReceiptResponse
	8,  // 12: ecotally.v1.ReceiptsService.GetReceipt:output_type -> ecotally.v1.GetReceiptResponse
	10, // 13: ecotally.v1.ReceiptsService.ListReceipts:output_type -> ecotally.v1.ListReceiptsResponse
	12, // 14: ecotally.v1.ExportService.ExportReceipts:output_type -> ecotally.v1.ExportReceiptsResponse
	11, // [11:15] is the sub-list for method output_type
	7,  // [7:11] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_ecotally_v1_ecotally_proto_init() }
func file_ecotally_v1_ecotally_proto_init() {
	if File_ecotally_v1_ecotally_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ecotally_v1_ecotally_proto_rawDesc), len(file_ecotally_v1_ecotally_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_ecotally_v1_ecotally_proto_goTypes,
		DependencyIndexes: file_ecotally_v1_ecotally_proto_depIdxs,
		MessageInfos:      file_ecotally_v1_ecotally_proto_msgTypes,
	}.Build()
	File_ecotally_v1_ecotally_proto = out.File
	file_ecotally_v1_ecotally_proto_goTypes = nil
	file_ecotally_v1_ecotally_proto_depIdxs = nil
}
