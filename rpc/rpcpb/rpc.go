// Copyright 2019 The go-helio Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rpcpb defines the request and response messages of the
// Node grpc service together with the hand-rolled client and
// server bindings.
package rpcpb

import (
	proto "github.com/golang/protobuf/proto"

	"github.com/helioledger/go-helio/hlopb"
)

// GetLedgerInfoRequest asks the node for its network parameters.
type GetLedgerInfoRequest struct{}

func (m *GetLedgerInfoRequest) Reset()         { *m = GetLedgerInfoRequest{} }
func (m *GetLedgerInfoRequest) String() string { return proto.CompactTextString(m) }
func (*GetLedgerInfoRequest) ProtoMessage()    {}

// GetLedgerInfoResponse carries the network parameters a client
// needs for fee and reserve computation.
type GetLedgerInfoResponse struct {
	NetworkID   string `protobuf:"bytes,1,opt,name=NetworkID,proto3" json:"NetworkID,omitempty"`
	BaseFee     int64  `protobuf:"varint,2,opt,name=BaseFee,proto3" json:"BaseFee,omitempty"`
	BaseReserve int64  `protobuf:"varint,3,opt,name=BaseReserve,proto3" json:"BaseReserve,omitempty"`
}

func (m *GetLedgerInfoResponse) Reset()         { *m = GetLedgerInfoResponse{} }
func (m *GetLedgerInfoResponse) String() string { return proto.CompactTextString(m) }
func (*GetLedgerInfoResponse) ProtoMessage()    {}

// GetAccountRequest asks for the full state of one account.
type GetAccountRequest struct {
	AccountID string `protobuf:"bytes,1,opt,name=AccountID,proto3" json:"AccountID,omitempty"`
}

func (m *GetAccountRequest) Reset()         { *m = GetAccountRequest{} }
func (m *GetAccountRequest) String() string { return proto.CompactTextString(m) }
func (*GetAccountRequest) ProtoMessage()    {}

// GetAccountResponse returns the encoded account together with
// the encoded trustlines belonging to it.
type GetAccountResponse struct {
	Data      []byte   `protobuf:"bytes,1,opt,name=Data,proto3" json:"Data,omitempty"`
	TrustData [][]byte `protobuf:"bytes,2,rep,name=TrustData,proto3" json:"TrustData,omitempty"`
}

func (m *GetAccountResponse) Reset()         { *m = GetAccountResponse{} }
func (m *GetAccountResponse) String() string { return proto.CompactTextString(m) }
func (*GetAccountResponse) ProtoMessage()    {}

// SubmitTxRequest submits the signed tx bytes to the node.
type SubmitTxRequest struct {
	NetworkID  string             `protobuf:"bytes,1,opt,name=NetworkID,proto3" json:"NetworkID,omitempty"`
	TxKey      string             `protobuf:"bytes,2,opt,name=TxKey,proto3" json:"TxKey,omitempty"`
	Data       []byte             `protobuf:"bytes,3,opt,name=Data,proto3" json:"Data,omitempty"`
	Signatures []*hlopb.Signature `protobuf:"bytes,4,rep,name=Signatures,proto3" json:"Signatures,omitempty"`
}

func (m *SubmitTxRequest) Reset()         { *m = SubmitTxRequest{} }
func (m *SubmitTxRequest) String() string { return proto.CompactTextString(m) }
func (*SubmitTxRequest) ProtoMessage()    {}

// SubmitTxResponse acknowledges that the tx was applied.
type SubmitTxResponse struct{}

func (m *SubmitTxResponse) Reset()         { *m = SubmitTxResponse{} }
func (m *SubmitTxResponse) String() string { return proto.CompactTextString(m) }
func (*SubmitTxResponse) ProtoMessage()    {}

// QueryTxRequest asks for the status of a previously submitted tx.
type QueryTxRequest struct {
	TxKey string `protobuf:"bytes,1,opt,name=TxKey,proto3" json:"TxKey,omitempty"`
}

func (m *QueryTxRequest) Reset()         { *m = QueryTxRequest{} }
func (m *QueryTxRequest) String() string { return proto.CompactTextString(m) }
func (*QueryTxRequest) ProtoMessage()    {}

// QueryTxResponse carries the tx status.
type QueryTxResponse struct {
	StatusCode   int32  `protobuf:"varint,1,opt,name=StatusCode,proto3" json:"StatusCode,omitempty"`
	ErrorMessage string `protobuf:"bytes,2,opt,name=ErrorMessage,proto3" json:"ErrorMessage,omitempty"`
}

func (m *QueryTxResponse) Reset()         { *m = QueryTxResponse{} }
func (m *QueryTxResponse) String() string { return proto.CompactTextString(m) }
func (*QueryTxResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*GetLedgerInfoRequest)(nil), "rpcpb.GetLedgerInfoRequest")
	proto.RegisterType((*GetLedgerInfoResponse)(nil), "rpcpb.GetLedgerInfoResponse")
	proto.RegisterType((*GetAccountRequest)(nil), "rpcpb.GetAccountRequest")
	proto.RegisterType((*GetAccountResponse)(nil), "rpcpb.GetAccountResponse")
	proto.RegisterType((*SubmitTxRequest)(nil), "rpcpb.SubmitTxRequest")
	proto.RegisterType((*SubmitTxResponse)(nil), "rpcpb.SubmitTxResponse")
	proto.RegisterType((*QueryTxRequest)(nil), "rpcpb.QueryTxRequest")
	proto.RegisterType((*QueryTxResponse)(nil), "rpcpb.QueryTxResponse")
}
