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

// Package hlopb holds the wire messages of the ledger. The messages
// are maintained by hand with protobuf struct tags so that they stay
// compatible with the proto3 binary format used on the wire.
package hlopb

import (
	proto "github.com/golang/protobuf/proto"
)

// Enumeration of asset types.
const (
	AssetType_NATIVE int32 = 0
	AssetType_CUSTOM int32 = 1
)

// Enumeration of operation types.
const (
	OpType_CREATE_ACCOUNT int32 = 0
	OpType_PAYMENT        int32 = 1
	OpType_TRUST          int32 = 2
	OpType_SIGNER         int32 = 3
	OpType_MERGE          int32 = 4
)

// Asset identifies the native asset or an issued asset by
// name and issuer.
type Asset struct {
	AssetType int32  `protobuf:"varint,1,opt,name=asset_type,json=assetType,proto3" json:"asset_type,omitempty"`
	AssetName string `protobuf:"bytes,2,opt,name=asset_name,json=assetName,proto3" json:"asset_name,omitempty"`
	Issuer    string `protobuf:"bytes,3,opt,name=issuer,proto3" json:"issuer,omitempty"`
}

func (m *Asset) Reset()         { *m = Asset{} }
func (m *Asset) String() string { return proto.CompactTextString(m) }
func (*Asset) ProtoMessage()    {}

// Signer grants signing authority on an account to another key.
// Weight zero stands for no authority.
type Signer struct {
	SignerID string `protobuf:"bytes,1,opt,name=signer_id,json=signerId,proto3" json:"signer_id,omitempty"`
	Weight   int32  `protobuf:"varint,2,opt,name=weight,proto3" json:"weight,omitempty"`
}

func (m *Signer) Reset()         { *m = Signer{} }
func (m *Signer) String() string { return proto.CompactTextString(m) }
func (*Signer) ProtoMessage()    {}

// Account is the ledger representation of an account.
type Account struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	// The native asset balance.
	Balance int64 `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	// Latest transaction sequence number.
	SeqNum uint64 `protobuf:"varint,3,opt,name=seq_num,json=seqNum,proto3" json:"seq_num,omitempty"`
	// Number of trust and signer entries the account holds, used
	// for computing the reserve the account has to maintain.
	EntryCount int32 `protobuf:"varint,4,opt,name=entry_count,json=entryCount,proto3" json:"entry_count,omitempty"`
	// Signing weight of the master key of the account, zero
	// revokes the authority of the master key.
	MasterWeight int32     `protobuf:"varint,5,opt,name=master_weight,json=masterWeight,proto3" json:"master_weight,omitempty"`
	Signers      []*Signer `protobuf:"bytes,6,rep,name=signers,proto3" json:"signers,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

// Trust is the record of a trustline from an account to an
// issued asset.
type Trust struct {
	AccountID  string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Asset      *Asset `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Balance    int64  `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	Limit      int64  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	Authorized int32  `protobuf:"varint,5,opt,name=authorized,proto3" json:"authorized,omitempty"`
}

func (m *Trust) Reset()         { *m = Trust{} }
func (m *Trust) String() string { return proto.CompactTextString(m) }
func (*Trust) ProtoMessage()    {}

// CreateAccountOp creates a new account with an initial native
// asset balance funded by the op source.
type CreateAccountOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Balance   int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *CreateAccountOp) Reset()         { *m = CreateAccountOp{} }
func (m *CreateAccountOp) String() string { return proto.CompactTextString(m) }
func (*CreateAccountOp) ProtoMessage()    {}

// PaymentOp pays the amount of the asset from the op source to
// the destination account.
type PaymentOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Asset     *Asset `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Amount    int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *PaymentOp) Reset()         { *m = PaymentOp{} }
func (m *PaymentOp) String() string { return proto.CompactTextString(m) }
func (*PaymentOp) ProtoMessage()    {}

// TrustOp creates, updates or deletes a trustline of the op
// source to the asset. Limit zero deletes the trustline.
type TrustOp struct {
	Asset *Asset `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	Limit int64  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	// Optional account which the op acts for, overriding the tx
	// source account.
	SourceAccountID string `protobuf:"bytes,3,opt,name=source_account_id,json=sourceAccountId,proto3" json:"source_account_id,omitempty"`
}

func (m *TrustOp) Reset()         { *m = TrustOp{} }
func (m *TrustOp) String() string { return proto.CompactTextString(m) }
func (*TrustOp) ProtoMessage()    {}

// SignerOp updates the signing options of the op source account.
// MasterWeight of minus one leaves the master weight unchanged.
// With a non-empty SignerID the signer entry is added or updated
// to SignerWeight, and removed when SignerWeight is zero.
type SignerOp struct {
	MasterWeight int32  `protobuf:"varint,1,opt,name=master_weight,json=masterWeight,proto3" json:"master_weight,omitempty"`
	SignerID     string `protobuf:"bytes,2,opt,name=signer_id,json=signerId,proto3" json:"signer_id,omitempty"`
	SignerWeight int32  `protobuf:"varint,3,opt,name=signer_weight,json=signerWeight,proto3" json:"signer_weight,omitempty"`
	// Optional account which the op acts for, overriding the tx
	// source account.
	SourceAccountID string `protobuf:"bytes,4,opt,name=source_account_id,json=sourceAccountId,proto3" json:"source_account_id,omitempty"`
}

func (m *SignerOp) Reset()         { *m = SignerOp{} }
func (m *SignerOp) String() string { return proto.CompactTextString(m) }
func (*SignerOp) ProtoMessage()    {}

// MergeOp folds the remaining native balance of the op source
// account into the destination account and removes the source
// account from the ledger.
type MergeOp struct {
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *MergeOp) Reset()         { *m = MergeOp{} }
func (m *MergeOp) String() string { return proto.CompactTextString(m) }
func (*MergeOp) ProtoMessage()    {}

// Op is a single operation of a transaction, discriminated by
// OpType with exactly one of the op fields set.
type Op struct {
	OpType        int32            `protobuf:"varint,1,opt,name=op_type,json=opType,proto3" json:"op_type,omitempty"`
	CreateAccount *CreateAccountOp `protobuf:"bytes,2,opt,name=create_account,json=createAccount,proto3" json:"create_account,omitempty"`
	Payment       *PaymentOp       `protobuf:"bytes,3,opt,name=payment,proto3" json:"payment,omitempty"`
	Trust         *TrustOp         `protobuf:"bytes,4,opt,name=trust,proto3" json:"trust,omitempty"`
	Signer        *SignerOp        `protobuf:"bytes,5,opt,name=signer,proto3" json:"signer,omitempty"`
	Merge         *MergeOp         `protobuf:"bytes,6,opt,name=merge,proto3" json:"merge,omitempty"`
}

func (m *Op) Reset()         { *m = Op{} }
func (m *Op) String() string { return proto.CompactTextString(m) }
func (*Op) ProtoMessage()    {}

// Tx is the transaction envelope body. Signatures are carried
// next to the encoded Tx and are computed over the encoded Tx
// bytes, which include the network ID.
type Tx struct {
	// The source account of the tx which pays the fee and
	// provides the sequence number.
	AccountID string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Fee       int64  `protobuf:"varint,2,opt,name=fee,proto3" json:"fee,omitempty"`
	SeqNum    uint64 `protobuf:"varint,3,opt,name=seq_num,json=seqNum,proto3" json:"seq_num,omitempty"`
	Note      string `protobuf:"bytes,4,opt,name=note,proto3" json:"note,omitempty"`
	OpList    []*Op  `protobuf:"bytes,5,rep,name=op_list,json=opList,proto3" json:"op_list,omitempty"`
	// Identifier of the network the tx is meant for, folded into
	// the signing payload so signatures cannot be replayed across
	// networks.
	NetworkID string `protobuf:"bytes,6,opt,name=network_id,json=networkId,proto3" json:"network_id,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// Signature binds a signer key to its signature over the encoded
// tx bytes.
type Signature struct {
	SignerID  string `protobuf:"bytes,1,opt,name=signer_id,json=signerId,proto3" json:"signer_id,omitempty"`
	Signature string `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Asset)(nil), "hlopb.Asset")
	proto.RegisterType((*Signer)(nil), "hlopb.Signer")
	proto.RegisterType((*Account)(nil), "hlopb.Account")
	proto.RegisterType((*Trust)(nil), "hlopb.Trust")
	proto.RegisterType((*CreateAccountOp)(nil), "hlopb.CreateAccountOp")
	proto.RegisterType((*PaymentOp)(nil), "hlopb.PaymentOp")
	proto.RegisterType((*TrustOp)(nil), "hlopb.TrustOp")
	proto.RegisterType((*SignerOp)(nil), "hlopb.SignerOp")
	proto.RegisterType((*MergeOp)(nil), "hlopb.MergeOp")
	proto.RegisterType((*Op)(nil), "hlopb.Op")
	proto.RegisterType((*Tx)(nil), "hlopb.Tx")
	proto.RegisterType((*Signature)(nil), "hlopb.Signature")
}
