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

// Package rpc exposes a ledger over the Node grpc service.
package rpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/hlopb"
	"github.com/helioledger/go-helio/ledger"
	"github.com/helioledger/go-helio/log"
	"github.com/helioledger/go-helio/rpc/rpcpb"
)

// NodeServer serves the Node grpc service on top of a ledger.
type NodeServer struct {
	ledger *ledger.Ledger
}

// NewNodeServer creates the grpc service backend of the ledger.
func NewNodeServer(l *ledger.Ledger) *NodeServer {
	return &NodeServer{ledger: l}
}

// GetLedgerInfo returns the current network parameters.
func (s *NodeServer) GetLedgerInfo(ctx context.Context, req *rpcpb.GetLedgerInfoRequest) (*rpcpb.GetLedgerInfoResponse, error) {
	info, err := s.ledger.GetLedgerInfo()
	if err != nil {
		return nil, rpcpb.ErrorToStatus(err)
	}
	return &rpcpb.GetLedgerInfoResponse{
		NetworkID:   info.NetworkID,
		BaseFee:     info.BaseFee,
		BaseReserve: info.BaseReserve,
	}, nil
}

// GetAccount returns the encoded account state together with its
// trustlines.
func (s *NodeServer) GetAccount(ctx context.Context, req *rpcpb.GetAccountRequest) (*rpcpb.GetAccountResponse, error) {
	if req.AccountID == "" {
		return nil, status.Error(codes.InvalidArgument, "empty account id")
	}

	acc, err := s.ledger.GetAccount(req.AccountID)
	if err != nil {
		return nil, rpcpb.ErrorToStatus(err)
	}

	pb := &hlopb.Account{
		AccountID:    acc.AccountID,
		SeqNum:       acc.SeqNum,
		EntryCount:   acc.EntryCount,
		MasterWeight: acc.MasterWeight,
	}
	for _, signer := range acc.Signers {
		pb.Signers = append(pb.Signers, &hlopb.Signer{
			SignerID: signer.SignerID,
			Weight:   signer.Weight,
		})
	}

	resp := &rpcpb.GetAccountResponse{}
	for _, b := range acc.Balances {
		if b.Asset.AssetType == types.NATIVE {
			pb.Balance = b.Amount
			continue
		}
		trust := &hlopb.Trust{
			AccountID:  acc.AccountID,
			Asset:      b.Asset.ToPb(),
			Balance:    b.Amount,
			Limit:      b.Limit,
			Authorized: 1,
		}
		data, err := hlopb.Encode(trust)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		resp.TrustData = append(resp.TrustData, data)
	}

	data, err := hlopb.Encode(pb)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	resp.Data = data
	return resp, nil
}

// SubmitTx applies the signed tx to the ledger and only returns
// once the tx is fully applied or rejected.
func (s *NodeServer) SubmitTx(ctx context.Context, req *rpcpb.SubmitTxRequest) (*rpcpb.SubmitTxResponse, error) {
	info, err := s.ledger.GetLedgerInfo()
	if err != nil {
		return nil, rpcpb.ErrorToStatus(err)
	}
	if req.NetworkID != info.NetworkID {
		return nil, status.Error(codes.InvalidArgument, "tx meant for another network")
	}
	if len(req.Data) == 0 || req.TxKey == "" {
		return nil, status.Error(codes.InvalidArgument, "empty tx payload")
	}

	if err := s.ledger.SubmitTx(req.TxKey, req.Data, req.Signatures); err != nil {
		log.Debugw("tx submission rejected", "txkey", req.TxKey, "error", err)
		return nil, rpcpb.ErrorToStatus(err)
	}
	return &rpcpb.SubmitTxResponse{}, nil
}

// QueryTx returns the status of a previously submitted tx.
func (s *NodeServer) QueryTx(ctx context.Context, req *rpcpb.QueryTxRequest) (*rpcpb.QueryTxResponse, error) {
	if req.TxKey == "" {
		return nil, status.Error(codes.InvalidArgument, "empty tx key")
	}
	txStatus, err := s.ledger.QueryTx(req.TxKey)
	if err != nil {
		return nil, rpcpb.ErrorToStatus(err)
	}
	return &rpcpb.QueryTxResponse{
		StatusCode:   int32(txStatus.StatusCode),
		ErrorMessage: txStatus.ErrorMessage,
	}, nil
}
