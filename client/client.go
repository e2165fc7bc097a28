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

// Package client provides the grpc gateway to helio nodes used by
// the transfer protocol and the command line tools.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/hlopb"
	"github.com/helioledger/go-helio/rpc/rpcpb"
)

// Timeout of a single rpc request. SubmitTx applies the tx
// synchronously on the node so it gets a more generous one.
const (
	requestTimeout  = time.Second
	submitTxTimeout = 5 * time.Second
)

// GrpcClient manages the grpc connections to helio nodes and
// works as a load balancer over the backend nodes. It implements
// the ledger gateway of the transfer protocol.
type GrpcClient struct {
	networkID string
	endpoints string
	conn      *grpc.ClientConn
	client    rpcpb.NodeClient
}

// New connects to the comma separated node endpoints and caches
// the network id of the backend.
func New(endpoints string) (*GrpcClient, error) {
	r := NewResolver()
	b := grpc.RoundRobin(r)
	conn, err := grpc.Dial(endpoints, grpc.WithInsecure(), grpc.WithBalancer(b), grpc.WithBlock(), grpc.WithTimeout(time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect to node servers failed: %v", err)
	}

	gc := &GrpcClient{
		endpoints: endpoints,
		conn:      conn,
		client:    rpcpb.NewNodeClient(conn),
	}
	info, err := gc.GetLedgerInfo()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("get ledger info failed: %v", err)
	}
	gc.networkID = info.NetworkID

	return gc, nil
}

// Close tears down the underlying grpc connection.
func (c *GrpcClient) Close() error {
	return c.conn.Close()
}

// GetLedgerInfo returns the network parameters of the backend.
func (c *GrpcClient) GetLedgerInfo() (*types.LedgerInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.GetLedgerInfo(ctx, &rpcpb.GetLedgerInfoRequest{})
	if err != nil {
		return nil, rpcpb.StatusToError(err)
	}
	return &types.LedgerInfo{
		NetworkID:   resp.NetworkID,
		BaseFee:     resp.BaseFee,
		BaseReserve: resp.BaseReserve,
	}, nil
}

// GetAccount gets the account with the requested account id
// including its full balance list.
func (c *GrpcClient) GetAccount(accountID string) (*types.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.GetAccount(ctx, &rpcpb.GetAccountRequest{AccountID: accountID})
	if err != nil {
		return nil, rpcpb.StatusToError(err)
	}

	acc, err := hlopb.DecodeAccount(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("decode account failed: %v", err)
	}

	result := &types.Account{
		AccountID:    acc.AccountID,
		SeqNum:       acc.SeqNum,
		EntryCount:   acc.EntryCount,
		MasterWeight: acc.MasterWeight,
	}
	for _, s := range acc.Signers {
		result.Signers = append(result.Signers, &types.Signer{
			SignerID: s.SignerID,
			Weight:   s.Weight,
		})
	}
	result.Balances = append(result.Balances, &types.Balance{
		Asset:  types.NativeAsset(),
		Amount: acc.Balance,
	})
	for _, data := range resp.TrustData {
		trust, err := hlopb.DecodeTrust(data)
		if err != nil {
			return nil, fmt.Errorf("decode trust failed: %v", err)
		}
		result.Balances = append(result.Balances, &types.Balance{
			Asset:  types.AssetFromPb(trust.Asset),
			Amount: trust.Balance,
			Limit:  trust.Limit,
		})
	}
	return result, nil
}

// SubmitTx submits the signed tx to the nodes and returns once
// the tx is fully applied or rejected.
func (c *GrpcClient) SubmitTx(txKey string, data []byte, signatures []*hlopb.Signature) error {
	ctx, cancel := context.WithTimeout(context.Background(), submitTxTimeout)
	defer cancel()

	req := &rpcpb.SubmitTxRequest{
		NetworkID:  c.networkID,
		TxKey:      txKey,
		Data:       data,
		Signatures: signatures,
	}
	if _, err := c.client.SubmitTx(ctx, req); err != nil {
		return rpcpb.StatusToError(err)
	}
	return nil
}

// QueryTx queries the status of a previously submitted tx.
func (c *GrpcClient) QueryTx(txKey string) (*types.TxStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.QueryTx(ctx, &rpcpb.QueryTxRequest{TxKey: txKey})
	if err != nil {
		return nil, rpcpb.StatusToError(err)
	}
	return &types.TxStatus{
		StatusCode:   types.TxStatusCode(resp.StatusCode),
		ErrorMessage: resp.ErrorMessage,
	}, nil
}
