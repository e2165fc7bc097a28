package rpc

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"

	"github.com/helioledger/go-helio/client"
	"github.com/helioledger/go-helio/client/build"
	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/db/memdb"
	"github.com/helioledger/go-helio/ledger"
	"github.com/helioledger/go-helio/rpc/rpcpb"
)

// startTestNode serves a sandbox ledger over a loopback grpc
// server and returns a connected client.
func startTestNode(t *testing.T) (*client.GrpcClient, *crypto.KeyPair, func()) {
	params := &ledger.Params{
		NetworkID:   "testnet",
		BaseFee:     10,
		BaseReserve: 100,
	}
	l := ledger.NewLedger(params, memdb.New())

	genesis, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	assert.Nil(t, l.CreateGenesisAccount(genesis.AccountID, 1000000))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Nil(t, err)
	s := grpc.NewServer()
	rpcpb.RegisterNodeServer(s, NewNodeServer(l))
	go s.Serve(listener)

	gc, err := client.New(listener.Addr().String())
	assert.Nil(t, err)

	return gc, genesis, func() {
		gc.Close()
		s.Stop()
	}
}

func TestNodeServerRoundTrip(t *testing.T) {
	gc, genesis, teardown := startTestNode(t)
	defer teardown()

	info, err := gc.GetLedgerInfo()
	assert.Nil(t, err)
	assert.Equal(t, "testnet", info.NetworkID)
	assert.Equal(t, int64(10), info.BaseFee)
	assert.Equal(t, int64(100), info.BaseReserve)

	acc, err := gc.GetAccount(genesis.AccountID)
	assert.Nil(t, err)
	assert.Equal(t, int64(1000000), acc.Balances[0].Amount)
	assert.Equal(t, uint64(0), acc.SeqNum)

	kp, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	tx := build.NewTx(info.BaseFee)
	err = tx.Add(
		&build.AccountID{AccountID: genesis.AccountID},
		&build.NetworkID{NetworkID: info.NetworkID},
		&build.SeqNum{SeqNum: 1},
		&build.CreateAccount{AccountID: kp.AccountID, Balance: 1000},
	)
	assert.Nil(t, err)
	data, signatures, err := tx.Sign(genesis.Seed)
	assert.Nil(t, err)
	txKey, err := tx.TxKey()
	assert.Nil(t, err)

	assert.Nil(t, gc.SubmitTx(txKey, data, signatures))

	status, err := gc.QueryTx(txKey)
	assert.Nil(t, err)
	assert.Equal(t, types.Confirmed, status.StatusCode)

	acc, err = gc.GetAccount(kp.AccountID)
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), acc.Balances[0].Amount)
}

func TestNodeServerErrorMapping(t *testing.T) {
	gc, genesis, teardown := startTestNode(t)
	defer teardown()

	// The typed errors survive the trip through grpc statuses.
	kp, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	_, err = gc.GetAccount(kp.AccountID)
	assert.Equal(t, types.ErrAccountNotFound, err)

	tx := build.NewTx(10)
	err = tx.Add(
		&build.AccountID{AccountID: genesis.AccountID},
		&build.NetworkID{NetworkID: "testnet"},
		&build.SeqNum{SeqNum: 7},
		&build.CreateAccount{AccountID: kp.AccountID, Balance: 1000},
	)
	assert.Nil(t, err)
	data, signatures, err := tx.Sign(genesis.Seed)
	assert.Nil(t, err)
	txKey, err := tx.TxKey()
	assert.Nil(t, err)

	assert.Equal(t, types.ErrBadSequence, gc.SubmitTx(txKey, data, signatures))
}
