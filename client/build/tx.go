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

package build

import (
	"errors"
	"fmt"

	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/hlopb"
)

// Tx serves as the main object for building a transaction.
// Building is pure, nothing reaches the ledger until the signed
// payload is submitted through a gateway.
type Tx struct {
	Tx *hlopb.Tx

	baseFee int64
}

// NewTx creates a transaction builder charging the supplied
// base fee per operation.
func NewTx(baseFee int64) *Tx {
	return &Tx{Tx: &hlopb.Tx{}, baseFee: baseFee}
}

// Add adds one or more mutators to the underlying transaction
// builder and if any of the mutations fails the method fails.
func (t *Tx) Add(ms ...TxMutator) error {
	var err error

	for _, m := range ms {
		err = m.Mutate(t.Tx)
		if err != nil {
			return err
		}
	}

	// Recompute the total fee to always charge for every op in
	// the batch.
	fm := Fee{BaseFee: t.baseFee}
	err = fm.Mutate(t.Tx)
	if err != nil {
		return err
	}

	if err := t.validate(); err != nil {
		return fmt.Errorf("tx is invalid: %v", err)
	}

	return nil
}

func (t *Tx) validate() error {
	if t.Tx.AccountID == "" {
		return errors.New("empty account id")
	}
	if t.Tx.NetworkID == "" {
		return errors.New("empty network id")
	}
	if t.Tx.SeqNum == 0 {
		return errors.New("seqnum is zero")
	}
	if len(t.Tx.OpList) == 0 {
		return errors.New("empty op list")
	}
	return nil
}

// Payload encodes the transaction to the canonical bytes the
// signatures are computed over.
func (t *Tx) Payload() ([]byte, error) {
	if t.Tx == nil {
		return nil, ErrNilTx
	}
	payload, err := hlopb.Encode(t.Tx)
	if err != nil {
		return nil, fmt.Errorf("encode tx failed: %v", err)
	}
	return payload, nil
}

// Sign signs the transaction payload with the supplied secret
// seeds. Signing is append-only, every required signer signs the
// same payload and the order of the signatures is irrelevant.
func (t *Tx) Sign(seeds ...string) ([]byte, []*hlopb.Signature, error) {
	payload, err := t.Payload()
	if err != nil {
		return nil, nil, err
	}

	var signatures []*hlopb.Signature
	for _, seed := range seeds {
		kp, err := crypto.KeyPairFromSeed(seed)
		if err != nil {
			return nil, nil, fmt.Errorf("decode seed key failed: %v", err)
		}
		signature, err := crypto.Sign(seed, payload)
		if err != nil {
			return nil, nil, fmt.Errorf("sign the tx failed: %v", err)
		}
		signatures = append(signatures, &hlopb.Signature{
			SignerID:  kp.AccountID,
			Signature: signature,
		})
	}

	return payload, signatures, nil
}

// TxKey computes the typed key of the tx.
func (t *Tx) TxKey() (string, error) {
	if t.Tx == nil {
		return "", ErrNilTx
	}
	return hlopb.GetTxKey(t.Tx)
}

// OpCount returns the number of operations currently in the tx.
func (t *Tx) OpCount() int {
	if t.Tx == nil {
		return 0
	}
	return len(t.Tx.OpList)
}
