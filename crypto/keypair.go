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

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	b58 "github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/ed25519"
)

// KeyPair bundles an account ID with the seed which controls it.
// The seed acts as the equivalent private key since the true
// ed25519 private key can always be reconstructed from it.
type KeyPair struct {
	// Base58 encoded public key, the account ID on the ledger.
	AccountID string
	// Base58 encoded seed used for signing.
	Seed string
}

// Generate an account keypair with the ed25519 crypto algorithm from
// a randomly generated 32-byte seed.
func accountKeypair() (string, string, error) {
	var seed [32]byte
	_, err := io.ReadFull(rand.Reader, seed[:])
	if err != nil {
		return "", "", err
	}
	privateKey := ed25519.NewKeyFromSeed(seed[:])
	publicKey := privateKey.Public().(ed25519.PublicKey)

	var pk [32]byte
	copy(pk[:], publicKey)
	acc := &HLOKey{Code: KeyTypeAccountID, Hash: pk}
	sd := &HLOKey{Code: KeyTypeSeed, Hash: seed}

	pubKeyStr := EncodeKey(acc)
	seedStr := EncodeKey(sd)

	return pubKeyStr, seedStr, nil
}

// Reconstruct the true private key from the seed, it supposes to
// be only used in situations where you need to sign the data so
// the authenticity can be verified by the corresponding public key.
func getPrivateKey(seed string) (ed25519.PrivateKey, error) {
	if seed == "" {
		return nil, fmt.Errorf("empty seed")
	}
	k, err := DecodeKey(seed)
	if err != nil {
		return nil, err
	}
	if k.Code != KeyTypeSeed {
		return nil, errors.New("incorrect seed key type")
	}
	privateKey := ed25519.NewKeyFromSeed(k.Hash[:])
	return privateKey, nil
}

// GetAccountKeypair randomly generates a pair of account public
// key and seed.
func GetAccountKeypair() (string, string, error) {
	publicKey, seed, err := accountKeypair()
	if err != nil {
		return "", "", err
	}
	return publicKey, seed, err
}

// NewKeyPair randomly generates a KeyPair for a new account.
func NewKeyPair() (*KeyPair, error) {
	publicKey, seed, err := accountKeypair()
	if err != nil {
		return nil, err
	}
	return &KeyPair{AccountID: publicKey, Seed: seed}, nil
}

// KeyPairFromSeed rebuilds the KeyPair which the supplied seed
// string controls.
func KeyPairFromSeed(seed string) (*KeyPair, error) {
	k, err := DecodeKey(seed)
	if err != nil {
		return nil, err
	}
	if k.Code != KeyTypeSeed {
		return nil, errors.New("incorrect seed key type")
	}

	privateKey := ed25519.NewKeyFromSeed(k.Hash[:])
	publicKey := privateKey.Public().(ed25519.PublicKey)

	var pk [32]byte
	copy(pk[:], publicKey)
	acc := &HLOKey{Code: KeyTypeAccountID, Hash: pk}

	return &KeyPair{AccountID: EncodeKey(acc), Seed: seed}, nil
}

// GetAccountKeypairFromSeed generates an account keypair from the
// provided raw seed bytes.
func GetAccountKeypairFromSeed(seed []byte) (string, string, error) {
	if len(seed) != 32 {
		return "", "", errors.New("invalid seed, byte length is not 32")
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	var pk [32]byte
	copy(pk[:], publicKey)
	acc := &HLOKey{Code: KeyTypeAccountID, Hash: pk}

	var sdk [32]byte
	copy(sdk[:], seed)
	sd := &HLOKey{Code: KeyTypeSeed, Hash: sdk}

	pubKeyStr := EncodeKey(acc)
	seedStr := EncodeKey(sd)

	return pubKeyStr, seedStr, nil
}

// Sign the data with the provided seed (equivalent private key).
func Sign(seed string, data []byte) (string, error) {
	pk, err := getPrivateKey(seed)
	if err != nil {
		return "", err
	}

	signature := ed25519.Sign(pk, data)
	signStr := b58.Encode(signature)

	return signStr, nil
}

// Verify the data signature with the encoded string representation
// of the public key.
func Verify(publicKey, signature string, data []byte) bool {
	pk, err := DecodeKey(publicKey)
	if err != nil {
		return false
	}
	return VerifyByKey(pk, signature, data)
}

// VerifyByKey verifies the data signature using a HLOKey.
func VerifyByKey(pk *HLOKey, signature string, data []byte) bool {
	sn, err := b58.Decode(signature)
	if err != nil {
		return false
	}
	pub := ed25519.PublicKey(pk.Hash[:])
	return ed25519.Verify(pub, data, sn)
}
