package hlopb

import (
	"github.com/golang/protobuf/proto"

	"github.com/helioledger/go-helio/crypto"
)

// Encode pb message to bytes.
func Encode(msg proto.Message) ([]byte, error) {
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SHA256Hash computes the sha256 checksum of a proto message.
func SHA256Hash(msg proto.Message) (string, error) {
	b, err := Encode(msg)
	if err != nil {
		return "", err
	}
	return crypto.SHA256Hash(b), nil
}

// Decode pb message to Tx.
func DecodeTx(b []byte) (*Tx, error) {
	tx := &Tx{}
	if err := proto.Unmarshal(b, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Decode pb message to Account.
func DecodeAccount(b []byte) (*Account, error) {
	acc := &Account{}
	if err := proto.Unmarshal(b, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Decode pb message to Trust.
func DecodeTrust(b []byte) (*Trust, error) {
	trust := &Trust{}
	if err := proto.Unmarshal(b, trust); err != nil {
		return nil, err
	}
	return trust, nil
}

// Decode pb message to Asset.
func DecodeAsset(b []byte) (*Asset, error) {
	asset := &Asset{}
	if err := proto.Unmarshal(b, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// GetTxKey computes the typed key of the tx which identifies the
// tx on the ledger.
func GetTxKey(tx *Tx) (string, error) {
	b, err := Encode(tx)
	if err != nil {
		return "", err
	}
	txKey := &crypto.HLOKey{
		Code: crypto.KeyTypeTx,
		Hash: crypto.SHA256HashBytes(b),
	}
	return crypto.EncodeKey(txKey), nil
}
