package crypto

import (
	"bytes"
	"encoding/binary"
	"errors"

	b58 "github.com/mr-tron/base58/base58"
)

type KeyType uint8

// Enumeration of key types.
const (
	_ KeyType = iota // skip zero
	KeyTypeAccountID
	KeyTypeSeed
	KeyTypeTx
)

var (
	ErrInvalidKey = errors.New("invalid key string")
)

// HLOKey is the typed representation of the various 32-byte
// hashes used across the ledger. Code identifies what the
// hash stands for.
type HLOKey struct {
	Code KeyType
	Hash [32]byte
}

// DecodeKey decodes a base58 encoded key string to a HLOKey.
func DecodeKey(key string) (*HLOKey, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	b, err := b58.Decode(key)
	if err != nil {
		return nil, ErrInvalidKey
	}

	var hloKey HLOKey
	r := bytes.NewReader(b)
	err = binary.Read(r, binary.BigEndian, &hloKey)
	if err != nil {
		return nil, ErrInvalidKey
	}

	switch hloKey.Code {
	case KeyTypeAccountID:
		fallthrough
	case KeyTypeSeed:
		fallthrough
	case KeyTypeTx:
		return &hloKey, nil
	}
	return nil, ErrInvalidKey
}

// EncodeKey encodes a HLOKey to a base58 key string.
func EncodeKey(hloKey *HLOKey) string {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, hloKey)
	return b58.Encode(buf.Bytes())
}

// IsValidKey checks the validity of the supplied key string.
func IsValidKey(key string) bool {
	if _, err := DecodeKey(key); err != nil {
		return false
	}
	return true
}

// IsValidAccountKey checks whether the key string is a valid
// account key.
func IsValidAccountKey(key string) bool {
	k, err := DecodeKey(key)
	if err != nil {
		return false
	}
	return k.Code == KeyTypeAccountID
}
