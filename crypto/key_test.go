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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeKey(t *testing.T) {
	key := &HLOKey{Code: KeyTypeAccountID}
	copy(key.Hash[:], []byte("helio-key-hash"))

	enc := EncodeKey(key)
	assert.NotEqual(t, "", enc)

	dec, err := DecodeKey(enc)
	assert.Nil(t, err)
	assert.Equal(t, key.Code, dec.Code)
	assert.Equal(t, key.Hash, dec.Hash)
}

func TestDecodeInvalidKey(t *testing.T) {
	_, err := DecodeKey("")
	assert.Equal(t, ErrInvalidKey, err)

	_, err = DecodeKey("not-base58-0OIl")
	assert.Equal(t, ErrInvalidKey, err)

	// A key with an unknown type code should not decode.
	key := &HLOKey{Code: KeyType(100)}
	_, err = DecodeKey(EncodeKey(key))
	assert.Equal(t, ErrInvalidKey, err)
}

func TestIsValidAccountKey(t *testing.T) {
	pub, seed, err := GetAccountKeypair()
	assert.Nil(t, err)

	assert.True(t, IsValidAccountKey(pub))
	// A seed is a valid key but not an account key.
	assert.True(t, IsValidKey(seed))
	assert.False(t, IsValidAccountKey(seed))
}
