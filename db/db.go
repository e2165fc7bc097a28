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

// Package db defines the generic database interfaces which the
// concrete key-value store backends should implement.
package db

// Getter wraps the read methods of the database.
type Getter interface {
	// Get retrieves the value of the key, a nil value without
	// an error means the key does not exist.
	Get(bucket string, key []byte) ([]byte, error)
	// GetAll retrieves the values of the keys with the prefix.
	GetAll(bucket string, keyPrefix []byte) ([][]byte, error)
}

// Putter wraps the write methods of the database.
type Putter interface {
	// Put writes the key/value pair to the database.
	Put(bucket string, key, value []byte) error
	// Delete deletes the key from the database.
	Delete(bucket string, key []byte) error
}

// Tx is a database transaction which applies its writes
// atomically on commit and discards them on rollback.
type Tx interface {
	Getter
	Putter
	Commit() error
	Rollback() error
}

// Database is the generic interface of the key-value stores.
type Database interface {
	Getter
	Putter
	NewBucket(name string) error
	Begin() (Tx, error)
	Close() error
}
