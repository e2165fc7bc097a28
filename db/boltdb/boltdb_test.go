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

package boltdb

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoltDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "boltdb")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	d := New(filepath.Join(dir, "test.db"))
	defer d.Close()

	err = d.NewBucket("TEST")
	assert.Nil(t, err)

	err = d.Put("TEST", []byte("key"), []byte("value"))
	assert.Nil(t, err)

	val, err := d.Get("TEST", []byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), val)

	// A missing key returns a nil value without error.
	val, err = d.Get("TEST", []byte("missing"))
	assert.Nil(t, err)
	assert.Nil(t, val)
}

func TestBoltDBTx(t *testing.T) {
	dir, err := ioutil.TempDir("", "boltdb")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	d := New(filepath.Join(dir, "test.db"))
	defer d.Close()

	err = d.NewBucket("TEST")
	assert.Nil(t, err)

	tx, err := d.Begin()
	assert.Nil(t, err)
	err = tx.Put("TEST", []byte("key"), []byte("value"))
	assert.Nil(t, err)
	err = tx.Rollback()
	assert.Nil(t, err)

	val, err := d.Get("TEST", []byte("key"))
	assert.Nil(t, err)
	assert.Nil(t, val)

	tx, err = d.Begin()
	assert.Nil(t, err)
	err = tx.Put("TEST", []byte("key"), []byte("value"))
	assert.Nil(t, err)
	err = tx.Commit()
	assert.Nil(t, err)

	val, err = d.Get("TEST", []byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), val)
}

func TestBoltDBGetAll(t *testing.T) {
	dir, err := ioutil.TempDir("", "boltdb")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	d := New(filepath.Join(dir, "test.db"))
	defer d.Close()

	err = d.NewBucket("TEST")
	assert.Nil(t, err)

	err = d.Put("TEST", []byte("acc1/a"), []byte("v1"))
	assert.Nil(t, err)
	err = d.Put("TEST", []byte("acc1/b"), []byte("v2"))
	assert.Nil(t, err)
	err = d.Put("TEST", []byte("acc2/a"), []byte("v3"))
	assert.Nil(t, err)

	vals, err := d.GetAll("TEST", []byte("acc1"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(vals))
}
