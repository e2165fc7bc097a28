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

package types

// TxStatusCode represents the status of a tx on the ledger.
type TxStatusCode uint8

const (
	// The tx does not exist.
	NotExist TxStatusCode = iota
	// The tx failed to pass the admission checks.
	Rejected
	// The tx has been applied successfully.
	Confirmed
	// The tx was admitted but failed to apply.
	Failed
	// The tx status could not be determined.
	Unknown
)

func (ts TxStatusCode) String() string {
	switch ts {
	case NotExist:
		return "not exist"
	case Rejected:
		return "rejected"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	case Unknown:
		return "unknown"
	}
	return ""
}

// TxStatus represents the status of a tx together with the
// error message of a rejected or failed tx.
type TxStatus struct {
	StatusCode   TxStatusCode
	ErrorMessage string
}
