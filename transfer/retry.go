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

package transfer

import (
	"time"

	"github.com/helioledger/go-helio/log"
)

// RetryPolicy bounds how often a transient submission failure is
// retried. Sequence conflicts and escrow address collisions are
// transient, every retry rebuilds the tx from freshly fetched
// state.
type RetryPolicy struct {
	// Total number of attempts including the first one.
	MaxAttempts int
	// Base interval of the linear backoff between attempts.
	Interval time.Duration
}

// DefaultRetryPolicy returns the policy used when the caller does
// not supply one.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{MaxAttempts: 3, Interval: 100 * time.Millisecond}
}

// do runs fn until it succeeds, fails with a non-retryable error
// or the attempts are used up. The last error is returned.
func (p *RetryPolicy) do(fn func() error, retryable func(error) bool) error {
	var err error
	for i := 0; i < p.MaxAttempts; i++ {
		if i > 0 {
			time.Sleep(time.Duration(i) * p.Interval)
			log.Debugw("retrying tx submission", "attempt", i+1)
		}
		err = fn()
		if err == nil || !retryable(err) {
			return err
		}
	}
	return err
}
