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

package rpcpb

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/helioledger/go-helio/client/types"
)

// ErrorToStatus maps a typed submission error to the grpc status
// the server responds with.
func ErrorToStatus(err error) error {
	if err == nil {
		return nil
	}
	switch err {
	case types.ErrAccountNotFound:
		return status.Error(codes.NotFound, err.Error())
	case types.ErrAccountExists:
		return status.Error(codes.AlreadyExists, err.Error())
	case types.ErrBadSequence:
		return status.Error(codes.Aborted, err.Error())
	case types.ErrInsufficientFee:
		return status.Error(codes.InvalidArgument, err.Error())
	case types.ErrInsufficientReserve:
		return status.Error(codes.FailedPrecondition, err.Error())
	case types.ErrBadSignature:
		return status.Error(codes.Unauthenticated, err.Error())
	}
	if _, ok := err.(*types.OpError); ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// StatusToError maps a grpc status received by a client back to
// the typed submission error it was produced from. Unknown
// statuses pass through unchanged.
func StatusToError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	msg := st.Message()
	switch st.Code() {
	case codes.NotFound:
		if msg == types.ErrAccountNotFound.Error() {
			return types.ErrAccountNotFound
		}
	case codes.AlreadyExists:
		if msg == types.ErrAccountExists.Error() {
			return types.ErrAccountExists
		}
	case codes.Aborted:
		if msg == types.ErrBadSequence.Error() {
			return types.ErrBadSequence
		}
	case codes.FailedPrecondition:
		if msg == types.ErrInsufficientReserve.Error() {
			return types.ErrInsufficientReserve
		}
	case codes.Unauthenticated:
		if msg == types.ErrBadSignature.Error() {
			return types.ErrBadSignature
		}
	case codes.InvalidArgument:
		if msg == types.ErrInsufficientFee.Error() {
			return types.ErrInsufficientFee
		}
		if opErr, ok := parseOpError(msg); ok {
			return opErr
		}
	}
	return err
}

// parseOpError reverses the message format of types.OpError.
func parseOpError(msg string) (*types.OpError, bool) {
	if !strings.HasPrefix(msg, "op ") {
		return nil, false
	}
	rest := strings.TrimPrefix(msg, "op ")
	sep := strings.Index(rest, " failed: ")
	if sep < 0 {
		return nil, false
	}

	var index int
	for _, c := range rest[:sep] {
		if c < '0' || c > '9' {
			return nil, false
		}
		index = index*10 + int(c-'0')
	}
	return &types.OpError{Index: index, Reason: rest[sep+len(" failed: "):]}, true
}
