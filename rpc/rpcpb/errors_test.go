package rpcpb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioledger/go-helio/client/types"
)

func TestErrorStatusRoundTrip(t *testing.T) {
	typed := []error{
		types.ErrAccountNotFound,
		types.ErrAccountExists,
		types.ErrBadSequence,
		types.ErrInsufficientFee,
		types.ErrInsufficientReserve,
		types.ErrBadSignature,
	}
	for _, err := range typed {
		assert.Equal(t, err, StatusToError(ErrorToStatus(err)))
	}

	opErr := &types.OpError{Index: 3, Reason: "trust balance is not zero"}
	back := StatusToError(ErrorToStatus(opErr))
	assert.Equal(t, opErr, back)

	// Untyped errors pass through as statuses.
	plain := errors.New("db exploded")
	assert.NotNil(t, StatusToError(ErrorToStatus(plain)))

	assert.Nil(t, ErrorToStatus(nil))
	assert.Nil(t, StatusToError(nil))
}
