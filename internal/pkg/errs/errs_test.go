package errs_test

import (
	"errors"
	"testing"

	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("order", "a1b2")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "a1b2", err.ID)
	require.NoError(t, err.Cause)
	assert.Equal(t, "object not found: a1b2", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestObjectNotFoundError_WithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewObjectNotFoundErrorWithCause("product", "a1b2", cause)

	assert.Equal(t, cause, err.Cause)
	// The cause variant spells out the parameter as well.
	assert.Equal(t,
		"object not found: param is: product, ID is: a1b2 (cause: connection reset)",
		err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("status")

	assert.Equal(t, "status", err.ParamName)
	assert.Equal(t, "value is invalid: status", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cause := errors.New(`"cancelada" is not a valid status`)
	withCause := errs.NewValueIsInvalidErrorWithCause("status", cause)
	assert.Equal(t, cause, withCause.Cause)
	assert.Equal(t,
		`value is invalid: status (cause: "cancelada" is not a valid status)`,
		withCause.Error())
	require.ErrorIs(t, withCause, errs.ErrValueIsInvalid)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("quantity", 12, 1, 10)

	assert.Equal(t, "quantity", err.ParamName)
	assert.Equal(t, 12, err.Value)
	assert.Equal(t, 1, err.Min)
	assert.Equal(t, 10, err.Max)
	// Note the prefix: the message leads with the invalid-value sentinel even
	// though Unwrap classifies it as out-of-range.
	assert.Equal(t,
		"value is invalid: 12 is quantity, min value is 1, max value is 10",
		err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cause := errors.New("stock check failed")
	withCause := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -3, 1, 10, cause)
	assert.Equal(t,
		"value is invalid: -3 is quantity, min value is 1, max value is 10 (cause: stock check failed)",
		withCause.Error())
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("shippingAddress")

	assert.Equal(t, "shippingAddress", err.ParamName)
	assert.Equal(t, "value is required: shippingAddress", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cause := errors.New("field absent from payload")
	withCause := errs.NewValueIsRequiredErrorWithCause("shippingAddress", cause)
	assert.Equal(t,
		"value is required: shippingAddress (cause: field absent from payload)",
		withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("version 3 is behind stored version 5")
	err := errs.NewVersionIsInvalidError("order", cause)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"version is invalid: order (cause: version 3 is behind stored version 5)",
		err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	bare := errs.NewVersionIsInvalidErrorWithCause("order")
	require.NoError(t, bare.Cause)
	assert.Equal(t, "version is invalid: order", bare.Error())
}

func TestErrorMessages_AreSingleLine(t *testing.T) {
	// Causes coming from external input could smuggle newlines into logs.
	err := errs.NewValueIsInvalidErrorWithCause("name",
		errors.New("line one\r\nline two\nline three"))

	assert.NotContains(t, err.Error(), "\n")
	assert.NotContains(t, err.Error(), "\r")
	assert.Contains(t, err.Error(), "line one line two line three")
}

func TestSentinels_ClassifyEveryErrorType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"object not found", errs.NewObjectNotFoundError("order", "a1b2"), errs.ErrObjectNotFound},
		{"value is invalid", errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid},
		{"value is out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10), errs.ErrValueIsOutOfRange},
		{"value is required", errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired},
		{"version is invalid", errs.NewVersionIsInvalidError("order", errors.New("stale")), errs.ErrVersionIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.name, tt.sentinel.Error())
		})
	}
}
