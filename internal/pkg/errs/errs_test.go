package errs_test

import (
	"errors"
	"testing"

	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("droneId", "456", cause)

		assert.Equal(t, "droneId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: droneId, ID is: 456 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("orderStatus")

		assert.Equal(t, "orderStatus", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: orderStatus", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown status")
		err := errs.NewValueIsInvalidErrorWithCause("orderStatus", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: orderStatus (cause: unknown status)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batteryPercentage", 150, 0, 100)

		assert.Equal(t, "batteryPercentage", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t,
			"value is invalid: 150 is batteryPercentage, min value is 0, max value is 100",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("contactInfo.phone")

	assert.Equal(t, "contactInfo.phone", err.ParamName)
	assert.Equal(t, "value is required: contactInfo.phone", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("serialNumber", "DRN-0042")

		assert.Equal(t, "serialNumber", err.ParamName)
		assert.Equal(t, "DRN-0042", err.Value)
		assert.Equal(t, "conflict: serialNumber (DRN-0042)", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("drone is no longer available")
		err := errs.NewConflictErrorWithCause("drone", "456", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: drone (456) (cause: drone is no longer available)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("completed", "preparing")

		assert.Equal(t, "completed", err.From)
		assert.Equal(t, "preparing", err.To)
		assert.Equal(t, "invalid status transition: from completed to preparing", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("drone assignment required")
		err := errs.NewInvalidTransitionErrorWithCause("preparing", "delivering", cause)

		assert.Equal(t,
			"invalid status transition: from preparing to delivering (cause: drone assignment required)",
			err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("battery", 101, 0, 100), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewConflictError("serialNumber", "DRN-1"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewInvalidTransitionError("pending", "completed"), errs.ErrInvalidTransition)
}
