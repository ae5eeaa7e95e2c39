package guard_test

import (
	"errors"
	"testing"

	"dronedelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("drone not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_names_the_constructor_requirement", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardInDomainObject verifies the pattern the domain model
// relies on: a zero-value aggregate must fail validation, a constructed one
// must pass.
func TestConstructorGuardInDomainObject(t *testing.T) {
	type serialNumber struct {
		value string
		guard guard.ConstructorGuard
	}

	errSerialNotConstructed := errors.New("SerialNumber must be created via NewSerialNumber")

	newSerialNumber := func(value string) (serialNumber, error) {
		if value == "" {
			return serialNumber{}, errors.New("serial number is required")
		}
		return serialNumber{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_object_is_valid", func(t *testing.T) {
		sn, err := newSerialNumber("DRN-0042")

		require.NoError(t, err)
		require.NoError(t, sn.guard.Validate(errSerialNotConstructed))
		assert.Equal(t, "DRN-0042", sn.value)
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var sn serialNumber

		err := sn.guard.Validate(errSerialNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errSerialNotConstructed, err)
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		sn, err := newSerialNumber("DRN-0042")
		require.NoError(t, err)

		snCopy := sn

		require.NoError(t, snCopy.guard.Validate(errSerialNotConstructed))
	})
}
