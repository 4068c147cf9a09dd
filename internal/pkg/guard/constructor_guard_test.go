package guard_test

import (
	"errors"
	"testing"

	"tailorshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Rate struct {
		amount int
		unit   string
		guard  guard.ConstructorGuard
	}

	var errRateNotConstructed = errors.New("Rate must be created via NewRate")

	newRate := func(amount int, unit string) (Rate, error) {
		if amount < 0 {
			return Rate{}, errors.New("amount cannot be negative")
		}
		if unit == "" {
			return Rate{}, errors.New("unit is required")
		}
		return Rate{amount: amount, unit: unit, guard: guard.NewConstructorGuard()}, nil
	}

	validateRate := func(r Rate) error {
		return r.guard.Validate(errRateNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		rate, err := newRate(150, "per_piece")

		require.NoError(t, err)
		require.NoError(t, validateRate(rate))
		assert.Equal(t, 150, rate.amount)
		assert.Equal(t, "per_piece", rate.unit)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var rate Rate // zero value

		err := validateRate(rate)

		require.Error(t, err)
		assert.Equal(t, errRateNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRate(-100, "per_piece")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount cannot be negative")

		_, err = newRate(100, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit is required")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}
