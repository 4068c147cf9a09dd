package order_test

import (
	"testing"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined lifecycle states", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Cutting, order.Sewing,
			order.Ready, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Cutting", order.Cutting.String())
	assert.Equal(t, "Sewing", order.Sewing.String())
	assert.Equal(t, "Ready", order.Ready.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		for _, name := range []string{"Pending", "Cutting", "Sewing", "Ready", "Delivered", "Cancelled"} {
			s, err := order.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("should reject unrecognized value", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		_, err := order.StatusFromString("Unknown")

		require.Error(t, err)
	})
}
