package kernel_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("accepts boundary values", func(t *testing.T) {
		for _, v := range []int{kernel.MinQuantity, 5, kernel.MaxQuantity} {
			q, err := kernel.NewQuantity(v)

			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, v, q.Value())
		}
	})

	t.Run("rejects values outside range", func(t *testing.T) {
		for _, v := range []int{0, -1, kernel.MaxQuantity + 1, 100} {
			_, err := kernel.NewQuantity(v)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "quantity %d", v)
		}
	})
}

func TestQuantity_IsEqual(t *testing.T) {
	a, _ := kernel.NewQuantity(3)
	b, _ := kernel.NewQuantity(3)
	c, _ := kernel.NewQuantity(4)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestQuantity_Validate(t *testing.T) {
	var q kernel.Quantity
	require.ErrorIs(t, q.Validate(), kernel.ErrQuantityIsNotConstructed)
}
