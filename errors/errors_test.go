package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOutOfOrder = errors.New("out of order")

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("ignores nil", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
		require.NoError(t, c.GetError())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		for i := range 3 {
			c.Add(fmt.Errorf("%w: index %d", errOutOfOrder, i))
			c.Add(nil)
		}

		require.Equal(t, 3, c.Len())

		for i, err := range c.Errors() {
			assert.ErrorIs(t, err, errOutOfOrder)
			assert.Contains(t, err.Error(), fmt.Sprintf("index %d", i))
		}
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errOutOfOrder)

		assert.Equal(t, errOutOfOrder, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		first := errors.New("first")   //nolint:err113
		second := errors.New("second") //nolint:err113

		c := &Collection{}
		c.Add(first)
		c.Add(second)

		err := c.GetError()
		require.ErrorIs(t, err, first)
		require.ErrorIs(t, err, second)
		assert.Equal(t, "first\nsecond", err.Error())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errOutOfOrder)
	c.Clear()

	assert.False(t, c.HasError())
	require.NoError(t, c.GetError())

	c.Add(errors.New("again")) //nolint:err113
	assert.Equal(t, 1, c.Len())
}

func TestCollection_ErrorsIsACopy(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errOutOfOrder)

	errs := c.Errors()
	errs[0] = nil

	assert.Equal(t, errOutOfOrder, c.Errors()[0]) //nolint:testifylint
}
