package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulthomas2107/product-graphql/pkg/zerror"
)

func TestZError(t *testing.T) {
	base := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	t.Run("carries status, code and message", func(t *testing.T) {
		assert.Equal(t, zerror.StatusNotFound, base.Status())
		assert.Equal(t, "PRODUCT_NOT_FOUND", base.Code())
		assert.Equal(t, "product not found", base.Msg())
		assert.Equal(t, "Code=PRODUCT_NOT_FOUND, Msg=product not found", base.Error())
	})

	t.Run("wraps a parent error", func(t *testing.T) {
		parent := errors.New("key missing")
		wrapped := base.WrapParent(parent)

		require.ErrorIs(t, &wrapped, parent)
		assert.Contains(t, wrapped.Error(), "key missing")
	})

	t.Run("wrapping nil keeps the error unchanged", func(t *testing.T) {
		wrapped := base.WrapParent(nil)
		assert.Nil(t, wrapped.Parent())
	})

	t.Run("errors.As finds a ZError through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("repository get: %w", base)

		var zErr zerror.ZError
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "PRODUCT_NOT_FOUND", zErr.Code())
	})
}
