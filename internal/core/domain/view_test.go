package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/pos-be/internal/core/domain"
)

func TestViewState_Transitions(t *testing.T) {
	productID := uuid.New()

	t.Run("list_to_detail_and_back", func(t *testing.T) {
		v := domain.NewViewState()

		v, err := v.OpenDetail(productID)
		require.NoError(t, err)
		assert.Equal(t, domain.ViewDetail, v.Mode)
		assert.Equal(t, productID, v.DetailID)

		v, err = v.Back()
		require.NoError(t, err)
		assert.Equal(t, domain.ViewList, v.Mode)
		assert.Equal(t, uuid.Nil, v.DetailID)
	})

	t.Run("list_to_create_and_back", func(t *testing.T) {
		v := domain.NewViewState()

		v, err := v.OpenCreate()
		require.NoError(t, err)
		assert.Equal(t, domain.ViewCreate, v.Mode)

		v, err = v.Back()
		require.NoError(t, err)
		assert.Equal(t, domain.ViewList, v.Mode)
	})

	t.Run("detail_cannot_open_create", func(t *testing.T) {
		v := domain.NewViewState()
		v, err := v.OpenDetail(productID)
		require.NoError(t, err)

		_, err = v.OpenCreate()
		assert.ErrorIs(t, err, domain.ErrViewTransition)
	})

	t.Run("back_from_list_is_rejected", func(t *testing.T) {
		v := domain.NewViewState()

		_, err := v.Back()
		assert.ErrorIs(t, err, domain.ErrViewTransition)
	})

	t.Run("selection_mode_blocks_detail_and_create", func(t *testing.T) {
		v := domain.NewViewState()
		v, err := v.ToggleSelectionMode()
		require.NoError(t, err)
		require.True(t, v.SelectionMode)

		_, err = v.OpenDetail(productID)
		assert.ErrorIs(t, err, domain.ErrViewTransition)

		_, err = v.OpenCreate()
		assert.ErrorIs(t, err, domain.ErrViewTransition)
	})

	t.Run("selection_mode_only_toggles_on_list", func(t *testing.T) {
		v := domain.NewViewState()
		v, err := v.OpenCreate()
		require.NoError(t, err)

		_, err = v.ToggleSelectionMode()
		assert.ErrorIs(t, err, domain.ErrViewTransition)
	})

	t.Run("display_mode_is_orthogonal", func(t *testing.T) {
		v := domain.NewViewState()
		assert.Equal(t, domain.DisplayList, v.Display)

		v = v.ToggleDisplay()
		assert.Equal(t, domain.DisplayGrid, v.Display)

		v, err := v.OpenDetail(productID)
		require.NoError(t, err)
		assert.Equal(t, domain.DisplayGrid, v.Display)

		v = v.ToggleDisplay()
		assert.Equal(t, domain.DisplayList, v.Display)
	})
}
