// internal/core/domain/view.go
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ViewMode represents the product manager's top-level view.
type ViewMode string

const (
	ViewList   ViewMode = "LIST"
	ViewDetail ViewMode = "DETAIL"
	ViewCreate ViewMode = "CREATE"
)

// DisplayMode represents how the product list is laid out.
type DisplayMode string

const (
	DisplayList DisplayMode = "LIST"
	DisplayGrid DisplayMode = "GRID"
)

// ErrViewTransition is returned for view transitions the state machine
// does not allow.
var ErrViewTransition = errors.New("view transition not allowed")

// ViewState is the product manager's navigation state. Mode moves
// between LIST, DETAIL and CREATE; SelectionMode and Display are
// orthogonal sub-modes of the list view. The zero value is not valid;
// use NewViewState.
type ViewState struct {
	Mode          ViewMode
	DetailID      uuid.UUID
	SelectionMode bool
	Display       DisplayMode
}

// NewViewState returns the initial state: the list view in list layout.
func NewViewState() ViewState {
	return ViewState{Mode: ViewList, Display: DisplayList}
}

// OpenDetail moves LIST -> DETAIL for the given product. While
// selection mode is active, tapping a product toggles its selection
// instead, so the transition is rejected.
func (v ViewState) OpenDetail(productID uuid.UUID) (ViewState, error) {
	if v.Mode != ViewList {
		return v, fmt.Errorf("%w: %s -> DETAIL", ErrViewTransition, v.Mode)
	}
	if v.SelectionMode {
		return v, fmt.Errorf("%w: detail blocked during selection", ErrViewTransition)
	}
	v.Mode = ViewDetail
	v.DetailID = productID
	return v, nil
}

// OpenCreate moves LIST -> CREATE.
func (v ViewState) OpenCreate() (ViewState, error) {
	if v.Mode != ViewList {
		return v, fmt.Errorf("%w: %s -> CREATE", ErrViewTransition, v.Mode)
	}
	if v.SelectionMode {
		return v, fmt.Errorf("%w: create blocked during selection", ErrViewTransition)
	}
	v.Mode = ViewCreate
	return v, nil
}

// Back returns to the list from DETAIL or CREATE, on save or cancel.
func (v ViewState) Back() (ViewState, error) {
	if v.Mode != ViewDetail && v.Mode != ViewCreate {
		return v, fmt.Errorf("%w: %s -> LIST", ErrViewTransition, v.Mode)
	}
	v.Mode = ViewList
	v.DetailID = uuid.Nil
	return v, nil
}

// ToggleSelectionMode flips the list's bulk-selection sub-mode. Only
// valid on the list view. The caller is responsible for clearing the
// selection set when the mode exits.
func (v ViewState) ToggleSelectionMode() (ViewState, error) {
	if v.Mode != ViewList {
		return v, fmt.Errorf("%w: selection only on list", ErrViewTransition)
	}
	v.SelectionMode = !v.SelectionMode
	return v, nil
}

// ToggleDisplay flips between grid and list layout.
func (v ViewState) ToggleDisplay() ViewState {
	if v.Display == DisplayGrid {
		v.Display = DisplayList
	} else {
		v.Display = DisplayGrid
	}
	return v
}
