// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import "errors"

// Common errors returned by device operations.
var (
	// ErrResourceExhausted is returned when a resource cannot be allocated
	// because the device budget is used up.
	ErrResourceExhausted = errors.New("device: resource exhausted")

	// ErrReleased is returned when a released resource is used.
	ErrReleased = errors.New("device: resource released")

	// ErrForeignResource is returned when a resource created by another
	// device is passed in.
	ErrForeignResource = errors.New("device: resource belongs to another device")

	// ErrGeometryOpened is returned by Open on a geometry that was already
	// opened once.
	ErrGeometryOpened = errors.New("device: geometry already opened")

	// ErrGeometryNotClosed is returned when an unfinished geometry is filled.
	ErrGeometryNotClosed = errors.New("device: geometry sink not closed")

	// ErrSinkClosed is returned by sink calls after Close.
	ErrSinkClosed = errors.New("device: geometry sink closed")

	// ErrFigureState is returned on BeginFigure inside a figure, or on
	// AddLines/EndFigure outside one.
	ErrFigureState = errors.New("device: invalid figure state")

	// ErrNoTarget is returned when drawing without a render target.
	ErrNoTarget = errors.New("device: no render target")

	// ErrNotDrawing is returned when a draw call is made outside
	// BeginDraw/EndDraw.
	ErrNotDrawing = errors.New("device: not inside BeginDraw/EndDraw")

	// ErrAlreadyDrawing is returned by BeginDraw or SetTarget while a draw
	// is in progress.
	ErrAlreadyDrawing = errors.New("device: draw already in progress")

	// ErrTargetAttached is returned when a command list is finalized while
	// it is still the render target.
	ErrTargetAttached = errors.New("device: command list is still the render target")

	// ErrListClosed is returned when a finalized command list is used as a
	// target or finalized again.
	ErrListClosed = errors.New("device: command list already closed")

	// ErrListOpen is returned when the recording of an unfinalized command
	// list is requested.
	ErrListOpen = errors.New("device: command list not closed")
)
