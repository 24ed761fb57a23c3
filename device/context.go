// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/squircle/recording"
)

// DrawContext records drawing operations into its target command list.
type DrawContext struct {
	dev     *Device
	target  *CommandList
	drawing bool
}

// SetTarget makes l the render target. Passing nil detaches the current
// target. The target cannot change between BeginDraw and EndDraw.
func (c *DrawContext) SetTarget(l *CommandList) error {
	if c.drawing {
		return ErrAlreadyDrawing
	}
	if l != nil {
		if err := l.usableBy(c.dev); err != nil {
			return err
		}
		if l.IsClosed() {
			return ErrListClosed
		}
	}
	if c.target != nil {
		c.target.attached = false
	}
	c.target = l
	if l != nil {
		l.attached = true
	}
	return nil
}

// Target returns the current render target, or nil.
func (c *DrawContext) Target() *CommandList {
	return c.target
}

// IsDrawing reports whether the context is between BeginDraw and EndDraw.
func (c *DrawContext) IsDrawing() bool {
	return c.drawing
}

// BeginDraw starts a batch of drawing operations on the target.
func (c *DrawContext) BeginDraw() error {
	if c.target == nil {
		return ErrNoTarget
	}
	if c.drawing {
		return ErrAlreadyDrawing
	}
	c.drawing = true
	return nil
}

// Clear clears the target. A nil color clears to transparent.
func (c *DrawContext) Clear(col *gputypes.Color) error {
	if !c.drawing {
		return ErrNotDrawing
	}
	c.target.rec.Clear(col)
	return nil
}

// FillGeometry fills the filled figures of g with brush b.
func (c *DrawContext) FillGeometry(g *PathGeometry, b *SolidColorBrush) error {
	if !c.drawing {
		return ErrNotDrawing
	}
	if err := g.usableBy(c.dev); err != nil {
		return err
	}
	if err := b.usableBy(c.dev); err != nil {
		return err
	}
	if !g.IsClosed() {
		return ErrGeometryNotClosed
	}
	c.target.rec.FillPath(g.path, recording.NewSolidBrush(b.color), recording.FillRuleNonZero)
	return nil
}

// EndDraw ends the batch started by BeginDraw.
func (c *DrawContext) EndDraw() error {
	if !c.drawing {
		return ErrNotDrawing
	}
	c.drawing = false
	return nil
}

// detach drops l as target; called when l is released while attached.
func (c *DrawContext) detach(l *CommandList) {
	if c.target == l {
		c.target = nil
		c.drawing = false
	}
	l.attached = false
}
