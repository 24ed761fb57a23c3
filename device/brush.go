// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import "github.com/gogpu/gputypes"

// SolidColorBrush paints a single straight-alpha color.
type SolidColorBrush struct {
	resource
	color gputypes.Color
}

// CreateSolidColorBrush creates a brush with color c.
func (d *Device) CreateSolidColorBrush(c gputypes.Color) (*SolidColorBrush, error) {
	res, err := d.alloc("brush")
	if err != nil {
		return nil, err
	}
	return &SolidColorBrush{resource: res, color: c}, nil
}

// Color returns the brush color.
func (b *SolidColorBrush) Color() gputypes.Color {
	return b.color
}

// Release releases the brush.
func (b *SolidColorBrush) Release() {
	b.release()
}
