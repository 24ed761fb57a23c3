// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/squircle/recording"
)

// CommandList records draw commands while it is the render target and,
// once closed, exposes them as an immutable recording for replay.
type CommandList struct {
	resource
	format   gputypes.TextureFormat
	rec      *recording.Recorder
	out      *recording.Recording
	attached bool
}

// CreateCommandList creates an open, empty command list.
func (d *Device) CreateCommandList() (*CommandList, error) {
	res, err := d.alloc("command list")
	if err != nil {
		return nil, err
	}
	return &CommandList{
		resource: res,
		format:   d.format,
		rec:      recording.NewRecorder(d.format),
	}, nil
}

// Format returns the texture format the list is recorded for.
func (l *CommandList) Format() gputypes.TextureFormat {
	return l.format
}

// IsClosed reports whether the list has been finalized.
func (l *CommandList) IsClosed() bool {
	return l.out != nil
}

// Close finalizes the list for replay. The list must no longer be the
// render target.
func (l *CommandList) Close() error {
	if err := l.usableBy(l.dev); err != nil {
		return err
	}
	if l.out != nil {
		return ErrListClosed
	}
	if l.attached {
		return ErrTargetAttached
	}
	l.out = l.rec.FinishRecording()
	l.rec = nil
	return nil
}

// Recording returns the finalized commands.
func (l *CommandList) Recording() (*recording.Recording, error) {
	if err := l.usableBy(l.dev); err != nil {
		return nil, err
	}
	if l.out == nil {
		return nil, ErrListOpen
	}
	return l.out, nil
}

// Release releases the command list, detaching it from the draw context
// if it is still the target.
func (l *CommandList) Release() {
	if !l.release() {
		return
	}
	if l.attached {
		l.dev.ctx.detach(l)
	}
	l.rec = nil
	l.out = nil
}
