// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package device provides the device-backed resources a shape renders
// with: path geometries, solid color brushes and command lists, plus the
// DrawContext that records fills into a command list.
//
// The model follows retained-mode 2D GPU APIs:
//
//	dev := device.New()
//	geo, _ := dev.CreatePathGeometry()
//	sink, _ := geo.Open()
//	sink.BeginFigure(points[0], device.FigureBeginFilled)
//	sink.AddLines(points[1:])
//	sink.EndFigure(device.FigureEndClosed)
//	_ = sink.Close()
//
//	brush, _ := dev.CreateSolidColorBrush(gputypes.Color{R: 1, A: 1})
//	list, _ := dev.CreateCommandList()
//
//	dc := dev.Context()
//	_ = dc.SetTarget(list)
//	_ = dc.BeginDraw()
//	_ = dc.Clear(nil)
//	_ = dc.FillGeometry(geo, brush)
//	_ = dc.EndDraw()
//	_ = dc.SetTarget(nil)
//	_ = list.Close() // finalize for replay
//
// A closed CommandList exposes an immutable recording.Recording that can be
// replayed any number of times.
//
// Every resource must be released exactly once with Release. Using a
// released resource returns ErrReleased; releasing twice is logged and
// otherwise ignored.
//
// Device is not safe for concurrent use. The host serializes all calls
// for a given device.
package device
