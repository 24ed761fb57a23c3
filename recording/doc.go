// Package recording provides the compiled draw-command list used by the
// squircle renderer.
//
// Drawing operations are captured by a Recorder as typed commands. Finishing
// the Recorder yields a Recording: an immutable, replayable list of commands
// plus the resources (paths, brushes) they reference. A Recording can be
// played back any number of times to any Backend.
//
// # Architecture
//
//   - Recorder: captures Clear and FillPath operations as commands
//   - Recording: stores commands and resources for playback
//   - Backend: renders commands to a specific output (pixels, inspection)
//
// # Basic Usage
//
//	rec := recording.NewRecorder(gputypes.TextureFormatRGBA8Unorm)
//	rec.Clear(nil)
//	rec.FillPath(path, recording.NewSolidBrush(gputypes.Color{R: 1, A: 1}), recording.FillRuleNonZero)
//	r := rec.FinishRecording()
//
//	backend, _ := recording.NewBackend("raster")
//	_ = r.Playback(backend)
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. The
// built-in raster backend registers itself as "raster":
//
//	import _ "github.com/gogpu/squircle/recording/backends/raster"
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
package recording
