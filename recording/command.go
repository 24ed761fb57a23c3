package recording

import "github.com/gogpu/gputypes"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear    CommandType = iota // Clear the target
	CmdFillPath                    // Fill a path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:    "Clear",
	CmdFillPath: "FillPath",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid brush.
func (r BrushRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// FillRule specifies how to determine the inside of a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// ClearCommand clears the whole target. A nil Color clears to transparent.
type ClearCommand struct {
	Color *gputypes.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillPathCommand fills a path with a brush.
type FillPathCommand struct {
	// Path references the path to fill in the resource pool.
	Path PathRef
	// Brush references the fill brush in the resource pool.
	Brush BrushRef
	// Rule specifies the fill rule (non-zero or even-odd).
	Rule FillRule
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }
