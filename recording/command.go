package recording

import (
	"fmt"

	"github.com/gogpu/paint"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear    CommandType = iota // Clear the surface to its background
	CmdSetColor                    // Change the color of later plots
	CmdPlot                        // Plot one pixel
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:    "Clear",
	CmdSetColor: "SetColor",
	CmdPlot:     "Plot",
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

// ClearCommand clears the surface to its background.
type ClearCommand struct{}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

func (ClearCommand) String() string { return "Clear" }

// SetColorCommand sets the color used by subsequent plots.
type SetColorCommand struct {
	Color paint.Color
}

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

func (c SetColorCommand) String() string { return "SetColor(" + c.Color.String() + ")" }

// PlotCommand plots a single pixel in the current color.
type PlotCommand struct {
	X, Y int
}

// Type implements Command.
func (PlotCommand) Type() CommandType { return CmdPlot }

func (c PlotCommand) String() string { return fmt.Sprintf("Plot(%d,%d)", c.X, c.Y) }
