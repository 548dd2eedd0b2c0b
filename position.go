package propcheck

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Position identifies the call site a check was started from. It is carried
// through the engine unchanged and only used when rendering a report.
type Position struct {
	File string
	Line int
}

// CallerPosition captures the position of its caller.
func CallerPosition() Position {
	return callerPosition(2)
}

// callerPosition captures a position skip frames above this function.
func callerPosition(skip int) Position {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Position{}
	}
	return Position{File: filepath.Base(file), Line: line}
}

// String renders the position as file:line, or an empty string for the zero
// position.
func (p Position) String() string {
	if p.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}
