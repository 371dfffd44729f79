package edit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for an edit mode outside the known set
var ErrUnknownMode = errors.New("unknown edit mode")

// Mode is the sub-element edit mode of the target mesh
type Mode int

const (
	ModeNone Mode = iota
	ModeVertex
	ModeEdge
	ModeFace
	ModeNormal
)

var modeNames = [...]string{
	ModeNone:   "none",
	ModeVertex: "vertex",
	ModeEdge:   "edge",
	ModeFace:   "face",
	ModeNormal: "normal",
}

func (m Mode) String() string {
	if m.valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (m Mode) valid() bool {
	return m >= ModeNone && int(m) < len(modeNames)
}

// ParseMode converts a name such as "edge" into a Mode
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(m), nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Allows reports whether handles of the given kind are shown and draggable
// in this mode. Face and normal modes have no draggable handles.
func (m Mode) Allows(kind ElementKind) bool {
	switch kind {
	case ElementVertex:
		return m == ModeVertex
	case ElementEdge:
		return m == ModeEdge
	}
	return false
}

// ElementKind identifies the type of handle under the pointer
type ElementKind int

const (
	ElementVertex ElementKind = iota
	ElementEdge
)

func (k ElementKind) String() string {
	if k == ElementEdge {
		return "edge"
	}
	return "vertex"
}

// DragState is the state of the drag session state machine
type DragState int

const (
	StateIdle DragState = iota
	StateVertexDragging
	StateEdgeDragging
)

func (s DragState) String() string {
	switch s {
	case StateVertexDragging:
		return "vertex-dragging"
	case StateEdgeDragging:
		return "edge-dragging"
	default:
		return "idle"
	}
}
