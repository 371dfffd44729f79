package edit

// EventKind identifies an engine state change
type EventKind int

const (
	EventModeChanged EventKind = iota
	EventTargetChanged
	EventTopologyChanged
	EventSelectionChanged
	EventDragStarted
	EventGeometryChanged
	EventDragEnded
)

func (k EventKind) String() string {
	switch k {
	case EventModeChanged:
		return "mode-changed"
	case EventTargetChanged:
		return "target-changed"
	case EventTopologyChanged:
		return "topology-changed"
	case EventSelectionChanged:
		return "selection-changed"
	case EventDragStarted:
		return "drag-started"
	case EventGeometryChanged:
		return "geometry-changed"
	case EventDragEnded:
		return "drag-ended"
	}
	return "unknown"
}

// Event notifies presentation layers of a change. Listeners read the new
// state back from the engine.
type Event struct {
	Kind EventKind
}

// Subscribe registers fn to be called synchronously after every state change
func (e *Engine) Subscribe(fn func(Event)) {
	e.subscribers = append(e.subscribers, fn)
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.subscribers {
		fn(ev)
	}
}
