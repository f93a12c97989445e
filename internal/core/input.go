package core

// Command is an abstract input event produced by a presentation adapter.
// Adapters translate physical keys and pointer events into commands so the
// simulation never sees device-specific input.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeftPressed
	CommandMoveLeftReleased
	CommandMoveRightPressed
	CommandMoveRightReleased
	CommandFirePressed
	CommandQuitRequested
	CommandDismiss // Pointer press on the end screen
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveLeftPressed:
		return "MoveLeftPressed"
	case CommandMoveLeftReleased:
		return "MoveLeftReleased"
	case CommandMoveRightPressed:
		return "MoveRightPressed"
	case CommandMoveRightReleased:
		return "MoveRightReleased"
	case CommandFirePressed:
		return "FirePressed"
	case CommandQuitRequested:
		return "QuitRequested"
	case CommandDismiss:
		return "Dismiss"
	default:
		return "Unknown"
	}
}

// ParseCommand maps a command name back to its value.
// Unknown names return CommandNone and false.
func ParseCommand(name string) (Command, bool) {
	for c := CommandMoveLeftPressed; c <= CommandDismiss; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return CommandNone, false
}

// CommandQueue collects commands between two simulation ticks.
// The simulation drains it exactly once per tick, preserving arrival order.
type CommandQueue struct {
	pending []Command
}

// NewCommandQueue creates an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{pending: make([]Command, 0, 8)}
}

// Push appends a command. CommandNone is dropped.
func (q *CommandQueue) Push(c Command) {
	if c == CommandNone {
		return
	}
	q.pending = append(q.pending, c)
}

// Has returns true if the given command is waiting in the queue.
func (q *CommandQueue) Has(c Command) bool {
	for _, p := range q.pending {
		if p == c {
			return true
		}
	}
	return false
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return len(q.pending)
}

// Drain returns all pending commands in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *CommandQueue) Drain() []Command {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Command, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Clear discards all pending commands.
func (q *CommandQueue) Clear() {
	q.pending = q.pending[:0]
}
