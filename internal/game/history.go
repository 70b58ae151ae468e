package game

// History records the commands applied during one level attempt, most recent
// last. It exists solely to support undoing the last move: undo pops the last
// command and replays it with its letter case inverted.
type History struct {
	cmds []byte
}

// Push appends a command.
func (h *History) Push(cmd byte) {
	h.cmds = append(h.cmds, cmd)
}

// Pop removes and returns the most recent command.
func (h *History) Pop() (byte, bool) {
	if len(h.cmds) == 0 {
		return 0, false
	}
	last := h.cmds[len(h.cmds)-1]
	h.cmds = h.cmds[:len(h.cmds)-1]
	return last, true
}

// Last returns the most recent command without removing it.
func (h *History) Last() (byte, bool) {
	if len(h.cmds) == 0 {
		return 0, false
	}
	return h.cmds[len(h.cmds)-1], true
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.cmds)
}

// Reset drops all recorded commands.
func (h *History) Reset() {
	h.cmds = h.cmds[:0]
}

// Commands returns a copy of the recorded command sequence.
func (h *History) Commands() []byte {
	out := make([]byte, len(h.cmds))
	copy(out, h.cmds)
	return out
}
