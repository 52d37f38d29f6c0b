package tagsinput

// InputEvent reports a keystroke that edited the pending input.
type InputEvent struct {
	// Text is the pending input after the edit.
	Text string
	// Value is the serialized tag list, unchanged by typing.
	Value string
}

// pasteCommitMsg commits pasted text one update after the paste landed in
// the pending input.
type pasteCommitMsg struct {
	id int
}
