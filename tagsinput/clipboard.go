package tagsinput

// Clipboard is the system clipboard used by the Paste binding.
//
// Read errors are ignored; the input is left untouched.
type Clipboard interface {
	ReadText() (string, error)
}
