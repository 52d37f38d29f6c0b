package tags

import (
	"strings"

	"github.com/iw2rmb/tagfield/internal/grapheme"
)

// CaretMove identifies a caret movement inside the pending input.
type CaretMove uint8

const (
	CaretLeft CaretMove = iota
	CaretRight
	CaretHome
	CaretEnd
)

// Input is the single-line pending buffer holding typed but uncommitted
// text. The caret is a grapheme cluster offset in [0, Len()].
type Input struct {
	clusters []string
	caret    int
	version  uint64
}

// NewInput returns an Input holding text with the caret at its end.
func NewInput(text string) *Input {
	in := &Input{clusters: grapheme.Split(singleLine(text))}
	in.caret = len(in.clusters)
	return in
}

func (in *Input) Text() string { return grapheme.Join(in.clusters) }

func (in *Input) Len() int { return len(in.clusters) }

func (in *Input) Empty() bool { return len(in.clusters) == 0 }

func (in *Input) Caret() int { return in.caret }

// AtStart reports whether the caret sits before the first cluster. An empty
// buffer is always at start.
func (in *Input) AtStart() bool { return in.caret == 0 }

// Version increments on every effective text or caret change.
func (in *Input) Version() uint64 { return in.version }

// Clusters returns a copy of the buffer's grapheme clusters.
func (in *Input) Clusters() []string { return append([]string(nil), in.clusters...) }

// SetText replaces the buffer and moves the caret to the end.
func (in *Input) SetText(s string) {
	next := grapheme.Split(singleLine(s))
	if grapheme.Join(next) == in.Text() && in.caret == len(next) {
		return
	}
	in.clusters = next
	in.caret = len(next)
	in.version++
}

func (in *Input) Clear() { in.SetText("") }

func (in *Input) SetCaret(col int) {
	col = clampInt(col, 0, len(in.clusters))
	if col == in.caret {
		return
	}
	in.caret = col
	in.version++
}

// InsertText inserts s at the caret. Each line break becomes a space.
func (in *Input) InsertText(s string) {
	ins := grapheme.Split(singleLine(s))
	if len(ins) == 0 {
		return
	}
	out := make([]string, 0, len(in.clusters)+len(ins))
	out = append(out, in.clusters[:in.caret]...)
	out = append(out, ins...)
	out = append(out, in.clusters[in.caret:]...)

	in.resegment(out, in.caret+len(ins))
	in.version++
}

// resegment rebuilds the clusters from out, keeping the caret after the
// first caret entries of out. Edits can merge neighbours: a combining mark
// joins its base, and two regional indicators brought together form a
// flag.
func (in *Input) resegment(out []string, caret int) {
	prefix := grapheme.Join(out[:caret])
	in.clusters = grapheme.Split(grapheme.Join(out))
	in.caret = clampInt(grapheme.Count(prefix), 0, len(in.clusters))
}

// DeleteBackward removes the cluster before the caret.
func (in *Input) DeleteBackward() bool {
	if in.caret == 0 {
		return false
	}
	out := append(in.clusters[:in.caret-1:in.caret-1], in.clusters[in.caret:]...)
	in.resegment(out, in.caret-1)
	in.version++
	return true
}

// DeleteForward removes the cluster under the caret.
func (in *Input) DeleteForward() bool {
	if in.caret >= len(in.clusters) {
		return false
	}
	out := append(in.clusters[:in.caret:in.caret], in.clusters[in.caret+1:]...)
	in.resegment(out, in.caret)
	in.version++
	return true
}

func (in *Input) Move(m CaretMove) {
	next := in.caret
	switch m {
	case CaretLeft:
		next--
	case CaretRight:
		next++
	case CaretHome:
		next = 0
	case CaretEnd:
		next = len(in.clusters)
	}
	in.SetCaret(next)
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
