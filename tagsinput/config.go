package tagsinput

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/tagfield/tags"
)

// DefaultPlaceholder is shown when neither Config nor the host provide one.
const DefaultPlaceholder = "Add a Tag"

// Toggle is a tri-state boolean option. Inherit defers to the host's data
// attribute, then to the built-in default.
type Toggle uint8

const (
	Inherit Toggle = iota
	On
	Off
)

// Config configures the tags input Model.
type Config struct {
	// Disabled skips all wiring: the host value is rendered as plain text
	// and no tags are managed.
	Disabled bool

	// DisableEvents renders the host's tags but ignores keyboard, mouse
	// and paste input.
	DisableEvents bool

	// Delimiter's first character separates tags. Empty means ",".
	Delimiter string

	// AllowDelete shows a clickable "×" on every tag. Defaults to on.
	AllowDelete Toggle

	// Lowercase, Uppercase and Duplicates may also come from the host's
	// "lowercase", "uppercase" and "duplicates" data attributes. Explicit
	// On/Off wins over the attribute. Duplicates defaults to on.
	Lowercase  Toggle
	Uppercase  Toggle
	Duplicates Toggle

	// OnDelete runs before a tag is removed; returning false keeps it.
	OnDelete func(tags.Tag) bool

	// OnChange fires once per committed mutation, after the host value was
	// updated.
	OnChange func(tags.Change)

	// OnSelect fires when the selected tag changes.
	OnSelect func(tags.SelectEvent)

	// OnInput fires on every keystroke that edits the pending input.
	OnInput func(InputEvent)

	Placeholder string

	// Clipboard backs the Paste binding. Bracketed terminal pastes work
	// without it.
	Clipboard Clipboard

	KeyMap KeyMap
	Style  Style
}

// Host is the field a Model enhances. Its value always holds the
// serialized tag list.
type Host interface {
	Value() string
	SetValue(v string)
}

// DatasetHost exposes data attributes that may override options.
type DatasetHost interface {
	Dataset(key string) (string, bool)
}

// PlaceholderHost provides a placeholder for the pending input.
type PlaceholderHost interface {
	Placeholder() string
}

func resolveOptions(host Host, cfg Config) tags.Options {
	opt := tags.DefaultOptions()
	if r, size := utf8.DecodeRuneInString(cfg.Delimiter); size > 0 && r != utf8.RuneError {
		opt.Delimiter = r
	}
	opt.Lowercase = resolveToggle(cfg.Lowercase, host, "lowercase", false)
	opt.Uppercase = resolveToggle(cfg.Uppercase, host, "uppercase", false)
	opt.Duplicates = resolveToggle(cfg.Duplicates, host, "duplicates", true)
	opt.OnDelete = cfg.OnDelete
	opt.OnSelect = cfg.OnSelect
	return opt
}

func resolveToggle(t Toggle, host Host, attr string, def bool) bool {
	switch t {
	case On:
		return true
	case Off:
		return false
	}
	if ds, ok := host.(DatasetHost); ok {
		if v, ok := ds.Dataset(attr); ok {
			return strings.EqualFold(strings.TrimSpace(v), "true")
		}
	}
	return def
}

func resolvePlaceholder(host Host, cfg Config) string {
	if cfg.Placeholder != "" {
		return cfg.Placeholder
	}
	if ph, ok := host.(PlaceholderHost); ok {
		if s := ph.Placeholder(); s != "" {
			return s
		}
	}
	return DefaultPlaceholder
}
