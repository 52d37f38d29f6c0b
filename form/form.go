// Package form models the host fields a tags input enhances: named values
// with a type, a placeholder and data attributes, grouped into a form that
// can be loaded from YAML and encoded for submission.
package form

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSelector matches every field of type "tags".
const DefaultSelector = `input[type="tags"]`

var (
	ErrBadSelector = errors.New("invalid selector")
	ErrNoName      = errors.New("field without a name")
	ErrDuplicate   = errors.New("duplicate field name")
)

// Field is one named form value. Text is the submitted value and Hint the
// placeholder shown while it is empty.
type Field struct {
	Name string            `yaml:"name"`
	Type string            `yaml:"type,omitempty"`
	Text string            `yaml:"value,omitempty"`
	Hint string            `yaml:"placeholder,omitempty"`
	Data map[string]string `yaml:"data,omitempty"`
}

func (f *Field) Value() string { return f.Text }

func (f *Field) SetValue(v string) { f.Text = v }

func (f *Field) Placeholder() string { return f.Hint }

// Dataset returns the data attribute key. Keys are matched case
// insensitively.
func (f *Field) Dataset(key string) (string, bool) {
	for k, v := range f.Data {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Form is an ordered set of uniquely named fields.
type Form struct {
	Action string   `yaml:"action,omitempty"`
	Fields []*Field `yaml:"fields"`
}

// Load decodes a YAML form description and validates field names.
func Load(r io.Reader) (*Form, error) {
	var f Form
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode form: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func LoadFile(name string) (*Form, error) {
	fh, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open form: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

func (f *Form) validate() error {
	seen := make(map[string]struct{}, len(f.Fields))
	for i, fd := range f.Fields {
		if fd == nil || fd.Name == "" {
			return fmt.Errorf("field %d: %w", i, ErrNoName)
		}
		if _, ok := seen[fd.Name]; ok {
			return fmt.Errorf("field %q: %w", fd.Name, ErrDuplicate)
		}
		seen[fd.Name] = struct{}{}
		if fd.Type == "" {
			fd.Type = "text"
		}
	}
	return nil
}

// Add appends a field. It fails if the name is empty or taken.
func (f *Form) Add(fd *Field) error {
	if fd == nil || fd.Name == "" {
		return ErrNoName
	}
	if f.Lookup(fd.Name) != nil {
		return fmt.Errorf("field %q: %w", fd.Name, ErrDuplicate)
	}
	if fd.Type == "" {
		fd.Type = "text"
	}
	f.Fields = append(f.Fields, fd)
	return nil
}

// Lookup returns the field called name, or nil.
func (f *Form) Lookup(name string) *Field {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd
		}
	}
	return nil
}

// Query returns the fields matching selector in form order.
//
// Supported selectors:
//   - "" or DefaultSelector: fields of type "tags"
//   - "#name": the field called name
//   - "[type=T]", "input[type=T]", quotes optional: fields of type T
//   - anything else: a path.Match glob over field names
func (f *Form) Query(selector string) ([]*Field, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		selector = DefaultSelector
	}

	if name, ok := strings.CutPrefix(selector, "#"); ok {
		if fd := f.Lookup(name); fd != nil {
			return []*Field{fd}, nil
		}
		return nil, nil
	}

	if typ, ok, err := parseTypeSelector(selector); ok || err != nil {
		if err != nil {
			return nil, err
		}
		var out []*Field
		for _, fd := range f.Fields {
			if fd.Type == typ {
				out = append(out, fd)
			}
		}
		return out, nil
	}

	if _, err := path.Match(selector, ""); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadSelector, selector, err)
	}
	var out []*Field
	for _, fd := range f.Fields {
		if ok, _ := path.Match(selector, fd.Name); ok {
			out = append(out, fd)
		}
	}
	return out, nil
}

func parseTypeSelector(s string) (typ string, ok bool, err error) {
	s = strings.TrimPrefix(s, "input")
	if !strings.HasPrefix(s, "[") {
		return "", false, nil
	}
	body, closed := strings.CutSuffix(s[1:], "]")
	if !closed {
		return "", true, fmt.Errorf("%w %q: unterminated attribute", ErrBadSelector, s)
	}
	attr, val, found := strings.Cut(body, "=")
	if !found || strings.TrimSpace(attr) != "type" {
		return "", true, fmt.Errorf("%w %q: only [type=...] is supported", ErrBadSelector, s)
	}
	val = strings.Trim(strings.TrimSpace(val), `"'`)
	if val == "" {
		return "", true, fmt.Errorf("%w %q: empty type", ErrBadSelector, s)
	}
	return val, true, nil
}

// Values returns the submission values keyed by field name.
func (f *Form) Values() url.Values {
	v := make(url.Values, len(f.Fields))
	for _, fd := range f.Fields {
		v.Set(fd.Name, fd.Value())
	}
	return v
}

// Encode returns the form as an application/x-www-form-urlencoded body.
func (f *Form) Encode() string { return f.Values().Encode() }
