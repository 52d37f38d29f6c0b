package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/iw2rmb/tagfield/internal/logging"
)

// runLines feeds every non-empty line of r to a field. A "name: value"
// line targets the field called name, anything else the first field.
func runLines(r io.Reader, fields []field, log *logging.Logger) error {
	if len(fields) == 0 {
		return nil
	}

	added := 0
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		target, value := fields[0], line
		if name, rest, ok := strings.Cut(line, ":"); ok {
			if fd, found := findField(fields, strings.TrimSpace(name)); found {
				target, value = fd, rest
			}
		}

		if !target.model.Add(value) {
			log.Warn().Int("line", n).Str("field", target.name).Msg("nothing added")
			continue
		}
		log.Debugf("line %d: %s = %q", n, target.name, target.model.Value())
		added++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Infof("line mode: %d lines added", added)
	return nil
}

func findField(fields []field, name string) (field, bool) {
	for _, fd := range fields {
		if fd.name == name {
			return fd, true
		}
	}
	return field{}, false
}
