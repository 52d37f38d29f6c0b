package tags

import "github.com/google/uuid"

// Change is the payload of a committed tag list mutation.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64

	Added   []Tag
	Removed []Tag

	// Value is the serialized list after the change.
	Value string
}

// SelectEvent reports the selection after it changed. Active is false when
// the selection was cleared.
type SelectEvent struct {
	Tag    Tag
	Active bool
}

type changeBuilder struct {
	versionBefore uint64
	before        []Tag
	selBefore     uuid.UUID
}

func (e *Editor) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore: e.version,
		before:        append([]Tag(nil), e.tags...),
		selBefore:     e.selectedID(),
	}
}

// commitChange publishes what happened since cb was taken: a SelectEvent
// if the selected tag differs, then a Change if the list version moved.
func (e *Editor) commitChange(cb changeBuilder) {
	if sel := e.selectedID(); sel != cb.selBefore && e.opt.OnSelect != nil {
		ev := SelectEvent{}
		if t, ok := e.Selected(); ok {
			ev = SelectEvent{Tag: t, Active: true}
		}
		e.opt.OnSelect(ev)
	}

	if e.version == cb.versionBefore || e.opt.OnChange == nil {
		return
	}
	added, removed := diffTags(cb.before, e.tags)
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	e.opt.OnChange(Change{
		VersionBefore: cb.versionBefore,
		VersionAfter:  e.version,
		Added:         added,
		Removed:       removed,
		Value:         e.Serialize(),
	})
}

func diffTags(before, after []Tag) (added, removed []Tag) {
	seen := make(map[uuid.UUID]struct{}, len(before))
	for _, t := range before {
		seen[t.ID] = struct{}{}
	}
	kept := make(map[uuid.UUID]struct{}, len(after))
	for _, t := range after {
		kept[t.ID] = struct{}{}
		if _, ok := seen[t.ID]; !ok {
			added = append(added, t)
		}
	}
	for _, t := range before {
		if _, ok := kept[t.ID]; !ok {
			removed = append(removed, t)
		}
	}
	return added, removed
}
