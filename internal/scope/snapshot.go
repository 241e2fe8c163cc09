package scope

import "maps"

type frame struct {
	id        ScopeID
	variables map[string]VariableInfo
}

// Snapshot is a deep copy of a chain's active lineage. It shares nothing
// with the chain it was taken from.
type Snapshot struct {
	frames []frame
}

// Snapshot captures the active lineage, root first.
func (c *Chain) Snapshot() Snapshot {
	lineage := c.Lineage()
	frames := make([]frame, len(lineage))
	for i, id := range lineage {
		frames[i] = frame{id: id, variables: maps.Clone(c.arena[id].variables)}
	}
	return Snapshot{frames: frames}
}

// Restore replaces the active lineage with snap. Scopes opened after the
// snapshot was taken are dropped without an audit.
func (c *Chain) Restore(snap Snapshot) {
	if len(snap.frames) == 0 {
		return
	}

	maxID := ScopeID(0)
	inLineage := make(map[ScopeID]bool, len(snap.frames))
	for _, f := range snap.frames {
		inLineage[f.id] = true
		if f.id > maxID {
			maxID = f.id
		}
	}
	for ScopeID(len(c.arena)) <= maxID {
		c.arena = append(c.arena, record{parent: NoScope, child: NoScope})
	}

	c.free = c.free[:0]
	for id := range c.arena {
		if !inLineage[ScopeID(id)] {
			c.arena[id] = record{parent: NoScope, child: NoScope}
			c.free = append(c.free, ScopeID(id))
		}
	}

	parent := NoScope
	for i, f := range snap.frames {
		child := NoScope
		if i+1 < len(snap.frames) {
			child = snap.frames[i+1].id
		}
		c.arena[f.id] = record{
			variables: maps.Clone(f.variables),
			parent:    parent,
			child:     child,
			live:      true,
		}
		parent = f.id
	}
	c.current = snap.frames[len(snap.frames)-1].id
}
