// Package scope implements the lexical scope chain used by the dead-store
// analysis. Scopes live in an arena and refer to each other by ScopeID, so a
// chain can be copied or rewound without chasing pointers.
package scope

import (
	"errors"
	"fmt"
	"slices"

	"deadstore/internal/ast"
)

var (
	ErrUndeclaredVariable = errors.New("undeclared variable")
	ErrNoParentScope      = errors.New("no parent scope")
)

// ScopeID addresses a scope record in a Chain's arena.
type ScopeID int

// NoScope is the parent of the root and the child of a leaf.
const NoScope ScopeID = -1

// VariableInfo is the liveness state of one binding.
type VariableInfo struct {
	IsUsed            bool         // read since the last write
	IsRedefinedInFlow bool         // written again after its declaration
	Location          ast.Position // declaration or last assignment
	Declared          ast.Position // declaration site; identifies the binding
}

// Recorder receives the dead stores found when a scope closes.
type Recorder interface {
	Record(name string, assigned, dead ast.Position)
}

type record struct {
	variables map[string]VariableInfo
	parent    ScopeID
	child     ScopeID
	live      bool
}

// Chain is a scope tree with a single active lineage from the root to the
// current scope. It is not safe for concurrent use.
type Chain struct {
	arena    []record
	free     []ScopeID
	current  ScopeID
	recorder Recorder
}

// New returns a chain holding only the root scope. recorder may be nil.
func New(recorder Recorder) *Chain {
	c := &Chain{recorder: recorder}
	c.current = c.alloc(NoScope)
	return c
}

func (c *Chain) alloc(parent ScopeID) ScopeID {
	rec := record{
		variables: map[string]VariableInfo{},
		parent:    parent,
		child:     NoScope,
		live:      true,
	}
	if n := len(c.free); n > 0 {
		id := c.free[n-1]
		c.free = c.free[:n-1]
		c.arena[id] = rec
		return id
	}
	c.arena = append(c.arena, rec)
	return ScopeID(len(c.arena) - 1)
}

func (c *Chain) release(id ScopeID) {
	c.arena[id] = record{parent: NoScope, child: NoScope}
	c.free = append(c.free, id)
}

// Lineage returns the handles from the root to the current scope.
func (c *Chain) Lineage() []ScopeID {
	var ids []ScopeID
	for id := c.current; id != NoScope; id = c.arena[id].parent {
		ids = append(ids, id)
	}
	slices.Reverse(ids)
	return ids
}

// Declare binds name in the current scope as written but not yet read.
// An existing binding of the same name in this scope is replaced.
func (c *Chain) Declare(name string, location ast.Position) {
	c.arena[c.current].variables[name] = VariableInfo{
		Location: location,
		Declared: location,
	}
}

// DeclareUsed binds name in the current scope as already read. It is used
// for predeclared globals.
func (c *Chain) DeclareUsed(name string) {
	c.arena[c.current].variables[name] = VariableInfo{IsUsed: true}
}

func (c *Chain) resolve(name string) (ScopeID, bool) {
	for id := c.current; id != NoScope; id = c.arena[id].parent {
		if _, ok := c.arena[id].variables[name]; ok {
			return id, true
		}
	}
	return NoScope, false
}

// Lookup finds the nearest binding of name.
func (c *Chain) Lookup(name string) (VariableInfo, ScopeID, bool) {
	id, ok := c.resolve(name)
	if !ok {
		return VariableInfo{}, NoScope, false
	}
	return c.arena[id].variables[name], id, true
}

// Read marks the nearest binding of name as used.
func (c *Chain) Read(name string) error {
	id, ok := c.resolve(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUndeclaredVariable, name)
	}
	info := c.arena[id].variables[name]
	info.IsUsed = true
	c.arena[id].variables[name] = info
	return nil
}

// Write records a store to the nearest binding of name. A store is not a
// use: the binding becomes unused until it is read again.
func (c *Chain) Write(name string, location ast.Position) error {
	id, ok := c.resolve(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUndeclaredVariable, name)
	}
	info := c.arena[id].variables[name]
	info.IsUsed = false
	info.IsRedefinedInFlow = true
	info.Location = location
	c.arena[id].variables[name] = info
	return nil
}

// ReadWrite is a compound store such as "+=" or "++": the old value is
// read before the new one is written.
func (c *Chain) ReadWrite(name string, location ast.Position) error {
	if err := c.Read(name); err != nil {
		return err
	}
	return c.Write(name, location)
}

// EnterScope opens a child of the current scope and makes it current. A
// stale child handle on the current scope is discarded.
func (c *Chain) EnterScope() ScopeID {
	id := c.alloc(c.current)
	c.arena[c.current].child = id
	c.current = id
	return id
}

// ExitScope audits the current scope, reporting every unused binding to the
// recorder with closing as the dead location, then returns to the parent.
// The closed scope's record is released.
func (c *Chain) ExitScope(closing ast.Position) error {
	rec := c.arena[c.current]
	if rec.parent == NoScope {
		return ErrNoParentScope
	}

	c.audit(rec.variables, closing)

	closed := c.current
	c.current = rec.parent
	c.arena[c.current].child = NoScope
	c.release(closed)
	return nil
}

func (c *Chain) audit(vars map[string]VariableInfo, closing ast.Position) {
	if c.recorder == nil {
		return
	}
	names := make([]string, 0, len(vars))
	for name, info := range vars {
		if !info.IsUsed {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		c.recorder.Record(name, vars[name].Location, closing)
	}
}

// Variables returns a copy of the bindings of scope id.
func (c *Chain) Variables(id ScopeID) map[string]VariableInfo {
	if id < 0 || int(id) >= len(c.arena) || !c.arena[id].live {
		return nil
	}
	out := make(map[string]VariableInfo, len(c.arena[id].variables))
	for name, info := range c.arena[id].variables {
		out[name] = info
	}
	return out
}
