package flow

import "fmt"

// Cursor hands out the decisions of one vector in traversal order. The
// index only moves forward and never passes the vector length.
type Cursor struct {
	vector Vector
	index  int
}

func NewCursor(v Vector) *Cursor {
	return &Cursor{vector: v}
}

// Next returns the decision for the next branch point.
func (c *Cursor) Next() (bool, error) {
	if c.index >= len(c.vector) {
		return false, fmt.Errorf("%w: all %d decisions consumed", ErrFlowExhausted, len(c.vector))
	}
	bit := c.vector[c.index]
	c.index++
	return bit, nil
}

// Skip consumes the decisions of k branch points that sit in a subtree the
// current path does not enter.
func (c *Cursor) Skip(k int) error {
	if k < 0 || c.index+k > len(c.vector) {
		return fmt.Errorf("%w: skipping %d at %d of %d", ErrFlowExhausted, k, c.index, len(c.vector))
	}
	c.index += k
	return nil
}

func (c *Cursor) Index() int { return c.index }
func (c *Cursor) Len() int   { return len(c.vector) }

// Done reports whether every decision has been consumed.
func (c *Cursor) Done() bool { return c.index == len(c.vector) }

// Finish checks the terminal state of a traversal.
func (c *Cursor) Finish() error {
	if !c.Done() {
		return fmt.Errorf("%w: consumed %d of %d decisions", ErrFlowMismatch, c.index, len(c.vector))
	}
	return nil
}
