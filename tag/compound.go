package tag

import (
	"iter"

	"github.com/arloliu/nbtkit/format"
)

// Compound maps unique names to tags and remembers insertion order.
//
// The zero value is an empty compound ready to use.
type Compound struct {
	names  []string
	values []Tag
	index  map[string]int
}

// NewCompound creates an empty compound.
func NewCompound() *Compound {
	return &Compound{}
}

func (*Compound) Type() format.TagType { return format.TagCompound }

// Len returns the number of members.
func (c *Compound) Len() int {
	return len(c.names)
}

// Get returns the member named name.
func (c *Compound) Get(name string) (Tag, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}

	return c.values[i], true
}

// Set adds or replaces a member. A replaced member keeps its position.
func (c *Compound) Set(name string, t Tag) {
	if i, ok := c.index[name]; ok {
		c.values[i] = t
		return
	}

	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[name] = len(c.names)
	c.names = append(c.names, name)
	c.values = append(c.values, t)
}

// Delete removes the member named name and reports whether it existed.
func (c *Compound) Delete(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}

	c.names = append(c.names[:i], c.names[i+1:]...)
	c.values = append(c.values[:i], c.values[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.names); j++ {
		c.index[c.names[j]] = j
	}

	return true
}

// Keys returns member names in insertion order.
func (c *Compound) Keys() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)

	return out
}

// All iterates members in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for i, name := range c.names {
			if !yield(name, c.values[i]) {
				return
			}
		}
	}
}
