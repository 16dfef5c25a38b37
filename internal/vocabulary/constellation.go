package vocabulary

import (
	"errors"
	"fmt"

	"github.com/huandu/go-clone"
)

// ErrNilConstellation is returned when Clone is called on a constellation
// that was never built.
var ErrNilConstellation = errors.New("constellation has not been built")

// InstanceID identifies an instance inside a constellation by its object
// type and its identifying key.
type InstanceID struct {
	Type string
	Key  string
}

// String renders the ID in the "Type:key" form used by vocabulary files.
func (id InstanceID) String() string {
	return id.Type + ":" + id.Key
}

// Instance is one node of the constellation graph.
type Instance struct {
	// ID is the (type, key) pair identifying this instance.
	ID InstanceID

	// Values holds attribute values as decoded from the vocabulary file.
	// Nested maps and slices are allowed.
	Values map[string]any

	// Links maps a role name to the instances playing the other side of
	// that role. Links may point back to this instance or form cycles.
	Links map[string][]*Instance
}

// Constellation is the object graph populated from a vocabulary.
// Instances are kept in insertion order so iteration is deterministic.
type Constellation struct {
	vocabulary string
	byID       map[InstanceID]*Instance
	order      []*Instance
}

// NewConstellation returns an empty constellation for the named vocabulary.
func NewConstellation(vocabularyName string) *Constellation {
	return &Constellation{
		vocabulary: vocabularyName,
		byID:       make(map[InstanceID]*Instance),
	}
}

// VocabularyName returns the name of the vocabulary this graph conforms to.
func (c *Constellation) VocabularyName() string {
	return c.vocabulary
}

// Add inserts a new instance. Adding the same ID twice is an error.
func (c *Constellation) Add(id InstanceID, values map[string]any) (*Instance, error) {
	if _, exists := c.byID[id]; exists {
		return nil, fmt.Errorf("duplicate instance %s", id)
	}
	inst := &Instance{ID: id, Values: values, Links: make(map[string][]*Instance)}
	c.byID[id] = inst
	c.order = append(c.order, inst)
	return inst, nil
}

// Link records that the instance `from` plays `role` towards `to`.
// Both instances must already be present.
func (c *Constellation) Link(from InstanceID, role string, to InstanceID) error {
	src, ok := c.get(from)
	if !ok {
		return fmt.Errorf("link %q: unknown instance %s", role, from)
	}
	dst, ok := c.get(to)
	if !ok {
		return fmt.Errorf("link %q from %s: unknown instance %s", role, from, to)
	}
	src.Links[role] = append(src.Links[role], dst)
	return nil
}

// get looks up an instance by ID.
func (c *Constellation) get(id InstanceID) (*Instance, bool) {
	inst, ok := c.byID[id]
	return inst, ok
}

// Len returns the number of instances.
func (c *Constellation) Len() int {
	return len(c.order)
}

// LinkCount returns the total number of role links across all instances.
func (c *Constellation) LinkCount() int {
	n := 0
	for _, inst := range c.order {
		for _, targets := range inst.Links {
			n += len(targets)
		}
	}
	return n
}

// Clone returns an independent deep copy of the constellation.
//
// Clone runs in two passes. The first copies every instance and its
// attribute values and records the old-to-new mapping; the second rewires
// links through that mapping, which keeps shared and cyclic references
// pointing at a single copy. A link to an instance that is not part of this
// constellation is reported as an error.
func (c *Constellation) Clone() (*Constellation, error) {
	if c == nil {
		return nil, ErrNilConstellation
	}

	out := &Constellation{
		vocabulary: c.vocabulary,
		byID:       make(map[InstanceID]*Instance, len(c.byID)),
		order:      make([]*Instance, 0, len(c.order)),
	}
	mapping := make(map[*Instance]*Instance, len(c.order))

	for _, inst := range c.order {
		cp := &Instance{
			ID:     inst.ID,
			Values: cloneValues(inst.Values),
			Links:  make(map[string][]*Instance, len(inst.Links)),
		}
		mapping[inst] = cp
		out.byID[cp.ID] = cp
		out.order = append(out.order, cp)
	}

	for _, inst := range c.order {
		cp := mapping[inst]
		for role, targets := range inst.Links {
			linked := make([]*Instance, len(targets))
			for i, target := range targets {
				mapped, ok := mapping[target]
				if !ok {
					return nil, fmt.Errorf("clone %s: role %q links to foreign instance %s", inst.ID, role, target.ID)
				}
				linked[i] = mapped
			}
			cp.Links[role] = linked
		}
	}

	return out, nil
}

// cloneValues deep-copies an attribute map. Values decoded from YAML, JSON
// and TOML can nest maps and slices arbitrarily, so the copy is delegated
// to go-clone rather than walked by hand.
func cloneValues(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	return clone.Clone(values).(map[string]any)
}
