package vocabulary

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/clonebench/internal/model"
)

// Vocabulary is a domain model: the object types and fact types it declares,
// plus the population used to build its constellation.
//
// The struct tags cover all three supported file formats so one type can be
// decoded from YAML, JSON and TOML alike.
type Vocabulary struct {
	// Name is the display name of the vocabulary.
	Name string `yaml:"name" json:"name" toml:"name"`

	// ObjectTypes lists the entity and value types the vocabulary declares.
	ObjectTypes []ObjectType `yaml:"objectTypes,omitempty" json:"objectTypes,omitempty" toml:"objectTypes,omitempty"`

	// FactTypes lists the relationships between object types.
	FactTypes []FactType `yaml:"factTypes,omitempty" json:"factTypes,omitempty" toml:"factTypes,omitempty"`

	// Population is the sample data the constellation is built from.
	Population []InstanceSpec `yaml:"population,omitempty" json:"population,omitempty" toml:"population,omitempty"`

	constellation *Constellation
}

// ObjectType declares an entity or value type.
type ObjectType struct {
	// Name is the type name referenced by instances and fact type roles.
	Name string `yaml:"name" json:"name" toml:"name"`

	// Kind is "entity" or "value". Empty means entity.
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty" toml:"kind,omitempty"`

	// Identifier lists the attribute or role names that make up the
	// reference scheme of an entity type.
	Identifier []string `yaml:"identifier,omitempty" json:"identifier,omitempty" toml:"identifier,omitempty"`
}

// FactType declares a relationship; each role is played by a named object type.
type FactType struct {
	Name  string   `yaml:"name" json:"name" toml:"name"`
	Roles []string `yaml:"roles" json:"roles" toml:"roles"`
}

// InstanceSpec is one populated instance as written in a vocabulary file.
//
// Links map a role name to target references in "Type:key" form.
type InstanceSpec struct {
	Type   string              `yaml:"type" json:"type" toml:"type"`
	Key    string              `yaml:"key" json:"key" toml:"key"`
	Values map[string]any      `yaml:"values,omitempty" json:"values,omitempty" toml:"values,omitempty"`
	Links  map[string][]string `yaml:"links,omitempty" json:"links,omitempty" toml:"links,omitempty"`
}

// Document is anything a vocabulary file can decode to: a single
// *Vocabulary or a *Workspace holding several.
type Document interface {
	// Primary returns the vocabulary a generator should operate on.
	Primary() (*Vocabulary, error)
}

// Primary returns v itself.
func (v *Vocabulary) Primary() (*Vocabulary, error) {
	return v, nil
}

// Workspace is a container holding several vocabularies in file order.
type Workspace struct {
	Vocabularies []*Vocabulary
}

// Primary returns the first vocabulary of the workspace.
func (w *Workspace) Primary() (*Vocabulary, error) {
	if w == nil || len(w.Vocabularies) == 0 {
		return nil, model.NewCLIError(model.ExitVocabularyNotFound, "workspace contains no vocabularies")
	}
	if w.Vocabularies[0] == nil {
		return nil, model.NewCLIError(model.ExitVocabularyNotFound, "first workspace entry is empty")
	}
	return w.Vocabularies[0], nil
}

// Resolve turns a caller-supplied value into a vocabulary. Both a direct
// vocabulary and a workspace are accepted; for a workspace the first
// vocabulary is used.
func Resolve(src any) (*Vocabulary, error) {
	switch doc := src.(type) {
	case nil:
		return nil, model.NewCLIError(model.ExitVocabularyNotFound, "no vocabulary supplied")
	case Document:
		return doc.Primary()
	default:
		return nil, model.NewCLIError(model.ExitVocabularyNotFound,
			fmt.Sprintf("unsupported vocabulary source %T", src))
	}
}

// Constellation returns the graph built by Build. It is nil until Build
// succeeds (or when v itself is nil); cloning a nil constellation fails with ErrNilConstellation.
func (v *Vocabulary) Constellation() *Constellation {
	if v == nil {
		return nil
	}
	return v.constellation
}

// Validate checks that the vocabulary is internally consistent: names are
// unique, fact type roles and instances refer to declared object types, and
// entity instances carry their identifying values.
func (v *Vocabulary) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("vocabulary name must not be empty")
	}

	types := make(map[string]ObjectType, len(v.ObjectTypes))
	for _, ot := range v.ObjectTypes {
		if ot.Name == "" {
			return fmt.Errorf("vocabulary %q: object type name must not be empty", v.Name)
		}
		if _, dup := types[ot.Name]; dup {
			return fmt.Errorf("vocabulary %q: duplicate object type %q", v.Name, ot.Name)
		}
		if _, err := model.ParseObjectKind(ot.Kind); err != nil {
			return fmt.Errorf("vocabulary %q: object type %q: %w", v.Name, ot.Name, err)
		}
		types[ot.Name] = ot
	}

	facts := make(map[string]bool, len(v.FactTypes))
	for _, ft := range v.FactTypes {
		if facts[ft.Name] {
			return fmt.Errorf("vocabulary %q: duplicate fact type %q", v.Name, ft.Name)
		}
		facts[ft.Name] = true
		if len(ft.Roles) == 0 {
			return fmt.Errorf("vocabulary %q: fact type %q has no roles", v.Name, ft.Name)
		}
		for _, player := range ft.Roles {
			if _, ok := types[player]; !ok {
				return fmt.Errorf("vocabulary %q: fact type %q: undeclared role player %q", v.Name, ft.Name, player)
			}
		}
	}

	for _, spec := range v.Population {
		ot, ok := types[spec.Type]
		if !ok {
			return fmt.Errorf("vocabulary %q: instance %s:%s has undeclared type", v.Name, spec.Type, spec.Key)
		}
		for _, part := range ot.Identifier {
			_, hasValue := spec.Values[part]
			_, hasLink := spec.Links[part]
			if !hasValue && !hasLink {
				return fmt.Errorf("vocabulary %q: instance %s:%s is missing identifier %q", v.Name, spec.Type, spec.Key, part)
			}
		}
	}
	return nil
}

// Build validates the vocabulary and populates its constellation.
// Calling Build again replaces the previous constellation.
func (v *Vocabulary) Build() error {
	if err := v.Validate(); err != nil {
		return err
	}

	c := NewConstellation(v.Name)
	for _, spec := range v.Population {
		if _, err := c.Add(InstanceID{Type: spec.Type, Key: spec.Key}, spec.Values); err != nil {
			return fmt.Errorf("vocabulary %q: %w", v.Name, err)
		}
	}
	for _, spec := range v.Population {
		from := InstanceID{Type: spec.Type, Key: spec.Key}
		for role, refs := range spec.Links {
			for _, ref := range refs {
				to, err := ParseInstanceRef(ref)
				if err != nil {
					return fmt.Errorf("vocabulary %q: instance %s: %w", v.Name, from, err)
				}
				if err := c.Link(from, role, to); err != nil {
					return fmt.Errorf("vocabulary %q: %w", v.Name, err)
				}
			}
		}
	}

	v.constellation = c
	return nil
}

// ParseInstanceRef parses a "Type:key" reference. The key may itself
// contain colons; only the first one separates the type.
func ParseInstanceRef(ref string) (InstanceID, error) {
	typ, key, ok := strings.Cut(ref, ":")
	if !ok || typ == "" || key == "" {
		return InstanceID{}, fmt.Errorf("invalid instance reference %q (expected Type:key)", ref)
	}
	return InstanceID{Type: typ, Key: key}, nil
}
