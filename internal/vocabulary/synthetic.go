package vocabulary

import (
	"fmt"
	"strconv"
)

// Synthetic generates a vocabulary of `entities` Item instances, each linked
// to the next `fanout` items (wrapping around, so the graph is cyclic), and
// builds its constellation. It lets the benchmark run without a file and
// scales the graph for memory experiments.
func Synthetic(name string, entities, fanout int) (*Vocabulary, error) {
	if entities < 0 {
		return nil, fmt.Errorf("entities must not be negative, got %d", entities)
	}
	if fanout < 0 {
		return nil, fmt.Errorf("fanout must not be negative, got %d", fanout)
	}
	if entities > 0 && fanout >= entities {
		fanout = entities - 1
	}

	v := &Vocabulary{
		Name: name,
		ObjectTypes: []ObjectType{
			{Name: "Item", Kind: "entity", Identifier: []string{"id"}},
			{Name: "Label", Kind: "value"},
		},
		FactTypes: []FactType{
			{Name: "ItemRelatesToItem", Roles: []string{"Item", "Item"}},
			{Name: "ItemHasLabel", Roles: []string{"Item", "Label"}},
		},
		Population: make([]InstanceSpec, 0, entities),
	}

	for i := 0; i < entities; i++ {
		spec := InstanceSpec{
			Type: "Item",
			Key:  strconv.Itoa(i),
			Values: map[string]any{
				"id":    i,
				"label": fmt.Sprintf("item-%d", i),
				"tags":  []any{"synthetic", fmt.Sprintf("bucket-%d", i%8)},
				"meta":  map[string]any{"ordinal": i, "even": i%2 == 0},
			},
		}
		if fanout > 0 {
			refs := make([]string, 0, fanout)
			for j := 1; j <= fanout; j++ {
				refs = append(refs, "Item:"+strconv.Itoa((i+j)%entities))
			}
			spec.Links = map[string][]string{"relatesTo": refs}
		}
		v.Population = append(v.Population, spec)
	}

	if err := v.Build(); err != nil {
		return nil, err
	}
	return v, nil
}
