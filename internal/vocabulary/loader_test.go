package vocabulary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/clonebench/internal/model"
)

const ordersYAML = `name: Orders
objectTypes:
  - name: Customer
    identifier: [name]
  - name: Order
    identifier: [number]
  - name: Amount
    kind: value
factTypes:
  - name: OrderPlacedByCustomer
    roles: [Order, Customer]
population:
  - type: Customer
    key: acme
    values:
      name: Acme
      address:
        city: Springfield
  - type: Order
    key: "1"
    values:
      number: 1
    links:
      placedBy: ["Customer:acme"]
  - type: Order
    key: "2"
    values:
      number: 2
    links:
      placedBy: ["Customer:acme"]
`

const ordersJSONC = `{
  // comments are allowed
  "name": "Orders",
  "objectTypes": [
    {"name": "Customer", "identifier": ["name"]},
    {"name": "Order", "identifier": ["number"]},
  ],
  "population": [
    {"type": "Customer", "key": "acme", "values": {"name": "Acme"}},
    {"type": "Order", "key": "1", "values": {"number": 1}, "links": {"placedBy": ["Customer:acme"]}}, /* trailing */
  ]
}`

const ordersTOML = `name = "Orders"

[[objectTypes]]
name = "Customer"
identifier = ["name"]

[[objectTypes]]
name = "Order"
identifier = ["number"]

[[factTypes]]
name = "OrderPlacedByCustomer"
roles = ["Order", "Customer"]

[[population]]
type = "Customer"
key = "acme"
values = { name = "Acme" }

[[population]]
type = "Order"
key = "1"
values = { number = 1 }
links = { placedBy = ["Customer:acme"] }
`

const workspaceYAML = `vocabularies:
  - name: First
    objectTypes:
      - name: Thing
    population:
      - type: Thing
        key: one
  - name: Second
    objectTypes:
      - name: Other
`

// writeFixture writes content into a temp directory and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_Formats verifies that the same vocabulary decodes from every
// supported format into a built constellation.
func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		instances int
		links     int
	}{
		{name: "yaml", file: "orders.yaml", content: ordersYAML, instances: 3, links: 2},
		{name: "jsonc", file: "orders.jsonc", content: ordersJSONC, instances: 2, links: 1},
		{name: "toml", file: "orders.toml", content: ordersTOML, instances: 2, links: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(writeFixture(t, tt.file, tt.content))
			require.NoError(t, err)

			v, ok := doc.(*Vocabulary)
			require.True(t, ok, "a file without a vocabularies list is a single vocabulary")
			assert.Equal(t, "Orders", v.Name)

			c := v.Constellation()
			require.NotNil(t, c)
			assert.Equal(t, tt.instances, c.Len())
			assert.Equal(t, tt.links, c.LinkCount())

			order, ok := c.get(InstanceID{Type: "Order", Key: "1"})
			require.True(t, ok)
			require.Len(t, order.Links["placedBy"], 1)
			assert.Equal(t, "acme", order.Links["placedBy"][0].ID.Key)
		})
	}
}

func TestLoad_Workspace(t *testing.T) {
	doc, err := Load(writeFixture(t, "ws.yml", workspaceYAML))
	require.NoError(t, err)

	ws, ok := doc.(*Workspace)
	require.True(t, ok)
	require.Len(t, ws.Vocabularies, 2)

	v, err := Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, "First", v.Name)
	assert.Equal(t, 1, v.Constellation().Len())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitVocabularyNotFound, cliErr.Code)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(writeFixture(t, "orders.xml", "<vocabulary/>"))
	assert.Error(t, err)
}

func TestLoad_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "malformed yaml", file: "bad.yaml", content: "name: [unclosed"},
		{name: "malformed json", file: "bad.json", content: `{"name": `},
		{name: "malformed toml", file: "bad.toml", content: `name = `},
		{name: "undeclared type", file: "bad.yaml", content: "name: X\npopulation:\n  - type: Ghost\n    key: a\n"},
		{name: "dangling link", file: "bad.yaml", content: "name: X\nobjectTypes:\n  - name: A\npopulation:\n  - type: A\n    key: a\n    links:\n      r: [\"A:zzz\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFixture(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

// TestParse_WorkspaceNullEntry rejects workspace entries that decode to nil.
func TestParse_WorkspaceNullEntry(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "only null", content: "vocabularies:\n  - ~\n"},
		{name: "null after valid", content: "vocabularies:\n  - name: First\n  - ~\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = Parse([]byte(tt.content), model.FormatYAML)
			})

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitVocabularyNotFound, cliErr.Code)
		})
	}
}
