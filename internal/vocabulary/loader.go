package vocabulary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/clonebench/internal/model"
)

// fileDocument is the on-disk shape shared by all formats. A non-empty
// Vocabularies list makes the file a workspace; otherwise the top-level
// fields describe a single vocabulary.
type fileDocument struct {
	Name         string         `yaml:"name" json:"name" toml:"name"`
	ObjectTypes  []ObjectType   `yaml:"objectTypes" json:"objectTypes" toml:"objectTypes"`
	FactTypes    []FactType     `yaml:"factTypes" json:"factTypes" toml:"factTypes"`
	Population   []InstanceSpec `yaml:"population" json:"population" toml:"population"`
	Vocabularies []*Vocabulary  `yaml:"vocabularies" json:"vocabularies" toml:"vocabularies"`
}

// Load reads a vocabulary file, decodes it according to its extension, and
// builds the constellation of every vocabulary it contains.
//
// Returns a CLIError with ExitVocabularyNotFound if the file does not exist.
func Load(path string) (Document, error) {
	format, err := model.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitVocabularyNotFound,
				fmt.Sprintf("vocabulary file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes raw vocabulary data in the given format and builds the
// resulting vocabularies.
func Parse(data []byte, format model.VocabularyFormat) (Document, error) {
	var raw fileDocument

	switch format {
	case model.FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case model.FormatJSON:
		// Strip comments and trailing commas before handing off to encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, err
		}
	case model.FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported vocabulary format %q", format)
	}

	if len(raw.Vocabularies) > 0 {
		ws := &Workspace{Vocabularies: raw.Vocabularies}
		for i, v := range ws.Vocabularies {
			if v == nil {
				return nil, model.NewCLIError(model.ExitVocabularyNotFound,
					fmt.Sprintf("workspace entry %d is empty", i+1))
			}
			if err := v.Build(); err != nil {
				return nil, err
			}
		}
		return ws, nil
	}

	v := &Vocabulary{
		Name:        raw.Name,
		ObjectTypes: raw.ObjectTypes,
		FactTypes:   raw.FactTypes,
		Population:  raw.Population,
	}
	if err := v.Build(); err != nil {
		return nil, err
	}
	return v, nil
}
