package classify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ecotally/ecotally/constants"
)

// tablesFile is the on-disk JSON shape for keyword table overrides.
type tablesFile struct {
	Groups []struct {
		Category string   `json:"category"`
		Keywords []string `json:"keywords"`
	} `json:"groups"`
	Retailers []struct {
		Pattern     string `json:"pattern"`
		DisplayName string `json:"display_name"`
		Category    string `json:"category"`
		Sustainable bool   `json:"sustainable,omitempty"`
	} `json:"retailers"`
}

// buildTablesJSONSchema returns the JSON-Schema the override file must satisfy.
// Category labels are constrained to the fixed label set.
func buildTablesJSONSchema() map[string]any {
	categoryProp := map[string]any{
		"type": "string",
		"enum": constants.AsStringSlice(),
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"groups"},
		"properties": map[string]any{
			"groups": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"category", "keywords"},
					"properties": map[string]any{
						"category": categoryProp,
						"keywords": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items":    map[string]any{"type": "string", "minLength": 1},
						},
					},
				},
			},
			"retailers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"pattern", "display_name", "category"},
					"properties": map[string]any{
						"pattern":      map[string]any{"type": "string", "minLength": 1},
						"display_name": map[string]any{"type": "string", "minLength": 1},
						"category":     categoryProp,
						"sustainable":  map[string]any{"type": "boolean"},
					},
				},
			},
		},
	}
}

// LoadTables reads a keyword-table override file, validates it against the
// schema, and converts it into an immutable rule set.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables file: %w", err)
	}
	return ParseTables(data)
}

// ParseTables validates and decodes a keyword-table JSON document.
func ParseTables(data []byte) (Tables, error) {
	if err := validateAgainstSchema(buildTablesJSONSchema(), data); err != nil {
		return Tables{}, err
	}

	var f tablesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Tables{}, fmt.Errorf("decode tables: %w", err)
	}

	t := Tables{
		Groups:    make([]KeywordGroup, 0, len(f.Groups)),
		Retailers: make([]Retailer, 0, len(f.Retailers)),
	}
	for _, g := range f.Groups {
		t.Groups = append(t.Groups, KeywordGroup{
			Category: constants.Category(g.Category),
			Keywords: lowercaseAll(g.Keywords),
		})
	}
	for _, r := range f.Retailers {
		t.Retailers = append(t.Retailers, Retailer{
			Pattern:     lower(r.Pattern),
			DisplayName: r.DisplayName,
			Category:    constants.Category(r.Category),
			Sustainable: r.Sustainable,
		})
	}
	return t, nil
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tables.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("tables.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("tables json does not match schema: %w", err)
	}
	return nil
}

func lowercaseAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = lower(s)
	}
	return out
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
