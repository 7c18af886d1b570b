package config

import (
	"github.com/invopop/jsonschema"

	"github.com/kastheco/lacquer/theme"
)

const schemaID = "https://lacquer.kastheco.dev/schema/theme.json"

// Schema returns the JSON schema for theme files. Editors can point YAML and
// TOML language servers at it for completion and validation.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := reflector.Reflect(&theme.Spec{})
	schema.Version = "https://json-schema.org/draft-07/schema"
	schema.ID = schemaID
	schema.Title = "lacquer theme"
	schema.Description = "Palette, semantic tokens, styles and gradients. Values are #rrggbb colors or names of other entries."
	schema.Examples = []any{
		map[string]any{
			"meta":      map[string]any{"name": "Example", "variant": "dark"},
			"palette":   map[string]any{"red": "#eb6f92"},
			"tokens":    map[string]any{"error": "red"},
			"styles":    map[string]any{"error_style": map[string]any{"fg": "error", "bold": true}},
			"gradients": map[string]any{"warm": []any{"red", "#f6c177"}},
		},
	}
	return schema
}
