package project

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/flowlint.schema.json
var configSchemaJSON []byte

var (
	schemaOnce   sync.Once
	configSchema *jsonschema.Schema
	schemaErr    error
)

// compiledSchema compiles the embedded configuration schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("decoding embedded config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("flowlint.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("registering config schema: %w", err)
			return
		}
		configSchema, schemaErr = compiler.Compile("flowlint.schema.json")
	})
	return configSchema, schemaErr
}

// ValidateSchema checks raw configuration YAML against the embedded JSON
// schema. The YAML is decoded generically and round-tripped through JSON so
// the validator sees the value types it expects.
func ValidateSchema(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decoding project config: %w", err)
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding project config for schema validation: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("decoding project config for schema validation: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("project config does not match schema: %w", err)
	}
	return nil
}
