package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "test.schema.json", testSchema)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "optional field omitted", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "John", "age": "thirty"}`, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, t.TempDir(), "data.json", tt.data)
			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()

	err := v.ValidateBytes([]byte(`{}`), filepath.Join(dir, "absent.schema.json"))
	assert.ErrorContains(t, err, "failed to load schema")

	schemaPath := writeFile(t, dir, "test.schema.json", testSchema)
	err = v.ValidateFile(filepath.Join(dir, "absent.json"), schemaPath)
	assert.ErrorContains(t, err, "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "test.schema.json", testSchema)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), schemaPath))
	require.NoError(t, os.Remove(schemaPath))
	assert.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), schemaPath), "second call uses the cached schema")
	assert.Len(t, v.schemas, 1)
}

func TestValidateClickerTables(t *testing.T) {
	t.Run("shipped config", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join("..", "..", "configs", "clicker.json"))
		require.NoError(t, err)
		assert.NoError(t, ValidateClickerTables(data))
	})

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "empty document", data: `{}`},
		{name: "unknown top level key", data: `{"hats": []}`, errorMsg: "additionalProperties"},
		{name: "upgrade power too low", data: `{"upgrades": [{"power": 1, "cost": 5}]}`, errorMsg: "/upgrades/0/power"},
		{name: "fractional threshold", data: `{"milestones": [{"threshold": 2.5, "label": "x"}]}`, errorMsg: "/milestones/0/threshold"},
		{name: "critical chance above one", data: `{"critical": {"chance": 1.5, "multiplier": 2}}`, errorMsg: "maximum"},
		{name: "face without image", data: `{"faces": [{"threshold": 69}]}`, errorMsg: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClickerTables([]byte(tt.data))
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errorMsg)
		})
	}
}
