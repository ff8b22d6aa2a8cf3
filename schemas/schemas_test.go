package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range []string{Profile, OptimizationOptions} {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := FS.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", schemaFile)
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])
			assert.Equal(t, "object", v["type"])
		})
	}
}
