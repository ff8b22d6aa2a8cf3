// Package schemas embeds the JSON Schemas for profile and optimization option documents.
package schemas

import "embed"

const (
	Profile             = "profile.schema.json"
	OptimizationOptions = "optimization_options.schema.json"
)

//go:embed *.schema.json
var FS embed.FS
