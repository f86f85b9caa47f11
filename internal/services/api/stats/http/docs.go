package http

import "aidetect/internal/modkit/swaggerkit"

// Docs adds the stats summary operation to the served OpenAPI document
func Docs(prefix string) swaggerkit.SpecMutator {
	return swaggerkit.AddPath(prefix+"/summary", "GET", map[string]any{
		"tags":    []any{"Stats"},
		"summary": "Scoring totals over the last N days",
		"parameters": []any{map[string]any{
			"name": "days", "in": "query", "required": false,
			"schema": map[string]any{"type": "integer", "minimum": 1, "maximum": 90, "default": 7},
		}},
		"responses": map[string]any{"200": map[string]any{"description": "OK"}},
	})
}
