package http

import "aidetect/internal/modkit/swaggerkit"

// Docs adds the history operations to the served OpenAPI document
func Docs(prefix string) swaggerkit.SpecMutator {
	list := swaggerkit.AddPath(prefix, "GET", map[string]any{
		"tags":    []any{"History"},
		"summary": "Recent scoring requests, newest first",
		"parameters": []any{map[string]any{
			"name": "limit", "in": "query", "required": false,
			"schema": map[string]any{"type": "integer", "minimum": 1, "maximum": 200, "default": 50},
		}},
		"responses": map[string]any{"200": map[string]any{"description": "OK"}},
	})
	del := swaggerkit.AddPath(prefix, "DELETE", map[string]any{
		"tags":      []any{"History"},
		"summary":   "Delete all history entries",
		"responses": map[string]any{"200": map[string]any{"description": "OK"}},
	})
	return func(spec map[string]any) {
		list(spec)
		del(spec)
	}
}
