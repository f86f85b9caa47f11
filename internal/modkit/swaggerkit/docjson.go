package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"aidetect/internal/core/version"
)

// SpecMutator edits the decoded document before it is served
type SpecMutator func(spec map[string]any)

// Doc is one served OpenAPI document; modules extend it with Add while mounting
// A nil *Doc ignores Add, so modules need not check whether docs are enabled
type Doc struct {
	TitleSuffix string

	mu   sync.Mutex
	muts []SpecMutator
	base string
}

// NewDoc starts from the built in document
func NewDoc(titleSuffix string) *Doc { return &Doc{TitleSuffix: titleSuffix, base: baseSpec} }

func (d *Doc) Add(m SpecMutator) {
	if d == nil || m == nil {
		return
	}
	d.mu.Lock()
	d.muts = append(d.muts, m)
	d.mu.Unlock()
}

// AddPath returns a mutator setting one operation on path
func AddPath(path, method string, op map[string]any) SpecMutator {
	return func(spec map[string]any) {
		node := child(child(spec, "paths"), path)
		node[strings.ToLower(method)] = op
	}
}

// Build decodes the base document, applies every mutator, then fills the shared defaults
func (d *Doc) Build() (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(d.base), &spec); err != nil {
		return nil, err
	}
	d.mu.Lock()
	muts := append([]SpecMutator(nil), d.muts...)
	d.mu.Unlock()
	for _, m := range muts {
		m(spec)
	}

	normalizeVersion(spec)
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
	}
	info := child(spec, "info")
	info["version"] = version.Version()
	if title, ok := info["title"].(string); ok && d.TitleSuffix != "" {
		info["title"] = title + " " + d.TitleSuffix
	}
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema
	}
	for _, node := range child(spec, "paths") {
		ops, _ := node.(map[string]any)
		for _, op := range ops {
			if op, ok := op.(map[string]any); ok {
				resps := child(op, "responses")
				setDefault(resps, "400", errorResponse(http.StatusBadRequest, 8, "text must not be empty"))
				setDefault(resps, "500", errorResponse(http.StatusInternalServerError, 1, "internal error"))
			}
		}
	}
	return spec, nil
}

func (d *Doc) serveJSON(w http.ResponseWriter, _ *http.Request) {
	spec, err := d.Build()
	if err != nil {
		http.Error(w, "spec parse error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(spec)
}

// normalizeVersion pins the document to 3.0.3; the bundled UI does not render 2.0 or 3.1
func normalizeVersion(spec map[string]any) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
}

// child returns m[key] as a map, creating it when missing or of another type
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func setDefault(m map[string]any, key string, v any) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}

var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"required":    []any{"status_code", "status"},
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer"},
		"error":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
}

func errorResponse(status, code int, msg string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{"application/json": map[string]any{
			"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"example": map[string]any{
				"status_code": status,
				"status":      http.StatusText(status),
				"code":        code,
				"error":       msg,
				"request_id":  "api-7f3c/000042",
			},
		}},
	}
}
