package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// SpecMutator lets modules tweak the parsed swagger spec before it is served
type SpecMutator func(map[string]any)

var (
	mutMu    sync.RWMutex
	mutators []SpecMutator
)

// Register adds a spec mutator for swagger JSON
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

// serveDocJSON parses the registered doc, fills in the shared parts and serves it
func serveDocJSON(doc Doc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(doc.ReadDoc()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		ensureComponents(spec)
		addDefault(spec, "500", errorResponse("Internal Server Error", 500, 1, "internal error"), false)
		addDefault(spec, "400", errorResponse("Bad Request", 400, 8, "mood must be one of [happy calm grateful neutral anxious tired sad]"), false)
		addDefault(spec, "401", errorResponse("Unauthorized", 401, 5, "missing bearer token"), true)

		mutMu.RLock()
		for _, m := range mutators {
			m(spec)
		}
		mutMu.RUnlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes the spec OAS 3.0 with a servers array
// the bundled UI does not render 3.1, so 3.1 is served as 3.0.3
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// ensureComponents adds the error envelope schema and the bearer scheme when missing
func ensureComponents(spec map[string]any) {
	comps := child(spec, "components")
	schemas := child(comps, "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = map[string]any{
			"type":        "object",
			"description": "Standard error response",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer", "format": "int32"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "integer", "format": "int32"},
				"error":       map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
			},
			"required": []any{"status_code", "status"},
		}
	}
	sec := child(comps, "securitySchemes")
	if _, ok := sec["BearerAuth"]; !ok {
		sec["BearerAuth"] = map[string]any{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}
	}
}

func errorResponse(desc string, status, code int, msg string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      desc,
					"code":        code,
					"error":       msg,
					"request_id":  "pnp-host/abc-000001",
				},
			},
		},
	}
}

// addDefault injects resp under status into every operation that lacks one
// securedOnly limits it to operations carrying a security requirement
func addDefault(spec map[string]any, status string, resp map[string]any, securedOnly bool) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			if _, secured := op["security"]; securedOnly && !secured {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
