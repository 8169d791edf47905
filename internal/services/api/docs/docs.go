// Package docs holds the OpenAPI document served under /api/docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/meta.HealthResponse"}}}}
                }
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness check covering dependencies",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/meta.ReadyResponse"}}}}
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}}
                }
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/meta.ServiceResponse"}}}}
                }
            }
        },
        "/memories/today": {
            "get": {
                "tags": ["Memories"],
                "summary": "Today's resurfaced memory",
                "description": "Decides whether a past reflection is shown today. At most one memory per day; surfaced is false when nothing qualifies.",
                "security": [
                    {"BearerAuth": []}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/memories.TodayResult"}}}}
                }
            }
        },
        "/memories": {
            "get": {
                "tags": ["Memories"],
                "summary": "Previously surfaced memories",
                "security": [
                    {"BearerAuth": []}
                ],
                "parameters": [
                    {"name": "limit", "in": "query", "schema": {"type": "integer", "minimum": 1, "maximum": 100}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/memories.SurfacedMemory"}}}}}
                }
            }
        },
        "/reflections": {
            "get": {
                "tags": ["Reflections"],
                "summary": "Latest reflections",
                "security": [
                    {"BearerAuth": []}
                ],
                "parameters": [
                    {"name": "limit", "in": "query", "schema": {"type": "integer", "minimum": 1, "maximum": 100}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/reflections.Reflection"}}}}}
                }
            },
            "post": {
                "tags": ["Reflections"],
                "summary": "Write a reflection",
                "description": "Stores a journal entry. Word count is computed by the server and the date defaults to today.",
                "security": [
                    {"BearerAuth": []}
                ],
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/reflections.CreateInput"}}}
                },
                "responses": {
                    "201": {"description": "created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/reflections.Reflection"}}}},
                    "422": {"description": "date in the future", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/reflections/{id}/resurfacing": {
            "patch": {
                "tags": ["Reflections"],
                "summary": "Opt a reflection in or out of resurfacing",
                "security": [
                    {"BearerAuth": []}
                ],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}}
                ],
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/reflections.EligibilityInput"}}}
                },
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/reflections.Reflection"}}}},
                    "404": {"description": "not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        }
    },
    "components": {
        "schemas": {
            "meta.HealthResponse": {
                "type": "object",
                "properties": {
                    "ok": {"type": "boolean", "example": true},
                    "service": {"type": "string", "example": "pnp-api"},
                    "started": {"type": "string", "format": "date-time"},
                    "now": {"type": "string", "format": "date-time"}
                }
            },
            "meta.ReadyCheck": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "pg"},
                    "status": {"type": "string", "enum": ["ok", "fail", "skipped"]},
                    "error": {"type": "string"}
                }
            },
            "meta.ReadyResponse": {
                "type": "object",
                "properties": {
                    "status": {"type": "string", "enum": ["ok", "degraded", "fail"]},
                    "checks": {"type": "array", "items": {"$ref": "#/components/schemas/meta.ReadyCheck"}},
                    "now": {"type": "string", "format": "date-time"}
                }
            },
            "meta.ServiceResponse": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "pnp-api"},
                    "started": {"type": "string", "format": "date-time"},
                    "uptime": {"type": "integer", "example": 300}
                }
            },
            "version.BuildInfo": {
                "type": "object",
                "properties": {
                    "service": {"type": "string", "example": "pnp-api"},
                    "version": {"type": "string", "example": "v0.4.0"},
                    "commit": {"type": "string", "example": "3f2c1ab"},
                    "date": {"type": "string", "example": "2025-10-01"},
                    "go": {"type": "string", "example": "go1.24.5"}
                }
            },
            "memories.Memory": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "format": "uuid"},
                    "date": {"type": "string", "format": "date", "example": "2025-06-01"},
                    "prompt_text": {"type": "string"},
                    "reflection_text": {"type": "string"},
                    "mood": {"type": "string", "nullable": true, "enum": ["happy", "calm", "grateful", "neutral", "anxious", "tired", "sad"]},
                    "word_count": {"type": "integer", "example": 120}
                }
            },
            "memories.TodayResult": {
                "type": "object",
                "properties": {
                    "surfaced": {"type": "boolean"},
                    "memory": {"$ref": "#/components/schemas/memories.Memory"}
                }
            },
            "memories.SurfacedMemory": {
                "allOf": [
                    {"$ref": "#/components/schemas/memories.Memory"},
                    {"type": "object", "properties": {"surfaced_at": {"type": "string", "format": "date-time"}}}
                ]
            },
            "reflections.CreateInput": {
                "type": "object",
                "required": ["prompt_text", "reflection_text"],
                "properties": {
                    "prompt_text": {"type": "string", "maxLength": 1000},
                    "reflection_text": {"type": "string", "maxLength": 20000},
                    "mood": {"type": "string", "enum": ["happy", "calm", "grateful", "neutral", "anxious", "tired", "sad"]},
                    "date": {"type": "string", "format": "date", "example": "2025-06-01"}
                }
            },
            "reflections.EligibilityInput": {
                "type": "object",
                "required": ["eligible"],
                "properties": {
                    "eligible": {"type": "boolean", "example": false}
                }
            },
            "reflections.Reflection": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "format": "uuid"},
                    "entry_date": {"type": "string", "format": "date"},
                    "prompt_text": {"type": "string"},
                    "reflection_text": {"type": "string"},
                    "mood": {"type": "string", "nullable": true},
                    "word_count": {"type": "integer"},
                    "resurfacing_eligible": {"type": "boolean"},
                    "created_at": {"type": "string", "format": "date-time"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported spec information
var SwaggerInfo = &swag.Spec{
	Version:          "0.4.0",
	Title:            "Prompt and Pause API",
	Description:      "Journaling endpoints and the daily memory resurfacing engine",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
