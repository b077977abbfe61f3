// This file builds the OpenAPI document from the same field and enum
// definitions the validation path uses, so the published contract cannot
// drift from what the server actually accepts.
package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/mesh-intelligence/mediarack/pkg/types"
)

var (
	openapiOnce sync.Once
	openapiDoc  []byte
	openapiErr  error
)

// openapi handles GET /openapi.json.
func (h *Handler) openapi(w http.ResponseWriter, r *http.Request) {
	openapiOnce.Do(func() {
		openapiDoc, openapiErr = json.Marshal(buildOpenAPIDoc())
	})
	if openapiErr != nil {
		h.internalError(w, r, "marshal openapi document", openapiErr)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiDoc)
}

// buildOpenAPIDoc assembles the OpenAPI 3 description of the four media
// routes. The MediaItem schema reuses types.Formats for the format enum.
func buildOpenAPIDoc() map[string]any {
	requiredFields := []string{"title", "artist", "location", "format"}

	mediaItemSchema := map[string]any{
		"type":     "object",
		"required": append([]string{"id"}, requiredFields...),
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer", "format": "int64", "readOnly": true},
			"title":    map[string]any{"type": "string"},
			"artist":   map[string]any{"type": "string"},
			"location": map[string]any{"type": "string"},
			"format":   map[string]any{"type": "string", "enum": types.Formats},
		},
	}

	createSchema := map[string]any{
		"type":     "object",
		"required": requiredFields,
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "example": "Dark Side of the Moon"},
			"artist":   map[string]any{"type": "string", "example": "Pink Floyd"},
			"location": map[string]any{"type": "string", "example": "Shelf Rock"},
			"format":   map[string]any{"type": "string", "enum": types.Formats, "example": "Vinyl"},
		},
	}

	errorSchema := map[string]any{
		"type":     "object",
		"required": []string{"error", "code"},
		"properties": map[string]any{
			"error": map[string]any{"type": "string"},
			"code":  map[string]any{"type": "integer"},
			"fields": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	}

	mediaArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"$ref": "#/components/schemas/MediaItem"},
	}

	jsonBody := func(schema any) map[string]any {
		return map[string]any{
			"content": map[string]any{
				"application/json": map[string]any{"schema": schema},
			},
		}
	}
	resp := func(desc string, schema any) map[string]any {
		r := map[string]any{"description": desc}
		if schema != nil {
			r["content"] = map[string]any{
				"application/json": map[string]any{"schema": schema},
			}
		}
		return r
	}
	errRef := map[string]any{"$ref": "#/components/schemas/Error"}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "mediarack API",
			"version":     "1.0",
			"description": "Store and search metadata for a personal physical media collection",
		},
		"paths": map[string]any{
			"/media": map[string]any{
				"get": map[string]any{
					"summary": "List all media",
					"responses": map[string]any{
						"200": resp("All media records", mediaArray),
						"500": resp("Internal server error", errRef),
					},
				},
				"post": map[string]any{
					"summary":     "Add a media record",
					"requestBody": jsonBody(createSchema),
					"responses": map[string]any{
						"201": resp("Created record with assigned id", map[string]any{"$ref": "#/components/schemas/MediaItem"}),
						"400": resp("Missing or invalid fields", errRef),
						"500": resp("Internal server error", errRef),
					},
				},
			},
			"/media/{id}": map[string]any{
				"delete": map[string]any{
					"summary": "Delete a media record by id",
					"parameters": []any{
						map[string]any{
							"name":     "id",
							"in":       "path",
							"required": true,
							"schema":   map[string]any{"type": "integer", "format": "int64"},
						},
					},
					"responses": map[string]any{
						"200": resp("Deletion confirmation", map[string]any{
							"type":       "object",
							"required":   []string{"message"},
							"properties": map[string]any{"message": map[string]any{"type": "string"}},
						}),
						"404": resp("Media not found", errRef),
						"500": resp("Internal server error", errRef),
					},
				},
			},
			"/media/search": map[string]any{
				"get": map[string]any{
					"summary": "Search media by case-insensitive substring across title, artist, location, and format",
					"parameters": []any{
						map[string]any{
							"name":     "query",
							"in":       "query",
							"required": true,
							"schema":   map[string]any{"type": "string"},
						},
					},
					"responses": map[string]any{
						"200": resp("Matching records (possibly empty)", mediaArray),
						"400": resp("Missing 'query' parameter", errRef),
						"500": resp("Internal server error", errRef),
					},
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"MediaItem": mediaItemSchema,
				"Error":     errorSchema,
			},
		},
	}
}
