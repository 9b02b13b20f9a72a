// Package docs holds the OpenAPI document for the faqbridge API
// keep paths in step with the swag annotations on the handlers
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
        "/faq/ask": {
            "get": {
                "tags": ["faq"],
                "summary": "Answer a question in the caller's language",
                "parameters": [
                    {"name": "query", "in": "query", "required": true, "schema": {"type": "string"}},
                    {"name": "language", "in": "query", "required": false, "schema": {"type": "string", "default": "en"}}
                ],
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AskResponse"}}}}
                }
            },
            "post": {
                "tags": ["faq"],
                "summary": "Answer a question in the caller's language",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AskRequest"}}}},
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AskResponse"}}}}
                }
            }
        },
        "/faq/match": {
            "get": {
                "tags": ["faq"],
                "summary": "Look up the best English FAQ match without translation",
                "parameters": [
                    {"name": "query", "in": "query", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/MatchResponse"}}}}
                }
            }
        },
        "/faq/entries": {
            "get": {
                "tags": ["faq"],
                "summary": "List the loaded FAQ corpus",
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/EntriesResponse"}}}}
                }
            }
        },
        "/meta/health": {
            "get": {"tags": ["meta"], "summary": "Liveness", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/ready": {
            "get": {"tags": ["meta"], "summary": "Readiness of configured stores", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/meta/version": {
            "get": {"tags": ["meta"], "summary": "Build information", "responses": {"200": {"description": "OK"}}}
        }
    },
    "components": {
        "schemas": {
            "AskRequest": {
                "type": "object",
                "required": ["query"],
                "properties": {
                    "query": {"type": "string", "example": "Comment obtenir un remboursement ?"},
                    "language": {"type": "string", "example": "fr"}
                }
            },
            "AskResponse": {
                "type": "object",
                "properties": {
                    "query": {"type": "string"},
                    "language": {"type": "string"},
                    "answer": {"type": "string"}
                }
            },
            "MatchResponse": {
                "type": "object",
                "properties": {
                    "found": {"type": "boolean"},
                    "score": {"type": "integer"},
                    "question": {"type": "string"},
                    "answer": {"type": "string"},
                    "index": {"type": "integer"}
                }
            },
            "Entry": {
                "type": "object",
                "properties": {
                    "question": {"type": "string"},
                    "answer": {"type": "string"}
                }
            },
            "EntriesResponse": {
                "type": "object",
                "properties": {
                    "count": {"type": "integer"},
                    "entries": {"type": "array", "items": {"$ref": "#/components/schemas/Entry"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "faqbridge API",
	Description:      "Multilingual FAQ answering over a fixed English corpus.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
