// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {"tags": ["system"], "summary": "Health check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/auth/sign-up": {
            "post": {"tags": ["auth"], "summary": "Register a user for history access",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/authCredentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/auth/sign-in": {
            "post": {"tags": ["auth"], "summary": "Obtain a bearer token",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/authCredentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/intervals/validate": {
            "post": {"tags": ["calculator"], "summary": "Validate one failure interval",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/manualEntry"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/calculations": {
            "post": {"tags": ["calculator"], "summary": "Compute MTTR and MTBF",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/calculationRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "get": {"tags": ["history"], "summary": "List past calculations", "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "from", "type": "string"},
                    {"in": "query", "name": "to", "type": "string"},
                    {"in": "query", "name": "status", "type": "string", "enum": ["ok", "no_data"]}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}}
        },
        "/api/v1/calculations/upload": {
            "post": {"tags": ["calculator"], "summary": "Compute MTTR and MTBF from an uploaded CSV",
                "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [
                    {"in": "formData", "name": "file", "type": "file"},
                    {"in": "formData", "name": "start", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"in": "formData", "name": "end", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "413": {"description": "Request Entity Too Large"}}}
        },
        "/api/v1/template.csv": {
            "get": {"tags": ["calculator"], "summary": "Download CSV template", "produces": ["text/csv"],
                "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "authCredentials": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "manualEntry": {"type": "object", "properties": {
            "start": {"type": "string", "example": "2025-08-01 08:00:00"},
            "end": {"type": "string", "example": "2025-08-01 10:30:00"}}},
        "table": {"type": "object", "properties": {
            "columns": {"type": "array", "items": {"type": "string"}},
            "rows": {"type": "array", "items": {"type": "array", "items": {"type": "string"}}}}},
        "calculationRequest": {"type": "object", "properties": {
            "manual": {"type": "array", "items": {"$ref": "#/definitions/manualEntry"}},
            "table": {"$ref": "#/definitions/table"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Reliability Calculator API",
	Description:      "MTTR and MTBF from failure/repair intervals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
