// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/board": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Board"], "summary": "Current board", "responses": {"200": {"description": "OK"}}}
        },
        "/board/reset": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Board"], "summary": "Reset to the default three columns", "responses": {"200": {"description": "OK"}}}
        },
        "/columns": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Columns"], "summary": "Add a column", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/columns/reorder": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Columns"], "summary": "Move a column to another position", "responses": {"200": {"description": "OK"}}}
        },
        "/columns/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Columns"], "summary": "Rename a column", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Columns"], "summary": "Delete a column and its tasks", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/columns/{id}/tasks": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Tasks"], "summary": "Tasks of a column in display order", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Tasks"], "summary": "Add a task at the end of a column", "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        },
        "/columns/{id}/tasks/reorder": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Tasks"], "summary": "Reorder tasks within a column", "responses": {"200": {"description": "OK"}}}
        },
        "/tasks/move": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Tasks"], "summary": "Move a task to another column", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/tasks/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Tasks"], "summary": "Get a task", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Tasks"], "summary": "Edit a task", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Tasks"], "summary": "Delete a task", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/drag": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Drag"], "summary": "Current drag state", "responses": {"200": {"description": "OK"}}}
        },
        "/drag/start": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Drag"], "summary": "Begin dragging a task or column", "responses": {"200": {"description": "OK"}}}
        },
        "/drag/end": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Drag"], "summary": "Drop the dragged item", "responses": {"200": {"description": "OK"}}}
        },
        "/drag/cancel": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Drag"], "summary": "Abort the current drag", "responses": {"200": {"description": "OK"}}}
        },
        "/todos": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "List or search todos", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "Create a todo", "responses": {"201": {"description": "Created"}}}
        },
        "/todos/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "Get a todo", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "Update a todo", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "Delete a todo", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/todos/{id}/toggle": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "Toggle the done flag", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Kanban Board API",
	Description:      "Single-board kanban service with drag and drop support.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
