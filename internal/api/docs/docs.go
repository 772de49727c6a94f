// Package docs registers the OpenAPI description of the HTTP API with swag
// so the router can serve it at /swagger/doc.json. It mirrors the handler
// annotations; regenerate with
// `swag init -g cmd/api/main.go -o internal/api/docs` after changing them.
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
        "/health": {
            "get": {
                "description": "Check if the application is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "Application is alive",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Ready once the initial user list has loaded",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "Application is ready",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "503": {
                        "description": "Service unavailable",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/users": {
            "get": {
                "description": "Search, sort and paginate the user collection",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name or email substring", "name": "search", "in": "query"},
                    {"type": "string", "description": "Sort key (name, email, city, zipcode)", "name": "sort", "in": "query"},
                    {"type": "string", "description": "Sort direction (asc, desc)", "name": "direction", "in": "query"},
                    {"type": "integer", "description": "Page number (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (5, 10 or 15; default: 5)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Page of users", "schema": {"$ref": "#/definitions/dto.UserListResponse"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Users not loaded", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Add user",
                "parameters": [
                    {"description": "User details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UserRequest"}}
                ],
                "responses": {
                    "201": {"description": "User created", "schema": {"$ref": "#/definitions/dto.UserDTO"}},
                    "400": {"description": "Invalid request or validation error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get user by ID",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "User details", "schema": {"$ref": "#/definitions/dto.UserDTO"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Update user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "User details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UserRequest"}}
                ],
                "responses": {
                    "200": {"description": "User updated", "schema": {"$ref": "#/definitions/dto.UserDTO"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Delete user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "User deleted", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/feed": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Feed"],
                "summary": "Feed status",
                "responses": {
                    "200": {"description": "Feed state", "schema": {"$ref": "#/definitions/worker.FeedStatus"}}
                }
            }
        },
        "/api/v1/feed/start": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Feed"],
                "summary": "Start feed",
                "responses": {
                    "200": {"description": "Feed state", "schema": {"$ref": "#/definitions/worker.FeedStatus"}}
                }
            }
        },
        "/api/v1/feed/stop": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Feed"],
                "summary": "Stop feed",
                "responses": {
                    "200": {"description": "Feed state", "schema": {"$ref": "#/definitions/worker.FeedStatus"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AddressDTO": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "street": {"type": "string"},
                "suite": {"type": "string"},
                "zipcode": {"type": "string"}
            }
        },
        "dto.SortDTO": {
            "type": "object",
            "properties": {
                "direction": {"type": "string"},
                "key": {"type": "string"}
            }
        },
        "dto.UserDTO": {
            "type": "object",
            "properties": {
                "address": {"$ref": "#/definitions/dto.AddressDTO"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.UserListResponse": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "search": {"type": "string"},
                "sort": {"$ref": "#/definitions/dto.SortDTO"},
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/dto.UserDTO"}}
            }
        },
        "dto.UserRequest": {
            "type": "object",
            "required": ["city", "email", "name", "street", "zipcode"],
            "properties": {
                "city": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "maxLength": 255},
                "name": {"type": "string", "maxLength": 200},
                "street": {"type": "string", "maxLength": 200},
                "zipcode": {"type": "string", "maxLength": 20}
            }
        },
        "utils.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/utils.ErrorDetail"},
                "success": {"type": "boolean"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "worker.FeedStatus": {
            "type": "object",
            "properties": {
                "added": {"type": "integer"},
                "failed": {"type": "integer"},
                "interval": {"type": "string"},
                "lastError": {"type": "string"},
                "lastTickAt": {"type": "string"},
                "running": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Userboard API",
	Description:      "Search, sort, page and edit a user list fed by remote user sources.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
