// Package docs registers the OpenAPI description of the admin API with swag.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/admin/all-users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/domain.User"}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/admin/user-action/{actionType}": {
            "post": {
                "description": "Resolves actionType (case-insensitive: create, upgrade) and runs it against the user in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Run a user action",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Action token",
                        "name": "actionType",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target user",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.User"}
                    }
                ],
                "responses": {
                    "200": {"description": "user upgraded"},
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/domain.User"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/admin/clear-app-cache": {
            "get": {
                "tags": ["admin"],
                "summary": "Clear the application cache",
                "responses": {
                    "200": {"description": "cache cleared"},
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/admin/app-cache": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Show the application cache",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "roles": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "sentimentAnalysis": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
	Title:            "Journal Admin API",
	Description:      "Administrative surface: list users, run user actions, manage the application cache.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
