// Package docs holds the OpenAPI description served under /swagger.
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
        "/api/v1/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/handler.UserRegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.UserRegisterResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Email or domain already in use", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.TokenResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Rotate tokens",
                "parameters": [{"in": "body", "name": "token", "required": true, "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.TokenResponse"}},
                    "401": {"description": "Invalid token", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/api/v1/profile/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserResponse"}}}
            }
        },
        "/api/v1/profile/password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Change password",
                "parameters": [{"in": "body", "name": "passwords", "required": true, "schema": {"$ref": "#/definitions/handler.ChangePasswordRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "400": {"description": "Current password is incorrect", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/profile/plan": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Switch plan",
                "parameters": [{"in": "body", "name": "plan", "required": true, "schema": {"$ref": "#/definitions/handler.UpdatePlanRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserResponse"}}}
            }
        },
        "/api/v1/links": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["links"],
                "summary": "List links",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.LinkResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["links"],
                "summary": "Create a short link",
                "parameters": [{"in": "body", "name": "link", "required": true, "schema": {"$ref": "#/definitions/handler.CreateLinkRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.LinkResponse"}},
                    "400": {"description": "Invalid url or slug", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Domain not owned or plan limit reached", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Slug already taken", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/links/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["links"],
                "summary": "Delete a link",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/links/{id}/qr": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["image/png"],
                "tags": ["links"],
                "summary": "QR code for a link",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 256, "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/links/{id}/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["links"],
                "summary": "Click statistics for a link",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.LinkStats"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/domains": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["domains"],
                "summary": "List domains",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DomainsResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["domains"],
                "summary": "Add a domain",
                "parameters": [{"in": "body", "name": "domain", "required": true, "schema": {"$ref": "#/definitions/handler.AddDomainRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.DomainsResponse"}},
                    "409": {"description": "Domain already in use", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/domains/{name}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["domains"],
                "summary": "Rename a domain",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true},
                    {"in": "body", "name": "domain", "required": true, "schema": {"$ref": "#/definitions/handler.RenameDomainRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DomainsResponse"}},
                    "403": {"description": "Domain not owned", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Domain already in use", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/analytics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Click analytics",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Snapshot"}}}
            }
        },
        "/api/v1/plans": {
            "get": {
                "tags": ["plans"],
                "summary": "List plans",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.PlanResponse"}}}}
            }
        },
        "/r/{slug}": {
            "get": {
                "tags": ["redirect"],
                "summary": "Follow a direct short link",
                "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}],
                "responses": {"302": {"description": "Found"}, "404": {"description": "Not Found"}}
            }
        },
        "/{domain}/{slug}": {
            "get": {
                "tags": ["redirect"],
                "summary": "Follow a domain short link",
                "parameters": [
                    {"type": "string", "name": "domain", "in": "path", "required": true},
                    {"type": "string", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {"302": {"description": "Found"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "handler.UserRegisterRequest": {
            "type": "object",
            "required": ["domain", "email", "name", "password"],
            "properties": {"domain": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.RefreshRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {"refresh_token": {"type": "string"}}
        },
        "handler.ChangePasswordRequest": {
            "type": "object",
            "required": ["current_password", "new_password"],
            "properties": {"current_password": {"type": "string"}, "new_password": {"type": "string"}}
        },
        "handler.UpdatePlanRequest": {
            "type": "object",
            "required": ["plan"],
            "properties": {"plan": {"type": "string"}}
        },
        "handler.CreateLinkRequest": {
            "type": "object",
            "required": ["original_url"],
            "properties": {"custom_slug": {"type": "string"}, "domain": {"type": "string"}, "original_url": {"type": "string"}}
        },
        "handler.AddDomainRequest": {
            "type": "object",
            "required": ["domain"],
            "properties": {"domain": {"type": "string"}}
        },
        "handler.RenameDomainRequest": {
            "type": "object",
            "required": ["domain"],
            "properties": {"domain": {"type": "string"}}
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "response.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "response.TokenResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "refresh_token": {"type": "string"}}
        },
        "response.UserResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "domains": {"type": "array", "items": {"type": "string"}},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "plan": {"type": "string"}
            }
        },
        "response.UserRegisterResponse": {
            "type": "object",
            "properties": {"tokens": {"$ref": "#/definitions/response.TokenResponse"}, "user": {"$ref": "#/definitions/response.UserResponse"}}
        },
        "response.LinkResponse": {
            "type": "object",
            "properties": {
                "clicks": {"type": "integer"},
                "created_at": {"type": "string"},
                "domain": {"type": "string"},
                "id": {"type": "string"},
                "is_custom_slug": {"type": "boolean"},
                "original_url": {"type": "string"},
                "short_url": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "response.DomainsResponse": {
            "type": "object",
            "properties": {"domains": {"type": "array", "items": {"type": "string"}}}
        },
        "service.Point": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "value": {"type": "integer"}}
        },
        "service.Count": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "service.LinkStats": {
            "type": "object",
            "properties": {
                "link_id": {"type": "string"},
                "total_clicks": {"type": "integer"},
                "unique_ips": {"type": "integer"},
                "countries": {"type": "array", "items": {"$ref": "#/definitions/service.Count"}},
                "referrers": {"type": "array", "items": {"$ref": "#/definitions/service.Count"}},
                "devices": {"type": "array", "items": {"$ref": "#/definitions/service.Count"}},
                "recent": {"type": "array", "items": {"type": "object"}}
            }
        },
        "service.Snapshot": {
            "type": "object",
            "properties": {
                "active_links": {"type": "integer"},
                "clicks_by_device": {"type": "array", "items": {"$ref": "#/definitions/service.Point"}},
                "clicks_by_domain": {"type": "array", "items": {"$ref": "#/definitions/service.Point"}},
                "clicks_change": {"type": "integer"},
                "clicks_over_time": {"type": "array", "items": {"$ref": "#/definitions/service.Point"}},
                "conversion_change": {"type": "integer"},
                "conversion_rate": {"type": "integer"},
                "domains": {"type": "array", "items": {"type": "string"}},
                "links_change": {"type": "integer"},
                "top_links": {"type": "array", "items": {"$ref": "#/definitions/service.Point"}},
                "total_clicks": {"type": "integer"}
            }
        },
        "response.PlanResponse": {
            "type": "object",
            "properties": {
                "current": {"type": "boolean"},
                "description": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "string"},
                "max_domains": {"type": "integer"},
                "max_links": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"}
            }
        }
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
	Title:            "linkhop API",
	Description:      "Short links with per-user domains and click analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
