package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Masjid Bouraoui API",
        "description": "Backend for the mosque public site and admin dashboard",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "tags": [
        {"name": "Authentication", "description": "Dashboard login"},
        {"name": "Users", "description": "Admin account management"},
        {"name": "Khutbah", "description": "Khutbah subjects"},
        {"name": "Recitations", "description": "Ranked recitation audio"},
        {"name": "Books", "description": "Library book catalogue"},
        {"name": "Library", "description": "Library membership"},
        {"name": "Courses", "description": "Quran course registrations"},
        {"name": "Contact", "description": "Contact messages"},
        {"name": "Newsletter", "description": "Newsletter subscribers"},
        {"name": "Broadcast", "description": "Bulk email"},
        {"name": "Library times", "description": "Opening hours"},
        {"name": "Prayer times", "description": "Daily prayer schedule"},
        {"name": "Quran", "description": "Quran text"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/superadmin": {
            "post": {
                "tags": ["Users"],
                "summary": "Create superadmin account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/admin": {
            "post": {
                "tags": ["Users"],
                "summary": "Create admin account",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/auth/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List accounts",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/users/{id}": {
            "delete": {
                "tags": ["Users"],
                "summary": "Delete account",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/khutbah": {
            "get": {
                "tags": ["Khutbah"],
                "summary": "List khutbah subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Khutbah"],
                "summary": "Create khutbah subject",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/khutbah/{id}/toggle-main": {
            "patch": {
                "tags": ["Khutbah"],
                "summary": "Toggle featured subject",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/recitations": {
            "get": {
                "tags": ["Recitations"],
                "summary": "List recitations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Recitations"],
                "summary": "Create recitation",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "required": true, "type": "string"},
                    {"name": "rank", "in": "formData", "required": true, "type": "integer"},
                    {"name": "audio", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Slot replaced"},
                    "201": {"description": "Created"}
                }
            }
        },
        "/books": {
            "get": {
                "tags": ["Books"],
                "summary": "List books",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Books"],
                "summary": "Create book",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/library": {
            "get": {
                "tags": ["Library"],
                "summary": "List registrations",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Library"],
                "summary": "Register library member",
                "consumes": ["multipart/form-data"],
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/library/send": {
            "post": {
                "tags": ["Broadcast"],
                "summary": "Send bulk email",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BroadcastRequest"}}
                ],
                "responses": {
                    "200": {"description": "All sent"},
                    "207": {"description": "Partial failure"}
                }
            }
        },
        "/library/export": {
            "get": {
                "tags": ["Library"],
                "summary": "Export registrations",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/library-times": {
            "get": {
                "tags": ["Library times"],
                "summary": "List opening hours",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Library times"],
                "summary": "Set opening hours for a day",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetLibraryTimesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/prayer-times": {
            "get": {
                "tags": ["Prayer times"],
                "summary": "Get prayer times",
                "parameters": [
                    {"name": "latitude", "in": "query", "required": true, "type": "number"},
                    {"name": "longitude", "in": "query", "required": true, "type": "number"},
                    {"name": "method", "in": "query", "type": "integer"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Upstream unavailable"}
                }
            }
        },
        "/quran/chapters": {
            "get": {
                "tags": ["Quran"],
                "summary": "List Quran chapters",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Upstream unavailable"}
                }
            }
        },
        "/quran/chapters/{number}": {
            "get": {
                "tags": ["Quran"],
                "summary": "Get Quran chapter",
                "parameters": [
                    {"name": "number", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Upstream unavailable"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            },
            "required": ["email", "password"]
        },
        "BroadcastRequest": {
            "type": "object",
            "properties": {
                "emails": {"type": "array", "items": {"type": "string"}},
                "subject": {"type": "string"},
                "message": {"type": "string"},
                "is_html": {"type": "boolean"}
            },
            "required": ["emails", "subject", "message"]
        },
        "SetLibraryTimesRequest": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "open": {"type": "string"},
                "close": {"type": "string"},
                "is_closed": {"type": "boolean"}
            },
            "required": ["day"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "message": {"type": "string"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
