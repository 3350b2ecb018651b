// Package docs registers the OpenAPI document served at /swagger. It is
// maintained by hand in the layout swag init produces.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.redirectResponse"}}
                }
            }
        },
        "/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Session"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/reservas": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Create a reservation",
                "parameters": [
                    {
                        "description": "Form contents",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.workingCopyRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.submitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/reservas/cancelar": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Cancel the form",
                "parameters": [
                    {
                        "description": "Form being cancelled",
                        "name": "body",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/handler.cancelRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.redirectResponse"}}
                }
            }
        },
        "/reservas/horario": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Check a time field",
                "parameters": [
                    {
                        "description": "Typed value",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.timeInputRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.timeInputResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/reservas/novo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Open the creation form",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.formResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.formResponse"}}
                }
            }
        },
        "/reservas/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Update a reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Form contents",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.workingCopyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.submitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/reservas/{id}/editar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Open the edit form",
                "parameters": [
                    {"type": "integer", "description": "Reservation id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.formResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.formResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.AcademicSpace": {
            "type": "object",
            "properties": {
                "disponivel": {"type": "boolean"},
                "id": {"type": "integer"},
                "nome": {"type": "string"}
            }
        },
        "domain.Instructor": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"}
            }
        },
        "domain.Notification": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "severity": {"type": "string", "enum": ["success", "error", "warning"]}
            }
        },
        "domain.Ref": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"}
            }
        },
        "domain.Reservation": {
            "type": "object",
            "properties": {
                "data": {"type": "string"},
                "espacoAcademico": {"$ref": "#/definitions/domain.Ref"},
                "horaFinal": {"type": "string"},
                "horaInicial": {"type": "string"},
                "id": {"type": "integer"},
                "professor": {"$ref": "#/definitions/domain.Ref"}
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.cancelRequest": {
            "type": "object",
            "properties": {
                "editId": {"type": "integer"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "handler.formResponse": {
            "type": "object",
            "properties": {
                "banner": {"$ref": "#/definitions/handler.errorResponse"},
                "editId": {"type": "integer"},
                "espacos": {"type": "array", "items": {"$ref": "#/definitions/domain.AcademicSpace"}},
                "mode": {"type": "string", "enum": ["create", "edit"]},
                "professores": {"type": "array", "items": {"$ref": "#/definitions/domain.Instructor"}},
                "reserva": {"$ref": "#/definitions/handler.workingCopyResponse"},
                "state": {"type": "string"},
                "submitLabel": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "identifier": {"type": "string", "maxLength": 254},
                "secret": {"type": "string", "maxLength": 256}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "redirect": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"type": "object"}},
                "status": {"type": "string"}
            }
        },
        "handler.redirectResponse": {
            "type": "object",
            "properties": {
                "redirect": {"type": "string"}
            }
        },
        "handler.submitResponse": {
            "type": "object",
            "properties": {
                "notification": {"$ref": "#/definitions/domain.Notification"},
                "redirect": {"type": "string"},
                "reserva": {"$ref": "#/definitions/domain.Reservation"}
            }
        },
        "handler.timeInputRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "maxLength": 8}
            }
        },
        "handler.timeInputResponse": {
            "type": "object",
            "properties": {
                "warning": {"$ref": "#/definitions/domain.Notification"}
            }
        },
        "handler.workingCopyRequest": {
            "type": "object",
            "properties": {
                "data": {"type": "string", "maxLength": 32},
                "espacoId": {"type": "integer", "minimum": 0},
                "horaFinal": {"type": "string", "maxLength": 8},
                "horaInicial": {"type": "string", "maxLength": 8},
                "professorId": {"type": "integer", "minimum": 0}
            }
        },
        "handler.workingCopyResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "string"},
                "dataExibicao": {"type": "string"},
                "espacoId": {"type": "integer"},
                "horaFinal": {"type": "string"},
                "horaInicial": {"type": "string"},
                "professorId": {"type": "integer"}
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
	Title:            "Reservas Web API",
	Description:      "Gateway for the academic space reservation screens: login, route guard and reservation form.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
