package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tutor API",
        "description": "Teachers and the courses they offer.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Teachers", "description": "Teacher records"},
        {"name": "Courses", "description": "Courses owned by a teacher"},
        {"name": "System", "description": "Liveness, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Liveness check",
                "description": "Returns a greeting with the number of earlier checks.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Ready", "schema": {"$ref": "#/definitions/ReadinessReport"}},
                    "503": {"description": "A dependency is down", "schema": {"$ref": "#/definitions/ReadinessReport"}}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Teacher"}}},
                    "404": {"description": "No teachers", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/Teacher"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/teachers/{id}": {
            "parameters": [
                {"name": "id", "in": "path", "required": true, "type": "integer"}
            ],
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Teacher"}},
                    "400": {"description": "Bad id", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Teachers"],
                "summary": "Update teacher",
                "description": "Fields present in the body replace the stored values; absent fields are kept.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Teacher"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Confirmation", "schema": {"type": "string"}},
                    "400": {"description": "Bad id", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/teachers/{id}/courses/export": {
            "get": {
                "tags": ["Courses"],
                "summary": "Download the course catalog of a teacher",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Bad id or format", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "No such teacher or no courses", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses": {
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses/{teacher_id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses of a teacher",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "teacher_id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "400": {"description": "Bad id", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "No courses", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses/{teacher_id}/{id}": {
            "parameters": [
                {"name": "teacher_id", "in": "path", "required": true, "type": "integer"},
                {"name": "id", "in": "path", "required": true, "type": "integer"}
            ],
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "description": "Fields present in the body replace the stored values; absent fields are kept.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Course"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Confirmation", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "picture_url": {"type": "string"},
                "profile": {"type": "string"}
            }
        },
        "CreateTeacherRequest": {
            "type": "object",
            "required": ["name", "picture_url", "profile"],
            "properties": {
                "name": {"type": "string"},
                "picture_url": {"type": "string"},
                "profile": {"type": "string"}
            }
        },
        "UpdateTeacherRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "picture_url": {"type": "string"},
                "profile": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "teacher_id": {"type": "integer"},
                "name": {"type": "string"},
                "time": {"type": "string", "format": "date-time"},
                "description": {"type": "string", "x-nullable": true},
                "format": {"type": "string", "x-nullable": true},
                "structure": {"type": "string", "x-nullable": true},
                "duration": {"type": "string", "x-nullable": true},
                "price": {"type": "integer", "x-nullable": true},
                "language": {"type": "string", "x-nullable": true},
                "level": {"type": "string", "x-nullable": true}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["teacher_id", "name"],
            "properties": {
                "teacher_id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "format": {"type": "string"},
                "structure": {"type": "string"},
                "duration": {"type": "string"},
                "price": {"type": "integer"},
                "language": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "UpdateCourseRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "format": {"type": "string"},
                "structure": {"type": "string"},
                "duration": {"type": "string"},
                "price": {"type": "integer"},
                "language": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "ReadinessReport": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error_message": {"type": "string"}
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
