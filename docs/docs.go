// Package docs holds the OpenAPI description served at /swagger.
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
            "get": {"tags": ["System"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Active tasks grouped into sections",
                "parameters": [
                    {"type": "string", "description": "Client calendar date, YYYY-MM-DD", "name": "today", "in": "query"},
                    {"type": "string", "description": "Fallback for today", "name": "X-Client-Today", "in": "header"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SectionsResponse"}}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Quick-add a task",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTaskRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Task"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/tasks/archived": {
            "get": {"tags": ["Tasks"], "summary": "Archived tasks, newest first", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Task"}}}}}
        },
        "/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Get a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Tasks"], "summary": "Partially update a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateTaskRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Tasks"], "summary": "Soft-delete a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/tasks/{id}/toggle": {
            "post": {"tags": ["Tasks"], "summary": "Flip open and done", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}}}
        },
        "/tasks/{id}/archive": {
            "post": {"tags": ["Tasks"], "summary": "Archive a completed task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "400": {"description": "Task is not done"}}}
        },
        "/tasks/{id}/snooze": {
            "post": {"tags": ["Scheduling"], "summary": "Push a task one day out", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "schema": {"$ref": "#/definitions/handler.SnoozeTaskRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/tasks/{id}/reorder": {
            "post": {"tags": ["Scheduling"], "summary": "Drop a task into a section between two neighbors", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ReorderTaskRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/projects": {
            "get": {"tags": ["Projects"], "summary": "List projects", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Projects"], "summary": "Create a project", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateProjectRequest"}}], "responses": {"201": {"description": "Created"}}}
        },
        "/projects/{id}": {
            "put": {"tags": ["Projects"], "summary": "Update a project", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Projects"], "summary": "Delete a project", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/actions": {
            "get": {"tags": ["Actions"], "summary": "List staged meeting actions", "parameters": [{"type": "string", "name": "status", "in": "query", "enum": ["pending", "approved", "rejected"]}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Actions"], "summary": "Stage extracted meeting actions", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/actions/{id}/approve": {
            "post": {"tags": ["Actions"], "summary": "Promote an action into a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Already reviewed"}, "404": {"description": "Not Found"}}}
        },
        "/actions/{id}/reject": {
            "post": {"tags": ["Actions"], "summary": "Reject an action", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "model.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["open", "done"]},
                "group": {"type": "string", "enum": ["personal", "work"]},
                "taskType": {"type": "string", "enum": ["regular", "work-focus", "to-read"]},
                "projectId": {"type": "string"},
                "dueDate": {"type": "string", "example": "2026-03-10", "x-nullable": true},
                "isLongerTerm": {"type": "boolean"},
                "priority": {"type": "integer"},
                "orderRank": {"type": "number"},
                "completedAt": {"type": "string"},
                "archivedAt": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.SectionsResponse": {
            "type": "object",
            "properties": {
                "today": {"type": "string"},
                "sections": {"type": "array", "items": {"type": "object", "properties": {"section": {"type": "string"}, "tasks": {"type": "array", "items": {"$ref": "#/definitions/model.Task"}}}}}
            }
        },
        "handler.CreateTaskRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "group": {"type": "string"},
                "taskType": {"type": "string"},
                "projectId": {"type": "string"},
                "priority": {"type": "integer"},
                "dueDate": {"type": "string"},
                "section": {"type": "string"},
                "clientToday": {"type": "string"}
            }
        },
        "handler.UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string"},
                "group": {"type": "string"},
                "taskType": {"type": "string"},
                "projectId": {"type": "string"},
                "dueDate": {"type": "string", "description": "empty string clears the date"},
                "priority": {"type": "integer"},
                "clearPriority": {"type": "boolean"},
                "orderRank": {"type": "number"}
            }
        },
        "handler.ReorderTaskRequest": {
            "type": "object",
            "required": ["targetSection"],
            "properties": {
                "targetSection": {"type": "string", "enum": ["today", "this-week", "next-week", "after-next-week", "longer-term", "personal-focus", "work-focus", "to-read"]},
                "beforeTaskId": {"type": "string"},
                "afterTaskId": {"type": "string"},
                "clientToday": {"type": "string"}
            }
        },
        "handler.SnoozeTaskRequest": {
            "type": "object",
            "properties": {"clientToday": {"type": "string"}}
        },
        "handler.CreateProjectRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "color": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Planner API",
	Description:      "Personal task planner: date sections, drag and drop ordering and snooze.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
