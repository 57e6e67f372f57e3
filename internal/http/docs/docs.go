// Package docs registers the OpenAPI description served under /swagger/.
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
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness and database check", "responses": {"200": {"description": "OK"}, "503": {"description": "database unavailable"}}}},
        "/api/github/profile": {"get": {"tags": ["github"], "summary": "GitHub profile of the site owner", "responses": {"200": {"description": "profile, or null when GitHub is unreachable"}}}},
        "/api/github/repos": {"get": {"tags": ["github"], "summary": "Repository list with search and filter",
            "parameters": [
                {"name": "search", "in": "query", "type": "string", "description": "case-insensitive match on name or description"},
                {"name": "filter", "in": "query", "type": "string", "description": "all, starred or a language name"}
            ],
            "responses": {"200": {"description": "repos, languages and filters"}}}},
        "/api/github/repos/{repo}/languages": {"get": {"tags": ["github"], "summary": "Language bytes of one repository",
            "parameters": [{"name": "repo", "in": "path", "required": true, "type": "string"}],
            "responses": {"200": {"description": "language to byte count"}}}},
        "/api/github/stats": {"get": {"tags": ["github"], "summary": "Aggregate repository stats", "responses": {"200": {"description": "totals and language counts"}}}},
        "/api/github/activity": {"get": {"tags": ["github"], "summary": "Recent public activity", "responses": {"200": {"description": "event timeline"}}}},
        "/api/github/pinned": {"get": {"tags": ["github"], "summary": "Six most starred repositories", "responses": {"200": {"description": "repositories"}}}},
        "/api/github/languages": {"get": {"tags": ["github"], "summary": "Language bytes across own repositories", "responses": {"200": {"description": "language to byte count"}}}},
        "/api/portfolios": {"get": {"tags": ["portfolio"], "summary": "Portfolio items, newest first",
            "parameters": [{"name": "category", "in": "query", "type": "string", "enum": ["design-graphics", "motion-graphics", "3d-graphics"]}],
            "responses": {"200": {"description": "items"}, "422": {"description": "unknown category"}}}},
        "/api/portfolios/gallery/{category}/{index}": {"get": {"tags": ["portfolio"], "summary": "One lightbox frame with prev and next indices",
            "parameters": [
                {"name": "category", "in": "path", "required": true, "type": "string"},
                {"name": "index", "in": "path", "required": true, "type": "integer"}
            ],
            "responses": {"200": {"description": "frame"}, "404": {"description": "empty gallery or index out of range"}}}},
        "/api/certifications": {"get": {"tags": ["certifications"], "summary": "Certifications by year, newest first", "responses": {"200": {"description": "certifications"}}}},
        "/api/projects": {"get": {"tags": ["projects"], "summary": "Projects, newest first", "responses": {"200": {"description": "projects"}}}},
        "/api/auth/sign-in": {"post": {"tags": ["auth"], "summary": "Start a dashboard session", "consumes": ["application/json"],
            "parameters": [{"name": "credentials", "in": "body", "required": true, "schema": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}}}],
            "responses": {"200": {"description": "session cookie set"}, "401": {"description": "invalid email or password"}}}},
        "/api/auth/sign-out": {"post": {"tags": ["auth"], "summary": "End the session", "responses": {"200": {"description": "cookie cleared"}}}},
        "/api/auth/me": {"get": {"tags": ["auth"], "summary": "Current session", "responses": {"200": {"description": "session"}, "401": {"description": "redirect to /dashboard/login"}}}},
        "/api/dashboard/portfolios": {"post": {"tags": ["dashboard"], "summary": "Create a portfolio item", "responses": {"201": {"description": "notice, item and full list"}, "401": {"description": "redirect to /dashboard/login"}, "422": {"description": "field errors"}}}},
        "/api/dashboard/portfolios/{id}": {
            "put": {"tags": ["dashboard"], "summary": "Update a portfolio item", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "notice, item and full list"}, "404": {"description": "not found"}}},
            "delete": {"tags": ["dashboard"], "summary": "Delete a portfolio item", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "notice and full list"}, "404": {"description": "not found"}}}},
        "/api/dashboard/certifications": {"post": {"tags": ["dashboard"], "summary": "Create a certification", "responses": {"201": {"description": "notice, item and full list"}, "422": {"description": "field errors"}}}},
        "/api/dashboard/certifications/{id}": {
            "put": {"tags": ["dashboard"], "summary": "Update a certification", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "notice, item and full list"}}},
            "delete": {"tags": ["dashboard"], "summary": "Delete a certification", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "notice and full list"}}}},
        "/api/dashboard/projects": {"post": {"tags": ["dashboard"], "summary": "Create a project", "responses": {"201": {"description": "notice, item and full list"}, "422": {"description": "field errors"}}}},
        "/api/dashboard/projects/{id}": {
            "put": {"tags": ["dashboard"], "summary": "Update a project", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "notice, item and full list"}}},
            "delete": {"tags": ["dashboard"], "summary": "Delete a project", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "notice and full list"}}}},
        "/api/dashboard/uploads": {"post": {"tags": ["dashboard"], "summary": "Upload a file to the media CDN", "consumes": ["multipart/form-data"],
            "parameters": [
                {"name": "kind", "in": "query", "required": true, "type": "string", "enum": ["portfolio", "project", "certification-pdf", "certification-image"]},
                {"name": "file", "in": "formData", "required": true, "type": "file"}
            ],
            "responses": {"201": {"description": "url and public id"}, "413": {"description": "file too large"}, "415": {"description": "file type not accepted"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "folio-service API",
	Description:      "Portfolio content API, GitHub data and the owner dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
