// Package docs contains the swagger document of the API in the format
// swaggo/swag registers and gin-swagger serves.
//
// Every route registered on the router must have a path here.
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
        "/": {
            "get": {
                "description": "Links to the top level resources of the ledger",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1": {
            "get": {"tags": ["v1"], "summary": "v1 API", "description": "Links to the resources of the v1 API", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/budgets": {
            "get": {"tags": ["Budgets"], "summary": "List budgets", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Budgets"], "summary": "Create budgets", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/budgets/{id}": {
            "get": {"tags": ["Budgets"], "summary": "Get budget", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Budgets"], "summary": "Update budget", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Budgets"], "summary": "Delete budget", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/budgets/{id}/totals": {
            "get": {"tags": ["Budgets"], "summary": "Get budget totals", "description": "Returns the sums of assigned, activity and available of all categories of the budget", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/v1/accounts": {
            "get": {"tags": ["Accounts"], "summary": "List accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Accounts"], "summary": "Create accounts", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/accounts/total": {
            "get": {"tags": ["Accounts"], "summary": "Total balance of an account group", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/accounts/{id}": {
            "get": {"tags": ["Accounts"], "summary": "Get account", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Accounts"], "summary": "Update account", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Accounts"], "summary": "Delete account", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/accounts/{id}/register": {
            "get": {"tags": ["Accounts"], "summary": "Account register with running balance", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/v1/category-groups": {
            "get": {"tags": ["Category Groups"], "summary": "List category groups", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Category Groups"], "summary": "Create category groups", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/category-groups/{id}": {
            "get": {"tags": ["Category Groups"], "summary": "Get category group", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Category Groups"], "summary": "Update category group", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Category Groups"], "summary": "Delete category group", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/category-groups/{id}/totals": {
            "get": {"tags": ["Category Groups"], "summary": "Get category group totals", "description": "Returns the sums of assigned, activity and available of the categories in the group", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/v1/categories": {
            "get": {"tags": ["Categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Categories"], "summary": "Create categories", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/categories/{id}": {
            "get": {"tags": ["Categories"], "summary": "Get category", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Categories"], "summary": "Update category", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Categories"], "summary": "Delete category", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/transactions": {
            "get": {"tags": ["Transactions"], "summary": "List transactions", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "post": {"tags": ["Transactions"], "summary": "Create transactions", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/transactions/{id}": {
            "get": {"tags": ["Transactions"], "summary": "Get transaction", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Transactions"], "summary": "Update transaction", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Transactions"], "summary": "Delete transaction", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/reports/{month}": {
            "get": {"tags": ["Reports"], "summary": "Month report", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/v1/selection": {
            "get": {"tags": ["Selection"], "summary": "Get the current selection", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Selection"], "summary": "Update the current selection", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/v1/import": {
            "get": {"tags": ["Import"], "summary": "Import API overview", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/import/ynab-import": {
            "post": {"tags": ["Import"], "summary": "Import transactions", "consumes": ["multipart/form-data"], "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}, {"type": "string", "name": "account", "in": "query"}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/v1/import/ynab-import-preview": {
            "post": {"tags": ["Import"], "summary": "Transaction Import Preview", "consumes": ["multipart/form-data"], "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}, {"type": "string", "name": "account", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
