// Package docs registers the OpenAPI document served under /swagger.
// It follows the layout swag produces; docs_test.go keeps it in line with the handler annotations.
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
        "/expenses": {
            "get": {
                "description": "Get every split record in the ledger, in insertion order",
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List raw expense entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "description": "Split an expense evenly between the participants and append the resulting records to the ledger",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Add an expense",
                "parameters": [
                    {
                        "description": "Expense to add",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/expense.CreateExpenseRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "delete": {
                "description": "Remove every record from the ledger",
                "tags": ["expenses"],
                "summary": "Reset the ledger",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/people": {
            "get": {
                "description": "Get every person named in the ledger, in order of first appearance. Used to rebuild participant pickers after a reload.",
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "List people",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/settlements": {
            "get": {
                "description": "Recompute the transfers that settle every balance in the ledger. The list replaces any previous result.",
                "produces": ["application/json"],
                "tags": ["settlements"],
                "summary": "List settlement transfers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/settlements/balances": {
            "get": {
                "description": "Get the signed net balance of every person in the ledger",
                "produces": ["application/json"],
                "tags": ["settlements"],
                "summary": "Get net balances",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "expense.CreateExpenseRequest": {
            "type": "object",
            "required": ["amount", "participants", "payer"],
            "properties": {
                "amount": {"type": "string", "example": "90"},
                "participants": {"type": "array", "items": {"type": "string"}, "example": ["Alice", "Bob", "Carol"]},
                "payer": {"type": "string", "example": "Alice"},
                "split_type": {"type": "string", "example": "EVEN"}
            }
        },
        "response.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/response.APIError"},
                "meta": {"$ref": "#/definitions/response.Meta"},
                "success": {"type": "boolean"}
            }
        },
        "response.Meta": {
            "type": "object",
            "properties": {
                "state": {"type": "string"},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Split Ledger API",
	Description:      "Shared-expense ledger: record who paid for what and get the transfers that settle every debt.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
