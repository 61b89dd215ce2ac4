// Package docs registers the OpenAPI document served under /swagger. Keep it in
// step with the @Router annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get all categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "Category", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateCategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get questions of a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create a question",
                "parameters": [
                    {"description": "Question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateQuestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateQuestionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Search questions",
                "parameters": [
                    {"description": "Search term", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchQuestionsRequest"}},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteQuestionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quizzes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Get the next quiz question",
                "parameters": [
                    {"description": "Quiz state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PlayQuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PlayQuizResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drinks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["drinks"],
                "summary": "List drinks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DrinksShortResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drinks"],
                "summary": "Create a drink",
                "parameters": [
                    {"description": "Drink", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateDrinkRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DrinksLongResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drinks-detail": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["drinks"],
                "summary": "List drinks with full recipes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DrinksLongResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drinks/{id}": {
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drinks"],
                "summary": "Update a drink",
                "parameters": [
                    {"type": "string", "description": "Drink ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateDrinkRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DrinksLongResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["drinks"],
                "summary": "Delete a drink",
                "parameters": [
                    {"type": "string", "description": "Drink ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteDrinkResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/venues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "List venues",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VenueAreasResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Create a venue",
                "parameters": [
                    {"description": "Venue", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.VenueRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.VenueResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/venues/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Search venues",
                "parameters": [
                    {"description": "Search term", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/venues/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Get a venue",
                "parameters": [
                    {"type": "string", "description": "Venue ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VenueResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Edit a venue",
                "parameters": [
                    {"type": "string", "description": "Venue ID", "name": "id", "in": "path", "required": true},
                    {"description": "Venue", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.VenueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VenueResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Delete a venue",
                "parameters": [
                    {"type": "string", "description": "Venue ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/artists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artists"],
                "summary": "List artists",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArtistsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artists"],
                "summary": "Create an artist",
                "parameters": [
                    {"description": "Artist", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ArtistRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ArtistResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/artists/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artists"],
                "summary": "Search artists",
                "parameters": [
                    {"description": "Search term", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/artists/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artists"],
                "summary": "Get an artist",
                "parameters": [
                    {"type": "string", "description": "Artist ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArtistResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artists"],
                "summary": "Edit an artist",
                "parameters": [
                    {"type": "string", "description": "Artist ID", "name": "id", "in": "path", "required": true},
                    {"description": "Artist", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ArtistRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArtistResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["artists"],
                "summary": "Delete an artist",
                "parameters": [
                    {"type": "string", "description": "Artist ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/shows": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shows"],
                "summary": "List shows",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ShowsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shows"],
                "summary": "Create a show",
                "parameters": [
                    {"description": "Show", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateShowRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateShowResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CategoriesResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "categories": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.CreateCategoryRequest": {
            "type": "object",
            "properties": {"type": {"type": "string"}}
        },
        "dto.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "dto.CreateCategoryResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "category": {"$ref": "#/definitions/dto.CategoryResponse"}
            }
        },
        "dto.QuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "category": {"type": "string"},
                "difficulty": {"type": "integer"}
            }
        },
        "dto.QuestionListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "totalQuestions": {"type": "integer"},
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "currentCategory": {"type": "string"}
            }
        },
        "dto.CreateQuestionRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "category": {"type": "string"},
                "difficulty": {"type": "integer"}
            }
        },
        "dto.CreateQuestionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "question": {"$ref": "#/definitions/dto.QuestionResponse"}
            }
        },
        "dto.DeleteQuestionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "deleted": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "totalQuestions": {"type": "integer"}
            }
        },
        "dto.SearchQuestionsRequest": {
            "type": "object",
            "properties": {"searchTerm": {"type": "string"}}
        },
        "dto.QuizCategory": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "dto.PlayQuizRequest": {
            "type": "object",
            "properties": {
                "previous_questions": {"type": "array", "items": {"type": "string"}},
                "quiz_category": {"$ref": "#/definitions/dto.QuizCategory"}
            }
        },
        "dto.PlayQuizResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "question": {"$ref": "#/definitions/dto.QuestionResponse"},
                "finished": {"type": "boolean"}
            }
        },
        "dto.Ingredient": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "color": {"type": "string"},
                "parts": {"type": "integer"}
            }
        },
        "dto.IngredientShort": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "parts": {"type": "integer"}
            }
        },
        "dto.DrinkShort": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "recipe": {"type": "array", "items": {"$ref": "#/definitions/dto.IngredientShort"}}
            }
        },
        "dto.DrinkLong": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "recipe": {"type": "array", "items": {"$ref": "#/definitions/dto.Ingredient"}}
            }
        },
        "dto.DrinksShortResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "drinks": {"type": "array", "items": {"$ref": "#/definitions/dto.DrinkShort"}}
            }
        },
        "dto.DrinksLongResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "drinks": {"type": "array", "items": {"$ref": "#/definitions/dto.DrinkLong"}}
            }
        },
        "dto.CreateDrinkRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "recipe": {"type": "array", "items": {"$ref": "#/definitions/dto.Ingredient"}}
            }
        },
        "dto.UpdateDrinkRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "recipe": {"type": "array", "items": {"$ref": "#/definitions/dto.Ingredient"}}
            }
        },
        "dto.DeleteDrinkResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "delete": {"type": "string"}
            }
        },
        "dto.ListingSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "num_upcoming_shows": {"type": "integer"}
            }
        },
        "dto.VenueArea": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "state": {"type": "string"},
                "venues": {"type": "array", "items": {"$ref": "#/definitions/dto.ListingSummary"}}
            }
        },
        "dto.VenueAreasResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "areas": {"type": "array", "items": {"$ref": "#/definitions/dto.VenueArea"}}
            }
        },
        "dto.SearchRequest": {
            "type": "object",
            "properties": {
                "search_term": {"type": "string"}
            }
        },
        "dto.SearchResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "count": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.ListingSummary"}}
            }
        },
        "dto.VenueRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "image_link": {"type": "string"},
                "facebook_link": {"type": "string"},
                "website": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "seeking_talent": {"type": "boolean"},
                "seeking_description": {"type": "string"}
            }
        },
        "dto.ArtistRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "phone": {"type": "string"},
                "image_link": {"type": "string"},
                "facebook_link": {"type": "string"},
                "website": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "seeking_venue": {"type": "boolean"},
                "seeking_description": {"type": "string"}
            }
        },
        "dto.ArtistShow": {
            "type": "object",
            "properties": {
                "artist_id": {"type": "string"},
                "artist_name": {"type": "string"},
                "artist_image_link": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"}
            }
        },
        "dto.VenueShow": {
            "type": "object",
            "properties": {
                "venue_id": {"type": "string"},
                "venue_name": {"type": "string"},
                "venue_image_link": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"}
            }
        },
        "dto.VenueDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "phone": {"type": "string"},
                "website": {"type": "string"},
                "facebook_link": {"type": "string"},
                "seeking_talent": {"type": "boolean"},
                "seeking_description": {"type": "string"},
                "image_link": {"type": "string"},
                "past_shows": {"type": "array", "items": {"$ref": "#/definitions/dto.ArtistShow"}},
                "upcoming_shows": {"type": "array", "items": {"$ref": "#/definitions/dto.ArtistShow"}},
                "past_shows_count": {"type": "integer"},
                "upcoming_shows_count": {"type": "integer"}
            }
        },
        "dto.VenueResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "venue": {"$ref": "#/definitions/dto.VenueDetail"}
            }
        },
        "dto.ArtistDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "phone": {"type": "string"},
                "website": {"type": "string"},
                "facebook_link": {"type": "string"},
                "seeking_venue": {"type": "boolean"},
                "seeking_description": {"type": "string"},
                "image_link": {"type": "string"},
                "past_shows": {"type": "array", "items": {"$ref": "#/definitions/dto.VenueShow"}},
                "upcoming_shows": {"type": "array", "items": {"$ref": "#/definitions/dto.VenueShow"}},
                "past_shows_count": {"type": "integer"},
                "upcoming_shows_count": {"type": "integer"}
            }
        },
        "dto.ArtistResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "artist": {"$ref": "#/definitions/dto.ArtistDetail"}
            }
        },
        "dto.ArtistSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.ArtistsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "artists": {"type": "array", "items": {"$ref": "#/definitions/dto.ArtistSummary"}}
            }
        },
        "dto.ShowResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "venue_id": {"type": "string"},
                "venue_name": {"type": "string"},
                "artist_id": {"type": "string"},
                "artist_name": {"type": "string"},
                "artist_image_link": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"}
            }
        },
        "dto.ShowsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "shows": {"type": "array", "items": {"$ref": "#/definitions/dto.ShowResponse"}}
            }
        },
        "dto.CreateShowRequest": {
            "type": "object",
            "properties": {
                "artist_id": {"type": "string"},
                "venue_id": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"}
            }
        },
        "dto.CreateShowResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "show": {"$ref": "#/definitions/dto.ShowResponse"}
            }
        },
        "dto.DeleteResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "deleted": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "integer"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object"},
                "errors": {"type": "array", "items": {"type": "object"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Type 'Bearer YOUR_JWT_TOKEN' to authorize.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Trivia API",
	Description:      "Trivia quiz, coffee shop menu and venue booking API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
