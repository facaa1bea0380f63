// Package docs holds the OpenAPI document served under /swagger.
// Regenerate it with `swag init` after changing handler annotations.
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
		"/admin/activity": {
			"get": {
				"tags": [
					"Admin - Activity"
				],
				"parameters": [
					{
						"name": "resource_type",
						"in": "query",
						"required": false,
						"description": "product | collection | order | media | analytics",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer",
						"default": 1
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer",
						"default": 20
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Admin activity log",
				"description": "Mutating admin requests, newest first",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/analytics/monthly-revenue": {
			"get": {
				"tags": [
					"Admin - Analytics"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get monthly revenue",
				"description": "Order revenue for the last 12 calendar months, oldest first, zero-filled",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/analytics/products": {
			"get": {
				"tags": [
					"Admin - Analytics"
				],
				"parameters": [
					{
						"name": "window",
						"in": "query",
						"required": false,
						"description": "all | today | week | month",
						"type": "string",
						"default": "all"
					},
					{
						"name": "sort",
						"in": "query",
						"required": false,
						"description": "price | cost_price | total_ordered | total_revenue | total_profit",
						"type": "string",
						"default": "total_revenue"
					},
					{
						"name": "order",
						"in": "query",
						"required": false,
						"description": "asc | desc",
						"type": "string",
						"default": "desc"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Product analytics table",
				"description": "Per-product ordered quantity, revenue and profit plus a summary, for a time window. Rebuilt on every request.",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/analytics/profit": {
			"post": {
				"tags": [
					"Admin - Analytics"
				],
				"parameters": [
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"description": "Calculator input",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Invalid cost price or product",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Run the profit calculator",
				"description": "Single-product mode accepts a cost price override; all-products mode uses stored cost prices. A rejected run keeps the last result.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/analytics/profit/last": {
			"get": {
				"tags": [
					"Admin - Analytics"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Nothing calculated yet",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Last profit calculation",
				"description": "The most recent successful calculator result held by this process",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/analytics/top-products": {
			"get": {
				"tags": [
					"Admin - Analytics"
				],
				"parameters": [
					{
						"name": "window",
						"in": "query",
						"required": false,
						"description": "all | today | week | month",
						"type": "string",
						"default": "month"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "How many products",
						"type": "integer",
						"default": 6
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get top performing products",
				"description": "Best selling products by revenue in the window, with sales count and revenue share",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/collections": {
			"post": {
				"tags": [
					"Admin - Collections"
				],
				"parameters": [
					{
						"name": "collection",
						"in": "body",
						"required": true,
						"description": "Collection details",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"409": {
						"description": "Slug already in use",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Create a collection",
				"description": "Create a product collection. The slug defaults to the slugified name.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"get": {
				"tags": [
					"Admin - Collections"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "List collections (admin)",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/collections/{id}": {
			"delete": {
				"tags": [
					"Admin - Collections"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Collection ID (UUID)",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Delete a collection",
				"description": "Delete a collection. Its products stay and lose the collection reference.",
				"produces": [
					"application/json"
				]
			},
			"get": {
				"tags": [
					"Admin - Collections"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Collection ID (UUID)",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get a collection (admin)",
				"produces": [
					"application/json"
				]
			},
			"patch": {
				"tags": [
					"Admin - Collections"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Collection ID (UUID)",
						"type": "string"
					},
					{
						"name": "collection",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"409": {
						"description": "Slug already in use",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Update a collection",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/login": {
			"post": {
				"tags": [
					"Admin - Auth"
				],
				"parameters": [
					{
						"name": "loginRequest",
						"in": "body",
						"required": true,
						"description": "Admin secret",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Invalid request",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Invalid secret",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Admin login not configured",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Login as admin",
				"description": "Check the shared admin secret and set the admin_token cookie",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/logout": {
			"post": {
				"tags": [
					"Admin - Auth"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Logout admin",
				"description": "Clear the admin_token cookie",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/media": {
			"delete": {
				"tags": [
					"Admin - Media"
				],
				"parameters": [
					{
						"name": "public_id",
						"in": "query",
						"required": true,
						"description": "Public id returned by the upload",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"502": {
						"description": "Media host failed",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Media host not configured",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Delete an image",
				"description": "Remove a hosted image by its public id",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"Admin - Media"
				],
				"parameters": [
					{
						"name": "file",
						"in": "formData",
						"required": true,
						"description": "Image file",
						"type": "file"
					},
					{
						"name": "folder",
						"in": "formData",
						"required": false,
						"description": "Target folder",
						"type": "string"
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"502": {
						"description": "Media host failed",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Media host not configured",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Upload an image",
				"description": "Proxy an image upload to the media host so credentials stay server-side",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/orders": {
			"get": {
				"tags": [
					"Admin - Orders"
				],
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "Pending | Shipped | Delivered | Canceled",
						"type": "string"
					},
					{
						"name": "email",
						"in": "query",
						"required": false,
						"description": "Customer email",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer",
						"default": 1
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer",
						"default": 20
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "List orders (admin)",
				"description": "Paginated orders, newest first, optionally filtered by status or customer email.",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/orders/{id}": {
			"get": {
				"tags": [
					"Admin - Orders"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Order ID (UUID)",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get order details (admin)",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/orders/{id}/invoice": {
			"get": {
				"tags": [
					"Admin - Orders"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Order ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "PDF file"
					},
					"400": {
						"description": "Invalid order ID",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Order not found",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Download order invoice PDF",
				"description": "Generate and download an invoice PDF for the order",
				"produces": [
					"octet-stream"
				]
			}
		},
		"/admin/orders/{id}/resend-confirmation": {
			"post": {
				"tags": [
					"Admin - Orders"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Order ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"502": {
						"description": "Email provider failed",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Email not configured",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Resend order confirmation",
				"description": "Send the confirmation email with the invoice PDF again",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/orders/{id}/status": {
			"patch": {
				"tags": [
					"Admin - Orders"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Order ID (UUID)",
						"type": "string"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"description": "New status",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Order not found",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Update order status",
				"description": "Set the status to one of Pending, Shipped, Delivered, Canceled. Last write wins.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/products": {
			"post": {
				"tags": [
					"Admin - Products"
				],
				"parameters": [
					{
						"name": "product",
						"in": "body",
						"required": true,
						"description": "Product details",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Create a product",
				"description": "Create a product. The image is uploaded beforehand through POST /admin/media.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"get": {
				"tags": [
					"Admin - Products"
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer",
						"default": 1
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer",
						"default": 20
					},
					{
						"name": "category",
						"in": "query",
						"required": false,
						"description": "Category label",
						"type": "string"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Name contains",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "List products (admin)",
				"description": "Paginated product list including cost price. Optional category and name search.",
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/products/{id}": {
			"delete": {
				"tags": [
					"Admin - Products"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID (UUID)",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Delete a product",
				"description": "Delete a product and, in the background, its hosted image. Past orders keep their line-item snapshots.",
				"produces": [
					"application/json"
				]
			},
			"get": {
				"tags": [
					"Admin - Products"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID (UUID)",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get a product (admin)",
				"produces": [
					"application/json"
				]
			},
			"patch": {
				"tags": [
					"Admin - Products"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID (UUID)",
						"type": "string"
					},
					{
						"name": "product",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Update a product",
				"description": "Partial update. Replacing the image with a new public id deletes the previous one from the media host in the background. \"collection_id\": null removes the product from its collection.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/admin/session": {
			"get": {
				"tags": [
					"Admin - Auth"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Current admin session",
				"description": "Report the admin session attached by the auth middleware",
				"produces": [
					"application/json"
				]
			}
		},
		"/auth/google/callback": {
			"get": {
				"tags": [
					"Auth - Google OAuth"
				],
				"responses": {
					"307": {
						"description": "Redirect to storefront"
					}
				},
				"summary": "Google OAuth callback",
				"description": "Verifies the state, exchanges the code, verifies the ID token, sets the auth_token cookie and redirects to the storefront."
			}
		},
		"/auth/google/login": {
			"get": {
				"tags": [
					"Auth - Google OAuth"
				],
				"responses": {
					"307": {
						"description": "Redirect to Google"
					},
					"503": {
						"description": "Google sign-in not configured",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Start Google sign-in",
				"description": "Sets a state cookie and redirects to Google's consent screen"
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"Auth"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Sign out",
				"produces": [
					"application/json"
				]
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"Auth"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Current customer",
				"produces": [
					"application/json"
				]
			}
		},
		"/cart": {
			"get": {
				"tags": [
					"Storefront - Cart"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get the current cart",
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"Storefront - Cart"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Empty the cart",
				"produces": [
					"application/json"
				]
			}
		},
		"/cart/items": {
			"post": {
				"tags": [
					"Storefront - Cart"
				],
				"parameters": [
					{
						"name": "item",
						"in": "body",
						"required": true,
						"description": "Product and quantity",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Add a product to the cart",
				"description": "Adds the product or increases its quantity. Name, price and image are snapshotted from the catalog.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/cart/items/{productId}": {
			"delete": {
				"tags": [
					"Storefront - Cart"
				],
				"parameters": [
					{
						"name": "productId",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Remove an item from the cart",
				"produces": [
					"application/json"
				]
			},
			"patch": {
				"tags": [
					"Storefront - Cart"
				],
				"parameters": [
					{
						"name": "productId",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "New quantity",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Set an item's quantity",
				"description": "A quantity of zero or less removes the item.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/categories": {
			"get": {
				"tags": [
					"Storefront - Categories"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get storefront categories",
				"description": "Distinct category labels across all products, alphabetical",
				"produces": [
					"application/json"
				]
			}
		},
		"/collections": {
			"get": {
				"tags": [
					"Storefront - Collections"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "List collections",
				"produces": [
					"application/json"
				]
			}
		},
		"/collections/{slug}": {
			"get": {
				"tags": [
					"Storefront - Collections"
				],
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Collection slug",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get a collection with its products",
				"produces": [
					"application/json"
				]
			}
		},
		"/emails/order-confirmation": {
			"post": {
				"tags": [
					"Storefront - Orders"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Order to confirm",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"502": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Send an order confirmation email",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/orders": {
			"post": {
				"tags": [
					"Storefront - Orders"
				],
				"parameters": [
					{
						"name": "order",
						"in": "body",
						"required": true,
						"description": "Checkout details",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Empty cart, unknown product or invalid body",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Checkout",
				"description": "Creates an order from the request items or, when none are given, from the session cart. Prices come from the catalog. The cart is cleared and a confirmation email is sent; email failure does not fail the order.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/{id}/confirmation": {
			"get": {
				"tags": [
					"Storefront - Orders"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Order ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Order confirmation",
				"description": "Data for the post-checkout confirmation page",
				"produces": [
					"application/json"
				]
			}
		},
		"/products": {
			"get": {
				"tags": [
					"Storefront - Products"
				],
				"parameters": [
					{
						"name": "category",
						"in": "query",
						"required": false,
						"description": "Category label",
						"type": "string"
					},
					{
						"name": "collection",
						"in": "query",
						"required": false,
						"description": "Collection id or slug",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer",
						"default": 1
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer",
						"default": 20
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "List products",
				"description": "Public product listing, filterable by category and collection (id or slug)",
				"produces": [
					"application/json"
				]
			}
		},
		"/products/{id}": {
			"get": {
				"tags": [
					"Storefront - Products"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "Get a product",
				"produces": [
					"application/json"
				]
			}
		},
		"/user/orders": {
			"get": {
				"tags": [
					"Storefront - Orders"
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer",
						"default": 1
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer",
						"default": 20
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object"
						}
					}
				},
				"summary": "My orders",
				"description": "Orders placed with the signed-in customer's email, newest first",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					}
				]
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header",
			"description": "Admin token as \"Bearer <jwt>\"; the admin_token cookie is also accepted"
		},
		"CookieAuth": {
			"type": "apiKey",
			"name": "Cookie",
			"in": "header",
			"description": "Customer session cookie auth_token"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Lumière Storefront API",
	Description:      "Lumière jewelry storefront and back-office API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
