package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Product Service API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-delete { color: #f93e3e; }
    </style>
</head>
<body>
    <h1>Product Service API</h1>

    <h2>Products</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/products">/api/products</a></code> - List all products in creation order.</li>
        <li><span class="method method-get">GET</span> <code>/api/products/{id}</code> - Retrieve one product. 404 if unknown.</li>
        <li><span class="method method-post">POST</span> <code>/api/products</code> - Create a product. Body: <code>{"sku": "string", "description": "string", "price": number}</code>. SKU is required and price must be greater than 0.</li>
        <li><span class="method method-put">PUT</span> <code>/api/products/{id}</code> - Replace SKU, description and price. Same body and rules as create.</li>
        <li><span class="method method-delete">DELETE</span> <code>/api/products/{id}</code> - Delete a product. 404 if unknown.</li>
    </ul>

    <h2>Operations</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/health">/health</a></code> - Liveness check.</li>
        <li><span class="method method-get">GET</span> <code><a href="/metrics">/metrics</a></code> - Prometheus metrics, when enabled.</li>
    </ul>
</body>
</html>
`

func serveIndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPageContent))
}

func serveHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
