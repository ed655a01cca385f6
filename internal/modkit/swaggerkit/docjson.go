//go:build swag

package swaggerkit

import (
	docs "floaty/internal/services/api/docs"
)

// docReader is a seam so tests can inject their own document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
