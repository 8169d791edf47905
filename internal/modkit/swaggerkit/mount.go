// Package swaggerkit mounts Swagger UI and the JSON spec the API serves
package swaggerkit

import (
	"net/http"

	phttp "github.com/promptandpause/promptandpause-sub003/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Doc is what a registered swag spec offers
type Doc interface {
	ReadDoc() string
}

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool, doc Doc) {
	if !enabled || doc == nil {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(doc))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
