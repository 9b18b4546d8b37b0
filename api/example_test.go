package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/katalvlaran/taut/api"
)

// ExampleNew probes the health endpoint without a running listener.
func ExampleNew() {
	s := api.New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	fmt.Print(rec.Body.String())
	// Output:
	// {"status":"healthy","version":"1.0.0"}
}
