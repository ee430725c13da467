package match

import "github.com/visuscan/visuscan/pkg/kernel"

// Request is the body of POST /api/v1/match: two documents as produced by
// the resume and JD parse endpoints.
type Request struct {
	Resume kernel.Document `json:"resume"`
	JD     kernel.Document `json:"jd"`
}
