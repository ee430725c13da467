package jd

// ParseRequest is the body of POST /api/v1/jd/parse.
type ParseRequest struct {
	Text string `json:"text"`
}
