package chi

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	Query *string `json:"query"`
	TopN  *int    `json:"top_n,omitempty"`
}
