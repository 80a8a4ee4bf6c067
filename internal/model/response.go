package model

type FetcherResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type NotifierResponse struct {
	StatusCode int                  `json:"statusCode"`
	Body       NotifierResponseBody `json:"body"`
}

type NotifierResponseBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
