package dto

import (
	"net/http"
	"stay/shared/constant"
	"strconv"
)

type QueryParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// FromRequest populates QueryParams from the HTTP request.
// Absent parameters fall back to the given defaults. Present parameters that are not integers
// are stored as zero so the service rejects them as invalid.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, constant.DefaultValuePage, constant.DefaultValueLimit)
func (q *QueryParams) FromRequest(r *http.Request, defaultPage, defaultLimit int) {
	queryParams := r.URL.Query()

	q.Page = parseInt(queryParams.Get(constant.RequestParamPage), defaultPage)
	q.Limit = parseInt(queryParams.Get(constant.RequestParamLimit), defaultLimit)
}

// Offset returns the number of documents to skip for the current page.
func (q QueryParams) Offset() int {
	if q.Page < 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return parsed
}
