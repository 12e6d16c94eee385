package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"stay/shared/constant"
	"stay/shared/failure"
	"stay/shared/logger"
)

// Error is the body of every failed request. Message is a string, or a list of strings when a
// request broke more than one validation rule.
type Error struct {
	Error   bool `json:"error"`
	Message any  `json:"message"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as the response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty response
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError translates err into an error response. Failures raised on purpose keep their code
// and message. Anything else is logged and hidden behind a generic 500.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure

	if errors.As(err, &fail) && failure.IsExpected(err) {
		response(writer, fail.Code, Error{Error: true, Message: fail.Details()})

		return
	}

	logger.ErrorWithStack(err)

	response(writer, http.StatusInternalServerError, Error{Error: true, Message: failure.MessageUnexpected})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Error: true, Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Error: true, Message: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
