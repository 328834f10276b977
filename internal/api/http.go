package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/golang/glog"
)

// HTTPMessage is the envelope for every error and plain status reply.
type HTTPMessage struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HTTPContent is the envelope for successful replies carrying a payload.
type HTTPContent struct {
	Type    string          `json:"type"`
	Status  string          `json:"status"`
	Content json.RawMessage `json:"content"`
}

func ReturnHTTPMessage(w http.ResponseWriter, r *http.Request, httpStatus int, messageType string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	msg := HTTPMessage{
		Status:  strconv.Itoa(httpStatus),
		Message: message,
		Type:    messageType,
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		glog.Errorf("error writing response for %s: %v", r.URL.Path, err)
	}
}

// ReturnHTTPContent marshals v and writes it inside an HTTPContent envelope.
func ReturnHTTPContent(w http.ResponseWriter, r *http.Request, httpStatus int, messageType string, v any) {
	encoded, err := json.Marshal(v)
	if err != nil {
		glog.Errorf("error encoding content for %s: %v", r.URL.Path, err)
		ReturnHTTPMessage(w, r, http.StatusInternalServerError, "error", "could not encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	msg := HTTPContent{
		Status:  strconv.Itoa(httpStatus),
		Content: encoded,
		Type:    messageType,
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		glog.Errorf("error writing response for %s: %v", r.URL.Path, err)
	}
}
