package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"

	"github.com/dshills/tdahscreen/internal/bank"
	"github.com/dshills/tdahscreen/internal/scoring"
)

const maxBodyBytes = 1 << 20

type assessRequest struct {
	Responses map[string]string `json:"responses"`
}

type feedbackRequest struct {
	QuestionID int    `json:"question_id"`
	Option     string `json:"option"`
}

type feedbackResponse struct {
	QuestionID int         `json:"question_id"`
	Option     string      `json:"option"`
	Weight     int         `json:"weight"`
	Bucket     bank.Bucket `json:"bucket"`
	Feedback   string      `json:"feedback"`
}

type severityResponse struct {
	Score    float64          `json:"score"`
	Severity scoring.Severity `json:"severity"`
	Label    string           `json:"label"`
}

type descriptionResponse struct {
	Category    bank.Category    `json:"category"`
	Severity    scoring.Severity `json:"severity"`
	Description string           `json:"description"`
}

func (s *Server) HealthFunc(w http.ResponseWriter, r *http.Request) {
	ReturnHTTPMessage(w, r, http.StatusOK, "success", "ok")
}

func (s *Server) ListQuestionsFunc(w http.ResponseWriter, r *http.Request) {
	ReturnHTTPContent(w, r, http.StatusOK, "success", s.engine.Bank().Questions())
	glog.V(2).Infof("listed questions")
}

func (s *Server) GetQuestionFunc(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		ReturnHTTPMessage(w, r, http.StatusBadRequest, "bad request", fmt.Sprintf("invalid question id %q", vars["id"]))
		return
	}

	q, ok := s.engine.Bank().Question(id)
	if !ok {
		ReturnHTTPMessage(w, r, http.StatusNotFound, "not found", fmt.Sprintf("question %d not found", id))
		return
	}
	ReturnHTTPContent(w, r, http.StatusOK, "success", q)
	glog.V(2).Infof("retrieved question %d", id)
}

func (s *Server) AssessFunc(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := scoring.ResponsesFromStrings(req.Responses)
	if err != nil {
		ReturnHTTPMessage(w, r, http.StatusBadRequest, "bad request", err.Error())
		return
	}

	a, err := s.engine.Assess(resp)
	if err != nil {
		returnEngineError(w, r, err)
		return
	}
	ReturnHTTPContent(w, r, http.StatusOK, "success", a)
	glog.V(2).Infof("assessed %d responses", len(resp))
}

func (s *Server) FeedbackFunc(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	q, ok := s.engine.Bank().Question(req.QuestionID)
	if !ok {
		ReturnHTTPMessage(w, r, http.StatusNotFound, "not found", fmt.Sprintf("question %d not found", req.QuestionID))
		return
	}

	weight, err := s.engine.Resolve(q.ID, req.Option)
	if err != nil {
		returnEngineError(w, r, err)
		return
	}
	text, err := s.engine.Feedback(q, req.Option)
	if err != nil {
		returnEngineError(w, r, err)
		return
	}

	ReturnHTTPContent(w, r, http.StatusOK, "success", feedbackResponse{
		QuestionID: q.ID,
		Option:     req.Option,
		Weight:     weight.Value,
		Bucket:     weight.Bucket,
		Feedback:   text,
	})
}

func (s *Server) SeverityFunc(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["score"]
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || score < 0 || score > 100 {
		ReturnHTTPMessage(w, r, http.StatusBadRequest, "bad request", fmt.Sprintf("score %q must be a number between 0 and 100", raw))
		return
	}

	sev := s.engine.SeverityLevel(score)
	ReturnHTTPContent(w, r, http.StatusOK, "success", severityResponse{Score: score, Severity: sev, Label: sev.Label()})
}

func (s *Server) DescriptionFunc(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c := bank.Category(vars["category"])
	sev := scoring.Severity(vars["severity"])
	if !c.Valid() || !sev.Valid() {
		ReturnHTTPMessage(w, r, http.StatusNotFound, "not found", fmt.Sprintf("no description for %s/%s", vars["category"], vars["severity"]))
		return
	}

	text, err := s.engine.Description(c, sev)
	if err != nil {
		returnEngineError(w, r, err)
		return
	}
	ReturnHTTPContent(w, r, http.StatusOK, "success", descriptionResponse{Category: c, Severity: sev, Description: text})
}

func (s *Server) ContentFunc(w http.ResponseWriter, r *http.Request) {
	if s.content == nil {
		ReturnHTTPMessage(w, r, http.StatusNotFound, "not found", "no content configured")
		return
	}
	ReturnHTTPContent(w, r, http.StatusOK, "success", s.content)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		ReturnHTTPMessage(w, r, http.StatusBadRequest, "bad request", fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// returnEngineError maps engine errors to HTTP statuses.
func returnEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var unresolved *scoring.UnresolvedResponseError
	var missingFeedback *scoring.MissingFeedbackError
	var missingDesc *scoring.MissingDescriptionError

	switch {
	case errors.As(err, &unresolved):
		ReturnHTTPMessage(w, r, http.StatusUnprocessableEntity, "unprocessable entity", err.Error())
	case errors.As(err, &missingDesc):
		ReturnHTTPMessage(w, r, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &missingFeedback):
		glog.Errorf("bank is missing feedback: %v", err)
		ReturnHTTPMessage(w, r, http.StatusInternalServerError, "error", err.Error())
	default:
		glog.Errorf("error while scoring: %v", err)
		ReturnHTTPMessage(w, r, http.StatusInternalServerError, "error", "internal error")
	}
}
