package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/playable/blackjack"
	"blackjack-trainer/pkg/room"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// statusCodeForError maps round and table errors to a status code
func statusCodeForError(err error) int {
	switch {
	case errors.Is(err, blackjack.ErrHandNotFound),
		errors.Is(err, room.ErrTableNotFound),
		errors.Is(err, coach.ErrNoAdvice):
		return http.StatusNotFound
	case errors.Is(err, blackjack.ErrWrongPhase),
		errors.Is(err, blackjack.ErrDealerNotFinished),
		errors.Is(err, blackjack.ErrEmptyShoe),
		errors.Is(err, room.ErrShiftEnded):
		return http.StatusConflict
	case errors.Is(err, blackjack.ErrIllegalAction),
		errors.Is(err, blackjack.ErrInvalidBet),
		errors.Is(err, blackjack.ErrNoSeats),
		errors.Is(err, blackjack.ErrDuplicateSeat):
		return http.StatusBadRequest
	}

	var ue userError
	if errors.As(err, &ue) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// userError is an error caused by the request payload
type userError struct {
	error
}

func (u userError) Unwrap() error {
	return u.error
}

func writeError(w http.ResponseWriter, err error) {
	writeJSONError(w, statusCodeForError(err), err)
}
