package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"blackjack-trainer/internal/rng"
	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/playable/blackjack"
	"blackjack-trainer/pkg/room"
)

func newTestServer(t *testing.T, advisor coach.Advisor) (*httptest.Server, *room.PitBoss) {
	t.Helper()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), blackjack.DefaultTableOptions(), rng.Seeded(1), advisor)
	ts := httptest.NewServer(NewMux(logrus.StandardLogger(), "v1.2.3", pitBoss))

	return ts, pitBoss
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertDelete(t *testing.T, ts *httptest.Server, path string, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, nil, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}

func Test_statusCodeForError(t *testing.T) {
	a := assert.New(t)

	a.Equal(http.StatusNotFound, statusCodeForError(blackjack.ErrHandNotFound))
	a.Equal(http.StatusNotFound, statusCodeForError(room.ErrTableNotFound))
	a.Equal(http.StatusNotFound, statusCodeForError(fmt.Errorf("x: %w", coach.ErrNoAdvice)))
	a.Equal(http.StatusConflict, statusCodeForError(blackjack.PhaseError{Want: blackjack.PhaseBetting, Got: blackjack.PhaseSettlement}))
	a.Equal(http.StatusConflict, statusCodeForError(room.ErrShiftEnded))
	a.Equal(http.StatusBadRequest, statusCodeForError(&blackjack.IllegalActionError{Action: blackjack.ActionSplit, Reason: "not a pair"}))
	a.Equal(http.StatusBadRequest, statusCodeForError(&blackjack.InvalidBetError{Bet: 1, Reason: "Must be a whole number."}))
	a.Equal(http.StatusBadRequest, statusCodeForError(userError{errors.New("seat is required")}))
	a.Equal(http.StatusConflict, statusCodeForError(userError{blackjack.ErrEmptyShoe}))
	a.Equal(http.StatusInternalServerError, statusCodeForError(errors.New("boom")))
}

func Test_decodeRequest(t *testing.T) {
	a := assert.New(t)

	var payload postTablePayload

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"level":2}`))
	w := httptest.NewRecorder()
	a.False(decodeRequest(w, r, &payload))
	a.Equal(http.StatusUnsupportedMediaType, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"level":`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	a.False(decodeRequest(w, r, &payload))
	a.Equal(http.StatusBadRequest, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"level":2}`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	a.True(decodeRequest(w, r, &payload))
	a.Equal(2, payload.Level)
}
