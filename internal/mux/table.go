package mux

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"

	"blackjack-trainer/pkg/coach"
	"blackjack-trainer/pkg/playable"
	"blackjack-trainer/pkg/playable/blackjack"
)

type tableSummary struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Clients   int       `json:"clients"`
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealers := m.pitBoss.Tables()
		tables := make([]tableSummary, len(dealers))
		for i, dealer := range dealers {
			tables[i] = tableSummary{
				UUID:      dealer.UUID,
				Name:      dealer.Name,
				CreatedAt: dealer.CreatedAt,
				Clients:   len(dealer.Clients()),
			}
		}

		writeJSON(w, http.StatusOK, tables)
	}
}

type postTablePayload struct {
	Level        int                    `json:"level"`
	Seats        int                    `json:"seats"`
	PayoutConfig blackjack.PayoutConfig `json:"payoutConfig"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if r.ContentLength != 0 && !decodeRequest(w, r, &pp) {
			return
		}

		opts := m.pitBoss.Options()
		if pp.Level != 0 {
			opts.Level = blackjack.Level(pp.Level)
		}

		if pp.Seats != 0 {
			opts.Setup.Seats = pp.Seats
		}

		if pp.PayoutConfig != "" {
			opts.Setup.PayoutConfig = pp.PayoutConfig
		}

		dealer, err := m.pitBoss.OpenTable(&opts)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, tableSummary{
			UUID:      dealer.UUID,
			Name:      dealer.Name,
			CreatedAt: dealer.CreatedAt,
		})
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state *playable.Response
		err := dealerFromContext(r).Do(r.Context(), func(table *blackjack.Table) error {
			var err error
			state, err = table.GetState()
			return err
		})

		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) deleteTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.pitBoss.CloseTable(dealerFromContext(r).UUID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type actionResponse struct {
	*playable.Response
	Feedback *coach.Feedback `json:"feedback,omitempty"`
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload playable.PayloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		dealer := dealerFromContext(r)

		var res *playable.Response
		var view *blackjack.AdvisorView
		action, actionErr := blackjack.ActionFromString(payload.Subject)
		err := dealer.Do(r.Context(), func(table *blackjack.Table) error {
			// the view must be captured before the action changes the round
			if actionErr == nil {
				hand, _ := payload.AdditionalData.GetString("hand")
				if id, err := blackjack.ParseHandID(hand); err == nil {
					view, _ = table.Round().AdvisorView(id)
				}
			}

			var err error
			res, _, err = table.Action(&payload)
			if err != nil {
				return userError{err}
			}

			return nil
		})

		if err != nil {
			writeError(w, err)
			return
		}

		resp := actionResponse{Response: res}
		if view != nil {
			feedback, err := dealer.Coach().Review(r.Context(), view, action)
			if err != nil {
				m.logger.WithError(err).WithField("table", dealer.UUID).Warn("could not review decision")
			}

			resp.Feedback = feedback
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) getTableUUIDAdvice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blackjack.ParseHandID(gmux.Vars(r)["hand"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer := dealerFromContext(r)

		var view *blackjack.AdvisorView
		err = dealer.Do(r.Context(), func(table *blackjack.Table) error {
			var err error
			view, err = table.Round().AdvisorView(id)
			return err
		})

		if err != nil {
			writeError(w, err)
			return
		}

		advice, err := dealer.Coach().Advise(r.Context(), view)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, advice)
	}
}

type statsResponse struct {
	coach.Stats
	Accuracy float64 `json:"accuracy"`
}

func (m *Mux) getTableUUIDStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := dealerFromContext(r).Coach().Stats()
		writeJSON(w, http.StatusOK, statsResponse{
			Stats:    stats,
			Accuracy: stats.Accuracy(),
		})
	}
}

func (m *Mux) deleteTableUUIDStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealerFromContext(r).Coach().Reset()
		w.WriteHeader(http.StatusNoContent)
	}
}
