package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"handstrength-server/pkg/deck"
	"handstrength-server/pkg/poker"
	"net/http"

	"github.com/sirupsen/logrus"
)

// cardList accepts either "14s,13s,..." or ["14s", "13s", ...]
type cardList []*deck.Card

func (c *cardList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		cards, err := deck.ParseCards(s)
		if err != nil {
			return err
		}

		*c = cards
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return errors.New("cards must be a string or an array of strings")
	}

	cards := make(cardList, len(list))
	for i, s := range list {
		card, err := deck.ParseCard(s)
		if err != nil {
			return err
		}

		cards[i] = card
	}

	*c = cards
	return nil
}

func (c cardList) validate() error {
	if dup := deck.Hand(c).Duplicate(); dup != nil {
		return fmt.Errorf("duplicate card: %s", deck.CardToString(dup))
	}

	return nil
}

type evaluateRequest struct {
	Cards cardList `json:"cards"`
}

type evaluateResponse struct {
	Cards       string      `json:"cards"`
	Category    string      `json:"category"`
	Score       poker.Score `json:"score"`
	Description string      `json:"description"`
}

func (m *Mux) postHandEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if err := req.Cards.validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		h, err := m.evaluator.Analyze(req.Cards)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		score := h.GetScore()
		m.metrics.observeScore(score)

		logger(r).WithFields(logrus.Fields{
			"cards": deck.CardsToString(req.Cards),
			"score": score,
		}).Debug("evaluated hand")

		writeJSON(w, http.StatusOK, evaluateResponse{
			Cards:       deck.CardsToString(req.Cards),
			Category:    h.GetCategory().String(),
			Score:       score,
			Description: h.Describe(),
		})
	}
}

type rankRequest struct {
	Hands []cardList `json:"hands"`
}

type tierResponse struct {
	Score    poker.Score `json:"score"`
	Category string      `json:"category"`
	Hands    []int       `json:"hands"`
}

type rankResponse struct {
	Tiers   []tierResponse `json:"tiers"`
	Winners []int          `json:"winners"`
}

func (m *Mux) postHandRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rankRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if len(req.Hands) == 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("at least one hand is required"))
			return
		}

		if len(req.Hands) > m.config.maxHands {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("too many hands, the maximum is %d", m.config.maxHands))
			return
		}

		hands := make([][]*deck.Card, len(req.Hands))
		for i, hand := range req.Hands {
			if err := hand.validate(); err != nil {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand %d: %w", i, err))
				return
			}

			hands[i] = hand
		}

		tiers, err := m.evaluator.RankHands(hands...)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		resp := rankResponse{
			Tiers:   make([]tierResponse, len(tiers)),
			Winners: poker.Winners(tiers),
		}

		for i, t := range tiers {
			for range t.Hands {
				m.metrics.observeScore(t.Score)
			}

			resp.Tiers[i] = tierResponse{
				Score:    t.Score,
				Category: t.Category.String(),
				Hands:    t.Hands,
			}
		}

		logger(r).WithField("hands", len(hands)).WithField("tiers", len(tiers)).Debug("ranked hands")

		writeJSON(w, http.StatusOK, resp)
	}
}
