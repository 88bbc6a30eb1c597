package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/poolup/backend/internal/middleware"
	"github.com/poolup/backend/internal/models"
	"github.com/poolup/backend/internal/service"
)

// createPoolRequest mirrors the client payload. totalAmount is decoded
// straight into a decimal so the literal survives without a float round-trip.
type createPoolRequest struct {
	Title          string          `json:"title"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ParticipantIDs []string        `json:"participantIds"`
	IncludeCreator bool            `json:"includeCreator"`
	ChatID         string          `json:"chatId"`
	IsGroupChat    bool            `json:"isGroupChat"`
}

func (s *Server) handleCreatePool(w http.ResponseWriter, r *http.Request) {
	var req createPoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	pool, err := s.pools.CreatePool(r.Context(), middleware.GetUserID(r.Context()), service.CreatePoolParams{
		Title:           req.Title,
		TotalAmount:     req.TotalAmount,
		ParticipantIDs:  req.ParticipantIDs,
		CreatorIncluded: req.IncludeCreator,
		ChatID:          req.ChatID,
		GroupChat:       req.IsGroupChat,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, pool)
}

type updateStatusRequest struct {
	PoolID string        `json:"poolId"`
	Action models.Action `json:"action"`
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.PoolID == "" {
		writeBadRequest(w, "poolId is required")
		return
	}

	pool, err := s.pools.Transition(r.Context(), middleware.GetUserID(r.Context()), req.PoolID, req.Action)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pool)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.pools.Dashboard(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

func (s *Server) handleFriendBalance(w http.ResponseWriter, r *http.Request) {
	friendID := r.PathValue("friendID")
	if friendID == "" {
		writeBadRequest(w, "friend id is required")
		return
	}

	balance, err := s.pools.FriendBalance(r.Context(), middleware.GetUserID(r.Context()), friendID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

func (s *Server) handleGetPool(w http.ResponseWriter, r *http.Request) {
	pool, err := s.pools.GetPool(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("poolID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pool)
}
