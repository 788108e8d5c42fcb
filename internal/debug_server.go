package internal

import (
	stderrors "errors"
	"auction-lab/contract"
	"auction-lab/domain"
	"auction-lab/errors"
	"auction-lab/projection"
	"auction-lab/repositories"
	"auction-lab/services"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// Server is the admin/debug HTTP surface: plain JSON handlers for
// auction control, status queries, simulated gifts, entitlement
// verification and the privileged grant endpoints. The production push
// transport lives outside this module.
type Server struct {
	log          *slog.Logger
	orchestrator contract.IOrchestrator
	board        *projection.Board
	entitlements services.IEntitlementService
	admin        *services.AdminService
	winners      *repositories.WinnerRepository
}

func NewServer(
	log *slog.Logger,
	orchestrator contract.IOrchestrator,
	board *projection.Board,
	entitlements services.IEntitlementService,
	admin *services.AdminService,
	winners *repositories.WinnerRepository,
) *Server {
	return &Server{
		log:          log,
		orchestrator: orchestrator,
		board:        board,
		entitlements: entitlements,
		admin:        admin,
		winners:      winners,
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /auction/start", s.handleAuctionStart)
	mux.HandleFunc("POST /auction/adjust", s.handleAuctionAdjust)
	mux.HandleFunc("GET /auction", s.handleAuction)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("POST /user/switch", s.handleSwitch)
	mux.HandleFunc("POST /debug/gift", s.handleDebugGift)
	mux.HandleFunc("GET /winners", s.handleWinners)

	mux.HandleFunc("POST /entitlement/verify", s.handleVerify)

	mux.HandleFunc("POST /admin/grants/create", s.handleGrantCreate)
	mux.HandleFunc("POST /admin/grants/extend", s.handleGrantExtend)
	mux.HandleFunc("POST /admin/grants/revoke", s.grantStatusHandler(s.admin.Revoke))
	mux.HandleFunc("POST /admin/grants/disable", s.grantStatusHandler(s.admin.Disable))
	mux.HandleFunc("POST /admin/grants/enable", s.grantStatusHandler(s.admin.Enable))
	mux.HandleFunc("POST /admin/grants/delete", s.handleGrantDelete)
	mux.HandleFunc("POST /admin/grants/notes", s.handleGrantNotes)
	mux.HandleFunc("GET /admin/grants", s.handleGrantList)
	mux.HandleFunc("GET /admin/grants/stats", s.handleGrantStats)

	return mux
}

func (s *Server) handleAuctionStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Room        string `json:"room"`
		DurationSec int    `json:"durationSec"`
		Title       string `json:"title"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.DurationSec == 0 {
		req.DurationSec = 60
	}
	snapshot, err := s.orchestrator.StartAuction(room(req.Room), req.DurationSec, req.Title)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "auction": snapshot})
}

func (s *Server) handleAuctionAdjust(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Room     string `json:"room"`
		DeltaSec int    `json:"deltaSec"`
	}
	if !decode(w, r, &req) {
		return
	}
	snapshot, err := s.orchestrator.AdjustAuction(room(req.Room), req.DeltaSec)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "auction": snapshot})
}

// handleAuction serves reads from the board projection; the room itself is
// only consulted before any event has been projected for it.
func (s *Server) handleAuction(w http.ResponseWriter, r *http.Request) {
	id := room(r.URL.Query().Get("room"))
	if state, ok := s.board.Latest(id); ok {
		writeJSON(w, http.StatusOK, domain.RoomSnapshot{
			RoomID:  state.Room,
			Title:   state.Title,
			EndsAt:  state.EndsAt,
			Running: state.Running,
			Total:   state.Total,
			Top:     state.Top,
		})
		return
	}
	snapshot, err := s.orchestrator.Snapshot(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.orchestrator.Status(room(r.URL.Query().Get("room")))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleSwitch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Room    string `json:"room"`
		Account string `json:"account"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.orchestrator.SwitchAccount(r.Context(), room(req.Room), strings.TrimSpace(req.Account)); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleDebugGift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Room   string `json:"room"`
		User   string `json:"user"`
		Avatar string `json:"avatar"`
		Value  int64  `json:"value"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.User == "" {
		req.User = "Tester"
	}
	if req.Value == 0 {
		req.Value = 50
	}
	top, err := s.orchestrator.SimulateGift(room(req.Room), req.User, req.Avatar, req.Value)
	if stderrors.Is(err, errors.ErrAuctionEnded) {
		// A closed window makes the gift a no-op, not a failure.
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "ignored": true, "reason": "auction-ended"})
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "top": top})
}

func (s *Server) handleWinners(w http.ResponseWriter, r *http.Request) {
	records, err := s.winners.Recent(20)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if !decode(w, r, &req) {
		return
	}
	result, err := s.entitlements.Verify(req.ID)
	if err != nil {
		writeJSON(w, verifyStatus(err), map[string]any{"ok": false, "reason": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":            true,
		"daysRemaining": result.DaysRemaining,
		"expiresAt":     result.Grant.ExpiresAt,
	})
}

func (s *Server) handleGrantCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Months  int    `json:"months"`
		Count   int    `json:"count"`
		Kind    string `json:"kind"`
		Account string `json:"account"`
	}
	if !decode(w, r, &req) {
		return
	}
	grants, err := s.admin.Create(bearer(r), services.CreateRequest{
		Months:  req.Months,
		Count:   req.Count,
		Kind:    grantKind(req.Kind),
		Account: req.Account,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "grants": grants})
}

func (s *Server) handleGrantExtend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     string `json:"id"`
		Months int    `json:"months"`
	}
	if !decode(w, r, &req) {
		return
	}
	grant, err := s.admin.Extend(bearer(r), req.ID, req.Months)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "grant": grant})
}

func (s *Server) handleGrantDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.admin.Delete(bearer(r), req.ID); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleGrantNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string `json:"id"`
		Notes string `json:"notes"`
	}
	if !decode(w, r, &req) {
		return
	}
	grant, err := s.admin.SetNotes(bearer(r), req.ID, req.Notes)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "grant": grant})
}

func (s *Server) handleGrantList(w http.ResponseWriter, r *http.Request) {
	grants, err := s.admin.List(bearer(r))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grants)
}

func (s *Server) handleGrantStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.admin.Stats(bearer(r))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// grantStatusHandler factors the revoke/disable/enable endpoints, which
// share the token + id request shape.
func (s *Server) grantStatusHandler(op func(token, identifier string) (domain.Grant, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		if !decode(w, r, &req) {
			return
		}
		grant, err := op(bearer(r), req.ID)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "grant": grant})
	}
}

// fail maps sentinel errors to status codes; everything unexpected is a 500.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrGrantNotFound), stderrors.Is(err, errors.ErrRoomNotFound):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidDuration),
		stderrors.Is(err, errors.ErrInvalidValue),
		stderrors.Is(err, errors.ErrMissingAccount):
		status = http.StatusBadRequest
	case stderrors.Is(err, errors.ErrGrantRevoked),
		stderrors.Is(err, errors.ErrGrantDisabled),
		stderrors.Is(err, errors.ErrGrantExpired),
		stderrors.Is(err, errors.ErrGrantStillExpired):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]any{"ok": false, "reason": err.Error()})
}

// verifyStatus keeps the verify endpoint's outcome codes specific:
// unknown, revoked/disabled and expired are distinct results, not one
// generic failure.
func verifyStatus(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGrantNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrGrantRevoked), stderrors.Is(err, errors.ErrGrantDisabled):
		return http.StatusForbidden
	case stderrors.Is(err, errors.ErrGrantExpired):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "reason": "malformed json body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// bearer extracts the administrative credential; an absent header simply
// yields an empty token the validator rejects.
func bearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// room defaults the room selector, so single-room deployments can omit it
// everywhere.
func room(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return "default"
}

func grantKind(kind string) domain.GrantKind {
	if kind == string(domain.KindAccount) {
		return domain.KindAccount
	}
	return domain.KindKey
}
