package internal

import (
	"auction-lab/domain"
	"auction-lab/domain/event"
	"auction-lab/errors"
	"auction-lab/mocks"
	"auction-lab/projection"
	"auction-lab/repositories"
	"auction-lab/services"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serverFixture struct {
	server       *httptest.Server
	orchestrator *mocks.MockIOrchestrator
	board        *projection.Board
	entitlements *mocks.MockIEntitlementService
	adminToken   string
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	orchestrator := mocks.NewMockIOrchestrator(ctrl)
	entitlements := mocks.NewMockIEntitlementService(ctrl)
	admin := services.NewAdminService(entitlements, []byte("test-secret"), log)
	token, err := admin.MintToken("test", time.Hour)
	require.NoError(t, err)

	opts := badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	winners := repositories.NewWinnerRepository(db, log)

	board := projection.NewBoard()
	srv := httptest.NewServer(NewServer(log, orchestrator, board, entitlements, admin, winners).Routes())
	t.Cleanup(srv.Close)
	return &serverFixture{server: srv, orchestrator: orchestrator, board: board, entitlements: entitlements, adminToken: token}
}

func (f *serverFixture) post(t *testing.T, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestServer_Health(t *testing.T) {
	req := require.New(t)
	f := newServerFixture(t)

	resp, err := http.Get(f.server.URL + "/health")
	req.NoError(err)
	defer resp.Body.Close()

	req.Equal(http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	req.Equal("ok", string(body))
}

func TestServer_AuctionStart(t *testing.T) {
	t.Run("should default the room and a one minute duration", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.orchestrator.EXPECT().
			StartAuction("default", 60, "").
			Return(domain.RoomSnapshot{RoomID: "default", Running: true}, nil).
			Times(1)

		resp, payload := f.post(t, "/auction/start", `{}`, "")

		req.Equal(http.StatusOK, resp.StatusCode)
		req.Equal(true, payload["ok"])
	})

	t.Run("should surface an invalid duration as a bad request", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.orchestrator.EXPECT().
			StartAuction("demo", -5, "").
			Return(domain.RoomSnapshot{}, errors.ErrInvalidDuration).
			Times(1)

		resp, payload := f.post(t, "/auction/start", `{"room":"demo","durationSec":-5}`, "")

		req.Equal(http.StatusBadRequest, resp.StatusCode)
		req.Equal(false, payload["ok"])
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		resp, _ := f.post(t, "/auction/start", `{"room":`, "")

		req.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Auction(t *testing.T) {
	t.Run("should serve the projected state", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		// The board has seen events for this room; the orchestrator must
		// not be consulted at all.
		err := f.board.Consume(context.Background(), event.AuctionState{
			Room:    "demo",
			Title:   "vintage lamp",
			Running: true,
		})
		req.NoError(err)
		err = f.board.Consume(context.Background(), event.RankingUpdated{
			Room:  "demo",
			Total: 50,
			Top:   []domain.Contributor{{User: "Alice", Total: 50}},
		})
		req.NoError(err)

		resp, err := http.Get(f.server.URL + "/auction?room=demo")
		req.NoError(err)
		defer resp.Body.Close()

		req.Equal(http.StatusOK, resp.StatusCode)
		var snap domain.RoomSnapshot
		req.NoError(json.NewDecoder(resp.Body).Decode(&snap))
		req.Equal("demo", snap.RoomID)
		req.Equal("vintage lamp", snap.Title)
		req.True(snap.Running)
		req.Equal(int64(50), snap.Total)
		req.Len(snap.Top, 1)
		req.Equal("Alice", snap.Top[0].User)
	})

	t.Run("should fall back to a live snapshot before any event", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.orchestrator.EXPECT().
			Snapshot("default").
			Return(domain.RoomSnapshot{RoomID: "default"}, nil).
			Times(1)

		resp, err := http.Get(f.server.URL + "/auction")
		req.NoError(err)
		defer resp.Body.Close()

		req.Equal(http.StatusOK, resp.StatusCode)
	})
}

func TestServer_DebugGift(t *testing.T) {
	t.Run("should default the tester identity and value", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.orchestrator.EXPECT().
			SimulateGift("default", "Tester", "", int64(50)).
			Return([]domain.Contributor{{User: "Tester", Total: 50}}, nil).
			Times(1)

		resp, payload := f.post(t, "/debug/gift", `{}`, "")

		req.Equal(http.StatusOK, resp.StatusCode)
		req.Equal(true, payload["ok"])
		req.NotNil(payload["top"])
	})

	t.Run("should report a closed window as an ignored no-op", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.orchestrator.EXPECT().
			SimulateGift("demo", "Tester", "", int64(50)).
			Return(nil, errors.ErrAuctionEnded).
			Times(1)

		resp, payload := f.post(t, "/debug/gift", `{"room":"demo"}`, "")

		req.Equal(http.StatusOK, resp.StatusCode)
		req.Equal(true, payload["ok"])
		req.Equal(true, payload["ignored"])
		req.Equal("auction-ended", payload["reason"])
	})
}

func TestServer_Verify(t *testing.T) {
	t.Run("should report the remaining entitlement", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.entitlements.EXPECT().
			Verify("key-abc").
			Return(services.VerifyResult{DaysRemaining: 30}, nil).
			Times(1)

		resp, payload := f.post(t, "/entitlement/verify", `{"id":"key-abc"}`, "")

		req.Equal(http.StatusOK, resp.StatusCode)
		req.Equal(true, payload["ok"])
		req.Equal(float64(30), payload["daysRemaining"])
	})

	t.Run("should distinguish unknown from revoked", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.entitlements.EXPECT().Verify("missing").Return(services.VerifyResult{}, errors.ErrGrantNotFound).Times(1)
		resp, _ := f.post(t, "/entitlement/verify", `{"id":"missing"}`, "")
		req.Equal(http.StatusNotFound, resp.StatusCode)

		f.entitlements.EXPECT().Verify("revoked").Return(services.VerifyResult{}, errors.ErrGrantRevoked).Times(1)
		resp, _ = f.post(t, "/entitlement/verify", `{"id":"revoked"}`, "")
		req.Equal(http.StatusForbidden, resp.StatusCode)
	})
}

func TestServer_AdminGrants(t *testing.T) {
	t.Run("should require a bearer token", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		resp, payload := f.post(t, "/admin/grants/revoke", `{"id":"key-abc"}`, "")

		req.Equal(http.StatusUnauthorized, resp.StatusCode)
		req.Equal(false, payload["ok"])
	})

	t.Run("should revoke with a valid token", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.entitlements.EXPECT().
			Revoke("key-abc").
			Return(domain.Grant{ID: "key-abc", Status: domain.GrantRevoked}, nil).
			Times(1)

		resp, payload := f.post(t, "/admin/grants/revoke", `{"id":"key-abc"}`, f.adminToken)

		req.Equal(http.StatusOK, resp.StatusCode)
		req.Equal(true, payload["ok"])
	})

	t.Run("should map a still expired enable to a conflict", func(t *testing.T) {
		req := require.New(t)
		f := newServerFixture(t)

		f.entitlements.EXPECT().
			Enable("key-abc").
			Return(domain.Grant{}, errors.ErrGrantStillExpired).
			Times(1)

		resp, _ := f.post(t, "/admin/grants/enable", `{"id":"key-abc"}`, f.adminToken)

		req.Equal(http.StatusConflict, resp.StatusCode)
	})
}
