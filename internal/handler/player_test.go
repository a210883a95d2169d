package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkorzh/farmbox/internal/database/memory"
	"github.com/dmkorzh/farmbox/internal/handler"
	"github.com/dmkorzh/farmbox/internal/player"
)

func newPlayerHandler(t *testing.T) *handler.PlayerHandler {
	t.Helper()
	handler.InitValidator()
	return handler.NewPlayerHandler(player.NewService(memory.NewFarmRepository()))
}

func TestPlayerHandler_Register(t *testing.T) {
	h := newPlayerHandler(t)

	rec := postJSON(t, h.Register, handler.RegisterRequest{Username: "newcomer"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		PlayerID string `json:"player_id"`
		Snapshot struct {
			Username string `json:"username"`
			Balance  int64  `json:"balance"`
			Water    struct {
				Current int `json:"current"`
			} `json:"water"`
		} `json:"snapshot"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.PlayerID)
	assert.Equal(t, "newcomer", resp.Snapshot.Username)
	assert.Equal(t, int64(10), resp.Snapshot.Balance)
	assert.Equal(t, 30, resp.Snapshot.Water.Current)
}

func TestPlayerHandler_RegisterMissingUsername(t *testing.T) {
	h := newPlayerHandler(t)

	rec := postJSON(t, h.Register, handler.RegisterRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerHandler_GetSnapshot(t *testing.T) {
	h := newPlayerHandler(t)

	rec := postJSON(t, h.Register, handler.RegisterRequest{Username: "viewer"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		PlayerID string `json:"player_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))

	req := httptest.NewRequest(http.MethodGet, "/farm?player_id="+reg.PlayerID, nil)
	snapRec := httptest.NewRecorder()
	h.GetSnapshot(snapRec, req)

	require.Equal(t, http.StatusOK, snapRec.Code)

	var snap struct {
		PlayerID string `json:"player_id"`
		Slots    []any  `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(snapRec.Body.Bytes(), &snap))
	assert.Equal(t, reg.PlayerID, snap.PlayerID)
	assert.Len(t, snap.Slots, 5)
}

func TestPlayerHandler_GetSnapshotMissingParam(t *testing.T) {
	h := newPlayerHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/farm", nil)
	rec := httptest.NewRecorder()
	h.GetSnapshot(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "player_id")
}

func TestPlayerHandler_GetSnapshotUnknownPlayer(t *testing.T) {
	h := newPlayerHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/farm?player_id=7b26f95d-86b7-4a22-b517-3931b3f2b9e4", nil)
	rec := httptest.NewRecorder()
	h.GetSnapshot(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
