package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/handler/dto"
	hmocks "github.com/neppath/convoybot/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBoardSvc, http.Handler) {
	t.Helper()
	boardSvc := hmocks.NewMockBoardSvc(t)

	h := NewHandler(boardSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/boards", h.ListBoards)
		api.GET("/boards/:id", h.GetBoard)
	}

	return boardSvc, r
}

func sampleBoard(id string) *domain.Board {
	return &domain.Board{
		ID:        id,
		GuildID:   "g1",
		ChannelID: "ch1",
		MessageID: "m1",
		Title:     "Friday Convoy",
		Slots: []domain.Slot{
			{Name: "Slot 1", Position: 0, Status: domain.SlotStatusApproved, ClaimantID: "u1", Company: "FastFreight"},
			{Name: "Slot 2", Position: 1, Status: domain.SlotStatusOpen},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestHandler_GetBoard_Success(t *testing.T) {
	boardSvc, r := setupRouter(t)

	id := uuid.New().String()
	boardSvc.EXPECT().Get(mock.Anything, id).Return(sampleBoard(id), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/boards/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "Friday Convoy", resp.Title)
	assert.Equal(t, 1, resp.Approved)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "approved", resp.Slots[0].Status)
}

func TestHandler_GetBoard_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/boards/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBoard_NotFound(t *testing.T) {
	boardSvc, r := setupRouter(t)

	id := uuid.New().String()
	boardSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBoardNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/boards/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBoards_Success(t *testing.T) {
	boardSvc, r := setupRouter(t)

	boards := []*domain.Board{
		sampleBoard(uuid.New().String()),
		sampleBoard(uuid.New().String()),
	}
	boardSvc.EXPECT().List(mock.Anything).Return(boards, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListBoards_Empty(t *testing.T) {
	boardSvc, r := setupRouter(t)

	boardSvc.EXPECT().List(mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"slot requested", domain.ErrSlotRequested, http.StatusConflict},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"upstream", domain.ErrUpstream, http.StatusBadGateway},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			boardSvc, r := setupRouter(t)

			id := uuid.New().String()
			boardSvc.EXPECT().Get(mock.Anything, id).Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/api/boards/"+id, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}
