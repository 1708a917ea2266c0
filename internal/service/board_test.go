package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBoardService_Create_Success(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	board, err := svc.Create(context.Background(), domain.CreateBoardInput{
		GuildID:   "g1",
		ChannelID: "ch1",
		Title:     "Friday Convoy",
		SlotNames: []string{"Slot 1", "Slot 2", "Slot 3"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, board.ID)
	assert.Equal(t, "Friday Convoy", board.Title)
	assert.Len(t, board.Slots, 3)
	for i, s := range board.Slots {
		assert.Equal(t, domain.SlotStatusOpen, s.Status)
		assert.Equal(t, i, s.Position)
	}
}

func TestBoardService_Create_EmptyTitle(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	_, err := svc.Create(context.Background(), domain.CreateBoardInput{
		GuildID:   "g1",
		ChannelID: "ch1",
		SlotNames: []string{"Slot 1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBoardService_Create_NoSlots(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	_, err := svc.Create(context.Background(), domain.CreateBoardInput{
		GuildID:   "g1",
		ChannelID: "ch1",
		Title:     "Friday Convoy",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBoardService_Create_TooManySlots(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	names := make([]string, maxSlotsPerBoard+1)
	for i := range names {
		names[i] = fmt.Sprintf("Slot %d", i+1)
	}

	_, err := svc.Create(context.Background(), domain.CreateBoardInput{
		GuildID:   "g1",
		ChannelID: "ch1",
		Title:     "Mega Convoy",
		SlotNames: names,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBoardService_Create_DuplicateSlotNames(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	_, err := svc.Create(context.Background(), domain.CreateBoardInput{
		GuildID:   "g1",
		ChannelID: "ch1",
		Title:     "Friday Convoy",
		SlotNames: []string{"Slot 1", "Slot 1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBoardService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), domain.CreateBoardInput{
		GuildID:   "g1",
		ChannelID: "ch1",
		Title:     "Friday Convoy",
		SlotNames: []string{"Slot 1"},
	})

	require.Error(t, err)
}

func TestBoardService_AttachMessage_Success(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	repo.EXPECT().AttachMessage(mock.Anything, "b1", "m1").Return(nil)

	err := svc.AttachMessage(context.Background(), "b1", "m1")

	require.NoError(t, err)
}

func TestBoardService_AttachMessage_EmptyMessageID(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	err := svc.AttachMessage(context.Background(), "b1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBoardService_AttachMessage_BoardNotFound(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	repo.EXPECT().AttachMessage(mock.Anything, "missing", "m1").Return(domain.ErrBoardNotFound)

	err := svc.AttachMessage(context.Background(), "missing", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBoardNotFound)
}

func TestBoardService_GetByMessage_Success(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	board := &domain.Board{ID: "b1", MessageID: "m1"}
	repo.EXPECT().GetByMessage(mock.Anything, "m1").Return(board, nil)

	result, err := svc.GetByMessage(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, "b1", result.ID)
}

func TestBoardService_List_Success(t *testing.T) {
	repo := mocks.NewMockBoardRepo(t)
	log := newTestLogger(t)

	svc := NewBoardService(repo, log)

	boards := []*domain.Board{{ID: "b1"}, {ID: "b2"}}
	repo.EXPECT().List(mock.Anything).Return(boards, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
