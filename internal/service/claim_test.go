package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testBoard() *domain.Board {
	return &domain.Board{
		ID:        "b1",
		GuildID:   "g1",
		ChannelID: "ch1",
		MessageID: "m1",
		Title:     "Friday Convoy",
		Slots: []domain.Slot{
			{Name: "Slot 1", Position: 0, Status: domain.SlotStatusOpen},
			{Name: "Slot 2", Position: 1, Status: domain.SlotStatusOpen},
		},
	}
}

func newClaimService(t *testing.T) (*ClaimService, *mocks.MockClaimRepo, *mocks.MockBoardRepo, *mocks.MockStaffNotifier, *mocks.MockClaimNotifier) {
	t.Helper()
	claimRepo := mocks.NewMockClaimRepo(t)
	boardRepo := mocks.NewMockBoardRepo(t)
	staff := mocks.NewMockStaffNotifier(t)
	notifier := mocks.NewMockClaimNotifier(t)
	log := newTestLogger(t)

	svc := NewClaimService(claimRepo, boardRepo, staff, notifier, 24*time.Hour, log)
	return svc, claimRepo, boardRepo, staff, notifier
}

func TestClaimService_Submit_Success(t *testing.T) {
	svc, claimRepo, boardRepo, staff, _ := newClaimService(t)

	board := testBoard()
	boardRepo.EXPECT().GetByMessage(mock.Anything, "m1").Return(board, nil)
	claimRepo.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil)
	staff.EXPECT().NotifyClaimSubmitted(mock.Anything, mock.Anything, board, "alice").Return()

	claim, err := svc.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: "m1",
		SlotName:  "Slot 1",
		Company:   "NepPath Logistics",
		UserID:    "u1",
		UserName:  "alice",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusPending, claim.Status)
	assert.Equal(t, "b1", claim.BoardID)
	assert.Equal(t, "Slot 1", claim.SlotName)
	assert.NotEmpty(t, claim.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestClaimService_Submit_EmptyCompany(t *testing.T) {
	svc, _, _, _, _ := newClaimService(t)

	_, err := svc.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: "m1",
		SlotName:  "Slot 1",
		UserID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClaimService_Submit_BoardNotFound(t *testing.T) {
	svc, _, boardRepo, _, _ := newClaimService(t)

	boardRepo.EXPECT().GetByMessage(mock.Anything, "gone").Return(nil, domain.ErrBoardNotFound)

	_, err := svc.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: "gone",
		SlotName:  "Slot 1",
		Company:   "NepPath Logistics",
		UserID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBoardNotFound)
}

func TestClaimService_Submit_SlotNotFound(t *testing.T) {
	svc, _, boardRepo, _, _ := newClaimService(t)

	boardRepo.EXPECT().GetByMessage(mock.Anything, "m1").Return(testBoard(), nil)

	_, err := svc.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: "m1",
		SlotName:  "Slot 99",
		Company:   "NepPath Logistics",
		UserID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestClaimService_Submit_SlotAlreadyApproved(t *testing.T) {
	svc, claimRepo, boardRepo, _, _ := newClaimService(t)

	boardRepo.EXPECT().GetByMessage(mock.Anything, "m1").Return(testBoard(), nil)
	claimRepo.EXPECT().Submit(mock.Anything, mock.Anything).Return(domain.ErrSlotApproved)

	_, err := svc.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: "m1",
		SlotName:  "Slot 1",
		Company:   "NepPath Logistics",
		UserID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotApproved)
}

func TestClaimService_Submit_SlotRequestedByOther(t *testing.T) {
	svc, claimRepo, boardRepo, _, _ := newClaimService(t)

	boardRepo.EXPECT().GetByMessage(mock.Anything, "m1").Return(testBoard(), nil)
	claimRepo.EXPECT().Submit(mock.Anything, mock.Anything).Return(domain.ErrSlotRequested)

	_, err := svc.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: "m1",
		SlotName:  "Slot 1",
		Company:   "Rival VTC",
		UserID:    "u2",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotRequested)
}

func TestClaimService_Submit_DuplicateClaim(t *testing.T) {
	svc, claimRepo, boardRepo, _, _ := newClaimService(t)

	boardRepo.EXPECT().GetByMessage(mock.Anything, "m1").Return(testBoard(), nil)
	claimRepo.EXPECT().Submit(mock.Anything, mock.Anything).Return(domain.ErrDuplicateClaim)

	_, err := svc.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: "m1",
		SlotName:  "Slot 1",
		Company:   "NepPath Logistics",
		UserID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateClaim)
}

func TestClaimService_ExpireStale_Success(t *testing.T) {
	svc, claimRepo, boardRepo, _, notifier := newClaimService(t)

	expired := []*domain.Claim{
		{ID: "c1", BoardID: "b1", SlotName: "Slot 1", UserID: "u1", Status: domain.ClaimStatusExpired},
	}
	board := testBoard()

	claimRepo.EXPECT().ExpireStale(mock.Anything, 24*time.Hour).Return(expired, nil)
	boardRepo.EXPECT().GetByID(mock.Anything, "b1").Return(board, nil)
	notifier.EXPECT().NotifyClaimExpired(mock.Anything, expired[0], board).Return()

	result, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestClaimService_ExpireStale_NoneExpired(t *testing.T) {
	svc, claimRepo, _, _, _ := newClaimService(t)

	claimRepo.EXPECT().ExpireStale(mock.Anything, 24*time.Hour).Return(nil, nil)

	result, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClaimService_ExpireStale_RepoError(t *testing.T) {
	svc, claimRepo, _, _, _ := newClaimService(t)

	claimRepo.EXPECT().ExpireStale(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.ExpireStale(context.Background())

	require.Error(t, err)
}
