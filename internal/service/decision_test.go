package service

import (
	"context"
	"testing"
	"time"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDecisionService(t *testing.T) (*DecisionService, *mocks.MockClaimRepo, *mocks.MockBoardRepo, *mocks.MockClaimNotifier, *mocks.MockDecisionMirror) {
	t.Helper()
	claimRepo := mocks.NewMockClaimRepo(t)
	boardRepo := mocks.NewMockBoardRepo(t)
	notifier := mocks.NewMockClaimNotifier(t)
	mirror := mocks.NewMockDecisionMirror(t)
	log := newTestLogger(t)

	svc := NewDecisionService(claimRepo, boardRepo, notifier, mirror, log)
	return svc, claimRepo, boardRepo, notifier, mirror
}

func pendingClaim() *domain.Claim {
	return &domain.Claim{
		ID:       "c1",
		BoardID:  "b1",
		SlotName: "Slot 1",
		UserID:   "u1",
		Company:  "NepPath Logistics",
		Status:   domain.ClaimStatusPending,
	}
}

func approvedClaim() *domain.Claim {
	c := pendingClaim()
	c.Status = domain.ClaimStatusApproved
	return c
}

var staffActor = domain.Actor{ID: "s1", Name: "bob"}

func TestDecisionService_Approve_Success(t *testing.T) {
	svc, claimRepo, boardRepo, notifier, mirror := newDecisionService(t)

	claim := pendingClaim()
	board := testBoard()

	claimRepo.EXPECT().GetByID(mock.Anything, "c1").Return(claim, nil)
	claimRepo.EXPECT().Approve(mock.Anything, "c1").Return(nil)
	boardRepo.EXPECT().GetByID(mock.Anything, "b1").Return(board, nil)
	notifier.EXPECT().NotifyClaimApproved(mock.Anything, claim, board).Return()
	mirror.EXPECT().MirrorDecision(mock.Anything, mock.Anything).Return()

	result, resultBoard, err := svc.Approve(context.Background(), "c1", staffActor)

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusApproved, result.Status)
	assert.Equal(t, "b1", resultBoard.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestDecisionService_Approve_ClaimNotFound(t *testing.T) {
	svc, claimRepo, _, _, _ := newDecisionService(t)

	claimRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClaimNotFound)

	_, _, err := svc.Approve(context.Background(), "missing", staffActor)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}

func TestDecisionService_Approve_AlreadyDecided(t *testing.T) {
	svc, claimRepo, _, _, _ := newDecisionService(t)

	claimRepo.EXPECT().GetByID(mock.Anything, "c1").Return(approvedClaim(), nil)

	_, _, err := svc.Approve(context.Background(), "c1", staffActor)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClaimNotPending)
}

func TestDecisionService_Deny_Success(t *testing.T) {
	svc, claimRepo, boardRepo, notifier, mirror := newDecisionService(t)

	claim := pendingClaim()
	board := testBoard()

	claimRepo.EXPECT().GetByID(mock.Anything, "c1").Return(claim, nil)
	claimRepo.EXPECT().Deny(mock.Anything, "c1").Return(nil)
	boardRepo.EXPECT().GetByID(mock.Anything, "b1").Return(board, nil)
	notifier.EXPECT().NotifyClaimDenied(mock.Anything, claim, board).Return()
	mirror.EXPECT().MirrorDecision(mock.Anything, mock.Anything).Return()

	result, _, err := svc.Deny(context.Background(), "c1", staffActor)

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusDenied, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestDecisionService_Deny_NotPending(t *testing.T) {
	svc, claimRepo, _, _, _ := newDecisionService(t)

	denied := pendingClaim()
	denied.Status = domain.ClaimStatusDenied
	claimRepo.EXPECT().GetByID(mock.Anything, "c1").Return(denied, nil)

	_, _, err := svc.Deny(context.Background(), "c1", staffActor)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClaimNotPending)
}

func TestDecisionService_RemoveApproval_Success(t *testing.T) {
	svc, claimRepo, boardRepo, notifier, mirror := newDecisionService(t)

	claim := approvedClaim()
	board := testBoard()

	claimRepo.EXPECT().GetByID(mock.Anything, "c1").Return(claim, nil)
	claimRepo.EXPECT().RemoveApproval(mock.Anything, "c1").Return(nil)
	boardRepo.EXPECT().GetByID(mock.Anything, "b1").Return(board, nil)
	notifier.EXPECT().NotifyApprovalRevoked(mock.Anything, claim, board).Return()
	mirror.EXPECT().MirrorDecision(mock.Anything, mock.Anything).Return()

	result, _, err := svc.RemoveApproval(context.Background(), "c1", staffActor)

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusRevoked, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestDecisionService_RemoveApproval_NotApproved(t *testing.T) {
	svc, claimRepo, _, _, _ := newDecisionService(t)

	claimRepo.EXPECT().GetByID(mock.Anything, "c1").Return(pendingClaim(), nil)

	_, _, err := svc.RemoveApproval(context.Background(), "c1", staffActor)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClaimNotApproved)
}

func TestDecisionService_Approve_RaceLostToRepo(t *testing.T) {
	svc, claimRepo, _, _, _ := newDecisionService(t)

	// The status check passed but another staff member decided first;
	// the repo transition reports the conflict.
	claimRepo.EXPECT().GetByID(mock.Anything, "c1").Return(pendingClaim(), nil)
	claimRepo.EXPECT().Approve(mock.Anything, "c1").Return(domain.ErrClaimNotPending)

	_, _, err := svc.Approve(context.Background(), "c1", staffActor)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClaimNotPending)
}
