package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BoardSvc interface {
	Get(ctx context.Context, id string) (*domain.Board, error)
	List(ctx context.Context) ([]*domain.Board, error)
}

type Handler struct {
	boardService BoardSvc
}

func NewHandler(boardService BoardSvc) *Handler {
	return &Handler{boardService: boardService}
}

func (h *Handler) GetBoard(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid board id"})
		return
	}

	board, err := h.boardService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardResponse(board))
}

func (h *Handler) ListBoards(c *ginext.Context) {
	boards, err := h.boardService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BoardResponse, 0, len(boards))
	for _, b := range boards {
		resp = append(resp, dto.ToBoardResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBoardNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrClaimNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotApproved),
		errors.Is(err, domain.ErrSlotRequested),
		errors.Is(err, domain.ErrDuplicateClaim),
		errors.Is(err, domain.ErrClaimNotPending),
		errors.Is(err, domain.ErrClaimNotApproved),
		errors.Is(err, domain.ErrNoOpenSlots):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
