package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famgift/exchange-system/internal/core/ports"
)

type AssignmentHandler struct {
	exchange  ports.ExchangeService
	wishLists ports.WishListService
	groups    ports.GroupSource
}

func NewAssignmentHandler(exchange ports.ExchangeService, wishLists ports.WishListService, groups ports.GroupSource) *AssignmentHandler {
	return &AssignmentHandler{exchange: exchange, wishLists: wishLists, groups: groups}
}

// Mine returns the caller's receiver together with that receiver's wish
// list and the group budget. This is the only place a wish list is exposed
// to anyone but its owner, and only to the assigned giver.
//
// @Summary      Get my gift assignment
// @Tags         assignment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  assignmentResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/me/assignment [get]
func (h *AssignmentHandler) Mine(c echo.Context) error {
	username, groupID, err := ctxSession(c)
	if err != nil {
		return err
	}

	group, err := h.groups.GroupByID(groupID)
	if err != nil {
		return err
	}

	receiver, err := h.exchange.Receiver(c.Request().Context(), groupID, username)
	if err != nil {
		return err
	}

	view := participantView{Username: receiver, Name: receiver}
	if p := group.Participant(receiver); p != nil {
		view.Name = p.Name
	}

	items, err := h.wishLists.Get(c.Request().Context(), receiver)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assignmentResponse{
		Receiver: view,
		WishList: items,
		Budget:   group.Budget,
		Currency: group.Currency,
	})
}
