package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famgift/exchange-system/internal/core/ports"
)

type WishListHandler struct {
	wishLists ports.WishListService
}

func NewWishListHandler(wishLists ports.WishListService) *WishListHandler {
	return &WishListHandler{wishLists: wishLists}
}

// Mine returns the caller's own wish list.
//
// @Summary      Get my wish list
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  wishListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/wishlist [get]
func (h *WishListHandler) Mine(c echo.Context) error {
	username, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	items, err := h.wishLists.Get(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wishListResponse{Items: items})
}

// Replace overwrites the caller's wish list with the posted items. Item
// removal is "post the list again without it"; items carry no identity.
//
// @Summary      Replace my wish list
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      wishListRequest  true  "Full wish list"
// @Success      200   {object}  wishListResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me/wishlist [put]
func (h *WishListHandler) Replace(c echo.Context) error {
	username, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req wishListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.wishLists.Set(c.Request().Context(), username, req.Items); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wishListResponse{Items: req.Items})
}
