package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func (s *Server) AddCartItem(c echo.Context) error {
	cmd, err := s.cartItemCommand(c)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) SubCartItem(c echo.Context) error {
	cmd, err := s.cartItemCommand(c)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.SubCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ListCart(c echo.Context) error {
	query, err := queries.NewListCartQuery(customerID(c))
	if err != nil {
		return s.fail(c, err)
	}
	items, err := s.handlers.ListCart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) CleanCart(c echo.Context) error {
	cmd, err := commands.NewCleanCartCommand(customerID(c))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.CleanCart.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) cartItemCommand(c echo.Context) (commands.CartItemCommand, error) {
	var req CartItemRequest
	if err := bind(c, &req); err != nil {
		return commands.CartItemCommand{}, err
	}
	return commands.NewCartItemCommand(customerID(c), req.DishID, req.SetmealID, req.DishFlavor)
}
