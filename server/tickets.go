package server

import (
	"net/http"

	"github.com/existflow/ticketr/internal/model"
	"github.com/labstack/echo/v4"
)

var errTicketNotFound = map[string]string{"error": "Ticket not found"}

func (s *Server) handleListTickets(c echo.Context) error {
	all, err := s.tickets.All(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	if status := c.QueryParam("status"); status != "" {
		filtered := make([]model.Ticket, 0, len(all))
		for _, t := range all {
			if string(t.Status) == status {
				filtered = append(filtered, t)
			}
		}
		all = filtered
	}

	return c.JSON(http.StatusOK, all)
}

func (s *Server) handleCreateTicket(c echo.Context) error {
	var in model.TicketInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	t, err := s.tickets.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// handleGetTicket treats a non-numeric id like an unknown one
func (s *Server) handleGetTicket(c echo.Context) error {
	id, ok := model.ParseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errTicketNotFound)
	}

	t, err := s.tickets.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if t == nil {
		return c.JSON(http.StatusNotFound, errTicketNotFound)
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) handleUpdateTicket(c echo.Context) error {
	var in model.TicketInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	id, ok := model.ParseID(c.Param("id"))
	if !ok {
		// validation still wins over the missing ticket
		if err := in.Validate(); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusNotFound, errTicketNotFound)
	}

	t, err := s.tickets.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// handleDeleteTicket succeeds for unknown ids
func (s *Server) handleDeleteTicket(c echo.Context) error {
	id, ok := model.ParseID(c.Param("id"))
	if ok {
		if err := s.tickets.Delete(c.Request().Context(), id); err != nil {
			return respondError(c, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleStats(c echo.Context) error {
	stats, err := s.tickets.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
