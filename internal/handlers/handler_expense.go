package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
	"github.com/gathr-app/gathr_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests for the expense ledger, balances and
// settlements of an event.
type expenseHandler struct {
	expenseService   portssvc.ExpenseSvcFacade
	balancingService portssvc.BalancingSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade, bs portssvc.BalancingSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService:   es,
		balancingService: bs,
	}
}

// registerExpenseRoutes registers the ledger routes. Mutations need the
// caller's access token; the payer of a new expense is the token holder.
func registerExpenseRoutes(
	rg *gin.RouterGroup,
	expenseService portssvc.ExpenseSvcFacade,
	balancingService portssvc.BalancingSvcFacade,
	identityService portssvc.IdentitySvcFacade,
) {
	h := newExpenseHandler(expenseService, balancingService)

	event := rg.Group("/events/:eventID")
	{
		event.GET("/expenses", h.listExpenses)
		event.GET("/expenses/:expenseID", h.getExpense)
		event.GET("/balances", h.listBalances)
		event.GET("/settlements", h.listSettlements)

		authed := event.Group("", middleware.TokenAuth(identityService))
		{
			authed.POST("/expenses", h.createExpense)
			authed.PUT("/expenses/:expenseID", h.updateExpense)
			authed.DELETE("/expenses/:expenseID", h.deleteExpense)
		}
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an expense paid by the token holder, splits it over the listed participants and refreshes settlements
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   X-Auth-Token header string true "Access token of the payer"
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Settlement refresh failed"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /events/{eventID}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	payer, ok := middleware.GetParticipantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), eventID, payer, req)
	if err != nil {
		h.writeLedgerError(c, logger, "Failed to record expense", err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// updateExpense godoc
// @Summary Update an expense
// @Description Rewrites the expense and its share set, then refreshes settlements
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   expenseID path string true "Expense ID"
// @Param   X-Auth-Token header string true "Access token"
// @Param   expense body dto.UpdateExpenseRequest true "Updated expense details"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 409 {object} map[string]string "Settlement refresh failed"
// @Failure 500 {object} map[string]string "Failed to update expense"
// @Router /events/{eventID}/expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	expenseID := c.Param("expenseID")

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), eventID, expenseID, req)
	if err != nil {
		h.writeLedgerError(c, logger, "Failed to update expense", err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Removes the expense and its shares, then refreshes settlements
// @Tags expenses
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   expenseID path string true "Expense ID"
// @Param   X-Auth-Token header string true "Access token"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 409 {object} map[string]string "Settlement refresh failed"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Router /events/{eventID}/expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	expenseID := c.Param("expenseID")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), eventID, expenseID); err != nil {
		h.writeLedgerError(c, logger, "Failed to delete expense", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getExpense godoc
// @Summary Get an expense
// @Description Retrieves an expense with its shares and resolved display names
// @Tags expenses
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseDetailResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to get expense"
// @Router /events/{eventID}/expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	expenseID := c.Param("expenseID")

	resp, err := h.expenseService.GetExpense(c.Request.Context(), eventID, expenseID)
	if err != nil {
		h.writeLedgerError(c, logger, "Failed to get expense", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists the event's expenses with resolved payer names
// @Tags expenses
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /events/{eventID}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), eventID)
	if err != nil {
		h.writeLedgerError(c, logger, "Failed to list expenses", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listBalances godoc
// @Summary List balances
// @Description Derives each participant's net position from the event's current ledger
// @Tags expenses
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /events/{eventID}/balances [get]
func (h *expenseHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	balances, err := h.balancingService.ComputeBalances(c.Request.Context(), eventID)
	if err != nil {
		h.writeLedgerError(c, logger, "Failed to compute balances", err)
		return
	}

	c.JSON(http.StatusOK, dto.ListBalancesResponse{Balances: dto.ToBalanceResponses(balances)})
}

// listSettlements godoc
// @Summary List settlement transfers
// @Description Returns the event's current debtor-to-creditor payment instructions
// @Tags expenses
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ListSettlementsResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to list settlements"
// @Router /events/{eventID}/settlements [get]
func (h *expenseHandler) listSettlements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	transfers, err := h.balancingService.ListSettlements(c.Request.Context(), eventID)
	if err != nil {
		h.writeLedgerError(c, logger, "Failed to list settlements", err)
		return
	}

	c.JSON(http.StatusOK, dto.ListSettlementsResponse{Transfers: dto.ToSettlementTransferResponses(transfers)})
}

// writeLedgerError maps service errors to HTTP statuses for all ledger routes.
func (h *expenseHandler) writeLedgerError(c *gin.Context, logger *slog.Logger, message string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRecomputeFailed):
		logger.Error("Settlement refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Ledger changed but settlement refresh failed, please retry"})
	default:
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
