package http

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/middleware/auth"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
)

// maxReceiptSize caps uploaded proof-of-payment files at 10 MiB.
const maxReceiptSize = 10 << 20

type MemberHandler struct {
	registration *usecase.RegistrationService
	members      *usecase.MemberService
	receipts     repository.ReceiptStore
	logger       *zap.Logger
}

func NewMemberHandler(
	registration *usecase.RegistrationService,
	members *usecase.MemberService,
	receipts repository.ReceiptStore,
	logger *zap.Logger,
) *MemberHandler {
	return &MemberHandler{
		registration: registration,
		members:      members,
		receipts:     receipts,
		logger:       logger,
	}
}

// Register handles the public multipart registration form for a gym.
func (h *MemberHandler) Register(c echo.Context) error {
	gymID := c.Param("gymId")

	input := usecase.RegistrationInput{
		Name:          c.FormValue("name"),
		Email:         c.FormValue("email"),
		Phone:         c.FormValue("phone"),
		Plan:          c.FormValue("plan"),
		PaymentMethod: c.FormValue("payment_method"),
		CardToken:     c.FormValue("card_token"),
	}

	if fileHeader, err := c.FormFile("receipt"); err == nil {
		if fileHeader.Size > maxReceiptSize {
			return c.JSON(http.StatusRequestEntityTooLarge, errorBody{
				Error: "receipt exceeds maximum size",
			})
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Error("Failed to open uploaded receipt", zap.Error(err))
			return c.JSON(http.StatusBadRequest, errorBody{Error: "unreadable receipt upload"})
		}
		defer file.Close()

		input.Receipt = &entity.ReceiptAttachment{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Content:  file,
		}
	}

	app, err := h.registration.Intake(input)
	if err != nil {
		return writeError(c, err)
	}

	member, err := h.registration.Register(c.Request().Context(), gymID, app)
	if err != nil {
		h.logger.Error("Registration failed",
			zap.String("gym_id", gymID),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, member)
}

// List returns the members of the caller's gym, optionally filtered by
// status.
func (h *MemberHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var status entity.MemberStatus
	if raw := c.QueryParam("status"); raw != "" {
		status = entity.MemberStatus(raw)
		if status != entity.MemberStatusActive && status != entity.MemberStatusInactive {
			return c.JSON(http.StatusBadRequest, errorBody{
				Error:  "validation failed",
				Field:  "status",
				Reason: dErrors.ReasonUnknownValue,
			})
		}
	}

	members, err := h.members.List(c.Request().Context(), user.GymID, status, paginationFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, members)
}

// ListPending returns members awaiting payment verification, oldest
// application first.
func (h *MemberHandler) ListPending(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	members, err := h.members.ListPending(c.Request().Context(), user.GymID, paginationFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.members.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

// ConfirmPayment marks a pending payment verified and activates the
// member.
func (h *MemberHandler) ConfirmPayment(c echo.Context) error {
	id := c.Param("id")

	member, err := h.members.ConfirmPayment(c.Request().Context(), id)
	if err != nil {
		h.logger.Warn("Payment confirmation failed",
			zap.String("member_id", id),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, member)
}

// RejectPayment marks a pending payment failed. The member stays
// inactive.
func (h *MemberHandler) RejectPayment(c echo.Context) error {
	id := c.Param("id")

	member, err := h.members.RejectPayment(c.Request().Context(), id)
	if err != nil {
		h.logger.Warn("Payment rejection failed",
			zap.String("member_id", id),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, member)
}

// DownloadReceipt streams the member's stored proof-of-payment file.
func (h *MemberHandler) DownloadReceipt(c echo.Context) error {
	member, err := h.members.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if member.PaymentDetails.ReceiptPath == "" {
		return writeError(c, dErrors.ErrReceiptNotFound)
	}

	file, err := h.receipts.Open(c.Request().Context(), member.PaymentDetails.ReceiptPath)
	if err != nil {
		return writeError(c, err)
	}
	defer file.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		"attachment; filename="+strconv.Quote(filepath.Base(member.PaymentDetails.ReceiptPath)))
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, file)
}

// paginationFromQuery reads limit/offset query params, falling back to
// defaults on absent or malformed values.
func paginationFromQuery(c echo.Context) entity.PaginationParams {
	p := entity.PaginationParams{}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.Limit = v
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.Offset = v
		}
	}
	return p
}
