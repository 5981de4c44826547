package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	handlers "github.com/IT22898920/GYM-App-sub004/internal/adapter/handler/http"
	adapter "github.com/IT22898920/GYM-App-sub004/internal/adapter/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/model"
	"github.com/IT22898920/GYM-App-sub004/internal/infrastructure/provider/card"
	"github.com/IT22898920/GYM-App-sub004/internal/infrastructure/storage"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
)

type testEnv struct {
	echo    *echo.Echo
	handler *handlers.MemberHandler
	gymID   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Member{}, &model.Payment{}))

	logger := zap.NewNop()
	members := adapter.NewMemberRepository(db, logger)

	receipts, err := storage.NewLocalReceiptStore(t.TempDir(), logger)
	require.NoError(t, err)

	fees := usecase.PlanFees{"basic": decimal.RequireFromString("29.99")}
	registration := usecase.NewRegistrationService(
		members, receipts, card.NewLocalProcessor(logger), fees, "USD", logger)
	memberService := usecase.NewMemberService(members, logger)

	return &testEnv{
		echo:    echo.New(),
		handler: handlers.NewMemberHandler(registration, memberService, receipts, logger),
		gymID:   uuid.NewString(),
	}
}

func multipartForm(t *testing.T, fields map[string]string, receiptName string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if receiptName != "" {
		part, err := writer.CreateFormFile("receipt", receiptName)
		require.NoError(t, err)
		_, err = part.Write([]byte("receipt bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func (env *testEnv) register(t *testing.T, fields map[string]string, receiptName string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartForm(t, fields, receiptName)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members/register/"+env.gymID, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	c := env.echo.NewContext(req, rec)
	c.SetParamNames("gymId")
	c.SetParamValues(env.gymID)

	require.NoError(t, env.handler.Register(c))
	return rec
}

func baseForm() map[string]string {
	return map[string]string{
		"name":           "Jamie Fernando",
		"email":          "jamie@example.com",
		"phone":          "+94771234567",
		"plan":           "basic",
		"payment_method": "card",
		"card_token":     "tok_visa",
	}
}

func decodeMember(t *testing.T, rec *httptest.ResponseRecorder) entity.Member {
	t.Helper()
	var member entity.Member
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &member))
	return member
}

func TestMemberHandler_Register(t *testing.T) {
	t.Run("card payment activates member", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.register(t, baseForm(), "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		member := decodeMember(t, rec)
		assert.Equal(t, entity.MemberStatusActive, member.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, member.PaymentDetails.PaymentStatus)
	})

	t.Run("declined card leaves member inactive", func(t *testing.T) {
		env := newTestEnv(t)

		form := baseForm()
		form["card_token"] = "tok_declined_visa"
		rec := env.register(t, form, "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		member := decodeMember(t, rec)
		assert.Equal(t, entity.MemberStatusInactive, member.Status)
		assert.Equal(t, entity.PaymentStatusFailed, member.PaymentDetails.PaymentStatus)
	})

	t.Run("bank transfer without receipt is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		form := baseForm()
		form["payment_method"] = "bank_transfer"
		rec := env.register(t, form, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing_receipt")
	})

	t.Run("bank transfer with receipt stays pending", func(t *testing.T) {
		env := newTestEnv(t)

		form := baseForm()
		form["payment_method"] = "bank_transfer"
		rec := env.register(t, form, "slip.pdf")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		member := decodeMember(t, rec)
		assert.Equal(t, entity.MemberStatusInactive, member.Status)
		assert.Equal(t, entity.PaymentStatusPending, member.PaymentDetails.PaymentStatus)
		assert.NotEmpty(t, member.PaymentDetails.ReceiptPath)
	})

	t.Run("unknown payment method is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		form := baseForm()
		form["payment_method"] = "crypto"
		rec := env.register(t, form, "")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown payment method")
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		form := baseForm()
		form["name"] = ""
		rec := env.register(t, form, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "required")
	})
}

func TestMemberHandler_PaymentTransitions(t *testing.T) {
	registerPending := func(t *testing.T, env *testEnv) entity.Member {
		form := baseForm()
		form["payment_method"] = "bank_transfer"
		rec := env.register(t, form, "slip.pdf")
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeMember(t, rec)
	}

	patch := func(t *testing.T, env *testEnv, handler echo.HandlerFunc, memberID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/", nil)
		rec := httptest.NewRecorder()
		c := env.echo.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(memberID)
		require.NoError(t, handler(c))
		return rec
	}

	t.Run("confirm activates pending member", func(t *testing.T) {
		env := newTestEnv(t)
		member := registerPending(t, env)

		rec := patch(t, env, env.handler.ConfirmPayment, member.ID)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decodeMember(t, rec)
		assert.Equal(t, entity.MemberStatusActive, updated.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, updated.PaymentDetails.PaymentStatus)
	})

	t.Run("second confirm conflicts", func(t *testing.T) {
		env := newTestEnv(t)
		member := registerPending(t, env)

		first := patch(t, env, env.handler.ConfirmPayment, member.ID)
		require.Equal(t, http.StatusOK, first.Code)

		second := patch(t, env, env.handler.ConfirmPayment, member.ID)
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("reject after confirm conflicts", func(t *testing.T) {
		env := newTestEnv(t)
		member := registerPending(t, env)

		first := patch(t, env, env.handler.ConfirmPayment, member.ID)
		require.Equal(t, http.StatusOK, first.Code)

		rec := patch(t, env, env.handler.RejectPayment, member.ID)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("reject keeps member inactive", func(t *testing.T) {
		env := newTestEnv(t)
		member := registerPending(t, env)

		rec := patch(t, env, env.handler.RejectPayment, member.ID)

		require.Equal(t, http.StatusOK, rec.Code)
		updated := decodeMember(t, rec)
		assert.Equal(t, entity.MemberStatusInactive, updated.Status)
		assert.Equal(t, entity.PaymentStatusFailed, updated.PaymentDetails.PaymentStatus)
	})

	t.Run("confirm on missing member is not found", func(t *testing.T) {
		env := newTestEnv(t)

		rec := patch(t, env, env.handler.ConfirmPayment, uuid.NewString())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMemberHandler_DownloadReceipt(t *testing.T) {
	env := newTestEnv(t)

	form := baseForm()
	form["payment_method"] = "manual"
	rec := env.register(t, form, "slip.pdf")
	require.Equal(t, http.StatusCreated, rec.Code)
	member := decodeMember(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	dl := httptest.NewRecorder()
	c := env.echo.NewContext(req, dl)
	c.SetParamNames("id")
	c.SetParamValues(member.ID)

	require.NoError(t, env.handler.DownloadReceipt(c))
	require.Equal(t, http.StatusOK, dl.Code)

	content, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	assert.Equal(t, "receipt bytes", string(content))
}
