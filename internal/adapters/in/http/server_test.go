package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailorshop/internal/core/domain/model/worker"
)

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestGetOrder_InvalidID(t *testing.T) {
	t.Run("should reject a malformed order id", func(t *testing.T) {
		server := &Server{}
		ctx, rec := newEchoContext(t, http.MethodGet, "/api/v1/orders/not-a-uuid", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("not-a-uuid")

		require.NoError(t, server.GetOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.False(t, envelope.Success)
		assert.Equal(t, "Invalid order id", envelope.Message)
	})
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	t.Run("should reject a body that is not json", func(t *testing.T) {
		server := &Server{}
		ctx, rec := newEchoContext(t, http.MethodPost, "/api/v1/orders", "{not json")

		require.NoError(t, server.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a negative total", func(t *testing.T) {
		server := &Server{}
		body := `{"customerName":"Karim Sheikh","phone":"01811223344","itemName":"Sherwani","quantity":1,"totalAmount":-100}`
		ctx, rec := newEchoContext(t, http.MethodPost, "/api/v1/orders", body)

		require.NoError(t, server.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("should reject a missing customer name", func(t *testing.T) {
		server := &Server{}
		body := `{"phone":"01811223344","itemName":"Sherwani","quantity":1,"totalAmount":1500}`
		ctx, rec := newEchoContext(t, http.MethodPost, "/api/v1/orders", body)

		require.NoError(t, server.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateOrder_InvalidStatus(t *testing.T) {
	t.Run("should reject an unknown status name", func(t *testing.T) {
		server := &Server{}
		ctx, rec := newEchoContext(t, http.MethodPut, "/api/v1/orders/x", `{"status":"Ironing"}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues("3f6eafd9-3d50-4e61-b3f4-18cd4b1b4a7a")

		require.NoError(t, server.UpdateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignWorker_InvalidWorkerID(t *testing.T) {
	t.Run("should reject a malformed worker id", func(t *testing.T) {
		server := &Server{}
		ctx, rec := newEchoContext(t, http.MethodPost, "/api/v1/orders/x/worker", `{"workerId":"nope"}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues("3f6eafd9-3d50-4e61-b3f4-18cd4b1b4a7a")

		require.NoError(t, server.AssignWorker(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid worker id", decodeEnvelope(t, rec).Message)
	})
}

func TestReport_InvalidType(t *testing.T) {
	t.Run("should reject an unsupported report type", func(t *testing.T) {
		server := &Server{}
		body := `{"type":"profit-loss","startDate":"2025-01-01T00:00:00Z","endDate":"2025-02-01T00:00:00Z"}`
		ctx, rec := newEchoContext(t, http.MethodPost, "/api/v1/reports", body)

		require.NoError(t, server.Report(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a non json format", func(t *testing.T) {
		server := &Server{}
		body := `{"type":"sales","format":"pdf","startDate":"2025-01-01T00:00:00Z","endDate":"2025-02-01T00:00:00Z"}`
		ctx, rec := newEchoContext(t, http.MethodPost, "/api/v1/reports", body)

		require.NoError(t, server.Report(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Run("should report healthy", func(t *testing.T) {
		server := &Server{}
		ctx, rec := newEchoContext(t, http.MethodGet, "/health", "")

		require.NoError(t, server.Health(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)
		assert.Equal(t, "healthy", envelope.Message)
	})
}

func TestParseTimeParam(t *testing.T) {
	t.Run("should treat an empty value as absent", func(t *testing.T) {
		parsed, err := parseTimeParam("")
		require.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("should accept a plain date", func(t *testing.T) {
		parsed, err := parseTimeParam("2025-11-20")
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), *parsed)
	})

	t.Run("should accept an rfc3339 timestamp", func(t *testing.T) {
		parsed, err := parseTimeParam("2025-11-20T09:30:00Z")
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, 9, parsed.Hour())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := parseTimeParam("next tuesday")
		assert.Error(t, err)
	})
}

func TestSortDescending(t *testing.T) {
	t.Run("should accept asc in any casing", func(t *testing.T) {
		assert.False(t, sortDescending("asc"))
		assert.False(t, sortDescending("ASC"))
		assert.False(t, sortDescending("Asc"))
	})

	t.Run("should default to descending", func(t *testing.T) {
		assert.True(t, sortDescending(""))
		assert.True(t, sortDescending("desc"))
		assert.True(t, sortDescending("newest"))
	})
}

func TestUpdateOrderRequest_Payment(t *testing.T) {
	t.Run("should pick up flat payment fields", func(t *testing.T) {
		body := `{"status":"Ready","paymentAmount":200,"paymentMethod":"cash","transactionId":"TXN-42","collectedBy":"Salma"}`
		var req UpdateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		pay := req.payment()
		require.NotNil(t, pay)
		assert.Equal(t, "200", pay.Amount.String())
		assert.Equal(t, "cash", pay.Method)
		assert.Equal(t, "TXN-42", pay.TransactionID)
		assert.Equal(t, "Salma", pay.CollectedBy)

		input, err := pay.toInput()
		require.NoError(t, err)
		assert.Equal(t, "200", input.Amount.Amount().String())
	})

	t.Run("should prefer the nested payment object", func(t *testing.T) {
		body := `{"paymentAmount":200,"payment":{"amount":350,"method":"bkash"}}`
		var req UpdateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		pay := req.payment()
		require.NotNil(t, pay)
		assert.Equal(t, "350", pay.Amount.String())
		assert.Equal(t, "bkash", pay.Method)
	})

	t.Run("should return nil when no payment was sent", func(t *testing.T) {
		var req UpdateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(`{"status":"Ready"}`), &req))
		assert.Nil(t, req.payment())
	})
}

func TestCreateWorkerRequest_ToDetails(t *testing.T) {
	t.Run("should convert a full request", func(t *testing.T) {
		req := CreateWorkerRequest{
			Name:        "Rafiq Mia",
			Phone:       "01911223344",
			WorkType:    "Cutting",
			RatePerWork: decimal.NewFromInt(120),
			RateType:    "per_piece",
		}

		details, err := req.toDetails()
		require.NoError(t, err)
		assert.Equal(t, worker.WorkTypeCutting, details.WorkType)
		assert.Equal(t, worker.RatePerPiece, details.RateType)
		assert.Equal(t, "120", details.RatePerWork.String())
		assert.False(t, details.JoinDate.IsZero())
	})

	t.Run("should reject an unknown work type", func(t *testing.T) {
		req := CreateWorkerRequest{
			Name:        "Rafiq Mia",
			WorkType:    "welding",
			RatePerWork: decimal.NewFromInt(120),
			RateType:    "per_piece",
		}

		_, err := req.toDetails()
		assert.Error(t, err)
	})
}
