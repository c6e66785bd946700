package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazahq/jaza-backend/services/income"
	"github.com/jazahq/jaza-backend/services/income/mocks"
)

const confirmationBody = `{
	"TransactionType": "Pay Bill",
	"TransID": "RKTQDM7W6S",
	"TransTime": "20260115143022",
	"TransAmount": "1500.00",
	"BusinessShortCode": "600638",
	"BillRefNumber": "account-1",
	"MSISDN": "254712345678",
	"FirstName": "John"
}`

func newCallbackContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/income/payments/confirmation", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeC2BResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestConfirmation_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIncomeUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any()).
		Return(true, nil)

	c, rec := newCallbackContext(confirmationBody)

	require.NoError(t, handler.Confirmation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeC2BResponse(t, rec)
	assert.Equal(t, float64(0), response["ResultCode"])
	assert.Equal(t, "Accepted", response["ResultDesc"])
}

func TestConfirmation_DuplicateStillAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIncomeUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	// Replayed transaction id: no insert, same acknowledgement
	mockUC.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any()).
		Return(false, nil)

	c, rec := newCallbackContext(confirmationBody)

	require.NoError(t, handler.Confirmation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Accepted", decodeC2BResponse(t, rec)["ResultDesc"])
}

func TestConfirmation_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIncomeUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any()).
		Return(false, income.ErrMalformedPayload)

	c, rec := newCallbackContext(`{"TransID": "RKTQDM7W6S"}`)

	require.NoError(t, handler.Confirmation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeC2BResponse(t, rec)
	assert.Equal(t, "C2B00016", response["ResultCode"])
	assert.Equal(t, "Rejected", response["ResultDesc"])
}

func TestConfirmation_UnknownPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIncomeUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any()).
		Return(false, income.ErrUserNotFound)

	c, rec := newCallbackContext(confirmationBody)

	require.NoError(t, handler.Confirmation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rejected", decodeC2BResponse(t, rec)["ResultDesc"])
}

func TestConfirmation_InternalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIncomeUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ConfirmPayment(gomock.Any(), gomock.Any()).
		Return(false, errors.New("connection refused"))

	c, rec := newCallbackContext(confirmationBody)

	// Non-2xx so the provider retries later
	require.NoError(t, handler.Confirmation(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestConfirmation_UnparseableBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPaymentHandler(mocks.NewMockIncomeUC(ctrl))

	c, rec := newCallbackContext(`{not json`)

	require.NoError(t, handler.Confirmation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidate_AlwaysAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPaymentHandler(mocks.NewMockIncomeUC(ctrl))

	c, rec := newCallbackContext(`{"TransID": "whatever"}`)

	require.NoError(t, handler.Validate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Accepted", decodeC2BResponse(t, rec)["ResultDesc"])
}
