package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/toratita/internal/domain/models"
	"github.com/mamadbah2/toratita/internal/server/handlers"
	"github.com/mamadbah2/toratita/internal/server/router"
	"github.com/mamadbah2/toratita/internal/service/reporting"
)

type stubNotifier struct {
	recorded []*models.Distribution
}

func (n *stubNotifier) DistributionRecorded(d *models.Distribution) {
	n.recorded = append(n.recorded, d)
}

func newTestServer(store *stubStore, notifier handlers.DistributionNotifier) *gin.Engine {
	auth := handlers.NewAuthHandler(store, nil)
	records := handlers.NewRecordsHandler(store, notifier, nil)
	reports := handlers.NewReportsHandler(reporting.NewService(store, nil), nil)
	return router.New(auth, records, reports, nil)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestLoginSuccess(t *testing.T) {
	store := &stubStore{users: []models.User{{Username: "admin", Password: "123"}}}
	engine := newTestServer(store, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "123"})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "admin", body["name"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := &stubStore{users: []models.User{{Username: "admin", Password: "123"}}}
	engine := newTestServer(store, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "wrong"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Credenciales inválidas", body["error"])
}

func TestLoginStoreFailure(t *testing.T) {
	store := &stubStore{err: assert.AnError}
	engine := newTestServer(store, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "123"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body["error"])
}

func TestCreateSellerEchoesFieldsAndStampsRecord(t *testing.T) {
	engine := newTestServer(&stubStore{}, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/sellers", gin.H{"name": "Ana", "phone": "5551234"})

	require.Equal(t, http.StatusCreated, rec.Code)
	var seller models.Seller
	decodeBody(t, rec, &seller)
	assert.Equal(t, "Ana", seller.Name)
	assert.Equal(t, "5551234", seller.Phone)
	assert.False(t, seller.ID.IsZero())
	assert.WithinDuration(t, time.Now(), seller.JoinedAt, 5*time.Second)
}

func TestCreateProduction(t *testing.T) {
	engine := newTestServer(&stubStore{}, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/production", gin.H{
		"panGrandeQty":  120,
		"panPequenoQty": 80,
		"notes":         "horno nuevo",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var prod models.Production
	decodeBody(t, rec, &prod)
	assert.Equal(t, 120, prod.PanGrandeQty)
	assert.Equal(t, 80, prod.PanPequenoQty)
	assert.Equal(t, "horno nuevo", prod.Notes)
	assert.False(t, prod.ID.IsZero())
	assert.WithinDuration(t, time.Now(), prod.Date, 5*time.Second)
}

func TestCreateDistributionNotifiesSeller(t *testing.T) {
	notifier := &stubNotifier{}
	engine := newTestServer(&stubStore{}, notifier)
	sellerID := primitive.NewObjectID()

	rec := doJSON(t, engine, http.MethodPost, "/api/distribution", gin.H{
		"sellerId":       sellerID.Hex(),
		"panGrandeSent":  40,
		"panPequenoSent": 20,
		"totalValue":     95.5,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var dist models.Distribution
	decodeBody(t, rec, &dist)
	require.NotNil(t, dist.SellerID)
	assert.Equal(t, sellerID, *dist.SellerID)
	assert.Equal(t, 95.5, dist.TotalValue)

	require.Len(t, notifier.recorded, 1)
	assert.Equal(t, 40, notifier.recorded[0].PanGrandeSent)
}

func TestCreateDistributionRejectsMalformedSellerID(t *testing.T) {
	engine := newTestServer(&stubStore{}, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/distribution", gin.H{
		"sellerId":      "not-an-object-id",
		"panGrandeSent": 40,
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["error"], "sellerId")
}

func TestCreatePaymentOmitsUnsetOptionalQuantities(t *testing.T) {
	engine := newTestServer(&stubStore{}, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/payments", gin.H{"amount": 50.0})

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, 50.0, body["amount"])
	assert.NotContains(t, body, "panGrandeSold")
	assert.NotContains(t, body, "panPequenoSold")
	assert.NotContains(t, body, "sellerId")
}

func TestListPaymentsEmbedsResolvedSeller(t *testing.T) {
	seller := models.Seller{ID: primitive.NewObjectID(), Name: "Ana", Phone: "5551234", JoinedAt: time.Now()}
	store := &stubStore{
		payments: []models.PaymentView{
			{ID: primitive.NewObjectID(), Date: time.Now(), Seller: &seller, Amount: 50},
			{ID: primitive.NewObjectID(), Date: time.Now(), Seller: nil, Amount: 30},
		},
	}
	engine := newTestServer(store, nil)

	rec := doJSON(t, engine, http.MethodGet, "/api/payments", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	decodeBody(t, rec, &body)
	require.Len(t, body, 2)

	resolved, ok := body[0]["sellerId"].(map[string]any)
	require.True(t, ok, "resolved seller should be embedded under sellerId")
	assert.Equal(t, "Ana", resolved["name"])

	// The dangling reference resolves to null, not a missing key.
	value, present := body[1]["sellerId"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestListExpensesFailure(t *testing.T) {
	engine := newTestServer(&stubStore{err: assert.AnError}, nil)

	rec := doJSON(t, engine, http.MethodGet, "/api/expenses", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body["error"])
}

func TestCreateLoss(t *testing.T) {
	engine := newTestServer(&stubStore{}, nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/losses", gin.H{
		"type":           "Pan Malogrado",
		"quantity":       12.0,
		"estimatedValue": 18.0,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var loss models.Loss
	decodeBody(t, rec, &loss)
	assert.Equal(t, "Pan Malogrado", loss.Type)
	assert.Equal(t, 12.0, loss.Quantity)
	assert.Equal(t, 18.0, loss.EstimatedValue)
}

func TestWeeklyReportEmptyStore(t *testing.T) {
	engine := newTestServer(&stubStore{}, nil)

	rec := doJSON(t, engine, http.MethodGet, "/api/reports/weekly", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"weekIncome":0,"weekExpenses":0,"weekLosses":0}`, rec.Body.String())
}

func TestWeeklyReportSums(t *testing.T) {
	store := &stubStore{income: 150, expenseTotal: 40, lossTotal: 12.5}
	engine := newTestServer(store, nil)

	rec := doJSON(t, engine, http.MethodGet, "/api/reports/weekly", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var report models.WeeklyReport
	decodeBody(t, rec, &report)
	assert.Equal(t, 150.0, report.WeekIncome)
	assert.Equal(t, 40.0, report.WeekExpenses)
	assert.Equal(t, 12.5, report.WeekLosses)

	// The window's lower bound is seven days before the request.
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), store.lastSince, 5*time.Second)
}

func TestWeeklyReportFailure(t *testing.T) {
	engine := newTestServer(&stubStore{err: assert.AnError}, nil)

	rec := doJSON(t, engine, http.MethodGet, "/api/reports/weekly", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body["error"])
}
