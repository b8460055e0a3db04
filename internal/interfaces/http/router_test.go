package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dashboard"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/invoice-dashboard/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

const existingInvoiceID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

type memInvoices struct {
	mu        sync.Mutex
	rows      []*entity.InvoiceWithCustomer
	inserted  []entity.Invoice
	updated   []entity.Invoice
	failWith  error
	afterList func() // se llama tras leer las filas, fuera del lock
}

func (r *memInvoices) Insert(_ context.Context, customerID string, amountCents int64, status, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	d, _ := time.Parse(entity.DateLayout, date)
	inv := entity.Invoice{ID: "new", CustomerID: customerID, Amount: amountCents, Status: status, Date: d}
	r.inserted = append(r.inserted, inv)
	r.rows = append([]*entity.InvoiceWithCustomer{{Invoice: inv, CustomerName: "Nuevo"}}, r.rows...)
	return 1, nil
}

func (r *memInvoices) Update(_ context.Context, customerID string, amountCents int64, status, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	r.updated = append(r.updated, entity.Invoice{ID: id, CustomerID: customerID, Amount: amountCents, Status: status})
	return 1, nil
}

func (r *memInvoices) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	for i, inv := range r.rows {
		if inv.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memInvoices) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := r.GetWithCustomer(ctx, id)
	if inv == nil || err != nil {
		return nil, err
	}
	return &inv.Invoice, nil
}

func (r *memInvoices) GetWithCustomer(_ context.Context, id string) (*entity.InvoiceWithCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.rows {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInvoices) ListFiltered(_ context.Context, _ string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	r.mu.Lock()
	var page []*entity.InvoiceWithCustomer
	if offset < len(r.rows) {
		end := offset + limit
		if end > len(r.rows) {
			end = len(r.rows)
		}
		page = append(page, r.rows[offset:end]...)
	}
	hook := r.afterList
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return page, nil
}

func (r *memInvoices) CountFiltered(context.Context, string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows), nil
}

func (r *memInvoices) Latest(ctx context.Context, limit int) ([]*entity.InvoiceWithCustomer, error) {
	return r.ListFiltered(ctx, "", limit, 0)
}

type memCustomers struct{}

func (memCustomers) ListAll(context.Context) ([]*entity.Customer, error) {
	return []*entity.Customer{{ID: "c1", Name: "Delba de Oliveira"}}, nil
}

func (memCustomers) ListFilteredWithTotals(context.Context, string) ([]*entity.CustomerTotals, error) {
	return []*entity.CustomerTotals{{Customer: entity.Customer{ID: "c1", Name: "Delba de Oliveira"}, TotalInvoices: 2, TotalPending: 20348, TotalPaid: 500}}, nil
}

type memUsers struct {
	user *entity.User
	err  error
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func (r *memUsers) Create(context.Context, *entity.User) error { return nil }

type memDashboard struct{}

func (memDashboard) GetCardTotals(context.Context) (*repository.CardTotals, error) {
	return &repository.CardTotals{NumberOfInvoices: 1, NumberOfCustomers: 1, TotalPending: 20348}, nil
}

func (memDashboard) GetRevenue(context.Context) ([]entity.Revenue, error) {
	return []entity.Revenue{{Month: "Jan", Revenue: 2000}}, nil
}

type stubPDF struct{}

func (stubPDF) GenerateInvoicePDF(context.Context, *entity.InvoiceWithCustomer) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	invoices *memInvoices
	users    *memUsers
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zerolog.Nop()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &memUsers{user: &entity.User{ID: testUserID, Name: "User", Email: testEmail, PasswordHash: string(hash)}}

	invoices := &memInvoices{rows: []*entity.InvoiceWithCustomer{{
		Invoice: entity.Invoice{
			ID: existingInvoiceID, CustomerID: "c1", Amount: 20348,
			Status: entity.InvoiceStatusPending, Date: time.Date(2022, 11, 14, 0, 0, 0, 0, time.UTC),
		},
		CustomerName: "Delba de Oliveira",
	}}}

	views, err := cache.Open(cache.Config{TTL: time.Minute, Logger: log})
	require.NoError(t, err)
	t.Cleanup(func() { _ = views.Close() })

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		InvoiceActions: billing.NewInvoiceActions(invoices, views, log),
		InvoiceQueries: billing.NewInvoiceQueries(invoices, memCustomers{}, ""),
		InvoicePDF:     billing.NewPDFUseCase(invoices, stubPDF{}),
		CustomerUC:     billing.NewCustomerUseCase(memCustomers{}),
		DashboardUC:    dashboard.NewUseCase(memDashboard{}, invoices, ""),
		Views:          views,
		JWTSecret:      testJWTSecret,
		SessionTTL:     time.Hour,
		Log:            log,
	})
	return &testEnv{app: app, invoices: invoices, users: users}
}

func (e *testEnv) do(t *testing.T, method, target, contentType, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const formType = "application/x-www-form-urlencoded"

// ──────────────────────────────────────────────────────────────────────────────
// Login / logout
// ──────────────────────────────────────────────────────────────────────────────

func login(t *testing.T, e *testEnv, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", formType)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestLogin_CredencialesValidasCreaSesion(t *testing.T) {
	e := newTestEnv(t)

	resp := login(t, e, "email=user%40nextmail.com&password=123456")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.DashboardPath, resp.Header.Get("Location"))
	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.SessionCookie {
			session = ck
		}
	}
	require.NotNil(t, session, "debe fijarse la cookie de sesión")
	assert.True(t, session.HttpOnly)
	assert.NotEmpty(t, session.Value)
}

func TestLogin_RespetaCallbackLocal(t *testing.T) {
	e := newTestEnv(t)

	resp := login(t, e, "email=user%40nextmail.com&password=123456&callbackUrl=%2Fdashboard%2Finvoices")
	assert.Equal(t, "/dashboard/invoices", resp.Header.Get("Location"))

	resp = login(t, e, "email=user%40nextmail.com&password=123456&callbackUrl=%2F%2Fevil.example")
	assert.Equal(t, apphttp.DashboardPath, resp.Header.Get("Location"), "callbacks externos se ignoran")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	e := newTestEnv(t)

	resp := login(t, e, "email=user%40nextmail.com&password=wrong-password")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "invalid-credentials", body["type"])
	assert.Equal(t, "Invalid credentials.", body["message"])
}

func TestLogin_ErrorInternoEsOtroError(t *testing.T) {
	e := newTestEnv(t)
	e.users.err = errors.New("db down")

	resp := login(t, e, "email=user%40nextmail.com&password=123456")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "other-error", body["type"])
	assert.Equal(t, "Something went wrong.", body["message"])
}

func TestLogout(t *testing.T) {
	e := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.LoginPath, resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_FormularioValidoRedirige(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/dashboard/invoices", formType, "customerId=c1&amount=99.99&status=pending")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, billing.InvoicesRoute, resp.Header.Get("Location"))
	require.Len(t, e.invoices.inserted, 1)
	assert.Equal(t, int64(9999), e.invoices.inserted[0].Amount)
	assert.Equal(t, "c1", e.invoices.inserted[0].CustomerID)
}

func TestCreateInvoice_JSONConMontoNumerico(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/dashboard/invoices", fiber.MIMEApplicationJSON, `{"customerId":"c1","amount":250.5,"status":"paid"}`)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Len(t, e.invoices.inserted, 1)
	assert.Equal(t, int64(25050), e.invoices.inserted[0].Amount)
}

func TestCreateInvoice_FormularioInvalido422(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/dashboard/invoices", formType, "amount=0&status=overdue")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", body["message"])
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Please select a customer."}, errs["customerId"])
	assert.Equal(t, []any{"Please enter an amount greater than $0."}, errs["amount"])
	assert.Equal(t, []any{"Please select an invoice status."}, errs["status"])
	assert.Empty(t, e.invoices.inserted)
}

func TestCreateInvoice_ErrorDeBase500(t *testing.T) {
	e := newTestEnv(t)
	e.invoices.failWith = errors.New("connection refused")

	resp := e.do(t, http.MethodPost, "/dashboard/invoices", formType, "customerId=c1&amount=10&status=paid")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Database Error: Failed to Create Invoice.", body["message"])
	assert.NotContains(t, body, "errors")
}

func TestUpdateInvoice_PUTyPOSTEdit(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPut, "/dashboard/invoices/"+existingInvoiceID, fiber.MIMEApplicationJSON, `{"customerId":"c1","amount":"100","status":"paid"}`)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/dashboard/invoices/"+existingInvoiceID+"/edit", formType, "customerId=c1&amount=1&status=pending")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	require.Len(t, e.invoices.updated, 2)
	assert.Equal(t, existingInvoiceID, e.invoices.updated[0].ID)
	assert.Equal(t, int64(10000), e.invoices.updated[0].Amount)
	assert.Equal(t, int64(100), e.invoices.updated[1].Amount)
}

func TestUpdateInvoice_Invalido(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPut, "/dashboard/invoices/"+existingInvoiceID, formType, "customerId=c1&amount=abc&status=paid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", decode(t, resp)["message"])
}

func TestDeleteInvoice(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodDelete, "/dashboard/invoices/"+existingInvoiceID, "", "")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	n, _ := e.invoices.CountFiltered(context.Background(), "")
	assert.Zero(t, n)
}

func TestDeleteInvoice_ErrorMensajeExacto(t *testing.T) {
	e := newTestEnv(t)
	e.invoices.failWith = errors.New("connection reset")

	resp := e.do(t, http.MethodPost, "/dashboard/invoices/"+existingInvoiceID+"/delete", "", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Database Error: Failed to delete invoice.", decode(t, resp)["message"])
}

func TestListInvoices_CacheSeInvalidaTrasCrear(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard/invoices", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "miss", resp.Header.Get("X-View-Cache"))
	body := decode(t, resp)
	assert.Equal(t, float64(1), body["total_pages"])
	links := body["links"].(map[string]any)
	assert.Equal(t, "/dashboard/invoices?page=1", links["search"])

	resp = e.do(t, http.MethodGet, "/dashboard/invoices", "", "")
	assert.Equal(t, "hit", resp.Header.Get("X-View-Cache"))

	resp = e.do(t, http.MethodPost, "/dashboard/invoices", formType, "customerId=c1&amount=5&status=paid")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/dashboard/invoices", "", "")
	assert.Equal(t, "miss", resp.Header.Get("X-View-Cache"), "crear invalida la lista")
	rows := decode(t, resp)["invoices"].([]any)
	assert.Len(t, rows, 2)
}

func TestListInvoices_EnlacesDePaginacion(t *testing.T) {
	e := newTestEnv(t)
	for i := 0; i < 13; i++ {
		_, _ = e.invoices.Insert(context.Background(), "c1", 100, "paid", "2024-01-01")
	}

	resp := e.do(t, http.MethodGet, "/dashboard/invoices?query=c&page=2", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, float64(3), body["total_pages"])
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, body["pagination"])
	links := body["links"].(map[string]any)
	assert.Equal(t, "/dashboard/invoices?page=1&query=c", links["prev"])
	assert.Equal(t, "/dashboard/invoices?page=3&query=c", links["next"])
	assert.Equal(t, "/dashboard/invoices?page=1&query=c", links["search"])
}

func TestEditForm(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard/invoices/"+existingInvoiceID+"/edit", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decode(t, resp)["invoice"].(map[string]any)
	assert.Equal(t, "203.48", inv["amount"])

	resp = e.do(t, http.MethodGet, "/dashboard/invoices/00000000-0000-0000-0000-000000000000/edit", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateForm(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard/invoices/create", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	customers := decode(t, resp)["customers"].([]any)
	assert.Len(t, customers, 1)
}

func TestInvoicePDF(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard/invoices/"+existingInvoiceID+"/pdf", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "invoice_3958dc9e.pdf")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardOverview(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	cards := body["cards"].(map[string]any)
	assert.Equal(t, "$203.48", cards["total_pending_invoices"])
	revenue := body["revenue"].(map[string]any)
	assert.Equal(t, float64(2000), revenue["top_label"])
}

func TestCustomersList(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard/customers?query=delba", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "delba", body["query"])
	rows := body["customers"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "$203.48", rows[0].(map[string]any)["total_pending"])
}

func TestRequestLogger_AsignaRequestID(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard", "", "")
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp2, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "abc-123", resp2.Header.Get(apphttp.HeaderRequestID))
}

func TestListInvoices_LecturaLentaNoRepoblaConDatosViejos(t *testing.T) {
	e := newTestEnv(t)

	reading := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	e.invoices.mu.Lock()
	e.invoices.afterList = func() {
		once.Do(func() {
			close(reading)
			<-release
		})
	}
	e.invoices.mu.Unlock()

	type result struct {
		cacheHeader string
		err         error
	}
	done := make(chan result, 1)
	token := validToken(t)
	go func() {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := e.app.Test(req, -1)
		if err != nil {
			done <- result{err: err}
			return
		}
		resp.Body.Close()
		done <- result{cacheHeader: resp.Header.Get("X-View-Cache")}
	}()

	<-reading // la lista ya leyó 1 fila y aún no escribió el cache
	resp := e.do(t, http.MethodPost, "/dashboard/invoices", formType, "customerId=c1&amount=5&status=paid")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	close(release)

	slow := <-done
	require.NoError(t, slow.err)
	assert.Equal(t, "miss", slow.cacheHeader)

	resp = e.do(t, http.MethodGet, "/dashboard/invoices", "", "")
	assert.Equal(t, "miss", resp.Header.Get("X-View-Cache"), "la vista previa a la mutación no debe quedar en cache")
	rows := decode(t, resp)["invoices"].([]any)
	assert.Len(t, rows, 2)
}

func TestListInvoices_RutaConMayusculasSeInvalida(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/Dashboard/Invoices", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "miss", resp.Header.Get("X-View-Cache"))
	links := decode(t, resp)["links"].(map[string]any)
	assert.Equal(t, "/dashboard/invoices?page=1", links["search"])

	resp = e.do(t, http.MethodGet, "/DASHBOARD/invoices", "", "")
	assert.Equal(t, "hit", resp.Header.Get("X-View-Cache"), "misma vista sin importar mayúsculas")

	resp = e.do(t, http.MethodPost, "/dashboard/invoices", formType, "customerId=c1&amount=5&status=paid")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/Dashboard/Invoices", "", "")
	assert.Equal(t, "miss", resp.Header.Get("X-View-Cache"))
	assert.Len(t, decode(t, resp)["invoices"].([]any), 2)
}

func TestListInvoices_PaginaEnormeUsaLaUltima(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/dashboard/invoices?page=9223372036854775807", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, float64(1), body["current_page"])
	assert.Len(t, body["invoices"].([]any), 1)
}

func TestRequestLogger_RegistraUsuarioDeLaSesion(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.New(&buf)))
	app.Get("/dashboard", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, testUserID, line["user_id"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
}
