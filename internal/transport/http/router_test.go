package httptransport_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medstore/internal/cart"
	"medstore/internal/catalog"
	httptransport "medstore/internal/transport/http"
	dErrors "medstore/pkg/domain-errors"
	"medstore/pkg/testutil"
)

type stubCatalog struct {
	products []catalog.Product
	err      error
}

func (s stubCatalog) Load(context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

type stubCheckout struct {
	err   error
	calls int
	last  string
	cart  *cart.Store
}

func (s *stubCheckout) Submit(_ context.Context, username string) error {
	s.calls++
	s.last = username
	if s.err == nil && s.cart != nil {
		s.cart.Clear()
	}
	return s.err
}

type stubAssistant struct {
	reply string
	err   error
}

func (s stubAssistant) Ask(context.Context, string) (string, error) {
	return s.reply, s.err
}

type fixture struct {
	router    http.Handler
	cart      *cart.Store
	checkout  *stubCheckout
	catalog   *stubCatalog
	assistant *stubAssistant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cart:      cart.NewStore(),
		catalog:   &stubCatalog{},
		checkout:  &stubCheckout{},
		assistant: &stubAssistant{reply: "ok"},
	}
	f.checkout.cart = f.cart
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := httptransport.NewHandler(logger, nil, f.catalog, f.cart, f.checkout, f.assistant)
	f.router = httptransport.NewRouter(handler)
	return f
}

func TestGetCatalog(t *testing.T) {
	f := newFixture(t)
	f.catalog.products = []catalog.Product{{Name: "Panadol", Price: 3.5, Stock: 2}}

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/catalog", nil))

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string][]catalog.Product](t, rr)
	assert.Equal(t, []catalog.Product{{Name: "Panadol", Price: 3.5, Stock: 2}}, (*resp)["products"])
}

func TestGetCatalogUnavailable(t *testing.T) {
	f := newFixture(t)
	f.catalog.err = dErrors.New(dErrors.CodeCatalogUnavailable, "catalog is unavailable")

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/catalog", nil))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertErrorCode(t, rr, "catalog_unavailable")
}

func TestGetCatalogEmptyIsNotAnError(t *testing.T) {
	f := newFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/catalog", nil))

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string][]catalog.Product](t, rr)
	assert.NotNil(t, (*resp)["products"])
	assert.Empty(t, (*resp)["products"])
}

func TestCartAddAndSummary(t *testing.T) {
	f := newFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/cart/items",
		map[string]any{"name": "Aspirin", "price": 2.5, "quantity": 3}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	// quantity omitted defaults to 1
	rr = testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/cart/items",
		map[string]any{"name": "Gauze", "price": 1.0}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	sum := testutil.UnmarshalResponse[cart.Summary](t, rr)
	require.Len(t, sum.Lines, 2)
	assert.Equal(t, 3.5, sum.Lines[0].Price+sum.Lines[1].Price)
	assert.Equal(t, 8.5, sum.Total)
	assert.Equal(t, 4, sum.Count)
}

func TestCartAddValidation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		body any
	}{
		{"missing name", map[string]any{"price": 1.0}},
		{"negative price", map[string]any{"name": "x", "price": -1.0}},
		{"negative quantity", map[string]any{"name": "x", "price": 1.0, "quantity": -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/cart/items", tc.body))
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
			testutil.AssertErrorCode(t, rr, "bad_request")
		})
	}

	rr := testutil.DoRequest(f.router, testutil.NewRequestWithBody(t, http.MethodPost, "/cart/items", "{not json"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	assert.Empty(t, f.cart.Summary().Lines)
}

func TestCartIncreaseDecrease(t *testing.T) {
	f := newFixture(t)
	f.cart.Add("Panadol Extra", 3, 1)

	path := "/cart/items/" + url.PathEscape("Panadol Extra") + "/increase"
	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, path, nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	sum := testutil.UnmarshalResponse[cart.Summary](t, rr)
	require.Len(t, sum.Lines, 1)
	assert.Equal(t, 2, sum.Lines[0].Quantity)

	path = "/cart/items/" + url.PathEscape("Panadol Extra") + "/decrease"
	rr = testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, path, nil))
	rr = testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, path, nil))
	sum = testutil.UnmarshalResponse[cart.Summary](t, rr)
	assert.Empty(t, sum.Lines)
}

func TestCartMutationOnUnknownNameIsNoOp(t *testing.T) {
	f := newFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/cart/items/nonexistent/decrease", nil))

	testutil.AssertStatus(t, rr, http.StatusOK)
	sum := testutil.UnmarshalResponse[cart.Summary](t, rr)
	assert.Empty(t, sum.Lines)
}

func TestCheckoutSuccess(t *testing.T) {
	f := newFixture(t)
	f.cart.Add("Aspirin", 2.5, 3)

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/checkout",
		map[string]string{"username": "alaa"}))

	testutil.AssertStatus(t, rr, http.StatusCreated)
	assert.Equal(t, 1, f.checkout.calls)
	assert.Equal(t, "alaa", f.checkout.last)
	assert.Empty(t, f.cart.Summary().Lines)
}

func TestCheckoutErrorsPassThrough(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		code   dErrors.Code
		status int
	}{
		{dErrors.CodeEmptyCart, http.StatusBadRequest},
		{dErrors.CodeMissingIdentity, http.StatusBadRequest},
		{dErrors.CodeSubmissionRejected, http.StatusBadGateway},
		{dErrors.CodeSubmissionInFlight, http.StatusConflict},
		{dErrors.CodeNetworkUnavailable, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			f.checkout.err = dErrors.New(tc.code, "nope")
			rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/checkout",
				map[string]string{"username": "alaa"}))
			testutil.AssertStatus(t, rr, tc.status)
			testutil.AssertErrorCode(t, rr, string(tc.code))
		})
	}
}

func TestAsk(t *testing.T) {
	f := newFixture(t)
	f.assistant.reply = "أهلاً! كيف يمكنني مساعدتك؟"

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/ask",
		map[string]string{"message": "مرحبا"}))

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string]string](t, rr)
	assert.Equal(t, "أهلاً! كيف يمكنني مساعدتك؟", (*resp)["reply"])
}

func TestAskFailure(t *testing.T) {
	f := newFixture(t)
	f.assistant.err = dErrors.New(dErrors.CodeNetworkUnavailable, "assistant endpoint unreachable")

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/ask",
		map[string]string{"message": "hi"}))

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	testutil.AssertErrorCode(t, rr, "network_unavailable")
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRequestIDHeader(t *testing.T) {
	f := newFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/cart", nil))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
