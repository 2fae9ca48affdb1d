package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/companieshouse/orders-web/internal/config"
	"github.com/companieshouse/orders-web/internal/mappers"
	"github.com/companieshouse/orders-web/internal/orders"
)

// newTestRouter builds a router identical to main()'s, against the mock
// orders client and with templates reparsed per request.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	devMode = true
	templatesDir = "../../templates"
	publicDir = "../../public"
	if _, err := parseTemplates(); err != nil {
		t.Fatalf("parseTemplates failed: %v", err)
	}
	appLogger = zap.NewNop()
	ordersClient = orders.NewClient("")
	mapperCfg = mappers.Config{
		DispatchDays: "10",
		Flags: config.FeatureFlags{
			LPCertificateOrders:  true,
			LLPCertificateOrders: true,
			Liquidation:          true,
			Administration:       true,
		},
	}
	return newRouter()
}

func signedGet(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer debug:tester")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// elementTextByID parses the body and returns the concatenated text of the
// element carrying the given id, or "" when absent.
func elementTextByID(t *testing.T, body, id string) string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		return ""
	}
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(found)
	return strings.TrimSpace(sb.String())
}

func TestHealthcheckOK(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
}

func TestBasketRequiresSignIn(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/basket", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/signin") {
		t.Fatalf("expected redirect to /signin, got %q", loc)
	}
}

func TestBasketPageRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := signedGet(t, srv, "/basket")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if total := elementTextByID(t, body, "basketTotal"); !strings.Contains(total, "£48") {
		t.Fatalf("expected basket total £48, got %q", total)
	}
	for _, id := range []string{"certificatesTable", "certifiedCopiesTable", "missingImageDeliveriesTable"} {
		if elementTextByID(t, body, id) == "" {
			t.Errorf("expected %s in body", id)
		}
	}
	if name := elementTextByID(t, body, "deliveryDetailsNameValue"); name != "Jane Smith" {
		t.Errorf("delivery name = %q", name)
	}
}

func TestConfirmationPageCertificate(t *testing.T) {
	srv := newTestRouter(t)
	rec := signedGet(t, srv, "/orders/ORD-123456-123456/confirmation?itemId=CRT-102416-028334")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if ref := elementTextByID(t, body, "orderReference"); ref != "ORD-123456-123456" {
		t.Fatalf("order reference = %q", ref)
	}
	if name := elementTextByID(t, body, "companyNameValue"); name != "ACME EXAMPLE LIMITED" {
		t.Fatalf("company name = %q", name)
	}
	if number := elementTextByID(t, body, "companyNumberValue"); number != "00006400" {
		t.Fatalf("company number = %q", number)
	}
	if method := elementTextByID(t, body, "deliveryMethodValue"); !strings.Contains(method, "Standard delivery") {
		t.Fatalf("delivery method = %q", method)
	}
	if !strings.Contains(body, "Certificate ordered") {
		t.Fatal("expected confirmation panel title")
	}
}

func TestConfirmationPageMissingImageDelivery(t *testing.T) {
	srv := newTestRouter(t)
	rec := signedGet(t, srv, "/orders/ORD-123456-123456/confirmation?itemId=MID-504916-663659")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	next := elementTextByID(t, body, "whatHappensNext")
	if !strings.Contains(next, "several hours to check the availability") {
		t.Fatalf("what happens next = %q", next)
	}
	if !strings.Contains(body, "Document Requested") {
		t.Fatal("expected missing image panel title")
	}
}

func TestConfirmationUnknownItem404(t *testing.T) {
	srv := newTestRouter(t)
	rec := signedGet(t, srv, "/orders/ORD-123456-123456/confirmation?itemId=nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOrderSummaryPageRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := signedGet(t, srv, "/orders/ORD-123456-123456")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if ref := elementTextByID(t, body, "orderReference"); ref != "ORD-123456-123456" {
		t.Fatalf("order reference = %q", ref)
	}
	if at := elementTextByID(t, body, "orderedAt"); !strings.Contains(at, "16 December 2019 - 09:16:17") {
		t.Fatalf("ordered at = %q", at)
	}
	if total := elementTextByID(t, body, "orderTotal"); !strings.Contains(total, "£48") {
		t.Fatalf("order total = %q", total)
	}
}

func TestItemSummaryPageRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := signedGet(t, srv, "/orders/ORD-123456-123456/items/CCD-768116-517930")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if name := elementTextByID(t, body, "companyNameValue"); name != "ACME EXAMPLE LIMITED" {
		t.Fatalf("company name = %q", name)
	}
	if elementTextByID(t, body, "documentDetails") == "" {
		t.Fatal("expected document details table")
	}
}

func TestItemSummaryUnknownItem404(t *testing.T) {
	srv := newTestRouter(t)
	rec := signedGet(t, srv, "/orders/ORD-123456-123456/items/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCheckoutPostRequiresCSRF(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/basket/checkout", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer debug:tester")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without CSRF token, got %d", rec.Code)
	}
}

func TestSessionMiddlewareSetsCookie(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/signin", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "ORDERS_WEB_SESSION" {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
}
