package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/service"

	"github.com/labstack/echo"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	repos, err := repo.NewRepositories(nil)
	if err != nil {
		t.Fatal(err)
	}
	handler := echo.New()
	SetupRoutesHandlers(handler, service.NewServices(repos))

	return handler
}

func doJSON(t *testing.T, handler *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func createSession(t *testing.T, handler *echo.Echo) string {
	t.Helper()

	rec := doJSON(t, handler, http.MethodPost, "/api/wizard/sessions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 creating session, got %d: %s", rec.Code, rec.Body.String())
	}

	var sess entity.WizardSession
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatal(err)
	}

	return sess.Id.String()
}

func TestWizardRoutes_TitleGatesNext(t *testing.T) {
	handler := newTestServer(t)
	id := createSession(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/wizard/sessions/"+id+"/next", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state entity.WizardStateOutputModel
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.CurrentStep != 1 {
		t.Errorf("expected gated next to stay on step 1, got %d", state.CurrentStep)
	}

	rec = doJSON(t, handler, http.MethodPut, "/api/wizard/sessions/"+id+"/title", `{"title":"RNG Supply"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 setting title, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/wizard/sessions/"+id+"/next", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.CurrentStep != 2 {
		t.Errorf("expected step 2, got %d", state.CurrentStep)
	}
}

func TestWizardRoutes_ImportContacts(t *testing.T) {
	handler := newTestServer(t)
	id := createSession(t, handler)

	payload := "Name,Business Name,Email\nJane Doe,Acme,jane@acme.com"
	req := httptest.NewRequest(http.MethodPost, "/api/wizard/sessions/"+id+"/contacts/import", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var contacts []entity.VendorContact
	if err := json.Unmarshal(rec.Body.Bytes(), &contacts); err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 || contacts[0].Name != "Jane Doe" {
		t.Errorf("unexpected contacts: %+v", contacts)
	}
}

func TestWizardRoutes_ImportBadHeader(t *testing.T) {
	handler := newTestServer(t)
	id := createSession(t, handler)

	req := httptest.NewRequest(http.MethodPost, "/api/wizard/sessions/"+id+"/contacts/import", strings.NewReader("Foo,Bar\na,b"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed header, got %d", rec.Code)
	}
}

func TestWizardRoutes_UnknownSession(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/wizard/sessions/00000000-0000-4000-8000-000000000000", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %d", rec.Code)
	}
}
