package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"go.uber.org/zap"

	"clonestore/internal/handlers"
	"clonestore/internal/repo"
	"clonestore/internal/service"
)

const testAccessToken = "testtoken"

// testServer is the whole stack wired against a private in-memory database,
// exercised over real HTTP.
type testServer struct {
	srv     *httptest.Server
	session string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := repo.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	plasmids := service.NewPlasmidService(repo.NewPlasmidRepository(db))
	organisms := service.NewOrganismService(repo.NewMicroorganismRepository(db))
	generics := service.NewGenericService(repo.NewGenericObjectRepository(db))
	storage := service.NewStorageService(repo.NewStorageRepository(db), repo.NewPlasmidRepository(db))
	search := service.NewSearchService(repo.NewSearchRepository(db))
	printing := service.NewPrintService(repo.NewPrinterRepository(db), "http://fe/?[typeid]-[objectid]")
	auth := service.NewAuthService(repo.NewSessionRepository(db), "test-secret", testAccessToken, "")

	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(plasmids, organisms, generics, storage, search, printing, auth, logger)

	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)

	ts := &testServer{srv: srv}
	ts.session = ts.login(t)
	return ts
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/auth", map[string]string{"token": testAccessToken}, "")
	if status != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", status, body)
	}
	var msg struct {
		SessionToken string `json:"sessionToken"`
	}
	if err := json.Unmarshal([]byte(body), &msg); err != nil || msg.SessionToken == "" {
		t.Fatalf("no session token in login response: %s", body)
	}
	return msg.SessionToken
}

// do sends a request with the optional JSON payload and session token and
// returns status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, payload any, token string) (int, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, string(data)
}

// authed is do with the established session.
func (ts *testServer) authed(t *testing.T, method, path string, payload any) (int, string) {
	t.Helper()
	return ts.do(t, method, path, payload, ts.session)
}
