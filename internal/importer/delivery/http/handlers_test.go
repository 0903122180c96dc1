package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"boardimport/config"
	"boardimport/internal/importer"
	importerHTTP "boardimport/internal/importer/delivery/http"
	"boardimport/internal/middleware"
	"boardimport/internal/model"
	"boardimport/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	extractOutput importer.ExtractOutput
	extractErr    error

	importOutput importer.ImportOutput
	importErr    error

	boardsOutput importer.ListBoardsOutput
	boardsErr    error

	lastScope model.Scope
}

func (m *mockUseCase) Extract(ctx context.Context, sc model.Scope, input importer.ExtractInput) (importer.ExtractOutput, error) {
	m.lastScope = sc
	return m.extractOutput, m.extractErr
}

func (m *mockUseCase) Import(ctx context.Context, sc model.Scope, input importer.ImportInput) (importer.ImportOutput, error) {
	m.lastScope = sc
	return m.importOutput, m.importErr
}

func (m *mockUseCase) ListBoards(ctx context.Context, sc model.Scope) (importer.ListBoardsOutput, error) {
	m.lastScope = sc
	return m.boardsOutput, m.boardsErr
}

func newTestServer(t *testing.T, uc importer.UseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Importer.RateLimitPerMin = 600 // high enough to stay out of the way

	jwtManager := scope.NewManager("test-secret")
	mw := middleware.New(&mockLogger{}, jwtManager, cfg)

	r := gin.New()
	h := importerHTTP.New(&mockLogger{}, uc)
	importerHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)

	token, err := jwtManager.Generate("u1", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return r, token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		uc := &mockUseCase{
			extractOutput: importer.ExtractOutput{
				Candidates: []model.TaskCandidate{
					{Title: "Buy milk", Priority: "medium"},
					{Title: "Call Bob", Priority: "high", DueDate: &due},
				},
			},
		}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports/extract", token, `{"text": "Buy milk. Call Bob."}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastScope.UserID != "u1" {
			t.Errorf("scope not propagated, got %+v", uc.lastScope)
		}

		var resp struct {
			Data struct {
				Candidates []struct {
					Title   string `json:"title"`
					DueDate string `json:"due_date"`
				} `json:"candidates"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.Data.Candidates) != 2 || resp.Data.Candidates[0].Title != "Buy milk" {
			t.Errorf("unexpected candidates: %+v", resp.Data.Candidates)
		}
		if resp.Data.Candidates[1].DueDate == "" {
			t.Error("expected due date on second candidate")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		uc := &mockUseCase{extractErr: importer.ErrEmptyInput}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports/extract", token, `{"text": "   "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Missing Body Field", func(t *testing.T) {
		uc := &mockUseCase{}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports/extract", token, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("No Token", func(t *testing.T) {
		uc := &mockUseCase{}
		r, _ := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports/extract", "", `{"text": "x"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestImportHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			importOutput: importer.ImportOutput{
				BatchID: "batch-1",
				BoardID: "b1",
				ListID:  "l1",
				CreatedCards: []model.Card{
					{ID: "c1", Title: "Buy milk", ListID: "l1", Position: 3},
					{ID: "c2", Title: "Call Bob", ListID: "l1", Position: 4},
				},
				Snapshot: &importer.BoardSnapshot{
					Lists: []model.List{{ID: "l1", Position: 0}},
					Cards: []model.Card{{ID: "c1"}, {ID: "c2"}},
				},
			},
		}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports", token,
			`{"board_id": "b1", "candidates": [{"title": "Buy milk"}, {"title": "Call Bob", "priority": "high"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				BatchID      string `json:"batch_id"`
				ListID       string `json:"list_id"`
				CreatedCards []struct {
					Position int `json:"position"`
				} `json:"created_cards"`
				Snapshot *struct{} `json:"snapshot"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Data.ListID != "l1" || len(resp.Data.CreatedCards) != 2 {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
		if resp.Data.Snapshot == nil {
			t.Error("expected refetched snapshot in response")
		}
	})

	t.Run("Partial Failure Carries Warning", func(t *testing.T) {
		uc := &mockUseCase{
			importOutput: importer.ImportOutput{
				BatchID:      "batch-1",
				BoardID:      "b1",
				ListID:       "l1",
				CreatedCards: []model.Card{{ID: "c1", Title: "Buy milk"}},
			},
			importErr: errors.New("import incomplete: 1 of 2 cards created: board API error 500"),
		}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports", token,
			`{"board_id": "b1", "candidates": [{"title": "Buy milk"}, {"title": "Call Bob"}]}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				CreatedCount int    `json:"created_count"`
				Warning      string `json:"warning"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Data.CreatedCount != 1 {
			t.Errorf("expected created_count 1, got %d", resp.Data.CreatedCount)
		}
		if !strings.Contains(resp.Data.Warning, "may have been added") {
			t.Errorf("expected partial-import warning, got %q", resp.Data.Warning)
		}
	})

	t.Run("Board Without Lists", func(t *testing.T) {
		uc := &mockUseCase{importErr: importer.ErrNoDestinationList}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports", token,
			`{"board_id": "b1", "candidates": [{"title": "Buy milk"}]}`)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("Malformed Due Date", func(t *testing.T) {
		uc := &mockUseCase{}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/imports", token,
			`{"board_id": "b1", "candidates": [{"title": "T", "due_date": "next tuesday"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestListBoardsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			boardsOutput: importer.ListBoardsOutput{
				Boards: []model.Board{
					{ID: "b1", Title: "Work"},
					{ID: "b2", Title: "Personal"},
				},
			},
		}
		r, token := newTestServer(t, uc)

		w := doJSON(r, http.MethodGet, "/api/v1/boards", token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				Boards []struct {
					ID string `json:"id"`
				} `json:"boards"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.Data.Boards) != 2 || resp.Data.Boards[0].ID != "b1" {
			t.Errorf("unexpected boards: %+v", resp.Data.Boards)
		}
	})
}
