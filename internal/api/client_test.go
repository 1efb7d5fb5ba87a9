package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	return New(cfg, StaticToken("test-token")), srv
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, func(err error) bool {
			var e *ErrAuth
			return errors.As(err, &e) && e.StatusCode == http.StatusUnauthorized
		}},
		{"forbidden", http.StatusForbidden, func(err error) bool {
			var e *ErrAuth
			return errors.As(err, &e) && e.StatusCode == http.StatusForbidden
		}},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var e *ErrServer
			return errors.As(err, &e) && e.StatusCode == http.StatusInternalServerError
		}},
		{"not found", http.StatusNotFound, func(err error) bool {
			var e *ErrServer
			return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			_, err := client.ActivityStats(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.check(err) {
				t.Errorf("error = %v, wrong type for status %d", err, tt.status)
			}
		})
	}
}

func TestIsAuth(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"no token", &ErrNoToken{}, true},
		{"auth rejected", &ErrAuth{StatusCode: 401}, true},
		{"server error", &ErrServer{StatusCode: 500}, false},
		{"unavailable", &ErrUnavailable{Err: errors.New("refused")}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuth(tt.err); got != tt.want {
				t.Errorf("IsAuth(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMissingTokenFailsBeforeNetwork(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	client.tokens = StaticToken("")

	_, err := client.ActivityStats(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var noTok *ErrNoToken
	if !errors.As(err, &noTok) {
		t.Errorf("error = %v, want ErrNoToken", err)
	}
	if called {
		t.Error("request reached the server despite missing token")
	}
}

func TestUnreachableBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"
	cfg.Timeout = time.Second
	client := New(cfg, StaticToken("tok"))

	_, err := client.ActivityStats(context.Background())
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(ActivityStats{})
	}))

	if _, err := client.ActivityStats(context.Background()); err != nil {
		t.Fatalf("ActivityStats() error = %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-token")
	}
}

func TestLoginIsAnonymous(t *testing.T) {
	var gotAuth string
	var gotBody loginRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(loginResponse{Token: "fresh-token"})
	}))
	client.tokens = StaticToken("")

	tok, err := client.Login(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tok != "fresh-token" {
		t.Errorf("token = %q, want %q", tok, "fresh-token")
	}
	if gotAuth != "" {
		t.Errorf("login sent Authorization header %q", gotAuth)
	}
	if gotBody.Username != "alice" || gotBody.Password != "hunter2" {
		t.Errorf("login body = %+v", gotBody)
	}
}

func TestCheckStrokeWireFormat(t *testing.T) {
	var gotPath string
	var gotBody checkStrokeRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(canvas.AccuracyResult{
			OverallAccuracy:  0.91,
			StrokeAccuracies: []float64{0.91},
		})
	}))

	user := canvas.Stroke{{X: 1, Y: 2}, {X: 3, Y: 4}}
	ref := canvas.ReferenceStroke{{0, 0}, {5, 5}}
	res, err := client.CheckStroke(context.Background(), user, ref)
	if err != nil {
		t.Fatalf("CheckStroke() error = %v", err)
	}
	if gotPath != "/api/v1/checker/stroke" {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotBody.UserStroke) != 2 || gotBody.UserStroke[0] != [2]float64{1, 2} {
		t.Errorf("userStroke = %v", gotBody.UserStroke)
	}
	if len(gotBody.ReferenceStroke) != 2 {
		t.Errorf("referenceStroke = %v", gotBody.ReferenceStroke)
	}
	if res.OverallAccuracy != 0.91 {
		t.Errorf("OverallAccuracy = %v, want 0.91", res.OverallAccuracy)
	}
}

func TestCheckKanjiLearningCarriesIdentity(t *testing.T) {
	var gotBody checkKanjiRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(canvas.AccuracyResult{OverallAccuracy: 0.8})
	}))

	user := []canvas.Stroke{{{X: 1, Y: 1}}}
	refs := []canvas.ReferenceStroke{{{0, 0}}}
	_, err := client.CheckKanjiLearning(context.Background(), "uuid-42", user, refs, true)
	if err != nil {
		t.Fatalf("CheckKanjiLearning() error = %v", err)
	}
	if gotBody.KanjiUUID != "uuid-42" {
		t.Errorf("kanjiUuid = %q, want %q", gotBody.KanjiUUID, "uuid-42")
	}
	if gotBody.IsLearningSession == nil || !*gotBody.IsLearningSession {
		t.Errorf("isLearningSession = %v, want true", gotBody.IsLearningSession)
	}
}

func TestCheckKanjiReviewOmitsIdentity(t *testing.T) {
	var gotPath string
	var raw map[string]json.RawMessage
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_ = json.NewEncoder(w).Encode(canvas.AccuracyResult{OverallAccuracy: 0.75})
	}))

	user := []canvas.Stroke{{{X: 1, Y: 1}}}
	refs := []canvas.ReferenceStroke{{{0, 0}}}
	if _, err := client.CheckKanjiReview(context.Background(), user, refs); err != nil {
		t.Fatalf("CheckKanjiReview() error = %v", err)
	}
	if gotPath != "/api/v1/accuracy/kanji" {
		t.Errorf("path = %q", gotPath)
	}
	if _, ok := raw["kanjiUuid"]; ok {
		t.Error("review request carried kanjiUuid")
	}
	if _, ok := raw["isLearningSession"]; ok {
		t.Error("review request carried isLearningSession")
	}
}

func TestRecognizeEmptyShortCircuits(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	got, err := client.Recognize(context.Background(), nil)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("candidates = %v, want empty", got)
	}
	if called {
		t.Error("empty recognize hit the network")
	}
}

func TestListByLevelPaths(t *testing.T) {
	tests := []struct {
		kind EntityKind
		want string
	}{
		{KindKanji, "/api/v1/kanji/level/5"},
		{KindRadical, "/api/v1/radical/level/5"},
		{KindVocabulary, "/api/v1/vocabulary/5"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var gotPath string
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_ = json.NewEncoder(w).Encode([]EntitySummary{})
			}))
			if _, err := client.ListByLevel(context.Background(), tt.kind, 5); err != nil {
				t.Fatalf("ListByLevel() error = %v", err)
			}
			if gotPath != tt.want {
				t.Errorf("path = %q, want %q", gotPath, tt.want)
			}
		})
	}
}

func TestEntitySummaryDisplay(t *testing.T) {
	tests := []struct {
		name string
		e    EntitySummary
		want string
	}{
		{"kanji", EntitySummary{Character: "水"}, "水"},
		{"vocabulary", EntitySummary{Characters: "水曜日"}, "水曜日"},
		{"vocabulary wins", EntitySummary{Character: "水", Characters: "水曜日"}, "水曜日"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func makeJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	if err != nil {
		t.Fatal(err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

func TestFileTokenSource(t *testing.T) {
	dir := t.TempDir()
	src := &FileTokenSource{Path: filepath.Join(dir, "sub", "token")}

	if _, err := src.Token(); err == nil {
		t.Error("expected error for missing token file")
	}

	if err := src.Save("opaque-token"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	tok, err := src.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok != "opaque-token" {
		t.Errorf("token = %q, want %q", tok, "opaque-token")
	}

	if err := src.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := os.Stat(src.Path); !os.IsNotExist(err) {
		t.Error("token file still exists after Clear")
	}
	if err := src.Clear(); err != nil {
		t.Errorf("Clear() on missing file error = %v", err)
	}
}

func TestFileTokenSourceExpiry(t *testing.T) {
	dir := t.TempDir()
	src := &FileTokenSource{Path: filepath.Join(dir, "token")}

	if err := src.Save(makeJWT(t, time.Now().Add(-time.Hour))); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Token(); !IsAuth(err) {
		t.Errorf("expired token error = %v, want auth error", err)
	}

	if err := src.Save(makeJWT(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Token(); err != nil {
		t.Errorf("valid token error = %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"future exp", makeJWT(t, now.Add(time.Hour)), false},
		{"past exp", makeJWT(t, now.Add(-time.Hour)), true},
		{"opaque token", "not-a-jwt", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := tokenExpired(tt.token, now)
			if got != tt.want {
				t.Errorf("tokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
