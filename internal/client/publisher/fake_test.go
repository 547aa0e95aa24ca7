package publisher

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/iudanet/pagekeeper/internal/crypto"
	"github.com/iudanet/pagekeeper/pkg/api"
)

// fakeRepo эмулирует GitHub Contents API для одного репозитория
type fakeRepo struct {
	files   map[string]string
	shaFor  func(content string) string
	beforeP func() // вызывается перед обработкой PUT
	puts    []api.UpdateFileRequest
	token   string
	mu      sync.Mutex
}

func newFakeRepo(token string) *fakeRepo {
	return &fakeRepo{
		files:  make(map[string]string),
		shaFor: func(content string) string { return crypto.GitBlobSHA([]byte(content)) },
		token:  token,
	}
}

func (f *fakeRepo) set(path, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = content
}

func (f *fakeRepo) get(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[path]
}

func (f *fakeRepo) commits() []api.UpdateFileRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.UpdateFileRequest(nil), f.puts...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// encodeWrapped кодирует base64 строками по 60 символов, как GitHub
func encodeWrapped(content string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(content))
	var b strings.Builder
	for len(enc) > 60 {
		b.WriteString(enc[:60])
		b.WriteString("\n")
		enc = enc[60:]
	}
	b.WriteString(enc)
	b.WriteString("\n")
	return b.String()
}

func (f *fakeRepo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+f.token {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Message: "Bad credentials"})
		return
	}

	const prefix = "/repos/owner/site/contents/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Message: "Not Found"})
		return
	}
	path := strings.TrimPrefix(r.URL.Path, prefix)

	switch r.Method {
	case http.MethodGet:
		f.mu.Lock()
		content, ok := f.files[path]
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{Message: "Not Found"})
			return
		}
		writeJSON(w, http.StatusOK, api.ContentsResponse{
			Type:     "file",
			Encoding: "base64",
			Path:     path,
			Content:  encodeWrapped(content),
			SHA:      f.shaFor(content),
		})

	case http.MethodPut:
		if f.beforeP != nil {
			f.beforeP()
		}

		var req api.UpdateFileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Message: "Problems parsing JSON"})
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		current, ok := f.files[path]
		if ok && req.SHA != f.shaFor(current) {
			writeJSON(w, http.StatusConflict, api.ErrorResponse{Message: path + " does not match " + req.SHA})
			return
		}

		data, err := base64.StdEncoding.DecodeString(req.Content)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{Message: "content is not valid Base64"})
			return
		}

		f.files[path] = string(data)
		f.puts = append(f.puts, req)

		writeJSON(w, http.StatusOK, api.UpdateFileResponse{
			Content: api.ContentsResponse{Type: "file", Path: path, SHA: f.shaFor(string(data))},
			Commit:  api.CommitInfo{SHA: "commit-" + f.shaFor(string(data))[:7], HTMLURL: "https://example.test/commit", Message: req.Message},
		})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func startFakeRepo(t *testing.T, repo *fakeRepo) *Client {
	t.Helper()

	srv := httptest.NewServer(repo)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		APIURL:         srv.URL,
		Owner:          "owner",
		Repo:           "site",
		Branch:         "main",
		CommitterEmail: "cms@example.com",
	})
}
