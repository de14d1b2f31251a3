package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"galatea-ai-backend/internal/images"
	"galatea-ai-backend/internal/llm"
	"galatea-ai-backend/internal/models"
	"galatea-ai-backend/internal/storage"
	"galatea-ai-backend/internal/traits"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-image-data")

type fakeLLM struct {
	profile      string
	matchReply   string
	err          error
	lastPrompt   string
	lastUser     string
	lastGirl     string
	profileCalls int
}

func (f *fakeLLM) GenerateProfile(_ context.Context, description string) (string, error) {
	f.profileCalls++
	f.lastPrompt = description
	if f.err != nil {
		return "", f.err
	}
	return f.profile, nil
}

func (f *fakeLLM) CheckMatch(_ context.Context, userProfile, girlProfile string) (bool, error) {
	f.lastUser, f.lastGirl = userProfile, girlProfile
	if f.err != nil {
		return false, f.err
	}
	return llm.ParseMatch(f.matchReply), nil
}

type brokenStore struct{}

func (brokenStore) Insert(context.Context, string, string, string) (int64, error) {
	return 0, errors.New("disk I/O error")
}

func (brokenStore) GetByID(context.Context, int64) (models.GeneratedProfile, error) {
	return models.GeneratedProfile{}, errors.New("disk I/O error")
}

func (brokenStore) GetAll(context.Context) ([]models.GeneratedProfile, error) {
	return nil, errors.New("disk I/O error")
}

type testEnv struct {
	router   *gin.Engine
	store    *storage.Store
	llm      *fakeLLM
	imageDir string
}

func newTestEnv(t *testing.T, imageNames ...string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	imageDir := filepath.Join(root, "images")
	require.NoError(t, os.Mkdir(imageDir, 0755))
	for _, name := range imageNames {
		require.NoError(t, os.WriteFile(filepath.Join(imageDir, name), pngBytes, 0644))
	}

	store, err := storage.Open(context.Background(), filepath.Join(root, "models.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	fake := &fakeLLM{profile: "Name: Mia\nBio: loves hiking and coffee.", matchReply: "true"}
	h := New(traits.NewComposer(traits.Default()), images.NewDirectory(imageDir, images.DefaultExt), fake, store)

	return &testEnv{
		router:   NewRouter(h),
		store:    store,
		llm:      fake,
		imageDir: imageDir,
	}
}

func (e *testEnv) do(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRoot(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, welcomeMessage, decode[MessageResponse](t, w).Message)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGenerateThenGetModel(t *testing.T) {
	env := newTestEnv(t, "a0.png")

	w := env.do(http.MethodPost, "/generate-profile-image")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[models.GeneratedProfile](t, w)
	assert.Positive(t, created.ID)
	assert.Equal(t, "/images/a0.png", created.ImageURL)
	assert.Contains(t, created.Profile, "Mia")
	assert.True(t, strings.HasSuffix(created.Prompt, "for a Tinder profile."))
	assert.Equal(t, created.Prompt, env.llm.lastPrompt)

	w = env.do(http.MethodGet, fmt.Sprintf("/models/%d", created.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[models.GeneratedProfile](t, w))
}

func TestGenerateResponseShape(t *testing.T) {
	env := newTestEnv(t, "a0.png")

	w := env.do(http.MethodPost, "/generate-profile-image")
	require.Equal(t, http.StatusOK, w.Code)

	raw := decode[map[string]any](t, w)
	assert.ElementsMatch(t, []string{"id", "prompt", "image_url", "profile"}, keys(raw))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestGenerateMissingImageDir(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.Remove(env.imageDir))

	w := env.do(http.MethodPost, "/generate-profile-image")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Images folder does not exist", decode[ErrorResponse](t, w).Detail)
	assert.Zero(t, env.llm.profileCalls)
}

func TestGenerateEmptyImageDir(t *testing.T) {
	env := newTestEnv(t, "notes.txt")

	w := env.do(http.MethodPost, "/generate-profile-image")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "No images found in the folder", decode[ErrorResponse](t, w).Detail)
}

func TestGenerateUpstreamFailureIsNotPersisted(t *testing.T) {
	env := newTestEnv(t, "a0.png")
	env.llm.err = fmt.Errorf("failed to generate profile: %w: 401 invalid api key", llm.ErrUpstream)

	w := env.do(http.MethodPost, "/generate-profile-image")
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Detail, "failed to generate profile")

	all, err := env.store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGenerateStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a0.png"), pngBytes, 0644))

	h := New(traits.NewComposer(traits.Default()), images.NewDirectory(dir, ""), &fakeLLM{profile: "Name: Mia"}, brokenStore{})
	w := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate-profile-image", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetModelNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/models/999")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Model not found", decode[ErrorResponse](t, w).Detail)
}

func TestGetModelBadID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/models/abc")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetModels(t *testing.T) {
	env := newTestEnv(t, "a0.png", "a1.png")

	w := env.do(http.MethodGet, "/models")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/generate-profile-image").Code)
	}

	w = env.do(http.MethodGet, "/models")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.GeneratedProfile](t, w)
	require.Len(t, list, 3)
	for _, p := range list {
		assert.Contains(t, []string{"/images/a0.png", "/images/a1.png"}, p.ImageURL)
	}
}

func TestGetModelsStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(traits.NewComposer(traits.Default()), images.NewDirectory(t.TempDir(), ""), &fakeLLM{}, brokenStore{})
	w := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCheckProfileMatch(t *testing.T) {
	cases := []struct {
		reply   string
		matched bool
	}{
		{"TRUE.", true},
		{"I don't think so, false.", false},
		{"that could be construed as a match", true},
	}
	for _, tc := range cases {
		t.Run(tc.reply, func(t *testing.T) {
			env := newTestEnv(t)
			env.llm.matchReply = tc.reply

			q := url.Values{}
			q.Set("user_profile", "Name: Sam Bio: hiking")
			q.Set("girl_profile", "Name: Mia Bio: coffee")
			w := env.do(http.MethodPost, "/check-profile-match?"+q.Encode())

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.matched, decode[models.MatchResult](t, w).Matched)
			assert.Equal(t, "Name: Sam Bio: hiking", env.llm.lastUser)
			assert.Equal(t, "Name: Mia Bio: coffee", env.llm.lastGirl)
		})
	}
}

func TestCheckProfileMatchAllowsEmptyProfiles(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/check-profile-match?user_profile=&girl_profile=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.llm.lastUser)
}

func TestCheckProfileMatchMissingParam(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/check-profile-match?user_profile=x")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCheckProfileMatchUpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.llm.err = fmt.Errorf("failed to compare profiles: %w: timeout", llm.ErrUpstream)

	w := env.do(http.MethodPost, "/check-profile-match?user_profile=a&girl_profile=b")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetImage(t *testing.T) {
	env := newTestEnv(t, "a0.png")

	w := env.do(http.MethodGet, "/images/a0.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestGetImageNotFound(t *testing.T) {
	env := newTestEnv(t, "a0.png")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(env.imageDir), "secret.png"), pngBytes, 0644))

	for _, target := range []string{"/images/missing.png", "/images/..%2Fsecret.png", "/images/%2E%2E"} {
		w := env.do(http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.NotEqual(t, pngBytes, w.Body.Bytes(), target)
	}
}
