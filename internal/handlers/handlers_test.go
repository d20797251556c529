package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"interioai-backend/internal/config"
	"interioai-backend/internal/models"
	"interioai-backend/internal/render"
	"interioai-backend/internal/repository"
	"interioai-backend/internal/services"
	"interioai-backend/internal/storage"
)

// in-memory repositories

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, fmt.Errorf("user not found")
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (r *fakeUserRepo) CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ repository.IUserRepository = (*fakeUserRepo)(nil)

type fakeDesignRepo struct {
	designs []*models.Design
	seq     int
}

func (r *fakeDesignRepo) CreateDesign(design *models.Design) error {
	r.seq++
	design.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(r.seq) * time.Minute)
	copied := *design
	r.designs = append(r.designs, &copied)
	return nil
}

func (r *fakeDesignRepo) GetDesignsByUserID(userID string) ([]*models.Design, error) {
	var out []*models.Design
	for _, d := range r.designs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDesignRepo) CountDesignsByUserID(userID string) (int, error) {
	count := 0
	for _, d := range r.designs {
		if d.UserID == userID {
			count++
		}
	}
	return count, nil
}

var _ repository.IDesignRepository = (*fakeDesignRepo)(nil)

// test fixture

type fixture struct {
	router     *gin.Engine
	userRepo   *fakeUserRepo
	designRepo *fakeDesignRepo
	store      *storage.LocalStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := t.TempDir()
	store, err := storage.NewLocalStore(config.StorageConfig{
		UploadDir: filepath.Join(base, "uploads"),
		OutputDir: filepath.Join(base, "output"),
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	userRepo := newFakeUserRepo()
	designRepo := &fakeDesignRepo{}

	userService := services.NewUserService(userRepo, designRepo)
	designService := services.NewDesignService(designRepo, userRepo)
	costService := services.NewCostService()
	renderService := services.NewRenderService(store, render.NewCopyRenderer(), userRepo, 0)

	r := gin.New()
	r.Use(CORSMiddleware())

	NewAuthHandler(userService).RegisterRoutes(r)
	NewUserHandler(userService).RegisterRoutes(r)
	NewDesignHandler(designService).RegisterRoutes(r)
	NewFurnitureHandler(costService).RegisterRoutes(r)
	NewGenerateHandler(renderService, store, 15).RegisterRoutes(r)
	NewSystemHandler(renderService, base).RegisterRoutes(r)

	return &fixture{router: r, userRepo: userRepo, designRepo: designRepo, store: store}
}

func (f *fixture) doJSON(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) do(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope, got %s", w.Body.String())
	}
	return envelope.Data
}

func (f *fixture) signup(t *testing.T, name, email, password string) string {
	t.Helper()

	w := f.doJSON(t, http.MethodPost, "/api/auth/signup", gin.H{
		"name": name, "email": email, "password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup returned %d: %s", w.Code, w.Body.String())
	}

	data := decodeData(t, w)
	user := data["user"].(map[string]any)
	return user["id"].(string)
}

func (f *fixture) mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
