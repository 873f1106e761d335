package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
)

type stubUserService struct {
	createFn     func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	createManyFn func(ctx context.Context, inputs []ports.CreateUserInput) (*ports.BulkCreateResult, error)
	loginFn      func(ctx context.Context, username, password string) (bool, error)
	usernamesFn  func(ctx context.Context) ([]string, error)
	listFn       func(ctx context.Context) ([]*domain.User, error)
	toggleFn     func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) CreateMany(ctx context.Context, inputs []ports.CreateUserInput) (*ports.BulkCreateResult, error) {
	return s.createManyFn(ctx, inputs)
}

func (s *stubUserService) Login(ctx context.Context, username, password string) (bool, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubUserService) ListUsernames(ctx context.Context) ([]string, error) {
	return s.usernamesFn(ctx)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) ToggleAdmin(ctx context.Context, id string) (*domain.User, error) {
	return s.toggleFn(ctx, id)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Username != "alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "user_1", Username: "alice", Email: "alice@example.com"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/user/create",
		`{"username":"alice","email":"alice@example.com","password":"longenough"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User created successfully" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Create_MissingField(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/user/create", `{"username":"alice"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/user/create", "not-json")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_DuplicatePassthrough(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return nil, &domain.DuplicateError{Field: "email"}
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/user/create",
		`{"username":"alice","email":"alice@example.com","password":"longenough"}`)

	err := h.Create(c)
	var dupErr *domain.DuplicateError
	if !errors.As(err, &dupErr) || dupErr.Field != "email" {
		t.Fatalf("expected DuplicateError passthrough, got %v", err)
	}
}

func TestUserHandler_CreateMany_Success(t *testing.T) {
	stub := &stubUserService{
		createManyFn: func(ctx context.Context, inputs []ports.CreateUserInput) (*ports.BulkCreateResult, error) {
			if len(inputs) != 2 {
				t.Fatalf("expected 2 candidates, got %d", len(inputs))
			}
			return &ports.BulkCreateResult{
				Success: 1,
				Failed:  1,
				Results: []ports.BulkItemResult{{Index: 0, Username: "alice", Email: "alice@example.com"}},
				Errors:  []ports.BulkItemError{{Index: 1, Username: "bob", Reason: "email already exists"}},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/user/multiple",
		`{"users":[{"username":"alice","email":"alice@example.com","password":"longenough"},{"username":"bob","email":"bob@example.com","password":"longenough"}]}`)

	if err := h.CreateMany(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != float64(1) || resp["failed"] != float64(1) {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	errsField, ok := resp["errors"].([]any)
	if !ok || len(errsField) != 1 {
		t.Fatalf("expected 1 error entry: %+v", resp["errors"])
	}
	entry := errsField[0].(map[string]any)
	if entry["username"] != "bob" || entry["error"] != "email already exists" {
		t.Fatalf("unexpected error entry: %+v", entry)
	}
}

func TestUserHandler_CreateMany_MissingArray(t *testing.T) {
	stub := &stubUserService{
		createManyFn: func(ctx context.Context, inputs []ports.CreateUserInput) (*ports.BulkCreateResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/user/multiple", `{}`)

	err := h.CreateMany(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (bool, error) {
			if username != "carol" || password != "s3cretpass" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return true, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/user/login",
		`{"username":"carol","password":"s3cretpass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" || resp["is_admin"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Login_FailurePassthrough(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (bool, error) {
			return false, domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/user/login",
		`{"username":"carol","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestUserHandler_Huddly(t *testing.T) {
	stub := &stubUserService{
		usernamesFn: func(ctx context.Context) ([]string, error) {
			return []string{"alice", "bob"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/user/huddly", "")

	if err := h.Huddly(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAdminHandler_ListUsers_HidesPasswordHash(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "user_1", Username: "alice", Email: "alice@example.com", PasswordHash: "secret", IsAdmin: true},
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/admin/seeUsers", "")

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked into the response: %s", rec.Body.String())
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["is_admin"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAdminHandler_ToggleAdmin(t *testing.T) {
	stub := &stubUserService{
		toggleFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "user_9" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: "user_9", Username: "erin", Email: "erin@example.com", IsAdmin: true}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/admin/updateUser/user_9", "")
	c.SetParamNames("id")
	c.SetParamValues("user_9")

	if err := h.ToggleAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["is_admin"] != true || resp["username"] != "erin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAdminHandler_ToggleAdmin_NotFoundPassthrough(t *testing.T) {
	stub := &stubUserService{
		toggleFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/admin/updateUser/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.ToggleAdmin(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound passthrough, got %v", err)
	}
}
