package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzaparoff/rest-api-exam/internal/config"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/validators"
	"github.com/muzaparoff/rest-api-exam/models"
)

func newTestClient(t *testing.T, handler http.Handler, retries int) UserAPIClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPUserAPIClient(config.ClientConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
		RetryCount:     retries,
	}, logger.Nop())
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func validCreate() models.UserCreate {
	return models.UserCreate{
		ID:          "123456782",
		Name:        "Israel Israeli",
		PhoneNumber: "050-123-4567",
		Address:     "1 Herzl St, Tel Aviv",
	}
}

func TestNewHTTPUserAPIClient_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"full url accepted", "http://localhost:8080", false},
		{"bare host gets scheme", "localhost:8080", false},
		{"trailing slash trimmed", "http://localhost:8080/", false},
		{"empty rejected", "", true},
		{"whitespace rejected", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPUserAPIClient(config.ClientConfig{
				BaseURL:        tt.baseURL,
				RequestTimeout: time.Second,
			}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "admin" || req.Password != "admin123" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{
				Error: "AuthenticationError", Message: "wrong credentials",
			})
			return
		}
		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			AccessToken: "issued-token", TokenType: "Bearer", ExpiresIn: 3600,
		})
	})

	client := newTestClient(t, mux, 0)

	require.NoError(t, client.Login(context.Background(), "admin", "admin123"))
	assert.Equal(t, "issued-token", client.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{
			Error: "AuthenticationError", Message: "wrong credentials",
		})
	})

	client := newTestClient(t, mux, 0)

	err := client.Login(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Empty(t, client.Token())
}

func TestCreateUser_SendsBearerAndCanonicalBody(t *testing.T) {
	var gotAuth string
	var gotBody models.UserCreate

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, http.StatusCreated, models.User{ID: gotBody.ID})
	})

	client := newTestClient(t, mux, 0)
	client.SetToken("abc")

	created, err := client.CreateUser(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "0501234567", gotBody.PhoneNumber, "phone must be canonicalized before sending")
	assert.Equal(t, "123456782", created.ID)
}

func TestCreateUser_LocalValidationSkipsRequest(t *testing.T) {
	var requests atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	client := newTestClient(t, handler, 0)

	req := validCreate()
	req.ID = "123456789"

	_, err := client.CreateUser(context.Background(), req)
	require.Error(t, err)

	ve := validators.AsValidationError(err)
	require.NotNil(t, ve, "local rejection must carry the shared validation error type")
	assert.Equal(t, validators.FieldID, ve.Fields[0].Field)
	assert.Zero(t, requests.Load(), "no request may be sent for an invalid create")
}

func TestUpdateUser_EmptyUpdateFailsLocally(t *testing.T) {
	var requests atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	client := newTestClient(t, handler, 0)

	_, err := client.UpdateUser(context.Background(), "123456782", models.UserUpdate{})
	require.Error(t, err)

	ve := validators.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, validators.MsgNoFields, ve.Message)
	assert.Zero(t, requests.Load())
}

func TestGetUser_NotFoundMapped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/320780695", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{
			Error: "NotFoundError", Message: "user not found",
			ResourceType: "user", ResourceID: "320780695",
		})
	})

	client := newTestClient(t, mux, 0)

	_, err := client.GetUser(context.Background(), "320780695")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "user not found")
}

func TestCreateUser_ConflictMapped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{
			Error: "ConflictError", Message: "user already exists",
		})
	})

	client := newTestClient(t, mux, 0)

	_, err := client.CreateUser(context.Background(), validCreate())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRetry_ServerErrorsRetried(t *testing.T) {
	var attempts atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(t, w, http.StatusOK, []string{"123456782"})
	})

	client := newTestClient(t, mux, 3)

	ids, err := client.ListUserIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"123456782"}, ids)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestRetry_ClientErrorsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/123456782", func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{
			Error: "NotFoundError", Message: "user not found",
		})
	})

	client := newTestClient(t, mux, 3)

	_, err := client.GetUser(context.Background(), "123456782")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), attempts.Load(), "4xx responses must not be retried")
}

func TestListUsersDetailed_QueryParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users-detailed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		assert.Equal(t, "tel aviv", r.URL.Query().Get("search"))
		writeJSON(t, w, http.StatusOK, models.UserList{Total: 1, Page: 2, PerPage: 25})
	})

	client := newTestClient(t, mux, 0)

	list, err := client.ListUsersDetailed(context.Background(), 2, 25, "tel aviv")
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
}

func TestBulkCreateUsers_PerItemOutcomes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		var req models.UserCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.ID == "012345674" {
			writeJSON(t, w, http.StatusConflict, models.ErrorResponse{
				Error: "ConflictError", Message: "user already exists",
			})
			return
		}
		writeJSON(t, w, http.StatusCreated, models.User{ID: req.ID})
	})

	client := newTestClient(t, mux, 0)

	invalid := validCreate()
	invalid.ID = "123456789"
	duplicate := validCreate()
	duplicate.ID = "12345674"

	result := client.BulkCreateUsers(context.Background(), []models.UserCreate{
		validCreate(), invalid, duplicate,
	})

	assert.Equal(t, 3, result.Total())
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 2, result.Failed)

	require.Len(t, result.Items, 3)
	assert.NoError(t, result.Items[0].Err)
	assert.NotNil(t, validators.AsValidationError(result.Items[1].Err), "invalid item fails locally")
	assert.ErrorIs(t, result.Items[2].Err, ErrConflict)
}

func TestBulkDeleteUsers_PerItemOutcomes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /users/123456782", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /users/320780695", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{
			Error: "NotFoundError", Message: "user not found",
		})
	})

	client := newTestClient(t, mux, 0)

	result := client.BulkDeleteUsers(context.Background(), []string{"123456782", "320780695"})
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.ErrorIs(t, result.Items[1].Err, ErrNotFound)
}

func TestHealthCheck_UnhealthyIsDataNotError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "unhealthy", Database: false,
		})
	})

	client := newTestClient(t, mux, 0)

	health, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unhealthy", health.Status)
}

func TestWaitForServer(t *testing.T) {
	t.Run("returns once healthy", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "healthy", Database: true})
		})

		client := newTestClient(t, mux, 0)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, client.WaitForServer(ctx))
	})

	t.Run("gives up when context expires", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unhealthy"})
		})

		client := newTestClient(t, mux, 0)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, client.WaitForServer(ctx), context.DeadlineExceeded)
	})
}
