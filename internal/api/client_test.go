package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"taskclient/internal/api"
	"taskclient/internal/config"
	"taskclient/internal/keychain"
	"taskclient/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string, timeout time.Duration) *config.Config {
	return &config.Config{
		API: config.APIConfig{BaseURL: baseURL, Timeout: timeout},
	}
}

func TestClient_BearerReadAtCallTime(t *testing.T) {
	var gotAuth []string

	r := chi.NewRouter()
	r.Get("/task/all", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = append(gotAuth, req.Header.Get("Authorization"))
		w.Write([]byte(`{"message":"ok","data":[]}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	creds := keychain.NewMemStore()
	client := api.New(testConfig(srv.URL, time.Second), creds)
	ctx := context.Background()

	// Empty slot: no Authorization header at all.
	_, err := client.Get(ctx, api.EndpointFetchTasks, nil)
	require.NoError(t, err)

	// A token written after construction shows up on the very next
	// request, without rebuilding the client.
	require.NoError(t, creds.Set(ctx, models.AuthPayload{
		Token: "abc",
		User:  models.User{ID: "1", Username: "u", Email: "e@x.com"},
	}))
	_, err = client.Get(ctx, api.EndpointFetchTasks, nil)
	require.NoError(t, err)

	require.Len(t, gotAuth, 2)
	assert.Empty(t, gotAuth[0])
	assert.Equal(t, "Bearer abc", gotAuth[1])
}

func TestClient_RequestShape(t *testing.T) {
	var gotRequestID, gotContentType, gotQuery string

	r := chi.NewRouter()
	r.Get("/task/all", func(w http.ResponseWriter, req *http.Request) {
		gotRequestID = req.Header.Get("X-Request-ID")
		gotContentType = req.Header.Get("Content-Type")
		gotQuery = req.URL.RawQuery
		w.Write([]byte(`{"message":"ok","data":[]}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := api.New(testConfig(srv.URL, time.Second), keychain.NewMemStore())

	query := url.Values{}
	query.Set("category", "c1")
	_, err := client.Get(context.Background(), api.EndpointFetchTasks, query)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "category=c1", gotQuery)
	_, parseErr := uuid.Parse(gotRequestID)
	assert.NoError(t, parseErr, "X-Request-ID is a generated uuid")
}

func TestClient_EnvelopeDecode(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/task/create", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"message":"Task created","data":{"_id":"t1","name":"Buy milk","completed":false}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := api.New(testConfig(srv.URL, time.Second), keychain.NewMemStore())

	env, err := client.Post(context.Background(), api.EndpointCreateTask, models.CreateTask{Name: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "Task created", env.Message)

	var task models.Task
	require.NoError(t, env.Decode(&task))
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "Buy milk", task.Name)
}

func TestClient_ErrorKinds(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/with-message", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Task name is required","data":null}`))
	})
	r.Get("/without-message", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	})
	r.Get("/not-an-envelope", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`["bare","array"]`))
	})
	r.Get("/empty-object", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := api.New(testConfig(srv.URL, time.Second), keychain.NewMemStore())
	ctx := context.Background()

	tests := []struct {
		name     string
		path     string
		kind     api.Kind
		message  string
		fallback string
	}{
		{
			name:     "api error with envelope message",
			path:     "/with-message",
			kind:     api.KindAPI,
			message:  "Task name is required",
			fallback: "Task name is required",
		},
		{
			name:     "api error without envelope",
			path:     "/without-message",
			kind:     api.KindAPI,
			fallback: "Creating Task Failed",
		},
		{
			name:     "success body is not an envelope",
			path:     "/not-an-envelope",
			kind:     api.KindDecode,
			fallback: "Creating Task Failed",
		},
		{
			name:     "success body missing envelope fields",
			path:     "/empty-object",
			kind:     api.KindDecode,
			fallback: "Creating Task Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Get(ctx, tt.path, nil)
			require.Error(t, err)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.kind, apiErr.Kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, apiErr.Message)
			}
			assert.Equal(t, tt.fallback, api.ErrorMessage(err, "Creating Task Failed"))
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/task/all", func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"message":"ok","data":[]}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := api.New(testConfig(srv.URL, 50*time.Millisecond), keychain.NewMemStore())

	_, err := client.Get(context.Background(), api.EndpointFetchTasks, nil)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindTimeout, apiErr.Kind)
}

func TestClient_TransportError(t *testing.T) {
	// Nothing listens here.
	client := api.New(testConfig("http://127.0.0.1:1", time.Second), keychain.NewMemStore())

	_, err := client.Get(context.Background(), api.EndpointFetchTasks, nil)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindTransport, apiErr.Kind)
}
