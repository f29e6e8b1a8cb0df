package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"taskman/internal/repository"
	"taskman/internal/service"
	"taskman/internal/validation"
)

// testEnv wires handlers over real in-memory stores; the cache is nil, which
// the cache client treats as always-miss.
type testEnv struct {
	echo  *echo.Echo
	users *UserHandler
	tasks *TaskHandler
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Validator = validation.New()

	store := repository.NewStore()
	userSvc := service.NewUserService(repository.NewUserRepository(store), nil, time.Minute)
	taskSvc := service.NewTaskService(repository.NewTaskRepository(store), nil, time.Minute)

	return &testEnv{
		echo:  e,
		users: NewUserHandler(userSvc),
		tasks: NewTaskHandler(taskSvc),
	}
}

// envelope models both the success and error response shapes.
type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

// do runs a handler against a synthetic request and decodes the response.
func (env *testEnv) do(t *testing.T, h echo.HandlerFunc, method, target, body string, pathParams ...string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	for i := 0; i+1 < len(pathParams); i += 2 {
		c.SetParamNames(pathParams[i])
		c.SetParamValues(pathParams[i+1])
	}

	require.NoError(t, h(c))

	var env2 envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env2))
	return rec.Code, env2
}

func unmarshalData(resp envelope, out interface{}) error {
	return json.Unmarshal(resp.Data, out)
}

func (env *testEnv) createUser(t *testing.T, body string) envelope {
	t.Helper()
	code, resp := env.do(t, env.users.CreateUser, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusCreated, code)
	return resp
}

func (env *testEnv) createTask(t *testing.T, body string) envelope {
	t.Helper()
	code, resp := env.do(t, env.tasks.CreateTask, http.MethodPost, "/api/tasks", body)
	require.Equal(t, http.StatusCreated, code)
	return resp
}
