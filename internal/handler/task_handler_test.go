package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/model"
)

func TestTaskHandler_CreateTask_Defaults(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, `{"name":"Ann","email":"ann@x.com"}`)

	resp := env.createTask(t, `{"title":"Write spec","userId":1}`)
	assert.Equal(t, "Task created successfully", resp.Message)

	var task model.Task
	require.NoError(t, unmarshalData(resp, &task))
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, int64(1), task.UserID)
}

func TestTaskHandler_CreateTask_UnknownUser(t *testing.T) {
	env := newTestEnv()

	code, resp := env.do(t, env.tasks.CreateTask, http.MethodPost, "/api/tasks", `{"title":"Write spec","userId":42}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "USER_NOT_FOUND", resp.Code)

	// nothing stored
	listCode, list := env.do(t, env.tasks.ListTasks, http.MethodGet, "/api/tasks", "")
	assert.Equal(t, http.StatusOK, listCode)
	require.NotNil(t, list.Count)
	assert.Equal(t, 0, *list.Count)
}

func TestTaskHandler_CreateTask_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "missing title", body: `{"userId":1}`, wantMsg: "title is required"},
		{name: "missing user id", body: `{"title":"Write spec"}`, wantMsg: "user ID is required"},
		{name: "bad status", body: `{"title":"Write spec","userId":1,"status":"done"}`,
			wantMsg: "invalid status, must be one of: pending, in-progress, completed"},
		{name: "bad priority", body: `{"title":"Write spec","userId":1,"priority":"urgent"}`,
			wantMsg: "invalid priority, must be one of: low, medium, high"},
		{name: "non-numeric user id", body: `{"title":"Write spec","userId":"abc"}`,
			wantMsg: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.createUser(t, `{"name":"Ann","email":"ann@x.com"}`)

			code, resp := env.do(t, env.tasks.CreateTask, http.MethodPost, "/api/tasks", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}

func TestTaskHandler_ListTasks_Filters(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, `{"name":"Ann","email":"ann@x.com"}`)
	env.createUser(t, `{"name":"Ben","email":"ben@x.com"}`)
	env.createTask(t, `{"title":"One","userId":1,"status":"completed"}`)
	env.createTask(t, `{"title":"Two","userId":2,"priority":"high"}`)
	env.createTask(t, `{"title":"Three","userId":1,"status":"completed","priority":"high"}`)

	code, resp := env.do(t, env.tasks.ListTasks, http.MethodGet, "/api/tasks?status=completed", "")
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)

	var tasks []model.Task
	require.NoError(t, unmarshalData(resp, &tasks))
	require.Len(t, tasks, 2)
	// insertion order preserved
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(3), tasks[1].ID)

	code, resp = env.do(t, env.tasks.ListTasks, http.MethodGet, "/api/tasks?userId=2&priority=high", "")
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)
}

func TestTaskHandler_ListTasks_MalformedFilters(t *testing.T) {
	env := newTestEnv()

	code, resp := env.do(t, env.tasks.ListTasks, http.MethodGet, "/api/tasks?userId=abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_USER_ID", resp.Code)
	assert.Equal(t, "user ID must be a valid number", resp.Error)

	code, resp = env.do(t, env.tasks.ListTasks, http.MethodGet, "/api/tasks?status=done", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)

	code, resp = env.do(t, env.tasks.ListTasks, http.MethodGet, "/api/tasks?priority=urgent", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	env := newTestEnv()

	for _, id := range []string{"9999", "abc"} {
		code, resp := env.do(t, env.tasks.GetTask, http.MethodGet, "/api/tasks/"+id, "", "id", id)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "TASK_NOT_FOUND", resp.Code)
	}
}

func TestTaskHandler_UpdateTask_Partial(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, `{"name":"Ann","email":"ann@x.com"}`)
	created := env.createTask(t, `{"title":"Write spec","userId":1,"description":"draft"}`)

	var before model.Task
	require.NoError(t, unmarshalData(created, &before))

	code, resp := env.do(t, env.tasks.UpdateTask, http.MethodPut, "/api/tasks/1",
		`{"status":"completed"}`, "id", "1")
	assert.Equal(t, http.StatusOK, code)

	var task model.Task
	require.NoError(t, unmarshalData(resp, &task))
	assert.Equal(t, before.ID, task.ID)
	assert.Equal(t, before.UserID, task.UserID)
	assert.Equal(t, before.Title, task.Title)
	assert.Equal(t, "draft", task.Description)
	assert.Equal(t, model.StatusCompleted, task.Status)
	assert.False(t, task.UpdatedAt.Before(before.UpdatedAt))
}

func TestTaskHandler_UpdateTask_EmptyDescriptionAllowed(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, `{"name":"Ann","email":"ann@x.com"}`)
	env.createTask(t, `{"title":"Write spec","userId":1,"description":"draft"}`)

	code, resp := env.do(t, env.tasks.UpdateTask, http.MethodPut, "/api/tasks/1",
		`{"description":""}`, "id", "1")
	assert.Equal(t, http.StatusOK, code)

	var task model.Task
	require.NoError(t, unmarshalData(resp, &task))
	assert.Empty(t, task.Description)
}

func TestTaskHandler_UpdateTask_Failures(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, `{"name":"Ann","email":"ann@x.com"}`)
	env.createTask(t, `{"title":"Write spec","userId":1}`)

	code, resp := env.do(t, env.tasks.UpdateTask, http.MethodPut, "/api/tasks/9999",
		`{"status":"completed"}`, "id", "9999")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "TASK_NOT_FOUND", resp.Code)

	code, resp = env.do(t, env.tasks.UpdateTask, http.MethodPut, "/api/tasks/1",
		`{"title":""}`, "id", "1")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "title must not be empty", resp.Error)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, `{"name":"Ann","email":"ann@x.com"}`)
	env.createTask(t, `{"title":"Write spec","userId":1}`)

	code, resp := env.do(t, env.tasks.DeleteTask, http.MethodDelete, "/api/tasks/1", "", "id", "1")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Task deleted successfully", resp.Message)

	code, _ = env.do(t, env.tasks.GetTask, http.MethodGet, "/api/tasks/1", "", "id", "1")
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = env.do(t, env.tasks.DeleteTask, http.MethodDelete, "/api/tasks/9999", "", "id", "9999")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "TASK_NOT_FOUND", resp.Code)
}
