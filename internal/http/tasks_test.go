package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatusReader struct {
	statuses map[string]backlite.TaskStatus
	err      error
}

func (f *fakeStatusReader) Status(_ context.Context, taskID string) (backlite.TaskStatus, error) {
	if f.err != nil {
		return backlite.TaskStatusNotFound, f.err
	}
	status, ok := f.statuses[taskID]
	if !ok {
		return backlite.TaskStatusNotFound, nil
	}
	return status, nil
}

func tasksRouter(reader TaskStatusReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewTasksController(reader)
	router.GET("/api/tasks/types", controller.ListTaskTypes)
	router.GET("/api/tasks/:id", controller.GetTaskStatus)
	return router
}

func TestTasksController_GetTaskStatus(t *testing.T) {
	router := tasksRouter(&fakeStatusReader{statuses: map[string]backlite.TaskStatus{
		"running": backlite.TaskStatusRunning,
		"done":    backlite.TaskStatusSuccess,
	}})

	tests := []struct {
		id         string
		wantCode   int
		wantStatus string
	}{
		{"running", http.StatusOK, "running"},
		{"done", http.StatusOK, "success"},
		{"missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w := doRequest(router, "GET", "/api/tasks/"+tt.id, nil, "")
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantStatus == "" {
				return
			}
			var resp map[string]string
			decodeJSON(t, w, &resp)
			assert.Equal(t, tt.id, resp["id"])
			assert.Equal(t, tt.wantStatus, resp["status"])
		})
	}
}

func TestTasksController_StatusError(t *testing.T) {
	router := tasksRouter(&fakeStatusReader{err: errors.New("db closed")})

	w := doRequest(router, "GET", "/api/tasks/abc", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTasksController_ListTaskTypes(t *testing.T) {
	router := tasksRouter(&fakeStatusReader{})

	w := doRequest(router, "GET", "/api/tasks/types", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TaskTypes []TaskTypeInfo `json:"task_types"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.TaskTypes, 2)
	assert.Equal(t, "rebuild_paragraphs", resp.TaskTypes[0].Type)
	assert.Equal(t, "rebuild_all_paragraphs", resp.TaskTypes[1].Type)
}

func TestTaskStatusToString(t *testing.T) {
	assert.Equal(t, "pending", taskStatusToString(backlite.TaskStatusPending))
	assert.Equal(t, "failure", taskStatusToString(backlite.TaskStatusFailure))
	assert.Equal(t, "not_found", taskStatusToString(backlite.TaskStatusNotFound))
}
