package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger := SetupLogging()
	logData := NewLogData(logger)

	logData.AddData("userID", "u-1")
	stop := logData.AddTiming("storageMs")
	stop()
	first := logData.AddToExistingTiming("totalMs")
	first()
	second := logData.AddToExistingTiming("totalMs")
	second()

	entry := logData.Log()
	assert.Equal(t, "u-1", entry.Data["userID"])
	assert.Contains(t, entry.Data, "storageMs")
	assert.Contains(t, entry.Data, "totalMs")
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging())
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestApplyLevel(t *testing.T) {
	logger := SetupLogging()
	require.NoError(t, ApplyLevel(logger, "debug"))
	assert.Equal(t, "debug", logger.GetLevel().String())

	assert.Error(t, ApplyLevel(logger, "loud"))
}

func TestLoggingWrapper(t *testing.T) {
	var out bytes.Buffer
	logger := SetupLogging()
	logger.Out = &out

	handler := LoggingWrapper("Probe", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusBadRequest)
			return errors.New("probe: method not GET")
		}
		w.WriteHeader(http.StatusOK)
		return nil
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, out.String(), "Handler.Probe.Complete")

	out.Reset()
	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/probe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	var last map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &last))
	assert.Equal(t, "Handler.Probe.Error", last["msg"])
	assert.Equal(t, "error", last["loglevel"])
	assert.Equal(t, "probe: method not GET", last["error"])
}
