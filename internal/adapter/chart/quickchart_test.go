package chart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/adapter/chart"
)

func TestQuickChartRenderer_Render(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"url":"https://quickchart.io/chart/render/abc123"}`))
	}))
	defer server.Close()

	renderer := chart.NewQuickChartRenderer(server.URL, 5*time.Second, zap.NewNop())

	config := chart.PieConfig("Task Status Distribution for Apollo", []string{"DONE", "TODO"}, []int{2, 1})
	url, err := renderer.Render(context.Background(), config)

	require.NoError(t, err)
	assert.Equal(t, "https://quickchart.io/chart/render/abc123", url)

	assert.Equal(t, float64(500), captured["width"])
	assert.Equal(t, float64(300), captured["height"])
	assert.Equal(t, "transparent", captured["bkg"])
	assert.Equal(t, "png", captured["format"])
	assert.Equal(t, float64(1), captured["devicePixelRatio"])

	payload, ok := captured["chart"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pie", payload["type"])
}

func TestQuickChartRenderer_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	renderer := chart.NewQuickChartRenderer(server.URL, 5*time.Second, zap.NewNop())

	_, err := renderer.Render(context.Background(), chart.PieConfig("t", nil, nil))
	assert.Error(t, err)
}

func TestQuickChartRenderer_MissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	renderer := chart.NewQuickChartRenderer(server.URL, 5*time.Second, zap.NewNop())

	_, err := renderer.Render(context.Background(), chart.PieConfig("t", nil, nil))
	assert.Error(t, err)
}

func TestLineConfig(t *testing.T) {
	config := chart.LineConfig("Velocity for Project: Apollo", "Project Velocity (Story Points per Week)",
		[]string{"2025-W23", "2025-W24"}, []int{10, 1})

	assert.Equal(t, "line", config["type"])

	data := config["data"].(map[string]interface{})
	assert.Equal(t, []string{"2025-W23", "2025-W24"}, data["labels"])

	dataset := data["datasets"].([]map[string]interface{})[0]
	assert.Equal(t, "Project Velocity (Story Points per Week)", dataset["label"])
	assert.Equal(t, []int{10, 1}, dataset["data"])
	assert.Equal(t, true, dataset["fill"])
}

func TestBarConfig(t *testing.T) {
	config := chart.BarConfig("Monthly Completed Story Points (Last Year)", "Completed Story Points",
		[]string{"2025-01"}, []int{8})

	assert.Equal(t, "bar", config["type"])

	options := config["options"].(map[string]interface{})
	title := options["plugins"].(map[string]interface{})["title"].(map[string]interface{})
	assert.Equal(t, "Monthly Completed Story Points (Last Year)", title["text"])

	// marshals cleanly for the wire
	_, err := json.Marshal(config)
	assert.NoError(t, err)
}
