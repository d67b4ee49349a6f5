package mlspace

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cropentity "nethra_backend/internal/feature/croprec/domain/entity"
	fertentity "nethra_backend/internal/feature/fertilizer/domain/entity"
	"nethra_backend/internal/platform/breaker"
	infrahttp "nethra_backend/internal/platform/http"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ML_SPACE_BASE_URL", "")
	assert.Equal(t, DefaultBaseURL, LoadConfig().BaseURL)

	t.Setenv("ML_SPACE_BASE_URL", "http://localhost:7860/")
	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:7860", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestClient_PredictFertilizer_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict-fertilizer", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Sandy", got["soil_type"])
		assert.Equal(t, "Maize", got["crop_type"])
		assert.Equal(t, 37.0, got["nitrogen"])
		assert.Contains(t, got, "phosphorous")

		_, _ = w.Write([]byte(`{"fertilizer_prediction":["Urea","DAP"]}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL}, server.Client(), nil, nil)
	names, err := c.PredictFertilizer(context.Background(), fertentity.FertilizerQuery{
		Temperature: 26, Humidity: 52, Moisture: 38, SoilType: "Sandy", CropType: "Maize", Nitrogen: 37,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Urea", "DAP"}, names)
}

func TestClient_PredictFertilizer_MissingField(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL}, server.Client(), nil, nil)
	names, err := c.PredictFertilizer(context.Background(), fertentity.FertilizerQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{}, names)
}

func TestClient_PredictFertilizer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("model not loaded"))
			},
			check: func(t *testing.T, err error) {
				var se *infrahttp.StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, "server responded with 500: model not loaded", err.Error())
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, infrahttp.ErrInvalidJSON)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewClient(Config{BaseURL: server.URL}, server.Client(), nil, nil)
			_, err := c.PredictFertilizer(context.Background(), fertentity.FertilizerQuery{})

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_RecommendCrop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want cropentity.CropPrediction
	}{
		{
			name: "full response",
			body: `{"crop_recommendation":"rice","scaled_values":[[-0.8,-0.2,0.3,1.1],[9,9,9,9]],"confidence":0.93}`,
			want: cropentity.CropPrediction{Crop: "rice", ScaledValues: []float64{-0.8, -0.2, 0.3, 1.1}, Confidence: 0.93},
		},
		{
			name: "empty response",
			body: `{}`,
			want: cropentity.CropPrediction{},
		},
		{
			name: "null fields",
			body: `{"crop_recommendation":null,"scaled_values":null,"confidence":null}`,
			want: cropentity.CropPrediction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/predict-new-model", r.URL.Path)
				var got map[string]float64
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, map[string]float64{"temperature": 25, "humidity": 80, "rainfall": 200, "nitrogen": 90}, got)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(Config{BaseURL: server.URL}, server.Client(), nil, nil)
			got, err := c.RecommendCrop(context.Background(), cropentity.CropQuery{Temperature: 25, Humidity: 80, Rainfall: 200, Nitrogen: 90})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_BreakerOpensOnRepeatedFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cb := breaker.New("mlspace-test", breaker.Config{Fails: 2, Timeout: time.Minute}, nil)
	c := NewClient(Config{BaseURL: server.URL}, server.Client(), cb, nil)

	for i := 0; i < 2; i++ {
		_, err := c.RecommendCrop(context.Background(), cropentity.CropQuery{})
		require.Error(t, err)
	}
	_, err := c.PredictFertilizer(context.Background(), fertentity.FertilizerQuery{})

	assert.ErrorIs(t, err, breaker.ErrUnavailable)
	assert.Equal(t, 2, calls)
}
