package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskdash/internal/applicant"
)

func TestClientPredictSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict_segment/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body, 9)
		assert.Equal(t, float64(35), body["Age"])
		assert.Equal(t, "male", body["Sex"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"risk_segment_id": 0, "risk_segment_name": "Prime Borrowers"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Predict(context.Background(), applicant.Default())
	require.NoError(t, err)
	assert.Equal(t, 0, result.RiskSegmentID)
	assert.Equal(t, "Prime Borrowers", result.RiskSegmentName)
	assert.Equal(t, SegmentLow, result.Segment())
}

func TestClientPredictValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "Age must be positive"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Predict(context.Background(), applicant.Default())
	assert.Nil(t, result)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Age must be positive", apiErr.Detail)
	assert.Contains(t, err.Error(), "Age must be positive")
}

func TestClientPredictErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), applicant.Default())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unknown API Error", apiErr.Detail)
}

func TestClientPredictConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close() // Nothing is listening anymore.

	client := NewClient(endpoint, 2*time.Second)
	result, err := client.Predict(context.Background(), applicant.Default())
	assert.Nil(t, result)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, endpoint+"/predict_segment/", connErr.Endpoint)
	assert.Contains(t, err.Error(), endpoint)
}

func TestClientPredictMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), applicant.Default())
	require.Error(t, err)

	var apiErr *APIError
	var connErr *ConnectionError
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, errors.As(err, &connErr))
	assert.Contains(t, err.Error(), "decode")
}

func TestClientPredictNoCaching(t *testing.T) {
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		bodies = append(bodies, string(buf))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"risk_segment_id": 2, "risk_segment_name": "Subprime"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	in := applicant.Default()

	// Submitting identical input twice must produce two independent,
	// identical requests.
	_, err := client.Predict(context.Background(), in)
	require.NoError(t, err)
	_, err = client.Predict(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestClientPredictBoundaryAges(t *testing.T) {
	var gotAges []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in applicant.Input
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		gotAges = append(gotAges, in.Age)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"risk_segment_id": 1, "risk_segment_name": "Standard"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	for _, age := range []int{applicant.AgeBounds.Min, applicant.AgeBounds.Max} {
		in := applicant.Default()
		in.Age = age
		require.NoError(t, in.Validate())
		_, err := client.Predict(context.Background(), in)
		require.NoError(t, err)
	}

	// Boundary ages are forwarded unchanged.
	assert.Equal(t, []int{18, 100}, gotAges)
}

func TestNewClientDefaultTimeout(t *testing.T) {
	client := NewClient("http://127.0.0.1:8000", 0)
	assert.Equal(t, 30*time.Second, client.client.Timeout)
	assert.Equal(t, "http://127.0.0.1:8000/predict_segment/", client.Endpoint())
}
