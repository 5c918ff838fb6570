package insights

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictRushFor(t *testing.T) {
	tests := []struct {
		time string
		rush string
	}{
		{"12:45 PM", "High"},
		{"1:30 PM", "High"},
		{"10:00 AM", "Medium"},
		{"4:15 PM", "Medium"},
		{"9:00 AM", "Low"},
		{"3:30 PM", "Low"},
	}

	for _, tt := range tests {
		got := PredictRushFor(tt.time)
		assert.Equal(t, tt.rush, got.Rush, "time=%s", tt.time)
	}
}

func TestPredictRushEndpoint(t *testing.T) {
	body := strings.NewReader(`{"day":"Monday","time":"12:45 PM"}`)
	req := httptest.NewRequest(http.MethodPost, "/predict-rush", body)
	rec := httptest.NewRecorder()

	PredictRush(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got RushPrediction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "High", got.Rush)
	assert.Equal(t, "3:00 PM – 4:00 PM", got.BestTime)
	assert.Equal(t, "12–15 minutes", got.WaitTime)
}

func TestPredictRushMorning(t *testing.T) {
	body := strings.NewReader(`{"day":"Monday","time":"10:00 AM"}`)
	req := httptest.NewRequest(http.MethodPost, "/predict-rush", body)
	rec := httptest.NewRecorder()

	PredictRush(rec, req)

	var got RushPrediction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Medium", got.Rush)
	assert.Equal(t, "11:00 AM – 12:00 PM", got.BestTime)
	assert.Equal(t, "6–8 minutes", got.WaitTime)
}

func TestPredictRushOffPeak(t *testing.T) {
	body := strings.NewReader(`{"day":"Monday","time":"9:00 AM"}`)
	req := httptest.NewRequest(http.MethodPost, "/predict-rush", body)
	rec := httptest.NewRecorder()

	PredictRush(rec, req)

	var got RushPrediction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Low", got.Rush)
	assert.Equal(t, "Now", got.BestTime)
	assert.Equal(t, "2–3 minutes", got.WaitTime)
}

func TestGetInsights(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	rec := httptest.NewRecorder()

	GetInsights(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "3:00 PM – 4:00 PM", got["bestOrderTime"])
	assert.Equal(t, float64(12), got["currentQueue"])
	assert.Equal(t, "6–8 minutes", got["avgWait"])
	assert.Equal(t, "2:30 PM", got["rushHourEnds"])
}

func TestStaffAdviceFor(t *testing.T) {
	high := StaffAdviceFor(26)
	assert.Equal(t, "High", high.RushLevel)
	assert.Equal(t, 5, high.StaffNeeded)
	assert.Equal(t, 5, high.TokenBatch)

	medium := StaffAdviceFor(16)
	assert.Equal(t, "Medium", medium.RushLevel)
	assert.Equal(t, 4, medium.StaffNeeded)

	low := StaffAdviceFor(15)
	assert.Equal(t, "Low", low.RushLevel)
	assert.Equal(t, 2, low.StaffNeeded)
	assert.Equal(t, 3, low.TokenBatch)
}

func TestWastagePercent(t *testing.T) {
	assert.Equal(t, 30, WastagePercent(100, 70))
	assert.Equal(t, 15, WastagePercent(100, 85))
	assert.Equal(t, 0, WastagePercent(0, 0))
	assert.Equal(t, 0, WastagePercent(0, 10))
	assert.Equal(t, 33, WastagePercent(3, 2))
}

func TestWastageInsightBranches(t *testing.T) {
	// >25%: cut preparation.
	got := WastageInsightFor("Monday", "Veg Biryani", 100, 70)
	assert.Equal(t, "30%", got.WastagePercentage)
	assert.Equal(t, "Reduce preparation by 25% on Mondays", got.Suggestion)
	assert.Equal(t, "≈ 15%", got.TomorrowPrediction)

	// >10%: trim slightly.
	got = WastageInsightFor("Monday", "Veg Biryani", 100, 85)
	assert.Equal(t, "15%", got.WastagePercentage)
	assert.Equal(t, "Reduce preparation slightly on Mondays", got.Suggestion)
	assert.Equal(t, "≈ 10%", got.TomorrowPrediction)

	// Nothing prepared: optimal branch.
	got = WastageInsightFor("Monday", "Veg Biryani", 0, 0)
	assert.Equal(t, "0%", got.WastagePercentage)
	assert.Equal(t, "Preparation is optimal", got.Suggestion)
	assert.Equal(t, "≈ 5%", got.TomorrowPrediction)
}

func TestStaffWastageInsightsEndpoint(t *testing.T) {
	body := strings.NewReader(`{"day":"Monday","itemName":"Veg Biryani","preparedQty":100,"soldQty":70}`)
	req := httptest.NewRequest(http.MethodPost, "/staff-wastage-insights", body)
	rec := httptest.NewRecorder()

	StaffWastageInsights(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got WastageInsight
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Veg Biryani", got.HighestWastageItem)
	assert.Equal(t, "30%", got.WastagePercentage)
	assert.Equal(t, "Over-preparation on low attendance days", got.Reason)
}

func TestHome(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Home(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SkipQ Canteen Backend Running", rec.Body.String())
}
