// Package insights serves the canned rush-prediction and wastage
// heuristics behind the student dashboard and staff screens. No model
// runs here; responses follow fixed time-window and threshold rules.
package insights

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("SkipQ Canteen Backend Running"))
}

type RushPrediction struct {
	Rush     string `json:"rush"`
	BestTime string `json:"bestTime"`
	WaitTime string `json:"waitTime"`
}

// PredictRushFor applies the fixed time-window rules. Noon hours ("12",
// or a lone "1") are High; mid-morning and late afternoon ("10", "4")
// are Medium; everything else is Low. "12" is checked before "10"/"4"
// and "10" before the bare "1" so 12:45 reads as noon and 10:00 as
// mid-morning.
func PredictRushFor(timeOfDay string) RushPrediction {
	switch {
	case strings.Contains(timeOfDay, "12"):
		return RushPrediction{Rush: "High", BestTime: "3:00 PM – 4:00 PM", WaitTime: "12–15 minutes"}
	case strings.Contains(timeOfDay, "10"), strings.Contains(timeOfDay, "4"):
		return RushPrediction{Rush: "Medium", BestTime: "11:00 AM – 12:00 PM", WaitTime: "6–8 minutes"}
	case strings.Contains(timeOfDay, "1"):
		return RushPrediction{Rush: "High", BestTime: "3:00 PM – 4:00 PM", WaitTime: "12–15 minutes"}
	default:
		return RushPrediction{Rush: "Low", BestTime: "Now", WaitTime: "2–3 minutes"}
	}
}

func PredictRush(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day  string `json:"day"`
		Time string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PredictRushFor(req.Time))
}

func GetInsights(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"bestOrderTime": "3:00 PM – 4:00 PM",
		"currentQueue":  12,
		"avgWait":       "6–8 minutes",
		"rushHourEnds":  "2:30 PM",
	})
}

type StaffAdvice struct {
	RushLevel   string `json:"rushLevel"`
	StaffNeeded int    `json:"staffNeeded"`
	TokenBatch  int    `json:"tokenBatch"`
	PrepAdvice  string `json:"prepAdvice"`
	PoweredBy   string `json:"poweredBy"`
}

// StaffAdviceFor maps the active-order count onto staffing thresholds.
func StaffAdviceFor(activeOrders int) StaffAdvice {
	switch {
	case activeOrders > 25:
		return StaffAdvice{
			RushLevel:   "High",
			StaffNeeded: 5,
			TokenBatch:  5,
			PrepAdvice:  "Prepare food early and increase staff",
			PoweredBy:   "SkipQ Insights",
		}
	case activeOrders > 15:
		return StaffAdvice{
			RushLevel:   "Medium",
			StaffNeeded: 4,
			TokenBatch:  4,
			PrepAdvice:  "Prepare moderately and monitor rush",
			PoweredBy:   "SkipQ Insights",
		}
	default:
		return StaffAdvice{
			RushLevel:   "Low",
			StaffNeeded: 2,
			TokenBatch:  3,
			PrepAdvice:  "Normal preparation is sufficient",
			PoweredBy:   "SkipQ Insights",
		}
	}
}

func StaffAiAdvice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Time         string `json:"time"`
		ActiveOrders int    `json:"activeOrders"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StaffAdviceFor(req.ActiveOrders))
}

type WastageInsight struct {
	HighestWastageItem string `json:"highestWastageItem"`
	WastagePercentage  string `json:"wastagePercentage"`
	Reason             string `json:"reason"`
	Suggestion         string `json:"suggestion"`
	TomorrowPrediction string `json:"tomorrowPrediction"`
	PoweredBy          string `json:"poweredBy"`
}

// WastagePercent rounds 100*(prepared-sold)/prepared; 0 when nothing
// was prepared.
func WastagePercent(preparedQty, soldQty int) int {
	if preparedQty <= 0 {
		return 0
	}
	return int(math.Round(float64(preparedQty-soldQty) / float64(preparedQty) * 100))
}

// WastageInsightFor selects the suggestion branch from the wastage
// percentage thresholds (>25% reduce, >10% reduce slightly).
func WastageInsightFor(day, itemName string, preparedQty, soldQty int) WastageInsight {
	percent := WastagePercent(preparedQty, soldQty)

	suggestion := "Preparation is optimal"
	prediction := "≈ 5%"
	if percent > 25 {
		suggestion = "Reduce preparation by 25% on " + day + "s"
		prediction = "≈ 15%"
	} else if percent > 10 {
		suggestion = "Reduce preparation slightly on " + day + "s"
		prediction = "≈ 10%"
	}

	return WastageInsight{
		HighestWastageItem: itemName,
		WastagePercentage:  strconv.Itoa(percent) + "%",
		Reason:             "Over-preparation on low attendance days",
		Suggestion:         suggestion,
		TomorrowPrediction: prediction,
		PoweredBy:          "SkipQ Insights",
	}
}

func StaffWastageInsights(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day         string `json:"day"`
		ItemName    string `json:"itemName"`
		PreparedQty int    `json:"preparedQty"`
		SoldQty     int    `json:"soldQty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WastageInsightFor(req.Day, req.ItemName, req.PreparedQty, req.SoldQty))
}
