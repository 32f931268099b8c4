package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"daily-planner/models"
	"daily-planner/store"
)

// plannerUpdate distinguishes omitted fields (nil RawMessage) from fields
// explicitly sent, including an explicit null heroImage.
type plannerUpdate struct {
	DailyData  json.RawMessage `json:"dailyData"`
	WeeklyData json.RawMessage `json:"weeklyData"`
	HeroImage  json.RawMessage `json:"heroImage"`
}

type plannerResponse struct {
	DailyData  models.JSONMap `json:"dailyData"`
	WeeklyData models.JSONMap `json:"weeklyData"`
	HeroImage  *string        `json:"heroImage"`
}

func GetPlanner(w http.ResponseWriter, r *http.Request) {
	planner, err := store.GetOrCreatePlanner(getUserID(r))
	if err != nil {
		log.Println("Get planner error:", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve planner data")
		return
	}

	writeJSON(w, http.StatusOK, plannerResponse{
		DailyData:  planner.DailyData,
		WeeklyData: planner.WeeklyData,
		HeroImage:  planner.HeroImage,
	})
}

func UpdatePlanner(w http.ResponseWriter, r *http.Request) {
	var req plannerUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	planner, err := store.GetOrCreatePlanner(getUserID(r))
	if err != nil {
		log.Println("Update planner error:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update planner data")
		return
	}

	// Present mappings replace the stored mapping wholesale; omitted
	// fields keep their previous value.
	if req.DailyData != nil {
		var m models.JSONMap
		if err := json.Unmarshal(req.DailyData, &m); err != nil {
			writeError(w, http.StatusBadRequest, "dailyData must be an object")
			return
		}
		planner.DailyData = m
	}
	if req.WeeklyData != nil {
		var m models.JSONMap
		if err := json.Unmarshal(req.WeeklyData, &m); err != nil {
			writeError(w, http.StatusBadRequest, "weeklyData must be an object")
			return
		}
		planner.WeeklyData = m
	}
	if req.HeroImage != nil {
		var img *string
		if err := json.Unmarshal(req.HeroImage, &img); err != nil {
			writeError(w, http.StatusBadRequest, "heroImage must be a string or null")
			return
		}
		planner.HeroImage = img
	}

	if err := store.SavePlanner(planner); err != nil {
		log.Println("Update planner error:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update planner data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
