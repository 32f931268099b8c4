package store

import (
	"database/sql"
	"errors"

	"daily-planner/db"
	"daily-planner/models"
)

// FindPlanner returns (nil, nil) when the user has no planner yet.
func FindPlanner(userID int) (*models.Planner, error) {
	var p models.Planner
	err := db.DB.QueryRow(
		"SELECT id, user_id, daily_data, weekly_data, hero_image, last_updated FROM planners WHERE user_id = ?",
		userID,
	).Scan(&p.ID, &p.UserID, &p.DailyData, &p.WeeklyData, &p.HeroImage, &p.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreatePlanner returns the user's planner, creating an empty one on
// first access. Losing a concurrent creation race falls back to reading
// the winner's row.
func GetOrCreatePlanner(userID int) (*models.Planner, error) {
	p, err := FindPlanner(userID)
	if err != nil || p != nil {
		return p, err
	}

	_, err = db.DB.Exec(
		"INSERT INTO planners (user_id, daily_data, weekly_data) VALUES (?, '{}', '{}')",
		userID,
	)
	if err != nil && !isDuplicate(err) {
		return nil, err
	}
	return FindPlanner(userID)
}

// SavePlanner upserts the planner keyed on user_id and refreshes
// last_updated on every write.
func SavePlanner(p *models.Planner) error {
	_, err := db.DB.Exec(
		`INSERT INTO planners (user_id, daily_data, weekly_data, hero_image)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
			daily_data = VALUES(daily_data),
			weekly_data = VALUES(weekly_data),
			hero_image = VALUES(hero_image),
			last_updated = CURRENT_TIMESTAMP`,
		p.UserID, p.DailyData, p.WeeklyData, p.HeroImage,
	)
	return err
}
