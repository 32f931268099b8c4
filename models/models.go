package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// JSONMap holds planner entries keyed by arbitrary strings (e.g. date
// strings). Values are opaque; the server stores and returns them without
// interpreting their contents.
type JSONMap map[string]json.RawMessage

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", src)
	}
	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

type Planner struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	DailyData   JSONMap   `json:"dailyData"`
	WeeklyData  JSONMap   `json:"weeklyData"`
	HeroImage   *string   `json:"heroImage"`
	LastUpdated time.Time `json:"last_updated"`
}
