package model

import "time"

const DefaultProjectColor = "#6C757D"

// Project is a label tasks may point at through ProjectID.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
