package monitor

import "time"

type Status struct {
	PostgreSQL bool      `json:"postgresql"`
	Redis      bool      `json:"redis"`
	PhotoStore bool      `json:"photo_store"`
	PhotoCount int       `json:"photo_count"`
	LastCheck  time.Time `json:"last_check"`
}
