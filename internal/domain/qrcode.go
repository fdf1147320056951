package domain

import "time"

// QRCode representa um código rastreável com redirecionamento
type QRCode struct {
	ShortCode   string    `json:"short_code"`
	Name        string    `json:"name"`
	TargetURL   string    `json:"target_url"`
	StoreID     StoreID   `json:"store_id,omitempty"`
	TotalClicks int       `json:"total_clicks"`
	Deleted     bool      `json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
}

// QRClick registra um acesso individual a um QR code
type QRClick struct {
	ShortCode string    `json:"short_code"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referer   string    `json:"referer,omitempty"`
}

// QRAnalytics resume os acessos de um QR code
type QRAnalytics struct {
	ShortCode      string         `json:"short_code"`
	TotalClicks    int            `json:"total_clicks"`
	UniqueVisitors int            `json:"unique_visitors"`
	ClicksByDay    map[string]int `json:"clicks_by_day"`
}
