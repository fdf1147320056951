package domain

// Segmentos de valor de cliente, ordenados do menor para o maior valor
const (
	SegmentNewLow  = "New/Low"
	SegmentRegular = "Regular"
	SegmentGood    = "Good"
	SegmentVIP     = "VIP"
	SegmentWhale   = "Whale"
)

// Segmentos de recência, ordenados da visita mais recente para a mais antiga
const (
	RecencyActive = "Active"
	RecencyWarm   = "Warm"
	RecencyCool   = "Cool"
	RecencyCold   = "Cold"
	RecencyLost   = "Lost"
)

// CustomerRecord representa um cliente com métricas de valor vitalício.
// Os segmentos são sempre derivados na limpeza, nunca vêm do CSV.
type CustomerRecord struct {
	StoreName            string  `json:"store_name"`
	CustomerID           string  `json:"customer_id"`
	Name                 string  `json:"name"`
	DateOfBirth          string  `json:"date_of_birth,omitempty"`
	Age                  int     `json:"age,omitempty"`
	LifetimeVisits       float64 `json:"lifetime_visits"`
	LifetimeTransactions float64 `json:"lifetime_transactions"`
	LifetimeNetSales     float64 `json:"lifetime_net_sales"`
	LifetimeAOV          float64 `json:"lifetime_aov"`
	SignupDate           string  `json:"signup_date"`
	LastVisitDate        string  `json:"last_visit_date"`
	CustomerSegment      string  `json:"customer_segment"`
	RecencySegment       string  `json:"recency_segment"`
}

// SegmentRange define uma faixa de segmentação com limite superior exclusivo
type SegmentRange struct {
	Label string
	Min   float64
	Max   float64
}
