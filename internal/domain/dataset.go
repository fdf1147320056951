package domain

import "time"

// Dataset é o resultado completo de uma passada de ingestão: todos os
// registros normalizados, deduplicados e ordenados, mais o fingerprint dos
// arquivos que os originaram
type Dataset struct {
	Sales       []*SalesRecord     `json:"sales"`
	Brands      []*BrandRecord     `json:"brands"`
	Products    []*ProductRecord   `json:"products"`
	Customers   []*CustomerRecord  `json:"customers"`
	Budtenders  []*BudtenderRecord `json:"budtenders"`
	Mappings    []*BrandMapping    `json:"mappings"`
	Fingerprint string             `json:"fingerprint"`
	LoadedAt    time.Time          `json:"loaded_at"`
}

// UploadMetadata é o sidecar JSON gravado junto com cada CSV enviado
type UploadMetadata struct {
	Store      StoreID   `json:"store"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	UploadedAt time.Time `json:"uploaded_at"`
	Filename   string    `json:"filename"`
}

// DateRange é o intervalo de datas extraído do nome de um arquivo de upload
type DateRange struct {
	Start string
	End   string
}
