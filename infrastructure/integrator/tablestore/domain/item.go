package domain

// Item é um registro da tabela remota no formato chave → valor. Os valores
// numéricos chegam como float64 na decodificação JSON.
type Item map[string]interface{}

// String retorna o valor do atributo como string, ou vazio se ausente
func (i Item) String(key string) string {
	if v, ok := i[key].(string); ok {
		return v
	}
	return ""
}

// Number retorna o valor do atributo como float64, ou 0 se ausente ou de
// outro tipo
func (i Item) Number(key string) float64 {
	switch v := i[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Bool retorna o valor do atributo como bool, ou false se ausente
func (i Item) Bool(key string) bool {
	if v, ok := i[key].(bool); ok {
		return v
	}
	return false
}

// ScanPage é uma página da varredura da tabela. NextCursor vazio indica que
// a varredura chegou ao fim.
type ScanPage struct {
	Items      []Item `json:"items"`
	NextCursor string `json:"next_cursor"`
}
