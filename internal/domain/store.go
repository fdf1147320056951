package domain

// StoreID identifica uma loja no sistema
type StoreID = string

const (
	StoreGrassRoots   StoreID = "grass_roots"
	StoreBarbaryCoast StoreID = "barbary_coast"
	StoreCombined     StoreID = "combined"
)

// StoreNameToID mapeia as variações de nome de loja encontradas nos CSVs
// para o identificador canônico
var StoreNameToID = map[string]StoreID{
	"Grass Roots":      StoreGrassRoots,
	"Grass Roots SF":   StoreGrassRoots,
	"grass_roots":      StoreGrassRoots,
	"Barbary Coast":    StoreBarbaryCoast,
	"Barbary Coast SF": StoreBarbaryCoast,
	"barbary_coast":    StoreBarbaryCoast,
}

// ResolveStoreID resolve o nome da loja para o ID canônico, usando o
// fallback informado quando o nome não é conhecido
func ResolveStoreID(storeName string, fallback StoreID) StoreID {
	if id, ok := StoreNameToID[storeName]; ok {
		return id
	}
	return fallback
}

// ValidStoreID indica se o identificador corresponde a uma loja conhecida
func ValidStoreID(id StoreID) bool {
	switch id {
	case StoreGrassRoots, StoreBarbaryCoast, StoreCombined:
		return true
	}
	return false
}
