package ingesting

import (
	"encoding/json"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// ErrNoRecords indica um upload cujo conteúdo não tem nenhuma linha de CSV
// interpretável
var ErrNoRecords = errors.New("o arquivo não contém linhas de CSV interpretáveis")

// Tipos de upload aceitos, na convenção de nome dos arquivos
var validUploadTypes = map[string]bool{
	"sales":     true,
	"brand":     true,
	"product":   true,
	"customers": true,
}

// ValidUploadType indica se o tipo de dado pode ser enviado por upload
func ValidUploadType(dataType string) bool {
	return validUploadTypes[dataType]
}

// UploadParams descreve um envio de CSV para o bucket
type UploadParams struct {
	StoreID   domain.StoreID
	DataType  string
	StartDate string
	EndDate   string
	Filename  string
	Content   []byte
}

// UploadResult é o retorno de um upload aceito: a chave gravada no bucket e
// quantas linhas o cleaner do tipo enviado aceitou
type UploadResult struct {
	Key             string
	AcceptedRecords int
}

// UploadCSV valida o conteúdo passando cada linha pelo cleaner do tipo
// enviado e grava o CSV bruto no bucket seguindo a convenção de nome que a
// descoberta de arquivos espera, junto com o sidecar de metadados. Conteúdo
// sem nenhuma linha interpretável é rejeitado com ErrNoRecords. O cache do
// dataset é invalidado para que a próxima leitura enxergue o arquivo novo.
func (s *Service) UploadCSV(params UploadParams) (*UploadResult, error) {
	if !ValidUploadType(params.DataType) {
		return nil, fmt.Errorf("tipo de upload desconhecido: %s", params.DataType)
	}

	rows := parseRows(params.Content)
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	accepted := s.countAccepted(params, rows)

	key := s.buildUploadKey(params)

	if err := s.objectStore.PutObject(key, params.Content, "text/csv"); err != nil {
		return nil, fmt.Errorf("erro ao gravar o arquivo no bucket: %w", err)
	}

	metadata := domain.UploadMetadata{
		Store:      params.StoreID,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		UploadedAt: s.now(),
		Filename:   params.Filename,
	}

	encoded, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar os metadados do upload: %w", err)
	}

	metadataKey := strings.TrimSuffix(key, ".csv") + "_metadata.json"
	if err := s.objectStore.PutObject(metadataKey, encoded, "application/json"); err != nil {
		// O CSV já está no bucket; o sidecar é complementar
		logrus.WithError(err).WithField("arquivo", metadataKey).Warn("Erro ao gravar o sidecar de metadados")
	}

	s.cache.Invalidate()

	logrus.WithFields(logrus.Fields{
		"arquivo": key,
		"loja":    params.StoreID,
		"tipo":    params.DataType,
		"aceitas": accepted,
	}).Info("Upload de CSV concluído")

	return &UploadResult{Key: key, AcceptedRecords: accepted}, nil
}

// countAccepted antecipa o veredito da próxima carga: passa cada linha pelo
// cleaner do tipo enviado e conta quantas seriam aceitas. O arquivo gravado
// continua sendo o bruto; a limpeza canônica segue no carregador.
func (s *Service) countAccepted(params UploadParams, rows []RawRow) int {
	accepted := 0
	for _, row := range rows {
		switch params.DataType {
		case "sales":
			if s.cleaner.CleanSalesRecord(row, params.StoreID) != nil {
				accepted++
			}
		case "brand":
			if s.cleaner.CleanBrandRecord(row, params.StoreID, nil) != nil {
				accepted++
			}
		case "product":
			if s.cleaner.CleanProductRecord(row, params.StoreID) != nil {
				accepted++
			}
		case "customers":
			if s.cleaner.CleanCustomerRecord(row) != nil {
				accepted++
			}
		}
	}

	return accepted
}

// buildUploadKey monta a chave
// prefix/<loja>/<tipo>_<inicio>_<fim>_<timestamp>-<sufixo>.csv
func (s *Service) buildUploadKey(params UploadParams) string {
	dateRange := strings.ReplaceAll(params.StartDate+"_"+params.EndDate, "/", "-")
	timestamp := s.now().UTC().Format("2006-01-02T15-04-05")

	// Sufixo aleatório curto evita colisão entre uploads no mesmo segundo
	suffix, err := gonanoid.New(6)
	if err != nil {
		suffix = fmt.Sprintf("%d", s.now().UnixNano()%1000000)
	}

	return fmt.Sprintf("%s%s/%s_%s_%s-%s.csv",
		s.cfg.ObjectStore.Prefix,
		params.StoreID,
		params.DataType,
		dateRange,
		timestamp,
		suffix,
	)
}
