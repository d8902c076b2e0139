package importing

import (
	"time"

	"github.com/vfg2006/metrics-importer/internal/domain"
	"github.com/vfg2006/metrics-importer/pkg/utils"
)

// defaultLeaderboardQuery é o marcador aplicado quando a planilha não define
// a consulta de leaderboard: é válido em qualquer base e nunca retorna linhas.
const defaultLeaderboardQuery = "SELECT 1 WHERE FALSE"

// NormalizeRows converte as linhas cruas da planilha em registros canônicos,
// um para um e na mesma ordem. Nenhuma falha é levantada aqui: campos
// obrigatórios ausentes seguem como nil até o banco, que decide rejeitá-los.
func NormalizeRows(rows []domain.RawRow) []*domain.MetricRecord {
	records := make([]*domain.MetricRecord, 0, len(rows))
	for _, raw := range rows {
		records = append(records, normalizeRow(raw))
	}

	return records
}

func normalizeRow(raw domain.RawRow) *domain.MetricRecord {
	row := domain.NewSpreadsheetRow(raw)

	id, _ := utils.GenerateMetricID()
	now := time.Now().UTC()

	record := &domain.MetricRecord{
		ID:               id,
		CreatedAt:        now,
		UpdatedAt:        now,
		DeletedAt:        nil,
		Name:             row.Name,
		Order:            row.Order,
		IsTopDial:        false,
		MetricValueQuery: row.DashboardSQL,
		DetailsQuery:     row.DetailSQL,
		LeaderboardQuery: defaultLeaderboardQuery,
		MetricValueType:  domain.ParseMetricValueType(stringValue(row.ValueType)),
		GroupName:        domain.ParseDashboardGroup(stringValue(row.GroupName)),
		Description:      row.Description,
	}

	if row.LeaderboardSQL != nil {
		record.LeaderboardQuery = *row.LeaderboardSQL
	}

	return record
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
