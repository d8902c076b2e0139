package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-importer/internal/domain"
)

func TestNormalizeRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.RawRow
		validate func(t *testing.T, records []*domain.MetricRecord)
	}{
		{
			name: "Linha completa deve gerar registro com todos os campos",
			rows: []domain.RawRow{
				{
					domain.ColumnMetricName:     "Receita Total",
					domain.ColumnOrder:          "1",
					domain.ColumnDashboardSQL:   "SELECT SUM(amount) FROM sales",
					domain.ColumnDetailSQL:      "SELECT * FROM sales",
					domain.ColumnLeaderboardSQL: "SELECT store, SUM(amount) FROM sales GROUP BY store",
					domain.ColumnValueType:      "CURRENCY",
					domain.ColumnGroupName:      "Sales Metrics",
					domain.ColumnDescription:    "Receita consolidada",
				},
			},
			validate: func(t *testing.T, records []*domain.MetricRecord) {
				require.Len(t, records, 1)
				record := records[0]

				assert.Equal(t, "Receita Total", *record.Name)
				assert.Equal(t, 1, *record.Order)
				assert.Equal(t, "SELECT SUM(amount) FROM sales", *record.MetricValueQuery)
				assert.Equal(t, "SELECT * FROM sales", *record.DetailsQuery)
				assert.Equal(t, "SELECT store, SUM(amount) FROM sales GROUP BY store", record.LeaderboardQuery)
				assert.Equal(t, domain.ValueTypeCurrency, record.MetricValueType)
				assert.Equal(t, domain.GroupSalesMetrics, record.GroupName)
				assert.Equal(t, "Receita consolidada", *record.Description)
			},
		},
		{
			name: "Leaderboard ausente deve receber o marcador padrão",
			rows: []domain.RawRow{
				{domain.ColumnMetricName: "Conversão"},
			},
			validate: func(t *testing.T, records []*domain.MetricRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, defaultLeaderboardQuery, records[0].LeaderboardQuery)
			},
		},
		{
			name: "Leaderboard presente deve ser preservado sem interpretação",
			rows: []domain.RawRow{
				{
					domain.ColumnMetricName:     "Conversão",
					domain.ColumnLeaderboardSQL: "isto não é SQL válido",
				},
			},
			validate: func(t *testing.T, records []*domain.MetricRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, "isto não é SQL válido", records[0].LeaderboardQuery)
			},
		},
		{
			name: "Descrição ausente deve seguir como nil",
			rows: []domain.RawRow{
				{domain.ColumnMetricName: "Conversão"},
			},
			validate: func(t *testing.T, records []*domain.MetricRecord) {
				require.Len(t, records, 1)
				assert.Nil(t, records[0].Description)
			},
		},
		{
			name: "Valores padrão devem ser aplicados em linha mínima",
			rows: []domain.RawRow{
				{domain.ColumnMetricName: "Conversão"},
			},
			validate: func(t *testing.T, records []*domain.MetricRecord) {
				require.Len(t, records, 1)
				record := records[0]

				assert.False(t, record.IsTopDial)
				assert.Nil(t, record.DeletedAt)
				assert.Equal(t, domain.ValueTypePlain, record.MetricValueType)
				assert.Equal(t, domain.GroupSecondaryMetrics, record.GroupName)
				assert.False(t, record.CreatedAt.IsZero())
				assert.Equal(t, record.CreatedAt, record.UpdatedAt)
			},
		},
		{
			name: "Campos obrigatórios ausentes não interrompem a normalização",
			rows: []domain.RawRow{
				{domain.ColumnDescription: "linha sem nome nem consultas"},
			},
			validate: func(t *testing.T, records []*domain.MetricRecord) {
				require.Len(t, records, 1)
				record := records[0]

				assert.Nil(t, record.Name)
				assert.Nil(t, record.Order)
				assert.Nil(t, record.MetricValueQuery)
				assert.Nil(t, record.DetailsQuery)
			},
		},
		{
			name: "Ordem das linhas deve ser preservada",
			rows: []domain.RawRow{
				{domain.ColumnMetricName: "Primeira"},
				{domain.ColumnMetricName: "Segunda"},
				{domain.ColumnMetricName: "Terceira"},
			},
			validate: func(t *testing.T, records []*domain.MetricRecord) {
				require.Len(t, records, 3)
				assert.Equal(t, "Primeira", *records[0].Name)
				assert.Equal(t, "Segunda", *records[1].Name)
				assert.Equal(t, "Terceira", *records[2].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NormalizeRows(tt.rows))
		})
	}
}

func TestNormalizeRowsGeneratesDistinctIDs(t *testing.T) {
	// Linhas idênticas, inclusive em execuções repetidas, recebem sempre
	// identificadores novos e distintos
	rows := []domain.RawRow{
		{domain.ColumnMetricName: "Receita Total"},
		{domain.ColumnMetricName: "Receita Total"},
		{domain.ColumnMetricName: "Receita Total"},
	}

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		for _, record := range NormalizeRows(rows) {
			assert.NotEmpty(t, record.ID)
			assert.False(t, seen[record.ID], "identificador repetido: %s", record.ID)
			seen[record.ID] = true
		}
	}

	assert.Len(t, seen, 6)
}
