package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpreadsheetRow(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawRow
		validate func(t *testing.T, row SpreadsheetRow)
	}{
		{
			name: "Linha completa deve preencher todos os campos",
			raw: RawRow{
				ColumnMetricName:     "Receita Total",
				ColumnOrder:          "3",
				ColumnDashboardSQL:   "SELECT SUM(amount) FROM sales",
				ColumnDetailSQL:      "SELECT * FROM sales",
				ColumnLeaderboardSQL: "SELECT store, SUM(amount) FROM sales GROUP BY store",
				ColumnValueType:      "CURRENCY",
				ColumnGroupName:      "Sales Metrics",
				ColumnDescription:    "Receita consolidada do mês",
			},
			validate: func(t *testing.T, row SpreadsheetRow) {
				assert.Equal(t, "Receita Total", *row.Name)
				assert.Equal(t, 3, *row.Order)
				assert.Equal(t, "SELECT SUM(amount) FROM sales", *row.DashboardSQL)
				assert.Equal(t, "SELECT * FROM sales", *row.DetailSQL)
				assert.Equal(t, "SELECT store, SUM(amount) FROM sales GROUP BY store", *row.LeaderboardSQL)
				assert.Equal(t, "CURRENCY", *row.ValueType)
				assert.Equal(t, "Sales Metrics", *row.GroupName)
				assert.Equal(t, "Receita consolidada do mês", *row.Description)
			},
		},
		{
			name: "Colunas ausentes devem virar nil",
			raw: RawRow{
				ColumnMetricName: "Ticket Médio",
			},
			validate: func(t *testing.T, row SpreadsheetRow) {
				assert.Equal(t, "Ticket Médio", *row.Name)
				assert.Nil(t, row.Order)
				assert.Nil(t, row.DashboardSQL)
				assert.Nil(t, row.DetailSQL)
				assert.Nil(t, row.LeaderboardSQL)
				assert.Nil(t, row.ValueType)
				assert.Nil(t, row.GroupName)
				assert.Nil(t, row.Description)
			},
		},
		{
			name: "Célula vazia equivale a coluna ausente",
			raw: RawRow{
				ColumnMetricName:  "Conversão",
				ColumnDescription: "",
			},
			validate: func(t *testing.T, row SpreadsheetRow) {
				assert.Nil(t, row.Description)
			},
		},
		{
			name: "Célula só com espaços conta como presente",
			raw: RawRow{
				ColumnMetricName:  "Conversão",
				ColumnDescription: "   ",
			},
			validate: func(t *testing.T, row SpreadsheetRow) {
				assert.NotNil(t, row.Description)
				assert.Equal(t, "   ", *row.Description)
			},
		},
		{
			name: "Order não numérico deve virar nil",
			raw: RawRow{
				ColumnMetricName: "Conversão",
				ColumnOrder:      "terceiro",
			},
			validate: func(t *testing.T, row SpreadsheetRow) {
				assert.Nil(t, row.Order)
			},
		},
		{
			name: "Order negativo deve ser aceito",
			raw: RawRow{
				ColumnMetricName: "Conversão",
				ColumnOrder:      "-1",
			},
			validate: func(t *testing.T, row SpreadsheetRow) {
				assert.Equal(t, -1, *row.Order)
			},
		},
		{
			name: "Colunas extras são ignoradas",
			raw: RawRow{
				ColumnMetricName: "Conversão",
				"Coluna Extra":   "qualquer coisa",
			},
			validate: func(t *testing.T, row SpreadsheetRow) {
				assert.Equal(t, "Conversão", *row.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewSpreadsheetRow(tt.raw))
		})
	}
}
