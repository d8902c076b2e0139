package domain

import "strconv"

// Nomes das colunas esperadas na aba de definição de métricas.
const (
	ColumnMetricName     = "Metric Name"
	ColumnOrder          = "Order"
	ColumnDashboardSQL   = "Dashboard SQL"
	ColumnDetailSQL      = "Detail SQL"
	ColumnLeaderboardSQL = "Leaderboard SQL"
	ColumnValueType      = "Value Type"
	ColumnGroupName      = "Group Name"
	ColumnDescription    = "Description"
)

// RawRow é uma linha crua da planilha: mapa de cabeçalho para célula, sem
// nenhuma garantia de presença ou de tipo.
type RawRow map[string]string

// SpreadsheetData é o conteúdo da primeira aba da planilha.
type SpreadsheetData struct {
	SheetName string
	Headers   []string
	Rows      []RawRow
}

// SpreadsheetRow é a linha tipada: um campo opcional por coluna esperada.
// Célula ausente ou vazia vira nil, tornando a ausência explícita daqui em
// diante.
type SpreadsheetRow struct {
	Name           *string
	Order          *int
	DashboardSQL   *string
	DetailSQL      *string
	LeaderboardSQL *string
	ValueType      *string
	GroupName      *string
	Description    *string
}

// NewSpreadsheetRow extrai os campos tipados de uma linha crua.
func NewSpreadsheetRow(raw RawRow) SpreadsheetRow {
	return SpreadsheetRow{
		Name:           cell(raw, ColumnMetricName),
		Order:          intCell(raw, ColumnOrder),
		DashboardSQL:   cell(raw, ColumnDashboardSQL),
		DetailSQL:      cell(raw, ColumnDetailSQL),
		LeaderboardSQL: cell(raw, ColumnLeaderboardSQL),
		ValueType:      cell(raw, ColumnValueType),
		GroupName:      cell(raw, ColumnGroupName),
		Description:    cell(raw, ColumnDescription),
	}
}

// cell devolve o conteúdo da coluna, ou nil quando a célula não existe ou
// está vazia. Conteúdo só de espaços conta como presente.
func cell(raw RawRow, column string) *string {
	value, ok := raw[column]
	if !ok || value == "" {
		return nil
	}

	return &value
}

// intCell converte a célula para inteiro; conteúdo não numérico é tratado
// como ausência.
func intCell(raw RawRow, column string) *int {
	value := cell(raw, column)
	if value == nil {
		return nil
	}

	number, err := strconv.Atoi(*value)
	if err != nil {
		return nil
	}

	return &number
}
