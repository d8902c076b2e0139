// Package spreadsheet lê a planilha de definição de métricas do dashboard.
package spreadsheet

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-importer/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Reader abstrai a leitura da planilha de métricas.
type Reader interface {
	ReadMetricRows(path string) (*domain.SpreadsheetData, error)
}

type xlsxReader struct{}

func NewXLSXReader() Reader {
	return &xlsxReader{}
}

// ReadMetricRows abre o arquivo, lê a primeira aba e converte cada linha de
// dados em uma RawRow indexada pelos cabeçalhos da primeira linha. Colunas
// além do cabeçalho são descartadas e linhas totalmente vazias não geram
// registro.
func (r *xlsxReader) ReadMetricRows(path string) (*domain.SpreadsheetData, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logrus.Warn("Erro ao fechar a planilha:", err)
		}
	}()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("a planilha %s não possui abas", path)
	}
	sheetName := sheets[0]

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler as linhas da aba %s: %w", sheetName, err)
	}

	data := &domain.SpreadsheetData{SheetName: sheetName}
	if len(rows) == 0 {
		return data, nil
	}

	data.Headers = rows[0]
	data.Rows = make([]domain.RawRow, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		raw := make(domain.RawRow, len(data.Headers))
		for i, header := range data.Headers {
			if header == "" || i >= len(row) {
				continue
			}
			raw[header] = row[i]
		}

		data.Rows = append(data.Rows, raw)
	}

	return data, nil
}
