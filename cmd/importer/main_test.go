package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/metrics-importer/internal/usecases/importing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "Erro de leitura da planilha deve sair com código de entrada",
			err:      importing.NewImportError(importing.ErrSpreadsheetRead, importing.CodeSpreadsheetRead, "arquivo corrompido"),
			expected: exitInput,
		},
		{
			name:     "Planilha sem cabeçalho deve sair com código de entrada",
			err:      importing.NewImportError(importing.ErrEmptySpreadsheet, importing.CodeEmptySpreadsheet, "metricas.xlsx"),
			expected: exitInput,
		},
		{
			name:     "Erro de banco deve sair com código de transação",
			err:      importing.NewImportError(importing.ErrDatabaseOperation, importing.CodeDatabaseOperation, "conexão perdida"),
			expected: exitTransaction,
		},
		{
			name:     "Sentinela embrulhada sem ImportError deve ser classificada pela cadeia",
			err:      fmt.Errorf("importação: %w", importing.ErrDatabaseOperation),
			expected: exitTransaction,
		},
		{
			name:     "Código desconhecido deve cair na classificação por sentinela",
			err:      importing.NewImportError(importing.ErrSpreadsheetRead, "IMP_999", "código novo"),
			expected: exitInput,
		},
		{
			name:     "Erro não classificado deve sair com código de uso",
			err:      assert.AnError,
			expected: exitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCode(tt.err))
		})
	}
}
