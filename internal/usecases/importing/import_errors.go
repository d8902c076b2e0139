package importing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de importação
var (
	// Erros de arquivo de entrada
	ErrSpreadsheetRead  = errors.New("error reading spreadsheet")
	ErrEmptySpreadsheet = errors.New("spreadsheet has no header row")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// Códigos de erro usados na classificação da saída do processo
const (
	CodeSpreadsheetRead   = "IMP_001"
	CodeEmptySpreadsheet  = "IMP_002"
	CodeDatabaseOperation = "IMP_003"
)

// ImportError é um erro com contexto adicional da importação
type ImportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para classificação
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError cria um novo ImportError
func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
