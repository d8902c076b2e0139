// Package importing orquestra a importação da planilha de métricas: leitura,
// normalização e gravação atômica no banco.
package importing

import (
	"context"
	"time"

	"github.com/vfg2006/metrics-importer/infrastructure/repository"
	"github.com/vfg2006/metrics-importer/infrastructure/spreadsheet"
	"github.com/vfg2006/metrics-importer/internal/config"
	"github.com/vfg2006/metrics-importer/internal/domain"
	"github.com/vfg2006/metrics-importer/pkg/log"
)

// Importer define o contrato da importação de métricas.
type Importer interface {
	// Import lê a planilha indicada, normaliza as linhas e grava tudo em uma
	// única transação. Em caso de erro nenhum registro é persistido.
	Import(ctx context.Context, path string) (*domain.ImportResult, error)
}

type Service struct {
	reader spreadsheet.Reader
	repo   repository.MetricRepository
	cfg    *config.Config
}

func NewService(
	reader spreadsheet.Reader,
	repo repository.MetricRepository,
	cfg *config.Config,
) Importer {
	return &Service{
		reader: reader,
		repo:   repo,
		cfg:    cfg,
	}
}

func (s *Service) Import(ctx context.Context, path string) (*domain.ImportResult, error) {
	logger := log.ForContext(ctx)
	startedAt := time.Now()

	data, err := s.reader.ReadMetricRows(path)
	if err != nil {
		return nil, NewImportError(ErrSpreadsheetRead, CodeSpreadsheetRead, err.Error())
	}

	if len(data.Headers) == 0 {
		return nil, NewImportError(ErrEmptySpreadsheet, CodeEmptySpreadsheet, path)
	}

	logger.WithFields(log.Fields{
		"file":  path,
		"sheet": data.SheetName,
		"rows":  len(data.Rows),
	}).Info("Planilha lida com sucesso")

	records := NormalizeRows(data.Rows)

	result := &domain.ImportResult{
		RunID:      log.GetRunID(ctx),
		File:       path,
		Sheet:      data.SheetName,
		RowsRead:   len(data.Rows),
		Normalized: len(records),
		DryRun:     s.cfg.Importer.DryRun,
	}

	if s.cfg.Importer.DryRun {
		logger.WithField("rows", len(records)).Info("Dry-run habilitado, nenhuma escrita realizada")
		result.DurationMS = time.Since(startedAt).Milliseconds()
		return result, nil
	}

	inserted, updated, err := s.repo.SaveMetrics(ctx, records)
	if err != nil {
		return nil, NewImportError(ErrDatabaseOperation, CodeDatabaseOperation, err.Error())
	}

	result.Inserted = inserted
	result.Updated = updated

	total, err := s.repo.CountMetrics()
	if err != nil {
		// A contagem é informativa; a transação já foi confirmada.
		logger.WithError(err).Warn("Erro ao contar as métricas após a importação")
	} else {
		result.TotalMetrics = total
	}

	result.DurationMS = time.Since(startedAt).Milliseconds()

	logger.WithFields(log.Fields{
		"inserted":    inserted,
		"updated":     updated,
		"total":       result.TotalMetrics,
		"duration_ms": result.DurationMS,
	}).Info("Importação concluída com sucesso")

	return result, nil
}
