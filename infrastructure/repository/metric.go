// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/metrics-importer/infrastructure/database/postgres"
	"github.com/vfg2006/metrics-importer/internal/domain"
)

const (
	metricsTable = "dashboard_metrics"
)

type MetricRepository interface {
	// SaveMetrics grava todos os registros em uma única transação e devolve
	// quantos foram inseridos e quantos atualizaram métricas existentes.
	// Qualquer falha desfaz a transação inteira: ou tudo entra, ou nada entra.
	SaveMetrics(ctx context.Context, metrics []*domain.MetricRecord) (inserted int, updated int, err error)
	CountMetrics() (int, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func (r *metricRepository) SaveMetrics(ctx context.Context, metrics []*domain.MetricRecord) (int, int, error) {
	if len(metrics) == 0 {
		return 0, 0, nil
	}

	var inserted, updated int

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, metric := range metrics {
			// O nome é a chave lógica estável: reimportar a mesma planilha
			// atualiza a linha viva existente em vez de duplicá-la.
			existingID, err := r.resolveMetricID(tx, metric.Name)
			if err != nil {
				return err
			}

			if existingID != "" {
				metric.ID = existingID
				updated++
			} else {
				inserted++
			}

			if err := r.upsertMetric(tx, metric); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return inserted, updated, nil
}

// resolveMetricID busca o id da métrica viva com o nome informado, ou vazio
// quando não existe.
func (r *metricRepository) resolveMetricID(q postgres.Queryer, name *string) (string, error) {
	if name == nil {
		return "", nil
	}

	query, args, err := squirrel.
		Select("id").
		From(metricsTable).
		Where(squirrel.Eq{"name": *name}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id string
	if err := q.QueryRow(query, args...).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao resolver a identidade da métrica %q: %w", *name, err)
	}

	return id, nil
}

func (r *metricRepository) upsertMetric(q postgres.Queryer, metric *domain.MetricRecord) error {
	query := squirrel.StatementBuilder.
		Insert(metricsTable).
		Columns(
			"id",
			"created_at",
			"updated_at",
			"deleted_at",
			"name",
			`"order"`,
			"is_top_dial",
			"metric_value_query",
			"details_query",
			"leaderboard_query",
			"metric_value_type",
			"group_name",
			"description",
		).
		Values(
			metric.ID,
			metric.CreatedAt,
			metric.UpdatedAt,
			metric.DeletedAt,
			metric.Name,
			metric.Order,
			metric.IsTopDial,
			metric.MetricValueQuery,
			metric.DetailsQuery,
			metric.LeaderboardQuery,
			string(metric.MetricValueType),
			string(metric.GroupName),
			metric.Description,
		).
		PlaceholderFormat(squirrel.Dollar)

	// Configurar comportamento de conflito (upsert): id e created_at são
	// imutáveis, deleted_at não é tocado e updated_at reflete a importação.
	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			"order" = EXCLUDED."order",
			is_top_dial = EXCLUDED.is_top_dial,
			metric_value_query = EXCLUDED.metric_value_query,
			details_query = EXCLUDED.details_query,
			leaderboard_query = EXCLUDED.leaderboard_query,
			metric_value_type = EXCLUDED.metric_value_type,
			group_name = EXCLUDED.group_name,
			description = EXCLUDED.description,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := q.Exec(sqlQuery, args...); err != nil {
		name := ""
		if metric.Name != nil {
			name = *metric.Name
		}
		return fmt.Errorf("erro ao gravar a métrica %q: %w", name, err)
	}

	return nil
}

func (r *metricRepository) CountMetrics() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(metricsTable).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar as métricas: %w", err)
	}

	return count, nil
}
