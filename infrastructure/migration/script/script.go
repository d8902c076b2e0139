package main

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

const (
	dbConnectionString = "postgresql://dashboard:@localhost:5432/dashboard?sslmode=disable"
)

// createMetricsTableSQL define a tabela de destino do importador. Os campos
// sem NOT NULL aceitam a ausência vinda da planilha.
const createMetricsTableSQL = `
	CREATE TABLE dashboard_metrics (
		id VARCHAR(21) PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		deleted_at TIMESTAMPTZ,
		name VARCHAR(255) NOT NULL,
		"order" INTEGER NOT NULL,
		is_top_dial BOOLEAN NOT NULL DEFAULT FALSE,
		metric_value_query TEXT NOT NULL,
		details_query TEXT NOT NULL,
		leaderboard_query TEXT NOT NULL,
		metric_value_type VARCHAR(20) NOT NULL DEFAULT 'plain',
		group_name VARCHAR(50) NOT NULL DEFAULT 'Secondary Metrics',
		description TEXT
	)
`

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de preparação do banco...")
}

func createMetricsTable(db *sql.DB) {
	log.Println("Criando tabela dashboard_metrics...")

	// Verificar se a tabela já existe
	var tableExists bool
	err := db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = 'dashboard_metrics'
		)
	`).Scan(&tableExists)
	if err != nil {
		log.Fatalf("ERRO ao verificar tabela existente: %v", err)
	}

	if tableExists {
		log.Println("Tabela dashboard_metrics já existe")
		return
	}

	if _, err := db.Exec(createMetricsTableSQL); err != nil {
		log.Fatalf("ERRO ao criar tabela dashboard_metrics: %v", err)
	}

	log.Println("Tabela dashboard_metrics criada com sucesso")
}

func addUniqueNameIndexToMetrics(db *sql.DB) {
	log.Println("Adicionando índice UNIQUE no nome das métricas vivas...")

	// Verificar se o índice já existe
	var indexExists bool
	err := db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM pg_indexes
			WHERE tablename = 'dashboard_metrics'
			AND indexname = 'dashboard_metrics_live_name_unique'
		)
	`).Scan(&indexExists)
	if err != nil {
		log.Printf("ERRO ao verificar índice existente: %v", err)
		return
	}

	if indexExists {
		log.Println("Índice UNIQUE já existe na tabela dashboard_metrics")
		return
	}

	// O índice é parcial: nomes só precisam ser únicos entre métricas vivas,
	// um nome apagado pode ser reutilizado
	_, err = db.Exec(`
		CREATE UNIQUE INDEX dashboard_metrics_live_name_unique
		ON dashboard_metrics (name)
		WHERE deleted_at IS NULL
	`)
	if err != nil {
		log.Printf("ERRO ao adicionar índice UNIQUE: %v", err)
		return
	}

	log.Println("Índice UNIQUE adicionado com sucesso na tabela dashboard_metrics")
}

func main() {
	setupLogger()
	log.Println("Conectando ao banco de dados...")

	db, err := sql.Open("postgres", dbConnectionString)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	// Verificar conexão
	err = db.Ping()
	if err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	createMetricsTable(db)

	addUniqueNameIndexToMetrics(db)

	log.Println("Banco pronto para receber importações")
}
