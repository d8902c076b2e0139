package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-importer/infrastructure/database/postgres"
	"github.com/vfg2006/metrics-importer/infrastructure/repository"
	"github.com/vfg2006/metrics-importer/infrastructure/spreadsheet"
	"github.com/vfg2006/metrics-importer/internal/config"
	"github.com/vfg2006/metrics-importer/internal/usecases/importing"
	"github.com/vfg2006/metrics-importer/pkg/log"
	"github.com/vfg2006/metrics-importer/pkg/utils"
)

// Códigos de saída do importador, um por classe de falha
const (
	exitOK          = 0
	exitUsage       = 1
	exitInput       = 2
	exitConnection  = 3
	exitTransaction = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run concentra o fluxo em uma função com retorno para que os defers (fechar
// a conexão com o banco) executem em todos os caminhos de saída, o que
// logrus.Fatal não permitiria.
func run(args []string) int {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar a configuração")
		return exitUsage
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "uso: importer <planilha.xlsx>")
		return exitUsage
	}
	path := args[0]

	ctx, runID := log.WithRunID(context.Background())
	logrus.WithField("run_id", runID).Infof("Iniciando a importação de %s", path)

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return exitConnection
	}
	defer pgConn.Close()

	if err := pgConn.Ping(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao testar conexão com PostgreSQL")
		return exitConnection
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	metricRepo := repository.NewMetricRepository(pgConn)
	reader := spreadsheet.NewXLSXReader()

	importer := importing.NewService(reader, metricRepo, cfg)

	result, err := importer.Import(ctx, path)
	if err != nil {
		logrus.WithError(err).Error("Importação abortada")
		return exitCode(err)
	}

	// O resumo da execução vai para stdout; os logs ficam em stderr
	fmt.Println(utils.PrettyJson(result))

	return exitOK
}

// Mapeamento de códigos de erro da importação para códigos de saída
var exitCodeByError = map[string]int{
	importing.CodeSpreadsheetRead:   exitInput,
	importing.CodeEmptySpreadsheet:  exitInput,
	importing.CodeDatabaseOperation: exitTransaction,
}

// exitCode traduz a classe do erro para o código de saída do processo
func exitCode(err error) int {
	// Tentar fazer cast para ImportError para obter o código
	var importErr *importing.ImportError
	if errors.As(err, &importErr) {
		if code, exists := exitCodeByError[importErr.Code]; exists {
			return code
		}
	}

	// Verificar tipos específicos de erros
	switch {
	case errors.Is(err, importing.ErrSpreadsheetRead),
		errors.Is(err, importing.ErrEmptySpreadsheet):
		return exitInput
	case errors.Is(err, importing.ErrDatabaseOperation):
		return exitTransaction
	default:
		return exitUsage
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
