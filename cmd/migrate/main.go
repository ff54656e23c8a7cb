package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/infrastructure/migration"
	"github.com/vfg2006/meli-sales-api/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	command := os.Args[1]
	if command == "up" {
		if err := migration.Up(cfg.Database.DSN); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	m, err := migration.New(cfg.Database.DSN)
	if err != nil {
		logrus.Fatal(err)
	}
	defer migration.Close(m)

	switch command {
	case "down":
		if err := m.Steps(-1); err != nil {
			logrus.WithError(err).Fatal("Erro ao reverter a última migração")
		}
		logrus.Info("Última migração revertida com sucesso")

	case "goto":
		if len(os.Args) < 3 {
			logrus.Fatal("Informe a versão de destino")
		}
		version, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			logrus.WithError(err).Fatal("Versão inválida")
		}
		if err := m.Migrate(uint(version)); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logrus.WithError(err).Fatal("Erro ao migrar para a versão informada")
		}
		logrus.WithField("version", version).Info("Banco migrado para a versão informada")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			logrus.WithError(err).Fatal("Erro ao consultar versão")
		}
		logrus.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Versão atual do banco")

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Uso: migrate <comando> [args]")
	fmt.Println("  up            aplica todas as migrações pendentes")
	fmt.Println("  down          reverte a última migração")
	fmt.Println("  goto <versão> migra para a versão informada")
	fmt.Println("  version       mostra a versão atual")
}
