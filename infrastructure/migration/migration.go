package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var scripts embed.FS

// New monta o migrador com os scripts embutidos no binário
func New(dsn string) (*migrate.Migrate, error) {
	source, err := iofs.New(scripts, "sql")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir scripts de migração: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar a migração: %w", err)
	}

	return m, nil
}

// Up aplica todas as migrações pendentes
func Up(dsn string) error {
	m, err := New(dsn)
	if err != nil {
		return err
	}
	defer Close(m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Nenhuma migração pendente: banco de dados já está atualizado")
			return nil
		}
		return fmt.Errorf("erro ao executar migrações: %w", err)
	}

	logrus.Info("Migrações executadas com sucesso")
	return nil
}

func Close(m *migrate.Migrate) {
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		logrus.WithFields(logrus.Fields{
			"source_error": sourceErr,
			"db_error":     dbErr,
		}).Warn("Erro ao fechar recursos da migração")
	}
}
