package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/meli-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/meli-sales-api/internal/domain"
)

const meliTokensTable = "meli_tokens"

type MeliTokenRepository interface {
	GetBySellerID(ctx context.Context, sellerID int64) (*domain.MeliToken, error)
	Upsert(ctx context.Context, token *domain.MeliToken) error
}

type meliTokenRepository struct {
	conn postgres.Queryer
}

func NewMeliTokenRepository(conn postgres.Queryer) MeliTokenRepository {
	return &meliTokenRepository{
		conn: conn,
	}
}

// GetBySellerID retorna nil, nil quando o vendedor ainda não autorizou a aplicação
func (r *meliTokenRepository) GetBySellerID(ctx context.Context, sellerID int64) (*domain.MeliToken, error) {
	query, args, err := squirrel.
		Select("seller_id", "access_token", "refresh_token", "expires_at", "created_at", "updated_at").
		From(meliTokensTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var token domain.MeliToken
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&token.SellerID,
		&token.AccessToken,
		&token.RefreshToken,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar token do vendedor %d: %w", sellerID, err)
	}

	return &token, nil
}

func (r *meliTokenRepository) Upsert(ctx context.Context, token *domain.MeliToken) error {
	query, args, err := squirrel.
		Insert(meliTokensTable).
		Columns("seller_id", "access_token", "refresh_token", "expires_at").
		Values(token.SellerID, token.AccessToken, token.RefreshToken, token.ExpiresAt).
		Suffix(`
			ON CONFLICT (seller_id) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapPQError("erro ao salvar token do vendedor", err)
	}

	return nil
}
