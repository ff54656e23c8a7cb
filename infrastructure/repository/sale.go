package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/meli-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

const salesTable = "sales"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SaleRepository interface {
	Upsert(ctx context.Context, sale *domain.Sale) error
	ListByCustomerID(ctx context.Context, customerID string) ([]*domain.Sale, error)
	List(ctx context.Context, page, limit int) ([]*domain.Sale, int, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// Upsert grava a venda pelo meli_order_id, substituindo cliente, data, total e itens
func (r *saleRepository) Upsert(ctx context.Context, sale *domain.Sale) error {
	if sale.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da venda: %w", err)
		}
		sale.ID = id
	}

	query, args, err := buildUpsertSaleQuery(sale)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapPQError("erro ao salvar venda", err)
	}

	return nil
}

func (r *saleRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "meli_order_id", "customer_id", "date", "total", "items", "created_at", "updated_at").
		From(salesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do cliente: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var (
			sale  domain.Sale
			items []byte
		)
		if err := rows.Scan(
			&sale.ID,
			&sale.MeliOrderID,
			&sale.CustomerID,
			&sale.Date,
			&sale.Total,
			&items,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		if sale.Items, err = decodeItems(items); err != nil {
			return nil, err
		}

		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sales, nil
}

// List devolve as vendas mais recentes primeiro, com o cliente preenchido
func (r *saleRepository) List(ctx context.Context, page, limit int) ([]*domain.Sale, int, error) {
	query, args, err := buildListSalesQuery(page, limit).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var (
			sale     domain.Sale
			customer domain.Customer
			phone    sql.NullString
			items    []byte
		)
		if err := rows.Scan(
			&sale.ID,
			&sale.MeliOrderID,
			&sale.CustomerID,
			&sale.Date,
			&sale.Total,
			&items,
			&sale.CreatedAt,
			&sale.UpdatedAt,
			&customer.ID,
			&customer.MeliUserID,
			&customer.Name,
			&customer.Alias,
			&phone,
			&customer.Note,
			&customer.Address.Street,
			&customer.Address.Number,
			&customer.Address.City,
			&customer.Address.Province,
			&customer.Address.PostalCode,
			&customer.Address.FullText,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		if phone.Valid {
			customer.Phone = &phone.String
		}

		if sale.Items, err = decodeItems(items); err != nil {
			return nil, 0, err
		}

		sale.Customer = &customer
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante iteração: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+salesTable).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return sales, total, nil
}

func buildUpsertSaleQuery(sale *domain.Sale) (string, []any, error) {
	items := sale.Items
	if items == nil {
		items = []domain.SaleItem{}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar itens da venda: %w", err)
	}

	query, args, err := squirrel.
		Insert(salesTable).
		Columns("id", "meli_order_id", "customer_id", "date", "total", "items").
		Values(sale.ID, sale.MeliOrderID, sale.CustomerID, sale.Date, sale.Total, string(itemsJSON)).
		Suffix(`
			ON CONFLICT (meli_order_id) DO UPDATE SET
				customer_id = EXCLUDED.customer_id,
				date = EXCLUDED.date,
				total = EXCLUDED.total,
				items = EXCLUDED.items,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}

func buildListSalesQuery(page, limit int) squirrel.SelectBuilder {
	offset := utils.Offset(page, limit)

	return squirrel.
		Select(
			"s.id", "s.meli_order_id", "s.customer_id", "s.date", "s.total", "s.items", "s.created_at", "s.updated_at",
			"c.id", "c.meli_user_id", "c.name", "c.alias", "c.phone", "c.note",
			"c.street", "c.number", "c.city", "c.province", "c.postal_code", "c.full_text",
			"c.created_at", "c.updated_at",
		).
		From(salesTable + " s").
		Join(customersTable + " c ON c.id = s.customer_id").
		OrderBy("s.date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)
}

func decodeItems(raw []byte) ([]domain.SaleItem, error) {
	items := make([]domain.SaleItem, 0)
	if len(raw) == 0 {
		return items, nil
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("erro ao decodificar itens da venda: %w", err)
	}

	return items, nil
}
