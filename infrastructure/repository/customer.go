// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/meli-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/pkg/utils"
)

const (
	customersTable = "customers"

	lastSaleSubquery = "(SELECT customer_id, MAX(date) AS last_sale_date FROM sales GROUP BY customer_id) ls ON ls.customer_id = c.id"
)

var customerColumns = []string{
	"id",
	"meli_user_id",
	"name",
	"alias",
	"phone",
	"note",
	"street",
	"number",
	"city",
	"province",
	"postal_code",
	"full_text",
	"created_at",
	"updated_at",
}

type CustomerRepository interface {
	GetByMeliUserID(ctx context.Context, meliUserID int64) (*domain.Customer, error)
	Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, int, error)
	UpdatePhone(ctx context.Context, meliUserID int64, phone *string) (*domain.Customer, error)
	UpdateNote(ctx context.Context, meliUserID int64, note string) (*domain.Customer, error)
}

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

// GetByMeliUserID retorna nil, nil quando o cliente não existe
func (r *customerRepository) GetByMeliUserID(ctx context.Context, meliUserID int64) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"meli_user_id": meliUserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer, err := scanCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cliente %d: %w", meliUserID, err)
	}

	return customer, nil
}

// Upsert insere ou atualiza o cliente pelo meli_user_id. A nota nunca é alterada aqui.
func (r *customerRepository) Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id do cliente: %w", err)
		}
		customer.ID = id
	}

	query, args, err := buildUpsertCustomerQuery(customer).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved, err := scanCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapPQError("erro ao salvar cliente", err)
	}

	return saved, nil
}

func (r *customerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, int, error) {
	query, args, err := buildListCustomersQuery(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var lastSaleDate sql.NullTime
		customer, err := scanCustomer(rows, &lastSaleDate)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		if lastSaleDate.Valid {
			customer.LastSaleDate = &lastSaleDate.Time
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante iteração: %w", err)
	}

	countQuery, countArgs, err := buildCountCustomersQuery(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return customers, total, nil
}

func (r *customerRepository) UpdatePhone(ctx context.Context, meliUserID int64, phone *string) (*domain.Customer, error) {
	return r.updateField(ctx, meliUserID, "phone", phone)
}

func (r *customerRepository) UpdateNote(ctx context.Context, meliUserID int64, note string) (*domain.Customer, error) {
	return r.updateField(ctx, meliUserID, "note", note)
}

// updateField retorna nil, nil quando nenhum cliente corresponde ao id
func (r *customerRepository) updateField(ctx context.Context, meliUserID int64, column string, value any) (*domain.Customer, error) {
	query, args, err := squirrel.
		Update(customersTable).
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"meli_user_id": meliUserID}).
		Suffix("RETURNING " + strings.Join(customerColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer, err := scanCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapPQError("erro ao atualizar cliente", err)
	}

	return customer, nil
}

func buildUpsertCustomerQuery(customer *domain.Customer) squirrel.InsertBuilder {
	return squirrel.
		Insert(customersTable).
		Columns(
			"id",
			"meli_user_id",
			"name",
			"alias",
			"phone",
			"street",
			"number",
			"city",
			"province",
			"postal_code",
			"full_text",
		).
		Values(
			customer.ID,
			customer.MeliUserID,
			customer.Name,
			customer.Alias,
			customer.Phone,
			customer.Address.Street,
			customer.Address.Number,
			customer.Address.City,
			customer.Address.Province,
			customer.Address.PostalCode,
			customer.Address.FullText,
		).
		Suffix(`
			ON CONFLICT (meli_user_id) DO UPDATE SET
				name = EXCLUDED.name,
				alias = EXCLUDED.alias,
				phone = EXCLUDED.phone,
				street = EXCLUDED.street,
				number = EXCLUDED.number,
				city = EXCLUDED.city,
				province = EXCLUDED.province,
				postal_code = EXCLUDED.postal_code,
				full_text = EXCLUDED.full_text,
				updated_at = NOW()
			RETURNING ` + strings.Join(customerColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar)
}

func buildListCustomersQuery(filter domain.CustomerFilter) squirrel.SelectBuilder {
	columns := make([]string, 0, len(customerColumns)+1)
	for _, column := range customerColumns {
		columns = append(columns, "c."+column)
	}
	columns = append(columns, "ls.last_sale_date")

	query := squirrel.
		Select(columns...).
		From(customersTable+" c").
		LeftJoin(lastSaleSubquery).
		OrderBy("ls.last_sale_date DESC NULLS LAST", "c.updated_at DESC")

	query = applyCustomerSearch(query, filter.Query)

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset()))
	}

	return query.PlaceholderFormat(squirrel.Dollar)
}

func buildCountCustomersQuery(filter domain.CustomerFilter) squirrel.SelectBuilder {
	query := squirrel.
		Select("COUNT(*)").
		From(customersTable + " c")

	return applyCustomerSearch(query, filter.Query).PlaceholderFormat(squirrel.Dollar)
}

// applyCustomerSearch filtra por substring em nome, apelido ou cidade, sem diferenciar maiúsculas
func applyCustomerSearch(query squirrel.SelectBuilder, search string) squirrel.SelectBuilder {
	search = strings.TrimSpace(search)
	if search == "" {
		return query
	}

	pattern := "%" + escapeLike(search) + "%"
	return query.Where(squirrel.Or{
		squirrel.ILike{"c.name": pattern},
		squirrel.ILike{"c.alias": pattern},
		squirrel.ILike{"c.city": pattern},
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner, extra ...any) (*domain.Customer, error) {
	var (
		customer domain.Customer
		phone    sql.NullString
	)

	dest := []any{
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
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if phone.Valid {
		customer.Phone = &phone.String
	}

	return &customer, nil
}

func wrapPQError(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w (código: %s)", message, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", message, err)
}
