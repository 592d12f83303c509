package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
)

// PostgresSeed reads the initial catalog from the read-only seed_products table.
// Sessions never write back; the table only replaces the bundled JSON asset.
type PostgresSeed struct {
	db       *sql.DB
	Category string
	Limit    uint64
}

func NewPostgresSeed(db *sql.DB) *PostgresSeed {
	return &PostgresSeed{db: db}
}

func (s *PostgresSeed) query() (string, []any, error) {
	q := sq.Select("id", "name", "category", "price", "units_sold", "in_stock", "created_on").
		From("seed_products").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if s.Category != "" {
		q = q.Where(sq.Eq{"category": s.Category})
	}
	if s.Limit > 0 {
		q = q.Limit(s.Limit)
	}
	return q.ToSql()
}

func (s *PostgresSeed) Load(ctx context.Context) ([]models.Product, error) {
	query, args, err := s.query()
	if err != nil {
		return nil, fmt.Errorf("build seed query: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query seed products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var createdOn time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.UnitsSold, &p.InStock, &createdOn); err != nil {
			return nil, err
		}
		p.Date = createdOn.Format(models.DateLayout)
		products = append(products, p)
	}
	return products, rows.Err()
}
