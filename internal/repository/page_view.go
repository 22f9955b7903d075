package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devarshiadi/devconsole/internal/domain"
)

// psql builds statements with PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PageViewRepository handles database operations for page views.
type PageViewRepository struct {
	pool *pgxpool.Pool
}

// NewPageViewRepository creates a new PageViewRepository.
func NewPageViewRepository(pool *pgxpool.Pool) *PageViewRepository {
	return &PageViewRepository{pool: pool}
}

// InsertQuery builds the INSERT for a single view.
func InsertQuery(view domain.PageView) (string, []interface{}, error) {
	return psql.
		Insert("page_views").
		Columns("id", "path", "user_agent", "remote_addr", "request_id", "rendered_at").
		Values(view.ID, view.Path, view.UserAgent, view.RemoteAddr, view.RequestID, view.RenderedAt).
		ToSql()
}

// Insert stores a view.
func (r *PageViewRepository) Insert(ctx context.Context, view domain.PageView) error {
	query, args, err := InsertQuery(view)
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert page view: %w", err)
	}
	return nil
}

// periodWhere restricts rows to [start, end].
func periodWhere(start, end time.Time) sq.And {
	return sq.And{
		sq.GtOrEq{"rendered_at": start},
		sq.LtOrEq{"rendered_at": end},
	}
}

// Stats summarises views between the period start and now.
func (r *PageViewRepository) Stats(ctx context.Context, period domain.StatsPeriod, now time.Time) (*domain.ViewStats, error) {
	start := period.Start(now)
	stats := &domain.ViewStats{
		Period:      period,
		PeriodStart: start,
		PeriodEnd:   now,
	}

	query, args, err := psql.
		Select("COUNT(*)", "COUNT(DISTINCT remote_addr)").
		From("page_views").
		Where(periodWhere(start, now)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&stats.TotalViews, &stats.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("count page views: %w", err)
	}

	query, args, err = psql.
		Select("date_trunc('day', rendered_at) AS day", "COUNT(*)").
		From("page_views").
		Where(periodWhere(start, now)).
		GroupBy("day").
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query views by day: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.DailyViews
		if err := rows.Scan(&d.Day, &d.Views); err != nil {
			return nil, fmt.Errorf("scan views by day: %w", err)
		}
		stats.ByDay = append(stats.ByDay, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate views by day rows: %w", err)
	}

	return stats, nil
}
