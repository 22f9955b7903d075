package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/devarshiadi/devconsole/internal/database"
	"github.com/devarshiadi/devconsole/internal/domain"
	"github.com/devarshiadi/devconsole/internal/repository"
)

func TestInsertQuery(t *testing.T) {
	view := domain.PageView{
		ID:         "00000000-0000-0000-0000-000000000001",
		Path:       "/",
		UserAgent:  "curl/8.0",
		RemoteAddr: "10.0.0.1",
		RequestID:  "req-1",
		RenderedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	query, args, err := repository.InsertQuery(view)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO page_views (id,path,user_agent,remote_addr,request_id,rendered_at) VALUES ($1,$2,$3,$4,$5,$6)",
		query)
	assert.Equal(t, []interface{}{view.ID, view.Path, view.UserAgent, view.RemoteAddr, view.RequestID, view.RenderedAt}, args)
}

// PageViewRepositoryTestSuite runs against a real PostgreSQL instance.
type PageViewRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo *repository.PageViewRepository
}

func (s *PageViewRepositoryTestSuite) SetupSuite() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		s.T().Skip("DATABASE_URL not set")
	}

	db, err := database.Open(context.Background(), databaseURL)
	s.Require().NoError(err)
	s.db = db
	s.repo = repository.NewPageViewRepository(db.Pool())
}

func (s *PageViewRepositoryTestSuite) SetupTest() {
	_, err := s.db.Pool().Exec(context.Background(), "TRUNCATE page_views")
	s.Require().NoError(err)
}

func (s *PageViewRepositoryTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestPageViewRepositorySuite(t *testing.T) {
	suite.Run(t, new(PageViewRepositoryTestSuite))
}

func (s *PageViewRepositoryTestSuite) insert(addr string, at time.Time) {
	err := s.repo.Insert(context.Background(), domain.PageView{
		ID:         uuid.NewString(),
		Path:       "/",
		RemoteAddr: addr,
		RenderedAt: at,
	})
	s.Require().NoError(err)
}

func (s *PageViewRepositoryTestSuite) TestStats_CountsWithinPeriod() {
	now := time.Now().UTC().Truncate(time.Second)

	s.insert("10.0.0.1", now.Add(-time.Hour))
	s.insert("10.0.0.1", now.Add(-2*time.Hour))
	s.insert("10.0.0.2", now.Add(-3*time.Hour))
	s.insert("10.0.0.3", now.AddDate(0, 0, -3))

	stats, err := s.repo.Stats(context.Background(), domain.StatsPeriodDay, now)
	s.Require().NoError(err)

	s.Equal(3, stats.TotalViews)
	s.Equal(2, stats.UniqueVisitors)

	stats, err = s.repo.Stats(context.Background(), domain.StatsPeriodAll, now)
	s.Require().NoError(err)

	s.Equal(4, stats.TotalViews)
	s.Equal(3, stats.UniqueVisitors)

	total := 0
	for _, d := range stats.ByDay {
		total += d.Views
	}
	s.Equal(4, total)
}

func (s *PageViewRepositoryTestSuite) TestStats_Empty() {
	stats, err := s.repo.Stats(context.Background(), domain.StatsPeriodWeek, time.Now())
	s.Require().NoError(err)

	s.Zero(stats.TotalViews)
	s.Empty(stats.ByDay)
}
