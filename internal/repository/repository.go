package repository

import (
	"context"
	"strings"
	"time"

	"movies-admin/internal/database"

	"gorm.io/gorm"
)

// ListParams is the paging and free text search shared by every list screen.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

func (p ListParams) pattern() string {
	return "%" + strings.ToLower(strings.TrimSpace(p.Search)) + "%"
}

func (p ListParams) paginate(query *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		query = query.Limit(p.Limit)
	}
	return query.Offset(p.offset())
}

type GenreFilter struct {
	ListParams
	Name string
}

type PersonFilter struct {
	ListParams
	Role string
}

type FilmworkFilter struct {
	ListParams
	Title        string
	Type         string
	CreationDate string
	Genre        string
}

type timeouts struct {
	db      *database.Database
	timeout time.Duration
}

func newTimeouts(db *database.Database) timeouts {
	return timeouts{db: db, timeout: db.GetQueryTimeout()}
}

func (r timeouts) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
