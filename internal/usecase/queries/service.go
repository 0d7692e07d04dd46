package queries

import (
	"context"
)

type ServiceQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
}

type ServiceViewRepo interface {
	ListActive(ctx context.Context) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	repo ServiceViewRepo
}

func NewServiceQueries(repo ServiceViewRepo) ServiceQueries {
	return &serviceQueriesImpl{repo: repo}
}

func (q *serviceQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.repo.ListActive(ctx)
}
