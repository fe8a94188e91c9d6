package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/backoffice/internal/port"
)

// statsSource serves the statistics reads from the order and catalog tables.
type statsSource struct {
	*orderRepository
	*catalogRepository
}

func NewStatsSource(pool *pgxpool.Pool) port.StatsSource {
	return statsSource{
		orderRepository:   newOrderRepository(pool),
		catalogRepository: newCatalogRepository(pool),
	}
}
