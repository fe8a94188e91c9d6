package service

import (
	"context"
	"errors"
	"sync"

	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/samber/lo"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []domain.OrderEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	return lo.Map(p.events, func(e domain.OrderEvent, _ int) domain.OrderEventType { return e.Type })
}

func (p *recordingPublisher) last() domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.events[len(p.events)-1]
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = nil
	p.err = nil
}

type memoryGuard struct {
	mu       sync.Mutex
	claimed  map[string]struct{}
	released []string
}

func newMemoryGuard() *memoryGuard {
	return &memoryGuard{claimed: make(map[string]struct{})}
}

func (g *memoryGuard) Claim(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.claimed[key]; ok {
		return false, nil
	}
	g.claimed[key] = struct{}{}
	return true, nil
}

func (g *memoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.claimed, key)
	g.released = append(g.released, key)
	return nil
}

var errSourceDown = errors.New("source down")

type fakeStatsSource struct {
	snapshot domain.StatsSnapshot
	// failOn names the collection whose read fails.
	failOn string
}

func (f fakeStatsSource) fail(name string) error {
	if f.failOn == name {
		return errSourceDown
	}
	return nil
}

func (f fakeStatsSource) ListOrders(context.Context) ([]domain.Order, error) {
	return f.snapshot.Orders, f.fail("orders")
}

func (f fakeStatsSource) ListProducts(context.Context) ([]domain.Product, error) {
	return f.snapshot.Products, f.fail("products")
}

func (f fakeStatsSource) ListUsers(context.Context) ([]domain.User, error) {
	return f.snapshot.Users, f.fail("users")
}

func (f fakeStatsSource) ListCategories(context.Context) ([]domain.Category, error) {
	return f.snapshot.Categories, f.fail("categories")
}

func (f fakeStatsSource) ListBlogs(context.Context) ([]domain.Blog, error) {
	return f.snapshot.Blogs, f.fail("blogs")
}

func (f fakeStatsSource) ListCoupons(context.Context) ([]domain.Coupon, error) {
	return f.snapshot.Coupons, f.fail("coupons")
}
