package domain

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Fan-in limits for the activity feed, applied per collection before the merge.
const (
	recentOrdersLimit     = 5
	recentProductsLimit   = 3
	recentBlogsLimit      = 2
	recentActivitiesLimit = 10
)

// StatsSnapshot is everything the aggregation reads, captured at call time.
type StatsSnapshot struct {
	Orders     []Order
	Products   []Product
	Users      []User
	Categories []Category
	Blogs      []Blog
	Coupons    []Coupon
}

type Stats struct {
	Overview         StatsOverview
	OrderStatus      map[OrderStatus]int
	UserStats        UserStats
	ProductStats     ProductStats
	BlogStats        BlogStats
	PaymentStats     map[PaymentMethod]int
	RecentActivities []Activity
	Trends           Trends
}

type StatsOverview struct {
	TotalProducts   int
	TotalOrders     int
	TotalUsers      int
	TotalRevenue    decimal.Decimal
	TotalCategories int
	TotalBlogs      int
	ActiveCoupons   int
	TodayOrders     int
	TodayRevenue    decimal.Decimal
	MonthlyOrders   int
	MonthlyRevenue  decimal.Decimal
	WeeklyOrders    int
	WeeklyRevenue   decimal.Decimal
}

type UserStats struct {
	Total     int
	Admins    int
	Customers int
}

type ProductStats struct {
	Total      int
	Categories []CategoryCount
}

type CategoryCount struct {
	CategoryID uuid.UUID
	Name       string
	Count      int
}

type BlogStats struct {
	Total     int
	Published int
	Draft     int
}

type ActivityType string

const (
	ActivityOrder   ActivityType = "order"
	ActivityProduct ActivityType = "product"
	ActivityBlog    ActivityType = "blog"
)

type Activity struct {
	Type    ActivityType
	Message string
	Time    time.Time
	Amount  *decimal.Decimal
}

type Trends struct {
	DailyGrowth   float64
	RevenueGrowth float64
}

// ComputeStats derives dashboard statistics from snapshot. Day and month
// boundaries are taken in now's location.
func ComputeStats(snapshot StatsSnapshot, now time.Time) Stats {
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekStart := now.AddDate(0, 0, -7)

	var overview StatsOverview
	overview.TotalProducts = len(snapshot.Products)
	overview.TotalOrders = len(snapshot.Orders)
	overview.TotalUsers = len(snapshot.Users)
	overview.TotalCategories = len(snapshot.Categories)
	overview.TotalBlogs = len(snapshot.Blogs)
	overview.ActiveCoupons = lo.CountBy(snapshot.Coupons, func(c Coupon) bool { return c.IsActive })
	overview.TotalRevenue = decimal.Zero
	overview.TodayRevenue = decimal.Zero
	overview.MonthlyRevenue = decimal.Zero
	overview.WeeklyRevenue = decimal.Zero

	orderStatus := make(map[OrderStatus]int, len(orderStatuses))
	for _, status := range orderStatuses {
		orderStatus[status] = 0
	}
	paymentStats := make(map[PaymentMethod]int)

	for _, o := range snapshot.Orders {
		created := o.CreatedAt.In(loc)
		overview.TotalRevenue = overview.TotalRevenue.Add(o.TotalPrice)

		if !created.Before(todayStart) {
			overview.TodayOrders++
			overview.TodayRevenue = overview.TodayRevenue.Add(o.TotalPrice)
		}
		if created.Year() == now.Year() && created.Month() == now.Month() {
			overview.MonthlyOrders++
			overview.MonthlyRevenue = overview.MonthlyRevenue.Add(o.TotalPrice)
		}
		if !created.Before(weekStart) {
			overview.WeeklyOrders++
			overview.WeeklyRevenue = overview.WeeklyRevenue.Add(o.TotalPrice)
		}

		if _, ok := orderStatus[o.Status]; ok {
			orderStatus[o.Status]++
		}

		method := o.PaymentMethod
		if method == "" {
			method = PaymentMethodCOD
		}
		paymentStats[method]++
	}

	return Stats{
		Overview:    overview,
		OrderStatus: orderStatus,
		UserStats: UserStats{
			Total:     len(snapshot.Users),
			Admins:    lo.CountBy(snapshot.Users, func(u User) bool { return u.Role == RoleAdmin }),
			Customers: lo.CountBy(snapshot.Users, func(u User) bool { return u.Role == RoleCustomer }),
		},
		ProductStats: ProductStats{
			Total:      len(snapshot.Products),
			Categories: categoryCounts(snapshot.Categories, snapshot.Products),
		},
		BlogStats: BlogStats{
			Total:     len(snapshot.Blogs),
			Published: lo.CountBy(snapshot.Blogs, func(b Blog) bool { return b.Status == BlogStatusPublished }),
			Draft:     lo.CountBy(snapshot.Blogs, func(b Blog) bool { return b.Status == BlogStatusDraft }),
		},
		PaymentStats:     paymentStats,
		RecentActivities: recentActivities(snapshot),
		Trends: Trends{
			DailyGrowth:   growth(decimal.NewFromInt(int64(overview.TodayOrders)), decimal.NewFromInt(int64(overview.WeeklyOrders))),
			RevenueGrowth: growth(overview.TodayRevenue, overview.WeeklyRevenue),
		},
	}
}

// growth compares today against the trailing daily average, flooring the
// average at 1 so an empty week does not divide by zero.
func growth(today, weekly decimal.Decimal) float64 {
	if !today.IsPositive() {
		return 0
	}

	one := decimal.NewFromInt(1)
	avg := decimal.Max(weekly.Div(decimal.NewFromInt(7)), one)

	return today.Div(avg).Sub(one).Mul(hundred).InexactFloat64()
}

func categoryCounts(categories []Category, products []Product) []CategoryCount {
	result := make([]CategoryCount, 0, len(categories))

	for _, c := range categories {
		count := lo.CountBy(products, func(p Product) bool {
			return p.CategoryID != nil && *p.CategoryID == c.ID
		})
		result = append(result, CategoryCount{
			CategoryID: c.ID,
			Name:       c.Name,
			Count:      count,
		})
	}

	return result
}

func recentActivities(snapshot StatsSnapshot) []Activity {
	orders := newestFirst(snapshot.Orders, func(o Order) time.Time { return o.CreatedAt }, recentOrdersLimit)
	products := newestFirst(snapshot.Products, func(p Product) time.Time { return p.CreatedAt }, recentProductsLimit)
	blogs := newestFirst(snapshot.Blogs, func(b Blog) time.Time { return b.CreatedAt }, recentBlogsLimit)

	activities := make([]Activity, 0, len(orders)+len(products)+len(blogs))

	for _, o := range orders {
		activities = append(activities, Activity{
			Type:    ActivityOrder,
			Message: fmt.Sprintf("New order #%s received", shortID(o.ID)),
			Time:    o.CreatedAt,
			Amount:  lo.ToPtr(o.TotalPrice),
		})
	}
	for _, p := range products {
		activities = append(activities, Activity{
			Type:    ActivityProduct,
			Message: fmt.Sprintf("Product '%s' added", p.Title),
			Time:    p.CreatedAt,
		})
	}
	for _, b := range blogs {
		activities = append(activities, Activity{
			Type:    ActivityBlog,
			Message: fmt.Sprintf("Blog post '%s' published", b.Title),
			Time:    b.CreatedAt,
		})
	}

	slices.SortStableFunc(activities, func(a, b Activity) int {
		return b.Time.Compare(a.Time)
	})

	if len(activities) > recentActivitiesLimit {
		activities = activities[:recentActivitiesLimit]
	}

	return activities
}

func newestFirst[T any](items []T, createdAt func(T) time.Time, limit int) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(createdAt(b).UnixNano(), createdAt(a).UnixNano())
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[len(s)-4:]
}
