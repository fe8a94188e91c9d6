package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanReview(t *testing.T) {
	item := OrderItem{ProductID: uuid.New(), Quantity: 1}
	reviewed := item
	reviewed.IsReviewed = true

	for _, status := range OrderStatuses() {
		order := Order{Status: status}

		assert.Equal(t, status == OrderStatusDelivered, CanReview(order, item), status)
		assert.False(t, CanReview(order, reviewed), status)
	}
}

func TestPartitionByReview(t *testing.T) {
	unreviewed := OrderItem{ProductID: uuid.New(), Quantity: 1}
	reviewed := OrderItem{ProductID: uuid.New(), Quantity: 1, IsReviewed: true}

	fully := Order{ID: uuid.New(), Items: []OrderItem{reviewed, reviewed}}
	partly := Order{ID: uuid.New(), Items: []OrderItem{reviewed, unreviewed}}
	none := Order{ID: uuid.New(), Items: []OrderItem{unreviewed}}
	empty := Order{ID: uuid.New()}

	withoutReview, withReview := PartitionByReview([]Order{fully, partly, none, empty})

	assert.Equal(t, []Order{partly, none, empty}, withoutReview)
	assert.Equal(t, []Order{fully}, withReview)

	withoutReview, withReview = PartitionByReview(nil)
	assert.Empty(t, withoutReview)
	assert.Empty(t, withReview)
}

func TestOrder_ItemsForProduct(t *testing.T) {
	productID := uuid.New()
	order := Order{Items: []OrderItem{
		{ProductID: productID},
		{ProductID: uuid.New()},
		{ProductID: productID},
	}}

	assert.Equal(t, []int{0, 2}, order.ItemsForProduct(productID))
	assert.Empty(t, order.ItemsForProduct(uuid.New()))
}
