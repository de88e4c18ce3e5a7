package mongodb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDebitFilter(t *testing.T) {
	t.Parallel()
	got := debitFilter("alice", 50)
	require.Equal(t, bson.M{"name": "alice", "balance": bson.M{"$gte": 50.0}}, got)
}

func TestStockAdjustFilter(t *testing.T) {
	t.Parallel()

	// Increments can always apply.
	require.Equal(t, bson.M{"name": "widget"}, stockAdjustFilter("widget", 3))
	require.Equal(t, bson.M{"name": "widget"}, stockAdjustFilter("widget", 0))

	// Decrements only match while stock covers them.
	got := stockAdjustFilter("widget", -4)
	require.Equal(t, bson.M{"name": "widget", "stock": bson.M{"$gte": 4}}, got)
}

func TestVisibleToFilter(t *testing.T) {
	t.Parallel()
	got := visibleToFilter("ann")
	require.Equal(t, bson.M{"$or": bson.A{
		bson.M{"owner": "ann"},
		bson.M{"sharedWith": "ann"},
	}}, got)
}

func TestContainsFilter(t *testing.T) {
	t.Parallel()
	got := containsFilter("note", "groceries")
	require.Equal(t, bson.M{"note": bson.M{"$regex": "groceries", "$options": "i"}}, got)
}

func TestContainsFilter_EscapesMetacharacters(t *testing.T) {
	t.Parallel()
	got := containsFilter("name", "a(")
	require.Equal(t, bson.M{"name": bson.M{"$regex": `a\(`, "$options": "i"}}, got)

	got = containsFilter("name", "c++ guide")
	require.Equal(t, bson.M{"name": bson.M{"$regex": `c\+\+ guide`, "$options": "i"}}, got)
}

func TestFeedFilter(t *testing.T) {
	t.Parallel()
	got := feedFilter([]string{"ann", "bob"})
	require.Equal(t, bson.M{"username": bson.M{"$in": []string{"ann", "bob"}}}, got)
}

func TestSalesByProductPipeline(t *testing.T) {
	t.Parallel()
	p := salesByProductPipeline()
	require.Len(t, p, 2)
	require.Equal(t, "$group", p[0][0].Key)
	require.Equal(t, bson.M{
		"_id":       "$product",
		"totalSold": bson.M{"$sum": "$quantity"},
	}, p[0][0].Value)
	require.Equal(t, "$sort", p[1][0].Key)
}

func TestTopCustomersPipeline(t *testing.T) {
	t.Parallel()
	p := topCustomersPipeline(5)
	require.Len(t, p, 3)
	require.Equal(t, "$group", p[0][0].Key)
	require.Equal(t, "$sort", p[1][0].Key)
	require.Equal(t, "$limit", p[2][0].Key)
	require.Equal(t, 5, p[2][0].Value)
}

func TestPostsWithAuthorsPipeline(t *testing.T) {
	t.Parallel()
	p := postsWithAuthorsPipeline()
	require.Len(t, p, 1)
	require.Equal(t, "$lookup", p[0][0].Key)
	require.Equal(t, bson.M{
		"from":         "authors",
		"localField":   "authorId",
		"foreignField": "_id",
		"as":           "author",
	}, p[0][0].Value)
}
