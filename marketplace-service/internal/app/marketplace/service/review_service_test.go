package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/repository/mocks"
	"bazaar/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestReviewService() (*ReviewService, *mocks.MockReviewRepository, *mocks.MockMessagePublisher) {
	repo := new(mocks.MockReviewRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	service := NewReviewService(repo, publisher)
	service.now = func() time.Time { return fixedNow }
	return service, repo, publisher
}

func TestReviewService_Add_Success(t *testing.T) {
	service, repo, publisher := newTestReviewService()
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo.On("AddIfAbsent", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.UserEmail == "token@example.com" && r.Rating == 5 && r.Date.Equal(fixedNow)
	})).Return(&entity.InsertResult{Acknowledged: true, InsertedID: id}, true, nil)
	publisher.On("PublishMessage", ctx, id.Hex(), mock.Anything).Return(nil)

	result, created, err := service.Add(ctx, "token@example.com", &entity.CreateReviewRequest{
		ProductID: "p-1",
		Rating:    5,
		Comment:   "Great product!",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, id, result.InsertedID)
	require.Len(t, publisher.Messages, 1)
	assert.Contains(t, string(publisher.Messages[0]), entity.EventReviewCreated)
}

func TestReviewService_Add_Duplicate(t *testing.T) {
	service, repo, publisher := newTestReviewService()
	ctx := context.Background()

	repo.On("AddIfAbsent", ctx, mock.Anything).Return(nil, false, nil)

	result, created, err := service.Add(ctx, "buyer@example.com", &entity.CreateReviewRequest{ProductID: "p-1", Rating: 2})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, result)
	publisher.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_Add_KafkaErrorIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter("test-service", "info", &buf)

	service, repo, publisher := newTestReviewService()
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo.On("AddIfAbsent", ctx, mock.Anything).Return(&entity.InsertResult{Acknowledged: true, InsertedID: id}, true, nil)
	publisher.On("PublishMessage", ctx, mock.Anything, mock.Anything).Return(errors.New("kafka error"))

	_, created, err := service.Add(ctx, "buyer@example.com", &entity.CreateReviewRequest{ProductID: "p-1", Rating: 3})

	assert.NoError(t, err)
	assert.True(t, created)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, entity.EventReviewCreated, entry["event_type"])
	assert.Equal(t, id.Hex(), entry["document_id"])
	assert.Equal(t, "kafka error", entry["error"])
}

func TestReviewService_ListByProduct(t *testing.T) {
	service, repo, _ := newTestReviewService()
	ctx := context.Background()

	repo.On("ListByProduct", ctx, "p-1").Return([]entity.Review{{Rating: 5}, {Rating: 4}}, nil)

	reviews, err := service.ListByProduct(ctx, "p-1")

	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
