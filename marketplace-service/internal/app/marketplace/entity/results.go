package entity

import "go.mongodb.org/mongo-driver/mongo"

// Результаты операций записи в том виде, в каком их отдают клиентские драйверы MongoDB.
// Фронтенд проверяет insertedId / modifiedCount / deletedCount.

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertResult(res *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func NewUpdateResult(res *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func NewDeleteResult(res *mongo.DeleteResult) *DeleteResult {
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
