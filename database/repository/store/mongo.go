package store

import (
	"context"
	"errors"
	"fmt"

	"fisioagenda/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecordStore struct {
	db *mongo.Database
}

// NewMongoRecordStore returns a RecordStore backed by MongoDB.
func NewMongoRecordStore() RecordStore {
	return &mongoRecordStore{
		db: database.MongoClient.Database("fisioagenda"),
	}
}

func buildFilter(q Query) bson.M {
	filter := bson.M{}
	for field, v := range q.Eq {
		filter[field] = v
	}
	for field, r := range q.Range {
		cond := bson.M{}
		if r.Gte != nil {
			cond["$gte"] = r.Gte
		}
		if r.Lt != nil {
			cond["$lt"] = r.Lt
		}
		if len(cond) > 0 {
			filter[field] = cond
		}
	}
	return filter
}

func (s *mongoRecordStore) Find(ctx context.Context, q Query, out any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOpts := options.Find()
	if q.Sort != "" {
		order := 1
		if q.Desc {
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: q.Sort, Value: order}})
	}
	if q.Limit > 0 {
		findOpts.SetLimit(q.Limit)
	}

	cursor, err := s.db.Collection(q.Table).Find(ctx, buildFilter(q), findOpts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", q.Table, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("error decoding %s records: %w", q.Table, err)
	}
	return nil
}

func (s *mongoRecordStore) FindByID(ctx context.Context, table, id string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := s.db.Collection(table).FindOne(ctx, bson.M{"id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s record %s not found", table, id)
	}
	return err
}

func (s *mongoRecordStore) InsertOne(ctx context.Context, table string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.db.Collection(table).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (s *mongoRecordStore) InsertMany(ctx context.Context, table string, docs []any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ordered := true
	_, err := s.db.Collection(table).InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: &ordered})
	if err != nil {
		return fmt.Errorf("failed to batch insert into %s: %w", table, err)
	}
	return nil
}

func (s *mongoRecordStore) UpdateByID(ctx context.Context, table, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{}
	for field, v := range fields {
		set[field] = v
	}
	res, err := s.db.Collection(table).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update %s record %s: %w", table, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s record %s not found", table, id)
	}
	return nil
}

func (s *mongoRecordStore) DeleteByID(ctx context.Context, table, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.db.Collection(table).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s record %s: %w", table, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s record %s not found", table, id)
	}
	return nil
}
