// Package store provides persistence for generated floor plans.
//
// This package fulfills the "Persistence" external collaborator described
// for the floor-plan pipeline: it serializes a placed plan, its score, and
// its wall analysis as an opaque document plus a queryable overall-score
// summary field, without pulling any storage concern into the pure
// internal/floorplan or internal/compliance packages.
//
// # Usage
//
//	st, err := store.NewMongoPlanStore(ctx, "mongodb://localhost:27017", "floorplanner")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close(ctx)
//
//	err = st.Save(ctx, planID, plan, walls)
//	stored, err := st.Get(ctx, planID)
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/floorplanner/internal/floorplan"
	pkgerrors "github.com/matzehuels/floorplanner/pkg/errors"
)

// collectionName is the single collection plans are stored in. Each document
// is keyed by its own "_id" rather than the Mongo-assigned ObjectID, so a
// caller-supplied plan ID (typically the brief hash) round-trips unchanged.
const collectionName = "plans"

// StoredPlan is the document shape persisted for a generated plan: the plan
// and its wall analysis travel as opaque nested documents, while
// OverallScore and SavedAt are promoted to top-level fields so they can be
// indexed and queried without decoding the full document.
type StoredPlan struct {
	ID           string                 `bson:"_id"`
	Plan         floorplan.PlacedPlan   `bson:"plan"`
	Walls        floorplan.WallAnalysis `bson:"walls"`
	OverallScore float64                `bson:"overall_score"`
	SavedAt      time.Time              `bson:"saved_at"`
}

// PlanStore persists and retrieves generated floor plans.
type PlanStore interface {
	// Save upserts a plan document under planID.
	Save(ctx context.Context, planID string, plan floorplan.PlacedPlan, walls floorplan.WallAnalysis) error

	// Get retrieves a plan by ID. Returns a PLAN_NOT_FOUND error if no
	// document exists under that ID.
	Get(ctx context.Context, planID string) (*StoredPlan, error)

	// Delete removes a plan document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, planID string) error

	// TopScoring returns the n highest-scoring stored plans, descending by
	// OverallScore.
	TopScoring(ctx context.Context, n int) ([]StoredPlan, error)

	// Close releases the underlying Mongo client connection.
	Close(ctx context.Context) error
}

// MongoPlanStore is a PlanStore backed by MongoDB.
type MongoPlanStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoPlanStore dials uri and returns a MongoPlanStore backed by
// database dbName. It pings the server before returning so a bad URI or an
// unreachable cluster fails fast at construction instead of on first use.
func NewMongoPlanStore(ctx context.Context, uri, dbName string) (*MongoPlanStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, &pkgerrors.StoreUnavailableError{Backend: "mongo", Cause: err}
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, &pkgerrors.StoreUnavailableError{Backend: "mongo", Cause: err}
	}
	coll := client.Database(dbName).Collection(collectionName)
	return &MongoPlanStore{client: client, coll: coll}, nil
}

// Save upserts the plan, wall analysis, and overall score under planID.
func (s *MongoPlanStore) Save(ctx context.Context, planID string, plan floorplan.PlacedPlan, walls floorplan.WallAnalysis) error {
	if err := pkgerrors.ValidatePlanID(planID); err != nil {
		return err
	}
	doc := StoredPlan{
		ID:           planID,
		Plan:         plan,
		Walls:        walls,
		OverallScore: plan.Score.Overall,
		SavedAt:      time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": planID}, doc, opts); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeStore, err, "save plan %s", planID)
	}
	return nil
}

// Get retrieves a plan document by ID.
func (s *MongoPlanStore) Get(ctx context.Context, planID string) (*StoredPlan, error) {
	var doc StoredPlan
	err := s.coll.FindOne(ctx, bson.M{"_id": planID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, pkgerrors.New(pkgerrors.ErrCodePlanNotFound, "plan %s not found", planID)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeStore, err, "get plan %s", planID)
	}
	return &doc, nil
}

// Delete removes a plan document. Deleting a missing ID is a no-op, not an error.
func (s *MongoPlanStore) Delete(ctx context.Context, planID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": planID}); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeStore, err, "delete plan %s", planID)
	}
	return nil
}

// TopScoring returns the n highest-scoring stored plans.
func (s *MongoPlanStore) TopScoring(ctx context.Context, n int) ([]StoredPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "overall_score", Value: -1}}).SetLimit(int64(n))
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeStore, err, "query top scoring plans")
	}
	defer cur.Close(ctx)

	var docs []StoredPlan
	if err := cur.All(ctx, &docs); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeStore, err, "decode top scoring plans")
	}
	return docs, nil
}

// Close disconnects the underlying Mongo client.
func (s *MongoPlanStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo client: %w", err)
	}
	return nil
}

var _ PlanStore = (*MongoPlanStore)(nil)
