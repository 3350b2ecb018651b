package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
	"github.com/ucasl/reservas-web/internal/pkg/sessionid"
)

const sessionCollection = "sessions"

// SessionStore implements ports.SessionStore on a MongoDB collection. Expired
// documents are removed by a TTL index on expires_at and ignored on read until
// the server reaps them.
type SessionStore struct {
	col *mongo.Collection
	now func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(db *mongo.Database) *SessionStore {
	return &SessionStore{col: db.Collection(sessionCollection), now: time.Now}
}

type sessionDoc struct {
	ID        string               `bson:"_id"`
	Record    domain.SessionRecord `bson:"record"`
	ExpiresAt time.Time            `bson:"expires_at"`
}

func (s *SessionStore) Save(ctx context.Context, id string, rec domain.SessionRecord, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := sessionDoc{
		ID:        sessionid.Digest(id),
		Record:    rec,
		ExpiresAt: s.now().Add(ttl).UTC(),
	}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context, id string) (*domain.SessionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":        sessionid.Digest(id),
		"expires_at": bson.M{"$gt": s.now().UTC()},
	}
	var doc sessionDoc
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &doc.Record, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": sessionid.Digest(id)}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}

// EnsureIndexes creates the TTL index that lets MongoDB expire sessions.
func (s *SessionStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}
