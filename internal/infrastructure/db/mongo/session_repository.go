package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

const sessionsCollection = "sessions"
const sessionsSequence = "sessions"

// SessionRepository implements ports.SessionRepository using MongoDB.
// The participant set is embedded in the session document, so membership
// updates are single-document writes and inherit Mongo's per-document
// atomicity.
type SessionRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{db: db, coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID          int64     `bson:"_id"`
	Name        string    `bson:"name"`
	Date        time.Time `bson:"date"`
	TeacherID   int64     `bson:"teacher_id"`
	Description string    `bson:"description"`
	Users       []int64   `bson:"users"`
	CreatedAt   int64     `bson:"created_at"`
	UpdatedAt   int64     `bson:"updated_at"`
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	id, err := nextID(ctx, r.db, sessionsSequence)
	if err != nil {
		return nil, err
	}

	doc := toMongoSession(session)
	doc.ID = id
	if doc.Users == nil {
		doc.Users = []int64{}
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	created := *session
	created.ID = id
	return &created, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id int64) (*domain.Session, error) {
	var ms mongoSession
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SessionRepository) FindAll(ctx context.Context) ([]*domain.Session, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []*domain.Session{}
	for cursor.Next(ctx) {
		var ms mongoSession
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, ms.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) Update(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	doc := toMongoSession(session)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": session.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func toMongoSession(s *domain.Session) mongoSession {
	return mongoSession{
		ID:          s.ID,
		Name:        s.Name,
		Date:        s.Date.UTC(),
		TeacherID:   s.TeacherID,
		Description: s.Description,
		Users:       s.Users,
		CreatedAt:   s.CreatedAt.Unix(),
		UpdatedAt:   s.UpdatedAt.Unix(),
	}
}

func (ms mongoSession) toDomain() *domain.Session {
	users := ms.Users
	if users == nil {
		users = []int64{}
	}
	return &domain.Session{
		ID:          ms.ID,
		Name:        ms.Name,
		Date:        ms.Date.UTC(),
		TeacherID:   ms.TeacherID,
		Description: ms.Description,
		Users:       users,
		CreatedAt:   unixToTime(ms.CreatedAt),
		UpdatedAt:   unixToTime(ms.UpdatedAt),
	}
}
