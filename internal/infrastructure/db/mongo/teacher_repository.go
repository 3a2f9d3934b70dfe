package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

const teachersCollection = "teachers"
const teachersSequence = "teachers"

// TeacherRepository implements ports.TeacherRepository using MongoDB.
type TeacherRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{db: db, coll: db.Collection(teachersCollection)}
}

type mongoTeacher struct {
	ID        int64  `bson:"_id"`
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *TeacherRepository) Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	id, err := nextID(ctx, r.db, teachersSequence)
	if err != nil {
		return nil, err
	}

	doc := mongoTeacher{
		ID:        id,
		FirstName: teacher.FirstName,
		LastName:  teacher.LastName,
		CreatedAt: teacher.CreatedAt.Unix(),
		UpdatedAt: teacher.UpdatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert teacher: %w", err)
	}

	created := *teacher
	created.ID = id
	return &created, nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	var mt mongoTeacher
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TeacherRepository) FindAll(ctx context.Context) ([]*domain.Teacher, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find teachers: %w", err)
	}
	defer cursor.Close(ctx)

	teachers := []*domain.Teacher{}
	for cursor.Next(ctx) {
		var mt mongoTeacher
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode teacher: %w", err)
		}
		teachers = append(teachers, mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate teachers: %w", err)
	}
	return teachers, nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	doc := mongoTeacher{
		ID:        teacher.ID,
		FirstName: teacher.FirstName,
		LastName:  teacher.LastName,
		CreatedAt: teacher.CreatedAt.Unix(),
		UpdatedAt: teacher.UpdatedAt.Unix(),
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": teacher.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update teacher: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTeacherNotFound
	}
	return teacher, nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

func (mt mongoTeacher) toDomain() *domain.Teacher {
	return &domain.Teacher{
		ID:        mt.ID,
		FirstName: mt.FirstName,
		LastName:  mt.LastName,
		CreatedAt: unixToTime(mt.CreatedAt),
		UpdatedAt: unixToTime(mt.UpdatedAt),
	}
}
