package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

type stubTeacherService struct {
	teachers map[int64]*domain.Teacher
	nextID   int64
}

func newStubTeacherService() *stubTeacherService {
	return &stubTeacherService{teachers: make(map[int64]*domain.Teacher)}
}

func (s *stubTeacherService) GetByID(_ context.Context, id int64) (*domain.Teacher, error) {
	teacher, ok := s.teachers[id]
	if !ok {
		return nil, domain.ErrTeacherNotFound
	}
	return teacher, nil
}

func (s *stubTeacherService) FindAll(_ context.Context) ([]*domain.Teacher, error) {
	all := []*domain.Teacher{}
	for _, teacher := range s.teachers {
		all = append(all, teacher)
	}
	return all, nil
}

func (s *stubTeacherService) Create(_ context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	s.nextID++
	teacher.ID = s.nextID
	s.teachers[teacher.ID] = teacher
	return teacher, nil
}

func (s *stubTeacherService) Update(_ context.Context, id int64, teacher *domain.Teacher) (*domain.Teacher, error) {
	if _, ok := s.teachers[id]; !ok {
		return nil, domain.ErrTeacherNotFound
	}
	teacher.ID = id
	s.teachers[id] = teacher
	return teacher, nil
}

func (s *stubTeacherService) Delete(_ context.Context, id int64) error {
	if _, ok := s.teachers[id]; !ok {
		return domain.ErrTeacherNotFound
	}
	delete(s.teachers, id)
	return nil
}

func TestTeacherHandler_CreateAndGet(t *testing.T) {
	svc := newStubTeacherService()
	h := NewTeacherHandler(svc)

	c, rec := sessionContext(t, http.MethodPost, `{"firstName":"Margot","lastName":"Delahaye"}`, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = sessionContext(t, http.MethodGet, "", map[string]string{"id": "1"})
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	var teacher domain.Teacher
	if err := json.Unmarshal(rec.Body.Bytes(), &teacher); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if teacher.FirstName != "Margot" {
		t.Fatalf("unexpected teacher: %+v", teacher)
	}
}

func TestTeacherHandler_Create_MissingFields(t *testing.T) {
	svc := newStubTeacherService()
	h := NewTeacherHandler(svc)

	c, rec := sessionContext(t, http.MethodPost, `{"firstName":"Margot"}`, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("validation failures render directly, got error %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(svc.teachers) != 0 {
		t.Fatalf("nothing must be created on invalid input")
	}
}

func TestTeacherHandler_GetAndDelete_NotFound(t *testing.T) {
	h := NewTeacherHandler(newStubTeacherService())

	c, _ := sessionContext(t, http.MethodGet, "", map[string]string{"id": "99"})
	if err := h.Get(c); err != domain.ErrTeacherNotFound {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}

	c, _ = sessionContext(t, http.MethodDelete, "", map[string]string{"id": "99"})
	if err := h.Delete(c); err != domain.ErrTeacherNotFound {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}
