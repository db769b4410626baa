package router

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
)

var errForeignKey = errors.New("insert or update on table \"course\" violates foreign key constraint")

// memoryStore mimics the two tables, including the course to teacher foreign key.
type memoryStore struct {
	mu            sync.Mutex
	nextTeacherID int64
	nextCourseID  int64
	teachers      map[int64]models.Teacher
	courses       map[int64]models.Course
	clock         func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		teachers: map[int64]models.Teacher{},
		courses:  map[int64]models.Course{},
		clock:    func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
	}
}

type memoryTeacherRepo struct{ s *memoryStore }

func (r memoryTeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Teacher{}
	for _, t := range r.s.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.teachers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (r memoryTeacherRepo) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextTeacherID++
	t := models.Teacher{ID: r.s.nextTeacherID, Name: req.Name, PictureURL: *req.PictureURL, Profile: *req.Profile}
	r.s.teachers[t.ID] = t
	return &t, nil
}

func (r memoryTeacherRepo) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.teachers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	merged := req.Apply(current)
	r.s.teachers[id] = merged
	return &merged, nil
}

func (r memoryTeacherRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teachers[id]; !ok {
		return 0, nil
	}
	for _, c := range r.s.courses {
		if c.TeacherID == id {
			return 0, errForeignKey
		}
	}
	delete(r.s.teachers, id)
	return 1, nil
}

type memoryCourseRepo struct{ s *memoryStore }

func (r memoryCourseRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Course{}
	for _, c := range r.s.courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryCourseRepo) FindByID(ctx context.Context, teacherID, id int64) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courses[id]
	if !ok || c.TeacherID != teacherID {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (r memoryCourseRepo) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teachers[req.TeacherID]; !ok {
		return nil, errForeignKey
	}
	r.s.nextCourseID++
	c := models.Course{
		ID:          r.s.nextCourseID,
		TeacherID:   req.TeacherID,
		Name:        req.Name,
		Time:        r.s.clock(),
		Description: req.Description,
		Format:      req.Format,
		Structure:   req.Structure,
		Duration:    req.Duration,
		Price:       req.Price,
		Language:    req.Language,
		Level:       req.Level,
	}
	r.s.courses[c.ID] = c
	return &c, nil
}

func (r memoryCourseRepo) Update(ctx context.Context, teacherID, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.courses[id]
	if !ok || current.TeacherID != teacherID {
		return nil, sql.ErrNoRows
	}
	merged := req.Apply(current)
	r.s.courses[id] = merged
	return &merged, nil
}

func (r memoryCourseRepo) Delete(ctx context.Context, teacherID, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courses[id]
	if !ok || c.TeacherID != teacherID {
		return 0, nil
	}
	delete(r.s.courses, id)
	return 1, nil
}
