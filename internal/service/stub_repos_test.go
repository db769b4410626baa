package service

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
)

type stubTeacherRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Teacher
	err    error
}

func newStubTeacherRepo(seed ...models.Teacher) *stubTeacherRepo {
	r := &stubTeacherRepo{items: map[int64]models.Teacher{}}
	for _, t := range seed {
		r.items[t.ID] = t
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
	}
	return r
}

func (r *stubTeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Teacher{}
	for _, t := range r.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (r *stubTeacherRepo) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	t := models.Teacher{ID: r.nextID, Name: req.Name, PictureURL: *req.PictureURL, Profile: *req.Profile}
	r.items[t.ID] = t
	return &t, nil
}

func (r *stubTeacherRepo) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	current, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	merged := req.Apply(current)
	r.items[id] = merged
	return &merged, nil
}

func (r *stubTeacherRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

type courseKey struct{ teacherID, id int64 }

type stubCourseRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[courseKey]models.Course
	err    error
}

func newStubCourseRepo(seed ...models.Course) *stubCourseRepo {
	r := &stubCourseRepo{items: map[courseKey]models.Course{}}
	for _, c := range seed {
		r.items[courseKey{c.TeacherID, c.ID}] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *stubCourseRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Course{}
	for k, c := range r.items {
		if k.teacherID == teacherID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCourseRepo) FindByID(ctx context.Context, teacherID, id int64) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.items[courseKey{teacherID, id}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (r *stubCourseRepo) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	c := models.Course{
		ID:          r.nextID,
		TeacherID:   req.TeacherID,
		Name:        req.Name,
		Time:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Description: req.Description,
		Format:      req.Format,
		Structure:   req.Structure,
		Duration:    req.Duration,
		Price:       req.Price,
		Language:    req.Language,
		Level:       req.Level,
	}
	r.items[courseKey{c.TeacherID, c.ID}] = c
	return &c, nil
}

func (r *stubCourseRepo) Update(ctx context.Context, teacherID, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	key := courseKey{teacherID, id}
	current, ok := r.items[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	merged := req.Apply(current)
	r.items[key] = merged
	return &merged, nil
}

func (r *stubCourseRepo) Delete(ctx context.Context, teacherID, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	key := courseKey{teacherID, id}
	if _, ok := r.items[key]; !ok {
		return 0, nil
	}
	delete(r.items, key)
	return 1, nil
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
