package webapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
	"github.com/noah-isme/tutor-api/pkg/response"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Status, e.Message)
}

// Client talks to the tutor JSON API.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client. timeout bounds every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// ListTeachers fetches every teacher.
func (c *Client) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := c.do(ctx, http.MethodGet, "/teachers", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// GetTeacher fetches one teacher.
func (c *Client) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teachers/%d", id), nil, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// CreateTeacher registers a teacher.
func (c *Client) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.do(ctx, http.MethodPost, "/teachers", req, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListCourses fetches the courses of a teacher.
func (c *Client) ListCourses(ctx context.Context, teacherID int64) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", teacherID), nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse adds a course to a teacher.
func (c *Client) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPost, "/courses", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course and returns the API confirmation.
func (c *Client) DeleteCourse(ctx context.Context, teacherID, id int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d/%d", teacherID, id), nil, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody response.ErrorBody
		if json.Unmarshal(data, &errBody) == nil && errBody.ErrorMessage != "" {
			apiErr.Message = errBody.ErrorMessage
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
