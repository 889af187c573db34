package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/portfolio-site-api/internal/models"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	Projects map[int64]*models.Project
	Tags     []*models.Tag
	Err      error
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[int64]*models.Project),
	}
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	projects := make([]*models.Project, 0, len(m.Projects))
	for _, p := range m.Projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Projects[id], nil
}

func (m *MockProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.Projects[id]
	return ok, nil
}

func (m *MockProjectRepository) ListTags(ctx context.Context) ([]*models.Tag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tags, nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int, error) {
	return len(m.Projects), m.Err
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments  map[string]*models.Comment
	CreateErr error
	LookupErr error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	stored := *comment
	m.Comments[comment.ID] = &stored
	return nil
}

func (m *MockCommentRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	var comments []*models.Comment
	for _, c := range m.Comments {
		if c.ProjectID == projectID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) GetOwnedByUser(ctx context.Context, id string, projectID, userID int64) (*models.Comment, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	c, ok := m.Comments[id]
	if !ok || c.ProjectID != projectID || c.UserID == nil || *c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (m *MockCommentRepository) GetPseudoAuthored(ctx context.Context, id string, projectID int64) (*models.Comment, error) {
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	c, ok := m.Comments[id]
	if !ok || c.ProjectID != projectID || c.UserID != nil {
		return nil, nil
	}
	return c, nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id string, content string) error {
	if c, ok := m.Comments[id]; ok {
		c.Content = content
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users  map[int64]*models.User
	NextID int64
	Err    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:  make(map[int64]*models.User),
		NextID: 1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	user.ID = m.NextID
	m.NextID++
	user.Email = strings.ToLower(user.Email)
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	email = strings.ToLower(email)
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), m.Err
}
