package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"smartnotes/internal/notes/domain/entities"
	"smartnotes/internal/notes/ports/repositories"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, title, content string, tags []string, archived bool) (*entities.Note, error) {
	args := m.Called(ctx, title, content, tags, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) List(ctx context.Context, archived *bool) ([]*entities.Note, error) {
	args := m.Called(ctx, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, noteID string, patch repositories.NotePatch) (*entities.Note, error) {
	args := m.Called(ctx, noteID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID string) (bool, error) {
	args := m.Called(ctx, noteID)
	return args.Bool(0), args.Error(1)
}

func (m *mockNoteRepository) SetArchived(ctx context.Context, noteID string, archived bool) (*entities.Note, error) {
	args := m.Called(ctx, noteID, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Search(ctx context.Context, query, tag string, archived *bool) ([]*entities.Note, error) {
	args := m.Called(ctx, query, tag, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}
