package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartnotes/internal/notes/app"
	"smartnotes/internal/notes/domain/entities"
	"smartnotes/internal/notes/ports/repositories"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func sampleNote() *entities.Note {
	now := time.Now().UTC()
	return &entities.Note{
		ID:        "note-id-1",
		Title:     "Shopping",
		Content:   "milk, eggs",
		Tags:      []string{"home"},
		Archived:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateNote(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		setupMocks  func(repo *mockNoteRepository)
		expectedErr error
	}{
		{
			name:  "Success - note created",
			title: "Shopping",
			setupMocks: func(repo *mockNoteRepository) {
				repo.On("Create", mock.Anything, "Shopping", "milk, eggs", []string{"home"}, false).
					Return(sampleNote(), nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:        "Error - empty title",
			title:       "",
			setupMocks:  func(repo *mockNoteRepository) {},
			expectedErr: app.ErrEmptyTitle,
		},
		{
			name:        "Error - title too long",
			title:       strings.Repeat("x", 257),
			setupMocks:  func(repo *mockNoteRepository) {},
			expectedErr: app.ErrTitleTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockNoteRepository)
			tt.setupMocks(repo)

			useCase := app.NewNoteUseCase(repo)

			note, err := useCase.CreateNote(context.Background(), tt.title, "milk, eggs", []string{"home"}, false)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				require.NotNil(t, note)
				assert.Equal(t, "note-id-1", note.ID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestCreateNoteTitleBoundaries(t *testing.T) {
	repo := new(mockNoteRepository)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(sampleNote(), nil)

	useCase := app.NewNoteUseCase(repo)
	ctx := context.Background()

	// Граница в 256 символов считается в рунах, не в байтах.
	_, err := useCase.CreateNote(ctx, strings.Repeat("я", 256), "", nil, false)
	assert.NoError(t, err)

	_, err = useCase.CreateNote(ctx, strings.Repeat("я", 257), "", nil, false)
	assert.ErrorIs(t, err, app.ErrTitleTooLong)
}

func TestGetNote(t *testing.T) {
	t.Run("Success - note found", func(t *testing.T) {
		repo := new(mockNoteRepository)
		expected := sampleNote()
		repo.On("GetByID", mock.Anything, expected.ID).Return(expected, nil).Once()

		useCase := app.NewNoteUseCase(repo)

		note, err := useCase.GetNote(context.Background(), expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, note)

		repo.AssertExpectations(t)
	})

	t.Run("Error - note not found", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()

		useCase := app.NewNoteUseCase(repo)

		note, err := useCase.GetNote(context.Background(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNoteNotFound)
		assert.Nil(t, note)

		repo.AssertExpectations(t)
	})
}

func TestListNotes(t *testing.T) {
	repo := new(mockNoteRepository)
	expected := []*entities.Note{sampleNote()}
	archived := boolPtr(false)
	repo.On("List", mock.Anything, archived).Return(expected, nil).Once()

	useCase := app.NewNoteUseCase(repo)

	notes, err := useCase.ListNotes(context.Background(), archived)
	require.NoError(t, err)
	assert.Equal(t, expected, notes)

	repo.AssertExpectations(t)
}

func TestUpdateNote(t *testing.T) {
	tests := []struct {
		name        string
		patch       repositories.NotePatch
		setupMocks  func(repo *mockNoteRepository)
		expectedErr error
	}{
		{
			name:  "Success - partial update applied",
			patch: repositories.NotePatch{Content: strPtr("new content")},
			setupMocks: func(repo *mockNoteRepository) {
				repo.On("Update", mock.Anything, "note-id-1", mock.MatchedBy(func(p repositories.NotePatch) bool {
					return p.Content != nil && *p.Content == "new content" && p.Title == nil
				})).Return(sampleNote(), nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:        "Error - empty title in patch",
			patch:       repositories.NotePatch{Title: strPtr("")},
			setupMocks:  func(repo *mockNoteRepository) {},
			expectedErr: app.ErrEmptyTitle,
		},
		{
			name:  "Error - note not found",
			patch: repositories.NotePatch{Content: strPtr("new content")},
			setupMocks: func(repo *mockNoteRepository) {
				repo.On("Update", mock.Anything, "note-id-1", mock.Anything).Return(nil, nil).Once()
			},
			expectedErr: app.ErrNoteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockNoteRepository)
			tt.setupMocks(repo)

			useCase := app.NewNoteUseCase(repo)

			note, err := useCase.UpdateNote(context.Background(), "note-id-1", tt.patch)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, note)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestDeleteNote(t *testing.T) {
	t.Run("Success - note deleted", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("Delete", mock.Anything, "note-id-1").Return(true, nil).Once()

		useCase := app.NewNoteUseCase(repo)

		err := useCase.DeleteNote(context.Background(), "note-id-1")
		assert.NoError(t, err)

		repo.AssertExpectations(t)
	})

	t.Run("Error - note not found", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("Delete", mock.Anything, "missing").Return(false, nil).Once()

		useCase := app.NewNoteUseCase(repo)

		err := useCase.DeleteNote(context.Background(), "missing")
		assert.ErrorIs(t, err, app.ErrNoteNotFound)

		repo.AssertExpectations(t)
	})
}

func TestArchiveNote(t *testing.T) {
	t.Run("Success - status set", func(t *testing.T) {
		repo := new(mockNoteRepository)
		archived := sampleNote()
		archived.Archived = true
		repo.On("SetArchived", mock.Anything, archived.ID, true).Return(archived, nil).Once()

		useCase := app.NewNoteUseCase(repo)

		note, err := useCase.ArchiveNote(context.Background(), archived.ID, true)
		require.NoError(t, err)
		assert.True(t, note.Archived)

		repo.AssertExpectations(t)
	})

	t.Run("Error - note not found", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("SetArchived", mock.Anything, "missing", false).Return(nil, nil).Once()

		useCase := app.NewNoteUseCase(repo)

		note, err := useCase.ArchiveNote(context.Background(), "missing", false)
		assert.ErrorIs(t, err, app.ErrNoteNotFound)
		assert.Nil(t, note)

		repo.AssertExpectations(t)
	})
}

func TestSearchNotes(t *testing.T) {
	repo := new(mockNoteRepository)
	expected := []*entities.Note{sampleNote()}
	repo.On("Search", mock.Anything, "report", "work", (*bool)(nil)).Return(expected, nil).Once()

	useCase := app.NewNoteUseCase(repo)

	notes, err := useCase.SearchNotes(context.Background(), "report", "work", nil)
	require.NoError(t, err)
	assert.Equal(t, expected, notes)

	repo.AssertExpectations(t)
}
