// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"smartnotes/internal/notes/domain/entities"
	"smartnotes/internal/notes/ports/repositories"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title cannot exceed 256 characters")
)

// maxTitleLength - максимальная длина заголовка в символах.
const maxTitleLength = 256

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
	}
}

// CreateNote создает новую заметку.
func (uc *NoteUseCase) CreateNote(ctx context.Context, title, content string, tags []string, archived bool) (*entities.Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	note, err := uc.noteRepo.Create(ctx, title, content, tags, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// GetNote возвращает заметку по ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, noteID string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// ListNotes возвращает список заметок с опциональным фильтром по archived.
func (uc *NoteUseCase) ListNotes(ctx context.Context, archived *bool) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.List(ctx, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// UpdateNote применяет частичное обновление к существующей заметке.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, noteID string, patch repositories.NotePatch) (*entities.Note, error) {
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
	}

	note, err := uc.noteRepo.Update(ctx, noteID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// DeleteNote удаляет заметку.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID string) error {
	existed, err := uc.noteRepo.Delete(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if !existed {
		return ErrNoteNotFound
	}

	return nil
}

// ArchiveNote устанавливает статус архивации заметки.
func (uc *NoteUseCase) ArchiveNote(ctx context.Context, noteID string, archived bool) (*entities.Note, error) {
	note, err := uc.noteRepo.SetArchived(ctx, noteID, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to set archived status: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// SearchNotes выполняет поиск заметок по тексту, тегу и статусу архивации.
func (uc *NoteUseCase) SearchNotes(ctx context.Context, query, tag string, archived *bool) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.Search(ctx, query, tag, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	return notes, nil
}

// validateTitle проверяет границы длины заголовка (1-256 символов).
func validateTitle(title string) error {
	length := utf8.RuneCountInString(title)
	if length == 0 {
		return ErrEmptyTitle
	}
	if length > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
