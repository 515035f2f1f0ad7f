// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"smartnotes/internal/notes/domain/entities"
)

// NotePatch описывает частичное обновление заметки.
// nil означает, что поле не передано и должно остаться без изменений.
type NotePatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	Archived *bool
}

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Отсутствие заметки сигнализируется значением nil без ошибки.
type NoteRepository interface {
	Create(ctx context.Context, title, content string, tags []string, archived bool) (*entities.Note, error)
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)
	List(ctx context.Context, archived *bool) ([]*entities.Note, error)
	Update(ctx context.Context, noteID string, patch NotePatch) (*entities.Note, error)
	Delete(ctx context.Context, noteID string) (bool, error)
	SetArchived(ctx context.Context, noteID string, archived bool) (*entities.Note, error)
	Search(ctx context.Context, query, tag string, archived *bool) ([]*entities.Note, error)
}
