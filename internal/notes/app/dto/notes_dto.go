// Package dto содержит структуры запросов и ответов HTTP API заметок.
package dto

import (
	"smartnotes/internal/notes/ports/repositories"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Archived bool     `json:"archived"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// nil-поле означает, что значение не передано.
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	Archived *bool     `json:"archived"`
}

// ToPatch преобразует запрос в патч для репозитория.
func (r *UpdateNoteRequest) ToPatch() repositories.NotePatch {
	return repositories.NotePatch{
		Title:    r.Title,
		Content:  r.Content,
		Tags:     r.Tags,
		Archived: r.Archived,
	}
}

// HealthResponse содержит ответ проверки работоспособности сервиса.
type HealthResponse struct {
	Message string `json:"message"`
}
