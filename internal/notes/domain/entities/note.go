// Package entities defines the domain entities for the notes service.
package entities

import (
	"strings"
	"time"
)

// Note представляет собой заметку пользователя.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a new note with the given title, content, tags and archived flag.
// ID и временные метки назначает репозиторий при сохранении.
func NewNote(title, content string, tags []string, archived bool) *Note {
	return &Note{
		Title:    title,
		Content:  content,
		Tags:     NormalizeTags(tags),
		Archived: archived,
	}
}

// NormalizeTags нормализует список тегов: обрезает пробелы, отбрасывает пустые
// значения и убирает дубликаты, сохраняя порядок первого вхождения.
// Сравнение дубликатов чувствительно к регистру.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

// HasTag проверяет наличие тега у заметки без учета регистра.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone возвращает независимую копию заметки.
func (n *Note) Clone() *Note {
	clone := *n
	clone.Tags = append([]string(nil), n.Tags...)
	return &clone
}
