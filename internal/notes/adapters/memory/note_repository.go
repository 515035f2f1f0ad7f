// Package memory provides an in-memory implementation of the notes repository.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartnotes/internal/notes/domain/entities"
	"smartnotes/internal/notes/ports/repositories"
	"smartnotes/pkg/logger"
)

// record хранит заметку вместе с порядковым номером вставки.
// Номер используется как детерминированный разрешитель ничьих при сортировке.
type record struct {
	note entities.Note
	seq  uint64
}

// NoteRepository реализует repositories.NoteRepository поверх map в памяти.
// Все операции атомарны относительно друг друга благодаря общему мьютексу.
type NoteRepository struct {
	mu    sync.RWMutex
	notes map[string]record
	seq   uint64
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository создает новый in-memory репозиторий заметок.
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		notes: make(map[string]record),
	}
}

// Create создает новую заметку: генерирует UUID, нормализует теги
// и устанавливает временные метки.
func (r *NoteRepository) Create(ctx context.Context, title, content string, tags []string, archived bool) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	note := entities.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Tags:      entities.NormalizeTags(tags),
		Archived:  archived,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.seq++
	r.notes[note.ID] = record{note: note, seq: r.seq}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return note.Clone(), nil
}

// GetByID возвращает копию заметки по ID или nil, если заметка не найдена.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.notes[noteID]
	if !ok {
		log.Debug(ctx, "note not found", zap.String("noteID", noteID))
		return nil, nil
	}

	return rec.note.Clone(), nil
}

// List возвращает заметки с опциональным фильтром по archived,
// отсортированные по updated_at по убыванию.
func (r *NoteRepository) List(ctx context.Context, archived *bool) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]record, 0, len(r.notes))
	for _, rec := range r.notes {
		if archived != nil && rec.note.Archived != *archived {
			continue
		}
		records = append(records, rec)
	}

	log.Debug(ctx, "listing notes", zap.Int("count", len(records)))
	return collect(records), nil
}

// Update применяет частичное обновление к заметке.
// Возвращает nil, если заметка не найдена. updated_at обновляется всегда,
// даже если ни одно поле фактически не изменилось.
func (r *NoteRepository) Update(ctx context.Context, noteID string, patch repositories.NotePatch) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.notes[noteID]
	if !ok {
		log.Debug(ctx, "note not found", zap.String("noteID", noteID))
		return nil, nil
	}

	updated := rec.note
	updated.Tags = append([]string(nil), rec.note.Tags...)

	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Tags != nil {
		updated.Tags = entities.NormalizeTags(*patch.Tags)
	}
	if patch.Archived != nil {
		updated.Archived = *patch.Archived
	}
	updated.UpdatedAt = time.Now().UTC()

	rec.note = updated
	r.notes[noteID] = rec

	log.Debug(ctx, "note updated", zap.String("noteID", noteID))
	return updated.Clone(), nil
}

// Delete удаляет заметку по ID и сообщает, существовала ли она.
func (r *NoteRepository) Delete(ctx context.Context, noteID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[noteID]; !ok {
		log.Debug(ctx, "note not found", zap.String("noteID", noteID))
		return false, nil
	}

	delete(r.notes, noteID)

	log.Debug(ctx, "note deleted", zap.String("noteID", noteID))
	return true, nil
}

// SetArchived устанавливает статус архивации заметки.
// Возвращает nil, если заметка не найдена.
func (r *NoteRepository) SetArchived(ctx context.Context, noteID string, archived bool) (*entities.Note, error) {
	return r.Update(ctx, noteID, repositories.NotePatch{Archived: &archived})
}

// Search возвращает заметки, удовлетворяющие всем переданным фильтрам:
// подстрока query в title или content (без учета регистра), наличие тега
// (без учета регистра) и статус archived. Пустые после обрезки пробелов
// query и tag считаются отсутствующими.
func (r *NoteRepository) Search(ctx context.Context, query, tag string, archived *bool) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Search"))

	queryNorm := strings.ToLower(strings.TrimSpace(query))
	tagNorm := strings.TrimSpace(tag)

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]record, 0, len(r.notes))
	for _, rec := range r.notes {
		if !matches(&rec.note, queryNorm, tagNorm, archived) {
			continue
		}
		records = append(records, rec)
	}

	log.Debug(ctx, "search completed", zap.Int("count", len(records)))
	return collect(records), nil
}

// matches проверяет заметку против нормализованных фильтров.
func matches(note *entities.Note, queryNorm, tagNorm string, archived *bool) bool {
	if archived != nil && note.Archived != *archived {
		return false
	}
	if tagNorm != "" && !note.HasTag(tagNorm) {
		return false
	}
	if queryNorm != "" {
		return strings.Contains(strings.ToLower(note.Title), queryNorm) ||
			strings.Contains(strings.ToLower(note.Content), queryNorm)
	}
	return true
}

// collect сортирует записи по updated_at по убыванию (ничьи - по порядку
// вставки) и возвращает независимые копии заметок.
func collect(records []record) []*entities.Note {
	sort.Slice(records, func(i, j int) bool {
		if records[i].note.UpdatedAt.Equal(records[j].note.UpdatedAt) {
			return records[i].seq < records[j].seq
		}
		return records[i].note.UpdatedAt.After(records[j].note.UpdatedAt)
	})

	notes := make([]*entities.Note, 0, len(records))
	for i := range records {
		notes = append(notes, records[i].note.Clone())
	}
	return notes
}
