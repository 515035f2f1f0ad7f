package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"smartnotes/internal/notes/adapters/http/middleware"
	"smartnotes/internal/notes/app"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(router *fiber.App, notes *app.NoteUseCase) {
	handler := NewHandler(notes)

	// Middleware для всех запросов.
	// CORS намеренно разрешает все источники, методы и заголовки.
	router.Use(cors.New())
	router.Use(middleware.NewRequestIDMiddleware())
	router.Use(middleware.NewLoggerMiddleware())
	router.Use(middleware.NewRecoveryMiddleware())

	// Проверка работоспособности, не зависит от репозитория.
	router.Get("/", handler.HealthCheck)

	// API версии 1.
	apiV1 := router.Group("/api/v1")

	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Post("/", handler.CreateNote)
	notesRoutes.Get("/", handler.ListNotes)
	// Поиск регистрируется раньше маршрута с параметром,
	// иначе "search" разбирался бы как note_id.
	notesRoutes.Get("/search", handler.SearchNotes)
	notesRoutes.Get("/:note_id", handler.GetNote)
	notesRoutes.Put("/:note_id", handler.UpdateNote)
	notesRoutes.Patch("/:note_id/archive", handler.ArchiveNote)
	notesRoutes.Patch("/:note_id", handler.UpdateNote)
	notesRoutes.Delete("/:note_id", handler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	router.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
