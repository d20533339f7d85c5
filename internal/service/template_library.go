package service

import (
	"fmt"

	"github.com/MKhiriev/anything-list/models"
)

func libraryField(id, key, title string, kind models.FieldKind, required bool) models.TemplateField {
	return models.TemplateField{ID: id, Key: key, Title: title, Kind: kind, IsRequired: required}
}

// TemplateLibrary returns the built-in templates offered when creating a
// list. Each call returns a fresh copy.
func TemplateLibrary() []models.TemplateDocument {
	return []models.TemplateDocument{
		{
			Version:  models.DefaultDocumentVersion,
			Title:    "WWDC Watch Log",
			Subtitle: "Track session watch history",
			Symbol:   "play.rectangle.on.rectangle",
			Fields: []models.TemplateField{
				libraryField("session_title", "sessionTitle", "Session Title", models.FieldKindText, true),
				libraryField("session_url", "url", "URL", models.FieldKindURL, true),
				libraryField("watched_at", "watchedAt", "Watched At", models.FieldKindDateTime, true),
			},
		},
		{
			Version:  models.DefaultDocumentVersion,
			Title:    "Habit Tracker",
			Subtitle: "Keep habits moving",
			Symbol:   "checkmark.circle",
			Fields: []models.TemplateField{
				libraryField("habit_name", "name", "Habit", models.FieldKindText, true),
				libraryField("last_done", "lastExecutedAt", "Last Executed", models.FieldKindDateTime, true),
				libraryField("done_today", "doneToday", "Done Today", models.FieldKindToggle, false),
			},
		},
		{
			Version:  models.DefaultDocumentVersion,
			Title:    "Anime List",
			Subtitle: "Track what to watch",
			Symbol:   "tv",
			Fields: []models.TemplateField{
				libraryField("anime_title", "title", "Title", models.FieldKindText, true),
				libraryField("episodes", "episodes", "Episodes", models.FieldKindNumber, true),
				libraryField("status", "status", "Status", models.FieldKindText, false),
			},
		},
		{
			Version:  models.DefaultDocumentVersion,
			Title:    "Book List",
			Subtitle: "Books to read",
			Symbol:   "books.vertical",
			Fields: []models.TemplateField{
				libraryField("book_title", "title", "Title", models.FieldKindText, true),
				libraryField("author", "author", "Author", models.FieldKindText, true),
				libraryField("read", "isRead", "Finished", models.FieldKindToggle, false),
			},
		},
		{
			Version:  models.DefaultDocumentVersion,
			Title:    "Game Backlog",
			Subtitle: "What to play next",
			Symbol:   "gamecontroller",
			Fields: []models.TemplateField{
				libraryField("game_title", "title", "Title", models.FieldKindText, true),
				libraryField("platform", "platform", "Platform", models.FieldKindText, false),
				libraryField("status", "status", "Status", models.FieldKindText, true),
			},
		},
		{
			Version:  models.DefaultDocumentVersion,
			Title:    "Subscription Tracker",
			Subtitle: "Video/creator subscriptions",
			Symbol:   "bell.badge",
			Fields: []models.TemplateField{
				libraryField("channel", "channel", "Channel", models.FieldKindText, true),
				libraryField("url", "url", "URL", models.FieldKindURL, false),
				libraryField("started", "startedAt", "Started", models.FieldKindDate, true),
			},
		},
	}
}

// LibraryTemplate returns the built-in template at index.
func LibraryTemplate(index int) (models.TemplateDocument, error) {
	library := TemplateLibrary()
	if index < 0 || index >= len(library) {
		return models.TemplateDocument{}, fmt.Errorf("%w: index %d", ErrTemplateNotFound, index)
	}
	return library[index], nil
}
