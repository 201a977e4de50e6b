package shell

import (
	"errors"
	"fmt"

	"github.com/aretw0/notes/pkg/core"
)

const (
	msgSaved         = "Note saved successfully."
	msgEdited        = "Note edited successfully."
	msgDeleted       = "Note deleted successfully."
	msgEmpty         = "The note list is empty."
	msgNotFound      = "No note with that number was found."
	msgNoneForDate   = "No notes found for the given date."
	msgInvalidDate   = "Invalid date format. Please use YYYY-MM-DD."
	msgUnknown       = "Unknown command. Please try again."
	msgPromptCommand = "Enter command: "
)

var menuHelp = map[Kind]string{
	KindAdd:    "add a note",
	KindList:   "list all notes",
	KindView:   "view a single note",
	KindEdit:   "edit a note",
	KindDelete: "delete a note",
	KindFilter: "filter notes by date",
	KindExit:   "exit the program",
}

// FormatSummary renders the one-line listing of a note.
func FormatSummary(n core.Note) string {
	return fmt.Sprintf("%d. %s (%s)", n.ID, n.Title, n.Timestamp)
}

// FormatDetail renders every field of a note.
func FormatDetail(n core.Note) string {
	return fmt.Sprintf("Title: %s\nBody: %s\nCreated/modified: %s", n.Title, n.Body, n.Timestamp)
}

// Describe converts an operation error into a message for the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return msgNotFound
	case errors.Is(err, core.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, core.ErrInvalidInput):
		return fmt.Sprintf("Invalid input: %v", err)
	case errors.Is(err, core.ErrCorruptState):
		return fmt.Sprintf("The notes file could not be read, nothing was changed: %v", err)
	case errors.Is(err, core.ErrReadOnly):
		return "The notes file is read-only, nothing was changed."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
