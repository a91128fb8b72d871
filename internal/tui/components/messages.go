package components

import "github.com/Veraticus/unibudget/internal/model"

// ExpenseSubmittedMsg carries the raw input of the add-expense form.
type ExpenseSubmittedMsg struct {
	Amount   string
	Category model.Category
}

// NoteSubmittedMsg carries the raw input of the add-note form.
type NoteSubmittedMsg struct {
	Title   string
	Content string
}

// FormCanceledMsg is sent when a form is dismissed without submitting.
type FormCanceledMsg struct{}
