// Code generated by ent, DO NOT EDIT.

package ent

import (
	"quizdeck/ent/customquiz"
	"quizdeck/ent/historyentry"
	"quizdeck/ent/progress"
	"quizdeck/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customquizFields := schema.CustomQuiz{}.Fields()
	_ = customquizFields
	// customquizDescQuizID is the schema descriptor for quiz_id field.
	customquizDescQuizID := customquizFields[0].Descriptor()
	// customquiz.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	customquiz.QuizIDValidator = customquizDescQuizID.Validators[0].(func(string) error)
	// customquizDescName is the schema descriptor for name field.
	customquizDescName := customquizFields[1].Descriptor()
	// customquiz.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customquiz.NameValidator = customquizDescName.Validators[0].(func(string) error)
	// customquizDescUploadedAt is the schema descriptor for uploaded_at field.
	customquizDescUploadedAt := customquizFields[3].Descriptor()
	// customquiz.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	customquiz.DefaultUploadedAt = customquizDescUploadedAt.Default.(func() time.Time)
	historyentryFields := schema.HistoryEntry{}.Fields()
	_ = historyentryFields
	// historyentryDescTitle is the schema descriptor for title field.
	historyentryDescTitle := historyentryFields[0].Descriptor()
	// historyentry.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	historyentry.TitleValidator = historyentryDescTitle.Validators[0].(func(string) error)
	// historyentryDescTakenAt is the schema descriptor for taken_at field.
	historyentryDescTakenAt := historyentryFields[1].Descriptor()
	// historyentry.DefaultTakenAt holds the default value on creation for the taken_at field.
	historyentry.DefaultTakenAt = historyentryDescTakenAt.Default.(func() time.Time)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescQuizID is the schema descriptor for quiz_id field.
	progressDescQuizID := progressFields[0].Descriptor()
	// progress.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	progress.QuizIDValidator = progressDescQuizID.Validators[0].(func(string) error)
	// progressDescSavedAt is the schema descriptor for saved_at field.
	progressDescSavedAt := progressFields[2].Descriptor()
	// progress.DefaultSavedAt holds the default value on creation for the saved_at field.
	progress.DefaultSavedAt = progressDescSavedAt.Default.(func() time.Time)
}
