// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomQuizsColumns holds the columns for the "custom_quizs" table.
	CustomQuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quiz_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// CustomQuizsTable holds the schema information for the "custom_quizs" table.
	CustomQuizsTable = &schema.Table{
		Name:       "custom_quizs",
		Columns:    CustomQuizsColumns,
		PrimaryKey: []*schema.Column{CustomQuizsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customquiz_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{CustomQuizsColumns[4]},
			},
		},
	}
	// HistoryEntriesColumns holds the columns for the "history_entries" table.
	HistoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
	}
	// HistoryEntriesTable holds the schema information for the "history_entries" table.
	HistoryEntriesTable = &schema.Table{
		Name:       "history_entries",
		Columns:    HistoryEntriesColumns,
		PrimaryKey: []*schema.Column{HistoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyentry_taken_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[2]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quiz_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomQuizsTable,
		HistoryEntriesTable,
		ProgressesTable,
	}
)

func init() {
}
