// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"quizdeck/ent/customquiz"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// CustomQuiz is the model entity for the CustomQuiz schema.
type CustomQuiz struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Generated UUID; also the key of any progress snapshot
	QuizID string `json:"quiz_id,omitempty"`
	// Display name, from the file's quiz title
	Name string `json:"name,omitempty"`
	// The imported questions
	Data map[string]interface{} `json:"data,omitempty"`
	// When the set was imported
	UploadedAt   time.Time `json:"uploaded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CustomQuiz) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case customquiz.FieldData:
			values[i] = new([]byte)
		case customquiz.FieldID:
			values[i] = new(sql.NullInt64)
		case customquiz.FieldQuizID, customquiz.FieldName:
			values[i] = new(sql.NullString)
		case customquiz.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CustomQuiz fields.
func (_m *CustomQuiz) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case customquiz.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case customquiz.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case customquiz.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case customquiz.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case customquiz.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CustomQuiz.
// This includes values selected through modifiers, order, etc.
func (_m *CustomQuiz) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CustomQuiz.
// Note that you need to call CustomQuiz.Unwrap() before calling this method if this CustomQuiz
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CustomQuiz) Update() *CustomQuizUpdateOne {
	return NewCustomQuizClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CustomQuiz entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CustomQuiz) Unwrap() *CustomQuiz {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CustomQuiz is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CustomQuiz) String() string {
	var builder strings.Builder
	builder.WriteString("CustomQuiz(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CustomQuizs is a parsable slice of CustomQuiz.
type CustomQuizs []*CustomQuiz
