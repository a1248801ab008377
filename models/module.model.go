package models

import (
	"encoding/json"

	"coursehub/models/content"

	"gorm.io/datatypes"
)

// Module is a single content block of a course. Content is an open attribute
// map; it is decoded into its variant whenever the module is serialized.
type Module struct {
	Base
	CourseID uint           `gorm:"index;not null" json:"courseId"`
	Course   *Course        `gorm:"foreignKey:CourseID" json:"-"`
	Title    string         `gorm:"not null" json:"title"`
	Order    int            `gorm:"column:sort_order;default:0;not null" json:"order"`
	Content  datatypes.JSON `json:"-"`
	Duration *int           `json:"duration"` // minutes
}

// Body decodes the stored content, normalizing unknown kinds to lesson.
func (m *Module) Body() content.Body {
	return content.Decode(m.Content)
}

func (m Module) MarshalJSON() ([]byte, error) {
	type module Module
	return json.Marshal(struct {
		module
		Content content.Envelope `json:"content"`
	}{
		module:  module(m),
		Content: content.Envelope{Body: m.Body()},
	})
}

// ModuleOrder is the strict total order used for rendering and counting.
const ModuleOrder = "sort_order ASC, id ASC"

// ModuleCompletion marks a module as done for a user; presence is completion.
type ModuleCompletion struct {
	Base
	UserID   uint `gorm:"uniqueIndex:idx_completion_user_module;not null" json:"userId"`
	ModuleID uint `gorm:"uniqueIndex:idx_completion_user_module;index;not null" json:"moduleId"`
}
