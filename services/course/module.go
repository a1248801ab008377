package courseService

import (
	"encoding/json"
	"errors"
	"strings"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/models/content"
	"coursehub/services/access"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ModuleInput struct {
	Title    *string
	Type     content.Kind
	Content  map[string]interface{}
	Order    *int
	Duration *int
}

func encodeContent(attrs map[string]interface{}) (datatypes.JSON, error) {
	if fields := content.Validate(attrs); len(fields) > 0 {
		return nil, apperr.Invalid("Validation failed!", fields)
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return nil, apperr.Invalid("Validation failed!", map[string]string{"content": "Content must be a JSON object!"})
	}
	return datatypes.JSON(raw), nil
}

// AddModule appends a content block to a course the actor manages.
func AddModule(db *gorm.DB, actor *models.User, slug string, in ModuleInput) (*models.Module, error) {
	course, err := FindManaged(db, actor, slug)
	if err != nil {
		return nil, err
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, apperr.Invalid("Validation failed!", map[string]string{"title": "Title is required!"})
	}

	kind := in.Type
	if kind == "" {
		kind = content.KindLesson
	}
	raw, err := encodeContent(content.WithDefaults(kind, in.Content))
	if err != nil {
		return nil, err
	}

	module := models.Module{
		CourseID: course.ID,
		Title:    strings.TrimSpace(*in.Title),
		Content:  raw,
		Duration: in.Duration,
	}
	if in.Order != nil {
		module.Order = *in.Order
	}
	if err := db.Create(&module).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to create module for course %d", course.ID)
	}
	return &module, nil
}

// FindModule loads a module with its course, without access checks.
func FindModule(db *gorm.DB, id uint) (*models.Module, error) {
	var module models.Module
	if err := db.Preload("Course").First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Module not found!")
		}
		return nil, apperr.Wrap(err, "failed to load module %d", id)
	}
	return &module, nil
}

func findManagedModule(db *gorm.DB, actor *models.User, id uint) (*models.Module, error) {
	module, err := FindModule(db, id)
	if err != nil {
		return nil, err
	}
	if !access.CanManage(actor, module.Course) {
		return nil, apperr.Forbidden("You do not have permission to manage this module!")
	}
	return module, nil
}

// GetModule returns a module for editing.
func GetModule(db *gorm.DB, actor *models.User, id uint) (*models.Module, error) {
	return findManagedModule(db, actor, id)
}

// UpdateModule applies a partial change. New content replaces the stored map.
func UpdateModule(db *gorm.DB, actor *models.User, id uint, in ModuleInput) (*models.Module, error) {
	module, err := findManagedModule(db, actor, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Invalid("Validation failed!", map[string]string{"title": "Title is required!"})
		}
		updates["title"] = title
	}
	if in.Content != nil {
		raw, err := encodeContent(in.Content)
		if err != nil {
			return nil, err
		}
		updates["content"] = raw
	}
	if in.Order != nil {
		updates["sort_order"] = *in.Order
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}

	if len(updates) > 0 {
		if err := db.Model(module).Updates(updates).Error; err != nil {
			return nil, apperr.Wrap(err, "failed to update module %d", id)
		}
	}

	var out models.Module
	if err := db.First(&out, id).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to reload module %d", id)
	}
	return &out, nil
}

// DeleteModule removes a module and its completion records. Enrollment
// progress is recomputed lazily on the next completion.
func DeleteModule(db *gorm.DB, actor *models.User, id uint) error {
	module, err := findManagedModule(db, actor, id)
	if err != nil {
		return err
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", module.ID).Delete(&models.ModuleCompletion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Module{}, module.ID).Error
	})
	if err != nil {
		return apperr.Wrap(err, "failed to delete module %d", id)
	}
	return nil
}
