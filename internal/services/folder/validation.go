package folderservice

import (
	"doccatalog/internal/models"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxFolderNameLength        = 255
	maxFolderDescriptionLength = 2000
)

var folderNameRule = validation.Match(regexp.MustCompile(`^[^/]+$`)).Error("folder name cannot contain slashes")

func validateFolder(f *models.Folder) error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, maxFolderNameLength), folderNameRule),
		validation.Field(&f.Description, validation.Length(0, maxFolderDescriptionLength)),
	)
	if err != nil {
		return &models.ValidationError{Message: err.Error()}
	}
	return nil
}

func validatePatch(p *models.FolderPatch) error {
	if p.IsEmpty() {
		return models.NewValidationError("at least one field must be provided")
	}

	rules := make([]*validation.FieldRules, 0, 2)
	if p.Name != nil {
		rules = append(rules, validation.Field(&p.Name, validation.Required, validation.Length(1, maxFolderNameLength), folderNameRule))
	}
	if p.Description != nil {
		rules = append(rules, validation.Field(&p.Description, validation.Length(0, maxFolderDescriptionLength)))
	}

	if err := validation.ValidateStruct(p, rules...); err != nil {
		return &models.ValidationError{Message: err.Error()}
	}
	return nil
}
