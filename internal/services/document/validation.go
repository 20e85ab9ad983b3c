package documentservice

import (
	"doccatalog/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func validatePatch(p *models.DocumentPatch) error {
	if p.IsEmpty() {
		return models.NewValidationError("at least one field must be provided")
	}

	err := validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&p.Description, validation.Length(0, 2000)),
		validation.Field(&p.Category, validation.Length(0, 100)),
		validation.Field(&p.Privacy, validation.NilOrNotEmpty, validation.In(models.PrivacyPublic, models.PrivacyPrivate)),
		validation.Field(&p.Tags, validation.By(validTags)),
	)
	if err != nil {
		return &models.ValidationError{Message: err.Error()}
	}
	return nil
}

func validTags(value interface{}) error {
	tags, ok := value.(*[]string)
	if !ok || tags == nil {
		return nil
	}
	for _, tag := range *tags {
		if err := validation.Validate(tag, validation.Required, validation.Length(1, 50)); err != nil {
			return err
		}
	}
	return nil
}
