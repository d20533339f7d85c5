package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldTitle targets the template title.
	FieldTitle = "title"

	// FieldFieldKeys targets the keys of the template fields.
	FieldFieldKeys = "field_keys"

	// FieldID targets the identifier of a collection or item.
	FieldID = "id"

	// FieldTemplate targets the stored template bytes of a collection.
	FieldTemplate = "template"

	// FieldPayload targets the stored payload bytes of an item.
	FieldPayload = "payload"

	// FieldCollectionID targets the owning collection reference of an item.
	FieldCollectionID = "collection_id"
)

// ListDataValidator validates templates, collections and items.
type ListDataValidator struct {
}

// NewListDataValidator constructs a ListDataValidator and returns it as the
// Validator interface.
func NewListDataValidator() Validator {
	return &ListDataValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// of models.TemplateDocument, models.Collection and models.Item are
// accepted; anything else yields ErrUnsupportedType.
func (v *ListDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TemplateDocument:
		return v.validateTemplate(ctx, value, fields...)
	case *models.TemplateDocument:
		return v.validateTemplate(ctx, *value, fields...)

	case models.Collection:
		return v.validateCollection(ctx, value, fields...)
	case *models.Collection:
		return v.validateCollection(ctx, *value, fields...)

	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTemplate checks the title and field keys.
// Default validated fields: Title, FieldKeys.
func (v *ListDataValidator) validateTemplate(ctx context.Context, doc models.TemplateDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldFieldKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(doc.Title) == "" {
				return ErrBlankTemplateTitle
			}
		case FieldFieldKeys:
			seen := make(map[string]struct{}, len(doc.Fields))
			for i, field := range doc.Fields {
				if strings.TrimSpace(field.Key) == "" {
					return fmt.Errorf("%w: field at index %d", ErrBlankFieldKey, i)
				}
				if _, ok := seen[field.Key]; ok {
					return fmt.Errorf("%w: %q", ErrDuplicateFieldKey, field.Key)
				}
				seen[field.Key] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCollection checks a stored collection.
// Default validated fields: ID, Template.
func (v *ListDataValidator) validateCollection(ctx context.Context, collection models.Collection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTemplate}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(collection.ID) == "" {
				return ErrEmptyID
			}
		case FieldTemplate:
			doc, err := codec.Decode[models.TemplateDocument](collection.TemplateData)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUndecodableTemplate, err)
			}
			if err = v.validateTemplate(ctx, doc); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItem checks a stored item.
// Default validated fields: ID, CollectionID, Payload.
func (v *ListDataValidator) validateItem(ctx context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldCollectionID, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(item.ID) == "" {
				return ErrEmptyID
			}
		case FieldCollectionID:
			if strings.TrimSpace(item.CollectionID) == "" {
				return ErrEmptyCollectionID
			}
		case FieldPayload:
			if _, err := codec.DecodePayload(item.PayloadData); err != nil {
				return fmt.Errorf("%w: %w", ErrUndecodablePayload, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
