package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrBlankTemplateTitle  = errors.New("template title is blank")
	ErrBlankFieldKey       = errors.New("template field key is blank")
	ErrDuplicateFieldKey   = errors.New("template field key is duplicated")
	ErrUndecodableTemplate = errors.New("stored template cannot be decoded")
	ErrUndecodablePayload  = errors.New("stored item payload cannot be decoded")
	ErrEmptyID             = errors.New("identifier is empty")
	ErrEmptyCollectionID   = errors.New("item collection id is empty")
)
