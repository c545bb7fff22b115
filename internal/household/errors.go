package household

import "errors"

// Sentinel errors returned by store operations. The API layer maps each to
// its HTTP status and snake_case error code with errors.Is.
var (
	ErrRitualExists   = errors.New("ritual already exists")
	ErrRitualNotFound = errors.New("ritual not found")

	ErrRunExists   = errors.New("run already exists")
	ErrRunNotFound = errors.New("run not found")

	ErrAttentionNotFound = errors.New("attention item not found")
	ErrAttentionResolved = errors.New("attention item already resolved")
	ErrForbiddenRole     = errors.New("role may not resolve this attention item")

	ErrRoleRequired = errors.New("household role required")
	ErrInvalidRole  = errors.New("invalid household role")

	ErrNameRequired         = errors.New("ritual name required")
	ErrUnsupportedInputType = errors.New("unsupported input type")
	ErrInputValueRequired   = errors.New("input value required")

	ErrInvalidAttentionType = errors.New("invalid attention type")
	ErrMessageRequired      = errors.New("attention message required")

	ErrInvalidTrigger          = errors.New("invalid trigger type")
	ErrCapabilityRequired      = errors.New("capability id required")
	ErrPayloadTemplateRequired = errors.New("payload template must be an object")
)
