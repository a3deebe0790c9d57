package service

// InputValidator checks a request DTO against its declared rules.
// On failure it returns a *domainerrors.ValidationError listing every violation.
type InputValidator interface {
	Validate(input any) error
}
