package service

// AvatarResolver maps an email address to a public avatar URL.
// It is a pure function of the email: no network access is involved.
type AvatarResolver interface {
	URL(email string) string
}
