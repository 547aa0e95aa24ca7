package auth

import "errors"

var (
	// ErrInvalidIdentity indicates that the identity token failed verification
	ErrInvalidIdentity = errors.New("invalid identity token")

	// ErrPassphraseRequired indicates that the stored publisher token is sealed
	// and no passphrase was configured to open it
	ErrPassphraseRequired = errors.New("publisher token is sealed, passphrase required")
)
