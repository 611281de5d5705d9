package authenticator

import "time"

type TokenEngine interface {
	// Generate signs obj into a token which is valid in the given duration.
	Generate(expiration time.Duration, obj any) (string, error)

	// Verify checks the signature and expiration of token, then decodes its payload into obj.
	Verify(token string, obj any) error
}
