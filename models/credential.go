package models

// Credential is the derived (hash, salt) pair computed for a password.
// The salt is the keyed-hash key: generated fresh for every hashing
// operation, never reused across users and never derived from the password
// or any user identity.
type Credential struct {
	// Hash is the HMAC-SHA512 digest of the UTF-8 password bytes keyed
	// with Salt.
	Hash []byte

	// Salt is the random key used to compute Hash.
	Salt []byte
}
