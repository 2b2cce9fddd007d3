package domain

// Credential is a registry entry: the bcrypt hash of the actor's secret
// plus the identity issued when that secret matches.
type Credential struct {
	SecretHash string
	Actor      Actor
}
