package jwtx

// Signer turns claims into a signed token.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Codec can both mint and check tokens. Workflows depend on this rather than
// on a concrete algorithm so the signing scheme can be swapped in one place.
type Codec interface {
	Signer
	Verifier
}
