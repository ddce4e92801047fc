package service

// Anonymizer derives a stable, non-reversible identifier from a network origin.
type Anonymizer interface {
	AnonymousID(origin string) string
}
