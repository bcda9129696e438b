package types

// Provider yields raw extended-M3U playlist text from some source. Fetch is
// issued once per catalog refresh; a failed fetch is non-fatal upstream and
// results in an empty catalog.
type Provider interface {
	Name() string
	Fetch() (string, error)
}
