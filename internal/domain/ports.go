package domain

// CatalogLoader loads a catalog from path. An empty path selects the
// built-in catalog.
type CatalogLoader interface {
	Load(path string) (*Catalog, error)
}

// RevisionReader resolves the version-control revision of the repository
// containing path.
type RevisionReader interface {
	Revision(path string) (string, error)
}
