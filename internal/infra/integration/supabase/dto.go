package supabase

// Request body of the storage list endpoint.
type listObjectsRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	SortBy sortBy `json:"sortBy"`
}

type sortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

// ObjectInfo is one entry of a bucket listing. Folders and the
// .emptyFolderPlaceholder marker come back as plain entries too.
type ObjectInfo struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	UpdatedAt string `json:"updated_at"`
}
