package storage

// SaveInput holds the parameters for Save
type SaveInput struct {
	Key  string
	Blob []byte
}

// LoadInput holds the parameters for Load
type LoadInput struct {
	Key string
}

// LoadOutput holds the result of Load. Found is false when the key does not
// exist; Blob is nil in that case.
type LoadOutput struct {
	Blob  []byte
	Found bool
}
