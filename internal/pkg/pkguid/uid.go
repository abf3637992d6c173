package pkguid

// StringID produces unique string IDs.
type StringID interface {
	Generate() string
}

// NumberID produces unique, increasing int64 IDs.
type NumberID interface {
	Generate() int64
}
