// Package constraints holds type constraints shared by the parsing helpers.
package constraints

// Byteseq is URI text given either as a string or as raw bytes.
type Byteseq interface {
	~string | ~[]byte
}
