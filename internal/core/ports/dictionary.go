// Package ports defines the core interfaces for the application.
package ports

// DictionaryLoader defines the interface for reading a word list.
//
//go:generate go run go.uber.org/mock/mockgen -source=dictionary.go -destination=mocks/mock_dictionary.go -package=mocks
type DictionaryLoader interface {
	// Load reads the word list at path and returns lowercase words in first-seen order,
	// without duplicates. It returns domain.ErrDictionaryRead if the source cannot be read.
	Load(path string) ([]string, error)
}
