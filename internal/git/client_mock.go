package git

import (
	"context"
	"fmt"
)

// MockClient implements ClientInterface for testing
type MockClient struct {
	// Files maps "revision:path" to the content ShowFile should return.
	Files map[string][]byte

	// Track calls for assertions
	ShowFileCallCount int
	RequestedRevs     []string

	// Error simulation
	ShowFileError error
}

// NewMockClient creates a new MockClient with no files registered.
func NewMockClient() *MockClient {
	return &MockClient{
		Files: make(map[string][]byte),
	}
}

// AddFile registers content to be returned for the given revision and path.
func (m *MockClient) AddFile(revision, path string, content []byte) {
	m.Files[revision+":"+path] = content
}

// ShowFile returns mocked content for a revision and path.
func (m *MockClient) ShowFile(_ context.Context, revision, path string) ([]byte, error) {
	m.ShowFileCallCount++
	m.RequestedRevs = append(m.RequestedRevs, revision)

	if m.ShowFileError != nil {
		return nil, m.ShowFileError
	}

	content, ok := m.Files[revision+":"+path]
	if !ok {
		return nil, &RetrievalError{
			Revision: revision,
			Path:     path,
			Output:   fmt.Sprintf("fatal: path '%s' does not exist in '%s'", path, revision),
			Err:      fmt.Errorf("exit status 128"),
		}
	}
	return content, nil
}
