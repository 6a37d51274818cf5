// Package storage keeps known-answer test vectors in a JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/andrei-cloud/cryptolab/pkg/utils"
)

const (
	// MD5 vectors hold text input and a lowercase hex digest.
	MD5 Algorithm = "MD5"
	// SHA1 vectors hold text input and a lowercase hex digest.
	SHA1 Algorithm = "SHA-1"
	// DESBlock vectors hold a hex key, a hex plaintext block and the hex
	// ciphertext block.
	DESBlock Algorithm = "DES-ECB"
	// DESText vectors hold a text key and text input; the expected value is
	// the 0x-literal ciphertext.
	DESText Algorithm = "DES"
)

// ErrVectorNotFound is returned when deleting an unknown vector.
var ErrVectorNotFound = errors.New("vector not found")

// Algorithm names the primitive a vector exercises.
type Algorithm string

// Vector is one known-answer test record.
type Vector struct {
	Name      string    `json:"name"`
	Algorithm Algorithm `json:"algorithm"`
	Input     string    `json:"input"`
	Key       string    `json:"key,omitempty"`
	Expected  string    `json:"expected"`
	CreatedAt time.Time `json:"created_at"`
}

// VectorStore manages vector storage.
type VectorStore struct {
	mu       sync.RWMutex
	vectors  map[string]Vector
	filePath string
}

// NewVectorStore opens the store at storePath, creating its directory when
// needed. A missing file yields an empty store.
func NewVectorStore(storePath string) (*VectorStore, error) {
	if err := os.MkdirAll(filepath.Dir(storePath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	vs := &VectorStore{
		vectors:  make(map[string]Vector),
		filePath: storePath,
	}

	if err := vs.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load vectors: %w", err)
	}

	return vs, nil
}

// Store adds or updates a vector. The store is unchanged when the file
// cannot be written.
func (vs *VectorStore) Store(v Vector) error {
	if err := validateVector(v); err != nil {
		return err
	}

	vs.mu.Lock()
	defer vs.mu.Unlock()

	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}

	next := maps.Clone(vs.vectors)
	next[v.Name] = v

	return vs.commit(next)
}

// Get retrieves a vector by name.
func (vs *VectorStore) Get(name string) (Vector, bool) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	v, exists := vs.vectors[name]

	return v, exists
}

// List returns all stored vectors ordered by name.
func (vs *VectorStore) List() []Vector {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	out := make([]Vector, 0, len(vs.vectors))
	for _, v := range vs.vectors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Delete removes a vector.
func (vs *VectorStore) Delete(name string) error {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if _, exists := vs.vectors[name]; !exists {
		return fmt.Errorf("%w: %s", ErrVectorNotFound, name)
	}

	next := maps.Clone(vs.vectors)
	delete(next, name)

	return vs.commit(next)
}

// Seed stores every vector from vectors that is not present yet and reports how
// many were added. Nothing is stored if any vector is invalid or the file
// cannot be written.
func (vs *VectorStore) Seed(vectors []Vector) (int, error) {
	for _, v := range vectors {
		if err := validateVector(v); err != nil {
			return 0, err
		}
	}

	vs.mu.Lock()
	defer vs.mu.Unlock()

	next := maps.Clone(vs.vectors)
	added := 0
	for _, v := range vectors {
		if _, exists := next[v.Name]; exists {
			continue
		}
		if v.CreatedAt.IsZero() {
			v.CreatedAt = time.Now()
		}
		next[v.Name] = v
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err := vs.commit(next); err != nil {
		return 0, err
	}

	return added, nil
}

func validateVector(v Vector) error {
	if err := utils.ValidateVectorName(v.Name); err != nil {
		return err
	}
	if v.Algorithm == "" {
		return fmt.Errorf("vector %s: algorithm cannot be empty", v.Name)
	}

	return nil
}

// commit writes next to the storage file and makes it the current set.
// Callers hold the write lock.
func (vs *VectorStore) commit(next map[string]Vector) error {
	if err := save(vs.filePath, next); err != nil {
		return err
	}
	vs.vectors = next

	return nil
}

// load reads vectors from the storage file.
func (vs *VectorStore) load() error {
	data, err := os.ReadFile(vs.filePath)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &vs.vectors); err != nil {
		return err
	}
	if vs.vectors == nil { // File held a JSON null.
		vs.vectors = make(map[string]Vector)
	}

	return nil
}

// save writes vectors to the storage file.
func save(path string, vectors map[string]Vector) error {
	data, err := json.MarshalIndent(vectors, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vectors: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write vectors: %w", err)
	}

	return nil
}
