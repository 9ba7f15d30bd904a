package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONFile est une collection stockée comme un tableau JSON dans un seul fichier.
// Chaque appel relit ou réécrit le fichier entier, le dernier écrivain gagne.
type JSONFile[T any] struct {
	path string
	mu   sync.Mutex
}

// OpenJSONFile crée le dossier et initialise le fichier avec "[]" s'il n'existe pas
func OpenJSONFile[T any](path string) (*JSONFile[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("création dossier %s: %w", filepath.Dir(path), err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("initialisation %s: %w", path, err)
		}
	} else if err != nil {
		return nil, err
	}
	return &JSONFile[T]{path: path}, nil
}

func (f *JSONFile[T]) Path() string {
	return f.path
}

func (f *JSONFile[T]) Load() ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *JSONFile[T]) Save(items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(items)
}

// Update charge la collection, applique fn et réécrit le résultat.
// Si fn retourne une erreur, rien n'est écrit.
func (f *JSONFile[T]) Update(fn func(items []T) ([]T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return f.save(items)
}

func (f *JSONFile[T]) load() ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("lecture %s: %w", f.path, err)
	}

	var items []T
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("décodage %s: %w", f.path, err)
	}
	return items, nil
}

func (f *JSONFile[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encodage %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("écriture %s: %w", f.path, err)
	}
	return nil
}
