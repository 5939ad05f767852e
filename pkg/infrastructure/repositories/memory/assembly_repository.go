package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
)

// AssemblyRepository provides in-memory storage of saved assemblies
type AssemblyRepository struct {
	assemblies map[string]entities.SavedAssembly
	mu         sync.RWMutex
}

// NewAssemblyRepository creates a new in-memory assembly repository
func NewAssemblyRepository() *AssemblyRepository {
	return &AssemblyRepository{
		assemblies: make(map[string]entities.SavedAssembly),
	}
}

// Verify interface compliance
var _ repositories.AssemblyRepository = (*AssemblyRepository)(nil)

// SaveAssembly stores the assembly, replacing any with the same name
func (r *AssemblyRepository) SaveAssembly(ctx context.Context, assembly *entities.SavedAssembly) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *assembly
	stored.Layers = append([]entities.SavedLayer(nil), assembly.Layers...)
	r.assemblies[assembly.Name] = stored
	return nil
}

// GetAssembly returns the named assembly
func (r *AssemblyRepository) GetAssembly(ctx context.Context, name string) (*entities.SavedAssembly, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.assemblies[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrAssemblyNotFound, name)
	}
	stored.Layers = append([]entities.SavedLayer(nil), stored.Layers...)
	return &stored, nil
}

// GetAllAssemblies returns every saved assembly ordered by name
func (r *AssemblyRepository) GetAllAssemblies(ctx context.Context) ([]*entities.SavedAssembly, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assemblies := make([]*entities.SavedAssembly, 0, len(r.assemblies))
	for _, stored := range r.assemblies {
		a := stored
		a.Layers = append([]entities.SavedLayer(nil), stored.Layers...)
		assemblies = append(assemblies, &a)
	}
	sort.Slice(assemblies, func(i, j int) bool { return assemblies[i].Name < assemblies[j].Name })
	return assemblies, nil
}

// DeleteAssembly removes the named assembly
func (r *AssemblyRepository) DeleteAssembly(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assemblies[name]; !exists {
		return fmt.Errorf("%w: %s", entities.ErrAssemblyNotFound, name)
	}
	delete(r.assemblies, name)
	return nil
}
