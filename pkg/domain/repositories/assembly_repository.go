package repositories

import (
	"context"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// AssemblyRepository persists named wall assemblies.
// Save replaces any record with the same name.
type AssemblyRepository interface {
	SaveAssembly(ctx context.Context, assembly *entities.SavedAssembly) error
	GetAssembly(ctx context.Context, name string) (*entities.SavedAssembly, error)
	GetAllAssemblies(ctx context.Context) ([]*entities.SavedAssembly, error)
	DeleteAssembly(ctx context.Context, name string) error
}
