package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
)

// AssemblyRecord is the table row of a saved assembly
type AssemblyRecord struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name                string         `gorm:"column:name;not null;uniqueIndex"`
	Layers              datatypes.JSON `gorm:"column:layers;not null"`
	Rsi                 float64        `gorm:"column:rsi;not null"`
	Rse                 float64        `gorm:"column:rse;not null"`
	InteriorTemperature float64        `gorm:"column:interior_temperature"`
	ExteriorTemperature float64        `gorm:"column:exterior_temperature"`
	InteriorHumidity    float64        `gorm:"column:interior_humidity"`
	ExteriorHumidity    float64        `gorm:"column:exterior_humidity"`
	SavedAt             time.Time      `gorm:"column:saved_at;not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName implements gorm's tabler
func (AssemblyRecord) TableName() string {
	return "wall_assemblies"
}

// AssemblyStore implements AssemblyRepository on gorm
type AssemblyStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAssemblyStore creates a store on an opened database
func NewAssemblyStore(db *gorm.DB, logger *zap.Logger) *AssemblyStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssemblyStore{db: db, logger: logger.With(zap.String("component", "assembly_store"))}
}

// Verify interface compliance
var _ repositories.AssemblyRepository = (*AssemblyStore)(nil)

// SaveAssembly inserts the assembly or replaces the row with the same name
func (s *AssemblyStore) SaveAssembly(ctx context.Context, assembly *entities.SavedAssembly) error {
	record, err := toRecord(assembly)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"layers",
			"rsi",
			"rse",
			"interior_temperature",
			"exterior_temperature",
			"interior_humidity",
			"exterior_humidity",
			"saved_at",
			"updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to save assembly %s: %w", assembly.Name, err)
	}

	s.logger.Debug("assembly saved", zap.String("name", assembly.Name), zap.Int("layers", len(assembly.Layers)))
	return nil
}

// GetAssembly loads the named assembly
func (s *AssemblyStore) GetAssembly(ctx context.Context, name string) (*entities.SavedAssembly, error) {
	var record AssemblyRecord
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", entities.ErrAssemblyNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assembly %s: %w", name, err)
	}
	return fromRecord(&record)
}

// GetAllAssemblies lists every saved assembly ordered by name
func (s *AssemblyStore) GetAllAssemblies(ctx context.Context) ([]*entities.SavedAssembly, error) {
	var records []AssemblyRecord
	if err := s.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list assemblies: %w", err)
	}

	assemblies := make([]*entities.SavedAssembly, 0, len(records))
	for i := range records {
		assembly, err := fromRecord(&records[i])
		if err != nil {
			return nil, err
		}
		assemblies = append(assemblies, assembly)
	}
	return assemblies, nil
}

// DeleteAssembly removes the named assembly
func (s *AssemblyStore) DeleteAssembly(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).Where("name = ?", name).Delete(&AssemblyRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete assembly %s: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", entities.ErrAssemblyNotFound, name)
	}

	s.logger.Debug("assembly deleted", zap.String("name", name))
	return nil
}

func toRecord(a *entities.SavedAssembly) (*AssemblyRecord, error) {
	layers, err := json.Marshal(a.Layers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode layers of %s: %w", a.Name, err)
	}
	return &AssemblyRecord{
		ID:                  uuid.New(),
		Name:                a.Name,
		Layers:              datatypes.JSON(layers),
		Rsi:                 a.InteriorSurfaceResistance,
		Rse:                 a.ExteriorSurfaceResistance,
		InteriorTemperature: a.Climate.InteriorTemperature,
		ExteriorTemperature: a.Climate.ExteriorTemperature,
		InteriorHumidity:    a.Climate.InteriorHumidity,
		ExteriorHumidity:    a.Climate.ExteriorHumidity,
		SavedAt:             a.SavedAt.UTC(),
	}, nil
}

func fromRecord(r *AssemblyRecord) (*entities.SavedAssembly, error) {
	var layers []entities.SavedLayer
	if err := json.Unmarshal(r.Layers, &layers); err != nil {
		return nil, fmt.Errorf("failed to decode layers of %s: %w", r.Name, err)
	}
	return &entities.SavedAssembly{
		Name:                      r.Name,
		Layers:                    layers,
		InteriorSurfaceResistance: r.Rsi,
		ExteriorSurfaceResistance: r.Rse,
		Climate: entities.Climate{
			InteriorTemperature: r.InteriorTemperature,
			ExteriorTemperature: r.ExteriorTemperature,
			InteriorHumidity:    r.InteriorHumidity,
			ExteriorHumidity:    r.ExteriorHumidity,
		},
		SavedAt: r.SavedAt,
	}, nil
}
