package csv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

const header = "name,category,lambda,density,specific_heat,mu,price_per_m3,manufacturer,air_gap,fixed_resistance\n"

func TestLoader_ReadMaterials(t *testing.T) {
	data := header +
		"# comment lines are skipped\n" +
		"Solid brick,masonry,0.8,1800,880,5,2500,Standard,false,\n" +
		"Air gap 25-50 mm,airgap,0.024,1.2,1005,1,0,Standard,true,0.16\n"

	materials, err := NewLoader().ReadMaterials(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, materials, 2)

	brick := materials[0]
	assert.Equal(t, "Solid brick", brick.Name)
	assert.Equal(t, entities.CategoryMasonry, brick.Category)
	assert.Equal(t, 0.8, brick.ThermalConductivity)
	assert.True(t, brick.PricePerM3.Equal(decimal.NewFromInt(2500)))
	assert.False(t, brick.AirGap)

	gap := materials[1]
	assert.True(t, gap.AirGap)
	assert.Equal(t, entities.CategoryAirGap, gap.Category)
	assert.Equal(t, 0.16, gap.FixedResistance)
}

func TestLoader_ReadMaterials_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"header only", header, nil},
		{"wrong header", "name,lambda\nA,1\n", nil},
		{"bad lambda", header + "A,masonry,abc,1800,880,5,2500,,false,\n", nil},
		{"zero lambda", header + "A,masonry,0,1800,880,5,2500,,false,\n", entities.ErrInvalidConductivity},
		{"air gap with zero lambda", header + "Custom gap,airgap,0,1.2,1005,1,0,Me,true,0.17\n", entities.ErrInvalidConductivity},
		{"bad category", header + "A,plastic,0.5,1800,880,5,2500,,false,\n", nil},
		{"bad price", header + "A,masonry,0.5,1800,880,5,cheap,,false,\n", nil},
		{"duplicate", header + "A,masonry,0.5,1800,880,5,1,,false,\nA,masonry,0.5,1800,880,5,1,,false,\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().ReadMaterials(strings.NewReader(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestLoader_WriteMaterials_ReadBack(t *testing.T) {
	eps, err := entities.NewMaterial("EPS, grey", entities.CategoryInsulation, 0.031, 15, 1270, 40, decimal.RequireFromString("950.50"))
	require.NoError(t, err)
	gap, err := entities.NewAirGap("Air gap 10-15 mm", 0.13)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewLoader().WriteMaterials(&buf, []*entities.Material{eps, gap}))

	materials, err := NewLoader().ReadMaterials(&buf)
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "EPS, grey", materials[0].Name)
	assert.True(t, materials[0].PricePerM3.Equal(eps.PricePerM3))
	assert.True(t, materials[1].AirGap)
	assert.Equal(t, 0.13, materials[1].FixedResistance)
	assert.True(t, materials[1].PricePerM3.IsZero())
}

func TestLoader_LoadMaterials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"Spruce,wood,0.13,450,2500,40,9000,,false,\n"), 0o644))

	materials, err := NewLoader().LoadMaterials(path)
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, entities.CategoryWood, materials[0].Category)

	_, err = NewLoader().LoadMaterials(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
