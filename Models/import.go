package Models

import (
	"fmt"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
)

// SetupMaterials loads the material catalog from a supplier price list.
// Expected columns: name, unit, unit cost, description. Existing rows are
// matched by name and updated in place so re-running the import is safe.
func SetupMaterials(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}

	rows := f.GetRows("Sheet1")
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		var material Material
		for columnIndex, data := range row {
			switch columnIndex {
			case 0:
				material.Name = data
			case 1:
				material.Unit = data
			case 2:
				cost, err := strconv.ParseFloat(data, 64)
				if err != nil {
					return fmt.Errorf("row %d: bad unit cost %q", i+1, data)
				}
				material.UnitCost = cost
			case 3:
				material.Description = data
			}
		}
		if material.Name == "" {
			continue
		}

		var existing Material
		if err := DB.Where("name = ?", material.Name).First(&existing).Error; err == nil {
			existing.Unit = material.Unit
			existing.UnitCost = material.UnitCost
			existing.Description = material.Description
			if err := DB.Save(&existing).Error; err != nil {
				return err
			}
			continue
		}
		if err := DB.Create(&material).Error; err != nil {
			return err
		}
	}
	return nil
}
