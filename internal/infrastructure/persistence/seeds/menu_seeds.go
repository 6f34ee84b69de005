package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"platewise/internal/infrastructure/persistence/models"
)

// menuItem is one entry of a YAML seed menu file.
type menuItem struct {
	Name string  `yaml:"name"`
	Cost float64 `yaml:"cost"`
}

// defaultMenu is the representative catalog installed on first
// initialization when no seed file is configured.
var defaultMenu = []menuItem{
	{Name: "Margherita Pizza", Cost: 12.99},
	{Name: "Caesar Salad", Cost: 8.50},
	{Name: "Spaghetti Bolognese", Cost: 11.25},
	{Name: "Grilled Chicken Wrap", Cost: 9.75},
	{Name: "Tomato Soup", Cost: 5.40},
	{Name: "Cheeseburger", Cost: 10.90},
	{Name: "French Fries", Cost: 3.99},
	{Name: "Garden Smoothie", Cost: 6.20},
	{Name: "Soda", Cost: 2.00},
	{Name: "Espresso", Cost: 2.80},
}

// SeedMenu populates the food catalog with a starter menu. It is idempotent:
// items are matched by name and never duplicated. When seedFile is set it is
// parsed as a YAML list of {name, cost} pairs and replaces the built-in menu.
func SeedMenu(db *gorm.DB, seedFile string) error {
	menu := defaultMenu

	if seedFile != "" {
		data, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", seedFile, err)
		}
		var fileMenu []menuItem
		if err := yaml.Unmarshal(data, &fileMenu); err != nil {
			return fmt.Errorf("failed to parse seed file %s: %w", seedFile, err)
		}
		menu = fileMenu
	}

	for _, item := range menu {
		if item.Name == "" || item.Cost <= 0 {
			return fmt.Errorf("invalid seed menu item %q: name must be set and cost positive", item.Name)
		}
		model := models.FoodItemModel{Name: item.Name, Cost: item.Cost}
		if err := db.FirstOrCreate(&model, models.FoodItemModel{Name: item.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed menu item %q: %w", item.Name, err)
		}
	}

	return nil
}
