package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// DateLayout is the canonical textual form for plan dates. Dates in
	// this form sort lexicographically in chronological order.
	DateLayout = "2006-01-02"

	// Database table names
	TableFoodItems  = "food_items"
	TableOrderPlans = "order_plans"
)
