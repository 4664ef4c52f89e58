package models

type Car struct {
	ID          int64   `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
	Available   bool    `json:"available"`
}

func NewCar(id int64, brand, model string, pricePerDay float64) *Car {
	return &Car{
		ID:          id,
		Brand:       brand,
		Model:       model,
		PricePerDay: pricePerDay,
		Available:   true,
	}
}

// Name returns "Brand Model".
func (c *Car) Name() string {
	return c.Brand + " " + c.Model
}

func (c *Car) Rent() {
	c.Available = false
}

// Price is the flat per-day rate times days. Rounding happens only when displayed.
func (c *Car) Price(days int) float64 {
	return c.PricePerDay * float64(days)
}

// SeedCars is the fixed catalog loaded at startup.
func SeedCars() []*Car {
	return []*Car{
		NewCar(1, "Toyota", "Camry", 45.0),
		NewCar(2, "Honda", "Civic", 40.0),
		NewCar(3, "Ford", "Focus", 42.0),
	}
}
