package catalog

import (
	"github.com/mcoot/shopsim/internal/dependencies/random"
	"github.com/mcoot/shopsim/internal/model"
)

// Generated ratings fall in this range
const (
	MinGeneratedRating = 1.0
	MaxGeneratedRating = 5.0
)

// Category is a kind of product with the price range it sells for
type Category struct {
	Name     string
	MinPrice float64
	MaxPrice float64
}

// DefaultBrands are the brands generated products are drawn from
var DefaultBrands = []string{"Samsung", "LG", "Bosch", "Philips", "Panasonic"}

// DefaultCategories are the product kinds generated products are drawn from
var DefaultCategories = []Category{
	{Name: "Refrigerator", MinPrice: 100000, MaxPrice: 200000},
	{Name: "Washing machine", MinPrice: 40000, MaxPrice: 70000},
	{Name: "Vacuum cleaner", MinPrice: 5000, MaxPrice: 15000},
	{Name: "Multicooker", MinPrice: 3000, MaxPrice: 8000},
	{Name: "Toaster", MinPrice: 1500, MaxPrice: 3000},
	{Name: "Electric kettle", MinPrice: 1000, MaxPrice: 5000},
}

// Generator produces random products. Each product gets the next id from
// the generator's own allocator.
type Generator struct {
	random     random.Random
	ids        *model.IDAllocator
	brands     []string
	categories []Category
}

// NewGenerator creates a Generator over the default brand and category tables
func NewGenerator(random random.Random, ids *model.IDAllocator) *Generator {
	return &Generator{
		random:     random,
		ids:        ids,
		brands:     DefaultBrands,
		categories: DefaultCategories,
	}
}

// Generate returns a new product with a random brand and category, a rating
// in [MinGeneratedRating, MaxGeneratedRating] and a price within the
// category's range. Rating and price are rounded to 2 decimals.
func (g *Generator) Generate() (*model.Product, error) {
	brand := g.brands[g.random.Intn(len(g.brands))]
	category := g.categories[g.random.Intn(len(g.categories))]
	rating := model.RoundCents(random.Uniform(g.random, MinGeneratedRating, MaxGeneratedRating))
	price := model.RoundCents(random.Uniform(g.random, category.MinPrice, category.MaxPrice))

	return model.NewProduct(model.ProductID(g.ids.Next()), brand, category.Name, rating, price)
}

// Reserve makes sure future ids are greater than id
func (g *Generator) Reserve(id model.ProductID) {
	g.ids.Advance(int64(id))
}
