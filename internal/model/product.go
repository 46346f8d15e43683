package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Rating bounds, inclusive
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Product is a catalog item. Brand, name and id are fixed at construction;
// price and rating may change but always stay valid.
type Product struct {
	id     ProductID
	brand  string
	name   string
	price  float64
	rating float64
}

// NewProduct validates and builds a Product
func NewProduct(id ProductID, brand, name string, rating, price float64) (*Product, error) {
	if brand == "" {
		return nil, fmt.Errorf("%w: brand must not be empty", ErrInvalidValue)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidValue)
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	return &Product{
		id:     id,
		brand:  brand,
		name:   name,
		price:  price,
		rating: rating,
	}, nil
}

func (p *Product) ID() ProductID   { return p.id }
func (p *Product) Brand() string   { return p.brand }
func (p *Product) Name() string    { return p.name }
func (p *Product) Price() float64  { return p.price }
func (p *Product) Rating() float64 { return p.rating }

// SetPrice replaces the price. Non-positive or non-finite values are rejected.
func (p *Product) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

// SetRating replaces the rating. Values outside [MinRating, MaxRating] are rejected.
func (p *Product) SetRating(rating float64) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	p.rating = rating
	return nil
}

// String renders the product as <id>_<name>
func (p *Product) String() string {
	return fmt.Sprintf("%d_%s", p.id, p.name)
}

type productJSON struct {
	ID     ProductID `json:"id"`
	Brand  string    `json:"brand"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Rating float64   `json:"rating"`
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:     p.id,
		Brand:  p.brand,
		Name:   p.name,
		Price:  p.price,
		Rating: p.rating,
	})
}

// UnmarshalJSON decodes a product, applying the same checks as NewProduct
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewProduct(raw.ID, raw.Brand, raw.Name, raw.Rating, raw.Price)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return fmt.Errorf("%w: price must be a positive number, got %v", ErrInvalidValue, price)
	}
	return nil
}

func validateRating(rating float64) error {
	if !(rating >= MinRating && rating <= MaxRating) {
		return fmt.Errorf("%w: rating must be between %v and %v, got %v", ErrInvalidValue, MinRating, MaxRating, rating)
	}
	return nil
}
