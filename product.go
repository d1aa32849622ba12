package stockbook

import "fmt"

// ProductType classifies a product in the catalog.
type ProductType string

// Product types supported by the catalog.
const (
	TShirt    ProductType = "T-shirt"
	Hoodie    ProductType = "Hoodie"
	Tracksuit ProductType = "Tracksuit"
	Pants     ProductType = "Pants"
	Hat       ProductType = "Hat"
	Other     ProductType = "Other"
)

// ProductTypes lists all valid product types in display order.
var ProductTypes = []ProductType{TShirt, Hoodie, Tracksuit, Pants, Hat, Other}

// ParseProductType parses a string into a ProductType.
func ParseProductType(s string) (ProductType, error) {
	for _, t := range ProductTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown product type: %q", s)
}

// Gender is the gender a product is cut for.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Unisex Gender = "Unisex"
)

// Genders lists all valid genders.
var Genders = []Gender{Male, Female, Unisex}

// ParseGender parses a string into a Gender.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders {
		if s == string(g) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown gender: %q", s)
}

// Size is a garment size.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Sizes lists all valid sizes, smallest first.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// ParseSize parses a string into a Size.
func ParseSize(s string) (Size, error) {
	for _, z := range Sizes {
		if s == string(z) {
			return z, nil
		}
	}
	return "", fmt.Errorf("unknown size: %q", s)
}

// Product is a single inventory row.
//
// A product is addressed by (Name, Size, Gender) when matching a sale against
// stock. The inventory itself does not enforce uniqueness on that triple.
type Product struct {
	Name             string
	Type             ProductType
	Gender           Gender
	Size             Size
	Color            string
	SKU              string // optional
	Quantity         int
	RestockThreshold int
	CostPrice        Money
	SellingPrice     Money
}

// Validate checks that all required fields are present and all numeric fields
// are non-negative. It returns a *ValidationError naming every offending field.
func (p Product) Validate() error {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if _, err := ParseProductType(string(p.Type)); err != nil {
		missing = append(missing, "type")
	}
	if _, err := ParseGender(string(p.Gender)); err != nil {
		missing = append(missing, "gender")
	}
	if _, err := ParseSize(string(p.Size)); err != nil {
		missing = append(missing, "size")
	}
	if p.Color == "" {
		missing = append(missing, "color")
	}
	if p.Quantity < 0 {
		missing = append(missing, "quantity")
	}
	if p.RestockThreshold < 0 {
		missing = append(missing, "restock-threshold")
	}
	if p.CostPrice.IsNegative() {
		missing = append(missing, "cost-price")
	}
	if p.SellingPrice.IsNegative() {
		missing = append(missing, "selling-price")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// StockValue returns the value of the stock at cost price.
func (p Product) StockValue() Money { return p.CostPrice.MulInt(p.Quantity) }

// IsLowStock reports whether the product is at or below its restock threshold.
func (p Product) IsLowStock() bool { return p.Quantity <= p.RestockThreshold }
