package stockbook

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// tee is the canonical test product: 10 in stock, bought at 5, sold at 15.
func tee() Product {
	return Product{
		Name:             "Tee",
		Type:             TShirt,
		Gender:           Male,
		Size:             SizeM,
		Color:            "White",
		SKU:              "TEE-M-W",
		Quantity:         10,
		RestockThreshold: 2,
		CostPrice:        USD(5),
		SellingPrice:     USD(15),
	}
}

// stockedBooks returns books holding only the tee product.
func stockedBooks() *Books {
	b := NewBooks()
	if err := b.Inventory.Add(tee()); err != nil {
		panic(err)
	}
	return b
}
