package domain

// CartLine is one product-and-quantity entry in the client-side cart.
// Quantity is always >= 1; a line whose quantity would drop to zero or
// below is removed, never stored. ProductID is unique across the
// collection; adding the same product again merges into the existing line.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice Money  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal returns the exact line total.
func (l CartLine) Subtotal() Money {
	return l.UnitPrice.MulQuantity(l.Quantity)
}

// MergeLine adds a product into a line collection, merging by product ID.
// Insertion order of first occurrence is preserved; it carries no business
// meaning but keeps displays stable.
func MergeLine(lines []CartLine, productID, name string, unitPrice Money) []CartLine {
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			return lines
		}
	}
	return append(lines, CartLine{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// RemoveLine deletes the line for a product ID. Removing an absent product
// is a no-op.
func RemoveLine(lines []CartLine, productID string) []CartLine {
	for i := range lines {
		if lines[i].ProductID == productID {
			return append(lines[:i], lines[i+1:]...)
		}
	}
	return lines
}

// SetLineQuantity overwrites the quantity of an existing line. A quantity
// of zero or below removes the line; an absent product ID is a no-op.
func SetLineQuantity(lines []CartLine, productID string, quantity int) []CartLine {
	if quantity <= 0 {
		return RemoveLine(lines, productID)
	}
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return lines
		}
	}
	return lines
}

// CountLineItems sums the quantities across a line collection.
func CountLineItems(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// SumLineTotals sums unitPrice*quantity across a line collection using
// exact cent arithmetic.
func SumLineTotals(lines []CartLine) Money {
	var total Money
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
