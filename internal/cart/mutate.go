package cart

// The mutation functions below are pure: they take the current state and
// return the next one without touching the input. None of them can fail;
// invalid input degrades to a no-op or a removal, which matches how the UI
// tolerates rapid and duplicate clicks.

// Add merges quantity into an existing line with the same product id, or
// appends a new line built from the catalog snapshot. A non-positive quantity
// is treated as 1, the implicit "add one" of a product page click.
func Add(s State, snap CatalogSnapshot, quantity int) State {
	if quantity <= 0 {
		quantity = 1
	}
	for i, ln := range s {
		if ln.ProductID == snap.ID {
			next := clone(s)
			next[i].Quantity = ln.Quantity + quantity
			return next
		}
	}
	next := clone(s)
	return append(next, Line{
		ProductID: snap.ID,
		Name:      snap.Name,
		UnitPrice: snap.Price,
		Unit:      snap.Unit,
		Quantity:  quantity,
	})
}

// SetQuantity replaces a line's quantity with an absolute value. Zero or
// negative removes the line, so quantity >= 1 holds for every line present.
func SetQuantity(s State, productID string, quantity int) State {
	if quantity <= 0 {
		return Remove(s, productID)
	}
	next := clone(s)
	for i, ln := range next {
		if ln.ProductID == productID {
			next[i].Quantity = quantity
			break
		}
	}
	return next
}

// Remove filters out the line with the given product id. Absent id is a no-op.
func Remove(s State, productID string) State {
	next := make(State, 0, len(s))
	for _, ln := range s {
		if ln.ProductID != productID {
			next = append(next, ln)
		}
	}
	return next
}

// Clear returns the empty state.
func Clear() State {
	return State{}
}

func clone(s State) State {
	next := make(State, len(s))
	copy(next, s)
	return next
}
