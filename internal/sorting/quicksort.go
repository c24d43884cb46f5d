// Package sorting orders catalog products by price with a partition-exchange
// sort. Not stable: equal-priced products may swap relative order.
package sorting

import "uvicorn-shop/internal/models"

// ByPrice returns a copy of items ordered by unit price, ascending or
// descending. The input slice is never mutated. Average O(n log n), worst
// case O(n^2) on adversarial input; catalog sizes are small and bounded.
func ByPrice(items []models.Product, ascending bool) []models.Product {
	a := make([]models.Product, len(items))
	copy(a, items)

	cmp := func(x, y models.Product) int64 {
		if ascending {
			return x.Price - y.Price
		}
		return y.Price - x.Price
	}

	var qs func(lo, hi int)
	qs = func(lo, hi int) {
		if lo >= hi {
			return
		}
		p := partition(a, lo, hi, cmp)
		qs(lo, p-1)
		qs(p+1, hi)
	}
	qs(0, len(a)-1)
	return a
}

// partition uses the middle element as pivot, swapped to the end first, to
// avoid the worst case on already-sorted input.
func partition(a []models.Product, lo, hi int, cmp func(x, y models.Product) int64) int {
	mid := (lo + hi) / 2
	a[mid], a[hi] = a[hi], a[mid]
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(a[j], pivot) <= 0 {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}
