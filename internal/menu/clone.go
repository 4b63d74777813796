package menu

// Clone returns a deep copy of the restaurant. The generator normalizes
// its input before emitting; cloning first keeps that normalization
// from leaking into the caller's value.
func (r *Restaurant) Clone() *Restaurant {
	if r == nil {
		return nil
	}
	out := *r
	out.Categories = make([]Category, len(r.Categories))
	for i, cat := range r.Categories {
		c := cat
		c.Items = make([]Item, len(cat.Items))
		copy(c.Items, cat.Items)
		out.Categories[i] = c
	}
	if r.Visual != nil {
		vs := *r.Visual
		out.Visual = &vs
	}
	return &out
}
