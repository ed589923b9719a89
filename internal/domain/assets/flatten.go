package assets

// Flatten returns every grant reachable from g in realization order.
// A leaf flattens to itself. A composite flattens to the flattening of each
// child in list order, followed by the composite itself.
func Flatten(g Grant) []Grant {
	composite, ok := g.(CompositeGrant)
	if !ok {
		return []Grant{g}
	}

	var out []Grant
	for _, child := range composite.Children() {
		out = append(out, Flatten(child)...)
	}
	return append(out, g)
}

// FlattenAll flattens each grant in order and concatenates the results
func FlattenAll(grants []Grant) []Grant {
	out := make([]Grant, 0, len(grants))
	for _, g := range grants {
		out = append(out, Flatten(g)...)
	}
	return out
}

// AllGrants flattens everything the character is granted: class grants first
// (each class in list order for a multiclass character), then race grants.
func (c *Character) AllGrants() []Grant {
	var out []Grant
	for _, class := range c.Spec.Assets.Class.Classes() {
		out = append(out, FlattenAll(class.Grants)...)
	}
	return append(out, FlattenAll(c.Spec.Assets.Race.Grants)...)
}

// Level is the single class level, or the sum of all class levels
func (c *Character) Level() int {
	level := 0
	for _, class := range c.Spec.Assets.Class.Classes() {
		level += class.Level
	}
	return level
}
