package refeq

// PointerComparator compares two non-nil pointers by the values they point
// to. The field path is not extended.
type PointerComparator struct{}

func (PointerComparator) Compare(c *Comparison) (Result, error) {
	if Dispatch(c.Left(), c.Right()) != DispatchPointer {
		return Forward(), nil
	}

	d, err := c.RecurseSamePath(c.Left().Elem(), c.Right().Elem())
	if err != nil {
		return Result{}, err
	}

	return Resolved(d), nil
}
