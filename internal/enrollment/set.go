package enrollment

import "slices"

// The set helpers work on slices that are sorted by cmp and hold no
// duplicates. Results keep that shape.

func setMinus[T any](x, y []T, cmp func(a, b T) int) []T {
	res := make([]T, 0, len(x))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch c := cmp(x[i], y[j]); {
		case c < 0:
			res = append(res, x[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}

	return append(res, x[i:]...)
}

func setIntersect[T any](x, y []T, cmp func(a, b T) int) []T {
	res := make([]T, 0, min(len(x), len(y)))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch c := cmp(x[i], y[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			res = append(res, x[i])
			i++
			j++
		}
	}

	return res
}

func setIntersectN[T any](cmp func(a, b T) int, sets ...[]T) []T {
	if len(sets) == 0 {
		return nil
	}

	res := slices.Clone(sets[0])
	for _, s := range sets[1:] {
		res = setIntersect(res, s, cmp)
	}

	return res
}

func setXor[T any](x, y []T, cmp func(a, b T) int) []T {
	res := make([]T, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch c := cmp(x[i], y[j]); {
		case c < 0:
			res = append(res, x[i])
			i++
		case c > 0:
			res = append(res, y[j])
			j++
		default:
			i++
			j++
		}
	}

	res = append(res, x[i:]...)
	return append(res, y[j:]...)
}

func setUnion[T any](x, y []T, cmp func(a, b T) int) []T {
	res := make([]T, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch c := cmp(x[i], y[j]); {
		case c < 0:
			res = append(res, x[i])
			i++
		case c > 0:
			res = append(res, y[j])
			j++
		default:
			res = append(res, x[i])
			i++
			j++
		}
	}

	res = append(res, x[i:]...)
	return append(res, y[j:]...)
}
