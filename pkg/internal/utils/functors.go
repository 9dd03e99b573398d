// functors.go file
package utils

// MapTo projects each element of elems into a new type.
func MapTo[T, U any](elems []T, f func(T) U) []U {
	result := make([]U, len(elems))
	for i, v := range elems {
		result[i] = f(v)
	}
	return result
}

// Filter returns a new slice holding only the elements of elems that satisfy f().
func Filter[T any](elems []T, f func(T) bool) []T {
	var result []T
	for _, v := range elems {
		if f(v) {
			result = append(result, v)
		}
	}
	return result
}

func Contains[T comparable](slice []T, element T) bool {
	for _, v := range slice {
		if v == element {
			return true
		}
	}
	return false
}
