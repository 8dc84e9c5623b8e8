package mathutil

import "fmt"

// MaxFactorial is the largest n whose factorial fits in a float64.
const MaxFactorial = 170

var factorials = func() [MaxFactorial + 1]float64 {
	var t [MaxFactorial + 1]float64
	t[0] = 1
	for n := 1; n <= MaxFactorial; n++ {
		t[n] = float64(n) * t[n-1]
	}
	return t
}()

// Factorial returns n! for 0 <= n <= MaxFactorial.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative number %d", ErrInvalidArgument, n)
	}
	if n > MaxFactorial {
		return 0, fmt.Errorf("%w: factorial of %d overflows float64", ErrInvalidArgument, n)
	}
	return factorials[n], nil
}

// Choose returns the binomial coefficient n!/(k!(n-k)!).
func Choose(n, k int) (float64, error) {
	if k < 0 || k > n {
		return 0, fmt.Errorf("%w: choose(%d, %d) needs 0 <= k <= n", ErrInvalidArgument, n, k)
	}
	fn, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	fk, _ := Factorial(k)
	fnk, _ := Factorial(n - k)
	return fn / (fk * fnk), nil
}
