package dgim_test

import (
	"fmt"

	"github.com/forestrie/go-streamstats/dgim"
)

func Example() {
	c, err := dgim.New(32)
	if err != nil {
		panic(err)
	}

	for _, bit := range []bool{true, true, false, true, false, true, false, false, true, true} {
		c.Update(bit)
	}

	// Fewer than 32 updates have been observed, so the estimate is exact.
	fmt.Println(c.Count())
	// Output: 6
}

func ExampleNewWithErrorRate() {
	c, err := dgim.NewWithErrorRate(1000, 0.1)
	if err != nil {
		panic(err)
	}

	fmt.Println(c.BucketBudget())
	fmt.Println(c.ErrorRate())
	// Output:
	// 10
	// 0.1
}
