package bitvec_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/resource"
)

// Example demonstrates range updates and rank queries.
func Example() {
	v, err := bitvec.New(100)
	if err != nil {
		log.Fatal(err)
	}
	defer v.Release()

	_ = v.SetRange(0, 50)
	r, _ := v.Rank(99)
	fmt.Println(r)

	_ = v.Set(60)
	r, _ = v.Rank(99)
	fmt.Println(r)
	// Output:
	// 50
	// 51
}

// Example_subvector demonstrates contiguous subvector search.
func Example_subvector() {
	hay, _ := bitvec.New(64)
	_ = hay.SetRange(10, 4)

	fmt.Println(hay.ContainsSubvector(bitvec.MustParse("11111")))
	off, ok := hay.IndexSubvector(bitvec.MustParse("1111"))
	fmt.Println(off, ok)
	// Output:
	// false
	// 10 true
}

// Example_concat demonstrates concatenation and repetition.
func Example_concat() {
	ab, _ := bitvec.Concat(bitvec.MustParse("10101"), bitvec.MustParse("010"))
	fmt.Println(ab)

	rep, _ := bitvec.Repeat(bitvec.MustParse("110"), 3)
	fmt.Println(rep)
	// Output:
	// 10101010
	// 110110110
}

// Example_controller demonstrates a shared memory budget and parallel rank builds.
func Example_controller() {
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:     1 << 20,
		MaxBackgroundWorkers: 2,
	})

	v, err := bitvec.New(1<<20, bitvec.WithController(rc))
	if err != nil {
		log.Fatal(err)
	}
	if err := v.BuildRankParallel(context.Background(), 0); err != nil {
		log.Fatal(err)
	}

	_, err = bitvec.New(1<<24, bitvec.WithController(rc))
	fmt.Println(errors.Is(err, bitvec.ErrAllocation))

	v.Release()
	fmt.Println(rc.MemoryUsage())
	// Output:
	// true
	// 0
}
