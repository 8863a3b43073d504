package main

import (
	"fmt"

	"github.com/baxromumarov/vec"
)

func main() {
	v, err := vec.New[string](vec.WithOnGrow(func(oldCap, newCap int) {
		fmt.Printf("storage grew: %d -> %d slots\n", oldCap, newCap)
	}))
	if err != nil {
		panic(err)
	}

	for _, w := range []string{"the", "quick", "brown", "fox"} {
		if err := v.PushBack(w); err != nil {
			panic(err)
		}
	}

	if err := v.Insert(2, "very"); err != nil {
		panic(err)
	}
	v.Erase(0)

	for i, w := range v.All() {
		fmt.Println(i, w)
	}
	st := v.Stats()
	fmt.Printf("len=%d cap=%d grows=%d\n", st.Len, st.Cap, st.Grows)
}
