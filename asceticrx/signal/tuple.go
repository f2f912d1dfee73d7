package signal

import "fmt"

type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}

type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3)
}
