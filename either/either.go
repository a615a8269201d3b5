/*
Package either implements a sum type of two alternatives.

Haskell:

    data Either a b = Left a | Right b

Stand-in in Go:

    Either[L, R]

Clients match on the alternatives the same way as for package maybe:

    var one *Node
    var many []*Node
    switch m := e.Match(); m {
    case m.Left(&one):
        ...
    case m.Right(&many):
        ...
    }

Matchers hold a pointer to the value, so matching works for
non-comparable types like slices, too.
*/
package either

import "fmt"

// Either holds either a value of type L or a value of type R.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	FromLeft() (L, bool)
	FromRight() (R, bool)
}

type either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding a left value.
func Left[L, R any](x L) Either[L, R] {
	return &either[L, R]{left: x}
}

// Right creates an Either holding a right value.
func Right[L, R any](x R) Either[L, R] {
	return &either[L, R]{right: x, isRight: true}
}

func (e *either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

func (e *either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e *either[L, R]) FromLeft() (L, bool) {
	return e.left, !e.isRight
}

func (e *either[L, R]) FromRight() (R, bool) {
	return e.right, e.isRight
}

func (e *either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold applies fl to a left value or fr to a right value.
func Fold[L, R, T any](e Either[L, R], fl func(L) T, fr func(R) T) T {
	if l, ok := e.FromLeft(); ok {
		return fl(l)
	}
	r, _ := e.FromRight()
	return fr(r)
}

// --- Matching --------------------------------------------------------------

// Matcher matches an Either against its alternatives. Left and Right
// store the value and return the matcher itself if the alternative
// matches, and nil otherwise.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e *either[L, R]
}

func (em matcher[L, R]) Left(v *L) Matcher[L, R] {
	if !em.e.isRight {
		*v = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(v *R) Matcher[L, R] {
	if em.e.isRight {
		*v = em.e.right
		return em
	}
	return nil
}
