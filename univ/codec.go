package univ

// Codec embeds and extracts values of the single type A.
//
// A Codec carries no state; the zero value is ready to use and all codecs for
// the same A are interchangeable (and equal under ==).
type Codec[A any] struct{}

// NewCodec returns the codec for A.
func NewCodec[A any]() Codec[A] { return Codec[A]{} }

// Embed is Embed[A].
func (Codec[A]) Embed(v A) Value { return Embed(v) }

// Unembed is Unembed[A].
func (Codec[A]) Unembed(u Value) (A, bool) { return Unembed[A](u) }

// As is As[A].
func (Codec[A]) As(u Value) (A, error) { return As[A](u) }

// Tag returns the tag of A.
func (Codec[A]) Tag() Tag { return TagOf[A]() }

// MakeCodec returns a matched pair of functions embedding values of type A
// and recovering them.
//
//	ofInt, toInt := univ.MakeCodec[int]()
//	_, toInt2 := univ.MakeCodec[int]()
//	toInt2(ofInt(13)) // 13, true
func MakeCodec[A any]() (embed func(A) Value, unembed func(Value) (A, bool)) {
	c := NewCodec[A]()
	return c.Embed, c.Unembed
}
