package layout

// Unsized is the contract for a variable-length layout living inside a
// flat buffer.
//
// The contract is deliberately small: a layout must be able to report its
// minimum valid encoding size without inspecting any buffer (InitBytes),
// write that minimum encoding into a zero-filled region (Init), discover
// the byte length of an existing encoding from the bytes alone (ByteLen),
// and check validity (Validate). Element access and typed views live on
// the concrete layout types.
//
// A type whose InitBytes is zero is a zero-sized layout; composites accept
// one only as the single final field.
type Unsized interface {
	// InitBytes returns the byte length of the minimum valid encoding.
	// It is a type-level constant: it never inspects a buffer.
	InitBytes() int

	// Init writes the minimum valid encoding into dst, which must be a
	// zero-filled region of exactly InitBytes() bytes.
	Init(dst []byte) error

	// ByteLen reports the encoded length of the value starting at data.
	// Only as much of data as needed to determine the length is read.
	ByteLen(data []byte) (int, error)

	// Validate checks that data begins with a fully valid encoding.
	Validate(data []byte) error
}

// FixedTail adapts a fixed-size codec into an Unsized layout so a composite
// can use a plain fixed value as its tail. Its byte length never changes,
// so it never triggers the resize cascade.
type FixedTail[T any] struct {
	codec Fixed[T]
	zero  T
}

// TailOf wraps a fixed codec as an unsized tail. The zero value of T must
// satisfy the codec's validity predicate; it becomes the Init encoding.
func TailOf[T any](codec Fixed[T]) FixedTail[T] {
	return FixedTail[T]{codec: codec}
}

func (t FixedTail[T]) InitBytes() int { return t.codec.Size() }

func (t FixedTail[T]) Init(dst []byte) error {
	return t.codec.Put(dst, t.zero)
}

func (t FixedTail[T]) ByteLen(data []byte) (int, error) {
	if err := checkWidth(data, t.codec.Size()); err != nil {
		return 0, err
	}

	return t.codec.Size(), nil
}

func (t FixedTail[T]) Validate(data []byte) error {
	return t.codec.Validate(data)
}

// EmptyLayout is the zero-sized layout. Its encoding occupies no bytes and
// is always valid. It may only appear as the single final field of a
// composite; Compile enforces the placement.
type EmptyLayout struct{}

// Empty returns the zero-sized layout.
func Empty() EmptyLayout { return EmptyLayout{} }

func (EmptyLayout) InitBytes() int { return 0 }

func (EmptyLayout) Init([]byte) error { return nil }

func (EmptyLayout) ByteLen([]byte) (int, error) { return 0, nil }

func (EmptyLayout) Validate([]byte) error { return nil }

// SeqLayout composes two unsized layouts back to back into one combined
// tail. Chaining Seq values pairwise lets a composite carry any number of
// variable-length fields while the composite itself still sees a single
// unsized region.
//
// The second layout's start is the first layout's byte length, so locating
// it costs one ByteLen scan of the first encoding, never a full decode.
type SeqLayout struct {
	first  Unsized
	second Unsized
}

// Seq combines two unsized layouts into one.
func Seq(first, second Unsized) SeqLayout {
	return SeqLayout{first: first, second: second}
}

// First returns the leading layout.
func (s SeqLayout) First() Unsized { return s.first }

// Second returns the trailing layout.
func (s SeqLayout) Second() Unsized { return s.second }

func (s SeqLayout) InitBytes() int {
	return s.first.InitBytes() + s.second.InitBytes()
}

func (s SeqLayout) Init(dst []byte) error {
	n := s.first.InitBytes()
	if err := s.first.Init(dst[:n]); err != nil {
		return err
	}

	return s.second.Init(dst[n:])
}

func (s SeqLayout) ByteLen(data []byte) (int, error) {
	n, err := s.first.ByteLen(data)
	if err != nil {
		return 0, err
	}
	m, err := s.second.ByteLen(data[n:])
	if err != nil {
		return 0, err
	}

	return n + m, nil
}

func (s SeqLayout) Validate(data []byte) error {
	if err := s.first.Validate(data); err != nil {
		return err
	}
	n, err := s.first.ByteLen(data)
	if err != nil {
		return err
	}

	return s.second.Validate(data[n:])
}

// SecondOffset returns the byte offset of the second layout within an
// existing encoding.
func (s SeqLayout) SecondOffset(data []byte) (int, error) {
	return s.first.ByteLen(data)
}
