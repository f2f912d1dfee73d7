package signal

// Apply resolves f(x) for the latest function of sf and the latest value of
// sx, once both have resolved. sf is subscribed before sx.
func Apply[T, U any](sf *Signal[func(T) U], sx *Signal[T]) *Signal[U] {
	return Fmap(Combine2(sf, sx), func(t Tuple2[func(T) U, T]) U {
		return t.V1(t.V2)
	})
}
