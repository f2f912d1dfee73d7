package signal

// Producer drives a signal. It is called once per subscription with the
// resolver of that subscription and may call resolve any number of times,
// synchronously or from callbacks it schedules.
type Producer[T any] func(resolve func(T))

type Observer[T any] func(T)
