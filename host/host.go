package host

// Namespace is the WIT interface name of the capability imports.
const Namespace = "component:wit-limbo/host"

// Import function names within the namespace.
const (
	FuncRandomByte = "random-byte"
	FuncLog        = "log"
)

// Host supplies the two capabilities the sandbox imports. Both calls are
// synchronous: the engine operation that triggered them resumes only
// after they return.
type Host interface {
	// RandomByte returns one random byte. It must return promptly and
	// must not fail; hosts without entropy synthesize a deterministic
	// byte rather than erroring.
	RandomByte() byte

	// Log delivers one diagnostic message. Fire-and-forget: no return
	// value, no effect on engine correctness, and it must not block
	// unboundedly.
	Log(message string)
}

// Funcs adapts plain function values to the Host interface, for hosts
// that inject capabilities as passed-in function handles rather than a
// named type. Nil members are safe: a nil RandomByteFunc degrades to a
// deterministic counter and a nil LogFunc discards messages.
type Funcs struct {
	RandomByteFunc func() byte
	LogFunc        func(message string)

	fallback fallbackByte
}

func (f *Funcs) RandomByte() byte {
	if f.RandomByteFunc == nil {
		return f.fallback.next()
	}
	return f.RandomByteFunc()
}

func (f *Funcs) Log(message string) {
	if f.LogFunc == nil {
		return
	}
	f.LogFunc(message)
}

// fallbackByte synthesizes deterministic bytes for hosts that cannot
// provide entropy.
type fallbackByte struct {
	counter uint64
}

func (d *fallbackByte) next() byte {
	// SplitMix64 step over a counter: deterministic, cheap, and mixes
	// well enough that the engine's seed bytes are not all identical.
	d.counter++
	z := d.counter * 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return byte(z ^ (z >> 31))
}
