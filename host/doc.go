// Package host defines the capability imports the sandboxed database
// requires but cannot provide for itself.
//
// The sandbox has no ambient access to OS entropy or console I/O. The two
// imports declared here are the explicit, auditable channel through which
// the host grants exactly that much:
//
//	random-byte() -> u8     entropy, one byte at a time
//	log(message: string)    one-way diagnostic sink
//
// No other ambient capability is importable. Implementations are injected
// at instantiation time (see the root package); the sandbox calls back
// into them synchronously mid-operation, so both must return promptly.
// RandomByte must never fail: a host that cannot reach real entropy
// synthesizes a deterministic byte instead, because the engine has no
// fallback path of its own.
//
// SecureHost is the production implementation. FixedHost provides
// degenerate entropy and captured logs for tests. Funcs adapts bare
// function values. InstantiateWazero publishes the import namespace into
// a wazero runtime for hosts that load a compiled guest.
package host
