package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// InstantiateWazero publishes the capability imports into a wazero runtime
// under the import namespace, so a compiled guest component can link
// against h. Signatures follow the canonical ABI lowering: random-byte
// returns its u8 as i32; log takes a pointer/length pair into the calling
// module's linear memory.
//
// Must be called before the guest module is instantiated.
func InstantiateWazero(ctx context.Context, r wazero.Runtime, h Host) (api.Module, error) {
	builder := r.NewHostModuleBuilder(Namespace)

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(h.RandomByte())
		}), nil, []api.ValueType{api.ValueTypeI32}).
		Export(FuncRandomByte)

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			ptr := uint32(stack[0])
			length := uint32(stack[1])
			mem := mod.Memory()
			if mem == nil {
				return
			}
			buf, ok := mem.Read(ptr, length)
			if !ok {
				return
			}
			// Read returns a view into guest memory; copy before the
			// message outlives this call frame.
			h.Log(string(buf))
		}), []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, nil).
		Export(FuncLog)

	return builder.Instantiate(ctx)
}
