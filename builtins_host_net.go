// builtins_host_net.go — net:* procedures, grounded on the teacher's
// std_io_net.go/builtin_io_net.go raw-socket builtins but deliberately
// minimal: spec.md's process model has no event loop or socket-lifetime
// story, so this exposes only synchronous, one-shot operations (DNS lookup
// and a blocking HTTP GET) rather than the teacher's full listener/conn
// handle surface.
package lispy

import (
	"io"
	"net"
	"net/http"
)

func registerHostNet(env *Env) {
	RegisterProcedure(env, "net:resolve", func(args []Value) Value {
		requireArity("net:resolve", args, 1, 1)
		addrs, err := net.LookupHost(args[0].AsString())
		if err != nil {
			raise(ErrInvalidOperation, "net:resolve: %s", err)
		}
		out := make([]Value, len(addrs))
		for i, a := range addrs {
			out[i] = String(a)
		}
		return List(out)
	})

	RegisterProcedure(env, "net:http-get", func(args []Value) Value {
		requireArity("net:http-get", args, 1, 1)
		resp, err := http.Get(args[0].AsString())
		if err != nil {
			raise(ErrInvalidOperation, "net:http-get: %s", err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			raise(ErrInvalidOperation, "net:http-get: %s", err)
		}
		d := NewDict()
		d.Set("status", Number(float64(resp.StatusCode)))
		d.Set("body", String(string(body)))
		return DictValue(d)
	})
}
