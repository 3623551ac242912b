// builtins_host_crypto.go — crypto:* procedures, grounded on the teacher's
// builtin_crypto.go, narrowed to the hashing/HMAC primitives that make
// sense without a Bytes value tag: digests are returned as lowercase hex
// strings via encoding/hex, matching how the teacher's own crypto builtins
// hand back hex by default.
package lispy

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

func registerHostCrypto(env *Env) {
	RegisterProcedure(env, "crypto:sha256", func(args []Value) Value {
		requireArity("crypto:sha256", args, 1, 1)
		sum := sha256.Sum256([]byte(args[0].AsString()))
		return String(hex.EncodeToString(sum[:]))
	})

	RegisterProcedure(env, "crypto:hmac-sha256", func(args []Value) Value {
		requireArity("crypto:hmac-sha256", args, 2, 2)
		mac := hmac.New(sha256.New, []byte(args[0].AsString()))
		mac.Write([]byte(args[1].AsString()))
		return String(hex.EncodeToString(mac.Sum(nil)))
	})

	// crypto:constant-time-eq compares two hex digests without leaking
	// timing information, for hosts verifying an HMAC against user input.
	RegisterProcedure(env, "crypto:constant-time-eq", func(args []Value) Value {
		requireArity("crypto:constant-time-eq", args, 2, 2)
		a, b := args[0].AsString(), args[1].AsString()
		return Bool(subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1)
	})
}
