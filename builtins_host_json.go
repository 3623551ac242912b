// builtins_host_json.go — json:* procedures, grounded on the teacher's
// builtin_json.go/json.go pair, generalized from MindScript's typed object
// model to Lispy's Dict/List/Tuple triple: JSON objects become Dict, JSON
// arrays become List, everything else maps onto the obvious scalar tag.
package lispy

import "encoding/json"

func registerHostJSON(env *Env) {
	RegisterProcedure(env, "json:stringify", func(args []Value) Value {
		requireArityRange("json:stringify", args, 1, 2)
		var out []byte
		var err error
		if len(args) == 2 && args[1].Truthy() {
			out, err = json.MarshalIndent(valueToJSON(args[0]), "", "  ")
		} else {
			out, err = json.Marshal(valueToJSON(args[0]))
		}
		if err != nil {
			raise(ErrInvalidArgument, "json:stringify: %s", err)
		}
		return String(string(out))
	})

	RegisterProcedure(env, "json:parse", func(args []Value) Value {
		requireArity("json:parse", args, 1, 1)
		var decoded interface{}
		if err := json.Unmarshal([]byte(args[0].AsString()), &decoded); err != nil {
			raise(ErrInvalidArgument, "json:parse: %s", err)
		}
		return jsonToValue(decoded)
	})
}

// valueToJSON converts a Lispy Value into the plain interface{} tree
// encoding/json expects. Procedures, environments, and other non-data tags
// have no JSON representation and raise.
func valueToJSON(v Value) interface{} {
	switch v.Tag {
	case TagNil, TagUndefined:
		return nil
	case TagBool:
		return v.AsBool()
	case TagNumber:
		return v.AsNumber()
	case TagString:
		return v.AsString()
	case TagSymbol:
		return v.AsSymbol()
	case TagList, TagTuple:
		items := v.Data.([]Value)
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = valueToJSON(item)
		}
		return out
	case TagDict:
		d := v.AsDict()
		out := make(map[string]interface{}, len(d.Keys()))
		for _, k := range d.Keys() {
			item, _ := d.Get(k)
			out[k] = valueToJSON(item)
		}
		return out
	default:
		raise(ErrInvalidArgument, "json:stringify: value has no JSON representation: %s", ToDebugString(v))
		return nil
	}
}

// jsonToValue converts a decoded JSON tree (as produced by
// json.Unmarshal into interface{}) into Lispy Values.
func jsonToValue(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Nil
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []interface{}:
		out := make([]Value, len(t))
		for i, item := range t {
			out[i] = jsonToValue(item)
		}
		return List(out)
	case map[string]interface{}:
		d := NewDict()
		for k, item := range t {
			d.Set(k, jsonToValue(item))
		}
		return DictValue(d)
	default:
		raise(ErrUnexpectedInput, "json:parse: unrecognized decoded type %T", v)
		return Nil
	}
}
