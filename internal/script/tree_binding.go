package script

import (
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/arbor/internal/engine/bst"
)

const treeTypeName = "arbor.tree"

// Key kinds for a script-side tree. The first insert fixes the kind;
// mixing number and string keys in one tree is a script error.
const (
	kindUnset  = byte(0)
	kindNumber = byte('n')
	kindString = byte('s')
)

// luaTree adapts the generic container to Lua's dynamic keys: number
// keys order numerically, string keys lexically.
type luaTree struct {
	kind byte
	nums *bst.Tree[float64, lua.LValue]
	strs *bst.Tree[string, lua.LValue]
}

var treeMethods = map[string]lua.LGFunction{
	"insert":   treeInsert,
	"find":     treeFind,
	"len":      treeLen,
	"is_empty": treeIsEmpty,
	"height":   treeHeight,
	"min":      treeMin,
	"max":      treeMax,
	"inorder":  treeInorder,
	"walk":     treeWalk,
}

// registerTreeModule installs the global `tree` module and its userdata
// metatable.
func registerTreeModule(L *lua.LState) {
	mt := L.NewTypeMetatable(treeTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), treeMethods))

	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(treeNew))
	L.SetGlobal("tree", mod)
}

func treeNew(L *lua.LState) int {
	ud := L.NewUserData()
	ud.Value = &luaTree{}
	L.SetMetatable(ud, L.GetTypeMetatable(treeTypeName))
	L.Push(ud)
	return 1
}

func checkTree(L *lua.LState) *luaTree {
	ud := L.CheckUserData(1)
	if t, ok := ud.Value.(*luaTree); ok {
		return t
	}
	L.ArgError(1, "tree expected")
	return nil
}

// checkKey validates the key argument at pos against the tree's key
// kind, fixing the kind on first use.
func checkKey(L *lua.LState, t *luaTree, pos int) (float64, string, byte) {
	switch k := L.CheckAny(pos).(type) {
	case lua.LNumber:
		n := float64(k)
		if math.IsNaN(n) {
			L.ArgError(pos, "NaN is not a valid key")
		}
		if t.kind == kindString {
			L.ArgError(pos, "tree has string keys, got number")
		}
		if t.kind == kindUnset {
			t.kind = kindNumber
			t.nums = bst.New[float64, lua.LValue]()
		}
		return n, "", kindNumber
	case lua.LString:
		if t.kind == kindNumber {
			L.ArgError(pos, "tree has number keys, got string")
		}
		if t.kind == kindUnset {
			t.kind = kindString
			t.strs = bst.New[string, lua.LValue]()
		}
		return 0, string(k), kindString
	default:
		L.ArgError(pos, "key must be a number or string")
	}
	return 0, "", kindUnset
}

// checkKeyScalar validates the key argument at pos without fixing the
// tree's key kind. Lookups on an empty tree still reject bad keys the
// same way a populated tree would.
func checkKeyScalar(L *lua.LState, pos int) {
	switch k := L.CheckAny(pos).(type) {
	case lua.LNumber:
		if math.IsNaN(float64(k)) {
			L.ArgError(pos, "NaN is not a valid key")
		}
	case lua.LString:
	default:
		L.ArgError(pos, "key must be a number or string")
	}
}

func treeInsert(L *lua.LState) int {
	t := checkTree(L)
	num, str, kind := checkKey(L, t, 2)
	value := L.CheckAny(3)

	var prev lua.LValue
	var replaced bool
	if kind == kindNumber {
		prev, replaced = t.nums.Insert(num, value)
	} else {
		prev, replaced = t.strs.Insert(str, value)
	}

	if !replaced {
		prev = lua.LNil
	}
	L.Push(prev)
	L.Push(lua.LBool(replaced))
	return 2
}

func treeFind(L *lua.LState) int {
	t := checkTree(L)
	if t.kind == kindUnset {
		checkKeyScalar(L, 2)
		L.Push(lua.LNil)
		return 1
	}
	num, str, kind := checkKey(L, t, 2)

	var value lua.LValue
	var ok bool
	if kind == kindNumber {
		value, ok = t.nums.Find(num)
	} else {
		value, ok = t.strs.Find(str)
	}

	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(value)
	return 1
}

func treeLen(L *lua.LState) int {
	t := checkTree(L)
	L.Push(lua.LNumber(treeSize(t)))
	return 1
}

func treeIsEmpty(L *lua.LState) int {
	t := checkTree(L)
	L.Push(lua.LBool(treeSize(t) == 0))
	return 1
}

func treeSize(t *luaTree) int {
	switch t.kind {
	case kindNumber:
		return t.nums.Len()
	case kindString:
		return t.strs.Len()
	default:
		return 0
	}
}

func treeHeight(L *lua.LState) int {
	t := checkTree(L)
	switch t.kind {
	case kindNumber:
		L.Push(lua.LNumber(t.nums.Height()))
	case kindString:
		L.Push(lua.LNumber(t.strs.Height()))
	default:
		L.Push(lua.LNumber(0))
	}
	return 1
}

func treeMin(L *lua.LState) int {
	return pushExtreme(L, true)
}

func treeMax(L *lua.LState) int {
	return pushExtreme(L, false)
}

func pushExtreme(L *lua.LState, min bool) int {
	t := checkTree(L)
	switch t.kind {
	case kindNumber:
		var k float64
		var v lua.LValue
		var ok bool
		if min {
			k, v, ok = t.nums.Min()
		} else {
			k, v, ok = t.nums.Max()
		}
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(k))
		L.Push(v)
		return 2
	case kindString:
		var k string
		var v lua.LValue
		var ok bool
		if min {
			k, v, ok = t.strs.Min()
		} else {
			k, v, ok = t.strs.Max()
		}
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(k))
		L.Push(v)
		return 2
	default:
		L.Push(lua.LNil)
		return 1
	}
}

func treeInorder(L *lua.LState) int {
	t := checkTree(L)
	out := L.NewTable()

	appendPair := func(key, value lua.LValue) {
		pair := L.NewTable()
		L.SetField(pair, "key", key)
		L.SetField(pair, "value", value)
		out.Append(pair)
	}

	switch t.kind {
	case kindNumber:
		t.nums.Walk(func(k float64, v lua.LValue) bool {
			appendPair(lua.LNumber(k), v)
			return true
		})
	case kindString:
		t.strs.Walk(func(k string, v lua.LValue) bool {
			appendPair(lua.LString(k), v)
			return true
		})
	}

	L.Push(out)
	return 1
}

func treeWalk(L *lua.LState) int {
	t := checkTree(L)
	fn := L.CheckFunction(2)

	visit := func(key, value lua.LValue) bool {
		L.Push(fn)
		L.Push(key)
		L.Push(value)
		L.Call(2, 1)
		keepGoing := L.Get(-1) != lua.LFalse
		L.Pop(1)
		return keepGoing
	}

	switch t.kind {
	case kindNumber:
		t.nums.Walk(func(k float64, v lua.LValue) bool {
			return visit(lua.LNumber(k), v)
		})
	case kindString:
		t.strs.Walk(func(k string, v lua.LValue) bool {
			return visit(lua.LString(k), v)
		})
	}
	return 0
}
