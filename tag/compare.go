package tag

// Equal reports structural equality: same kind, same name, and recursively
// equal value. Compound comparison is key based and ignores entry order;
// list and array comparison is positional.
func Equal(a, b *Tag) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ || a.name != b.name {
		return false
	}
	switch a.typ {
	case TypeByte:
		return a.ByteValue() == b.ByteValue()
	case TypeShort:
		return a.ShortValue() == b.ShortValue()
	case TypeInt:
		return a.IntValue() == b.IntValue()
	case TypeLong:
		return a.LongValue() == b.LongValue()
	case TypeFloat, TypeDouble:
		return a.f64 == b.f64
	case TypeString:
		return a.str == b.str
	case TypeByteArray:
		return byteSlicesEqual(a.bytes, b.bytes)
	case TypeIntArray:
		if len(a.ints) != len(b.ints) {
			return false
		}
		for i := range a.ints {
			if a.ints[i] != b.ints[i] {
				return false
			}
		}
		return true
	case TypeLongArray:
		if len(a.longs) != len(b.longs) {
			return false
		}
		for i := range a.longs {
			if a.longs[i] != b.longs[i] {
				return false
			}
		}
		return true
	case TypeList:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	case TypeCompound:
		if len(a.children) != len(b.children) {
			return false
		}
		for _, c := range a.children {
			if !Equal(c, b.Get(c.name)) {
				return false
			}
		}
		return true
	}
	return false
}

func byteSlicesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
